package routecache

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/evroute/evroute/bp"
	"github.com/evroute/evroute/bplist"
)

// EncodeProfile serializes l as a flat sequence of (x, y, slope) triples,
// each stored as IEEE-754 bits so NegInf round-trips exactly; a JSON
// codec would reject it, and a profile's y ranges over [-Inf,M], so this
// is a hard requirement, not a style choice.
func EncodeProfile(l bplist.List) []byte {
	out := make([]byte, 8+len(l)*24)
	binary.BigEndian.PutUint64(out[0:8], uint64(len(l)))
	for i, p := range l {
		off := 8 + i*24
		binary.BigEndian.PutUint64(out[off:off+8], math.Float64bits(p.X))
		binary.BigEndian.PutUint64(out[off+8:off+16], math.Float64bits(p.Y))
		binary.BigEndian.PutUint64(out[off+16:off+24], uint64(p.S))
	}
	return out
}

// DecodeProfile is EncodeProfile's inverse.
func DecodeProfile(data []byte) (bplist.List, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("routecache: profile payload too short: %d bytes", len(data))
	}
	n := binary.BigEndian.Uint64(data[0:8])
	want := 8 + int(n)*24
	if len(data) != want {
		return nil, fmt.Errorf("routecache: profile payload length %d, want %d for %d break-points", len(data), want, n)
	}

	out := make(bplist.List, n)
	for i := range out {
		off := 8 + i*24
		x := math.Float64frombits(binary.BigEndian.Uint64(data[off : off+8]))
		y := math.Float64frombits(binary.BigEndian.Uint64(data[off+8 : off+16]))
		s := binary.BigEndian.Uint64(data[off+16 : off+24])
		out[i] = bp.New(x, y, bp.Slope(s))
	}
	return out, nil
}

// EncodeMatrix serializes an n x n array of profiles (fwprofile.Matrix
// and csfw.Result's Base/Final share this [][]bplist.List shape) as a
// dimension header followed by each cell's EncodeProfile payload,
// length-prefixed so DecodeMatrix can split them back apart.
func EncodeMatrix(mat [][]bplist.List) []byte {
	n := len(mat)
	out := make([]byte, 8)
	binary.BigEndian.PutUint64(out, uint64(n))
	for _, row := range mat {
		for _, cell := range row {
			payload := EncodeProfile(cell)
			lenBuf := make([]byte, 8)
			binary.BigEndian.PutUint64(lenBuf, uint64(len(payload)))
			out = append(out, lenBuf...)
			out = append(out, payload...)
		}
	}
	return out
}

// DecodeMatrix is EncodeMatrix's inverse.
func DecodeMatrix(data []byte) ([][]bplist.List, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("routecache: matrix payload too short: %d bytes", len(data))
	}
	n := int(binary.BigEndian.Uint64(data[0:8]))
	pos := 8

	mat := make([][]bplist.List, n)
	for i := range mat {
		mat[i] = make([]bplist.List, n)
		for j := range mat[i] {
			if pos+8 > len(data) {
				return nil, fmt.Errorf("routecache: matrix payload truncated at cell [%d][%d]", i, j)
			}
			cellLen := int(binary.BigEndian.Uint64(data[pos : pos+8]))
			pos += 8
			if pos+cellLen > len(data) {
				return nil, fmt.Errorf("routecache: matrix payload truncated at cell [%d][%d]", i, j)
			}
			cell, err := DecodeProfile(data[pos : pos+cellLen])
			if err != nil {
				return nil, fmt.Errorf("routecache: matrix cell [%d][%d]: %w", i, j, err)
			}
			mat[i][j] = cell
			pos += cellLen
		}
	}
	return mat, nil
}
