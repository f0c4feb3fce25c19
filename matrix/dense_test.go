package matrix_test

import (
	"testing"

	"github.com/evroute/evroute/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDenseAtSetRoundTrip(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 4.5))
	got, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, got)
}

func TestDenseOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(5, 0)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestDenseCloneIsIndependent(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))

	clone := m.Clone()
	require.NoError(t, m.Set(0, 0, 2))

	got, err := clone.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestNewDenseRejectsNonPositiveDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 2)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
