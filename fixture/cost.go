package fixture

import "math"

// earthRadiusMeters is the sphere radius used by the haversine distance
// below.
const earthRadiusMeters = 6.378e6

// Default coefficients for Cost (Moritz Baum 2017, p.38):
// kappa scales distance, lambda scales uphill elevation change, mu scales
// downhill elevation change.
const (
	DefaultKappa  = 0.02
	DefaultLambda = 1.0
	DefaultMu     = 0.25
)

// Cost computes the signed edge cost from vertex (lat1,lon1,elev1) to
// (lat2,lon2,elev2): kappa times the great-circle distance in metres,
// plus lambda times the elevation gain when climbing or mu times the
// elevation change when descending. Positive cost consumes charge;
// negative cost (a net descent) recuperates it.
func Cost(lat1, lon1, elev1, lat2, lon2, elev2, kappa, lambda, mu float64) float64 {
	l := haversineMeters(lat1, lon1, lat2, lon2)
	dh := elev2 - elev1
	if dh >= 0 {
		return kappa*l + lambda*dh
	}
	return kappa*l + mu*dh
}

// DefaultCost calls Cost with the package's default coefficients.
func DefaultCost(lat1, lon1, elev1, lat2, lon2, elev2 float64) float64 {
	return Cost(lat1, lon1, elev1, lat2, lon2, elev2, DefaultKappa, DefaultLambda, DefaultMu)
}

// haversineMeters returns the great-circle distance between two lat/lon
// points in metres. The formula reuses p1's latitude for both cosine
// terms rather than averaging them; at road-network edge lengths the
// difference is negligible.
func haversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	dlat := lat2 - lat1
	dlon := lon2 - lon1
	a := math.Pow(math.Sin(dlat/2), 2) + math.Cos(lat1)*math.Cos(lat1)*math.Pow(math.Sin(dlon/2), 2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
