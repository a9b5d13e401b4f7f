package pricing

// Unit prices per vehicle type, currency-agnostic units.
const (
	AutoUnitPrice float64 = 25
	CarUnitPrice  float64 = 50
)

// UnitPrice returns the per-unit price for a vehicle type. An unrecognized
// type prices at 0, which the client uses to disable submission until a
// type is chosen.
func UnitPrice(vehicleType string) float64 {
	switch vehicleType {
	case "auto":
		return AutoUnitPrice
	case "car":
		return CarUnitPrice
	default:
		return 0
	}
}

// Total computes the booking amount. Computed once at creation time and
// never recomputed afterwards.
func Total(vehicleType string, quantity int) float64 {
	return UnitPrice(vehicleType) * float64(quantity)
}
