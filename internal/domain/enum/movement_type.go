package enum

// MovementType classifies a stock movement entry
type MovementType string

const (
	MovementIn         MovementType = "IN"
	MovementOut        MovementType = "OUT"
	MovementReserve    MovementType = "RESERVE"
	MovementAdjustment MovementType = "ADJUSTMENT"
	MovementReturn     MovementType = "RETURN"
)

// IsValid reports whether the movement type is one of the known values
func (m MovementType) IsValid() bool {
	switch m {
	case MovementIn, MovementOut, MovementReserve, MovementAdjustment, MovementReturn:
		return true
	}
	return false
}

// AddsStock reports whether applying this movement increases physical stock.
// Only IN adds; every other type subtracts.
func (m MovementType) AddsStock() bool {
	return m == MovementIn
}
