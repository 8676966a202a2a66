package enum

// DeliveryStatus represents the lifecycle state of a delivery note.
// PENDING -> IN_TRANSIT -> DELIVERED, or CANCELLED from any prior state.
// DELIVERED and CANCELLED are terminal.
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "PENDING"
	DeliveryStatusInTransit DeliveryStatus = "IN_TRANSIT"
	DeliveryStatusDelivered DeliveryStatus = "DELIVERED"
	DeliveryStatusCancelled DeliveryStatus = "CANCELLED"
)

// IsValid reports whether the status is one of the known values
func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryStatusPending, DeliveryStatusInTransit, DeliveryStatusDelivered, DeliveryStatusCancelled:
		return true
	}
	return false
}
