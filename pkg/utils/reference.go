package utils

import (
	"fmt"
	"time"
)

// QuoteReference formats a sequential quote reference, e.g. DEV-2023-0012
func QuoteReference(year, seq int) string {
	return fmt.Sprintf("DEV-%d-%04d", year, seq)
}

// InvoiceReference formats a sequential invoice reference, e.g. FAC-2023-0007
func InvoiceReference(year, seq int) string {
	return fmt.Sprintf("FAC-%d-%04d", year, seq)
}

// DeliveryReference formats a delivery note reference from the last six
// digits of a millisecond timestamp, e.g. BL-583920.
func DeliveryReference(at time.Time) string {
	return fmt.Sprintf("BL-%06d", at.UnixMilli()%1_000_000)
}
