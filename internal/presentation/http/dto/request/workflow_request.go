package request

// UpdateStatusRequest carries a status transition for quotes and
// delivery notes
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AddPaymentRequest records money received against an invoice
type AddPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required"`
	Method string  `json:"method"`
}

// AdjustStockRequest applies a manual stock correction
type AdjustStockRequest struct {
	Quantity int    `json:"quantity" binding:"required,gt=0"`
	Type     string `json:"type" binding:"required"`
	Reason   string `json:"reason"`
}
