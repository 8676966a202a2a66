package enum

// TransactionDirection marks money received (IN) or spent (OUT)
type TransactionDirection string

const (
	TransactionIn  TransactionDirection = "IN"
	TransactionOut TransactionDirection = "OUT"
)

// IsValid reports whether the direction is one of the known values
func (d TransactionDirection) IsValid() bool {
	return d == TransactionIn || d == TransactionOut
}

// TransactionCategory classifies a cash-register entry
type TransactionCategory string

const (
	TransactionSale     TransactionCategory = "SALE"
	TransactionPurchase TransactionCategory = "PURCHASE"
	TransactionExpense  TransactionCategory = "EXPENSE"
	TransactionPayroll  TransactionCategory = "PAYROLL"
)

// IsValid reports whether the category is one of the known values
func (c TransactionCategory) IsValid() bool {
	switch c {
	case TransactionSale, TransactionPurchase, TransactionExpense, TransactionPayroll:
		return true
	}
	return false
}
