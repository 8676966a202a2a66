package enum

// UserRole is the role attributed to a user account
type UserRole string

const (
	RoleAdmin      UserRole = "ADMIN"
	RoleManager    UserRole = "MANAGER"
	RoleCashier    UserRole = "CASHIER"
	RoleAccountant UserRole = "ACCOUNTANT"
)

// Permission gates access to a group of mutating operations
type Permission string

const (
	PermManageUsers   Permission = "manage_users"
	PermViewFinance   Permission = "view_finance"
	PermManageStock   Permission = "manage_stock"
	PermCreateSales   Permission = "create_sales"
	PermApproveQuotes Permission = "approve_quotes"
)
