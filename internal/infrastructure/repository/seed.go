package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/techstock/techstock-api/internal/domain/entity"
	"github.com/techstock/techstock-api/internal/domain/enum"
	"golang.org/x/crypto/bcrypt"
)

// SeedPassword is the initial password of every seeded account. It is
// meant to be changed on first use of a real deployment.
const SeedPassword = "techstock"

// SeedDataset builds the fixed fallback dataset used when a collection is
// missing from storage or fails to deserialize.
func SeedDataset() *Dataset {
	products := []entity.Product{
		{ID: uuid.New(), Code: "PC-001", Name: "Dell Latitude 5420", Category: "Laptop", Brand: "Dell", BuyPrice: 5000, SellPrice: 6500, TaxRate: 20, Stock: 12, Reserved: 0, MinStock: 5, Location: "Store A"},
		{ID: uuid.New(), Code: "PR-102", Name: "HP LaserJet Pro", Category: "Printer", Brand: "HP", BuyPrice: 1200, SellPrice: 1800, TaxRate: 20, Stock: 3, Reserved: 0, MinStock: 5, Location: "Warehouse"},
		{ID: uuid.New(), Code: "ACC-55", Name: "Logitech MX Master 3", Category: "Accessories", Brand: "Logitech", BuyPrice: 600, SellPrice: 950, TaxRate: 20, Stock: 45, Reserved: 0, MinStock: 10, Location: "Store A"},
		{ID: uuid.New(), Code: "NET-99", Name: "Ubiquiti UniFi AP", Category: "Networking", Brand: "Ubiquiti", BuyPrice: 1100, SellPrice: 1600, TaxRate: 20, Stock: 0, Reserved: 0, MinStock: 2, Location: "Warehouse"},
		{ID: uuid.New(), Code: "PC-002", Name: "MacBook Air M2", Category: "Laptop", Brand: "Apple", BuyPrice: 10000, SellPrice: 13500, TaxRate: 20, Stock: 8, Reserved: 0, MinStock: 3, Location: "Store A"},
	}

	clients := []entity.Client{
		{ID: uuid.New(), Name: "Tech Solutions SARL", Company: "Tech Solutions", TaxID: "123456789", Email: "contact@techsol.ma", Phone: "0661123456", Address: "123 Bd Zerktouni, Casablanca", Type: enum.ClientProfessional},
		{ID: uuid.New(), Name: "Karim Bennani", Email: "karim.b@gmail.com", Phone: "0663987654", Address: "Hay Riad, Rabat", Type: enum.ClientIndividual},
		{ID: uuid.New(), Name: "Groupe Scolaire Atlas", Company: "GS Atlas", TaxID: "987654321", Email: "achat@gsatlas.ma", Phone: "0522998877", Address: "Maarif, Casablanca", Type: enum.ClientProfessional},
	}

	suppliers := []entity.Supplier{
		{ID: uuid.New(), Company: "Disway Maroc", ContactName: "Ahmed Commercial", Email: "sales@disway.ma", Phone: "0522000000", TaxID: "111222333", Address: "Zone Industrielle Sidi Maarouf", Category: "IT Wholesale"},
		{ID: uuid.New(), Company: "Smart Technologies", ContactName: "Sara Support", Email: "contact@smartech.ma", Phone: "0537000000", TaxID: "444555666", Address: "Agdal, Rabat", Category: "Network Distribution"},
	}

	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	}

	quotes := []entity.Quote{
		{
			ID: uuid.New(), Reference: "DEV-2023-0001", ClientID: clients[0].ID, ClientName: clients[0].Name,
			Date: day(2023, time.October, 25), ValidUntil: day(2023, time.November, 25), Status: enum.QuoteStatusAccepted,
			SubTotal: 13000, TaxAmount: 2600, Total: 15600,
			Items: []entity.QuoteItem{
				{ProductID: products[0].ID, ProductName: products[0].Name, Quantity: 2, UnitPrice: 6500, Total: 13000},
			},
		},
		{
			ID: uuid.New(), Reference: "DEV-2023-0002", ClientID: clients[1].ID, ClientName: clients[1].Name,
			Date: day(2023, time.October, 26), ValidUntil: day(2023, time.November, 26), Status: enum.QuoteStatusDraft,
			SubTotal: 950, TaxAmount: 190, Total: 1140,
			Items: []entity.QuoteItem{
				{ProductID: products[2].ID, ProductName: products[2].Name, Quantity: 1, UnitPrice: 950, Total: 950},
			},
		},
	}

	deliveries := []entity.DeliveryNote{
		{ID: uuid.New(), Reference: "BL-2023-089", QuoteReference: quotes[0].Reference, ClientName: clients[0].Name, Date: day(2023, time.October, 27), Status: enum.DeliveryStatusPending, ItemsCount: 2, Address: clients[0].Address, Driver: "Mohamed T."},
		{ID: uuid.New(), Reference: "BL-2023-088", QuoteReference: quotes[0].Reference, ClientName: clients[0].Name, Date: day(2023, time.October, 25), Status: enum.DeliveryStatusDelivered, ItemsCount: 5, Address: clients[0].Address, Driver: "Mohamed T."},
		{ID: uuid.New(), Reference: "BL-2023-085", ClientName: clients[2].Name, Date: day(2023, time.October, 20), Status: enum.DeliveryStatusDelivered, ItemsCount: 12, Address: clients[2].Address},
	}

	transactions := []entity.Transaction{
		{ID: uuid.New(), Date: time.Date(2023, time.October, 26, 10, 30, 0, 0, time.Local), Direction: enum.TransactionIn, Category: enum.TransactionSale, Amount: 15600, Method: "Transfer", Description: "Payment for invoice FAC-2023-0001", User: "Amine Admin"},
		{ID: uuid.New(), Date: time.Date(2023, time.October, 26, 14, 15, 0, 0, time.Local), Direction: enum.TransactionOut, Category: enum.TransactionExpense, Amount: 200, Method: "Cash", Description: "Transport costs", User: "Amine Admin"},
	}

	logs := []entity.AuditLog{
		{ID: uuid.New(), User: "Amine Admin", Role: "ADMIN", Action: "Login", Module: "Auth", Timestamp: "26/10/2023 09:00:00", Details: "Successful login from 192.168.1.10"},
		{ID: uuid.New(), User: "Amine Admin", Role: "ADMIN", Action: "Quote Created", Module: "Sales", Timestamp: "26/10/2023 09:15:30", Details: "Quote DEV-2023-0002 created for Karim Bennani"},
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on invalid cost; the seed cost is constant
		panic(err)
	}

	users := []entity.User{
		{
			ID: uuid.New(), Name: "Amine Admin", Email: "admin@techstock.ma", PasswordHash: string(hash), Role: enum.RoleAdmin,
			Permissions: []enum.Permission{enum.PermManageUsers, enum.PermViewFinance, enum.PermManageStock, enum.PermCreateSales, enum.PermApproveQuotes},
		},
		{
			ID: uuid.New(), Name: "Sarah Sales", Email: "sarah@techstock.ma", PasswordHash: string(hash), Role: enum.RoleManager,
			Permissions: []enum.Permission{enum.PermManageStock, enum.PermCreateSales, enum.PermApproveQuotes},
		},
		{
			ID: uuid.New(), Name: "Karim Cash", Email: "karim@techstock.ma", PasswordHash: string(hash), Role: enum.RoleCashier,
			Permissions: []enum.Permission{enum.PermCreateSales, enum.PermViewFinance},
		},
	}

	return &Dataset{
		Products:     products,
		Movements:    []entity.StockMovement{},
		Clients:      clients,
		Suppliers:    suppliers,
		Quotes:       quotes,
		Invoices:     []entity.Invoice{},
		Payments:     []entity.Payment{},
		Deliveries:   deliveries,
		Transactions: transactions,
		Logs:         logs,
		Users:        users,
		Counters:     map[string]int{},
	}
}
