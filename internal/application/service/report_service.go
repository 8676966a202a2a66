package service

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/techstock/techstock-api/internal/domain/enum"
	"github.com/techstock/techstock-api/internal/domain/repository"
)

// DashboardStats is the aggregate snapshot shown on the dashboard
type DashboardStats struct {
	Products          int     `json:"products"`
	LowStockProducts  int     `json:"low_stock_products"`
	StockValue        float64 `json:"stock_value"` // at buy price
	OpenQuotes        int     `json:"open_quotes"` // DRAFT or SENT
	UnpaidInvoices    int     `json:"unpaid_invoices"`
	Outstanding       float64 `json:"outstanding"` // total minus paid over open invoices
	PendingDeliveries int     `json:"pending_deliveries"`
}

// ReportService produces read-only aggregates and file exports
type ReportService struct {
	productRepo  repository.ProductRepository
	quoteRepo    repository.QuoteRepository
	invoiceRepo  repository.InvoiceRepository
	deliveryRepo repository.DeliveryRepository
}

// NewReportService creates a new report service
func NewReportService(
	productRepo repository.ProductRepository,
	quoteRepo repository.QuoteRepository,
	invoiceRepo repository.InvoiceRepository,
	deliveryRepo repository.DeliveryRepository,
) *ReportService {
	return &ReportService{
		productRepo:  productRepo,
		quoteRepo:    quoteRepo,
		invoiceRepo:  invoiceRepo,
		deliveryRepo: deliveryRepo,
	}
}

// Dashboard computes the stats snapshot from current state
func (s *ReportService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	stats.Products = len(products)
	for _, p := range products {
		if p.IsLowStock() {
			stats.LowStockProducts++
		}
		stats.StockValue += float64(p.Stock) * p.BuyPrice
	}

	quotes, err := s.quoteRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, q := range quotes {
		if q.Status == enum.QuoteStatusDraft || q.Status == enum.QuoteStatusSent {
			stats.OpenQuotes++
		}
	}

	invoices, err := s.invoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, inv := range invoices {
		if inv.Status != enum.InvoiceStatusPaid {
			stats.UnpaidInvoices++
			stats.Outstanding += inv.Total - inv.PaidAmount
		}
	}

	deliveries, err := s.deliveryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range deliveries {
		if d.Status == enum.DeliveryStatusPending || d.Status == enum.DeliveryStatusInTransit {
			stats.PendingDeliveries++
		}
	}

	return stats, nil
}

// ExportInventoryXLSX renders the product catalogue as a spreadsheet
func (s *ReportService) ExportInventoryXLSX(ctx context.Context) ([]byte, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Inventory"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headers := []string{"Code", "Name", "Category", "Brand", "Buy Price", "Sell Price", "Stock", "Reserved", "Min Stock", "Location"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, p := range products {
		values := []interface{}{p.Code, p.Name, p.Category, p.Brand, p.BuyPrice, p.SellPrice, p.Stock, p.Reserved, p.MinStock, p.Location}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write inventory workbook: %w", err)
	}
	return buf.Bytes(), nil
}
