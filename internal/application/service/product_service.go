package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/techstock/techstock-api/internal/domain/entity"
	"github.com/techstock/techstock-api/internal/domain/enum"
	"github.com/techstock/techstock-api/internal/domain/repository"
	"github.com/techstock/techstock-api/pkg/apperror"
)

// CreateProductInput is the input for creating a product
type CreateProductInput struct {
	Code      string  `json:"code" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Category  string  `json:"category"`
	Brand     string  `json:"brand"`
	BuyPrice  float64 `json:"buy_price"`
	SellPrice float64 `json:"sell_price"`
	TaxRate   float64 `json:"tax_rate"`
	Stock     int     `json:"stock"`
	MinStock  int     `json:"min_stock"`
	Location  string  `json:"location"`
}

// UpdateProductInput is the input for updating a product. Stock and
// reserved counters are deliberately absent: they only move through
// the stock ledger.
type UpdateProductInput struct {
	Code      *string  `json:"code"`
	Name      *string  `json:"name"`
	Category  *string  `json:"category"`
	Brand     *string  `json:"brand"`
	BuyPrice  *float64 `json:"buy_price"`
	SellPrice *float64 `json:"sell_price"`
	TaxRate   *float64 `json:"tax_rate"`
	MinStock  *int     `json:"min_stock"`
	Location  *string  `json:"location"`
}

// ProductService handles catalogue management
type ProductService struct {
	productRepo repository.ProductRepository
	stock       *StockService
	audit       *AuditService
	uow         repository.UnitOfWork
	now         func() time.Time
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	stock *StockService,
	audit *AuditService,
	uow repository.UnitOfWork,
) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		stock:       stock,
		audit:       audit,
		uow:         uow,
		now:         time.Now,
	}
}

// AddProduct registers a new article. A non-zero opening stock leaves
// an IN movement in the ledger so the quantity is accounted for.
func (s *ProductService) AddProduct(ctx context.Context, actor entity.Actor, input CreateProductInput) (*entity.Product, error) {
	if input.Code == "" || input.Name == "" {
		return nil, apperror.NewBadRequestError("code and name are required")
	}

	product := entity.Product{
		ID:        uuid.New(),
		Code:      input.Code,
		Name:      input.Name,
		Category:  input.Category,
		Brand:     input.Brand,
		BuyPrice:  input.BuyPrice,
		SellPrice: input.SellPrice,
		TaxRate:   input.TaxRate,
		Stock:     input.Stock,
		Reserved:  0,
		MinStock:  input.MinStock,
		Location:  input.Location,
		CreatedAt: s.now(),
	}

	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		if err := s.productRepo.Upsert(ctx, &product); err != nil {
			return err
		}
		if product.Stock > 0 {
			if err := s.stock.RecordMovement(ctx, actor, product.ID, product.Name, enum.MovementIn, product.Stock, "Initial stock"); err != nil {
				return err
			}
		}
		s.audit.Record(ctx, actor, "Product Created", "Inventory",
			fmt.Sprintf("Product %s (%s) added to catalogue", product.Name, product.Code))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct changes catalogue fields on an existing product
func (s *ProductService) UpdateProduct(ctx context.Context, actor entity.Actor, id uuid.UUID, input UpdateProductInput) (*entity.Product, error) {
	var updated *entity.Product
	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		product, err := s.productRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return apperror.NewNotFoundError("Product")
		}

		if input.Code != nil {
			product.Code = *input.Code
		}
		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Category != nil {
			product.Category = *input.Category
		}
		if input.Brand != nil {
			product.Brand = *input.Brand
		}
		if input.BuyPrice != nil {
			product.BuyPrice = *input.BuyPrice
		}
		if input.SellPrice != nil {
			product.SellPrice = *input.SellPrice
		}
		if input.TaxRate != nil {
			product.TaxRate = *input.TaxRate
		}
		if input.MinStock != nil {
			product.MinStock = *input.MinStock
		}
		if input.Location != nil {
			product.Location = *input.Location
		}

		if err := s.productRepo.Upsert(ctx, product); err != nil {
			return err
		}
		s.audit.Record(ctx, actor, "Product Updated", "Inventory",
			fmt.Sprintf("Product %s updated", product.Name))
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteProduct removes a product from the catalogue. Historical stock
// movements referencing it are kept.
func (s *ProductService) DeleteProduct(ctx context.Context, actor entity.Actor, id uuid.UUID) error {
	return s.uow.Execute(ctx, func(ctx context.Context) error {
		product, err := s.productRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return apperror.NewNotFoundError("Product")
		}
		if err := s.productRepo.Delete(ctx, id); err != nil {
			return err
		}
		s.audit.Record(ctx, actor, "Product Deleted", "Inventory",
			fmt.Sprintf("Product %s (%s) removed from catalogue", product.Name, product.Code))
		return nil
	})
}

// GetProduct returns one product by id
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts returns the catalogue filtered by free-text search and category
func (s *ProductService) ListProducts(ctx context.Context, search, category string) ([]entity.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(search)
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Code), search) &&
			!strings.Contains(strings.ToLower(p.Brand), search) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// LowStockProducts returns products at or below their reorder threshold
func (s *ProductService) LowStockProducts(ctx context.Context) ([]entity.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Product, 0)
	for _, p := range products {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out, nil
}
