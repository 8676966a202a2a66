package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/techstock/techstock-api/internal/domain/entity"
	"github.com/techstock/techstock-api/internal/domain/enum"
	"github.com/techstock/techstock-api/internal/domain/repository"
	"github.com/techstock/techstock-api/pkg/apperror"
)

// CreateClientInput is the input for creating a client
type CreateClientInput struct {
	Name    string          `json:"name" binding:"required"`
	Company string          `json:"company"`
	TaxID   string          `json:"tax_id"`
	Email   string          `json:"email"`
	Phone   string          `json:"phone"`
	Address string          `json:"address"`
	Type    enum.ClientType `json:"type"`
}

// UpdateClientInput is the input for updating a client's identity and
// contact fields. TotalSpent and CreditBalance belong to billing and are
// not editable here.
type UpdateClientInput struct {
	Name    *string          `json:"name"`
	Company *string          `json:"company"`
	TaxID   *string          `json:"tax_id"`
	Email   *string          `json:"email"`
	Phone   *string          `json:"phone"`
	Address *string          `json:"address"`
	Type    *enum.ClientType `json:"type"`
}

// ClientService manages client accounts and supplier reference data
type ClientService struct {
	clientRepo   repository.ClientRepository
	supplierRepo repository.SupplierRepository
	audit        *AuditService
	uow          repository.UnitOfWork
}

// NewClientService creates a new client service
func NewClientService(
	clientRepo repository.ClientRepository,
	supplierRepo repository.SupplierRepository,
	audit *AuditService,
	uow repository.UnitOfWork,
) *ClientService {
	return &ClientService{
		clientRepo:   clientRepo,
		supplierRepo: supplierRepo,
		audit:        audit,
		uow:          uow,
	}
}

// AddClient registers a new client account
func (s *ClientService) AddClient(ctx context.Context, actor entity.Actor, input CreateClientInput) (*entity.Client, error) {
	clientType := input.Type
	if clientType == "" {
		clientType = enum.ClientIndividual
	}
	if !clientType.IsValid() {
		return nil, apperror.NewBadRequestError("invalid client type")
	}

	client := entity.Client{
		ID:      uuid.New(),
		Name:    input.Name,
		Company: input.Company,
		TaxID:   input.TaxID,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
		Type:    clientType,
	}

	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		if err := s.clientRepo.Upsert(ctx, &client); err != nil {
			return err
		}
		s.audit.Record(ctx, actor, "Client Added", "Clients",
			fmt.Sprintf("Client %s registered", client.Name))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// UpdateClient changes identity and contact fields on an existing client
func (s *ClientService) UpdateClient(ctx context.Context, actor entity.Actor, id uuid.UUID, input UpdateClientInput) (*entity.Client, error) {
	var updated *entity.Client
	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		client, err := s.clientRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if client == nil {
			return apperror.NewNotFoundError("Client")
		}

		if input.Name != nil {
			client.Name = *input.Name
		}
		if input.Company != nil {
			client.Company = *input.Company
		}
		if input.TaxID != nil {
			client.TaxID = *input.TaxID
		}
		if input.Email != nil {
			client.Email = *input.Email
		}
		if input.Phone != nil {
			client.Phone = *input.Phone
		}
		if input.Address != nil {
			client.Address = *input.Address
		}
		if input.Type != nil {
			if !input.Type.IsValid() {
				return apperror.NewBadRequestError("invalid client type")
			}
			client.Type = *input.Type
		}

		if err := s.clientRepo.Upsert(ctx, client); err != nil {
			return err
		}
		s.audit.Record(ctx, actor, "Client Updated", "Clients",
			fmt.Sprintf("Client %s updated", client.Name))
		updated = client
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetClient returns one client by id
func (s *ClientService) GetClient(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	return client, nil
}

// ListClients returns clients matching a free-text search
func (s *ClientService) ListClients(ctx context.Context, search string) ([]entity.Client, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	search = strings.ToLower(search)
	out := make([]entity.Client, 0, len(clients))
	for _, c := range clients {
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.Company), search) &&
			!strings.Contains(strings.ToLower(c.Email), search) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// AddSupplier registers a supplier
func (s *ClientService) AddSupplier(ctx context.Context, actor entity.Actor, supplier entity.Supplier) (*entity.Supplier, error) {
	if supplier.Company == "" {
		return nil, apperror.NewBadRequestError("supplier company is required")
	}
	supplier.ID = uuid.New()

	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		if err := s.supplierRepo.Upsert(ctx, &supplier); err != nil {
			return err
		}
		s.audit.Record(ctx, actor, "Supplier Added", "Clients",
			fmt.Sprintf("Supplier %s registered", supplier.Company))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

// ListSuppliers returns every supplier
func (s *ClientService) ListSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	return s.supplierRepo.List(ctx)
}
