package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/inventoryflow/inventory-api/internal/core/domain"
	"github.com/inventoryflow/inventory-api/internal/core/ports"
)

// AlertDispatcher is the interface the service uses to hand off low-stock
// alerts for asynchronous delivery.
type AlertDispatcher interface {
	Enqueue(alert ports.LowStockAlert)
}

// ProductService implements tenant-scoped inventory operations. The
// tenant id on every call comes from the verified token claims, never
// from the request payload.
type ProductService struct {
	repo   ports.ProductRepository
	users  ports.AuthRepository
	alerts AlertDispatcher
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, users ports.AuthRepository, alerts AlertDispatcher, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, users: users, alerts: alerts, logger: logger}
}

func (s *ProductService) List(ctx context.Context, tenantID string) ([]*domain.Product, error) {
	return s.repo.ListByTenant(ctx, tenantID)
}

// Create inserts a product for the tenant after checking the plan quota.
// The count-then-insert pair is not atomic: concurrent creates from the
// same tenant can overshoot the cap slightly. Accepted relaxation.
func (s *ProductService) Create(ctx context.Context, tenantID string, input ports.ProductInput) (*domain.Product, error) {
	user, err := s.users.FindByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if quota := user.ProductQuota(); quota >= 0 {
		count, err := s.repo.CountByTenant(ctx, tenantID)
		if err != nil {
			return nil, err
		}
		if count >= int64(quota) {
			return nil, domain.ErrQuotaExceeded
		}
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:      input.Name,
		Category:  input.Category,
		Quantity:  input.Quantity,
		Price:     input.Price,
		ImageURL:  input.ImageURL,
		TenantID:  tenantID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("tenant_id", tenantID).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("tenant_id", tenantID).Msg("product created")

	s.maybeAlert(created)
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, tenantID, id string, input ports.ProductInput) (*domain.Product, error) {
	existing, err := s.getOwned(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Category = input.Category
	existing.Quantity = input.Quantity
	existing.Price = input.Price
	existing.ImageURL = input.ImageURL
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, id, existing)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return nil, err
	}

	s.maybeAlert(updated)
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, tenantID, id string) (*domain.Product, error) {
	existing, err := s.getOwned(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return nil, err
	}
	return existing, nil
}

// getOwned fetches a product and verifies tenant ownership. A product
// belonging to another tenant is reported as not found so that the
// existence of other tenants' resources never leaks.
func (s *ProductService) getOwned(ctx context.Context, tenantID, id string) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.TenantID != tenantID {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

func (s *ProductService) maybeAlert(p *domain.Product) {
	if !p.LowStock() {
		return
	}
	s.alerts.Enqueue(ports.LowStockAlert{
		TenantID:    p.TenantID,
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    p.Quantity,
	})
}
