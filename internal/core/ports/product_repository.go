package ports

import (
	"context"

	"github.com/inventoryflow/inventory-api/internal/core/domain"
)

// ProductRepository defines persistence operations for products.
//
// ListByTenant and CountByTenant incorporate the tenant id into the query
// predicate itself; rows are never fetched broadly and filtered after the
// fact. FindByID is deliberately tenant-agnostic: callers MUST compare the
// returned product's TenantID against the authenticated tenant before any
// update or delete, and treat a mismatch exactly like absence.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	// ListByTenant returns the tenant's products ordered by creation time
	// descending (newest first). The ordering is part of the API contract.
	ListByTenant(ctx context.Context, tenantID string) ([]*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, id string, p *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	CountByTenant(ctx context.Context, tenantID string) (int64, error)
}
