package ports

import (
	"context"

	"github.com/inventoryflow/inventory-api/internal/core/domain"
)

// ProductInput carries validated product attributes from the transport
// layer. It never includes a tenant id: ownership is stamped by the
// service from the authenticated context.
type ProductInput struct {
	Name     string
	Category string
	Quantity int
	Price    float64
	ImageURL string
}

// ProductService defines use-case operations for a tenant's inventory.
// Every operation takes the authenticated tenant id as a mandatory
// parameter; a product belonging to another tenant is reported as
// domain.ErrProductNotFound, never as a distinct forbidden signal.
type ProductService interface {
	List(ctx context.Context, tenantID string) ([]*domain.Product, error)
	Create(ctx context.Context, tenantID string, input ProductInput) (*domain.Product, error)
	Update(ctx context.Context, tenantID, id string, input ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, tenantID, id string) (*domain.Product, error)
}
