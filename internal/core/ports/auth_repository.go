package ports

import (
	"context"

	"github.com/inventoryflow/inventory-api/internal/core/domain"
)

// AuthRepository defines the interface for user account persistence.
// It is the only component that owns User records.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByTenantID(ctx context.Context, tenantID string) (*domain.User, error)
	UpdatePlan(ctx context.Context, tenantID, plan string) (*domain.User, error)
}
