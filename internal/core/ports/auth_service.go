package ports

import (
	"context"

	"github.com/inventoryflow/inventory-api/internal/core/domain"
)

type AuthService interface {
	// Register creates a tenant account and returns a freshly issued
	// session token alongside the public user projection.
	Register(ctx context.Context, email, password, companyName string) (string, *domain.User, error)
	// Login returns domain.ErrInvalidCredentials for both an unknown
	// email and a wrong password; the two cases are indistinguishable
	// to the caller.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	UpgradePlan(ctx context.Context, tenantID string) (*domain.User, error)
}
