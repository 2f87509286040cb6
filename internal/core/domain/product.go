package domain

import (
	"errors"
	"time"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrProductNotFound = errors.New("product not found")
var ErrQuotaExceeded = errors.New("product limit reached")
var ErrTokenInvalid = errors.New("invalid token")
var ErrTokenExpired = errors.New("token expired")

// LowStockThreshold is the quantity at or below which a product triggers
// a restock alert to the tenant.
const LowStockThreshold = 10

// Product is an inventory item owned by exactly one tenant. Every read
// and write path filters or compares on TenantID before exposing it.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	ImageURL  string    `json:"image_url,omitempty"`
	TenantID  string    `json:"tenant_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LowStock reports whether the product's quantity has fallen to the
// alerting threshold.
func (p *Product) LowStock() bool {
	return p.Quantity <= LowStockThreshold
}
