package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/inventoryflow/inventory-api/internal/core/ports"
)

// AlertDeduper abstracts the alert cooldown store (Redis). It keeps a
// tenant from being emailed repeatedly about the same product while the
// quantity hovers around the threshold.
type AlertDeduper interface {
	IsDuplicate(ctx context.Context, tenantID, productID string) (bool, error)
	Mark(ctx context.Context, tenantID, productID string) error
}

type alertService struct {
	users  ports.AuthRepository
	mailer ports.Mailer
	dedup  AlertDeduper
	log    zerolog.Logger
}

// NewAlertService returns an AlertService that emails the owning tenant
// about low-stock products.
func NewAlertService(users ports.AuthRepository, mailer ports.Mailer, dedup AlertDeduper, log zerolog.Logger) ports.AlertService {
	return &alertService{users: users, mailer: mailer, dedup: dedup, log: log}
}

// Process delivers a single low-stock alert. Duplicate alerts inside the
// cooldown window are silently skipped.
func (s *alertService) Process(ctx context.Context, alert ports.LowStockAlert) error {
	isDup, err := s.dedup.IsDuplicate(ctx, alert.TenantID, alert.ProductID)
	if err != nil {
		s.log.Warn().Err(err).Str("product_id", alert.ProductID).Msg("alert dedup check failed, sending anyway")
	} else if isDup {
		s.log.Debug().Str("product_id", alert.ProductID).Str("tenant_id", alert.TenantID).Msg("duplicate alert skipped")
		return nil
	}

	user, err := s.users.FindByTenantID(ctx, alert.TenantID)
	if err != nil {
		return fmt.Errorf("process alert: %w", err)
	}

	// Mark before sending so a retry storm cannot re-spam the tenant.
	if markErr := s.dedup.Mark(ctx, alert.TenantID, alert.ProductID); markErr != nil {
		s.log.Warn().Err(markErr).Str("product_id", alert.ProductID).Msg("failed to set alert cooldown key")
	}

	subject := fmt.Sprintf("Low Stock Alert: %s", alert.ProductName)
	body := fmt.Sprintf(
		"Hello %s,\n\nThe stock for %q is low. Only %d remaining. Please restock soon.\n\n- InventoryFlow",
		user.CompanyName, alert.ProductName, alert.Quantity,
	)

	if err := s.mailer.Send(ctx, user.Email, subject, body); err != nil {
		return fmt.Errorf("process alert: send mail: %w", err)
	}

	s.log.Info().
		Str("tenant_id", alert.TenantID).
		Str("product_id", alert.ProductID).
		Int("quantity", alert.Quantity).
		Msg("low stock alert sent")

	return nil
}
