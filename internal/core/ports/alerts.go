package ports

import "context"

// LowStockAlert describes a product whose quantity fell to the restock
// threshold. It is the unit of work handed to the alert dispatcher.
type LowStockAlert struct {
	TenantID    string
	ProductID   string
	ProductName string
	Quantity    int
}

// AlertService delivers a single low-stock alert. Delivery is
// fire-and-forget from the caller's perspective: failures are logged by
// the dispatcher and never surface to the request that triggered them.
type AlertService interface {
	Process(ctx context.Context, alert LowStockAlert) error
}

// Mailer sends a plain-text email. Implementations must be safe for
// concurrent use.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
