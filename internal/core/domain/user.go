package domain

import "time"

const (
	PlanFree    = "free"
	PlanPremium = "premium"
)

// FreeProductLimit caps how many products a free-plan tenant may hold.
const FreeProductLimit = 50

// User models a registered tenant account. TenantID is assigned once at
// registration and is the sole isolation key for all tenant-owned data.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CompanyName  string    `json:"company_name"`
	TenantID     string    `json:"tenant_id"`
	Plan         string    `json:"plan"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProductQuota returns the product cap for the user's plan.
// A negative value means unlimited.
func (u *User) ProductQuota() int {
	if u.Plan == PlanPremium {
		return -1
	}
	return FreeProductLimit
}
