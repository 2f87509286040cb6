package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/inventoryflow/inventory-api/internal/core/domain"
)

func TestTokenService_IssueVerify(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("user_1", "tenant_1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "user_1" || claims.TenantID != "tenant_1" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestTokenService_VerifyIdempotent(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("user_1", "tenant_1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	first, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("first verify: %v", err)
	}
	second, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("second verify: %v", err)
	}
	if *first != *second {
		t.Fatalf("verify not idempotent: %+v vs %+v", first, second)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	// Well-signed token whose expiry is already in the past.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   "user_1",
		"tenant_id": "tenant_1",
		"iat":       time.Now().Add(-2 * time.Hour).Unix(),
		"exp":       time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Verify(signed); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("other-secret", time.Hour)
	svc := NewTokenService("secret", time.Hour)

	token, err := issuer.Issue("user_1", "tenant_1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := svc.Verify(token); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_WrongAlgorithm(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	other := jwt.NewWithClaims(jwt.SigningMethodHS384, jwt.MapClaims{
		"user_id":   "user_1",
		"tenant_id": "tenant_1",
		"exp":       time.Now().Add(time.Hour).Unix(),
	})
	signed, err := other.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Verify(signed); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	if _, err := svc.Verify("not-a-token"); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_MissingTenantClaim(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	bare := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user_1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := bare.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Verify(signed); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
