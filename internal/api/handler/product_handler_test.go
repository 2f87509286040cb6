package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/inventoryflow/inventory-api/internal/core/domain"
	"github.com/inventoryflow/inventory-api/internal/core/ports"
)

type stubProductService struct {
	listFn   func(ctx context.Context, tenantID string) ([]*domain.Product, error)
	createFn func(ctx context.Context, tenantID string, input ports.ProductInput) (*domain.Product, error)
	updateFn func(ctx context.Context, tenantID, id string, input ports.ProductInput) (*domain.Product, error)
	deleteFn func(ctx context.Context, tenantID, id string) (*domain.Product, error)
}

func (s *stubProductService) List(ctx context.Context, tenantID string) ([]*domain.Product, error) {
	return s.listFn(ctx, tenantID)
}

func (s *stubProductService) Create(ctx context.Context, tenantID string, input ports.ProductInput) (*domain.Product, error) {
	return s.createFn(ctx, tenantID, input)
}

func (s *stubProductService) Update(ctx context.Context, tenantID, id string, input ports.ProductInput) (*domain.Product, error) {
	return s.updateFn(ctx, tenantID, id, input)
}

func (s *stubProductService) Delete(ctx context.Context, tenantID, id string) (*domain.Product, error) {
	return s.deleteFn(ctx, tenantID, id)
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("user_id", "user_1")
	c.Set("tenant_id", "tenant_1")
	return c
}

func TestProductHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		listFn: func(ctx context.Context, tenantID string) ([]*domain.Product, error) {
			if tenantID != "tenant_1" {
				t.Fatalf("unexpected tenant id: %s", tenantID)
			}
			return []*domain.Product{
				{ID: "p2", Name: "Newest", TenantID: tenantID},
				{ID: "p1", Name: "Oldest", TenantID: tenantID},
			}, nil
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[0]["id"] != "p2" {
		t.Fatalf("unexpected list payload: %+v", resp)
	}
}

func TestProductHandler_List_NoIdentity(t *testing.T) {
	e := newTestEcho()
	handler := NewProductHandler(&stubProductService{})

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestProductHandler_Create(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		createFn: func(ctx context.Context, tenantID string, input ports.ProductInput) (*domain.Product, error) {
			if input.Name != "Widget" || input.Quantity != 0 || input.Price != 9.5 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Product{ID: "p1", Name: input.Name, Quantity: input.Quantity, Price: input.Price, TenantID: tenantID}, nil
		},
	}
	handler := NewProductHandler(stub)

	// Quantity zero must pass validation; it is a legal stock level.
	body := strings.NewReader(`{"name":"Widget","category":"tools","quantity":0,"price":9.5}`)
	req := httptest.NewRequest(http.MethodPost, "/products", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestProductHandler_Create_MissingQuantity(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		createFn: func(ctx context.Context, tenantID string, input ports.ProductInput) (*domain.Product, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewProductHandler(stub)

	body := strings.NewReader(`{"name":"Widget","category":"tools","price":9.5}`)
	req := httptest.NewRequest(http.MethodPost, "/products", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestProductHandler_Create_NegativeQuantity(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		createFn: func(ctx context.Context, tenantID string, input ports.ProductInput) (*domain.Product, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewProductHandler(stub)

	body := strings.NewReader(`{"name":"Widget","category":"tools","quantity":-1,"price":9.5}`)
	req := httptest.NewRequest(http.MethodPost, "/products", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestProductHandler_Create_QuotaExceeded(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		createFn: func(ctx context.Context, tenantID string, input ports.ProductInput) (*domain.Product, error) {
			return nil, domain.ErrQuotaExceeded
		},
	}
	handler := NewProductHandler(stub)

	body := strings.NewReader(`{"name":"Widget","category":"tools","quantity":1,"price":9.5}`)
	req := httptest.NewRequest(http.MethodPost, "/products", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	if err := handler.Create(c); !errors.Is(err, domain.ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
}

func TestProductHandler_Update_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		updateFn: func(ctx context.Context, tenantID, id string, input ports.ProductInput) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	handler := NewProductHandler(stub)

	body := strings.NewReader(`{"name":"Widget","category":"tools","quantity":1,"price":9.5}`)
	req := httptest.NewRequest(http.MethodPut, "/products/p404", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p404")

	if err := handler.Update(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductHandler_Delete(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		deleteFn: func(ctx context.Context, tenantID, id string) (*domain.Product, error) {
			if id != "p1" || tenantID != "tenant_1" {
				t.Fatalf("unexpected args: %s %s", tenantID, id)
			}
			return &domain.Product{ID: id, TenantID: tenantID}, nil
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/products/p1", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "product deleted" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
