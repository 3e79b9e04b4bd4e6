package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/nahidahmed02/hungry-den-server/internal/core/ports"
)

type stubUserService struct {
	registerFn func(ctx context.Context, email string, profile map[string]any) (*ports.WriteResult, error)
	setRoleFn  func(ctx context.Context, email string) (*ports.WriteResult, error)
}

func (s *stubUserService) RegisterOrReplace(ctx context.Context, email string, profile map[string]any) (*ports.WriteResult, error) {
	return s.registerFn(ctx, email, profile)
}

func (s *stubUserService) ListUsers(_ context.Context) ([]ports.UserView, error) {
	return []ports.UserView{{Email: "a@x.com", Role: "user"}}, nil
}

func (s *stubUserService) PromoteToAdmin(ctx context.Context, email string) (*ports.WriteResult, error) {
	return s.setRoleFn(ctx, email)
}

func (s *stubUserService) PromoteToDeliveryMan(ctx context.Context, email string) (*ports.WriteResult, error) {
	return s.setRoleFn(ctx, email)
}

func (s *stubUserService) DemoteFromAdmin(ctx context.Context, email string) (*ports.WriteResult, error) {
	return s.setRoleFn(ctx, email)
}

func (s *stubUserService) DemoteFromDeliveryMan(ctx context.Context, email string) (*ports.WriteResult, error) {
	return s.setRoleFn(ctx, email)
}

func TestUserHandler_MakeAdmin(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		setRoleFn: func(ctx context.Context, email string) (*ports.WriteResult, error) {
			if email != "a@x.com" {
				t.Fatalf("unexpected email: %s", email)
			}
			return &ports.WriteResult{MatchedCount: 1, ModifiedCount: 1}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/users/admin/a@x.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("email")
	c.SetParamValues("a@x.com")

	if err := handler.MakeAdmin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["matched_count"] != float64(1) || resp["modified_count"] != float64(1) {
		t.Fatalf("unexpected counts: %+v", resp)
	}
}

func TestUserHandler_MakeAdmin_UnknownEmailNoOp(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		setRoleFn: func(ctx context.Context, email string) (*ports.WriteResult, error) {
			return &ports.WriteResult{}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/users/admin/nobody@x.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("email")
	c.SetParamValues("nobody@x.com")

	if err := handler.MakeAdmin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	// The no-op is still a 200; the caller sees matched_count 0.
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["matched_count"] != float64(0) {
		t.Fatalf("expected matched_count 0, got %+v", resp)
	}
}

func TestUserHandler_Register(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		registerFn: func(ctx context.Context, email string, profile map[string]any) (*ports.WriteResult, error) {
			if email != "a@x.com" {
				t.Fatalf("unexpected email: %s", email)
			}
			if profile["name"] != "Alice" {
				t.Fatalf("unexpected profile: %+v", profile)
			}
			return &ports.WriteResult{UpsertedID: "abc123"}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/users/a@x.com", strings.NewReader(`{"name":"Alice"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("email")
	c.SetParamValues("a@x.com")

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["upserted_id"] != "abc123" {
		t.Fatalf("expected upserted_id, got %+v", resp)
	}
}

func TestUserHandler_List(t *testing.T) {
	e := echo.New()
	handler := NewUserHandler(&stubUserService{})

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

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
	if len(resp) != 1 || resp[0]["email"] != "a@x.com" {
		t.Fatalf("unexpected users: %+v", resp)
	}
}
