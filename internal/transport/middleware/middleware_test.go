package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
	"github.com/ledgerline/ledgerline-backend/pkg/ctxutil"
)

type tokenValidatorMock struct {
	ValidateAccessTokenFunc func(token string) (domain.Principal, error)
}

func (m *tokenValidatorMock) ValidateAccessToken(token string) (domain.Principal, error) {
	if m.ValidateAccessTokenFunc == nil {
		panic("tokenValidatorMock.ValidateAccessTokenFunc: method is nil but ValidateAccessToken was just called")
	}
	return m.ValidateAccessTokenFunc(token)
}

func TestAuth_AnonymousPassesThrough(t *testing.T) {
	t.Parallel()

	called := false
	handler := Auth(&tokenValidatorMock{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if _, ok := ctxutil.PrincipalFromCtx(r.Context()); ok {
			t.Error("expected no principal for anonymous request")
		}
	}))

	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !called {
		t.Error("expected handler to be called")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}
}

func TestAuth_ValidTokenSetsPrincipal(t *testing.T) {
	t.Parallel()

	want := domain.Principal{
		UserID:    uuid.New(),
		Role:      domain.UserRoleMember,
		CompanyID: uuid.New(),
	}
	validator := &tokenValidatorMock{
		ValidateAccessTokenFunc: func(token string) (domain.Principal, error) {
			if token != "good-token" {
				t.Errorf("token: got %q, want good-token", token)
			}
			return want, nil
		},
	}

	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := ctxutil.PrincipalFromCtx(r.Context())
		if !ok {
			t.Fatal("expected a principal in context")
		}
		if p.UserID != want.UserID {
			t.Errorf("user ID: got %v, want %v", p.UserID, want.UserID)
		}
	}))

	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
}

func TestAuth_InvalidTokenRejected(t *testing.T) {
	t.Parallel()

	validator := &tokenValidatorMock{
		ValidateAccessTokenFunc: func(token string) (domain.Principal, error) {
			return domain.Principal{}, errors.New("bad signature")
		},
	}

	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not be called for an invalid token")
	}))

	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	req.Header.Set("Authorization", "Bearer forged")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", rec.Code)
	}
}

func TestAuth_NonBearerSchemeIgnored(t *testing.T) {
	t.Parallel()

	handler := Auth(&tokenValidatorMock{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.PrincipalFromCtx(r.Context()); ok {
			t.Error("expected no principal for basic auth")
		}
	}))

	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	t.Parallel()

	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := ctxutil.RequestIDFromCtx(r.Context()); id == "" {
			t.Error("expected a request ID in context")
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("expected X-Request-Id response header")
	}
}

func TestRequestID_PropagatesIncoming(t *testing.T) {
	t.Parallel()

	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := ctxutil.RequestIDFromCtx(r.Context()); id != "req-123" {
			t.Errorf("request ID: got %q, want req-123", id)
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "req-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-Id"); got != "req-123" {
		t.Errorf("response header: got %q, want req-123", got)
	}
}

func TestChain_Order(t *testing.T) {
	t.Parallel()

	var order []string
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	handler := Chain(mw("first"), mw("second"), mw("third"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	want := []string{"first", "second", "third", "handler"}
	if len(order) != len(want) {
		t.Fatalf("calls: got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("calls: got %v, want %v", order, want)
		}
	}
}
