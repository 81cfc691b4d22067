package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/storefront-api/internal/domain"
)

type stubValidator struct {
	claims *domain.Claims
	err    error
}

func (s stubValidator) ValidateToken(string) (*domain.Claims, error) {
	return s.claims, s.err
}

func claimsEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims := ClaimsFromContext(r.Context()); claims != nil {
			w.Header().Set("X-User", "autenticado")
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	seller := &domain.Claims{UserID: 7, UserRoleID: domain.RoleSeller}

	tests := []struct {
		name       string
		header     string
		validator  stubValidator
		wantStatus int
		wantUser   bool
	}{
		{name: "requisição anônima segue sem usuário", wantStatus: http.StatusNoContent},
		{name: "token válido", header: "Bearer abc", validator: stubValidator{claims: seller}, wantStatus: http.StatusNoContent, wantUser: true},
		{name: "token inválido", header: "Bearer abc", validator: stubValidator{err: errors.New("expired")}, wantStatus: http.StatusUnauthorized},
		{name: "sem prefixo Bearer", header: "abc", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/storefronts/loja", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.validator)(claimsEcho()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUser, rec.Header().Get("X-User") != "")
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	customer := &domain.Claims{UserID: 9, UserRoleID: domain.RoleCustomer}
	admin := &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}

	handler := func(claims *domain.Claims) *httptest.ResponseRecorder {
		chain := AuthMiddleware(stubValidator{claims: claims})(SellerOrAdmin()(claimsEcho()))
		req := httptest.NewRequest(http.MethodGet, "/v1/me/storefronts", nil)
		if claims != nil {
			req.Header.Set("Authorization", "Bearer token")
		}
		rec := httptest.NewRecorder()
		chain.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusUnauthorized, handler(nil).Code)
	assert.Equal(t, http.StatusForbidden, handler(customer).Code)
	assert.Equal(t, http.StatusNoContent, handler(admin).Code)
}

func TestCors(t *testing.T) {
	chain := Cors([]string{"https://loja.example.com"})(claimsEcho())

	req := httptest.NewRequest(http.MethodOptions, "/v1/plans", nil)
	req.Header.Set("Origin", "https://loja.example.com")
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://loja.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/plans", nil)
	req.Header.Set("Origin", "https://outra.example.com")
	rec = httptest.NewRecorder()
	chain.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggingMiddleware_CorrelationID(t *testing.T) {
	chain := LogPanicMiddleware()(LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	req := httptest.NewRequest(http.MethodGet, "/v1/plans", nil)
	req.Header.Set(CorrelationIDHeader, "req-42")
	rec := httptest.NewRecorder()

	require.NotPanics(t, func() { chain.ServeHTTP(rec, req) })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get(CorrelationIDHeader))
}
