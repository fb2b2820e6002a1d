package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"
	mockService "beacon/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWithAuth(m *AuthMiddleware, authHeader string, required entity.Role) *httptest.ResponseRecorder {
	e := echo.New()
	e.GET("/whoami", func(c echo.Context) error {
		userID, _ := GetUserID(c)

		return c.String(http.StatusOK, userID.String())
	}, m.Authenticate, m.RequireRole(required))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthMiddleware_AcceptsMatchingRole(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)
	userID := uuid.New()

	tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID, Roles: []string{"service"}}, nil)

	rec := serveWithAuth(m, "Bearer good", entity.RoleService)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID.String(), rec.Body.String())
}

func TestAuthMiddleware_AdminPassesEveryRole(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().ValidateToken("admin").Return(&service.Claims{UserID: uuid.New(), Roles: []string{"admin"}}, nil)

	rec := serveWithAuth(m, "Bearer admin", entity.RoleService)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
	tokenSvc.EXPECT().ValidateToken("user").Return(&service.Claims{UserID: uuid.New(), Roles: []string{"user"}}, nil)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing header", header: "", want: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", want: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer expired", want: http.StatusUnauthorized},
		{name: "wrong role", header: "Bearer user", want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveWithAuth(m, tt.header, entity.RoleAdmin)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
