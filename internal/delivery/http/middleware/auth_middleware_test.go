package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"sparestock/internal/domain/entity"
	domainerrors "sparestock/internal/domain/errors"
	"sparestock/internal/domain/policy"
	"sparestock/internal/domain/service"
	mockSvc "sparestock/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders/my-orders", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	c, _ := newAuthTestContext("")

	err := m.Authenticate(okHandler)(c)

	assert.True(t, errors.Is(err, domainerrors.ErrTokenMissing))
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	c, _ := newAuthTestContext("Basic dXNlcjpwYXNz")

	err := m.Authenticate(okHandler)(c)

	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateToken("garbage").
		Return(nil, errors.New("token is malformed"))

	m := NewAuthMiddleware(tokenSvc)
	c, _ := newAuthTestContext("Bearer garbage")

	err := m.Authenticate(okHandler)(c)

	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestAuthMiddleware_Authenticate_SetsIdentity(t *testing.T) {
	userID := uuid.New()
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateToken("valid-token").
		Return(&service.Claims{UserID: userID, Role: entity.RoleStaff}, nil)

	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthTestContext("Bearer valid-token")

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, c.Get(ContextKeyUserID))
	assert.Equal(t, entity.RoleStaff, c.Get(ContextKeyRole))
}

func TestAuthMiddleware_Require_DeniesBuyerLedgerAccess(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	c, _ := newAuthTestContext("")
	c.Set(ContextKeyRole, entity.RoleBuyer)

	err := m.Require(policy.ActionViewAllOrders)(okHandler)(c)

	assert.True(t, errors.Is(err, domainerrors.ErrAccessDenied))
}

func TestAuthMiddleware_Require_DeniesStaffProductMutation(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	c, _ := newAuthTestContext("")
	c.Set(ContextKeyRole, entity.RoleStaff)

	err := m.Require(policy.ActionManageProducts)(okHandler)(c)

	assert.True(t, errors.Is(err, domainerrors.ErrAccessDenied))
}

func TestAuthMiddleware_Require_AllowsManagerProductMutation(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	c, rec := newAuthTestContext("")
	c.Set(ContextKeyRole, entity.RoleManager)

	err := m.Require(policy.ActionManageProducts)(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Require_DeniesWhenRoleMissing(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	c, _ := newAuthTestContext("")

	err := m.Require(policy.ActionViewProducts)(okHandler)(c)

	assert.True(t, errors.Is(err, domainerrors.ErrAccessDenied))
}
