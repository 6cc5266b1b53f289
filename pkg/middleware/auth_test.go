package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"shop-api/internal/data/entity"
	"shop-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error) {
	args := m.Called(ctx, phoneNumber)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) ExistsByPhoneNumber(ctx context.Context, phoneNumber string) (bool, error) {
	args := m.Called(ctx, phoneNumber)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

var testJWTConfig = utils.JWTConfig{
	Secret:      "gate-test-secret",
	ExpiryHours: 1,
}

func gateUser(role string) *entity.User {
	return &entity.User{
		Base: entity.Base{
			ID: uuid.New(),
		},
		FullName:    "Budi Santoso",
		PhoneNumber: "081234567890",
		IsActive:    true,
		RoleName:    role,
	}
}

// serveGate menjalankan satu request lewat Gate dan mencatat apakah
// handler di belakangnya sempat jalan
func serveGate(t *testing.T, userRepo *mockUserRepo, method, path, token string) (*httptest.ResponseRecorder, bool, context.Context) {
	t.Helper()

	policy := DefaultPolicy("/api/v1")
	gate := Gate(policy, testJWTConfig, userRepo, zap.NewNop())

	reached := false
	var reqCtx context.Context
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		reqCtx = r.Context()
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	gate(next).ServeHTTP(rec, req)

	return rec, reached, reqCtx
}

func TestGate(t *testing.T) {
	t.Parallel()

	t.Run("public route passes without token", func(t *testing.T) {
		t.Parallel()
		userRepo := &mockUserRepo{}

		rec, reached, _ := serveGate(t, userRepo, "GET", "/api/v1/products", "")

		assert.True(t, reached)
		assert.Equal(t, http.StatusOK, rec.Code)
		userRepo.AssertNotCalled(t, "FindByPhoneNumber", mock.Anything, mock.Anything)
	})

	t.Run("missing token on protected route", func(t *testing.T) {
		t.Parallel()
		rec, reached, _ := serveGate(t, &mockUserRepo{}, "POST", "/api/v1/orders", "")

		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		t.Parallel()
		rec, reached, _ := serveGate(t, &mockUserRepo{}, "POST", "/api/v1/orders", "not-a-jwt")

		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with wrong secret rejected", func(t *testing.T) {
		t.Parallel()

		wrongCfg := utils.JWTConfig{Secret: "other-secret", ExpiryHours: 1}
		token, _, err := utils.GenerateToken(wrongCfg, uuid.New(), "081234567890")
		require.NoError(t, err)

		rec, reached, _ := serveGate(t, &mockUserRepo{}, "POST", "/api/v1/orders", token)

		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token subject without user rejected", func(t *testing.T) {
		t.Parallel()
		userRepo := &mockUserRepo{}
		userRepo.On("FindByPhoneNumber", mock.Anything, "081234567890").Return(nil, nil)

		token, _, err := utils.GenerateToken(testJWTConfig, uuid.New(), "081234567890")
		require.NoError(t, err)

		rec, reached, _ := serveGate(t, userRepo, "POST", "/api/v1/orders", token)

		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("deactivated user rejected", func(t *testing.T) {
		t.Parallel()
		userRepo := &mockUserRepo{}
		user := gateUser(entity.RoleUser)
		user.IsActive = false
		userRepo.On("FindByPhoneNumber", mock.Anything, user.PhoneNumber).Return(user, nil)

		token, _, err := utils.GenerateToken(testJWTConfig, user.ID, user.PhoneNumber)
		require.NoError(t, err)

		rec, reached, _ := serveGate(t, userRepo, "POST", "/api/v1/orders", token)

		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("user role cannot manage categories", func(t *testing.T) {
		t.Parallel()
		userRepo := &mockUserRepo{}
		user := gateUser(entity.RoleUser)
		userRepo.On("FindByPhoneNumber", mock.Anything, user.PhoneNumber).Return(user, nil)

		token, _, err := utils.GenerateToken(testJWTConfig, user.ID, user.PhoneNumber)
		require.NoError(t, err)

		rec, reached, _ := serveGate(t, userRepo, "POST", "/api/v1/categories", token)

		assert.False(t, reached)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin cannot place orders", func(t *testing.T) {
		t.Parallel()
		userRepo := &mockUserRepo{}
		user := gateUser(entity.RoleAdmin)
		userRepo.On("FindByPhoneNumber", mock.Anything, user.PhoneNumber).Return(user, nil)

		token, _, err := utils.GenerateToken(testJWTConfig, user.ID, user.PhoneNumber)
		require.NoError(t, err)

		rec, reached, _ := serveGate(t, userRepo, "POST", "/api/v1/orders", token)

		assert.False(t, reached)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("matching role passes and principal lands in context", func(t *testing.T) {
		t.Parallel()
		userRepo := &mockUserRepo{}
		user := gateUser(entity.RoleUser)
		userRepo.On("FindByPhoneNumber", mock.Anything, user.PhoneNumber).Return(user, nil)

		token, _, err := utils.GenerateToken(testJWTConfig, user.ID, user.PhoneNumber)
		require.NoError(t, err)

		rec, reached, ctx := serveGate(t, userRepo, "POST", "/api/v1/orders", token)

		require.True(t, reached)
		assert.Equal(t, http.StatusOK, rec.Code)

		userID, ok := utils.GetUserIDFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, user.ID, userID)

		role, ok := utils.GetRoleFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, entity.RoleUser, role)
	})

	t.Run("authenticated-only route needs no specific role", func(t *testing.T) {
		t.Parallel()
		userRepo := &mockUserRepo{}
		user := gateUser(entity.RoleAdmin)
		userRepo.On("FindByPhoneNumber", mock.Anything, user.PhoneNumber).Return(user, nil)

		token, _, err := utils.GenerateToken(testJWTConfig, user.ID, user.PhoneNumber)
		require.NoError(t, err)

		rec, reached, _ := serveGate(t, userRepo, "POST", "/api/v1/users/details", token)

		assert.True(t, reached)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
