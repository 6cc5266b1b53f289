package usecase

import (
	"context"
	"testing"

	"shop-api/internal/data/entity"
	"shop-api/internal/data/repository"
	"shop-api/internal/dto/request"
	"shop-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUserFixture() (*mockUserRepo, *mockRoleRepo, UserService) {
	userRepo := &mockUserRepo{}
	roleRepo := &mockRoleRepo{}
	repo := &repository.Repository{
		User: userRepo,
		Role: roleRepo,
	}
	svc := NewUserService(repo, zap.NewNop())
	return userRepo, roleRepo, svc
}

func strPtr(s string) *string { return &s }

func TestGetUserDetails(t *testing.T) {
	t.Parallel()

	t.Run("returns own profile", func(t *testing.T) {
		t.Parallel()
		userRepo, _, svc := newUserFixture()

		user := testBuyer()
		userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		resp, err := svc.GetDetails(context.Background(), user.ID)

		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), resp.ID)
		assert.Equal(t, user.FullName, resp.FullName)
	})

	t.Run("returns not found for missing user", func(t *testing.T) {
		t.Parallel()
		userRepo, _, svc := newUserFixture()

		userID := uuid.New()
		userRepo.On("FindByID", mock.Anything, userID).Return(nil, nil)

		_, err := svc.GetDetails(context.Background(), userID)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "user not found")
	})
}

func TestUpdateUserDetails(t *testing.T) {
	t.Parallel()

	t.Run("owner updates own profile", func(t *testing.T) {
		t.Parallel()
		userRepo, _, svc := newUserFixture()

		user := testBuyer()
		userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.FullName == "Budi Baru" && u.Address == "Jl. Thamrin No. 2"
		})).Return(nil)

		resp, err := svc.UpdateDetails(context.Background(), user.ID, user.ID.String(), &request.UpdateUserRequest{
			FullName: strPtr("Budi Baru"),
			Address:  strPtr("Jl. Thamrin No. 2"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Budi Baru", resp.FullName)
		userRepo.AssertExpectations(t)
	})

	t.Run("rejects updating another user", func(t *testing.T) {
		t.Parallel()
		userRepo, _, svc := newUserFixture()

		_, err := svc.UpdateDetails(context.Background(), uuid.New(), uuid.NewString(), &request.UpdateUserRequest{
			FullName: strPtr("Penyusup"),
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "permission denied")
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("rejects taken phone number", func(t *testing.T) {
		t.Parallel()
		userRepo, _, svc := newUserFixture()

		user := testBuyer()
		userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		userRepo.On("ExistsByPhoneNumber", mock.Anything, "082222222222").Return(true, nil)

		_, err := svc.UpdateDetails(context.Background(), user.ID, user.ID.String(), &request.UpdateUserRequest{
			PhoneNumber: strPtr("082222222222"),
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("rejects mismatched password change", func(t *testing.T) {
		t.Parallel()
		userRepo, _, svc := newUserFixture()

		user := testBuyer()
		userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		_, err := svc.UpdateDetails(context.Background(), user.ID, user.ID.String(), &request.UpdateUserRequest{
			Password:       "newpass123",
			RetypePassword: "different",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "do not match")
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("changes password when retype matches", func(t *testing.T) {
		t.Parallel()
		userRepo, _, svc := newUserFixture()

		user := testBuyer()
		userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return utils.CheckPasswordHash("newpass123", u.PasswordHash)
		})).Return(nil)

		_, err := svc.UpdateDetails(context.Background(), user.ID, user.ID.String(), &request.UpdateUserRequest{
			Password:       "newpass123",
			RetypePassword: "newpass123",
		})

		require.NoError(t, err)
		userRepo.AssertExpectations(t)
	})
}

func TestGetRoles(t *testing.T) {
	t.Parallel()

	_, roleRepo, svc := newUserFixture()

	roles := []*entity.Role{userRole(), adminRole()}
	roleRepo.On("FindAll", mock.Anything).Return(roles, nil)

	resp, err := svc.GetRoles(context.Background())

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, entity.RoleUser, resp[0].Name)
	assert.Equal(t, entity.RoleAdmin, resp[1].Name)
}
