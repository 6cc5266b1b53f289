package usecase

import (
	"context"
	"fmt"
	"time"

	"shop-api/internal/data/repository"
	"shop-api/internal/dto/request"
	"shop-api/internal/dto/response"
	"shop-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetDetails(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	UpdateDetails(ctx context.Context, requesterID uuid.UUID, targetID string, req *request.UpdateUserRequest) (*response.UserResponse, error)
	GetRoles(ctx context.Context) ([]response.RoleResponse, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetDetails(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user details", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to get user details")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateDetails(ctx context.Context, requesterID uuid.UUID, targetID string, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update user validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	targetUUID, err := uuid.Parse(targetID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format")
	}

	// 2. Hanya pemilik akun yang boleh update
	if requesterID != targetUUID {
		s.log.Warn("User tried to update another user's details",
			zap.String("requester_id", requesterID.String()),
			zap.String("target_id", targetID))
		return nil, fmt.Errorf("permission denied: cannot update another user's details")
	}

	// 3. Load existing user
	user, err := s.repo.User.FindByID(ctx, targetUUID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", targetID))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	// 4. Phone number baru harus tetap unik
	if req.PhoneNumber != nil && *req.PhoneNumber != user.PhoneNumber {
		exists, err := s.repo.User.ExistsByPhoneNumber(ctx, *req.PhoneNumber)
		if err != nil {
			s.log.Error("Failed to check phone number", zap.Error(err))
			return nil, fmt.Errorf("failed to check phone number")
		}
		if exists {
			return nil, fmt.Errorf("phone number already registered")
		}
		user.PhoneNumber = *req.PhoneNumber
	}

	// 5. Partial update, field nil tidak disentuh
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.DateOfBirth != nil {
		dateOfBirth, err := parseDate(*req.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("invalid date of birth format")
		}
		user.DateOfBirth = dateOfBirth
	}
	if req.FacebookAccountID > 0 {
		user.FacebookAccountID = req.FacebookAccountID
	}
	if req.GoogleAccountID > 0 {
		user.GoogleAccountID = req.GoogleAccountID
	}

	// 6. Ganti password hanya jika diisi, dan harus cocok dengan retype
	if req.Password != "" {
		if req.Password != req.RetypePassword {
			return nil, fmt.Errorf("invalid input: password and retype password do not match")
		}
		passwordHash, err := utils.HashPassword(req.Password)
		if err != nil {
			s.log.Error("Failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("failed to process password")
		}
		user.PasswordHash = passwordHash
	}

	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update user", zap.Error(err), zap.String("user_id", targetID))
		return nil, fmt.Errorf("failed to update user")
	}

	s.log.Info("User details updated", zap.String("user_id", targetID))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) GetRoles(ctx context.Context) ([]response.RoleResponse, error) {
	roles, err := s.repo.Role.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get roles", zap.Error(err))
		return nil, fmt.Errorf("failed to get roles")
	}

	responses := make([]response.RoleResponse, 0, len(roles))
	for _, role := range roles {
		responses = append(responses, response.RoleToResponse(role))
	}

	return responses, nil
}
