package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shop-api/internal/data/entity"
	"shop-api/internal/data/repository"
	"shop-api/internal/dto/request"
	"shop-api/internal/dto/response"
	"shop-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Akun federated (Facebook/Google) tidak butuh password lokal
	federated := req.FacebookAccountID > 0 || req.GoogleAccountID > 0
	if !federated && req.Password == "" {
		return nil, fmt.Errorf("validation failed: Password: This field is required")
	}

	// 2. Cek phone number sudah terdaftar
	exists, err := s.repo.User.ExistsByPhoneNumber(ctx, req.PhoneNumber)
	if err != nil {
		s.log.Error("Failed to check phone number", zap.Error(err), zap.String("phone_number", req.PhoneNumber))
		return nil, fmt.Errorf("failed to check phone number")
	}
	if exists {
		return nil, fmt.Errorf("phone number already registered")
	}

	// 3. Resolve role, default "user"
	role, err := s.resolveRole(ctx, req.RoleID)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(role.Name, entity.RoleAdmin) {
		return nil, fmt.Errorf("permission denied: you cannot register an admin account")
	}

	// 4. Hash password kecuali akun federated
	passwordHash := ""
	if !federated {
		passwordHash, err = utils.HashPassword(req.Password)
		if err != nil {
			s.log.Error("Failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("failed to process password")
		}
	}

	dateOfBirth, err := parseDate(req.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("invalid date of birth format")
	}

	// 5. Create user entity
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FullName:          req.FullName,
		PhoneNumber:       req.PhoneNumber,
		PasswordHash:      passwordHash,
		Address:           req.Address,
		DateOfBirth:       dateOfBirth,
		FacebookAccountID: req.FacebookAccountID,
		GoogleAccountID:   req.GoogleAccountID,
		IsActive:          true,
		RoleID:            role.ID,
		RoleName:          role.Name,
	}

	// 6. Save user
	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("phone_number", req.PhoneNumber))
		return nil, fmt.Errorf("failed to create account")
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("phone_number", user.PhoneNumber))

	return &response.RegisterResponse{User: response.UserToResponse(user)}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Find user by phone number
	user, err := s.repo.User.FindByPhoneNumber(ctx, req.PhoneNumber)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("phone_number", req.PhoneNumber))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		s.log.Warn("User not found for login", zap.String("phone_number", req.PhoneNumber))
		return nil, fmt.Errorf("invalid phone number or password")
	}

	// 3. Check password, kecuali akun federated
	if !user.IsFederated() {
		if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
			s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
			return nil, fmt.Errorf("invalid phone number or password")
		}
	}

	// 4. Role yang diminta harus cocok dengan role tersimpan
	role, err := s.resolveRole(ctx, req.RoleID)
	if err != nil {
		return nil, err
	}
	if role.ID != user.RoleID {
		s.log.Warn("Role mismatch on login",
			zap.String("user_id", user.ID.String()),
			zap.String("requested_role", role.Name))
		return nil, fmt.Errorf("invalid role for this account")
	}

	// 5. Check if user is active
	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("invalid login: account is locked")
	}

	// 6. Issue token
	token, expiresAt, err := utils.GenerateToken(s.config.JWT, user.ID, user.PhoneNumber)
	if err != nil {
		s.log.Error("Failed to generate token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to generate token")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("phone_number", user.PhoneNumber))

	return &response.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      response.UserToResponse(user),
	}, nil
}

// resolveRole mencari role by ID, atau default role "user" jika kosong
func (s *authService) resolveRole(ctx context.Context, roleID string) (*entity.Role, error) {
	if roleID == "" {
		role, err := s.repo.Role.FindByName(ctx, entity.RoleUser)
		if err != nil {
			s.log.Error("Failed to find default role", zap.Error(err))
			return nil, fmt.Errorf("failed to find role")
		}
		if role == nil {
			return nil, fmt.Errorf("role not found")
		}
		return role, nil
	}

	id, err := uuid.Parse(roleID)
	if err != nil {
		return nil, fmt.Errorf("invalid role ID format")
	}

	role, err := s.repo.Role.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find role", zap.Error(err), zap.String("role_id", roleID))
		return nil, fmt.Errorf("failed to find role")
	}
	if role == nil {
		return nil, fmt.Errorf("role not found")
	}

	return role, nil
}

// parseDate parse tanggal YYYY-MM-DD, kosong = nil
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}

	return &t, nil
}
