package response

import (
	"time"

	"shop-api/internal/data/entity"
)

type UserResponse struct {
	ID                string     `json:"id"`
	FullName          string     `json:"fullname"`
	PhoneNumber       string     `json:"phone_number"`
	Address           string     `json:"address"`
	DateOfBirth       *time.Time `json:"date_of_birth,omitempty"`
	FacebookAccountID int64      `json:"facebook_account_id"`
	GoogleAccountID   int64      `json:"google_account_id"`
	IsActive          bool       `json:"active"`
	Role              string     `json:"role"`
	CreatedAt         time.Time  `json:"created_at"`
}

type RegisterResponse struct {
	User UserResponse `json:"user"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type RoleResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:                user.ID.String(),
		FullName:          user.FullName,
		PhoneNumber:       user.PhoneNumber,
		Address:           user.Address,
		DateOfBirth:       user.DateOfBirth,
		FacebookAccountID: user.FacebookAccountID,
		GoogleAccountID:   user.GoogleAccountID,
		IsActive:          user.IsActive,
		Role:              user.RoleName,
		CreatedAt:         user.CreatedAt,
	}
}

func RoleToResponse(role *entity.Role) RoleResponse {
	return RoleResponse{
		ID:   role.ID.String(),
		Name: role.Name,
	}
}
