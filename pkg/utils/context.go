package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	PhoneKey  contextKey = "phone_number"
	RoleKey   contextKey = "role"
)

// SetUserContext menyimpan principal hasil validasi token ke request context
func SetUserContext(ctx context.Context, userID uuid.UUID, phoneNumber, role string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID.String())
	ctx = context.WithValue(ctx, PhoneKey, phoneNumber)
	ctx = context.WithValue(ctx, RoleKey, role)
	return ctx
}

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userIDVal := ctx.Value(UserIDKey)
	if userIDVal == nil {
		return uuid.Nil, false
	}

	userIDStr, ok := userIDVal.(string)
	if !ok {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

func GetPhoneFromContext(ctx context.Context) (string, bool) {
	phoneVal := ctx.Value(PhoneKey)
	if phoneVal == nil {
		return "", false
	}

	phone, ok := phoneVal.(string)
	return phone, ok
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	roleVal := ctx.Value(RoleKey)
	if roleVal == nil {
		return "", false
	}

	role, ok := roleVal.(string)
	return role, ok
}
