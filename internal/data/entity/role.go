package entity

import (
	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Role adalah reference data, di-seed sekali dan tidak berubah
type Role struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
}
