package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Base
	FullName          string     `db:"fullname"`
	PhoneNumber       string     `db:"phone_number"`
	PasswordHash      string     `db:"password"`
	Address           string     `db:"address"`
	DateOfBirth       *time.Time `db:"date_of_birth"`
	FacebookAccountID int64      `db:"facebook_account_id"`
	GoogleAccountID   int64      `db:"google_account_id"`
	IsActive          bool       `db:"is_active"`
	RoleID            uuid.UUID  `db:"role_id"`

	// RoleName di-join dari tabel roles saat load
	RoleName string `db:"role_name"`
}

// IsFederated true jika akun login lewat Facebook/Google,
// akun seperti ini tidak punya password lokal
func (u *User) IsFederated() bool {
	return u.FacebookAccountID > 0 || u.GoogleAccountID > 0
}
