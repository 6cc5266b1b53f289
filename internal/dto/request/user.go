package request

type RegisterRequest struct {
	FullName          string `json:"fullname" validate:"required,max=100"`
	PhoneNumber       string `json:"phone_number" validate:"required,min=8,max=15"`
	Password          string `json:"password" validate:"omitempty,min=6"`
	RetypePassword    string `json:"retype_password" validate:"eqfield=Password"`
	Address           string `json:"address" validate:"max=200"`
	DateOfBirth       string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	FacebookAccountID int64  `json:"facebook_account_id" validate:"gte=0"`
	GoogleAccountID   int64  `json:"google_account_id" validate:"gte=0"`
	RoleID            string `json:"role_id" validate:"omitempty,uuid"`
}

type LoginRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	Password    string `json:"password" validate:"omitempty,min=6"`
	RoleID      string `json:"role_id" validate:"omitempty,uuid"`
}

// UpdateUserRequest: field nil/kosong tidak diubah (partial update)
type UpdateUserRequest struct {
	FullName          *string `json:"fullname,omitempty"`
	PhoneNumber       *string `json:"phone_number,omitempty" validate:"omitempty,min=8,max=15"`
	Address           *string `json:"address,omitempty" validate:"omitempty,max=200"`
	DateOfBirth       *string `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	FacebookAccountID int64   `json:"facebook_account_id" validate:"gte=0"`
	GoogleAccountID   int64   `json:"google_account_id" validate:"gte=0"`
	Password          string  `json:"password" validate:"omitempty,min=6"`
	RetypePassword    string  `json:"retype_password"`
}
