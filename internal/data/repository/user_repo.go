package repository

import (
	"context"
	"fmt"

	"shop-api/internal/data/entity"
	"shop-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error)
	ExistsByPhoneNumber(ctx context.Context, phoneNumber string) (bool, error)
	Update(ctx context.Context, user *entity.User) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// Create inserts a new user record into the database
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, fullname, phone_number, password, address,
		                   date_of_birth, facebook_account_id, google_account_id,
		                   is_active, role_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.FullName,
		user.PhoneNumber,
		user.PasswordHash,
		user.Address,
		user.DateOfBirth,
		user.FacebookAccountID,
		user.GoogleAccountID,
		user.IsActive,
		user.RoleID,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("phone_number", user.PhoneNumber),
		)
		return fmt.Errorf("create user %s: %w", user.PhoneNumber, err)
	}

	return nil
}

const userSelectColumns = `
	u.id, u.fullname, u.phone_number, u.password, u.address,
	u.date_of_birth, u.facebook_account_id, u.google_account_id,
	u.is_active, u.role_id, r.name AS role_name,
	u.created_at, u.updated_at, u.deleted_at
`

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.FullName,
		&user.PhoneNumber,
		&user.PasswordHash,
		&user.Address,
		&user.DateOfBirth,
		&user.FacebookAccountID,
		&user.GoogleAccountID,
		&user.IsActive,
		&user.RoleID,
		&user.RoleName,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT ` + userSelectColumns + `
		FROM users u
		JOIN roles r ON r.id = u.role_id
		WHERE u.id = $1 AND u.deleted_at IS NULL
	`

	user, err := scanUser(ur.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return user, nil
}

func (ur *userRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error) {
	query := `
		SELECT ` + userSelectColumns + `
		FROM users u
		JOIN roles r ON r.id = u.role_id
		WHERE u.phone_number = $1 AND u.deleted_at IS NULL
	`

	user, err := scanUser(ur.db.QueryRow(ctx, query, phoneNumber))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by phone number",
			zap.Error(err),
			zap.String("phone_number", phoneNumber),
		)
		return nil, fmt.Errorf("find user by phone %s: %w", phoneNumber, err)
	}

	return user, nil
}

func (ur *userRepository) ExistsByPhoneNumber(ctx context.Context, phoneNumber string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE phone_number = $1 AND deleted_at IS NULL)`

	var exists bool
	err := ur.db.QueryRow(ctx, query, phoneNumber).Scan(&exists)
	if err != nil {
		ur.log.Error("Failed to check phone number",
			zap.Error(err),
			zap.String("phone_number", phoneNumber),
		)
		return false, fmt.Errorf("check phone number %s: %w", phoneNumber, err)
	}

	return exists, nil
}

func (ur *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET fullname = $2, phone_number = $3, password = $4, address = $5,
		    date_of_birth = $6, facebook_account_id = $7, google_account_id = $8,
		    is_active = $9, role_id = $10, updated_at = $11
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := ur.db.Exec(ctx, query,
		user.ID,
		user.FullName,
		user.PhoneNumber,
		user.PasswordHash,
		user.Address,
		user.DateOfBirth,
		user.FacebookAccountID,
		user.GoogleAccountID,
		user.IsActive,
		user.RoleID,
		user.UpdatedAt,
	)

	if err != nil {
		ur.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return fmt.Errorf("update user %s: %w", user.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", user.ID.String())
	}

	return nil
}
