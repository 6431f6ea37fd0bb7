package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/derya/mentorlink/internal/app/models"
	"github.com/derya/mentorlink/internal/pkg/apperrors"
	"github.com/derya/mentorlink/internal/pkg/dberrors"
)

const userColumns = `id, first_name, last_name, email, password, role, is_mentor,
	student_id, phone_number, profile_picture, is_active, last_login, created_at, updated_at`

// userPublicColumns excludes the password hash. Used when users are
// attached to other resources in a response.
const userPublicColumns = `id, first_name, last_name, email, role, is_mentor,
	student_id, phone_number, profile_picture, is_active, last_login, created_at, updated_at`

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.Password,
		&user.Role, &user.IsMentor, &user.StudentID, &user.PhoneNumber,
		&user.ProfilePicture, &user.IsActive, &user.LastLogin,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user. The email is unique.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (first_name, last_name, email, password, role, is_mentor,
			student_id, phone_number, profile_picture, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`,
		user.FirstName, user.LastName, user.Email, user.Password, user.Role,
		user.IsMentor, user.StudentID, user.PhoneNumber, user.ProfilePicture,
		user.IsActive).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetAll retrieves all users ordered by creation time (newest first)
func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	return r.queryUsers(ctx, fmt.Sprintf(`
		SELECT %s FROM users ORDER BY created_at DESC`, userColumns))
}

// GetMentorUsers retrieves all users flagged as mentors
func (r *UserRepository) GetMentorUsers(ctx context.Context) ([]*models.User, error) {
	return r.queryUsers(ctx, fmt.Sprintf(`
		SELECT %s FROM users WHERE is_mentor = TRUE ORDER BY created_at DESC`, userColumns))
}

func (r *UserRepository) queryUsers(ctx context.Context, sql string, args ...interface{}) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM users WHERE id = $1`, userColumns), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM users WHERE email = $1`, userColumns), email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by email: %w", err)
	}
	return user, nil
}

// GetPublicByIDs retrieves users by a set of IDs without their password
// hashes. Missing IDs are silently absent from the result map.
func (r *UserRepository) GetPublicByIDs(ctx context.Context, ids []int64) (map[int64]*models.User, error) {
	result := make(map[int64]*models.User, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM users WHERE id = ANY($1)`, userPublicColumns), ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID, &user.FirstName, &user.LastName, &user.Email,
			&user.Role, &user.IsMentor, &user.StudentID, &user.PhoneNumber,
			&user.ProfilePicture, &user.IsActive, &user.LastLogin,
			&user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result[user.ID] = &user
	}

	return result, rows.Err()
}

// ExistsByEmail checks whether a user with the given email exists
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking user email: %w", err)
	}
	return exists, nil
}

// Update writes all mutable user fields
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE users SET
			first_name = $1, last_name = $2, email = $3, password = $4, role = $5,
			is_mentor = $6, student_id = $7, phone_number = $8, profile_picture = $9,
			is_active = $10, last_login = $11, updated_at = NOW()
		WHERE id = $12`,
		user.FirstName, user.LastName, user.Email, user.Password, user.Role,
		user.IsMentor, user.StudentID, user.PhoneNumber, user.ProfilePicture,
		user.IsActive, user.LastLogin, user.ID)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// Delete deletes a user by ID. Mentor profiles and requests that
// reference the user are intentionally left in place.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
