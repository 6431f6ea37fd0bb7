package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/derya/mentorlink/internal/app/models"
	"github.com/derya/mentorlink/internal/pkg/apperrors"
	"github.com/derya/mentorlink/internal/pkg/dberrors"
)

const mentorColumns = `id, user_id, bio, languages, majors, interests, about, country, flag,
	semester, year_of_study, image, email, rating, total_ratings, is_available,
	total_mentees, max_mentees, linkedin, instagram,
	academic_background, personal_info, mentorship_focus, created_at, updated_at`

// MentorRepository handles database operations for mentor profiles
type MentorRepository struct {
	db *pgxpool.Pool
}

// NewMentorRepository creates a new mentor repository
func NewMentorRepository(db *pgxpool.Pool) *MentorRepository {
	return &MentorRepository{db: db}
}

func scanMentor(row pgx.Row) (*models.Mentor, error) {
	var mentor models.Mentor
	err := row.Scan(
		&mentor.ID, &mentor.UserID, &mentor.Bio, &mentor.Languages, &mentor.Majors,
		&mentor.Interests, &mentor.About, &mentor.Country, &mentor.Flag,
		&mentor.Semester, &mentor.YearOfStudy, &mentor.Image, &mentor.Email,
		&mentor.Rating, &mentor.TotalRatings, &mentor.IsAvailable,
		&mentor.TotalMentees, &mentor.MaxMentees, &mentor.LinkedIn, &mentor.Instagram,
		&mentor.AcademicBackground, &mentor.PersonalInfo, &mentor.MentorshipFocus,
		&mentor.CreatedAt, &mentor.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &mentor, nil
}

// Create inserts a new mentor profile. One profile per user.
func (r *MentorRepository) Create(ctx context.Context, mentor *models.Mentor) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO mentors (user_id, bio, languages, majors, interests, about, country, flag,
			semester, year_of_study, image, email, rating, total_ratings, is_available,
			total_mentees, max_mentees, linkedin, instagram,
			academic_background, personal_info, mentorship_focus)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22)
		RETURNING id, created_at, updated_at`,
		mentor.UserID, mentor.Bio, mentor.Languages, mentor.Majors, mentor.Interests,
		mentor.About, mentor.Country, mentor.Flag, mentor.Semester, mentor.YearOfStudy,
		mentor.Image, mentor.Email, mentor.Rating, mentor.TotalRatings, mentor.IsAvailable,
		mentor.TotalMentees, mentor.MaxMentees, mentor.LinkedIn, mentor.Instagram,
		mentor.AcademicBackground, mentor.PersonalInfo, mentor.MentorshipFocus).
		Scan(&mentor.ID, &mentor.CreatedAt, &mentor.UpdatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrMentorAlreadyExists
		}
		return fmt.Errorf("error creating mentor: %w", err)
	}

	return nil
}

// GetAll retrieves mentor profiles matching the given filters. Filters
// combine with AND; multi-value filters match when any value overlaps.
func (r *MentorRepository) GetAll(ctx context.Context, filters models.MentorFilters) ([]*models.Mentor, error) {
	builder := squirrel.Select(mentorColumns).
		From("mentors").
		OrderBy("rating DESC, created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if len(filters.Languages) > 0 {
		builder = builder.Where(squirrel.Expr("languages && ?", filters.Languages))
	}
	if len(filters.Majors) > 0 {
		builder = builder.Where(squirrel.Expr("majors && ?", filters.Majors))
	}
	if len(filters.Interests) > 0 {
		builder = builder.Where(squirrel.Expr("interests && ?", filters.Interests))
	}
	if filters.Country != "" {
		builder = builder.Where(squirrel.Eq{"country": filters.Country})
	}
	if filters.IsAvailable != nil {
		builder = builder.Where(squirrel.Eq{"is_available": *filters.IsAvailable})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building mentor query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mentors []*models.Mentor
	for rows.Next() {
		mentor, err := scanMentor(rows)
		if err != nil {
			return nil, err
		}
		mentors = append(mentors, mentor)
	}

	return mentors, rows.Err()
}

// GetByID retrieves a mentor profile by ID
func (r *MentorRepository) GetByID(ctx context.Context, id int64) (*models.Mentor, error) {
	mentor, err := scanMentor(r.db.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM mentors WHERE id = $1`, mentorColumns), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMentorNotFound
		}
		return nil, fmt.Errorf("error retrieving mentor: %w", err)
	}
	return mentor, nil
}

// GetByUserID retrieves the mentor profile owned by the given user
func (r *MentorRepository) GetByUserID(ctx context.Context, userID int64) (*models.Mentor, error) {
	mentor, err := scanMentor(r.db.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM mentors WHERE user_id = $1`, mentorColumns), userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMentorNotFound
		}
		return nil, fmt.Errorf("error retrieving mentor by user: %w", err)
	}
	return mentor, nil
}

// GetByIDs retrieves mentor profiles by a set of IDs. Missing IDs are
// silently absent from the result map.
func (r *MentorRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*models.Mentor, error) {
	result := make(map[int64]*models.Mentor, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM mentors WHERE id = ANY($1)`, mentorColumns), ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		mentor, err := scanMentor(rows)
		if err != nil {
			return nil, err
		}
		result[mentor.ID] = mentor
	}

	return result, rows.Err()
}

// ExistsByUserID checks whether the given user already owns a mentor profile
func (r *MentorRepository) ExistsByUserID(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM mentors WHERE user_id = $1)`, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking mentor profile: %w", err)
	}
	return exists, nil
}

// Update writes all mutable mentor fields
func (r *MentorRepository) Update(ctx context.Context, mentor *models.Mentor) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE mentors SET
			bio = $1, languages = $2, majors = $3, interests = $4, about = $5,
			country = $6, flag = $7, semester = $8, year_of_study = $9, image = $10,
			email = $11, is_available = $12, total_mentees = $13, max_mentees = $14,
			linkedin = $15, instagram = $16,
			academic_background = $17, personal_info = $18, mentorship_focus = $19,
			updated_at = NOW()
		WHERE id = $20`,
		mentor.Bio, mentor.Languages, mentor.Majors, mentor.Interests, mentor.About,
		mentor.Country, mentor.Flag, mentor.Semester, mentor.YearOfStudy, mentor.Image,
		mentor.Email, mentor.IsAvailable, mentor.TotalMentees, mentor.MaxMentees,
		mentor.LinkedIn, mentor.Instagram,
		mentor.AcademicBackground, mentor.PersonalInfo, mentor.MentorshipFocus,
		mentor.ID)

	if err != nil {
		return fmt.Errorf("error updating mentor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMentorNotFound
	}

	return nil
}

// UpdateRating conditionally writes a new rating aggregate. The write
// only applies when total_ratings still matches expectedTotal, so a
// concurrent rating submission forces the caller to recompute.
func (r *MentorRepository) UpdateRating(ctx context.Context, id int64, rating float64, totalRatings, expectedTotal int) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE mentors SET rating = $1, total_ratings = $2, updated_at = NOW()
		WHERE id = $3 AND total_ratings = $4`,
		rating, totalRatings, id, expectedTotal)
	if err != nil {
		return false, fmt.Errorf("error updating mentor rating: %w", err)
	}
	return cmdTag.RowsAffected() == 1, nil
}

// Delete deletes a mentor profile by ID. Requests and sessions that
// reference the mentor are intentionally left in place.
func (r *MentorRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM mentors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting mentor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMentorNotFound
	}

	return nil
}
