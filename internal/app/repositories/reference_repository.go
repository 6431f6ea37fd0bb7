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

// LanguageRepository handles database operations for languages
type LanguageRepository struct {
	db *pgxpool.Pool
}

// NewLanguageRepository creates a new language repository
func NewLanguageRepository(db *pgxpool.Pool) *LanguageRepository {
	return &LanguageRepository{db: db}
}

// Create inserts a new language. The code is unique.
func (r *LanguageRepository) Create(ctx context.Context, language *models.Language) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO languages (code, name, is_active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		language.Code, language.Name, language.IsActive).
		Scan(&language.ID, &language.CreatedAt, &language.UpdatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrLanguageAlreadyExists
		}
		return fmt.Errorf("error creating language: %w", err)
	}

	return nil
}

// GetAllActive retrieves all active languages ordered by name
func (r *LanguageRepository) GetAllActive(ctx context.Context) ([]*models.Language, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, code, name, is_active, created_at, updated_at
		FROM languages
		WHERE is_active = TRUE
		ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var languages []*models.Language
	for rows.Next() {
		var language models.Language
		if err := rows.Scan(
			&language.ID, &language.Code, &language.Name,
			&language.IsActive, &language.CreatedAt, &language.UpdatedAt,
		); err != nil {
			return nil, err
		}
		languages = append(languages, &language)
	}

	return languages, rows.Err()
}

// GetByID retrieves a language by ID
func (r *LanguageRepository) GetByID(ctx context.Context, id int64) (*models.Language, error) {
	var language models.Language
	err := r.db.QueryRow(ctx, `
		SELECT id, code, name, is_active, created_at, updated_at
		FROM languages
		WHERE id = $1`, id).
		Scan(&language.ID, &language.Code, &language.Name,
			&language.IsActive, &language.CreatedAt, &language.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLanguageNotFound
		}
		return nil, fmt.Errorf("error retrieving language: %w", err)
	}

	return &language, nil
}

// Delete deletes a language by ID. No reference check is performed.
func (r *LanguageRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM languages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting language: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLanguageNotFound
	}

	return nil
}

// Count returns the number of language rows
func (r *LanguageRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM languages`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting languages: %w", err)
	}
	return count, nil
}

// InsertMany bulk-inserts languages (seeding)
func (r *LanguageRepository) InsertMany(ctx context.Context, languages []models.Language) error {
	for _, language := range languages {
		if _, err := r.db.Exec(ctx, `
			INSERT INTO languages (code, name, is_active) VALUES ($1, $2, $3)`,
			language.Code, language.Name, language.IsActive); err != nil {
			return fmt.Errorf("error inserting language %s: %w", language.Code, err)
		}
	}
	return nil
}

// CountryRepository handles database operations for countries
type CountryRepository struct {
	db *pgxpool.Pool
}

// NewCountryRepository creates a new country repository
func NewCountryRepository(db *pgxpool.Pool) *CountryRepository {
	return &CountryRepository{db: db}
}

// Create inserts a new country. The code is unique.
func (r *CountryRepository) Create(ctx context.Context, country *models.Country) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO countries (code, name, is_active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		country.Code, country.Name, country.IsActive).
		Scan(&country.ID, &country.CreatedAt, &country.UpdatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCountryAlreadyExists
		}
		return fmt.Errorf("error creating country: %w", err)
	}

	return nil
}

// GetAllActive retrieves all active countries ordered by name
func (r *CountryRepository) GetAllActive(ctx context.Context) ([]*models.Country, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, code, name, is_active, created_at, updated_at
		FROM countries
		WHERE is_active = TRUE
		ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var countries []*models.Country
	for rows.Next() {
		var country models.Country
		if err := rows.Scan(
			&country.ID, &country.Code, &country.Name,
			&country.IsActive, &country.CreatedAt, &country.UpdatedAt,
		); err != nil {
			return nil, err
		}
		countries = append(countries, &country)
	}

	return countries, rows.Err()
}

// GetByID retrieves a country by ID
func (r *CountryRepository) GetByID(ctx context.Context, id int64) (*models.Country, error) {
	var country models.Country
	err := r.db.QueryRow(ctx, `
		SELECT id, code, name, is_active, created_at, updated_at
		FROM countries
		WHERE id = $1`, id).
		Scan(&country.ID, &country.Code, &country.Name,
			&country.IsActive, &country.CreatedAt, &country.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCountryNotFound
		}
		return nil, fmt.Errorf("error retrieving country: %w", err)
	}

	return &country, nil
}

// Delete deletes a country by ID. No reference check is performed.
func (r *CountryRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM countries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting country: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCountryNotFound
	}

	return nil
}

// Count returns the number of country rows
func (r *CountryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM countries`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting countries: %w", err)
	}
	return count, nil
}

// InsertMany bulk-inserts countries (seeding)
func (r *CountryRepository) InsertMany(ctx context.Context, countries []models.Country) error {
	for _, country := range countries {
		if _, err := r.db.Exec(ctx, `
			INSERT INTO countries (code, name, is_active) VALUES ($1, $2, $3)`,
			country.Code, country.Name, country.IsActive); err != nil {
			return fmt.Errorf("error inserting country %s: %w", country.Code, err)
		}
	}
	return nil
}

// MajorRepository handles database operations for majors
type MajorRepository struct {
	db *pgxpool.Pool
}

// NewMajorRepository creates a new major repository
func NewMajorRepository(db *pgxpool.Pool) *MajorRepository {
	return &MajorRepository{db: db}
}

// Create inserts a new major. The name is unique.
func (r *MajorRepository) Create(ctx context.Context, major *models.Major) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO majors (name, department, is_active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		major.Name, major.Department, major.IsActive).
		Scan(&major.ID, &major.CreatedAt, &major.UpdatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrMajorAlreadyExists
		}
		return fmt.Errorf("error creating major: %w", err)
	}

	return nil
}

// GetAllActive retrieves all active majors ordered by name
func (r *MajorRepository) GetAllActive(ctx context.Context) ([]*models.Major, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, department, is_active, created_at, updated_at
		FROM majors
		WHERE is_active = TRUE
		ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var majors []*models.Major
	for rows.Next() {
		var major models.Major
		if err := rows.Scan(
			&major.ID, &major.Name, &major.Department,
			&major.IsActive, &major.CreatedAt, &major.UpdatedAt,
		); err != nil {
			return nil, err
		}
		majors = append(majors, &major)
	}

	return majors, rows.Err()
}

// GetByID retrieves a major by ID
func (r *MajorRepository) GetByID(ctx context.Context, id int64) (*models.Major, error) {
	var major models.Major
	err := r.db.QueryRow(ctx, `
		SELECT id, name, department, is_active, created_at, updated_at
		FROM majors
		WHERE id = $1`, id).
		Scan(&major.ID, &major.Name, &major.Department,
			&major.IsActive, &major.CreatedAt, &major.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMajorNotFound
		}
		return nil, fmt.Errorf("error retrieving major: %w", err)
	}

	return &major, nil
}

// Delete deletes a major by ID. No reference check is performed.
func (r *MajorRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM majors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting major: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMajorNotFound
	}

	return nil
}

// Count returns the number of major rows
func (r *MajorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM majors`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting majors: %w", err)
	}
	return count, nil
}

// InsertMany bulk-inserts majors (seeding)
func (r *MajorRepository) InsertMany(ctx context.Context, majors []models.Major) error {
	for _, major := range majors {
		if _, err := r.db.Exec(ctx, `
			INSERT INTO majors (name, department, is_active) VALUES ($1, $2, $3)`,
			major.Name, major.Department, major.IsActive); err != nil {
			return fmt.Errorf("error inserting major %s: %w", major.Name, err)
		}
	}
	return nil
}
