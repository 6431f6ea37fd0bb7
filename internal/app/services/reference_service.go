package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/derya/mentorlink/internal/app/models"
	"github.com/derya/mentorlink/internal/app/models/dto"
	"github.com/derya/mentorlink/internal/app/repositories"
	"github.com/derya/mentorlink/internal/seed"
)

// LanguageService defines the interface for language reference data operations
type LanguageService interface {
	CreateLanguage(ctx context.Context, code, name string) (*models.Language, error)
	GetAllLanguages(ctx context.Context) ([]*models.Language, error)
	GetLanguageByID(ctx context.Context, id int64) (*models.Language, error)
	DeleteLanguage(ctx context.Context, id int64) error
	SeedLanguages(ctx context.Context) (*dto.SeedReferenceResult, error)
}

// languageServiceImpl implements LanguageService
type languageServiceImpl struct {
	repo   repositories.ILanguageRepository
	logger zerolog.Logger
}

// NewLanguageService creates a new LanguageService
func NewLanguageService(repo repositories.ILanguageRepository, logger zerolog.Logger) LanguageService {
	return &languageServiceImpl{repo: repo, logger: logger}
}

// CreateLanguage creates a new language entry
func (s *languageServiceImpl) CreateLanguage(ctx context.Context, code, name string) (*models.Language, error) {
	language := &models.Language{Code: code, Name: name, IsActive: true}
	if err := s.repo.Create(ctx, language); err != nil {
		return nil, err
	}
	return language, nil
}

// GetAllLanguages retrieves all active languages
func (s *languageServiceImpl) GetAllLanguages(ctx context.Context) ([]*models.Language, error) {
	return s.repo.GetAllActive(ctx)
}

// GetLanguageByID retrieves a language by ID
func (s *languageServiceImpl) GetLanguageByID(ctx context.Context, id int64) (*models.Language, error) {
	return s.repo.GetByID(ctx, id)
}

// DeleteLanguage deletes a language entry
func (s *languageServiceImpl) DeleteLanguage(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// SeedLanguages inserts the canonical language list. A no-op when the table
// already holds any rows, active or not.
func (s *languageServiceImpl) SeedLanguages(ctx context.Context) (*dto.SeedReferenceResult, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return &dto.SeedReferenceResult{Seeded: false}, nil
	}

	canonical := seed.Languages()
	if err := s.repo.InsertMany(ctx, canonical); err != nil {
		return nil, err
	}

	s.logger.Info().Int("inserted", len(canonical)).Msg("Languages seeded")
	return &dto.SeedReferenceResult{Seeded: true, Inserted: len(canonical)}, nil
}

// CountryService defines the interface for country reference data operations
type CountryService interface {
	CreateCountry(ctx context.Context, code, name string) (*models.Country, error)
	GetAllCountries(ctx context.Context) ([]*models.Country, error)
	GetCountryByID(ctx context.Context, id int64) (*models.Country, error)
	DeleteCountry(ctx context.Context, id int64) error
	SeedCountries(ctx context.Context) (*dto.SeedReferenceResult, error)
}

// countryServiceImpl implements CountryService
type countryServiceImpl struct {
	repo   repositories.ICountryRepository
	logger zerolog.Logger
}

// NewCountryService creates a new CountryService
func NewCountryService(repo repositories.ICountryRepository, logger zerolog.Logger) CountryService {
	return &countryServiceImpl{repo: repo, logger: logger}
}

// CreateCountry creates a new country entry
func (s *countryServiceImpl) CreateCountry(ctx context.Context, code, name string) (*models.Country, error) {
	country := &models.Country{Code: code, Name: name, IsActive: true}
	if err := s.repo.Create(ctx, country); err != nil {
		return nil, err
	}
	return country, nil
}

// GetAllCountries retrieves all active countries
func (s *countryServiceImpl) GetAllCountries(ctx context.Context) ([]*models.Country, error) {
	return s.repo.GetAllActive(ctx)
}

// GetCountryByID retrieves a country by ID
func (s *countryServiceImpl) GetCountryByID(ctx context.Context, id int64) (*models.Country, error) {
	return s.repo.GetByID(ctx, id)
}

// DeleteCountry deletes a country entry
func (s *countryServiceImpl) DeleteCountry(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// SeedCountries inserts the canonical country list. A no-op when the table
// already holds any rows, active or not.
func (s *countryServiceImpl) SeedCountries(ctx context.Context) (*dto.SeedReferenceResult, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return &dto.SeedReferenceResult{Seeded: false}, nil
	}

	canonical := seed.Countries()
	if err := s.repo.InsertMany(ctx, canonical); err != nil {
		return nil, err
	}

	s.logger.Info().Int("inserted", len(canonical)).Msg("Countries seeded")
	return &dto.SeedReferenceResult{Seeded: true, Inserted: len(canonical)}, nil
}

// MajorService defines the interface for major reference data operations
type MajorService interface {
	CreateMajor(ctx context.Context, name, department string) (*models.Major, error)
	GetAllMajors(ctx context.Context) ([]*models.Major, error)
	GetMajorByID(ctx context.Context, id int64) (*models.Major, error)
	DeleteMajor(ctx context.Context, id int64) error
	SeedMajors(ctx context.Context) (*dto.SeedReferenceResult, error)
}

// majorServiceImpl implements MajorService
type majorServiceImpl struct {
	repo   repositories.IMajorRepository
	logger zerolog.Logger
}

// NewMajorService creates a new MajorService
func NewMajorService(repo repositories.IMajorRepository, logger zerolog.Logger) MajorService {
	return &majorServiceImpl{repo: repo, logger: logger}
}

// CreateMajor creates a new major entry
func (s *majorServiceImpl) CreateMajor(ctx context.Context, name, department string) (*models.Major, error) {
	major := &models.Major{Name: name, Department: department, IsActive: true}
	if err := s.repo.Create(ctx, major); err != nil {
		return nil, err
	}
	return major, nil
}

// GetAllMajors retrieves all active majors
func (s *majorServiceImpl) GetAllMajors(ctx context.Context) ([]*models.Major, error) {
	return s.repo.GetAllActive(ctx)
}

// GetMajorByID retrieves a major by ID
func (s *majorServiceImpl) GetMajorByID(ctx context.Context, id int64) (*models.Major, error) {
	return s.repo.GetByID(ctx, id)
}

// DeleteMajor deletes a major entry
func (s *majorServiceImpl) DeleteMajor(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// SeedMajors inserts the canonical major list. A no-op when the table
// already holds any rows, active or not.
func (s *majorServiceImpl) SeedMajors(ctx context.Context) (*dto.SeedReferenceResult, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return &dto.SeedReferenceResult{Seeded: false}, nil
	}

	canonical := seed.Majors()
	if err := s.repo.InsertMany(ctx, canonical); err != nil {
		return nil, err
	}

	s.logger.Info().Int("inserted", len(canonical)).Msg("Majors seeded")
	return &dto.SeedReferenceResult{Seeded: true, Inserted: len(canonical)}, nil
}
