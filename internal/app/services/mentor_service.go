package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/derya/mentorlink/internal/app/models"
	"github.com/derya/mentorlink/internal/app/models/dto"
	"github.com/derya/mentorlink/internal/app/repositories"
	"github.com/derya/mentorlink/internal/pkg/apperrors"
	"github.com/derya/mentorlink/internal/seed"
)

// ratingUpdateRetries bounds the retry loop when concurrent rating
// submissions race on the same mentor.
const ratingUpdateRetries = 5

// seedMentorUserPassword is the initial password for user accounts created
// by the mentor seeding endpoint.
const seedMentorUserPassword = "password123"

// MentorService defines the interface for mentor profile operations
type MentorService interface {
	CreateMentor(ctx context.Context, req *dto.CreateMentorRequest) (*models.Mentor, error)
	GetAllMentors(ctx context.Context, filters models.MentorFilters) ([]*models.Mentor, error)
	GetMentorByID(ctx context.Context, id int64) (*models.Mentor, error)
	GetMentorByUserID(ctx context.Context, userID int64) (*models.Mentor, error)
	UpdateMentor(ctx context.Context, id int64, req *dto.UpdateMentorRequest) (*models.Mentor, error)
	UpdateRating(ctx context.Context, id int64, rating float64) (*models.Mentor, error)
	DeleteMentor(ctx context.Context, id int64) error
	SeedMainMentors(ctx context.Context, adminPassword string) (*dto.SeedMentorsResult, error)
}

// mentorServiceImpl implements MentorService
type mentorServiceImpl struct {
	mentorRepo   repositories.IMentorRepository
	userRepo     repositories.IUserRepository
	seedPassword string
	logger       zerolog.Logger
}

// NewMentorService creates a new MentorService. seedPassword is the
// externally configured secret gating the seeding endpoint; when empty,
// seeding is disabled.
func NewMentorService(
	mentorRepo repositories.IMentorRepository,
	userRepo repositories.IUserRepository,
	seedPassword string,
	logger zerolog.Logger,
) MentorService {
	return &mentorServiceImpl{
		mentorRepo:   mentorRepo,
		userRepo:     userRepo,
		seedPassword: seedPassword,
		logger:       logger,
	}
}

// computeNextRating folds a new rating into the running average, rounded to
// one decimal place.
func computeNextRating(currentRating float64, totalRatings int, newRating float64) float64 {
	total := currentRating*float64(totalRatings) + newRating
	average := total / float64(totalRatings+1)
	return math.Round(average*10) / 10
}

// populateUser attaches the owning user account to a mentor profile. The
// attached user never carries a password hash. A dangling user reference
// leaves User nil.
func (s *mentorServiceImpl) populateUser(ctx context.Context, mentor *models.Mentor) error {
	return s.populateUsers(ctx, []*models.Mentor{mentor})
}

func (s *mentorServiceImpl) populateUsers(ctx context.Context, mentors []*models.Mentor) error {
	if len(mentors) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(mentors))
	for _, m := range mentors {
		ids = append(ids, m.UserID)
	}

	users, err := s.userRepo.GetPublicByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("error loading mentor users: %w", err)
	}

	for _, m := range mentors {
		m.User = users[m.UserID]
	}
	return nil
}

// CreateMentor creates a mentor profile for an existing user. One profile
// per user; a duplicate attempt leaves the existing profile untouched.
func (s *mentorServiceImpl) CreateMentor(ctx context.Context, req *dto.CreateMentorRequest) (*models.Mentor, error) {
	exists, err := s.mentorRepo.ExistsByUserID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("error checking mentor profile: %w", err)
	}
	if exists {
		return nil, apperrors.ErrMentorAlreadyExists
	}

	mentor := &models.Mentor{
		UserID:             req.UserID,
		Bio:                req.Bio,
		Languages:          req.Languages,
		Country:            req.Country,
		Flag:               req.Flag,
		Majors:             req.Majors,
		Interests:          req.Interests,
		Semester:           req.Semester,
		YearOfStudy:        req.YearOfStudy,
		Image:              req.Image,
		Email:              req.Email,
		IsAvailable:        true,
		MaxMentees:         5,
		LinkedIn:           req.LinkedIn,
		Instagram:          req.Instagram,
		About:              req.About,
		AcademicBackground: req.AcademicBackground,
		PersonalInfo:       req.PersonalInfo,
		MentorshipFocus:    req.MentorshipFocus,
	}
	if req.IsAvailable != nil {
		mentor.IsAvailable = *req.IsAvailable
	}
	if req.MaxMentees != nil {
		mentor.MaxMentees = *req.MaxMentees
	}

	if err := s.mentorRepo.Create(ctx, mentor); err != nil {
		return nil, err
	}

	if err := s.populateUser(ctx, mentor); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("mentorID", mentor.ID).Int64("userID", mentor.UserID).Msg("Mentor profile created")
	return mentor, nil
}

// GetAllMentors retrieves mentor profiles matching the filters
func (s *mentorServiceImpl) GetAllMentors(ctx context.Context, filters models.MentorFilters) ([]*models.Mentor, error) {
	mentors, err := s.mentorRepo.GetAll(ctx, filters)
	if err != nil {
		return nil, err
	}
	if err := s.populateUsers(ctx, mentors); err != nil {
		return nil, err
	}
	return mentors, nil
}

// GetMentorByID retrieves a mentor profile by ID
func (s *mentorServiceImpl) GetMentorByID(ctx context.Context, id int64) (*models.Mentor, error) {
	mentor, err := s.mentorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.populateUser(ctx, mentor); err != nil {
		return nil, err
	}
	return mentor, nil
}

// GetMentorByUserID retrieves the mentor profile owned by the given user
func (s *mentorServiceImpl) GetMentorByUserID(ctx context.Context, userID int64) (*models.Mentor, error) {
	mentor, err := s.mentorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.populateUser(ctx, mentor); err != nil {
		return nil, err
	}
	return mentor, nil
}

// UpdateMentor merges the provided fields into the stored profile. Rating
// fields are not writable here; use UpdateRating.
func (s *mentorServiceImpl) UpdateMentor(ctx context.Context, id int64, req *dto.UpdateMentorRequest) (*models.Mentor, error) {
	mentor, err := s.mentorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Bio != nil {
		mentor.Bio = *req.Bio
	}
	if req.Languages != nil {
		mentor.Languages = req.Languages
	}
	if req.Country != nil {
		mentor.Country = *req.Country
	}
	if req.Flag != nil {
		mentor.Flag = *req.Flag
	}
	if req.Majors != nil {
		mentor.Majors = req.Majors
	}
	if req.Interests != nil {
		mentor.Interests = req.Interests
	}
	if req.Semester != nil {
		mentor.Semester = *req.Semester
	}
	if req.YearOfStudy != nil {
		mentor.YearOfStudy = *req.YearOfStudy
	}
	if req.Image != nil {
		mentor.Image = *req.Image
	}
	if req.Email != nil {
		mentor.Email = *req.Email
	}
	if req.IsAvailable != nil {
		mentor.IsAvailable = *req.IsAvailable
	}
	if req.TotalMentees != nil {
		mentor.TotalMentees = *req.TotalMentees
	}
	if req.MaxMentees != nil {
		mentor.MaxMentees = *req.MaxMentees
	}
	if req.LinkedIn != nil {
		mentor.LinkedIn = req.LinkedIn
	}
	if req.Instagram != nil {
		mentor.Instagram = req.Instagram
	}
	if req.About != nil {
		mentor.About = req.About
	}
	if req.AcademicBackground != nil {
		mentor.AcademicBackground = req.AcademicBackground
	}
	if req.PersonalInfo != nil {
		mentor.PersonalInfo = req.PersonalInfo
	}
	if req.MentorshipFocus != nil {
		mentor.MentorshipFocus = req.MentorshipFocus
	}

	if err := s.mentorRepo.Update(ctx, mentor); err != nil {
		return nil, err
	}

	if err := s.populateUser(ctx, mentor); err != nil {
		return nil, err
	}
	return mentor, nil
}

// UpdateRating folds a new rating submission into the mentor's running
// average. The write is conditional on total_ratings being unchanged since
// the read, so two concurrent submissions cannot both be computed from the
// same base; the loser recomputes from fresh state.
func (s *mentorServiceImpl) UpdateRating(ctx context.Context, id int64, rating float64) (*models.Mentor, error) {
	for attempt := 0; attempt < ratingUpdateRetries; attempt++ {
		mentor, err := s.mentorRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		next := computeNextRating(mentor.Rating, mentor.TotalRatings, rating)
		applied, err := s.mentorRepo.UpdateRating(ctx, id, next, mentor.TotalRatings+1, mentor.TotalRatings)
		if err != nil {
			return nil, err
		}
		if applied {
			mentor.Rating = next
			mentor.TotalRatings++
			if err := s.populateUser(ctx, mentor); err != nil {
				return nil, err
			}
			return mentor, nil
		}

		s.logger.Debug().Int64("mentorID", id).Int("attempt", attempt+1).Msg("Rating update raced, retrying")
	}

	return nil, apperrors.NewConflictError("rating update failed after concurrent modifications")
}

// DeleteMentor deletes a mentor profile. Requests and sessions referencing
// the mentor are left in place.
func (s *mentorServiceImpl) DeleteMentor(ctx context.Context, id int64) error {
	if err := s.mentorRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("mentorID", id).Msg("Mentor profile deleted")
	return nil
}

// SeedMainMentors creates the canonical mentor profiles, creating user
// accounts for them as needed. Each record is processed independently; a
// failure on one does not stop the rest.
func (s *mentorServiceImpl) SeedMainMentors(ctx context.Context, adminPassword string) (*dto.SeedMentorsResult, error) {
	if s.seedPassword == "" {
		return nil, apperrors.NewUnauthorizedError("mentor seeding is disabled: no admin password configured")
	}
	if subtle.ConstantTimeCompare([]byte(adminPassword), []byte(s.seedPassword)) != 1 {
		return nil, apperrors.NewUnauthorizedError("invalid admin password")
	}

	result := &dto.SeedMentorsResult{}

	for _, profile := range seed.MainMentors() {
		outcome := dto.SeedMentorOutcome{Email: profile.Email}

		userID, err := s.findOrCreateMentorUser(ctx, profile)
		if err != nil {
			s.logger.Error().Err(err).Str("email", profile.Email).Msg("Error preparing seed mentor user")
			outcome.Status = dto.SeedOutcomeError
			outcome.Error = err.Error()
			result.Errors++
			result.Outcomes = append(result.Outcomes, outcome)
			continue
		}

		exists, err := s.mentorRepo.ExistsByUserID(ctx, userID)
		if err == nil && exists {
			outcome.Status = dto.SeedOutcomeAlreadyExists
			result.AlreadyExists++
			result.Outcomes = append(result.Outcomes, outcome)
			continue
		}

		mentor := profile.Mentor
		mentor.UserID = userID
		if err := s.mentorRepo.Create(ctx, &mentor); err != nil {
			if errors.Is(err, apperrors.ErrMentorAlreadyExists) {
				outcome.Status = dto.SeedOutcomeAlreadyExists
				result.AlreadyExists++
			} else {
				s.logger.Error().Err(err).Str("email", profile.Email).Msg("Error creating seed mentor profile")
				outcome.Status = dto.SeedOutcomeError
				outcome.Error = err.Error()
				result.Errors++
			}
			result.Outcomes = append(result.Outcomes, outcome)
			continue
		}

		outcome.Status = dto.SeedOutcomeCreated
		result.Created++
		result.Outcomes = append(result.Outcomes, outcome)
	}

	s.logger.Info().
		Int("created", result.Created).
		Int("alreadyExists", result.AlreadyExists).
		Int("errors", result.Errors).
		Msg("Mentor seeding finished")
	return result, nil
}

// findOrCreateMentorUser resolves the user account owning a canonical mentor
// profile, creating it when missing and ensuring the mentor flag is set.
func (s *mentorServiceImpl) findOrCreateMentorUser(ctx context.Context, profile seed.MentorProfile) (int64, error) {
	user, err := s.userRepo.GetByEmail(ctx, profile.Email)
	if err == nil {
		if !user.IsMentor {
			user.IsMentor = true
			if err := s.userRepo.Update(ctx, user); err != nil {
				return 0, err
			}
		}
		return user.ID, nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return 0, err
	}

	hashed, err := hashPassword(seedMentorUserPassword)
	if err != nil {
		return 0, err
	}

	user = &models.User{
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Email:     profile.Email,
		Password:  hashed,
		Role:      models.RoleStudent,
		IsMentor:  true,
		IsActive:  true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return 0, err
	}
	return user.ID, nil
}
