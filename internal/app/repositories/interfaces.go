package repositories

import (
	"context"

	"github.com/derya/mentorlink/internal/app/models"
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetAll(ctx context.Context) ([]*models.User, error)
	GetMentorUsers(ctx context.Context) ([]*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetPublicByIDs(ctx context.Context, ids []int64) (map[int64]*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
}

// IMentorRepository defines the interface for mentor-related database operations
type IMentorRepository interface {
	Create(ctx context.Context, mentor *models.Mentor) error
	GetAll(ctx context.Context, filters models.MentorFilters) ([]*models.Mentor, error)
	GetByID(ctx context.Context, id int64) (*models.Mentor, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Mentor, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*models.Mentor, error)
	ExistsByUserID(ctx context.Context, userID int64) (bool, error)
	Update(ctx context.Context, mentor *models.Mentor) error
	UpdateRating(ctx context.Context, id int64, rating float64, totalRatings, expectedTotal int) (bool, error)
	Delete(ctx context.Context, id int64) error
}

// IMentorshipRequestRepository defines the interface for mentorship request database operations
type IMentorshipRequestRepository interface {
	Create(ctx context.Context, request *models.MentorshipRequest) error
	GetAll(ctx context.Context) ([]*models.MentorshipRequest, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.MentorshipRequest, error)
	GetByMentorID(ctx context.Context, mentorID int64) ([]*models.MentorshipRequest, error)
	GetPendingByMentorID(ctx context.Context, mentorID int64) ([]*models.MentorshipRequest, error)
	GetByID(ctx context.Context, id int64) (*models.MentorshipRequest, error)
	Update(ctx context.Context, request *models.MentorshipRequest) error
	Delete(ctx context.Context, id int64) error
}

// IMentoringSessionRepository defines the interface for mentoring session database operations
type IMentoringSessionRepository interface {
	Create(ctx context.Context, session *models.MentoringSession) error
	GetAll(ctx context.Context) ([]*models.MentoringSession, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.MentoringSession, error)
	GetByMentorID(ctx context.Context, mentorID int64) ([]*models.MentoringSession, error)
	GetUpcoming(ctx context.Context, participantID int64, asMentor bool) ([]*models.MentoringSession, error)
	GetByID(ctx context.Context, id int64) (*models.MentoringSession, error)
	Update(ctx context.Context, session *models.MentoringSession) error
	Delete(ctx context.Context, id int64) error
}

// ILanguageRepository defines the interface for language database operations
type ILanguageRepository interface {
	Create(ctx context.Context, language *models.Language) error
	GetAllActive(ctx context.Context) ([]*models.Language, error)
	GetByID(ctx context.Context, id int64) (*models.Language, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, languages []models.Language) error
}

// ICountryRepository defines the interface for country database operations
type ICountryRepository interface {
	Create(ctx context.Context, country *models.Country) error
	GetAllActive(ctx context.Context) ([]*models.Country, error)
	GetByID(ctx context.Context, id int64) (*models.Country, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, countries []models.Country) error
}

// IMajorRepository defines the interface for major database operations
type IMajorRepository interface {
	Create(ctx context.Context, major *models.Major) error
	GetAllActive(ctx context.Context) ([]*models.Major, error)
	GetByID(ctx context.Context, id int64) (*models.Major, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, majors []models.Major) error
}
