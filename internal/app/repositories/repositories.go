package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository              *UserRepository
	MentorRepository            *MentorRepository
	MentorshipRequestRepository *MentorshipRequestRepository
	MentoringSessionRepository  *MentoringSessionRepository
	LanguageRepository          *LanguageRepository
	CountryRepository           *CountryRepository
	MajorRepository             *MajorRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:              NewUserRepository(db),
		MentorRepository:            NewMentorRepository(db),
		MentorshipRequestRepository: NewMentorshipRequestRepository(db),
		MentoringSessionRepository:  NewMentoringSessionRepository(db),
		LanguageRepository:          NewLanguageRepository(db),
		CountryRepository:           NewCountryRepository(db),
		MajorRepository:             NewMajorRepository(db),
	}
}
