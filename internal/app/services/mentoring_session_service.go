package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/derya/mentorlink/internal/app/models"
	"github.com/derya/mentorlink/internal/app/models/dto"
	"github.com/derya/mentorlink/internal/app/repositories"
)

// defaultSessionDuration is the session length in minutes when the caller
// does not supply one.
const defaultSessionDuration = 30

// MentoringSessionService defines the interface for mentoring session operations
type MentoringSessionService interface {
	CreateSession(ctx context.Context, req *dto.CreateMentoringSessionRequest) (*models.MentoringSession, error)
	GetAllSessions(ctx context.Context) ([]*models.MentoringSession, error)
	GetSessionsByStudent(ctx context.Context, studentID int64) ([]*models.MentoringSession, error)
	GetSessionsByMentor(ctx context.Context, mentorID int64) ([]*models.MentoringSession, error)
	GetUpcomingSessions(ctx context.Context, participantID int64, asMentor bool) ([]*models.MentoringSession, error)
	GetSessionByID(ctx context.Context, id int64) (*models.MentoringSession, error)
	UpdateSession(ctx context.Context, id int64, req *dto.UpdateMentoringSessionRequest) (*models.MentoringSession, error)
	DeleteSession(ctx context.Context, id int64) error
}

// mentoringSessionServiceImpl implements MentoringSessionService
type mentoringSessionServiceImpl struct {
	sessionRepo repositories.IMentoringSessionRepository
	mentorRepo  repositories.IMentorRepository
	userRepo    repositories.IUserRepository
	logger      zerolog.Logger
}

// NewMentoringSessionService creates a new MentoringSessionService
func NewMentoringSessionService(
	sessionRepo repositories.IMentoringSessionRepository,
	mentorRepo repositories.IMentorRepository,
	userRepo repositories.IUserRepository,
	logger zerolog.Logger,
) MentoringSessionService {
	return &mentoringSessionServiceImpl{
		sessionRepo: sessionRepo,
		mentorRepo:  mentorRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// populate attaches the referenced student and mentor (with its owning user)
// to each session. Attached users never carry password hashes. Dangling
// references leave the relation nil.
func (s *mentoringSessionServiceImpl) populate(ctx context.Context, sessions []*models.MentoringSession) error {
	if len(sessions) == 0 {
		return nil
	}

	mentorIDs := make([]int64, 0, len(sessions))
	userIDs := make([]int64, 0, len(sessions))
	for _, session := range sessions {
		userIDs = append(userIDs, session.StudentID)
		mentorIDs = append(mentorIDs, session.MentorID)
	}

	mentors, err := s.mentorRepo.GetByIDs(ctx, mentorIDs)
	if err != nil {
		return fmt.Errorf("error loading session mentors: %w", err)
	}
	for _, m := range mentors {
		userIDs = append(userIDs, m.UserID)
	}

	users, err := s.userRepo.GetPublicByIDs(ctx, userIDs)
	if err != nil {
		return fmt.Errorf("error loading session users: %w", err)
	}

	for _, m := range mentors {
		m.User = users[m.UserID]
	}
	for _, session := range sessions {
		session.Student = users[session.StudentID]
		session.Mentor = mentors[session.MentorID]
	}
	return nil
}

// CreateSession schedules a new mentoring session
func (s *mentoringSessionServiceImpl) CreateSession(ctx context.Context, req *dto.CreateMentoringSessionRequest) (*models.MentoringSession, error) {
	session := &models.MentoringSession{
		StudentID:   req.StudentID,
		MentorID:    req.MentorID,
		ScheduledAt: req.ScheduledAt,
		Duration:    defaultSessionDuration,
		Status:      models.SessionScheduled,
		Topic:       req.Topic,
		Notes:       req.Notes,
		Location:    req.Location,
		MeetingLink: req.MeetingLink,
	}
	if req.Duration != nil {
		session.Duration = *req.Duration
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	if err := s.populate(ctx, []*models.MentoringSession{session}); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("sessionID", session.ID).
		Int64("studentID", session.StudentID).
		Int64("mentorID", session.MentorID).
		Time("scheduledAt", session.ScheduledAt).
		Msg("Mentoring session created")
	return session, nil
}

// GetAllSessions retrieves all mentoring sessions
func (s *mentoringSessionServiceImpl) GetAllSessions(ctx context.Context) ([]*models.MentoringSession, error) {
	sessions, err := s.sessionRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.populate(ctx, sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// GetSessionsByStudent retrieves sessions for the given student
func (s *mentoringSessionServiceImpl) GetSessionsByStudent(ctx context.Context, studentID int64) ([]*models.MentoringSession, error) {
	sessions, err := s.sessionRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if err := s.populate(ctx, sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// GetSessionsByMentor retrieves sessions for the given mentor
func (s *mentoringSessionServiceImpl) GetSessionsByMentor(ctx context.Context, mentorID int64) ([]*models.MentoringSession, error) {
	sessions, err := s.sessionRepo.GetByMentorID(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if err := s.populate(ctx, sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// GetUpcomingSessions retrieves future scheduled sessions for a participant,
// as student or as mentor.
func (s *mentoringSessionServiceImpl) GetUpcomingSessions(ctx context.Context, participantID int64, asMentor bool) ([]*models.MentoringSession, error) {
	sessions, err := s.sessionRepo.GetUpcoming(ctx, participantID, asMentor)
	if err != nil {
		return nil, err
	}
	if err := s.populate(ctx, sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// GetSessionByID retrieves a mentoring session by ID
func (s *mentoringSessionServiceImpl) GetSessionByID(ctx context.Context, id int64) (*models.MentoringSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.populate(ctx, []*models.MentoringSession{session}); err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateSession merges the provided fields into the stored session. A status
// change to completed stamps completedAt; other status values leave it
// untouched.
func (s *mentoringSessionServiceImpl) UpdateSession(ctx context.Context, id int64, req *dto.UpdateMentoringSessionRequest) (*models.MentoringSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		session.Status = models.SessionStatus(*req.Status)
		if session.Status == models.SessionCompleted {
			now := time.Now().UTC()
			session.CompletedAt = &now
		}
	}
	if req.ScheduledAt != nil {
		session.ScheduledAt = *req.ScheduledAt
	}
	if req.Duration != nil {
		session.Duration = *req.Duration
	}
	if req.Topic != nil {
		session.Topic = req.Topic
	}
	if req.Notes != nil {
		session.Notes = req.Notes
	}
	if req.Location != nil {
		session.Location = req.Location
	}
	if req.MeetingLink != nil {
		session.MeetingLink = req.MeetingLink
	}

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	if err := s.populate(ctx, []*models.MentoringSession{session}); err != nil {
		return nil, err
	}
	return session, nil
}

// DeleteSession deletes a mentoring session
func (s *mentoringSessionServiceImpl) DeleteSession(ctx context.Context, id int64) error {
	if err := s.sessionRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("sessionID", id).Msg("Mentoring session deleted")
	return nil
}
