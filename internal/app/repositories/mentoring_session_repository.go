package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/derya/mentorlink/internal/app/models"
	"github.com/derya/mentorlink/internal/pkg/apperrors"
)

const sessionColumns = `id, student_id, mentor_id, scheduled_at, duration, status,
	topic, notes, location, meeting_link, completed_at, created_at, updated_at`

var (
	allSessionsQuery = fmt.Sprintf(`
		SELECT %s FROM mentoring_sessions ORDER BY scheduled_at DESC`, sessionColumns)
	sessionsByStudentQuery = fmt.Sprintf(`
		SELECT %s FROM mentoring_sessions WHERE student_id = $1
		ORDER BY scheduled_at DESC`, sessionColumns)
	sessionsByMentorQuery = fmt.Sprintf(`
		SELECT %s FROM mentoring_sessions WHERE mentor_id = $1
		ORDER BY scheduled_at DESC`, sessionColumns)
	upcomingSessionsQuery = fmt.Sprintf(`
		SELECT %s FROM mentoring_sessions
		WHERE %%s = $1 AND status = $2 AND scheduled_at >= NOW()
		ORDER BY scheduled_at ASC`, sessionColumns)
)

// MentoringSessionRepository handles database operations for mentoring sessions
type MentoringSessionRepository struct {
	db *pgxpool.Pool
}

// NewMentoringSessionRepository creates a new mentoring session repository
func NewMentoringSessionRepository(db *pgxpool.Pool) *MentoringSessionRepository {
	return &MentoringSessionRepository{db: db}
}

func scanMentoringSession(row pgx.Row) (*models.MentoringSession, error) {
	var session models.MentoringSession
	err := row.Scan(
		&session.ID, &session.StudentID, &session.MentorID, &session.ScheduledAt,
		&session.Duration, &session.Status, &session.Topic, &session.Notes,
		&session.Location, &session.MeetingLink, &session.CompletedAt,
		&session.CreatedAt, &session.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Create inserts a new mentoring session
func (r *MentoringSessionRepository) Create(ctx context.Context, session *models.MentoringSession) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO mentoring_sessions (student_id, mentor_id, scheduled_at, duration,
			status, topic, notes, location, meeting_link)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`,
		session.StudentID, session.MentorID, session.ScheduledAt, session.Duration,
		session.Status, session.Topic, session.Notes, session.Location,
		session.MeetingLink).
		Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating mentoring session: %w", err)
	}

	return nil
}

// GetAll retrieves all mentoring sessions, most recently scheduled first
func (r *MentoringSessionRepository) GetAll(ctx context.Context) ([]*models.MentoringSession, error) {
	return r.querySessions(ctx, allSessionsQuery)
}

// GetByStudentID retrieves sessions for the given student, most recently scheduled first
func (r *MentoringSessionRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.MentoringSession, error) {
	return r.querySessions(ctx, sessionsByStudentQuery, studentID)
}

// GetByMentorID retrieves sessions for the given mentor, most recently scheduled first
func (r *MentoringSessionRepository) GetByMentorID(ctx context.Context, mentorID int64) ([]*models.MentoringSession, error) {
	return r.querySessions(ctx, sessionsByMentorQuery, mentorID)
}

// GetUpcoming retrieves scheduled sessions from now onwards for the given
// participant, soonest first.
func (r *MentoringSessionRepository) GetUpcoming(ctx context.Context, participantID int64, asMentor bool) ([]*models.MentoringSession, error) {
	column := "student_id"
	if asMentor {
		column = "mentor_id"
	}
	return r.querySessions(ctx, fmt.Sprintf(upcomingSessionsQuery, column),
		participantID, models.SessionScheduled)
}

func (r *MentoringSessionRepository) querySessions(ctx context.Context, sql string, args ...interface{}) ([]*models.MentoringSession, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*models.MentoringSession
	for rows.Next() {
		session, err := scanMentoringSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}

// GetByID retrieves a mentoring session by ID
func (r *MentoringSessionRepository) GetByID(ctx context.Context, id int64) (*models.MentoringSession, error) {
	session, err := scanMentoringSession(r.db.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM mentoring_sessions WHERE id = $1`, sessionColumns), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMentoringSessionNotFound
		}
		return nil, fmt.Errorf("error retrieving mentoring session: %w", err)
	}
	return session, nil
}

// Update writes all mutable session fields
func (r *MentoringSessionRepository) Update(ctx context.Context, session *models.MentoringSession) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE mentoring_sessions SET
			scheduled_at = $1, duration = $2, status = $3, topic = $4, notes = $5,
			location = $6, meeting_link = $7, completed_at = $8, updated_at = NOW()
		WHERE id = $9`,
		session.ScheduledAt, session.Duration, session.Status, session.Topic,
		session.Notes, session.Location, session.MeetingLink, session.CompletedAt,
		session.ID)

	if err != nil {
		return fmt.Errorf("error updating mentoring session: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMentoringSessionNotFound
	}

	return nil
}

// Delete deletes a mentoring session by ID
func (r *MentoringSessionRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM mentoring_sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting mentoring session: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMentoringSessionNotFound
	}

	return nil
}
