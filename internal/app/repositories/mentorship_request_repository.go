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

const requestColumns = `id, student_id, mentor_id, message, status, response_message,
	responded_at, proposed_meeting_time, created_at, updated_at`

// MentorshipRequestRepository handles database operations for mentorship requests
type MentorshipRequestRepository struct {
	db *pgxpool.Pool
}

// NewMentorshipRequestRepository creates a new mentorship request repository
func NewMentorshipRequestRepository(db *pgxpool.Pool) *MentorshipRequestRepository {
	return &MentorshipRequestRepository{db: db}
}

func scanMentorshipRequest(row pgx.Row) (*models.MentorshipRequest, error) {
	var request models.MentorshipRequest
	err := row.Scan(
		&request.ID, &request.StudentID, &request.MentorID, &request.Message,
		&request.Status, &request.ResponseMessage, &request.RespondedAt,
		&request.ProposedMeetingTime, &request.CreatedAt, &request.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// Create inserts a new mentorship request
func (r *MentorshipRequestRepository) Create(ctx context.Context, request *models.MentorshipRequest) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO mentorship_requests (student_id, mentor_id, message, status, proposed_meeting_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		request.StudentID, request.MentorID, request.Message, request.Status,
		request.ProposedMeetingTime).
		Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating mentorship request: %w", err)
	}

	return nil
}

// GetAll retrieves all mentorship requests, newest first
func (r *MentorshipRequestRepository) GetAll(ctx context.Context) ([]*models.MentorshipRequest, error) {
	return r.queryRequests(ctx, fmt.Sprintf(`
		SELECT %s FROM mentorship_requests ORDER BY created_at DESC`, requestColumns))
}

// GetByStudentID retrieves requests submitted by the given student, newest first
func (r *MentorshipRequestRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.MentorshipRequest, error) {
	return r.queryRequests(ctx, fmt.Sprintf(`
		SELECT %s FROM mentorship_requests WHERE student_id = $1
		ORDER BY created_at DESC`, requestColumns), studentID)
}

// GetByMentorID retrieves requests addressed to the given mentor, newest first
func (r *MentorshipRequestRepository) GetByMentorID(ctx context.Context, mentorID int64) ([]*models.MentorshipRequest, error) {
	return r.queryRequests(ctx, fmt.Sprintf(`
		SELECT %s FROM mentorship_requests WHERE mentor_id = $1
		ORDER BY created_at DESC`, requestColumns), mentorID)
}

// GetPendingByMentorID retrieves pending requests addressed to the given mentor, newest first
func (r *MentorshipRequestRepository) GetPendingByMentorID(ctx context.Context, mentorID int64) ([]*models.MentorshipRequest, error) {
	return r.queryRequests(ctx, fmt.Sprintf(`
		SELECT %s FROM mentorship_requests WHERE mentor_id = $1 AND status = $2
		ORDER BY created_at DESC`, requestColumns), mentorID, models.RequestPending)
}

func (r *MentorshipRequestRepository) queryRequests(ctx context.Context, sql string, args ...interface{}) ([]*models.MentorshipRequest, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*models.MentorshipRequest
	for rows.Next() {
		request, err := scanMentorshipRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, rows.Err()
}

// GetByID retrieves a mentorship request by ID
func (r *MentorshipRequestRepository) GetByID(ctx context.Context, id int64) (*models.MentorshipRequest, error) {
	request, err := scanMentorshipRequest(r.db.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM mentorship_requests WHERE id = $1`, requestColumns), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMentorshipRequestNotFound
		}
		return nil, fmt.Errorf("error retrieving mentorship request: %w", err)
	}
	return request, nil
}

// Update writes all mutable request fields
func (r *MentorshipRequestRepository) Update(ctx context.Context, request *models.MentorshipRequest) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE mentorship_requests SET
			message = $1, status = $2, response_message = $3, responded_at = $4,
			proposed_meeting_time = $5, updated_at = NOW()
		WHERE id = $6`,
		request.Message, request.Status, request.ResponseMessage, request.RespondedAt,
		request.ProposedMeetingTime, request.ID)

	if err != nil {
		return fmt.Errorf("error updating mentorship request: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMentorshipRequestNotFound
	}

	return nil
}

// Delete deletes a mentorship request by ID
func (r *MentorshipRequestRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM mentorship_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting mentorship request: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMentorshipRequestNotFound
	}

	return nil
}
