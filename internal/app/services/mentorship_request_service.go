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

// MentorshipRequestService defines the interface for mentorship request operations
type MentorshipRequestService interface {
	CreateRequest(ctx context.Context, req *dto.CreateMentorshipRequestRequest) (*models.MentorshipRequest, error)
	GetAllRequests(ctx context.Context) ([]*models.MentorshipRequest, error)
	GetRequestsByStudent(ctx context.Context, studentID int64) ([]*models.MentorshipRequest, error)
	GetRequestsByMentor(ctx context.Context, mentorID int64) ([]*models.MentorshipRequest, error)
	GetPendingRequestsByMentor(ctx context.Context, mentorID int64) ([]*models.MentorshipRequest, error)
	GetRequestByID(ctx context.Context, id int64) (*models.MentorshipRequest, error)
	UpdateRequest(ctx context.Context, id int64, req *dto.UpdateMentorshipRequestRequest) (*models.MentorshipRequest, error)
	DeleteRequest(ctx context.Context, id int64) error
}

// mentorshipRequestServiceImpl implements MentorshipRequestService
type mentorshipRequestServiceImpl struct {
	requestRepo repositories.IMentorshipRequestRepository
	mentorRepo  repositories.IMentorRepository
	userRepo    repositories.IUserRepository
	logger      zerolog.Logger
}

// NewMentorshipRequestService creates a new MentorshipRequestService
func NewMentorshipRequestService(
	requestRepo repositories.IMentorshipRequestRepository,
	mentorRepo repositories.IMentorRepository,
	userRepo repositories.IUserRepository,
	logger zerolog.Logger,
) MentorshipRequestService {
	return &mentorshipRequestServiceImpl{
		requestRepo: requestRepo,
		mentorRepo:  mentorRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// populate attaches the referenced student and mentor (with its owning user)
// to each request. Attached users never carry password hashes. Dangling
// references leave the relation nil.
func (s *mentorshipRequestServiceImpl) populate(ctx context.Context, requests []*models.MentorshipRequest) error {
	if len(requests) == 0 {
		return nil
	}

	mentorIDs := make([]int64, 0, len(requests))
	userIDs := make([]int64, 0, len(requests))
	for _, r := range requests {
		userIDs = append(userIDs, r.StudentID)
		mentorIDs = append(mentorIDs, r.MentorID)
	}

	mentors, err := s.mentorRepo.GetByIDs(ctx, mentorIDs)
	if err != nil {
		return fmt.Errorf("error loading request mentors: %w", err)
	}
	for _, m := range mentors {
		userIDs = append(userIDs, m.UserID)
	}

	users, err := s.userRepo.GetPublicByIDs(ctx, userIDs)
	if err != nil {
		return fmt.Errorf("error loading request users: %w", err)
	}

	for _, m := range mentors {
		m.User = users[m.UserID]
	}
	for _, r := range requests {
		r.Student = users[r.StudentID]
		r.Mentor = mentors[r.MentorID]
	}
	return nil
}

// CreateRequest creates a new mentorship request. No duplicate or capacity
// check is performed; the same student may request the same mentor again.
func (s *mentorshipRequestServiceImpl) CreateRequest(ctx context.Context, req *dto.CreateMentorshipRequestRequest) (*models.MentorshipRequest, error) {
	request := &models.MentorshipRequest{
		StudentID:           req.StudentID,
		MentorID:            req.MentorID,
		Message:             req.Message,
		Status:              models.RequestPending,
		ProposedMeetingTime: req.ProposedMeetingTime,
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	if err := s.populate(ctx, []*models.MentorshipRequest{request}); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("requestID", request.ID).
		Int64("studentID", request.StudentID).
		Int64("mentorID", request.MentorID).
		Msg("Mentorship request created")
	return request, nil
}

// GetAllRequests retrieves all mentorship requests
func (s *mentorshipRequestServiceImpl) GetAllRequests(ctx context.Context) ([]*models.MentorshipRequest, error) {
	requests, err := s.requestRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.populate(ctx, requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// GetRequestsByStudent retrieves requests submitted by the given student
func (s *mentorshipRequestServiceImpl) GetRequestsByStudent(ctx context.Context, studentID int64) ([]*models.MentorshipRequest, error) {
	requests, err := s.requestRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if err := s.populate(ctx, requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// GetRequestsByMentor retrieves requests addressed to the given mentor
func (s *mentorshipRequestServiceImpl) GetRequestsByMentor(ctx context.Context, mentorID int64) ([]*models.MentorshipRequest, error) {
	requests, err := s.requestRepo.GetByMentorID(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if err := s.populate(ctx, requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// GetPendingRequestsByMentor retrieves pending requests addressed to the given mentor
func (s *mentorshipRequestServiceImpl) GetPendingRequestsByMentor(ctx context.Context, mentorID int64) ([]*models.MentorshipRequest, error) {
	requests, err := s.requestRepo.GetPendingByMentorID(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if err := s.populate(ctx, requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// GetRequestByID retrieves a mentorship request by ID
func (s *mentorshipRequestServiceImpl) GetRequestByID(ctx context.Context, id int64) (*models.MentorshipRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.populate(ctx, []*models.MentorshipRequest{request}); err != nil {
		return nil, err
	}
	return request, nil
}

// UpdateRequest merges the provided fields into the stored request. Any
// update that carries a status stamps respondedAt, even when the status
// value is unchanged.
func (s *mentorshipRequestServiceImpl) UpdateRequest(ctx context.Context, id int64, req *dto.UpdateMentorshipRequestRequest) (*models.MentorshipRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		request.Status = models.RequestStatus(*req.Status)
		now := time.Now().UTC()
		request.RespondedAt = &now
	}
	if req.ResponseMessage != nil {
		request.ResponseMessage = req.ResponseMessage
	}
	if req.ProposedMeetingTime != nil {
		request.ProposedMeetingTime = req.ProposedMeetingTime
	}

	if err := s.requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	if err := s.populate(ctx, []*models.MentorshipRequest{request}); err != nil {
		return nil, err
	}
	return request, nil
}

// DeleteRequest deletes a mentorship request
func (s *mentorshipRequestServiceImpl) DeleteRequest(ctx context.Context, id int64) error {
	if err := s.requestRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("requestID", id).Msg("Mentorship request deleted")
	return nil
}
