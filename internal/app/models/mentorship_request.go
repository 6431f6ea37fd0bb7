package models

import (
	"time"
)

// RequestStatus tracks the lifecycle of a mentorship request
type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestAccepted  RequestStatus = "accepted"
	RequestRejected  RequestStatus = "rejected"
	RequestCancelled RequestStatus = "cancelled"
)

// MentorshipRequest defines a student's ask to be paired with a mentor, based
// on the 'mentorship_requests' table. No uniqueness constraint exists; a
// student may submit duplicate requests to the same mentor.
type MentorshipRequest struct {
	ID                  int64         `json:"id" db:"id" example:"1"`
	StudentID           int64         `json:"studentId" db:"student_id" example:"3"`
	Student             *User         `json:"student,omitempty"` // Joined relation, no db tag
	MentorID            int64         `json:"mentorId" db:"mentor_id" example:"1"`
	Mentor              *Mentor       `json:"mentor,omitempty"` // Joined relation with owning user, no db tag
	Message             string        `json:"message" db:"message"`
	Status              RequestStatus `json:"status" db:"status" example:"pending"`
	ResponseMessage     *string       `json:"responseMessage,omitempty" db:"response_message"`
	RespondedAt         *time.Time    `json:"respondedAt,omitempty" db:"responded_at"` // Stamped whenever status is modified via update
	ProposedMeetingTime *time.Time    `json:"proposedMeetingTime,omitempty" db:"proposed_meeting_time"`
	CreatedAt           time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time     `json:"updatedAt" db:"updated_at"`
}
