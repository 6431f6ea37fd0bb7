package dto

import (
	"time"
)

// CreateMentorshipRequestRequest is the payload for POST /mentorship-requests.
// Creation is unconditional: no duplicate check and no mentor capacity check.
type CreateMentorshipRequestRequest struct {
	StudentID           int64      `json:"studentId" binding:"required"`
	MentorID            int64      `json:"mentorId" binding:"required"`
	Message             string     `json:"message" binding:"required"`
	ProposedMeetingTime *time.Time `json:"proposedMeetingTime"`
}

// UpdateMentorshipRequestRequest is the payload for PATCH /mentorship-requests/:id.
// Whenever Status is present respondedAt is stamped, regardless of the value.
type UpdateMentorshipRequestRequest struct {
	Status              *string    `json:"status" binding:"omitempty,oneof=pending accepted rejected cancelled"`
	ResponseMessage     *string    `json:"responseMessage"`
	ProposedMeetingTime *time.Time `json:"proposedMeetingTime"`
}
