package dto

import (
	"time"
)

// CreateMentoringSessionRequest is the payload for POST /mentoring-sessions.
// Duration defaults to 30 minutes when omitted and must be at least 15 when
// supplied.
type CreateMentoringSessionRequest struct {
	StudentID   int64     `json:"studentId" binding:"required"`
	MentorID    int64     `json:"mentorId" binding:"required"`
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
	Duration    *int      `json:"duration" binding:"omitempty,min=15"`
	Topic       *string   `json:"topic"`
	Notes       *string   `json:"notes"`
	Location    *string   `json:"location"`
	MeetingLink *string   `json:"meetingLink"`
}

// UpdateMentoringSessionRequest is the payload for PATCH /mentoring-sessions/:id.
// Setting status to completed stamps completedAt; other statuses do not.
type UpdateMentoringSessionRequest struct {
	Status      *string    `json:"status" binding:"omitempty,oneof=scheduled completed cancelled"`
	ScheduledAt *time.Time `json:"scheduledAt"`
	Duration    *int       `json:"duration" binding:"omitempty,min=15"`
	Topic       *string    `json:"topic"`
	Notes       *string    `json:"notes"`
	Location    *string    `json:"location"`
	MeetingLink *string    `json:"meetingLink"`
}
