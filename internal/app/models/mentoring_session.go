package models

import (
	"time"
)

// SessionStatus tracks the lifecycle of a mentoring session
type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

// MentoringSession defines a scheduled meeting between a student and a
// mentor, based on the 'mentoring_sessions' table. Sessions carry no link to
// the mentorship request that produced them.
type MentoringSession struct {
	ID          int64         `json:"id" db:"id" example:"1"`
	StudentID   int64         `json:"studentId" db:"student_id" example:"3"`
	Student     *User         `json:"student,omitempty"` // Joined relation, no db tag
	MentorID    int64         `json:"mentorId" db:"mentor_id" example:"1"`
	Mentor      *Mentor       `json:"mentor,omitempty"` // Joined relation with owning user, no db tag
	ScheduledAt time.Time     `json:"scheduledAt" db:"scheduled_at"`
	Duration    int           `json:"duration" db:"duration" example:"30"` // Minutes, defaults to 30
	Status      SessionStatus `json:"status" db:"status" example:"scheduled"`
	Topic       *string       `json:"topic,omitempty" db:"topic"`
	Notes       *string       `json:"notes,omitempty" db:"notes"`
	Location    *string       `json:"location,omitempty" db:"location"` // e.g. "Online - Zoom", "Library Room 3A"
	MeetingLink *string       `json:"meetingLink,omitempty" db:"meeting_link"`
	CompletedAt *time.Time    `json:"completedAt,omitempty" db:"completed_at"` // Stamped only on a transition to completed
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" db:"updated_at"`
}
