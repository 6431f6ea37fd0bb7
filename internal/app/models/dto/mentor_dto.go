package dto

import (
	"github.com/derya/mentorlink/internal/app/models"
)

// CreateMentorRequest is the payload for POST /mentors
type CreateMentorRequest struct {
	UserID             int64                      `json:"userId" binding:"required"`
	Bio                string                     `json:"bio" binding:"required"`
	Languages          []string                   `json:"languages"`
	Country            string                     `json:"country"`
	Flag               string                     `json:"flag"`
	Majors             []string                   `json:"majors"`
	Interests          []string                   `json:"interests"`
	Semester           int                        `json:"semester"`
	YearOfStudy        string                     `json:"yearOfStudy"`
	Image              string                     `json:"image"`
	Email              string                     `json:"email" binding:"omitempty,email"`
	IsAvailable        *bool                      `json:"isAvailable"`
	MaxMentees         *int                       `json:"maxMentees"`
	LinkedIn           *string                    `json:"linkedIn"`
	Instagram          *string                    `json:"instagram"`
	About              []string                   `json:"about"`
	AcademicBackground *models.AcademicBackground `json:"academicBackground"`
	PersonalInfo       *models.PersonalInfo       `json:"personalInfo"`
	MentorshipFocus    *models.MentorshipFocus    `json:"mentorshipFocus"`
}

// UpdateMentorRequest is the payload for PATCH /mentors/:id. Only present
// fields are merged into the stored profile.
type UpdateMentorRequest struct {
	Bio                *string                    `json:"bio"`
	Languages          []string                   `json:"languages"`
	Country            *string                    `json:"country"`
	Flag               *string                    `json:"flag"`
	Majors             []string                   `json:"majors"`
	Interests          []string                   `json:"interests"`
	Semester           *int                       `json:"semester"`
	YearOfStudy        *string                    `json:"yearOfStudy"`
	Image              *string                    `json:"image"`
	Email              *string                    `json:"email" binding:"omitempty,email"`
	IsAvailable        *bool                      `json:"isAvailable"`
	TotalMentees       *int                       `json:"totalMentees"`
	MaxMentees         *int                       `json:"maxMentees"`
	LinkedIn           *string                    `json:"linkedIn"`
	Instagram          *string                    `json:"instagram"`
	About              []string                   `json:"about"`
	AcademicBackground *models.AcademicBackground `json:"academicBackground"`
	PersonalInfo       *models.PersonalInfo       `json:"personalInfo"`
	MentorshipFocus    *models.MentorshipFocus    `json:"mentorshipFocus"`
}

// UpdateRatingRequest is the payload for PATCH /mentors/:id/rating
type UpdateRatingRequest struct {
	Rating *float64 `json:"rating" binding:"required,min=0,max=5"`
}

// SeedMentorsRequest gates POST /mentors/seed
type SeedMentorsRequest struct {
	AdminPassword string `json:"adminPassword" binding:"required"`
}

// Seed outcome statuses for a single canonical mentor record
const (
	SeedOutcomeCreated       = "created"
	SeedOutcomeAlreadyExists = "already_exists"
	SeedOutcomeError         = "error"
)

// SeedMentorOutcome reports what happened for one canonical mentor record
type SeedMentorOutcome struct {
	Email  string `json:"email"`
	Status string `json:"status" example:"created"`
	Error  string `json:"error,omitempty"`
}

// SeedMentorsResult is the summary returned by POST /mentors/seed
type SeedMentorsResult struct {
	Created       int                 `json:"created"`
	AlreadyExists int                 `json:"alreadyExists"`
	Errors        int                 `json:"errors"`
	Outcomes      []SeedMentorOutcome `json:"outcomes"`
}
