package models

import (
	"time"
)

// AcademicBackground is the optional structured academic block on a mentor profile
type AcademicBackground struct {
	Major           string `json:"major"`
	CurrentSemester int    `json:"currentSemester"`
	FocusAreas      string `json:"focusAreas"`
	Experience      string `json:"experience"`
}

// PersonalInfo is the optional structured personal block on a mentor profile
type PersonalInfo struct {
	Languages   string `json:"languages"`
	Nationality string `json:"nationality"`
	Hobbies     string `json:"hobbies"`
}

// MentorshipFocus is the optional structured mentoring-scope block on a mentor profile
type MentorshipFocus struct {
	WhoCanHelp string   `json:"whoCanHelp"`
	Topics     []string `json:"topics"`
}

// Mentor defines the mentor profile model based on the 'mentors' table.
// At most one profile exists per user. The owning User is joined into reads
// with the password excluded; UserID always carries the raw reference.
type Mentor struct {
	ID                 int64               `json:"id" db:"id" example:"1"`
	UserID             int64               `json:"userId" db:"user_id" example:"2"`
	User               *User               `json:"user,omitempty"` // Joined relation, no db tag
	Bio                string              `json:"bio" db:"bio"`
	Languages          []string            `json:"languages" db:"languages"`
	Country            string              `json:"country" db:"country" example:"Germany"`
	Flag               string              `json:"flag" db:"flag" example:"🇩🇪"`
	Majors             []string            `json:"majors" db:"majors"`
	Interests          []string            `json:"interests" db:"interests"`
	Semester           int                 `json:"semester" db:"semester" example:"5"`
	YearOfStudy        string              `json:"yearOfStudy" db:"year_of_study" example:"3rd year"`
	Image              string              `json:"image" db:"image"`
	Email              string              `json:"email" db:"email"` // Denormalized contact copy, may diverge from User.Email
	Rating             float64             `json:"rating" db:"rating" example:"4.4"`
	TotalRatings       int                 `json:"totalRatings" db:"total_ratings" example:"12"`
	IsAvailable        bool                `json:"isAvailable" db:"is_available" example:"true"`
	TotalMentees       int                 `json:"totalMentees" db:"total_mentees"`
	MaxMentees         int                 `json:"maxMentees" db:"max_mentees" example:"5"`
	LinkedIn           *string             `json:"linkedIn,omitempty" db:"linkedin"`
	Instagram          *string             `json:"instagram,omitempty" db:"instagram"`
	About              []string            `json:"about,omitempty" db:"about"`
	AcademicBackground *AcademicBackground `json:"academicBackground,omitempty" db:"academic_background"`
	PersonalInfo       *PersonalInfo       `json:"personalInfo,omitempty" db:"personal_info"`
	MentorshipFocus    *MentorshipFocus    `json:"mentorshipFocus,omitempty" db:"mentorship_focus"`
	CreatedAt          time.Time           `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time           `json:"updatedAt" db:"updated_at"`
}

// MentorFilters are the optional listing filters. Multi-value fields match
// when the mentor's array intersects the given values; filters are ANDed.
type MentorFilters struct {
	Languages   []string
	Country     string
	Majors      []string
	Interests   []string
	IsAvailable *bool
}
