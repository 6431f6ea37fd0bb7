package client

import (
	"context"
	"strings"

	"github.com/derya/mentorlink/internal/app/models"
)

// MentorProfile is the display-oriented shape used by the browsing flow. The
// owning user's name is resolved, and the first major is promoted to the
// primary one.
type MentorProfile struct {
	ID                 int64
	Name               string
	Major              string
	Semester           int
	Languages          []string
	Nationality        string
	Flag               string
	Bio                string
	Image              string
	About              []string
	AcademicBackground *models.AcademicBackground
	PersonalInfo       *models.PersonalInfo
	MentorshipFocus    *models.MentorshipFocus
	Email              string
}

// Filters narrows a mentor profile list. Zero values match everything.
// Semester takes one of the range labels "3-4", "5-6" or "7+".
type Filters struct {
	Major    string
	Semester string
	Language string
}

// FlattenMentor resolves the mentor's owning user (using the attached user
// when present, fetching it otherwise) and maps the record to its display
// shape.
func (c *Client) FlattenMentor(ctx context.Context, mentor *models.Mentor) (*MentorProfile, error) {
	user := mentor.User
	if user == nil {
		fetched, err := c.GetUser(ctx, mentor.UserID)
		if err != nil {
			return nil, err
		}
		user = fetched
	}

	primaryMajor := ""
	if len(mentor.Majors) > 0 {
		primaryMajor = mentor.Majors[0]
	}

	semester := mentor.Semester
	if semester == 0 {
		semester = 1
	}

	email := mentor.Email
	if email == "" {
		email = user.Email
	}

	return &MentorProfile{
		ID:                 mentor.ID,
		Name:               user.FirstName + " " + user.LastName,
		Major:              primaryMajor,
		Semester:           semester,
		Languages:          mentor.Languages,
		Nationality:        mentor.Country,
		Flag:               mentor.Flag,
		Bio:                mentor.Bio,
		Image:              mentor.Image,
		About:              mentor.About,
		AcademicBackground: mentor.AcademicBackground,
		PersonalInfo:       mentor.PersonalInfo,
		MentorshipFocus:    mentor.MentorshipFocus,
		Email:              email,
	}, nil
}

// FetchMentorProfiles fetches every mentor and flattens each one.
func (c *Client) FetchMentorProfiles(ctx context.Context) ([]*MentorProfile, error) {
	mentors, err := c.ListMentors(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]*MentorProfile, 0, len(mentors))
	for _, mentor := range mentors {
		profile, err := c.FlattenMentor(ctx, mentor)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

// FilterProfiles applies the free-text search and the dropdown filters,
// returning profiles that match all of them.
func FilterProfiles(profiles []*MentorProfile, query string, filters Filters) []*MentorProfile {
	matched := make([]*MentorProfile, 0, len(profiles))
	for _, profile := range profiles {
		if query != "" && !profile.matchesSearch(query) {
			continue
		}
		if filters.Major != "" && profile.Major != filters.Major {
			continue
		}
		if filters.Semester != "" && !semesterInRange(profile.Semester, filters.Semester) {
			continue
		}
		if filters.Language != "" && !containsString(profile.Languages, filters.Language) {
			continue
		}
		matched = append(matched, profile)
	}
	return matched
}

// matchesSearch reports whether the query is a case-insensitive substring of
// the name, major, bio or any spoken language.
func (p *MentorProfile) matchesSearch(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Major), q) ||
		strings.Contains(strings.ToLower(p.Bio), q) {
		return true
	}
	for _, lang := range p.Languages {
		if strings.Contains(strings.ToLower(lang), q) {
			return true
		}
	}
	return false
}

func semesterInRange(semester int, label string) bool {
	switch label {
	case "3-4":
		return semester >= 3 && semester <= 4
	case "5-6":
		return semester >= 5 && semester <= 6
	case "7+":
		return semester >= 7
	default:
		return true
	}
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
