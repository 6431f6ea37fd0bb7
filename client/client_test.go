package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derya/mentorlink/internal/app/models"
)

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, data interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(map[string]interface{}{
		"data":      data,
		"timestamp": time.Now(),
	})
	require.NoError(t, err)
}

func newTestServer(t *testing.T, mentors []*models.Mentor, users map[int64]*models.User) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/mentors", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, mentors)
	})
	for id, user := range users {
		u := user
		mux.HandleFunc(fmt.Sprintf("/users/%d", id), func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(t, w, http.StatusOK, u)
		})
	}
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestFetchMentorProfiles(t *testing.T) {
	mentors := []*models.Mentor{
		{
			ID:     1,
			UserID: 7,
			User:   &models.User{ID: 7, FirstName: "Sarah", LastName: "Chen", Email: "sarah.chen@stu.uni-munich.de"},
			Bio:    "Happy to help with exams",
			Majors: []string{"Software Engineering", "Data Science And AI"},

			Semester:  5,
			Languages: []string{"English", "Mandarin"},
			Country:   "Germany",
			Flag:      "🇩🇪",
		},
		{
			ID:        2,
			UserID:    8,
			Bio:       "Cyber security enthusiast",
			Majors:    []string{"Cyber Security"},
			Languages: []string{"Turkish", "English"},
			Country:   "Turkey",
		},
	}
	users := map[int64]*models.User{
		8: {ID: 8, FirstName: "Mehmet", LastName: "Yılmaz", Email: "mehmet.yilmaz@stu.uni-munich.de"},
	}
	server := newTestServer(t, mentors, users)
	c := NewClient(server.URL)

	profiles, err := c.FetchMentorProfiles(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	// First mentor arrives with its user attached; no extra fetch needed.
	assert.Equal(t, "Sarah Chen", profiles[0].Name)
	assert.Equal(t, "Software Engineering", profiles[0].Major)
	assert.Equal(t, 5, profiles[0].Semester)
	assert.Equal(t, "sarah.chen@stu.uni-munich.de", profiles[0].Email)

	// Second mentor only carries the user id; the name is resolved by request.
	assert.Equal(t, "Mehmet Yılmaz", profiles[1].Name)
	assert.Equal(t, "Cyber Security", profiles[1].Major)
	// Missing semester falls back to 1.
	assert.Equal(t, 1, profiles[1].Semester)
}

func TestGetMentor_APIError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/mentors/42", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"code": "RES_001", "message": "Mentor not found"},
		})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	c := NewClient(server.URL)
	_, err := c.GetMentor(context.Background(), 42)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Mentor not found", apiErr.Message)
}

func sampleProfiles() []*MentorProfile {
	return []*MentorProfile{
		{ID: 1, Name: "Sarah Chen", Major: "Software Engineering", Semester: 5, Languages: []string{"English", "Mandarin"}, Bio: "Exchange life and exams"},
		{ID: 2, Name: "Mehmet Yılmaz", Major: "Cyber Security", Semester: 6, Languages: []string{"Turkish", "English"}, Bio: "CTF player"},
		{ID: 3, Name: "Amara Okafor", Major: "Data Science And AI", Semester: 4, Languages: []string{"English", "Swahili"}, Bio: "Loves statistics"},
		{ID: 4, Name: "Luca Rossi", Major: "Digital Industrial Engineering", Semester: 7, Languages: []string{"Italian", "English"}, Bio: "Industry internships"},
	}
}

func TestFilterProfiles_Search(t *testing.T) {
	profiles := sampleProfiles()

	tests := []struct {
		name    string
		query   string
		wantIDs []int64
	}{
		{"matches name", "sarah", []int64{1}},
		{"matches major", "cyber", []int64{2}},
		{"matches bio", "statistics", []int64{3}},
		{"matches language", "italian", []int64{4}},
		{"case insensitive", "ENGLISH", []int64{1, 2, 3, 4}},
		{"no match", "robotics", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterProfiles(profiles, tt.query, Filters{})
			ids := make([]int64, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			if tt.wantIDs == nil {
				assert.Empty(t, ids)
			} else {
				assert.Equal(t, tt.wantIDs, ids)
			}
		})
	}
}

func TestFilterProfiles_Dropdowns(t *testing.T) {
	profiles := sampleProfiles()

	got := FilterProfiles(profiles, "", Filters{Major: "Cyber Security"})
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)

	got = FilterProfiles(profiles, "", Filters{Semester: "3-4"})
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)

	got = FilterProfiles(profiles, "", Filters{Semester: "5-6"})
	assert.Len(t, got, 2)

	got = FilterProfiles(profiles, "", Filters{Semester: "7+"})
	require.Len(t, got, 1)
	assert.Equal(t, int64(4), got[0].ID)

	got = FilterProfiles(profiles, "", Filters{Language: "Turkish"})
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)

	// Language dropdown wants an exact entry, not a substring.
	got = FilterProfiles(profiles, "", Filters{Language: "Turk"})
	assert.Empty(t, got)

	// Filters combine with AND.
	got = FilterProfiles(profiles, "english", Filters{Semester: "5-6", Language: "English"})
	assert.Len(t, got, 2)
}

func TestBuildRequestEmail(t *testing.T) {
	profile := &MentorProfile{
		Name:  "Sarah Chen",
		Email: "sarah.chen@stu.uni-munich.de",
	}

	email := BuildRequestEmail(profile)

	assert.Equal(t, "mentoring@university.edu", email.To)
	assert.Equal(t, "sarah.chen@stu.uni-munich.de", email.CC)
	assert.Equal(t, "Mentoring Request - Sarah Chen", email.Subject)
	assert.Contains(t, email.Body, "I would like to request Sarah Chen as my mentor for this semester.")
	assert.Contains(t, email.Body, "interested in connecting with Sarah because")

	rendered := email.String()
	assert.Contains(t, rendered, "To: mentoring@university.edu")
	assert.Contains(t, rendered, "CC: sarah.chen@stu.uni-munich.de")
}

func TestRequestEmail_MailtoURL(t *testing.T) {
	email := RequestEmail{
		To:      RepresentativeEmail,
		CC:      "sarah.chen@stu.uni-munich.de",
		Subject: "Mentoring Request - Sarah Chen",
	}

	url := email.MailtoURL()

	assert.Contains(t, url, "mailto:mentoring@university.edu?")
	assert.Contains(t, url, "cc=sarah.chen%40stu.uni-munich.de")
	assert.Contains(t, url, "subject=Mentoring+Request+-+Sarah+Chen")
}
