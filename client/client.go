// Package client is a read-only HTTP client for the mentoring API. It covers
// the browsing flow: fetching reference data and mentors, flattening mentors
// into a display shape, local filtering, and building the contact email.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/derya/mentorlink/internal/app/models"
)

// Client talks to the mentoring API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the API at baseURL, e.g. "http://localhost:3001".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// envelope mirrors the API response wrapper. Data is kept raw so each call
// can decode it into its own type.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// APIError is returned when the server answers with an error payload.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	return nil
}

// ListMentors fetches all mentors.
func (c *Client) ListMentors(ctx context.Context) ([]*models.Mentor, error) {
	var mentors []*models.Mentor
	if err := c.get(ctx, "/mentors", &mentors); err != nil {
		return nil, err
	}
	return mentors, nil
}

// GetMentor fetches a single mentor by id.
func (c *Client) GetMentor(ctx context.Context, id int64) (*models.Mentor, error) {
	var mentor models.Mentor
	if err := c.get(ctx, fmt.Sprintf("/mentors/%d", id), &mentor); err != nil {
		return nil, err
	}
	return &mentor, nil
}

// GetUser fetches a single user by id.
func (c *Client) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, fmt.Sprintf("/users/%d", id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListLanguages fetches the active languages.
func (c *Client) ListLanguages(ctx context.Context) ([]*models.Language, error) {
	var languages []*models.Language
	if err := c.get(ctx, "/languages", &languages); err != nil {
		return nil, err
	}
	return languages, nil
}

// ListCountries fetches the active countries.
func (c *Client) ListCountries(ctx context.Context) ([]*models.Country, error) {
	var countries []*models.Country
	if err := c.get(ctx, "/countries", &countries); err != nil {
		return nil, err
	}
	return countries, nil
}

// ListMajors fetches the active majors.
func (c *Client) ListMajors(ctx context.Context) ([]*models.Major, error) {
	var majors []*models.Major
	if err := c.get(ctx, "/majors", &majors); err != nil {
		return nil, err
	}
	return majors, nil
}
