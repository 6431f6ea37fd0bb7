package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derya/mentorlink/internal/app/models"
	"github.com/derya/mentorlink/internal/app/models/dto"
	"github.com/derya/mentorlink/internal/pkg/apperrors"
)

type fakeMentorService struct {
	createFn       func(ctx context.Context, req *dto.CreateMentorRequest) (*models.Mentor, error)
	getAllFn       func(ctx context.Context, filters models.MentorFilters) ([]*models.Mentor, error)
	getByIDFn      func(ctx context.Context, id int64) (*models.Mentor, error)
	getByUserIDFn  func(ctx context.Context, userID int64) (*models.Mentor, error)
	updateFn       func(ctx context.Context, id int64, req *dto.UpdateMentorRequest) (*models.Mentor, error)
	updateRatingFn func(ctx context.Context, id int64, rating float64) (*models.Mentor, error)
	deleteFn       func(ctx context.Context, id int64) error
	seedFn         func(ctx context.Context, adminPassword string) (*dto.SeedMentorsResult, error)
}

func (f *fakeMentorService) CreateMentor(ctx context.Context, req *dto.CreateMentorRequest) (*models.Mentor, error) {
	return f.createFn(ctx, req)
}

func (f *fakeMentorService) GetAllMentors(ctx context.Context, filters models.MentorFilters) ([]*models.Mentor, error) {
	return f.getAllFn(ctx, filters)
}

func (f *fakeMentorService) GetMentorByID(ctx context.Context, id int64) (*models.Mentor, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeMentorService) GetMentorByUserID(ctx context.Context, userID int64) (*models.Mentor, error) {
	return f.getByUserIDFn(ctx, userID)
}

func (f *fakeMentorService) UpdateMentor(ctx context.Context, id int64, req *dto.UpdateMentorRequest) (*models.Mentor, error) {
	return f.updateFn(ctx, id, req)
}

func (f *fakeMentorService) UpdateRating(ctx context.Context, id int64, rating float64) (*models.Mentor, error) {
	return f.updateRatingFn(ctx, id, rating)
}

func (f *fakeMentorService) DeleteMentor(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeMentorService) SeedMainMentors(ctx context.Context, adminPassword string) (*dto.SeedMentorsResult, error) {
	return f.seedFn(ctx, adminPassword)
}

func newMentorRouter(svc *fakeMentorService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewMentorController(svc)

	router := gin.New()
	mentors := router.Group("/mentors")
	{
		mentors.POST("", controller.CreateMentor)
		mentors.GET("", controller.GetAllMentors)
		mentors.POST("/seed", controller.SeedMainMentors)
		mentors.GET("/user/:userId", controller.GetMentorByUserID)
		mentors.GET("/:id", controller.GetMentorByID)
		mentors.PATCH("/:id", controller.UpdateMentor)
		mentors.PATCH("/:id/rating", controller.UpdateRating)
		mentors.DELETE("/:id", controller.DeleteMentor)
	}
	return router
}

func TestGetAllMentors_ParsesFilters(t *testing.T) {
	var got models.MentorFilters
	svc := &fakeMentorService{
		getAllFn: func(ctx context.Context, filters models.MentorFilters) ([]*models.Mentor, error) {
			got = filters
			return []*models.Mentor{}, nil
		},
	}
	router := newMentorRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/mentors?languages=German,%20English&country=Germany&majors=Software%20Engineering&isAvailable=true", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"German", "English"}, got.Languages)
	assert.Equal(t, "Germany", got.Country)
	assert.Equal(t, []string{"Software Engineering"}, got.Majors)
	require.NotNil(t, got.IsAvailable)
	assert.True(t, *got.IsAvailable)
}

func TestGetAllMentors_NonTrueAvailabilityIsFalse(t *testing.T) {
	var got models.MentorFilters
	svc := &fakeMentorService{
		getAllFn: func(ctx context.Context, filters models.MentorFilters) ([]*models.Mentor, error) {
			got = filters
			return nil, nil
		},
	}
	router := newMentorRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/mentors?isAvailable=yes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got.IsAvailable)
	assert.False(t, *got.IsAvailable)
}

func TestGetMentorByID_InvalidID(t *testing.T) {
	router := newMentorRouter(&fakeMentorService{})

	req := httptest.NewRequest(http.MethodGet, "/mentors/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMentorByID_NotFound(t *testing.T) {
	svc := &fakeMentorService{
		getByIDFn: func(ctx context.Context, id int64) (*models.Mentor, error) {
			return nil, apperrors.ErrMentorNotFound
		},
	}
	router := newMentorRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/mentors/42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response dto.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	require.NotNil(t, response.Error)
}

func TestCreateMentor_Created(t *testing.T) {
	svc := &fakeMentorService{
		createFn: func(ctx context.Context, req *dto.CreateMentorRequest) (*models.Mentor, error) {
			return &models.Mentor{ID: 1, UserID: req.UserID, Bio: req.Bio}, nil
		},
	}
	router := newMentorRouter(svc)

	body, _ := json.Marshal(map[string]interface{}{
		"userId": 7,
		"bio":    "Happy to help with exams and campus life",
	})
	req := httptest.NewRequest(http.MethodPost, "/mentors", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateMentor_DuplicateConflict(t *testing.T) {
	svc := &fakeMentorService{
		createFn: func(ctx context.Context, req *dto.CreateMentorRequest) (*models.Mentor, error) {
			return nil, apperrors.ErrMentorAlreadyExists
		},
	}
	router := newMentorRouter(svc)

	body, _ := json.Marshal(map[string]interface{}{"userId": 7, "bio": "bio"})
	req := httptest.NewRequest(http.MethodPost, "/mentors", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateRating_PassesValue(t *testing.T) {
	var gotRating float64
	svc := &fakeMentorService{
		updateRatingFn: func(ctx context.Context, id int64, rating float64) (*models.Mentor, error) {
			gotRating = rating
			return &models.Mentor{ID: id, Rating: rating, TotalRatings: 1}, nil
		},
	}
	router := newMentorRouter(svc)

	req := httptest.NewRequest(http.MethodPatch, "/mentors/1/rating", bytes.NewReader([]byte(`{"rating": 4.5}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4.5, gotRating)
}

func TestUpdateRating_RejectsOutOfRange(t *testing.T) {
	router := newMentorRouter(&fakeMentorService{})

	req := httptest.NewRequest(http.MethodPatch, "/mentors/1/rating", bytes.NewReader([]byte(`{"rating": 5.5}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateRating_MissingRating(t *testing.T) {
	router := newMentorRouter(&fakeMentorService{})

	req := httptest.NewRequest(http.MethodPatch, "/mentors/1/rating", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSeedMainMentors_UnauthorizedWhenDisabled(t *testing.T) {
	svc := &fakeMentorService{
		seedFn: func(ctx context.Context, adminPassword string) (*dto.SeedMentorsResult, error) {
			return nil, apperrors.NewUnauthorizedError("mentor seeding is disabled: no admin password configured")
		},
	}
	router := newMentorRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/mentors/seed", bytes.NewReader([]byte(`{"adminPassword": "anything"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
