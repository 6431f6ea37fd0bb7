package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derya/mentorlink/internal/app/models"
	"github.com/derya/mentorlink/internal/app/models/dto"
)

type fakeSessionService struct {
	createFn         func(ctx context.Context, req *dto.CreateMentoringSessionRequest) (*models.MentoringSession, error)
	getAllFn         func(ctx context.Context) ([]*models.MentoringSession, error)
	getByStudentFn   func(ctx context.Context, studentID int64) ([]*models.MentoringSession, error)
	getByMentorFn    func(ctx context.Context, mentorID int64) ([]*models.MentoringSession, error)
	getUpcomingFn    func(ctx context.Context, participantID int64, asMentor bool) ([]*models.MentoringSession, error)
	getByIDFn        func(ctx context.Context, id int64) (*models.MentoringSession, error)
	updateFn         func(ctx context.Context, id int64, req *dto.UpdateMentoringSessionRequest) (*models.MentoringSession, error)
	deleteFn         func(ctx context.Context, id int64) error
}

func (f *fakeSessionService) CreateSession(ctx context.Context, req *dto.CreateMentoringSessionRequest) (*models.MentoringSession, error) {
	return f.createFn(ctx, req)
}

func (f *fakeSessionService) GetAllSessions(ctx context.Context) ([]*models.MentoringSession, error) {
	return f.getAllFn(ctx)
}

func (f *fakeSessionService) GetSessionsByStudent(ctx context.Context, studentID int64) ([]*models.MentoringSession, error) {
	return f.getByStudentFn(ctx, studentID)
}

func (f *fakeSessionService) GetSessionsByMentor(ctx context.Context, mentorID int64) ([]*models.MentoringSession, error) {
	return f.getByMentorFn(ctx, mentorID)
}

func (f *fakeSessionService) GetUpcomingSessions(ctx context.Context, participantID int64, asMentor bool) ([]*models.MentoringSession, error) {
	return f.getUpcomingFn(ctx, participantID, asMentor)
}

func (f *fakeSessionService) GetSessionByID(ctx context.Context, id int64) (*models.MentoringSession, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeSessionService) UpdateSession(ctx context.Context, id int64, req *dto.UpdateMentoringSessionRequest) (*models.MentoringSession, error) {
	return f.updateFn(ctx, id, req)
}

func (f *fakeSessionService) DeleteSession(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

func newSessionRouter(svc *fakeSessionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewMentoringSessionController(svc)

	router := gin.New()
	sessions := router.Group("/mentoring-sessions")
	{
		sessions.GET("/upcoming", controller.GetUpcomingSessions)
		sessions.GET("/:id", controller.GetSessionByID)
	}
	return router
}

func TestGetUpcomingSessions_ParsesQuery(t *testing.T) {
	var gotID int64
	var gotAsMentor bool
	svc := &fakeSessionService{
		getUpcomingFn: func(ctx context.Context, participantID int64, asMentor bool) ([]*models.MentoringSession, error) {
			gotID = participantID
			gotAsMentor = asMentor
			return []*models.MentoringSession{}, nil
		},
	}
	router := newSessionRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/mentoring-sessions/upcoming?userId=5&isMentor=true", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(5), gotID)
	assert.True(t, gotAsMentor)
}

func TestGetUpcomingSessions_DefaultsToStudentRole(t *testing.T) {
	var gotAsMentor bool
	svc := &fakeSessionService{
		getUpcomingFn: func(ctx context.Context, participantID int64, asMentor bool) ([]*models.MentoringSession, error) {
			gotAsMentor = asMentor
			return nil, nil
		},
	}
	router := newSessionRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/mentoring-sessions/upcoming?userId=5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, gotAsMentor)
}

func TestGetUpcomingSessions_InvalidUserID(t *testing.T) {
	router := newSessionRouter(&fakeSessionService{})

	req := httptest.NewRequest(http.MethodGet, "/mentoring-sessions/upcoming?userId=abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
