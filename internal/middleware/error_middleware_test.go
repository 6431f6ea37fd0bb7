package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/derya/mentorlink/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound},
		{"mentor not found", apperrors.ErrMentorNotFound, http.StatusNotFound},
		{"request not found", apperrors.ErrMentorshipRequestNotFound, http.StatusNotFound},
		{"session not found", apperrors.ErrMentoringSessionNotFound, http.StatusNotFound},
		{"language not found", apperrors.ErrLanguageNotFound, http.StatusNotFound},
		{"wrapped not found", apperrors.NewResourceNotFoundError("major 7 not found"), http.StatusNotFound},
		{"email taken", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"mentor profile taken", apperrors.ErrMentorAlreadyExists, http.StatusConflict},
		{"language code taken", apperrors.ErrLanguageAlreadyExists, http.StatusConflict},
		{"rating conflict", apperrors.NewConflictError("rating update failed after concurrent modifications"), http.StatusConflict},
		{"unauthorized", apperrors.NewUnauthorizedError("invalid admin password"), http.StatusUnauthorized},
		{"invalid email", apperrors.ErrInvalidEmail, http.StatusBadRequest},
		{"bad request", apperrors.NewBadRequestError("bad payload"), http.StatusBadRequest},
		{"unknown error", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
