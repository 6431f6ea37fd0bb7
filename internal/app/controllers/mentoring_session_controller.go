package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/derya/mentorlink/internal/app/models/dto"
	"github.com/derya/mentorlink/internal/app/services"
	"github.com/derya/mentorlink/internal/middleware"
)

// MentoringSessionController handles mentoring session operations
type MentoringSessionController struct {
	sessionService services.MentoringSessionService
}

// NewMentoringSessionController creates a new MentoringSessionController
func NewMentoringSessionController(sessionService services.MentoringSessionService) *MentoringSessionController {
	return &MentoringSessionController{
		sessionService: sessionService,
	}
}

// CreateSession schedules a mentoring session
// @Summary Create a mentoring session
// @Description Schedules a session between a student and a mentor. Duration defaults to 30 minutes.
// @Tags mentoring-sessions
// @Accept json
// @Produce json
// @Param request body dto.CreateMentoringSessionRequest true "Session information"
// @Success 201 {object} dto.APIResponse{data=models.MentoringSession} "Session created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentoring-sessions [post]
func (c *MentoringSessionController) CreateSession(ctx *gin.Context) {
	var req dto.CreateMentoringSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid session data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	session, err := c.sessionService.CreateSession(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      session,
		Timestamp: time.Now(),
	})
}

// GetAllSessions retrieves all mentoring sessions
// @Summary Get all mentoring sessions
// @Description Retrieves all sessions with their student and mentor attached, most recently scheduled first
// @Tags mentoring-sessions
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.MentoringSession} "Sessions retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentoring-sessions [get]
func (c *MentoringSessionController) GetAllSessions(ctx *gin.Context) {
	sessions, err := c.sessionService.GetAllSessions(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      sessions,
		Timestamp: time.Now(),
	})
}

// GetUpcomingSessions retrieves future scheduled sessions for a participant
// @Summary Get upcoming sessions
// @Description Retrieves future sessions still in scheduled state for a participant, as student or as mentor
// @Tags mentoring-sessions
// @Produce json
// @Param userId query int true "Participant ID (user ID as student, mentor ID as mentor)"
// @Param isMentor query bool false "Interpret the participant as a mentor"
// @Success 200 {object} dto.APIResponse{data=[]models.MentoringSession} "Upcoming sessions retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid participant ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentoring-sessions/upcoming [get]
func (c *MentoringSessionController) GetUpcomingSessions(ctx *gin.Context) {
	participantID, err := strconv.ParseInt(ctx.Query("userId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid userId parameter")
		errorDetail = errorDetail.WithDetails("userId must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	asMentor := ctx.Query("isMentor") == "true"

	sessions, err := c.sessionService.GetUpcomingSessions(ctx, participantID, asMentor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      sessions,
		Timestamp: time.Now(),
	})
}

// GetSessionsByStudent retrieves sessions for a student
// @Summary Get sessions by student
// @Description Retrieves all sessions for the given student, most recently scheduled first
// @Tags mentoring-sessions
// @Produce json
// @Param studentId path int true "Student user ID"
// @Success 200 {object} dto.APIResponse{data=[]models.MentoringSession} "Sessions retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentoring-sessions/student/{studentId} [get]
func (c *MentoringSessionController) GetSessionsByStudent(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	sessions, err := c.sessionService.GetSessionsByStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      sessions,
		Timestamp: time.Now(),
	})
}

// GetSessionsByMentor retrieves sessions for a mentor
// @Summary Get sessions by mentor
// @Description Retrieves all sessions for the given mentor, most recently scheduled first
// @Tags mentoring-sessions
// @Produce json
// @Param mentorId path int true "Mentor ID"
// @Success 200 {object} dto.APIResponse{data=[]models.MentoringSession} "Sessions retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid mentor ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentoring-sessions/mentor/{mentorId} [get]
func (c *MentoringSessionController) GetSessionsByMentor(ctx *gin.Context) {
	mentorID, ok := parseIDParam(ctx, "mentorId")
	if !ok {
		return
	}

	sessions, err := c.sessionService.GetSessionsByMentor(ctx, mentorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      sessions,
		Timestamp: time.Now(),
	})
}

// GetSessionByID retrieves a mentoring session by ID
// @Summary Get mentoring session by ID
// @Description Retrieves a specific session with its student and mentor attached
// @Tags mentoring-sessions
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} dto.APIResponse{data=models.MentoringSession} "Session retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid session ID"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentoring-sessions/{id} [get]
func (c *MentoringSessionController) GetSessionByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	session, err := c.sessionService.GetSessionByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      session,
		Timestamp: time.Now(),
	})
}

// UpdateSession handles partial session updates
// @Summary Update a mentoring session
// @Description Merges the provided fields into the stored session. Setting status to completed stamps completedAt.
// @Tags mentoring-sessions
// @Accept json
// @Produce json
// @Param id path int true "Session ID"
// @Param request body dto.UpdateMentoringSessionRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.MentoringSession} "Session updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentoring-sessions/{id} [patch]
func (c *MentoringSessionController) UpdateSession(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateMentoringSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid session data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	session, err := c.sessionService.UpdateSession(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      session,
		Timestamp: time.Now(),
	})
}

// DeleteSession deletes a mentoring session
// @Summary Delete a mentoring session
// @Description Deletes a mentoring session permanently
// @Tags mentoring-sessions
// @Produce json
// @Param id path int true "Session ID"
// @Success 204 "Session deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid session ID"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentoring-sessions/{id} [delete]
func (c *MentoringSessionController) DeleteSession(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.sessionService.DeleteSession(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
