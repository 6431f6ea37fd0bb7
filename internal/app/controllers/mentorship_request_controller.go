package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/derya/mentorlink/internal/app/models/dto"
	"github.com/derya/mentorlink/internal/app/services"
	"github.com/derya/mentorlink/internal/middleware"
)

// MentorshipRequestController handles mentorship request operations
type MentorshipRequestController struct {
	requestService services.MentorshipRequestService
}

// NewMentorshipRequestController creates a new MentorshipRequestController
func NewMentorshipRequestController(requestService services.MentorshipRequestService) *MentorshipRequestController {
	return &MentorshipRequestController{
		requestService: requestService,
	}
}

// CreateRequest creates a mentorship request
// @Summary Create a mentorship request
// @Description Creates a request from a student to a mentor. Duplicates are allowed.
// @Tags mentorship-requests
// @Accept json
// @Produce json
// @Param request body dto.CreateMentorshipRequestRequest true "Request information"
// @Success 201 {object} dto.APIResponse{data=models.MentorshipRequest} "Request created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentorship-requests [post]
func (c *MentorshipRequestController) CreateRequest(ctx *gin.Context) {
	var req dto.CreateMentorshipRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid mentorship request data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	request, err := c.requestService.CreateRequest(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      request,
		Timestamp: time.Now(),
	})
}

// GetAllRequests retrieves all mentorship requests
// @Summary Get all mentorship requests
// @Description Retrieves all requests with their student and mentor attached, newest first
// @Tags mentorship-requests
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.MentorshipRequest} "Requests retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentorship-requests [get]
func (c *MentorshipRequestController) GetAllRequests(ctx *gin.Context) {
	requests, err := c.requestService.GetAllRequests(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      requests,
		Timestamp: time.Now(),
	})
}

// GetRequestsByStudent retrieves requests submitted by a student
// @Summary Get requests by student
// @Description Retrieves all requests submitted by the given student, newest first
// @Tags mentorship-requests
// @Produce json
// @Param studentId path int true "Student user ID"
// @Success 200 {object} dto.APIResponse{data=[]models.MentorshipRequest} "Requests retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentorship-requests/student/{studentId} [get]
func (c *MentorshipRequestController) GetRequestsByStudent(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	requests, err := c.requestService.GetRequestsByStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      requests,
		Timestamp: time.Now(),
	})
}

// GetRequestsByMentor retrieves requests addressed to a mentor
// @Summary Get requests by mentor
// @Description Retrieves all requests addressed to the given mentor, newest first
// @Tags mentorship-requests
// @Produce json
// @Param mentorId path int true "Mentor ID"
// @Success 200 {object} dto.APIResponse{data=[]models.MentorshipRequest} "Requests retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid mentor ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentorship-requests/mentor/{mentorId} [get]
func (c *MentorshipRequestController) GetRequestsByMentor(ctx *gin.Context) {
	mentorID, ok := parseIDParam(ctx, "mentorId")
	if !ok {
		return
	}

	requests, err := c.requestService.GetRequestsByMentor(ctx, mentorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      requests,
		Timestamp: time.Now(),
	})
}

// GetPendingRequestsByMentor retrieves pending requests addressed to a mentor
// @Summary Get pending requests by mentor
// @Description Retrieves requests addressed to the given mentor that are still pending
// @Tags mentorship-requests
// @Produce json
// @Param mentorId path int true "Mentor ID"
// @Success 200 {object} dto.APIResponse{data=[]models.MentorshipRequest} "Pending requests retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid mentor ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentorship-requests/mentor/{mentorId}/pending [get]
func (c *MentorshipRequestController) GetPendingRequestsByMentor(ctx *gin.Context) {
	mentorID, ok := parseIDParam(ctx, "mentorId")
	if !ok {
		return
	}

	requests, err := c.requestService.GetPendingRequestsByMentor(ctx, mentorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      requests,
		Timestamp: time.Now(),
	})
}

// GetRequestByID retrieves a mentorship request by ID
// @Summary Get mentorship request by ID
// @Description Retrieves a specific request with its student and mentor attached
// @Tags mentorship-requests
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} dto.APIResponse{data=models.MentorshipRequest} "Request retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request ID"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentorship-requests/{id} [get]
func (c *MentorshipRequestController) GetRequestByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	request, err := c.requestService.GetRequestByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      request,
		Timestamp: time.Now(),
	})
}

// UpdateRequest handles partial request updates
// @Summary Update a mentorship request
// @Description Merges the provided fields into the stored request. Any update carrying a status stamps respondedAt.
// @Tags mentorship-requests
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param request body dto.UpdateMentorshipRequestRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.MentorshipRequest} "Request updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentorship-requests/{id} [patch]
func (c *MentorshipRequestController) UpdateRequest(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateMentorshipRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid mentorship request data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	request, err := c.requestService.UpdateRequest(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      request,
		Timestamp: time.Now(),
	})
}

// DeleteRequest deletes a mentorship request
// @Summary Delete a mentorship request
// @Description Deletes a mentorship request permanently
// @Tags mentorship-requests
// @Produce json
// @Param id path int true "Request ID"
// @Success 204 "Request deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request ID"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentorship-requests/{id} [delete]
func (c *MentorshipRequestController) DeleteRequest(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.requestService.DeleteRequest(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
