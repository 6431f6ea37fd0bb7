package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/derya/mentorlink/internal/app/models"
	"github.com/derya/mentorlink/internal/app/models/dto"
	"github.com/derya/mentorlink/internal/app/services"
	"github.com/derya/mentorlink/internal/middleware"
)

// MentorController handles mentor profile operations
type MentorController struct {
	mentorService services.MentorService
}

// NewMentorController creates a new MentorController
func NewMentorController(mentorService services.MentorService) *MentorController {
	return &MentorController{
		mentorService: mentorService,
	}
}

// splitQueryList splits a comma-separated query value into trimmed parts
func splitQueryList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// CreateMentor creates a mentor profile
// @Summary Create a mentor profile
// @Description Creates a mentor profile for an existing user. One profile per user.
// @Tags mentors
// @Accept json
// @Produce json
// @Param request body dto.CreateMentorRequest true "Mentor profile information"
// @Success 201 {object} dto.APIResponse{data=models.Mentor} "Mentor created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Mentor profile already exists for this user"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentors [post]
func (c *MentorController) CreateMentor(ctx *gin.Context) {
	var req dto.CreateMentorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid mentor data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	mentor, err := c.mentorService.CreateMentor(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      mentor,
		Timestamp: time.Now(),
	})
}

// GetAllMentors retrieves mentor profiles with optional filters
// @Summary Get all mentors
// @Description Retrieves mentor profiles. Filters combine with AND; comma-separated multi-value filters match on any overlap.
// @Tags mentors
// @Produce json
// @Param languages query string false "Comma-separated language names"
// @Param country query string false "Country name (exact match)"
// @Param majors query string false "Comma-separated major names"
// @Param interests query string false "Comma-separated interest names"
// @Param isAvailable query bool false "Filter by availability"
// @Success 200 {object} dto.APIResponse{data=[]models.Mentor} "Mentors retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentors [get]
func (c *MentorController) GetAllMentors(ctx *gin.Context) {
	filters := models.MentorFilters{
		Languages: splitQueryList(ctx.Query("languages")),
		Country:   ctx.Query("country"),
		Majors:    splitQueryList(ctx.Query("majors")),
		Interests: splitQueryList(ctx.Query("interests")),
	}
	if raw, exists := ctx.GetQuery("isAvailable"); exists {
		isAvailable := raw == "true"
		filters.IsAvailable = &isAvailable
	}

	mentors, err := c.mentorService.GetAllMentors(ctx, filters)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      mentors,
		Timestamp: time.Now(),
	})
}

// GetMentorByID retrieves a mentor profile by ID
// @Summary Get mentor by ID
// @Description Retrieves a specific mentor profile with its owning user attached
// @Tags mentors
// @Produce json
// @Param id path int true "Mentor ID"
// @Success 200 {object} dto.APIResponse{data=models.Mentor} "Mentor retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid mentor ID"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentors/{id} [get]
func (c *MentorController) GetMentorByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	mentor, err := c.mentorService.GetMentorByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      mentor,
		Timestamp: time.Now(),
	})
}

// GetMentorByUserID retrieves the mentor profile owned by a user
// @Summary Get mentor by user ID
// @Description Retrieves the mentor profile belonging to the given user account
// @Tags mentors
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=models.Mentor} "Mentor retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentors/user/{userId} [get]
func (c *MentorController) GetMentorByUserID(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	mentor, err := c.mentorService.GetMentorByUserID(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      mentor,
		Timestamp: time.Now(),
	})
}

// UpdateMentor handles partial mentor profile updates
// @Summary Update a mentor profile
// @Description Merges the provided fields into the stored profile. Rating fields are not writable here.
// @Tags mentors
// @Accept json
// @Produce json
// @Param id path int true "Mentor ID"
// @Param request body dto.UpdateMentorRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Mentor} "Mentor updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentors/{id} [patch]
func (c *MentorController) UpdateMentor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateMentorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid mentor data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	mentor, err := c.mentorService.UpdateMentor(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      mentor,
		Timestamp: time.Now(),
	})
}

// UpdateRating folds a new rating into the mentor's running average
// @Summary Submit a mentor rating
// @Description Adds a rating between 0 and 5 to the mentor's running average, rounded to one decimal place
// @Tags mentors
// @Accept json
// @Produce json
// @Param id path int true "Mentor ID"
// @Param request body dto.UpdateRatingRequest true "Rating value"
// @Success 200 {object} dto.APIResponse{data=models.Mentor} "Rating updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid rating"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Failure 409 {object} dto.ErrorResponse "Concurrent rating updates"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentors/{id}/rating [patch]
func (c *MentorController) UpdateRating(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateRatingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid rating data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	mentor, err := c.mentorService.UpdateRating(ctx, id, *req.Rating)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      mentor,
		Timestamp: time.Now(),
	})
}

// DeleteMentor deletes a mentor profile
// @Summary Delete a mentor profile
// @Description Deletes a mentor profile. Requests and sessions referencing it are left in place.
// @Tags mentors
// @Produce json
// @Param id path int true "Mentor ID"
// @Success 204 "Mentor deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid mentor ID"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentors/{id} [delete]
func (c *MentorController) DeleteMentor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.mentorService.DeleteMentor(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SeedMainMentors creates the canonical mentor profiles
// @Summary Seed the main mentor profiles
// @Description Creates the canonical mentor profiles and their user accounts. Gated by the configured admin password.
// @Tags mentors
// @Accept json
// @Produce json
// @Param request body dto.SeedMentorsRequest true "Admin password"
// @Success 200 {object} dto.APIResponse{data=dto.SeedMentorsResult} "Seeding outcome per record"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid admin password or seeding disabled"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /mentors/seed [post]
func (c *MentorController) SeedMainMentors(ctx *gin.Context) {
	var req dto.SeedMentorsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid seed request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.mentorService.SeedMainMentors(ctx, req.AdminPassword)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}
