package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/derya/mentorlink/internal/app/models/dto"
	"github.com/derya/mentorlink/internal/app/services"
	"github.com/derya/mentorlink/internal/middleware"
)

// ReferenceController handles the language, country and major lookup tables
type ReferenceController struct {
	languageService services.LanguageService
	countryService  services.CountryService
	majorService    services.MajorService
}

// NewReferenceController creates a new ReferenceController
func NewReferenceController(
	languageService services.LanguageService,
	countryService services.CountryService,
	majorService services.MajorService,
) *ReferenceController {
	return &ReferenceController{
		languageService: languageService,
		countryService:  countryService,
		majorService:    majorService,
	}
}

// CreateLanguage creates a language entry
// @Summary Create a language
// @Description Creates a language entry with a unique code
// @Tags languages
// @Accept json
// @Produce json
// @Param request body dto.CreateLanguageRequest true "Language information"
// @Success 201 {object} dto.APIResponse{data=models.Language} "Language created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Language code already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /languages [post]
func (c *ReferenceController) CreateLanguage(ctx *gin.Context) {
	var req dto.CreateLanguageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid language data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	language, err := c.languageService.CreateLanguage(ctx, req.Code, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      language,
		Timestamp: time.Now(),
	})
}

// GetAllLanguages retrieves all active languages
// @Summary Get all languages
// @Description Retrieves all active languages ordered by name
// @Tags languages
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Language} "Languages retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /languages [get]
func (c *ReferenceController) GetAllLanguages(ctx *gin.Context) {
	languages, err := c.languageService.GetAllLanguages(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      languages,
		Timestamp: time.Now(),
	})
}

// GetLanguageByID retrieves a language by ID
// @Summary Get language by ID
// @Description Retrieves a specific language entry
// @Tags languages
// @Produce json
// @Param id path int true "Language ID"
// @Success 200 {object} dto.APIResponse{data=models.Language} "Language retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid language ID"
// @Failure 404 {object} dto.ErrorResponse "Language not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /languages/{id} [get]
func (c *ReferenceController) GetLanguageByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	language, err := c.languageService.GetLanguageByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      language,
		Timestamp: time.Now(),
	})
}

// DeleteLanguage deletes a language entry
// @Summary Delete a language
// @Description Deletes a language entry. Mentor profiles referencing it are not checked.
// @Tags languages
// @Produce json
// @Param id path int true "Language ID"
// @Success 204 "Language deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid language ID"
// @Failure 404 {object} dto.ErrorResponse "Language not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /languages/{id} [delete]
func (c *ReferenceController) DeleteLanguage(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.languageService.DeleteLanguage(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SeedLanguages inserts the canonical language list
// @Summary Seed languages
// @Description Inserts the canonical language list. A no-op when the table already has rows.
// @Tags languages
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SeedReferenceResult} "Seeding outcome"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /languages/seed [post]
func (c *ReferenceController) SeedLanguages(ctx *gin.Context) {
	result, err := c.languageService.SeedLanguages(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// CreateCountry creates a country entry
// @Summary Create a country
// @Description Creates a country entry with a unique code
// @Tags countries
// @Accept json
// @Produce json
// @Param request body dto.CreateCountryRequest true "Country information"
// @Success 201 {object} dto.APIResponse{data=models.Country} "Country created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Country code already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /countries [post]
func (c *ReferenceController) CreateCountry(ctx *gin.Context) {
	var req dto.CreateCountryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid country data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	country, err := c.countryService.CreateCountry(ctx, req.Code, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      country,
		Timestamp: time.Now(),
	})
}

// GetAllCountries retrieves all active countries
// @Summary Get all countries
// @Description Retrieves all active countries ordered by name
// @Tags countries
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Country} "Countries retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /countries [get]
func (c *ReferenceController) GetAllCountries(ctx *gin.Context) {
	countries, err := c.countryService.GetAllCountries(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      countries,
		Timestamp: time.Now(),
	})
}

// GetCountryByID retrieves a country by ID
// @Summary Get country by ID
// @Description Retrieves a specific country entry
// @Tags countries
// @Produce json
// @Param id path int true "Country ID"
// @Success 200 {object} dto.APIResponse{data=models.Country} "Country retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid country ID"
// @Failure 404 {object} dto.ErrorResponse "Country not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /countries/{id} [get]
func (c *ReferenceController) GetCountryByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	country, err := c.countryService.GetCountryByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      country,
		Timestamp: time.Now(),
	})
}

// DeleteCountry deletes a country entry
// @Summary Delete a country
// @Description Deletes a country entry. Mentor profiles referencing it are not checked.
// @Tags countries
// @Produce json
// @Param id path int true "Country ID"
// @Success 204 "Country deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid country ID"
// @Failure 404 {object} dto.ErrorResponse "Country not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /countries/{id} [delete]
func (c *ReferenceController) DeleteCountry(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.countryService.DeleteCountry(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SeedCountries inserts the canonical country list
// @Summary Seed countries
// @Description Inserts the canonical country list. A no-op when the table already has rows.
// @Tags countries
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SeedReferenceResult} "Seeding outcome"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /countries/seed [post]
func (c *ReferenceController) SeedCountries(ctx *gin.Context) {
	result, err := c.countryService.SeedCountries(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// CreateMajor creates a major entry
// @Summary Create a major
// @Description Creates a major entry with a unique name
// @Tags majors
// @Accept json
// @Produce json
// @Param request body dto.CreateMajorRequest true "Major information"
// @Success 201 {object} dto.APIResponse{data=models.Major} "Major created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Major name already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /majors [post]
func (c *ReferenceController) CreateMajor(ctx *gin.Context) {
	var req dto.CreateMajorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid major data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	major, err := c.majorService.CreateMajor(ctx, req.Name, req.Department)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      major,
		Timestamp: time.Now(),
	})
}

// GetAllMajors retrieves all active majors
// @Summary Get all majors
// @Description Retrieves all active majors ordered by name
// @Tags majors
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Major} "Majors retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /majors [get]
func (c *ReferenceController) GetAllMajors(ctx *gin.Context) {
	majors, err := c.majorService.GetAllMajors(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      majors,
		Timestamp: time.Now(),
	})
}

// GetMajorByID retrieves a major by ID
// @Summary Get major by ID
// @Description Retrieves a specific major entry
// @Tags majors
// @Produce json
// @Param id path int true "Major ID"
// @Success 200 {object} dto.APIResponse{data=models.Major} "Major retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid major ID"
// @Failure 404 {object} dto.ErrorResponse "Major not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /majors/{id} [get]
func (c *ReferenceController) GetMajorByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	major, err := c.majorService.GetMajorByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      major,
		Timestamp: time.Now(),
	})
}

// DeleteMajor deletes a major entry
// @Summary Delete a major
// @Description Deletes a major entry. Mentor profiles referencing it are not checked.
// @Tags majors
// @Produce json
// @Param id path int true "Major ID"
// @Success 204 "Major deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid major ID"
// @Failure 404 {object} dto.ErrorResponse "Major not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /majors/{id} [delete]
func (c *ReferenceController) DeleteMajor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.majorService.DeleteMajor(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SeedMajors inserts the canonical major list
// @Summary Seed majors
// @Description Inserts the canonical major list. A no-op when the table already has rows.
// @Tags majors
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SeedReferenceResult} "Seeding outcome"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /majors/seed [post]
func (c *ReferenceController) SeedMajors(ctx *gin.Context) {
	result, err := c.majorService.SeedMajors(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}
