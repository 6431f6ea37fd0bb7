package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/derya/mentorlink/internal/app/controllers"
)

// SetupRouter configures all application routes. Routes are mounted at the
// root, without a version prefix.
func SetupRouter(
	router *gin.Engine,
	userController *controllers.UserController,
	mentorController *controllers.MentorController,
	requestController *controllers.MentorshipRequestController,
	sessionController *controllers.MentoringSessionController,
	referenceController *controllers.ReferenceController,
) {
	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})

	// Reference data routes
	languages := router.Group("/languages")
	{
		languages.POST("", referenceController.CreateLanguage)
		languages.GET("", referenceController.GetAllLanguages)
		languages.POST("/seed", referenceController.SeedLanguages)
		languages.GET("/:id", referenceController.GetLanguageByID)
		languages.DELETE("/:id", referenceController.DeleteLanguage)
	}

	countries := router.Group("/countries")
	{
		countries.POST("", referenceController.CreateCountry)
		countries.GET("", referenceController.GetAllCountries)
		countries.POST("/seed", referenceController.SeedCountries)
		countries.GET("/:id", referenceController.GetCountryByID)
		countries.DELETE("/:id", referenceController.DeleteCountry)
	}

	majors := router.Group("/majors")
	{
		majors.POST("", referenceController.CreateMajor)
		majors.GET("", referenceController.GetAllMajors)
		majors.POST("/seed", referenceController.SeedMajors)
		majors.GET("/:id", referenceController.GetMajorByID)
		majors.DELETE("/:id", referenceController.DeleteMajor)
	}

	// User routes
	users := router.Group("/users")
	{
		users.POST("", userController.CreateUser)
		users.GET("", userController.GetAllUsers)
		users.GET("/mentors", userController.GetMentorUsers)
		users.GET("/:id", userController.GetUserByID)
		users.PATCH("/:id", userController.UpdateUser)
		users.DELETE("/:id", userController.DeleteUser)
	}

	// Mentor routes
	mentors := router.Group("/mentors")
	{
		mentors.POST("", mentorController.CreateMentor)
		mentors.GET("", mentorController.GetAllMentors)
		mentors.POST("/seed", mentorController.SeedMainMentors)
		mentors.GET("/user/:userId", mentorController.GetMentorByUserID)
		mentors.GET("/:id", mentorController.GetMentorByID)
		mentors.PATCH("/:id", mentorController.UpdateMentor)
		mentors.PATCH("/:id/rating", mentorController.UpdateRating)
		mentors.DELETE("/:id", mentorController.DeleteMentor)
	}

	// Mentorship request routes
	requests := router.Group("/mentorship-requests")
	{
		requests.POST("", requestController.CreateRequest)
		requests.GET("", requestController.GetAllRequests)
		requests.GET("/student/:studentId", requestController.GetRequestsByStudent)
		requests.GET("/mentor/:mentorId", requestController.GetRequestsByMentor)
		requests.GET("/mentor/:mentorId/pending", requestController.GetPendingRequestsByMentor)
		requests.GET("/:id", requestController.GetRequestByID)
		requests.PATCH("/:id", requestController.UpdateRequest)
		requests.DELETE("/:id", requestController.DeleteRequest)
	}

	// Mentoring session routes
	sessions := router.Group("/mentoring-sessions")
	{
		sessions.POST("", sessionController.CreateSession)
		sessions.GET("", sessionController.GetAllSessions)
		sessions.GET("/upcoming", sessionController.GetUpcomingSessions)
		sessions.GET("/student/:studentId", sessionController.GetSessionsByStudent)
		sessions.GET("/mentor/:mentorId", sessionController.GetSessionsByMentor)
		sessions.GET("/:id", sessionController.GetSessionByID)
		sessions.PATCH("/:id", sessionController.UpdateSession)
		sessions.DELETE("/:id", sessionController.DeleteSession)
	}
}
