package main

import (
	"os"

	"github.com/derya/mentorlink/internal/pkg/logger"
	"github.com/derya/mentorlink/internal/server"
)

// @title MentorLink API
// @version 1.0
// @description API for the university peer mentoring platform
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email mentoring@university.edu

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3001
// @BasePath /
// @schemes http https

func main() {
	// NewServer orchestrates LoadConfigAndSetupLogger, SetupDatabase,
	// BuildDependencies and SetupRouter.
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal is received.
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
