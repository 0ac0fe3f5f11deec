package main

import (
	"os"

	"github.com/upgoma/upg-portal/internal/pkg/logger"
	"github.com/upgoma/upg-portal/internal/server"
)

// @title UPG Portal API
// @version 1.0
// @description API for the Université Polytechnique de Goma public portal and admissions

// @contact.name UPG IT
// @contact.email info@upgoma.org

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
