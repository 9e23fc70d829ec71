package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/openballot/election-api/internal/api/handler"
	"github.com/openballot/election-api/internal/api/middleware"
	"github.com/openballot/election-api/internal/core/domain"
	"github.com/openballot/election-api/internal/core/service"
	"github.com/openballot/election-api/internal/infrastructure/db/postgres"
	healthhandlers "github.com/openballot/election-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, jwtSecret string, corsOrigins []string, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     corsOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("election"))

	// --- Dependencies ---
	voterRepo := postgres.NewVoterRepository(db)
	electionRepo := postgres.NewElectionRepository(db)

	tokenService := service.NewTokenService(jwtSecret)
	authService := service.NewAuthService(voterRepo, tokenService)
	electionService := service.NewElectionService(electionRepo, logger)

	authHandler := handler.NewAuthHandler(authService)
	candidateHandler := handler.NewCandidateHandler(electionService)
	electionHandler := handler.NewElectionHandler(electionService)
	voteHandler := handler.NewVoteHandler(electionService)

	auth := middleware.Auth(tokenService)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	votersOnly := middleware.Voters()

	// --- Public routes ---
	e.POST("/login", authHandler.Login)

	// --- Protected routes (any authenticated role) ---
	e.GET("/profile", authHandler.Profile, auth)
	e.GET("/candidates", candidateHandler.List, auth)
	e.GET("/dates", electionHandler.GetDates, auth)
	e.GET("/has-voted", electionHandler.HasVoted, auth)

	// --- Admin routes ---
	e.POST("/add-candidate", candidateHandler.Add, auth, adminOnly)
	e.POST("/set-dates", electionHandler.SetDates, auth, adminOnly)

	// --- Voter routes ---
	e.POST("/vote", voteHandler.Cast, auth, votersOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db)

	e.GET("/health", healthHandler.Liveness)            // liveness: is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness: are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
