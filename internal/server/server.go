// Package server is the thin JSON boundary over the engine. It binds
// requests, calls the services and serializes results; identity, sessions
// and rate limiting live elsewhere.
package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/mkovalev/gain-planner/internal/errors"
	"github.com/mkovalev/gain-planner/internal/foodref"
	"github.com/mkovalev/gain-planner/internal/services"
)

// Server holds the shared dependencies for all route handlers.
type Server struct {
	router      *gin.Engine
	profiles    *services.ProfileService
	plans       *services.PlanService
	logbook     *services.LogbookService
	adaptations *services.AdaptationService
	foods       *foodref.Table
	errs        *apperrors.Handler
}

func New(profiles *services.ProfileService, plans *services.PlanService,
	logbook *services.LogbookService, adaptations *services.AdaptationService,
	foods *foodref.Table, errs *apperrors.Handler) *Server {

	s := &Server{
		router:      gin.Default(),
		profiles:    profiles,
		plans:       plans,
		logbook:     logbook,
		adaptations: adaptations,
		foods:       foods,
		errs:        errs,
	}
	s.router.SetTrustedProxies(nil)
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.router.Group("/api")

	api.PUT("/users/:id/profile", s.putProfile)
	api.GET("/users/:id/profile", s.getProfile)
	api.PUT("/users/:id/goal", s.putGoal)
	api.GET("/users/:id/goal", s.getGoal)
	api.GET("/users/:id/plan", s.getPlan)

	api.POST("/plan/preview", s.previewPlan)
	api.POST("/macros", s.allocateMacros)

	api.GET("/foods", s.listFoods)
	api.GET("/foods/:key", s.getFood)
	api.POST("/meals/aggregate", s.aggregateMeal)
	api.POST("/meals/plan", s.buildMealPlan)

	api.POST("/users/:id/body-stats", s.postBodyStats)
	api.GET("/users/:id/body-stats", s.getBodyStats)
	api.POST("/users/:id/workouts", s.postWorkout)
	api.GET("/users/:id/workouts", s.getWorkouts)

	api.POST("/users/:id/adaptations", s.analyzeAndAdapt)
	api.GET("/users/:id/adaptations", s.listAdaptations)
	api.POST("/users/:id/adaptations/:recordId/apply", s.applyAdaptation)
}

// Run starts the HTTP listener.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// apiError maps the error taxonomy to HTTP statuses and returns a consistent
// {"error": message} body with the offending field when known.
func (s *Server) apiError(c *gin.Context, err error) {
	s.errs.Handle(c.Request.Context(), err)

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Type {
	case apperrors.ErrorTypeValidation, apperrors.ErrorTypeOutOfRange:
		status = http.StatusBadRequest
	case apperrors.ErrorTypeNotFound:
		status = http.StatusNotFound
	}

	body := gin.H{"error": appErr.Message}
	if appErr.Field != "" {
		body["field"] = appErr.Field
	}
	c.JSON(status, body)
}
