package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mkovalev/gain-planner/internal/domain"
	"github.com/mkovalev/gain-planner/internal/engine"
	apperrors "github.com/mkovalev/gain-planner/internal/errors"
	"github.com/mkovalev/gain-planner/internal/foodref"
	"github.com/mkovalev/gain-planner/internal/services"
)

/* profile and goal */

type profileRequest struct {
	Age             int      `json:"age"`
	BiologicalSex   string   `json:"biologicalSex"`
	HeightCm        float64  `json:"heightCm"`
	CurrentWeightKg float64  `json:"currentWeightKg"`
	ActivityLevel   string   `json:"activityLevel"`
	FitnessLevel    string   `json:"fitnessLevel"`
	DietaryTags     []string `json:"dietaryTags"`
	HealthFlags     []string `json:"healthFlags"`
}

func (s *Server) putProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.apiError(c, apperrors.NewValidationError("body", "invalid request body"))
		return
	}
	profile := &domain.BiometricProfile{
		UserID:          c.Param("id"),
		Age:             req.Age,
		Sex:             domain.BiologicalSex(req.BiologicalSex),
		HeightCm:        req.HeightCm,
		CurrentWeightKg: req.CurrentWeightKg,
		ActivityLevel:   domain.ActivityLevel(req.ActivityLevel),
		FitnessLevel:    domain.FitnessLevel(req.FitnessLevel),
		DietaryTags:     req.DietaryTags,
		HealthFlags:     req.HealthFlags,
	}
	if err := s.profiles.UpdateProfile(c.Request.Context(), profile); err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (s *Server) getProfile(c *gin.Context) {
	profile, err := s.profiles.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

type goalRequest struct {
	TargetWeightKg float64    `json:"targetWeightKg"`
	WeeklyGainKg   float64    `json:"weeklyGainKg"`
	GoalIntensity  string     `json:"goalIntensity"`
	TargetDate     *time.Time `json:"targetDate"`
}

func (s *Server) putGoal(c *gin.Context) {
	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.apiError(c, apperrors.NewValidationError("body", "invalid request body"))
		return
	}
	goal := &domain.Goal{
		UserID:         c.Param("id"),
		TargetWeightKg: req.TargetWeightKg,
		WeeklyGainKg:   req.WeeklyGainKg,
		Intensity:      domain.GoalIntensity(req.GoalIntensity),
		TargetDate:     req.TargetDate,
	}
	if err := s.profiles.SetGoal(c.Request.Context(), goal); err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (s *Server) getGoal(c *gin.Context) {
	goal, err := s.profiles.GetGoal(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

/* plan */

// getPlan is the read-through entry point: it returns the cached snapshot or
// recomputes it when stale.
func (s *Server) getPlan(c *gin.Context) {
	snapshot, err := s.plans.RefreshSnapshot(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

type previewRequest struct {
	Profile profileRequest `json:"profile"`
	Goal    goalRequest    `json:"goal"`
}

// previewPlan runs the pure pipeline without touching any store, for
// what-if exploration.
func (s *Server) previewPlan(c *gin.Context) {
	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.apiError(c, apperrors.NewValidationError("body", "invalid request body"))
		return
	}
	profile := &domain.BiometricProfile{
		Age:             req.Profile.Age,
		Sex:             domain.BiologicalSex(req.Profile.BiologicalSex),
		HeightCm:        req.Profile.HeightCm,
		CurrentWeightKg: req.Profile.CurrentWeightKg,
		ActivityLevel:   domain.ActivityLevel(req.Profile.ActivityLevel),
		FitnessLevel:    domain.FitnessLevel(req.Profile.FitnessLevel),
	}
	goal := &domain.Goal{
		TargetWeightKg: req.Goal.TargetWeightKg,
		WeeklyGainKg:   req.Goal.WeeklyGainKg,
		Intensity:      domain.GoalIntensity(req.Goal.GoalIntensity),
	}
	plan, macros, err := services.ComputeCaloriePlan(profile, goal)
	if err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan, "macros": macros})
}

type macrosRequest struct {
	TotalCalories     int     `json:"totalCalories"`
	BodyWeightKg      float64 `json:"bodyWeightKg"`
	ActivityLevel     string  `json:"activityLevel"`
	ProteinPreference string  `json:"proteinPreference"`
}

func (s *Server) allocateMacros(c *gin.Context) {
	var req macrosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.apiError(c, apperrors.NewValidationError("body", "invalid request body"))
		return
	}
	plan, err := engine.AllocateMacros(engine.MacroRequest{
		TotalCalories: req.TotalCalories,
		BodyWeightKg:  req.BodyWeightKg,
		ActivityLevel: domain.ActivityLevel(req.ActivityLevel),
		Preference:    domain.ProteinPreference(req.ProteinPreference),
	})
	if err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

/* foods and meals */

func (s *Server) listFoods(c *gin.Context) {
	c.JSON(http.StatusOK, s.foods.All())
}

func (s *Server) getFood(c *gin.Context) {
	food, err := s.foods.Lookup(c.Param("key"))
	if err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

type aggregateRequest struct {
	Items []foodref.Portion `json:"items"`
}

func (s *Server) aggregateMeal(c *gin.Context) {
	var req aggregateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.apiError(c, apperrors.NewValidationError("body", "invalid request body"))
		return
	}
	totals, err := s.foods.AggregateMeal(req.Items)
	if err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"totals": totals})
}

func (s *Server) buildMealPlan(c *gin.Context) {
	var req foodref.MealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.apiError(c, apperrors.NewValidationError("body", "invalid request body"))
		return
	}
	plan, err := s.foods.BuildMealPlan(req)
	if err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

/* time series */

type bodyStatsRequest struct {
	Date         *time.Time         `json:"date"`
	WeightKg     float64            `json:"weightKg"`
	BodyFatPct   *float64           `json:"bodyFatPct"`
	Measurements map[string]float64 `json:"measurements"`
}

func (s *Server) postBodyStats(c *gin.Context) {
	var req bodyStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.apiError(c, apperrors.NewValidationError("body", "invalid request body"))
		return
	}
	record := &domain.BodyStatsRecord{
		UserID:       c.Param("id"),
		WeightKg:     req.WeightKg,
		BodyFatPct:   req.BodyFatPct,
		Measurements: req.Measurements,
	}
	if req.Date != nil {
		record.Date = *req.Date
	}
	if err := s.logbook.AddBodyStats(c.Request.Context(), record); err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (s *Server) getBodyStats(c *gin.Context) {
	from, to, err := parseRange(c)
	if err != nil {
		s.apiError(c, err)
		return
	}
	records, err := s.logbook.BodyStats(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

type workoutRequest struct {
	Date        *time.Time             `json:"date"`
	DurationMin int                    `json:"durationMin"`
	Intensity   string                 `json:"intensity"`
	Exercises   []domain.ExerciseEntry `json:"exercises"`
}

func (s *Server) postWorkout(c *gin.Context) {
	var req workoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.apiError(c, apperrors.NewValidationError("body", "invalid request body"))
		return
	}
	record := &domain.WorkoutLogRecord{
		UserID:      c.Param("id"),
		DurationMin: req.DurationMin,
		Intensity:   domain.WorkoutIntensity(req.Intensity),
		Exercises:   req.Exercises,
	}
	if req.Date != nil {
		record.Date = *req.Date
	}
	if err := s.logbook.AddWorkout(c.Request.Context(), record); err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (s *Server) getWorkouts(c *gin.Context) {
	from, to, err := parseRange(c)
	if err != nil {
		s.apiError(c, err)
		return
	}
	records, err := s.logbook.Workouts(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// parseRange reads ?from=YYYY-MM-DD&to=YYYY-MM-DD, defaulting to the
// trailing 28 days.
func parseRange(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -28)
	to := now

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, apperrors.NewValidationError("from", "expected YYYY-MM-DD")
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, apperrors.NewValidationError("to", "expected YYYY-MM-DD")
		}
		// Include the whole end day.
		to = parsed.AddDate(0, 0, 1).Add(-time.Second)
	}
	return from, to, nil
}

/* adaptations */

func (s *Server) analyzeAndAdapt(c *gin.Context) {
	record, err := s.adaptations.AnalyzeAndAdapt(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (s *Server) listAdaptations(c *gin.Context) {
	records, err := s.adaptations.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (s *Server) applyAdaptation(c *gin.Context) {
	snapshot, err := s.adaptations.ApplyAdaptation(c.Request.Context(), c.Param("id"), c.Param("recordId"))
	if err != nil {
		s.apiError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
