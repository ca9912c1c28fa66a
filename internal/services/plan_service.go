package services

import (
	"context"
	"sync"
	"time"

	"github.com/mkovalev/gain-planner/internal/cache"
	"github.com/mkovalev/gain-planner/internal/domain"
	"github.com/mkovalev/gain-planner/internal/engine"
	"github.com/mkovalev/gain-planner/internal/logger"
	"github.com/mkovalev/gain-planner/internal/utils"
)

// PlanService is the recalculation orchestrator. It owns the read-through
// snapshot cache and the single staleness predicate; the calculation itself
// is the pure BMR -> surplus -> macro pipeline in the engine package.
type PlanService struct {
	profiles  domain.ProfileStore
	snapshots domain.SnapshotStore
	cache     cache.SnapshotCache
	ttlHours  int

	// now is injectable so staleness can be tested without sleeping.
	now func() time.Time

	locks sync.Map // userID -> *sync.Mutex
}

func NewPlanService(profiles domain.ProfileStore, snapshots domain.SnapshotStore,
	snapshotCache cache.SnapshotCache, ttlHours int) *PlanService {
	return &PlanService{
		profiles:  profiles,
		snapshots: snapshots,
		cache:     snapshotCache,
		ttlHours:  ttlHours,
		now:       time.Now,
	}
}

// userLock serializes recalculation per user so the check-then-act on the
// snapshot cannot race itself. The values are never incorrect without it
// (the pipeline is deterministic), only recomputed redundantly.
func (s *PlanService) userLock(userID string) *sync.Mutex {
	lock, _ := s.locks.LoadOrStore(userID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// RefreshSnapshot returns the user's snapshot, recomputing it only when
// stale. Two calls within the staleness window on unchanged inputs return
// identical output and the second never touches the store.
func (s *PlanService) RefreshSnapshot(ctx context.Context, userID string) (*domain.CalculationSnapshot, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	now := s.now()
	if snapshot, ok := s.cache.Get(ctx, userID); ok && !utils.IsStale(snapshot.LastCalculated, now, s.ttlHours) {
		return snapshot, nil
	}
	snapshot, err := s.snapshots.GetSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	if snapshot != nil && !utils.IsStale(snapshot.LastCalculated, now, s.ttlHours) {
		s.cache.Set(ctx, userID, snapshot)
		return snapshot, nil
	}
	return s.recompute(ctx, userID, now)
}

// recompute runs the full pipeline and overwrites the snapshot. Callers hold
// the user lock.
func (s *PlanService) recompute(ctx context.Context, userID string, now time.Time) (*domain.CalculationSnapshot, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	goal, err := s.profiles.GetGoal(ctx, userID)
	if err != nil {
		return nil, err
	}

	plan, macros, err := ComputeCaloriePlan(profile, goal)
	if err != nil {
		return nil, err
	}
	for _, warning := range plan.Warnings {
		logger.Warn("calorie plan safety warning", "user_id", userID, "warning", warning)
	}

	snapshot := &domain.CalculationSnapshot{
		UserID:         userID,
		BMR:            plan.BMR,
		TDEE:           plan.TDEE,
		TargetCalories: plan.TotalCalories,
		Macros:         macros.Targets(),
		LastCalculated: now,
	}
	if err := s.snapshots.SaveSnapshot(ctx, snapshot); err != nil {
		return nil, err
	}
	s.cache.Set(ctx, userID, snapshot)
	logger.Info("snapshot recalculated",
		"user_id", userID, "bmr", snapshot.BMR, "tdee", snapshot.TDEE,
		"target_calories", snapshot.TargetCalories)
	return snapshot, nil
}

// Invalidate marks the user's snapshot stale after an input mutation so the
// next refresh recomputes.
func (s *PlanService) Invalidate(ctx context.Context, userID string) error {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	s.cache.Invalidate(ctx, userID)
	snapshot, err := s.snapshots.GetSnapshot(ctx, userID)
	if err != nil || snapshot == nil {
		return err
	}
	snapshot.LastCalculated = time.Time{}
	return s.snapshots.SaveSnapshot(ctx, snapshot)
}

// ApplyDelta folds an accepted adaptation into a fresh snapshot. The result
// keeps targetCalories == tdee + surplus by construction: only the surplus
// moves.
func (s *PlanService) ApplyDelta(ctx context.Context, userID string, calorieDelta int,
	macroDelta domain.MacroAdjustments) (*domain.CalculationSnapshot, error) {

	snapshot, err := s.RefreshSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	updated := *snapshot
	updated.TargetCalories += calorieDelta
	updated.Macros.ProteinG += macroDelta.ProteinG
	updated.Macros.CarbsG += macroDelta.CarbsG
	updated.Macros.FatG += macroDelta.FatG
	updated.LastCalculated = s.now()

	if err := s.snapshots.SaveSnapshot(ctx, &updated); err != nil {
		return nil, err
	}
	s.cache.Set(ctx, userID, &updated)
	return &updated, nil
}

// ComputeCaloriePlan chains the pure pipeline for a profile and goal:
// BMR -> TDEE/surplus -> macro split. It touches no store.
func ComputeCaloriePlan(profile *domain.BiometricProfile, goal *domain.Goal) (*engine.CaloriePlan, *engine.MacroPlan, error) {
	if err := profile.Validate(); err != nil {
		return nil, nil, err
	}
	if err := goal.Validate(profile.CurrentWeightKg); err != nil {
		return nil, nil, err
	}

	bmr, err := engine.CalculateBMR(engine.BMRInput{
		Age:      profile.Age,
		Sex:      profile.Sex,
		HeightCm: profile.HeightCm,
		WeightKg: profile.CurrentWeightKg,
	})
	if err != nil {
		return nil, nil, err
	}
	plan, err := engine.BuildCaloriePlan(bmr, profile.ActivityLevel, *goal)
	if err != nil {
		return nil, nil, err
	}
	macros, err := engine.AllocateMacros(engine.MacroRequest{
		TotalCalories: plan.TotalCalories,
		BodyWeightKg:  profile.CurrentWeightKg,
		ActivityLevel: profile.ActivityLevel,
		Preference:    domain.ProteinModerate,
	})
	if err != nil {
		return nil, nil, err
	}
	return plan, macros, nil
}
