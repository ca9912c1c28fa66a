package services

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/mkovalev/gain-planner/internal/cache"
	"github.com/mkovalev/gain-planner/internal/domain"
	apperrors "github.com/mkovalev/gain-planner/internal/errors"
)

var planBase = time.Date(2026, 6, 1, 7, 0, 0, 0, time.UTC)

func testProfile(userID string) *domain.BiometricProfile {
	return &domain.BiometricProfile{
		UserID:          userID,
		Age:             30,
		Sex:             domain.SexMale,
		HeightCm:        180,
		CurrentWeightKg: 75,
		ActivityLevel:   domain.ActivityModerate,
	}
}

func testGoal(userID string) *domain.Goal {
	return &domain.Goal{UserID: userID, TargetWeightKg: 82, WeeklyGainKg: 0.5}
}

// newTestPlanService wires the orchestrator over fakes with a pinned clock.
func newTestPlanService(t *testing.T) (*PlanService, *fakeProfileStore, *fakeSnapshotStore) {
	t.Helper()
	profiles := newFakeProfileStore()
	snapshots := newFakeSnapshotStore()
	svc := NewPlanService(profiles, snapshots, cache.NewMemoryCache(), 24)
	svc.now = func() time.Time { return planBase }
	return svc, profiles, snapshots
}

func TestComputeCaloriePlan_Pipeline(t *testing.T) {
	plan, macros, err := ComputeCaloriePlan(testProfile("u1"), testGoal("u1"))
	if err != nil {
		t.Fatalf("ComputeCaloriePlan() error = %v", err)
	}
	if plan.BMR != 1730 {
		t.Errorf("BMR = %d, want 1730", plan.BMR)
	}
	if plan.TDEE != 2682 {
		t.Errorf("TDEE = %d, want 2682", plan.TDEE)
	}
	if plan.Surplus != 550 {
		t.Errorf("Surplus = %d, want 550", plan.Surplus)
	}
	if plan.TotalCalories != 3232 {
		t.Errorf("TotalCalories = %d, want 3232", plan.TotalCalories)
	}
	if macros.TotalCalories != plan.TotalCalories {
		t.Errorf("macro plan derived from %d, want %d", macros.TotalCalories, plan.TotalCalories)
	}
	want := domain.MacroTargets{ProteinG: 202, CarbsG: 404, FatG: 89.8}
	if got := macros.Targets(); got != want {
		t.Errorf("Targets() = %+v, want %+v", got, want)
	}
}

func TestComputeCaloriePlan_InvalidInputs(t *testing.T) {
	profile := testProfile("u1")
	goal := testGoal("u1")

	badProfile := *profile
	badProfile.Age = 5
	if _, _, err := ComputeCaloriePlan(&badProfile, goal); err == nil {
		t.Error("expected error for invalid profile, got nil")
	}

	badGoal := *goal
	badGoal.TargetWeightKg = 70 // below current weight
	if _, _, err := ComputeCaloriePlan(profile, &badGoal); err == nil {
		t.Error("expected error for invalid goal, got nil")
	}
}

func TestRefreshSnapshot_ComputesOnceWithinWindow(t *testing.T) {
	ctx := context.Background()
	svc, profiles, snapshots := newTestPlanService(t)
	profiles.SaveProfile(ctx, testProfile("u1"))
	profiles.SaveGoal(ctx, testGoal("u1"))

	first, err := svc.RefreshSnapshot(ctx, "u1")
	if err != nil {
		t.Fatalf("first refresh: %v", err)
	}
	if first.TargetCalories != 3232 {
		t.Errorf("TargetCalories = %d, want 3232", first.TargetCalories)
	}
	if first.Surplus() != 550 {
		t.Errorf("Surplus() = %d, want 550", first.Surplus())
	}
	if !first.LastCalculated.Equal(planBase) {
		t.Errorf("LastCalculated = %v, want %v", first.LastCalculated, planBase)
	}
	if snapshots.saves != 1 {
		t.Fatalf("saves after first refresh = %d, want 1", snapshots.saves)
	}

	second, err := svc.RefreshSnapshot(ctx, "u1")
	if err != nil {
		t.Fatalf("second refresh: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("second refresh differs: %+v vs %+v", first, second)
	}
	if snapshots.saves != 1 {
		t.Errorf("second refresh wrote to the store: saves = %d", snapshots.saves)
	}
}

func TestRefreshSnapshot_RecomputesWhenStale(t *testing.T) {
	ctx := context.Background()
	svc, profiles, snapshots := newTestPlanService(t)
	profiles.SaveProfile(ctx, testProfile("u1"))
	profiles.SaveGoal(ctx, testGoal("u1"))

	if _, err := svc.RefreshSnapshot(ctx, "u1"); err != nil {
		t.Fatalf("first refresh: %v", err)
	}

	later := planBase.Add(25 * time.Hour)
	svc.now = func() time.Time { return later }

	snapshot, err := svc.RefreshSnapshot(ctx, "u1")
	if err != nil {
		t.Fatalf("stale refresh: %v", err)
	}
	if snapshots.saves != 2 {
		t.Errorf("saves = %d, want 2 after staleness recompute", snapshots.saves)
	}
	if !snapshot.LastCalculated.Equal(later) {
		t.Errorf("LastCalculated = %v, want %v", snapshot.LastCalculated, later)
	}
}

func TestRefreshSnapshot_PrimesCacheFromStore(t *testing.T) {
	ctx := context.Background()
	svc, _, snapshots := newTestPlanService(t)

	// a fresh snapshot already in the store but not in the cache
	stored := &domain.CalculationSnapshot{
		UserID: "u1", BMR: 1730, TDEE: 2682, TargetCalories: 3232,
		Macros:         domain.MacroTargets{ProteinG: 202, CarbsG: 404, FatG: 89.8},
		LastCalculated: planBase.Add(-time.Hour),
	}
	snapshots.SaveSnapshot(ctx, stored)
	savesBefore := snapshots.saves

	snapshot, err := svc.RefreshSnapshot(ctx, "u1")
	if err != nil {
		t.Fatalf("RefreshSnapshot() error = %v", err)
	}
	if !reflect.DeepEqual(snapshot, stored) {
		t.Errorf("snapshot = %+v, want the stored one", snapshot)
	}
	if snapshots.saves != savesBefore {
		t.Errorf("refresh recomputed despite fresh store snapshot")
	}
	if cached, ok := svc.cache.Get(ctx, "u1"); !ok || cached.TargetCalories != 3232 {
		t.Error("cache was not primed from the store")
	}
}

func TestRefreshSnapshot_MissingProfile(t *testing.T) {
	svc, _, _ := newTestPlanService(t)
	_, err := svc.RefreshSnapshot(context.Background(), "ghost")
	if err == nil {
		t.Fatal("expected error for missing profile, got nil")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
		t.Errorf("error type = %v, want not_found", err)
	}
}

func TestInvalidate_ForcesRecompute(t *testing.T) {
	ctx := context.Background()
	svc, profiles, _ := newTestPlanService(t)
	profiles.SaveProfile(ctx, testProfile("u1"))
	profiles.SaveGoal(ctx, testGoal("u1"))

	if _, err := svc.RefreshSnapshot(ctx, "u1"); err != nil {
		t.Fatalf("first refresh: %v", err)
	}
	if err := svc.Invalidate(ctx, "u1"); err != nil {
		t.Fatalf("Invalidate() error = %v", err)
	}

	later := planBase.Add(time.Hour) // still well inside the staleness window
	svc.now = func() time.Time { return later }

	snapshot, err := svc.RefreshSnapshot(ctx, "u1")
	if err != nil {
		t.Fatalf("refresh after invalidate: %v", err)
	}
	if !snapshot.LastCalculated.Equal(later) {
		t.Errorf("LastCalculated = %v, want recompute at %v", snapshot.LastCalculated, later)
	}
}

func TestInvalidate_NoSnapshotIsANoop(t *testing.T) {
	svc, _, snapshots := newTestPlanService(t)
	if err := svc.Invalidate(context.Background(), "u1"); err != nil {
		t.Fatalf("Invalidate() error = %v", err)
	}
	if snapshots.saves != 0 {
		t.Errorf("saves = %d, want 0", snapshots.saves)
	}
}

func TestApplyDelta_FoldsAdjustment(t *testing.T) {
	ctx := context.Background()
	svc, profiles, _ := newTestPlanService(t)
	profiles.SaveProfile(ctx, testProfile("u1"))
	profiles.SaveGoal(ctx, testGoal("u1"))

	updated, err := svc.ApplyDelta(ctx, "u1", 125, domain.MacroAdjustments{CarbsG: 20})
	if err != nil {
		t.Fatalf("ApplyDelta() error = %v", err)
	}
	if updated.TargetCalories != 3357 {
		t.Errorf("TargetCalories = %d, want 3357", updated.TargetCalories)
	}
	if updated.Macros.CarbsG != 424 {
		t.Errorf("CarbsG = %.1f, want 424", updated.Macros.CarbsG)
	}
	if updated.Surplus() != 675 {
		t.Errorf("Surplus() = %d, want 675", updated.Surplus())
	}
	// the folded snapshot is what subsequent reads see
	again, err := svc.RefreshSnapshot(ctx, "u1")
	if err != nil {
		t.Fatalf("refresh after delta: %v", err)
	}
	if again.TargetCalories != 3357 {
		t.Errorf("refresh lost the delta: TargetCalories = %d", again.TargetCalories)
	}
}
