package engine

import (
	"math"
	"testing"
	"time"

	"github.com/mkovalev/gain-planner/internal/domain"
	apperrors "github.com/mkovalev/gain-planner/internal/errors"
)

func macroCalories(p *MacroPlan) float64 {
	return p.ProteinG*kcalPerGramProtein + p.CarbsG*kcalPerGramCarbs + p.FatG*kcalPerGramFat
}

func TestAllocateMacros_KnownSplit(t *testing.T) {
	// 2.0 g/kg * 70 kg * 4 = 560 kcal, below the 25% floor of 625, so
	// protein clamps up to exactly 25%
	plan, err := AllocateMacros(MacroRequest{
		TotalCalories: 2500,
		BodyWeightKg:  70,
		ActivityLevel: domain.ActivityModerate,
		Preference:    domain.ProteinModerate,
	})
	if err != nil {
		t.Fatalf("AllocateMacros() error = %v", err)
	}

	if plan.ProteinG != 156.3 {
		t.Errorf("ProteinG = %.1f, want 156.3", plan.ProteinG)
	}
	if plan.CarbsG != 312.5 {
		t.Errorf("CarbsG = %.1f, want 312.5", plan.CarbsG)
	}
	if plan.FatG != 69.4 {
		t.Errorf("FatG = %.1f, want 69.4", plan.FatG)
	}
	if plan.ProteinPct != 25 {
		t.Errorf("ProteinPct = %.1f, want 25", plan.ProteinPct)
	}
	if plan.CarbsPct != 50 {
		t.Errorf("CarbsPct = %.1f, want 50", plan.CarbsPct)
	}
	if plan.FatPct != 25 {
		t.Errorf("FatPct = %.1f, want 25", plan.FatPct)
	}
	if diff := math.Abs(macroCalories(plan) - 2500); diff > 5 {
		t.Errorf("macro calories off by %.1f kcal, want within 5", diff)
	}
}

func TestAllocateMacros_ShareWindows(t *testing.T) {
	totals := []int{1800, 2200, 2500, 3000, 3500, 4200}
	weights := []float64{55, 70, 85, 100}
	prefs := []domain.ProteinPreference{domain.ProteinMinimum, domain.ProteinModerate, domain.ProteinHigh}

	for _, total := range totals {
		for _, weight := range weights {
			for _, level := range domain.ActivityLevels {
				for _, pref := range prefs {
					plan, err := AllocateMacros(MacroRequest{
						TotalCalories: total,
						BodyWeightKg:  weight,
						ActivityLevel: level,
						Preference:    pref,
					})
					if err != nil {
						t.Fatalf("AllocateMacros(%d, %.0f, %s, %s): %v", total, weight, level, pref, err)
					}
					if plan.ProteinPct < 24.9 || plan.ProteinPct > 30.1 {
						t.Errorf("protein share %.1f%% outside [25, 30] for %d kcal / %.0f kg / %s", plan.ProteinPct, total, weight, level)
					}
					if plan.CarbsPct != 50 {
						t.Errorf("carb share %.1f%% drifted from 50%%", plan.CarbsPct)
					}
					if plan.FatPct < 19.9 || plan.FatPct > 25.1 {
						t.Errorf("fat share %.1f%% outside [20, 25]", plan.FatPct)
					}
					if diff := math.Abs(macroCalories(plan) - float64(total)); diff > 5 {
						t.Errorf("macro calories off by %.1f kcal at %d kcal / %.0f kg", diff, total, weight)
					}
				}
			}
		}
	}
}

func TestAllocateMacros_PreferenceOrdering(t *testing.T) {
	// 2000 kcal with 80 kg keeps the per-kg lookup between the clamps:
	// 512 / 576 / 640 kcal of protein against a [500, 600] window
	base := MacroRequest{TotalCalories: 2000, BodyWeightKg: 80, ActivityLevel: domain.ActivityLight}

	grams := map[domain.ProteinPreference]float64{}
	for _, pref := range []domain.ProteinPreference{domain.ProteinMinimum, domain.ProteinModerate, domain.ProteinHigh} {
		req := base
		req.Preference = pref
		plan, err := AllocateMacros(req)
		if err != nil {
			t.Fatalf("preference %s: %v", pref, err)
		}
		grams[pref] = plan.ProteinG
	}
	if !(grams[domain.ProteinMinimum] < grams[domain.ProteinModerate] &&
		grams[domain.ProteinModerate] < grams[domain.ProteinHigh]) {
		t.Errorf("protein grams not ordered by preference: %v", grams)
	}
}

func TestAllocateMacros_DefaultsPreference(t *testing.T) {
	plan, err := AllocateMacros(MacroRequest{TotalCalories: 2800, BodyWeightKg: 75, ActivityLevel: domain.ActivityModerate})
	if err != nil {
		t.Fatalf("AllocateMacros() error = %v", err)
	}
	if plan.Preference != domain.ProteinModerate {
		t.Errorf("defaulted preference = %s, want %s", plan.Preference, domain.ProteinModerate)
	}
}

func TestAllocateMacros_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  MacroRequest
	}{
		{"zero calories", MacroRequest{TotalCalories: 0, BodyWeightKg: 70, ActivityLevel: domain.ActivityModerate}},
		{"absurd calories", MacroRequest{TotalCalories: 20000, BodyWeightKg: 70, ActivityLevel: domain.ActivityModerate}},
		{"zero weight", MacroRequest{TotalCalories: 2500, BodyWeightKg: 0, ActivityLevel: domain.ActivityModerate}},
		{"bad activity", MacroRequest{TotalCalories: 2500, BodyWeightKg: 70, ActivityLevel: "couch"}},
		{"bad preference", MacroRequest{TotalCalories: 2500, BodyWeightKg: 70, ActivityLevel: domain.ActivityModerate, Preference: "carnivore"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := AllocateMacros(tt.req); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestAdjustMacrosForGoals(t *testing.T) {
	now := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	base := MacroRequest{TotalCalories: 3000, BodyWeightKg: 75, ActivityLevel: domain.ActivityModerate}

	tests := []struct {
		name      string
		trend     domain.TrendClass
		wantDelta int
	}{
		{"stagnant boosts", domain.TrendStagnant, 150},
		{"rapid gain cuts", domain.TrendRapidGain, -100},
		{"normal holds", domain.TrendNormal, 0},
		{"overtraining holds calories", domain.TrendOvertraining, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adj, err := AdjustMacrosForGoals(base, tt.trend, now)
			if err != nil {
				t.Fatalf("AdjustMacrosForGoals() error = %v", err)
			}
			if adj.Delta != tt.wantDelta {
				t.Errorf("Delta = %d, want %d", adj.Delta, tt.wantDelta)
			}
			if adj.OriginalCalories != 3000 {
				t.Errorf("OriginalCalories = %d, want 3000", adj.OriginalCalories)
			}
			if adj.AdjustedCalories != 3000+tt.wantDelta {
				t.Errorf("AdjustedCalories = %d, want %d", adj.AdjustedCalories, 3000+tt.wantDelta)
			}
			if adj.Macros == nil || adj.Macros.TotalCalories != adj.AdjustedCalories {
				t.Errorf("macro plan total = %v, want re-derived from %d", adj.Macros, adj.AdjustedCalories)
			}
			if !adj.Timestamp.Equal(now) {
				t.Errorf("Timestamp = %v, want %v", adj.Timestamp, now)
			}
			if adj.Reason == "" {
				t.Error("Reason is empty")
			}
		})
	}
}

func TestAdjustMacrosForGoals_UnknownTrend(t *testing.T) {
	base := MacroRequest{TotalCalories: 3000, BodyWeightKg: 75, ActivityLevel: domain.ActivityModerate}
	_, err := AdjustMacrosForGoals(base, "sideways", time.Now())
	if err == nil {
		t.Fatal("expected error for unknown trend, got nil")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Errorf("error type = %v, want validation", err)
	}
}
