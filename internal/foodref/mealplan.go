package foodref

import (
	"math"

	"github.com/mkovalev/gain-planner/internal/domain"
	apperrors "github.com/mkovalev/gain-planner/internal/errors"
)

// Slot count bounds for a daily meal plan.
const (
	MinSlots     = 3
	MaxSlots     = 6
	defaultSlots = 4
)

// Per-slot portion bounds in grams, so no slot degenerates into a garnish or
// a bucket.
const (
	minPortionG = 40
	maxPortionG = 450
)

// MealPlanRequest asks for a day of food approximating a macro target.
type MealPlanRequest struct {
	TargetCalories int                 `json:"targetCalories"`
	Targets        domain.MacroTargets `json:"targets"`
	Slots          int                 `json:"slots"`
	DietaryTags    []string            `json:"dietaryTags"`
}

// PlannedPortion is one selected food with its scaled nutrients.
type PlannedPortion struct {
	Food      domain.FoodItem `json:"food"`
	QuantityG float64         `json:"quantityG"`
	Nutrients Nutrients       `json:"nutrients"`
}

// MealPlan is the assembled day. Totals aim within +-20% of TargetCalories;
// this is a greedy matcher, accuracy is the contract, not optimality.
type MealPlan struct {
	Slots          []PlannedPortion `json:"slots"`
	Totals         Nutrients        `json:"totals"`
	TargetCalories int              `json:"targetCalories"`
	CalorieAccPct  float64          `json:"calorieAccuracyPct"`
}

// BuildMealPlan greedily fills 3-6 slots with foods whose macro profile best
// matches what is still missing from the target, honoring dietary tags.
func (t *Table) BuildMealPlan(req MealPlanRequest) (*MealPlan, error) {
	if req.TargetCalories <= 0 {
		return nil, apperrors.NewValidationError("targetCalories", "must be positive")
	}
	slots := req.Slots
	if slots == 0 {
		slots = defaultSlots
	}
	if slots < MinSlots || slots > MaxSlots {
		return nil, apperrors.NewOutOfRangeError("slots", float64(slots), MinSlots, MaxSlots)
	}

	var pool []domain.FoodItem
	for _, f := range t.All() {
		if allowedByTags(f, req.DietaryTags) {
			pool = append(pool, f)
		}
	}
	if len(pool) == 0 {
		return nil, apperrors.NewValidationError("dietaryTags", "no foods satisfy the given dietary tags")
	}

	remaining := macroCalories(req.Targets)
	// When gram targets are absent, fall back to an even macro spread so the
	// matcher still has a direction.
	if remaining.total() <= 0 {
		remaining = calorieSplit{
			protein: 0.3 * float64(req.TargetCalories),
			carbs:   0.45 * float64(req.TargetCalories),
			fat:     0.25 * float64(req.TargetCalories),
		}
	}

	plan := &MealPlan{TargetCalories: req.TargetCalories}
	used := make(map[string]bool)
	caloriesLeft := float64(req.TargetCalories)

	for slot := 0; slot < slots; slot++ {
		slotBudget := caloriesLeft / float64(slots-slot)
		food, ok := pickFood(pool, used, remaining, slotBudget)
		if !ok {
			break
		}
		used[food.Key] = true

		quantity := slotBudget / food.CaloriesPer100g * 100
		quantity = math.Round(math.Min(math.Max(quantity, minPortionG), maxPortionG))

		scaled, err := t.Scale(food.Key, quantity)
		if err != nil {
			return nil, err
		}
		plan.Slots = append(plan.Slots, PlannedPortion{Food: food, QuantityG: quantity, Nutrients: scaled})
		plan.Totals = plan.Totals.add(scaled)

		caloriesLeft -= float64(scaled.Calories)
		remaining.protein = math.Max(remaining.protein-scaled.ProteinG*4, 0)
		remaining.carbs = math.Max(remaining.carbs-scaled.CarbsG*4, 0)
		remaining.fat = math.Max(remaining.fat-scaled.FatG*9, 0)
	}

	plan.CalorieAccPct = round1(float64(plan.Totals.Calories) / float64(req.TargetCalories) * 100)
	return plan, nil
}

type calorieSplit struct {
	protein, carbs, fat float64
}

func (c calorieSplit) total() float64 {
	return c.protein + c.carbs + c.fat
}

func macroCalories(t domain.MacroTargets) calorieSplit {
	return calorieSplit{protein: t.ProteinG * 4, carbs: t.CarbsG * 4, fat: t.FatG * 9}
}

// pickFood returns the unused food whose macro distribution is closest to
// the remaining target distribution, penalizing foods too light to fill the
// slot budget even at the maximum portion. Falls back to used foods when the
// pool is exhausted. Iteration order is the sorted pool, so ties are stable.
func pickFood(pool []domain.FoodItem, used map[string]bool, remaining calorieSplit, slotBudget float64) (domain.FoodItem, bool) {
	best, bestScore, found := domain.FoodItem{}, math.MaxFloat64, false
	for pass := 0; pass < 2 && !found; pass++ {
		for _, f := range pool {
			if pass == 0 && used[f.Key] {
				continue
			}
			score := macroDistance(f, remaining)
			if maxCal := f.CaloriesPer100g * maxPortionG / 100; maxCal < slotBudget && slotBudget > 0 {
				score += (slotBudget - maxCal) / slotBudget
			}
			if score < bestScore {
				best, bestScore, found = f, score, true
			}
		}
	}
	return best, found
}

// macroDistance measures how far a food's calorie distribution sits from the
// remaining target's distribution (sum of absolute share differences).
func macroDistance(f domain.FoodItem, remaining calorieSplit) float64 {
	foodTotal := f.ProteinPer100g*4 + f.CarbsPer100g*4 + f.FatPer100g*9
	remTotal := remaining.total()
	if foodTotal <= 0 || remTotal <= 0 {
		return math.MaxFloat64 / 2
	}
	return math.Abs(f.ProteinPer100g*4/foodTotal-remaining.protein/remTotal) +
		math.Abs(f.CarbsPer100g*4/foodTotal-remaining.carbs/remTotal) +
		math.Abs(f.FatPer100g*9/foodTotal-remaining.fat/remTotal)
}
