package foodref

import (
	"fmt"
	"math"

	apperrors "github.com/mkovalev/gain-planner/internal/errors"
)

// Portion is a food key with a quantity in grams.
type Portion struct {
	Food      string  `json:"food"`
	QuantityG float64 `json:"quantityG"`
}

// Nutrients is a scaled or aggregated nutrient total. Calories are whole
// kcal; macros carry one decimal.
type Nutrients struct {
	Calories int     `json:"calories"`
	ProteinG float64 `json:"proteinG"`
	CarbsG   float64 `json:"carbsG"`
	FatG     float64 `json:"fatG"`
}

func (n Nutrients) add(other Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories + other.Calories,
		ProteinG: round1(n.ProteinG + other.ProteinG),
		CarbsG:   round1(n.CarbsG + other.CarbsG),
		FatG:     round1(n.FatG + other.FatG),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Scale multiplies a food's per-100g profile by quantityG/100. Calories
// round to the nearest integer, macros to one decimal.
func (t *Table) Scale(key string, quantityG float64) (Nutrients, error) {
	if quantityG <= 0 {
		return Nutrients{}, apperrors.NewValidationError("quantityG",
			fmt.Sprintf("must be positive, got %v", quantityG))
	}
	food, err := t.Lookup(key)
	if err != nil {
		return Nutrients{}, err
	}
	factor := quantityG / 100
	return Nutrients{
		Calories: int(math.Round(food.CaloriesPer100g * factor)),
		ProteinG: round1(food.ProteinPer100g * factor),
		CarbsG:   round1(food.CarbsPer100g * factor),
		FatG:     round1(food.FatPer100g * factor),
	}, nil
}

// AggregateMeal sums the scaled nutrients of every portion. An empty list
// is a validation error; any unknown key or non-positive quantity fails the
// whole aggregation.
func (t *Table) AggregateMeal(items []Portion) (Nutrients, error) {
	if len(items) == 0 {
		return Nutrients{}, apperrors.NewValidationError("items", "meal must contain at least one food")
	}
	var total Nutrients
	for _, item := range items {
		scaled, err := t.Scale(item.Food, item.QuantityG)
		if err != nil {
			return Nutrients{}, err
		}
		total = total.add(scaled)
	}
	return total, nil
}
