package foodref

import (
	"testing"

	apperrors "github.com/mkovalev/gain-planner/internal/errors"
)

func TestScale(t *testing.T) {
	table := Default()

	tests := []struct {
		name     string
		key      string
		quantity float64
		want     Nutrients
	}{
		// 165 kcal / 31 p / 0 c / 3.6 f per 100g
		{"double portion", "chicken_breast", 200, Nutrients{Calories: 330, ProteinG: 62, CarbsG: 0, FatG: 7.2}},
		{"exact reference portion", "chicken_breast", 100, Nutrients{Calories: 165, ProteinG: 31, CarbsG: 0, FatG: 3.6}},
		// 389 * 0.45 = 175.05 -> 175; 16.9 * 0.45 = 7.605 -> 7.6
		{"fractional portion rounds", "oats", 45, Nutrients{Calories: 175, ProteinG: 7.6, CarbsG: 29.7, FatG: 3.1}},
		// 884 * 0.1 = 88.4 -> 88
		{"small oil portion", "olive_oil", 10, Nutrients{Calories: 88, ProteinG: 0, CarbsG: 0, FatG: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.Scale(tt.key, tt.quantity)
			if err != nil {
				t.Fatalf("Scale(%q, %v) error = %v", tt.key, tt.quantity, err)
			}
			if got != tt.want {
				t.Errorf("Scale(%q, %v) = %+v, want %+v", tt.key, tt.quantity, got, tt.want)
			}
		})
	}
}

func TestScale_Errors(t *testing.T) {
	table := Default()

	if _, err := table.Scale("chicken_breast", 0); err == nil || !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Errorf("zero quantity: error = %v, want validation", err)
	}
	if _, err := table.Scale("chicken_breast", -50); err == nil || !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Errorf("negative quantity: error = %v, want validation", err)
	}
	if _, err := table.Scale("dragonfruit_ice", 100); err == nil || !apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
		t.Errorf("unknown food: error = %v, want not_found", err)
	}
}

func TestAggregateMeal(t *testing.T) {
	table := Default()

	meal := []Portion{
		{Food: "chicken_breast", QuantityG: 150},
		{Food: "white_rice", QuantityG: 200},
		{Food: "broccoli", QuantityG: 100},
		{Food: "olive_oil", QuantityG: 10},
	}
	got, err := table.AggregateMeal(meal)
	if err != nil {
		t.Fatalf("AggregateMeal() error = %v", err)
	}

	// manual sum of the scaled portions:
	// chicken 150g: 248 / 46.5 / 0 / 5.4
	// rice 200g:    260 / 5.4 / 56 / 0.6
	// broccoli 100g: 34 / 2.8 / 7 / 0.4
	// oil 10g:       88 / 0 / 0 / 10
	want := Nutrients{Calories: 630, ProteinG: 54.7, CarbsG: 63, FatG: 16.4}
	if got != want {
		t.Errorf("AggregateMeal() = %+v, want %+v", got, want)
	}
}

// A single-portion meal must equal its own scaled portion.
func TestAggregateMeal_SinglePortionRoundTrip(t *testing.T) {
	table := Default()
	for _, key := range []string{"salmon", "oats", "avocado", "whey_protein"} {
		scaled, err := table.Scale(key, 137)
		if err != nil {
			t.Fatalf("Scale(%q): %v", key, err)
		}
		agg, err := table.AggregateMeal([]Portion{{Food: key, QuantityG: 137}})
		if err != nil {
			t.Fatalf("AggregateMeal(%q): %v", key, err)
		}
		if agg != scaled {
			t.Errorf("%s: aggregate %+v != scaled %+v", key, agg, scaled)
		}
	}
}

func TestAggregateMeal_Errors(t *testing.T) {
	table := Default()

	if _, err := table.AggregateMeal(nil); err == nil || !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Errorf("empty meal: error = %v, want validation", err)
	}

	meal := []Portion{
		{Food: "chicken_breast", QuantityG: 150},
		{Food: "moon_cheese", QuantityG: 50},
	}
	if _, err := table.AggregateMeal(meal); err == nil || !apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
		t.Errorf("unknown item: error = %v, want not_found", err)
	}

	meal = []Portion{{Food: "chicken_breast", QuantityG: -1}}
	if _, err := table.AggregateMeal(meal); err == nil || !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Errorf("bad quantity: error = %v, want validation", err)
	}
}
