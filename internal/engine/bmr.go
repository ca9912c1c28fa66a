package engine

import (
	"fmt"
	"math"

	"github.com/mkovalev/gain-planner/internal/domain"
)

// BMRInput is the biometric subset the Mifflin-St Jeor formula needs.
type BMRInput struct {
	Age      int
	Sex      domain.BiologicalSex
	HeightCm float64
	WeightKg float64
}

func (in BMRInput) validate() error {
	probe := domain.BiometricProfile{
		Age:             in.Age,
		Sex:             in.Sex,
		HeightCm:        in.HeightCm,
		CurrentWeightKg: in.WeightKg,
		ActivityLevel:   domain.ActivitySedentary,
	}
	return probe.Validate()
}

// Mifflin-St Jeor sex constants; male - female == 166 for identical inputs.
const (
	maleConstant   = 5
	femaleConstant = -161
)

// CalculateBMR computes basal metabolic rate in kcal/day via Mifflin-St Jeor,
// rounded to the nearest whole kcal. Pure and deterministic.
func CalculateBMR(in BMRInput) (int, error) {
	b, err := CalculateBMRWithBreakdown(in)
	if err != nil {
		return 0, err
	}
	return b.BMR, nil
}

// BMRBreakdown exposes each additive term of the formula for auditability.
// The rounded sum of the terms equals BMR exactly.
type BMRBreakdown struct {
	WeightTerm  float64 `json:"weightTerm"`  // 10 * weightKg
	HeightTerm  float64 `json:"heightTerm"`  // 6.25 * heightCm
	AgeTerm     float64 `json:"ageTerm"`     // -5 * age
	SexConstant float64 `json:"sexConstant"` // +5 male, -161 female
	Formula     string  `json:"formula"`
	BMR         int     `json:"bmr"`
}

// CalculateBMRWithBreakdown is the audit variant of CalculateBMR.
func CalculateBMRWithBreakdown(in BMRInput) (*BMRBreakdown, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	b := &BMRBreakdown{
		WeightTerm: 10 * in.WeightKg,
		HeightTerm: 6.25 * in.HeightCm,
		AgeTerm:    -5 * float64(in.Age),
	}
	if in.Sex == domain.SexMale {
		b.SexConstant = maleConstant
	} else {
		b.SexConstant = femaleConstant
	}
	b.Formula = fmt.Sprintf("10*%.1f + 6.25*%.1f - 5*%d %+.0f (Mifflin-St Jeor, %s)",
		in.WeightKg, in.HeightCm, in.Age, b.SexConstant, in.Sex)
	b.BMR = int(math.Round(b.WeightTerm + b.HeightTerm + b.AgeTerm + b.SexConstant))
	return b, nil
}
