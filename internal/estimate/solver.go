package estimate

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrUnsortedProfile      = errors.New("dps profile is not sorted by time")
	ErrNegativeDiscriminant = errors.New("negative discriminant in constant-acceleration step")
)

// Branch names the rule that produced a Solution.
type Branch string

const (
	BranchExact       Branch = "exact"
	BranchBelow       Branch = "below"
	BranchAbove       Branch = "above"
	BranchAccelerated Branch = "accelerated"
	BranchLinear      Branch = "linear"
)

type Solution struct {
	Time   float64
	Branch Branch
	Lower  *Sample
	Upper  *Sample
}

// findLower returns the last sample whose cumulative damage is below dmg.
func findLower(samples []Sample, dmg float64) *Sample {
	for i := len(samples) - 1; i >= 0; i-- {
		if samples[i].Damage() < dmg {
			return &samples[i]
		}
	}
	return nil
}

// findUpper returns the first sample whose cumulative damage is above dmg.
func findUpper(samples []Sample, dmg float64) *Sample {
	for i := range samples {
		if samples[i].Damage() > dmg {
			return &samples[i]
		}
	}
	return nil
}

// Solve returns the time at which the cumulative damage of samples
// reaches threshold. Between two bracketing samples dps grows with
// constant acceleration; outside the sampled range the nearest rate is
// held constant.
func Solve(samples []Sample, threshold float64) (Solution, error) {
	for i := range samples {
		if samples[i].Damage() == threshold {
			return Solution{Time: samples[i].Time, Branch: BranchExact, Lower: &samples[i], Upper: &samples[i]}, nil
		}
	}

	lower := findLower(samples, threshold)
	upper := findUpper(samples, threshold)

	switch {
	case lower == nil && upper == nil:
		return Solution{}, fmt.Errorf("%w: no sample brackets damage %g", ErrUnsortedProfile, threshold)
	case lower == nil:
		return Solution{Time: threshold / upper.DPS, Branch: BranchBelow, Upper: upper}, nil
	case upper == nil:
		return Solution{Time: threshold / lower.DPS, Branch: BranchAbove, Lower: lower}, nil
	}

	if upper.Time <= lower.Time {
		return Solution{}, fmt.Errorf("%w: bracket [%g, %g] runs backwards in time", ErrUnsortedProfile, lower.Time, upper.Time)
	}

	rest := threshold - lower.Damage()
	a := lower.acc(*upper)
	if a == 0 {
		return Solution{Time: lower.Time + rest/lower.DPS, Branch: BranchLinear, Lower: lower, Upper: upper}, nil
	}

	disc := lower.DPS*lower.DPS + 2*a*rest
	if disc < 0 {
		return Solution{}, fmt.Errorf("%w: bracket [%g, %g], damage %g", ErrNegativeDiscriminant, lower.Time, upper.Time, threshold)
	}
	dt := (math.Sqrt(disc) - lower.DPS) / a
	return Solution{Time: lower.Time + dt, Branch: BranchAccelerated, Lower: lower, Upper: upper}, nil
}
