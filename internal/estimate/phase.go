package estimate

import (
	"errors"
	"fmt"
)

var ErrMissingProfile = errors.New("no dps profile loaded")

// BossPhase is one row of a boss's phase table.
type BossPhase struct {
	Label        string  `json:"label" yaml:"label"`
	Health       float64 `json:"health" yaml:"health"`
	Coeff        float64 `json:"coeff" yaml:"coeff"`
	PowerCoeff   float64 `json:"power_coeff" yaml:"power_coeff"`
	Participants float64 `json:"participants" yaml:"participants"`
}

// Threshold is the effective health the squad has to deal in category c.
// The power coefficient only applies to power damage.
func (bp BossPhase) Threshold(c Category) float64 {
	if c == Power {
		return bp.Health / bp.PowerCoeff / bp.Coeff
	}
	return bp.Health / bp.Coeff
}

// PhaseError ties a solver fault to the phase and category it came from.
type PhaseError struct {
	Phase    string
	Category Category
	Err      error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("phase %s, %s damage: %v", e.Phase, e.Category, e.Err)
}

func (e *PhaseError) Unwrap() error { return e.Err }

type Estimator struct {
	phase BossPhase
	lib   *Library
}

func NewEstimator(phase BossPhase, lib *Library) *Estimator {
	return &Estimator{phase: phase, lib: lib}
}

func (e *Estimator) Phase() string { return e.phase.Label }

func (e *Estimator) PowerTime() (float64, error) { return e.time(Power) }
func (e *Estimator) SemiTime() (float64, error)  { return e.time(Semi) }
func (e *Estimator) CondiTime() (float64, error) { return e.time(Condi) }

func (e *Estimator) time(c Category) (float64, error) {
	sol, err := e.Solve(c)
	if err != nil {
		return 0, err
	}
	return sol.Time, nil
}

// Solve projects the category's reference profile onto the phase's
// squad and solves for the phase threshold.
func (e *Estimator) Solve(c Category) (Solution, error) {
	p, ok := e.lib.Profile(c)
	if !ok {
		return Solution{}, &PhaseError{Phase: e.phase.Label, Category: c, Err: ErrMissingProfile}
	}
	sol, err := Solve(Project(p, e.phase.Participants), e.phase.Threshold(c))
	if err != nil {
		return Solution{}, &PhaseError{Phase: e.phase.Label, Category: c, Err: err}
	}
	return sol, nil
}
