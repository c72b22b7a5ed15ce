package motor

import (
	"math"

	"motorcalc.klederson.com/internal/config"
)

// Objective selects which operating-point quantity a peak search maximizes.
type Objective int

const (
	MaximizePower Objective = iota
	MaximizeEfficiency
)

func (o Objective) String() string {
	switch o {
	case MaximizeEfficiency:
		return "efficiency"
	default:
		return "power"
	}
}

// PeakFunc locates the current within [no-load + epsilon, max] that
// maximizes the given objective. Implementations assume the parameters have
// already passed ValidateAndClamp.
type PeakFunc func(Parameters, Objective) float64

// FindPeak runs the reference search strategy.
func FindPeak(p Parameters, obj Objective) float64 {
	return GridSearch(p, obj)
}

// GridSearch is a derivative-free coarse-to-fine bracketing search. Each
// round samples the objective at 11 evenly spaced currents, recenters the
// window on the best sample and shrinks the step tenfold, until either no
// sample improves or the window half-width drops below the convergence
// tolerance. It assumes the objective is unimodal over the range, which
// holds for the power and efficiency curves of the linear droop model, and
// generalizes to model variants where no closed form exists.
func GridSearch(p Parameters, obj Objective) float64 {
	hardMin := p.NoLoadCurrent + config.CurrentEpsilon
	minCurrent, maxCurrent := hardMin, p.MaxCurrent
	step := (p.MaxCurrent - hardMin) / config.SearchGridSteps

	best := math.Inf(-1)
	bestCurrent := hardMin

	// MaxSearchRounds guards against step underflowing to zero on
	// pathologically narrow ranges before the half-width test can fire.
	for round := 0; round < config.MaxSearchRounds; round++ {
		improved := false

		for current := minCurrent; ; {
			// Strict > keeps the earlier, lower-current sample on ties.
			if v := objectiveValue(p, current, obj); v > best {
				improved = true
				best = v
				bestCurrent = current
			}
			if current >= maxCurrent {
				break
			}
			next := current + step
			// Always sample the boundary exactly; next <= current catches
			// step underflowing below one ulp of the current position.
			if next > maxCurrent || next <= current {
				next = maxCurrent
			}
			current = next
		}

		if !improved {
			break
		}

		minCurrent = math.Max(bestCurrent-step, hardMin)
		maxCurrent = math.Min(bestCurrent+step, p.MaxCurrent)
		step /= config.SearchShrink

		if math.Max(maxCurrent-bestCurrent, bestCurrent-minCurrent) < config.CurrentEpsilon {
			break
		}
	}

	return bestCurrent
}

func objectiveValue(p Parameters, current float64, obj Objective) float64 {
	pt := Evaluate(p, current)
	if obj == MaximizeEfficiency {
		return pt.Efficiency
	}
	return pt.PowerOut
}
