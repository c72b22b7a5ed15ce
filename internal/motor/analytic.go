package motor

import (
	"math"

	"motorcalc.klederson.com/internal/config"
)

// ClosedForm is the analytic fast path for the linear droop model, behind
// the same contract as GridSearch. The power curve is quadratic in current
// with its vertex at the midpoint of the no-load and short-circuit currents;
// the efficiency optimum satisfies the geometric-mean identity between the
// same two currents. Out-of-range optima clamp to the nearest boundary.
//
// Only valid for the linear model; GridSearch remains the reference if the
// model ever gains nonlinear terms.
func ClosedForm(p Parameters, obj Objective) float64 {
	hardMin := p.NoLoadCurrent + config.CurrentEpsilon
	isc := p.ShortCircuitCurrent()

	var peak float64
	switch obj {
	case MaximizeEfficiency:
		if p.NoLoadCurrent == 0 {
			// Zero no-load losses: efficiency only degrades with droop.
			return hardMin
		}
		peak = math.Sqrt(p.NoLoadCurrent * isc)
	default:
		peak = (p.NoLoadCurrent + isc) / 2
	}

	return math.Min(math.Max(peak, hardMin), p.MaxCurrent)
}
