package motor

import "motorcalc.klederson.com/internal/config"

// Report holds the two located optima for one motor, plus the validated
// (possibly clamped) parameters they were computed against.
type Report struct {
	Params         Parameters
	PeakPower      OperatingPoint
	PeakEfficiency OperatingPoint
}

// Analyze validates the parameters, locates the power and efficiency optima
// with the given search strategy, and evaluates the model at both. The
// ClampWarning is returned alongside a successful report when the max
// current had to be reduced.
func Analyze(p Parameters, peak PeakFunc) (Report, *ClampWarning, error) {
	validated, warn, err := ValidateAndClamp(p)
	if err != nil {
		return Report{}, nil, err
	}

	return Report{
		Params:         validated,
		PeakPower:      Evaluate(validated, peak(validated, MaximizePower)),
		PeakEfficiency: Evaluate(validated, peak(validated, MaximizeEfficiency)),
	}, warn, nil
}

// Curve samples n evenly spaced operating points across the validated
// current range, for the stepped-current table. n is raised to 2 if smaller.
func Curve(p Parameters, n int) []OperatingPoint {
	if n < 2 {
		n = 2
	}

	lo := p.NoLoadCurrent + config.CurrentEpsilon
	step := (p.MaxCurrent - lo) / float64(n-1)

	points := make([]OperatingPoint, n)
	for i := range points {
		current := lo + float64(i)*step
		if i == n-1 {
			current = p.MaxCurrent
		}
		points[i] = Evaluate(p, current)
	}
	return points
}
