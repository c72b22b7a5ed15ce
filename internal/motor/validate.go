package motor

import (
	"errors"
	"fmt"
	"math"

	"motorcalc.klederson.com/internal/config"
)

// Fatal validation outcomes. Either one ends the session without a search.
var (
	ErrRangeTooNarrow = errors.New("maximum current is less than, equal to, or very close to the no-load current")
	ErrOpenCircuit    = errors.New("at minimum current or barely above, the motor would be an open circuit (Vdrop > Vin)")
)

// ValidateNameplate checks the sign constraints on the individual nameplate
// values: Kv, voltage and maximum current strictly positive, unloaded
// current and armature resistance non-negative, everything finite. The
// wizard enforces these at entry time; flag mode runs this before the range
// checks, since a negative or zero Kv would otherwise flow through to a
// physically meaningless report.
func ValidateNameplate(p Parameters) error {
	values := []struct {
		name    string
		value   float64
		nonZero bool
	}{
		{"Kv", p.KV, true},
		{"voltage", p.Voltage, true},
		{"unloaded current", p.NoLoadCurrent, false},
		{"maximum current", p.MaxCurrent, true},
		{"armature resistance", p.ArmatureResistance, false},
	}

	for _, v := range values {
		switch {
		case math.IsNaN(v.value) || math.IsInf(v.value, 0):
			return fmt.Errorf("%s is not a finite number", v.name)
		case v.nonZero && v.value <= 0:
			return fmt.Errorf("%s must be greater than zero", v.name)
		case v.value < 0:
			return fmt.Errorf("%s must not be negative", v.name)
		}
	}
	return nil
}

// ClampWarning reports a non-fatal repair of the usable current range.
type ClampWarning struct {
	NewMaxCurrent float64
}

// ValidateAndClamp checks the current range once per session, before any
// search. A max current that would exceed the open-circuit point is clamped
// down to it with a warning; the two fatal conditions return an error with
// the parameters untouched.
func ValidateAndClamp(p Parameters) (Parameters, *ClampWarning, error) {
	if p.MaxCurrent-p.NoLoadCurrent < config.MinUsableRange {
		return p, nil, ErrRangeTooNarrow
	}

	if (p.NoLoadCurrent+config.CurrentEpsilon)*p.ArmatureResistance/1000 > p.Voltage {
		return p, nil, ErrOpenCircuit
	}

	if p.MaxCurrent*p.ArmatureResistance/1000 >= p.Voltage {
		p.MaxCurrent = p.Voltage/(p.ArmatureResistance/1000) + config.CurrentEpsilon
		return p, &ClampWarning{NewMaxCurrent: p.MaxCurrent}, nil
	}

	return p, nil, nil
}
