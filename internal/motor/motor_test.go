package motor

import (
	"math"
	"testing"
)

// referenceMotor is a typical small brushed setup: 1000 Kv on a 3S-ish pack,
// 0.5 A no-load draw, 20 A limit, 100 mOhm winding.
var referenceMotor = Parameters{
	KV:                 1000,
	Voltage:            11.1,
	NoLoadCurrent:      0.5,
	MaxCurrent:         20,
	ArmatureResistance: 100,
}

func TestEvaluate_ReferenceMotorAt10A(t *testing.T) {
	pt := Evaluate(referenceMotor, 10)

	// Hand-computed from the droop model: speed = (11.1 - 10*0.1) * 1000,
	// torque = (1352/1000) * 9.5 * 0.00706.
	if pt.Speed != 10100 {
		t.Errorf("speed = %v RPM, want 10100", pt.Speed)
	}
	if math.Abs(pt.Torque-0.09067864) > 1e-9 {
		t.Errorf("torque = %v Nm, want 0.09067864", pt.Torque)
	}
	if math.Abs(pt.PowerIn-111.0) > 1e-9 {
		t.Errorf("power in = %v W, want 111.0", pt.PowerIn)
	}
	if math.Abs(pt.PowerOut-95.908) > 1e-2 {
		t.Errorf("power out = %v W, want ~95.91", pt.PowerOut)
	}

	wantEff := pt.PowerOut / pt.PowerIn * 100
	if pt.Efficiency != wantEff {
		t.Errorf("efficiency = %v, want %v", pt.Efficiency, wantEff)
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	a := Evaluate(referenceMotor, 7.4498)
	b := Evaluate(referenceMotor, 7.4498)

	if a != b {
		t.Errorf("identical inputs produced different operating points: %+v vs %+v", a, b)
	}
}

func TestEvaluate_ZeroTorqueAtNoLoadCurrent(t *testing.T) {
	pt := Evaluate(referenceMotor, referenceMotor.NoLoadCurrent)

	if pt.Torque != 0 {
		t.Errorf("torque at no-load current = %v, want 0", pt.Torque)
	}
	if pt.PowerOut != 0 {
		t.Errorf("power out at no-load current = %v, want 0", pt.PowerOut)
	}
}

func TestShortCircuitCurrent(t *testing.T) {
	if got := referenceMotor.ShortCircuitCurrent(); math.Abs(got-111) > 1e-9 {
		t.Errorf("short-circuit current = %v A, want 111", got)
	}

	ideal := referenceMotor
	ideal.ArmatureResistance = 0
	if got := ideal.ShortCircuitCurrent(); !math.IsInf(got, 1) {
		t.Errorf("short-circuit current with zero resistance = %v, want +Inf", got)
	}
}

func TestOperatingPoint_Horsepower(t *testing.T) {
	pt := OperatingPoint{PowerOut: 745.69987158227}

	if got := pt.Horsepower(); math.Abs(got-1) > 1e-12 {
		t.Errorf("745.7 W = %v HP, want 1", got)
	}
}

func TestOperatingPoint_RuntimeMinutes(t *testing.T) {
	// 2200 mAh at a 2 A draw is 1.1 hours.
	pt := OperatingPoint{Current: 2}
	if got := pt.RuntimeMinutes(2200); math.Abs(got-66) > 1e-9 {
		t.Errorf("runtime = %v min, want 66", got)
	}

	// Doubling the draw halves the runtime.
	pt2 := OperatingPoint{Current: 4}
	if got := pt2.RuntimeMinutes(2200); math.Abs(got-33) > 1e-9 {
		t.Errorf("runtime at double draw = %v min, want 33", got)
	}

	if got := (OperatingPoint{}).RuntimeMinutes(2200); got != 0 {
		t.Errorf("runtime at zero draw = %v, want 0", got)
	}
}
