package motor

import (
	"math"
	"testing"
)

func TestAnalyze_ReferenceMotor(t *testing.T) {
	rep, warn, err := Analyze(referenceMotor, FindPeak)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if warn != nil {
		t.Fatalf("unexpected clamp warning: %+v", warn)
	}

	pp := rep.PeakPower
	if pp.Current <= referenceMotor.NoLoadCurrent || pp.Current > referenceMotor.MaxCurrent {
		t.Errorf("power-peak current %v A outside (%v, %v]",
			pp.Current, referenceMotor.NoLoadCurrent, referenceMotor.MaxCurrent)
	}
	if pp.PowerOut <= 0 {
		t.Errorf("power out at the power peak = %v W, want > 0", pp.PowerOut)
	}

	// The efficiency peak sits at a lower current than the power peak for
	// the linear droop model, and is strictly more efficient.
	pe := rep.PeakEfficiency
	if pe.Current >= pp.Current {
		t.Errorf("efficiency peak at %v A not below power peak at %v A", pe.Current, pp.Current)
	}
	if pe.Efficiency <= pp.Efficiency {
		t.Errorf("efficiency peak %v%% not above power peak's %v%%", pe.Efficiency, pp.Efficiency)
	}
}

func TestAnalyze_PropagatesValidationError(t *testing.T) {
	p := Parameters{KV: 1000, Voltage: 11.1, NoLoadCurrent: 5, MaxCurrent: 5.005, ArmatureResistance: 100}

	if _, _, err := Analyze(p, FindPeak); err != ErrRangeTooNarrow {
		t.Errorf("err = %v, want ErrRangeTooNarrow", err)
	}
}

func TestAnalyze_SearchesClampedRange(t *testing.T) {
	// The clamped max (11.1001 A) becomes the search range; the power
	// optimum (0.5 + 11.1)/2 = 5.8 A is interior to it.
	p := Parameters{KV: 1000, Voltage: 11.1, NoLoadCurrent: 0.5, MaxCurrent: 20, ArmatureResistance: 1000}

	rep, warn, err := Analyze(p, FindPeak)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if warn == nil {
		t.Fatal("expected a clamp warning")
	}

	if rep.PeakPower.Current > rep.Params.MaxCurrent {
		t.Errorf("power peak %v A beyond clamped max %v A", rep.PeakPower.Current, rep.Params.MaxCurrent)
	}
	if math.Abs(rep.PeakPower.Current-5.8) > 1e-2 {
		t.Errorf("power peak = %v A, want ~5.8", rep.PeakPower.Current)
	}
}

func TestCurve_SpansValidatedRange(t *testing.T) {
	points := Curve(referenceMotor, 11)

	if len(points) != 11 {
		t.Fatalf("got %d points, want 11", len(points))
	}

	first, last := points[0], points[len(points)-1]
	if math.Abs(first.Current-(referenceMotor.NoLoadCurrent+1e-4)) > 1e-12 {
		t.Errorf("first sample at %v A, want hard minimum", first.Current)
	}
	if last.Current != referenceMotor.MaxCurrent {
		t.Errorf("last sample at %v A, want exactly %v", last.Current, referenceMotor.MaxCurrent)
	}

	for i := 1; i < len(points); i++ {
		if points[i].Current <= points[i-1].Current {
			t.Errorf("currents not strictly increasing at index %d: %v then %v",
				i, points[i-1].Current, points[i].Current)
		}
	}
}

func TestCurve_RaisesTinyPointCounts(t *testing.T) {
	points := Curve(referenceMotor, 0)

	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
}
