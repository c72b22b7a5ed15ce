package motor

import (
	"math"

	"motorcalc.klederson.com/internal/config"
)

// Parameters are the nameplate values describing one brushed DC motor and
// the electrical limits it will be driven within. Validated once per session
// by ValidateAndClamp, then read-only.
type Parameters struct {
	KV                 float64 // Speed constant, RPM per volt at no load (> 0)
	Voltage            float64 // Supply voltage in V (> 0)
	NoLoadCurrent      float64 // Current drawn at zero torque in A (>= 0)
	MaxCurrent         float64 // Upper bound of the usable current range in A (> 0)
	ArmatureResistance float64 // Winding resistance in milliohms (>= 0)
}

// TorqueConstant converts the speed constant into the torque constant of the
// intermediate unit system used by the model.
func (p Parameters) TorqueConstant() float64 {
	return config.TorqueConstFactor / p.KV
}

// ShortCircuitCurrent is the stall current the supply would push through the
// bare winding. +Inf for an ideal zero-resistance motor.
func (p Parameters) ShortCircuitCurrent() float64 {
	if p.ArmatureResistance == 0 {
		return math.Inf(1)
	}
	return 1000 * p.Voltage / p.ArmatureResistance
}

// OperatingPoint is the steady-state behavior of a motor at one specific
// current. Purely derived from (Parameters, current), never mutated.
type OperatingPoint struct {
	Current    float64 // A
	Speed      float64 // RPM
	Torque     float64 // N·m
	PowerIn    float64 // W
	PowerOut   float64 // W
	Efficiency float64 // %
}

// Evaluate computes the operating point of the motor at the given current
// using the linear droop model: back-EMF speed reduced by the resistive
// voltage drop, torque proportional to current above the no-load threshold.
//
// The function is total: currents outside the validated range produce
// physically meaningless results (negative power, >100% efficiency) rather
// than errors, so callers must stay within the range from ValidateAndClamp.
func Evaluate(p Parameters, current float64) OperatingPoint {
	speed := (p.Voltage - current*p.ArmatureResistance/1000) * p.KV
	torque := p.TorqueConstant() * (current - p.NoLoadCurrent) * config.OzInToNewtonMeter

	powerOut := torque * speed * (2 * math.Pi / 60) // RPM to rad/s
	powerIn := p.Voltage * current

	return OperatingPoint{
		Current:    current,
		Speed:      speed,
		Torque:     torque,
		PowerIn:    powerIn,
		PowerOut:   powerOut,
		Efficiency: powerOut / powerIn * 100,
	}
}

// Horsepower returns the mechanical output power in HP.
func (pt OperatingPoint) Horsepower() float64 {
	return pt.PowerOut / config.WattsPerHorsepower
}

// RuntimeMinutes estimates how long a pack of the given capacity (mAh) lasts
// at this point's current draw. Returns 0 for a non-positive draw.
func (pt OperatingPoint) RuntimeMinutes(capacityMAh float64) float64 {
	if pt.Current <= 0 {
		return 0
	}
	return capacityMAh / 1000 / pt.Current * 60
}
