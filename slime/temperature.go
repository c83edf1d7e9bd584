package slime

import "math"

// TemperatureModel is the single temperature authority of a body.
type TemperatureModel interface {
	// Current returns the temperature in degrees
	Current() float64

	// Advance moves time-driven models forward by dt seconds
	Advance(dt float64)
}

// Thermostat holds a temperature set from outside, clamped to [TempMin, TempMax]
type Thermostat struct {
	value float64
}

// NewThermostat creates a thermostat at TempStart
func NewThermostat() *Thermostat {
	return &Thermostat{value: TempStart}
}

// ApplyDelta shifts the temperature by d and clamps
func (t *Thermostat) ApplyDelta(d float64) {
	t.Set(t.value + d)
}

// Set assigns the temperature, clamped to [TempMin, TempMax]
func (t *Thermostat) Set(v float64) {
	t.value = clamp(v, TempMin, TempMax)
}

func (t *Thermostat) Current() float64 { return t.value }

// Advance is a no-op: a thermostat only changes through ApplyDelta or Set
func (t *Thermostat) Advance(dt float64) {}

// Oscillator swings the temperature as 25 + 10·sin(0.5π·t), staying within [15, 35]
type Oscillator struct {
	elapsed float64
}

func NewOscillator() *Oscillator {
	return &Oscillator{}
}

func (o *Oscillator) Advance(dt float64) {
	o.elapsed += dt
}

func (o *Oscillator) Current() float64 {
	return 25.0 + 10.0*math.Sin(0.5*math.Pi*o.elapsed)
}
