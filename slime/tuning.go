package slime

import "github.com/go-gl/mathgl/mgl64"

// Temperature thresholds, in degrees.
const (
	TempMin = 0.0
	TempMax = 60.0

	// TempStart is the thermostat's initial value.
	TempStart = 25.0

	coldBand  = 10.0 // below: cold damping, stiffer springs, contracting shape
	warmBand  = 25.0 // at or above: mostly particle-driven response
	hotBand   = 30.0 // above: loose damping, softer springs
	minShrink = 0.7  // rest-length multiplier at or below 0°
)

// Particle integration
const (
	dampingCold = 0.96
	dampingMild = 0.975
	dampingHot  = 0.985

	// wallRestitution scales the inverted velocity after a particle hits a wall
	wallRestitution = 0.5
)

// Springs
const (
	springStiffnessMin = 20.0
	springStiffnessMax = 80.0
	springForceCap     = 200.0
	springColdMult     = 1.2
	springHotMult      = 0.8

	RingStiffness     = 50.0
	DiagonalStiffness = 30.0
	SpringDamping     = 1.5
)

// Soft-mode pointer collision and center drift
const (
	PointerRadius       = 40.0
	pointerStrength     = 700.0
	pointerCapMult      = 1.2
	pointerMinDist      = 0.01
	edgeShare           = 0.7
	midpointShare       = 0.5
	midpointReach       = 15.0
	centerDamping       = 0.98
	wallMarginMult      = 1.1
	shapeStiffnessWarm  = 0.05
	shapeStiffnessMild  = 0.12
	shapeStiffnessCold  = 0.25
	softFactorWarm      = 0.8
	softFactorColdFloor = 0.2
)

// Rigid mode
const (
	rigidPointerMargin    = 40.0
	rigidPointerStrength  = 1500.0
	rigidLinearDamping    = 0.98
	rigidAngularDamping   = 0.97
	rigidWallRestitution  = 0.4
	DefaultBodyMass       = 20.0
	DefaultInertia        = 5000.0
	DefaultParticleMass   = 1.0
	DefaultParticleRadius = 6.0
	DefaultParticleCount  = 48
	DefaultRingRadius     = 60.0
)

// DampingFactor returns the per-tick particle velocity multiplier for the temperature band.
func DampingFactor(temp float64) float64 {
	switch {
	case temp < coldBand:
		return dampingCold
	case temp > hotBand:
		return dampingHot
	default:
		return dampingMild
	}
}

// ShrinkFactor scales rest lengths and the shape-matching radius: 1.0 at or above 10°,
// falling linearly to 0.7 at 0° and below.
func ShrinkFactor(temp float64) float64 {
	switch {
	case temp >= coldBand:
		return 1.0
	case temp <= TempMin:
		return minShrink
	default:
		return minShrink + (1.0-minShrink)*(temp/coldBand)
	}
}

// SpringStiffness derives the effective spring constant from the base constant k0.
func SpringStiffness(k0, temp float64) float64 {
	k := k0
	switch {
	case temp < coldBand:
		k = k0 * springColdMult
	case temp > hotBand:
		k = k0 * springHotMult
	}
	return clamp(k, springStiffnessMin, springStiffnessMax)
}

// BlendFactors splits pointer force between local deformation (soft) and bulk
// translation (center). The two always sum to 1.
func BlendFactors(temp float64) (soft, center float64) {
	switch {
	case temp >= warmBand:
		soft = softFactorWarm
	case temp > coldBand:
		t := (temp - coldBand) / (warmBand - coldBand)
		soft = softFactorColdFloor + (softFactorWarm-softFactorColdFloor)*t
	default:
		soft = softFactorColdFloor * max(0, temp/coldBand)
	}
	soft = clamp(soft, 0, 1)
	return soft, 1 - soft
}

// ShapeStiffness is the lerp fraction used by shape matching. Colder pulls harder.
func ShapeStiffness(temp float64) float64 {
	switch {
	case temp >= warmBand:
		return shapeStiffnessWarm
	case temp > coldBand:
		return shapeStiffnessMild
	default:
		return shapeStiffnessCold
	}
}

func clamp(v, lo, hi float64) float64 {
	return mgl64.Clamp(v, lo, hi)
}
