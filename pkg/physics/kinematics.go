package physics

import "math"

// FullTurn is one revolution in degrees.
const FullTurn = 360.0

// NormalizeDegrees maps any finite angle into [0, 360). A single step may
// overshoot by several turns, so this uses a modulo rather than one
// conditional subtraction.
func NormalizeDegrees(angle float64) float64 {
	if angle >= 0 && angle < FullTurn {
		return angle
	}
	angle = math.Mod(angle, FullTurn)
	if angle < 0 {
		angle += FullTurn
	}
	// -tiny + 360 rounds to 360 in float64.
	if angle >= FullTurn {
		angle = 0
	}
	return angle
}

// WrapCoordinate teleports c to the opposite edge once it leaves
// [-bound, bound]. It never clamps.
func WrapCoordinate(c, bound float64) float64 {
	switch {
	case c > bound:
		return -bound
	case c < -bound:
		return bound
	default:
		return c
	}
}

// Wrap applies WrapCoordinate to each axis independently.
func Wrap(p Vector2D, bound float64) Vector2D {
	return Vector2D{
		X: WrapCoordinate(p.X, bound),
		Y: WrapCoordinate(p.Y, bound),
	}
}

// WrapAround maps c into [-bound, bound) as if the field repeated every
// 2*bound, so an offset that overshoots an edge keeps its distance past it.
func WrapAround(c, bound float64) float64 {
	span := 2 * bound
	c = math.Mod(c+bound, span)
	if c < 0 {
		c += span
	}
	// -tiny + span rounds to span in float64.
	if c >= span {
		c = 0
	}
	return c - bound
}

// WrapAroundPoint applies WrapAround to each axis independently.
func WrapAroundPoint(p Vector2D, bound float64) Vector2D {
	return Vector2D{
		X: WrapAround(p.X, bound),
		Y: WrapAround(p.Y, bound),
	}
}

// ToroidalDistance is the shortest distance between a and b on a field
// that repeats every 2*bound on both axes.
func ToroidalDistance(a, b Vector2D, bound float64) float64 {
	span := 2 * bound
	axis := func(d float64) float64 {
		d = math.Mod(math.Abs(d), span)
		return math.Min(d, span-d)
	}
	return math.Hypot(axis(a.X-b.X), axis(a.Y-b.Y))
}

// DragFactor converts a per-tick drag coefficient calibrated at tickRate
// ticks per second into the multiplier for an arbitrary frame delta.
func DragFactor(drag, deltaTime, tickRate float64) float64 {
	return math.Pow(drag, deltaTime*tickRate)
}
