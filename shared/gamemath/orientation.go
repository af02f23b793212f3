package gamemath

import "math"

// PitchLimit bounds the camera pitch in both directions.
const PitchLimit = math.Pi / 2

// ApplyLook integrates a pointer delta into yaw and pitch.
// Moving the pointer right turns left-handed (yaw decreases), moving it down raises pitch.
// Yaw is left unbounded; everything downstream reads it through sin/cos.
func ApplyLook(yaw, pitch, dx, dy, sensitivity float64) (float64, float64) {
	yaw -= dx * sensitivity
	pitch += dy * sensitivity
	return yaw, ClampPitch(pitch)
}

// ClampPitch clamps pitch into [-PitchLimit, PitchLimit]. NaN collapses to level.
func ClampPitch(pitch float64) float64 {
	if math.IsNaN(pitch) {
		return 0
	}
	return math.Max(-PitchLimit, math.Min(PitchLimit, pitch))
}

// ViewDirection returns the unit view vector for the given orientation.
// Yaw 0, pitch 0 looks along +Z.
func ViewDirection(yaw, pitch float64) Vec3 {
	cp := math.Cos(pitch)
	return Vec3{
		X: math.Sin(yaw) * cp,
		Y: math.Sin(pitch),
		Z: math.Cos(yaw) * cp,
	}
}
