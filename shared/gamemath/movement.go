package gamemath

import "math"

// IntentFromKeys turns held movement keys into a local-frame intent.
// fz is the forward axis (forward = -1), fx the strafe axis (left = -1).
// Opposing keys resolve last-write-wins in the order forward, back, left, right:
// back beats forward and right beats left.
func IntentFromKeys(forward, back, left, right bool) (fx, fz float64) {
	if forward {
		fz = -1
	}
	if back {
		fz = 1
	}
	if left {
		fx = -1
	}
	if right {
		fx = 1
	}
	return fx, fz
}

// RotateByYaw rotates a local-frame intent about the vertical axis into world space.
func RotateByYaw(fx, fz, yaw float64) (dx, dz float64) {
	sin, cos := math.Sincos(yaw)
	dx = fx*cos - fz*sin
	dz = fx*sin + fz*cos
	return dx, dz
}

// Displacement returns the world-space (x, z) step for one tick.
// A non-positive or NaN dt yields no movement.
func Displacement(fx, fz, yaw, speed, dt float64) (dx, dz float64) {
	if !(dt > 0) || (fx == 0 && fz == 0) {
		return 0, 0
	}
	dx, dz = RotateByYaw(fx, fz, yaw)
	return dx * speed * dt, dz * speed * dt
}
