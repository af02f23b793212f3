package gamemath

// MarchToGround walks from origin along dir in fixed steps until the point
// reaches or crosses the ground plane, where Y is clamped to exactly 0.
// hit is false when the step budget runs out first; the last stepped point is
// returned in that case.
func MarchToGround(origin, dir Vec3, step float64, maxSteps int) (target Vec3, hit bool) {
	target = origin
	delta := dir.Scale(step)
	for i := 0; i < maxSteps; i++ {
		target = target.Add(delta)
		if target.Y <= 0 {
			target.Y = 0
			return target, true
		}
	}
	return target, false
}
