package engine

// idealVelocityCV is the expressive sweet spot: velocity variation below
// it reads as flat, above it as erratic
const idealVelocityCV = 0.25

// dynamicVariation maps the velocity window's coefficient of variation
// through a target band peaking at idealVelocityCV. Undefined (0) with
// fewer than two samples.
func dynamicVariation(vels *window) float64 {
	if vels.len() < 2 {
		return 0
	}
	mean := vels.mean()
	if mean <= 0 {
		return 0
	}
	cv := vels.stddev() / mean
	dist := cv - idealVelocityCV
	if dist < 0 {
		dist = -dist
	}
	return clamp01(1 - dist/idealVelocityCV)
}
