// Package field spawns the falling notes and integrates their motion.
package field

import "math"

// Easing maps [0,1] to [0,1]. It shapes how spawn depth is distributed.
type Easing func(x float64) float64

// QuarterCircle is a circular ease-out, sqrt(1-(x-1)^2). It packs most notes
// close to the camera.
func QuarterCircle(x float64) float64 {
	return math.Sqrt(1 - (x-1)*(x-1))
}

// Linear spreads notes evenly over the depth range.
func Linear(x float64) float64 {
	return x
}

// Cubic is a cubic ease-out, 1-(1-x)^3.
func Cubic(x float64) float64 {
	r := 1 - x
	return 1 - r*r*r
}

var easings = map[string]Easing{
	"quarter_circle": QuarterCircle,
	"linear":         Linear,
	"cubic":          Cubic,
}

// EasingByName looks up an easing by its config name.
// Unknown names fall back to QuarterCircle and report false.
func EasingByName(name string) (Easing, bool) {
	if e, ok := easings[name]; ok {
		return e, true
	}
	return QuarterCircle, false
}

// Depth returns round(ease(i/count) * maxDepth).
func Depth(i, count int, maxDepth float64, ease Easing) float64 {
	if count <= 0 {
		return 0
	}
	if ease == nil {
		ease = QuarterCircle
	}
	return math.Round(ease(float64(i)/float64(count)) * maxDepth)
}
