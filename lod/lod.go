// Package lod picks a mesh resolution tier from viewer distance.
package lod

import (
	"errors"
	"fmt"
	"math"

	"github.com/pthm-cable/cashfall/geometry"
)

// ErrThresholdOrder is returned for thresholds that are not non-decreasing.
var ErrThresholdOrder = errors.New("lod: thresholds must be non-decreasing")

// Thresholds are the start distances of the high, medium and low tiers.
// The first entry is kept for symmetry with the tier list; banding only
// looks at the medium and low starts.
type Thresholds [geometry.NumTiers]float64

// DefaultThresholds are the stock band starts.
var DefaultThresholds = Thresholds{0, 65, 80}

// Validate checks that the thresholds are finite and non-decreasing.
func (t Thresholds) Validate() error {
	for i, d := range t {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return fmt.Errorf("threshold %d is %v: %w", i, d, ErrThresholdOrder)
		}
		if i > 0 && d < t[i-1] {
			return fmt.Errorf("threshold %d (%v) < threshold %d (%v): %w", i, d, i-1, t[i-1], ErrThresholdOrder)
		}
	}
	return nil
}

// TierFor maps a distance onto a tier with closed-open bands:
// [.., t1) high, [t1, t2) medium, [t2, ..) low.
// A distance exactly on a boundary resolves to the lower-detail side.
// NaN resolves to high.
func TierFor(t Thresholds, distance float64) geometry.Tier {
	switch {
	case distance >= t[geometry.Low]:
		return geometry.Low
	case distance >= t[geometry.Medium]:
		return geometry.Medium
	default:
		return geometry.High
	}
}

// Selector tracks the tier of one object across frames.
//
// Hysteresis is a fraction of each boundary: leaving for lower detail needs
// d >= t*(1+h) and coming back needs d < t*(1-h). Zero disables it, which
// makes Select identical to TierFor.
type Selector struct {
	Thresholds Thresholds
	Hysteresis float64

	current geometry.Tier
	primed  bool
}

// NewSelector creates a selector with no hysteresis.
func NewSelector(t Thresholds) Selector {
	return Selector{Thresholds: t}
}

// Select returns the tier for this frame.
func (s *Selector) Select(distance float64) geometry.Tier {
	target := TierFor(s.Thresholds, distance)
	if !s.primed || s.Hysteresis <= 0 || target == s.current {
		s.current = target
		s.primed = true
		return target
	}

	// Step one band at a time so every boundary crossed needs its own margin.
	h := s.Hysteresis
	for s.current < geometry.Low && distance >= s.Thresholds[s.current+1]*(1+h) {
		s.current++
	}
	for s.current > geometry.High && distance < s.Thresholds[s.current]*(1-h) {
		s.current--
	}
	return s.current
}

// Reset forgets the tracked tier.
func (s *Selector) Reset() {
	s.current = geometry.High
	s.primed = false
}
