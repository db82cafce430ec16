package geometry

import "fmt"

// Tier is a mesh resolution level, ordered from most to least detailed.
type Tier uint8

const (
	High Tier = iota
	Medium
	Low
)

// NumTiers is the number of resolution levels.
const NumTiers = 3

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case High:
		return "high"
	case Medium:
		return "medium"
	case Low:
		return "low"
	default:
		return fmt.Sprintf("tier(%d)", uint8(t))
	}
}

// Variants holds one independently built plane per tier.
type Variants [NumTiers]*Plane

// DefaultSegments are the grid resolutions for high, medium and low.
var DefaultSegments = [NumTiers]int{256, 128, 64}

// BuildVariants builds, remaps and finalizes a plane for each tier.
// Tiers share no buffers.
func BuildVariants(width, height float32, segments [NumTiers]int) (Variants, error) {
	var v Variants
	for i, seg := range segments {
		p := NewPlane(width, height, seg, seg)
		if err := p.RemapUVs(); err != nil {
			return Variants{}, fmt.Errorf("building %s tier: %w", Tier(i), err)
		}
		v[i] = p
	}
	return v, nil
}
