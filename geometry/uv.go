package geometry

// RemapSplitAtlas mirrors V and packs it into one half of the atlas.
//
// The branch is chosen from the original V:
//
//	v > 0:  v' = (1-v)*0.5 + 0.5   in [0.5, 1)
//	v <= 0: v' = (1-v)*0.5 - 0.5   0 at the bottom edge, negative never clamped
//
// Out-of-range results rely on a repeat-wrapped sampler.
// U and a trailing unpaired value are copied through. The input slice is not
// modified.
func RemapSplitAtlas(uvs []float32) []float32 {
	out := make([]float32, len(uvs))
	copy(out, uvs)
	for i := 0; i+1 < len(uvs); i += 2 {
		v := uvs[i+1]
		if v > 0 {
			v = (1-v)*0.5 + 0.5
		} else {
			v = (1-v)*0.5 - 0.5
		}
		out[i+1] = v
	}
	return out
}
