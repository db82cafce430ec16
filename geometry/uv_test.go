package geometry

import "testing"

func TestRemapSplitAtlas(t *testing.T) {
	tests := []struct {
		name string
		v    float32
		want float32
	}{
		{"top edge", 1, 0.5},
		{"middle", 0.5, 0.75},
		{"quarter", 0.25, 0.875},
		// Bottom edge takes the second branch and stays unclamped.
		{"bottom edge", 0, 0},
		{"below range", -1, 0.5},
		{"far below range", -2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RemapSplitAtlas([]float32{0.3, tt.v})
			if out[0] != 0.3 {
				t.Errorf("u changed: %f", out[0])
			}
			if !approx(out[1], tt.want) {
				t.Errorf("v'(%f) = %f, want %f", tt.v, out[1], tt.want)
			}
		})
	}
}

func TestRemapSplitAtlasPure(t *testing.T) {
	src := NewPlane(2, 1.16, 16, 16).UVs
	orig := append([]float32(nil), src...)

	a := RemapSplitAtlas(src)
	b := RemapSplitAtlas(src)

	for i := range src {
		if src[i] != orig[i] {
			t.Fatalf("input modified at %d", i)
		}
		if a[i] != b[i] {
			t.Fatalf("remap not deterministic at %d: %f vs %f", i, a[i], b[i])
		}
	}
}

func TestRemapSplitAtlasRange(t *testing.T) {
	out := RemapSplitAtlas(NewPlane(2, 1.16, 32, 32).UVs)
	for i := 1; i < len(out); i += 2 {
		v := out[i]
		if v != 0 && (v < 0.5 || v > 1) {
			t.Fatalf("v' = %f outside [0.5, 1] and not the bottom-edge 0", v)
		}
	}
}

func TestRemapSplitAtlasOddLength(t *testing.T) {
	out := RemapSplitAtlas([]float32{0.1, 1, 0.7})
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	if out[0] != 0.1 {
		t.Errorf("u = %f, want 0.1", out[0])
	}
	if out[1] != 0.5 {
		t.Errorf("v' = %f, want 0.5", out[1])
	}
	if out[2] != 0.7 {
		t.Errorf("trailing value = %f, want 0.7 copied through", out[2])
	}
}
