package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/cashfall/field"
	"github.com/pthm-cable/cashfall/lod"
	"github.com/pthm-cable/cashfall/shader"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}

	if cfg.Field.Count != 100 || cfg.Field.Depth != 80 || cfg.Field.Speed != 1 {
		t.Errorf("field = %+v", cfg.Field)
	}
	if cfg.Derived.Thresholds != lod.DefaultThresholds {
		t.Errorf("thresholds = %v, want %v", cfg.Derived.Thresholds, lod.DefaultThresholds)
	}
	if cfg.LOD.Segments != [3]int{256, 128, 64} {
		t.Errorf("segments = %v", cfg.LOD.Segments)
	}
	if cfg.Shader != shader.DefaultConfig() {
		t.Errorf("shader = %+v, want %+v", cfg.Shader, shader.DefaultConfig())
	}
	if cfg.Camera.FovY != 40 || cfg.Camera.Position != [3]float64{0, 0, 5} {
		t.Errorf("camera = %+v", cfg.Camera)
	}
	if cfg.Derived.Easing(0.5) != field.QuarterCircle(0.5) {
		t.Error("default easing is not quarter circle")
	}
	if len(cfg.Assets.Notes) != 4 {
		t.Errorf("expected 4 note textures, got %d", len(cfg.Assets.Notes))
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "field:\n  count: 12\n  easing: linear\nshader:\n  wireframe: true\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Field.Count != 12 {
		t.Errorf("count = %d, want 12", cfg.Field.Count)
	}
	// Untouched fields keep their defaults.
	if cfg.Field.Depth != 80 {
		t.Errorf("depth = %f, want 80", cfg.Field.Depth)
	}
	if !cfg.Shader.Wireframe || cfg.Shader.BigFrequency != 2.1 {
		t.Errorf("shader = %+v", cfg.Shader)
	}
	if cfg.Derived.Easing(0.25) != 0.25 {
		t.Error("expected linear easing")
	}

	p := cfg.FieldParams()
	if p.Count != 12 || p.Depth != 80 || p.Easing == nil {
		t.Errorf("params = %+v", p)
	}
}

func TestLoadRejectsBadThresholds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("lod:\n  distances: [0, 80, 65]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "lod.distances") {
		t.Errorf("err = %v, want lod.distances error", err)
	}
}

func TestLoadToleratesBadFieldValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("field:\n  count: -4\n  depth: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err != nil {
		t.Errorf("bad field values should load: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Field.Count = 7

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load written config: %v", err)
	}
	if back.Field.Count != 7 {
		t.Errorf("count = %d, want 7", back.Field.Count)
	}
}

func TestCfgAfterInit(t *testing.T) {
	MustInit("")
	if Cfg().Screen.Width != 1280 {
		t.Errorf("width = %d", Cfg().Screen.Width)
	}
}
