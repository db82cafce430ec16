// Package config provides configuration loading and access for the note field.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/cashfall/field"
	"github.com/pthm-cable/cashfall/geometry"
	"github.com/pthm-cable/cashfall/lod"
	"github.com/pthm-cable/cashfall/shader"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Camera    CameraConfig    `yaml:"camera"`
	Field     FieldConfig     `yaml:"field"`
	LOD       LODConfig       `yaml:"lod"`
	Shader    shader.Config   `yaml:"shader"`
	Light     LightConfig     `yaml:"light"`
	Assets    AssetsConfig    `yaml:"assets"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width      int      `yaml:"width"`
	Height     int      `yaml:"height"`
	TargetFPS  int      `yaml:"target_fps"`
	Background [3]uint8 `yaml:"background"`
}

// CameraConfig holds the perspective camera setup.
type CameraConfig struct {
	Position   [3]float64 `yaml:"position"`
	Target     [3]float64 `yaml:"target"`
	FovY       float64    `yaml:"fov_y"`       // degrees
	OrbitSpeed float64    `yaml:"orbit_speed"` // radians per pixel of mouse drag
	ZoomStep   float64    `yaml:"zoom_step"`   // radius factor per wheel notch
}

// FieldConfig holds note field parameters.
type FieldConfig struct {
	Count  int     `yaml:"count"`
	Depth  float64 `yaml:"depth"`
	Speed  float64 `yaml:"speed"`
	Easing string  `yaml:"easing"` // quarter_circle, linear, cubic
	Seed   int64   `yaml:"seed"`   // 0 = time-based
}

// LODConfig holds mesh tier parameters.
type LODConfig struct {
	Distances  [geometry.NumTiers]float64 `yaml:"distances"`
	Hysteresis float64                    `yaml:"hysteresis"` // fraction of a boundary, 0 = off
	Segments   [geometry.NumTiers]int     `yaml:"segments"`   // grid resolution per tier
	NoteWidth  float32                    `yaml:"note_width"`
	NoteHeight float32                    `yaml:"note_height"`
}

// LightConfig holds the single spot light.
type LightConfig struct {
	Position  [3]float32 `yaml:"position"`
	Color     [3]float32 `yaml:"color"`
	Intensity float32    `yaml:"intensity"`
}

// AssetsConfig holds texture paths.
type AssetsConfig struct {
	Notes []string `yaml:"notes"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow  int `yaml:"perf_window"`  // frames in the rolling perf window
	StatsWindow int `yaml:"stats_window"` // frames per CSV row
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Easing     field.Easing
	Thresholds lod.Thresholds
	Aspect     float64
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Validate rejects settings that would break rendering. Field counts and
// depths are not checked; the field degrades on bad values instead.
func (c *Config) Validate() error {
	if err := lod.Thresholds(c.LOD.Distances).Validate(); err != nil {
		return fmt.Errorf("lod.distances: %w", err)
	}
	if c.LOD.Hysteresis < 0 || c.LOD.Hysteresis >= 1 {
		return fmt.Errorf("lod.hysteresis must be in [0, 1), got %v", c.LOD.Hysteresis)
	}
	for i, s := range c.LOD.Segments {
		if s < 1 {
			return fmt.Errorf("lod.segments[%d] must be >= 1, got %d", i, s)
		}
	}
	if c.Camera.ZoomStep <= 0 {
		return fmt.Errorf("camera.zoom_step must be positive, got %v", c.Camera.ZoomStep)
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.Easing, _ = field.EasingByName(c.Field.Easing)
	c.Derived.Thresholds = lod.Thresholds(c.LOD.Distances)
	c.Derived.Aspect = float64(c.Screen.Width) / float64(c.Screen.Height)
}

// FieldParams returns the spawn parameters for the note field.
func (c *Config) FieldParams() field.Params {
	return field.Params{
		Count:  c.Field.Count,
		Depth:  c.Field.Depth,
		Speed:  c.Field.Speed,
		Easing: c.Derived.Easing,
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
