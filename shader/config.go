// Package shader holds the wave-displacement shader sources, its parameter set,
// and the bridge that pushes parameters into a compiled program.
package shader

// Config is the named parameter set of the wave shader.
// Values are compared by value; treat a Config as an immutable snapshot.
type Config struct {
	BigElevation   float32 `yaml:"big_elevation"`
	BigFrequency   float32 `yaml:"big_frequency"`
	BigSpeed       float32 `yaml:"big_speed"`
	NoiseRangeDown float32 `yaml:"noise_range_down"`
	NoiseRangeUp   float32 `yaml:"noise_range_up"`
	Wireframe      bool    `yaml:"wireframe"`
}

// DefaultConfig returns the stock wave parameters.
func DefaultConfig() Config {
	return Config{
		BigElevation:   0.18,
		BigFrequency:   2.1,
		BigSpeed:       0.2,
		NoiseRangeDown: -1.3,
		NoiseRangeUp:   1.3,
	}
}

// Uniform names in the wave program.
const (
	UniformBigWaveElevation = "uBigWaveElevation"
	UniformBigWaveFrequency = "uBigWaveFrequency"
	UniformBigWaveSpeed     = "uBigWaveSpeed"
	UniformNoiseRangeDown   = "uNoiseRangeDown"
	UniformNoiseRangeUp     = "uNoiseRangeUp"
	UniformTime             = "uTime"
)

// UniformValue pairs a uniform name with its value.
type UniformValue struct {
	Name  string
	Value float32
}

// Uniforms returns the config fields mapped to their uniform names, in a fixed order.
// Wireframe is a material flag and is not included.
func (c Config) Uniforms() [5]UniformValue {
	return [5]UniformValue{
		{UniformBigWaveElevation, c.BigElevation},
		{UniformBigWaveFrequency, c.BigFrequency},
		{UniformBigWaveSpeed, c.BigSpeed},
		{UniformNoiseRangeDown, c.NoiseRangeDown},
		{UniformNoiseRangeUp, c.NoiseRangeUp},
	}
}

// Store holds the current Config and a version that changes with it.
type Store struct {
	cfg     Config
	version uint64
}

// NewStore creates a store at version 1 so a fresh Bridge always pushes once.
func NewStore(cfg Config) *Store {
	return &Store{cfg: cfg, version: 1}
}

// Get returns the current config and its version.
func (s *Store) Get() (Config, uint64) {
	return s.cfg, s.version
}

// Set replaces the config. The version only advances when the value differs.
func (s *Store) Set(cfg Config) bool {
	if cfg == s.cfg {
		return false
	}
	s.cfg = cfg
	s.version++
	return true
}
