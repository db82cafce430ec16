package shader

import "log/slog"

// Program is a compiled shader program with named float uniforms.
type Program interface {
	// SetFloat writes a uniform. It reports false when the program has no
	// uniform with that name.
	SetFloat(name string, v float32) bool
}

// Material is what the bridge writes to: an optional compiled program plus
// material-level flags.
type Material struct {
	Program   Program
	Wireframe bool
}

// Attached reports whether a program has been compiled and attached.
func (m *Material) Attached() bool {
	return m != nil && m.Program != nil
}

// Bridge pushes a Config into a Material whenever the config version changes.
// Every push writes all uniforms; there is no per-field diffing.
type Bridge struct {
	pushed  uint64
	hasPush bool
	pushes  int
}

// NewBridge creates a bridge that has not pushed anything yet.
func NewBridge() *Bridge {
	return &Bridge{}
}

// Sync pushes cfg into m if version differs from the last successful push.
// With no program attached it does nothing and leaves the version unrecorded,
// so the next call retries. It reports whether a push happened.
func (b *Bridge) Sync(m *Material, cfg Config, version uint64) bool {
	if b.hasPush && b.pushed == version {
		return false
	}
	if !m.Attached() {
		return false
	}

	for _, u := range cfg.Uniforms() {
		if !m.Program.SetFloat(u.Name, u.Value) {
			slog.Debug("shader uniform missing", "uniform", u.Name)
		}
	}
	m.Wireframe = cfg.Wireframe

	b.pushed = version
	b.hasPush = true
	b.pushes++
	return true
}

// Invalidate forces the next Sync to push, e.g. after the program is recompiled.
func (b *Bridge) Invalidate() {
	b.hasPush = false
}

// Pushes returns how many full pushes have happened.
func (b *Bridge) Pushes() int {
	return b.pushes
}
