package renderer

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/cashfall/shader"
)

// ErrShaderCompile is returned when the wave shader fails to compile or link.
var ErrShaderCompile = errors.New("renderer: wave shader failed to compile")

// WaveProgram is the compiled wave shader. It satisfies shader.Program.
type WaveProgram struct {
	shader rl.Shader
	locs   map[string]int32
}

// LoadWaveProgram compiles the embedded wave shader.
// Must be called after the raylib window is created.
func LoadWaveProgram() (*WaveProgram, error) {
	s := rl.LoadShaderFromMemory(shader.VertexSource, shader.FragmentSource)
	if s.ID == 0 {
		return nil, ErrShaderCompile
	}
	return &WaveProgram{shader: s, locs: make(map[string]int32)}, nil
}

// location looks up a uniform once and caches the result, including misses.
func (p *WaveProgram) location(name string) int32 {
	loc, ok := p.locs[name]
	if !ok {
		loc = rl.GetShaderLocation(p.shader, name)
		p.locs[name] = loc
	}
	return loc
}

// SetFloat writes a float uniform. Returns false if the program has no such uniform.
func (p *WaveProgram) SetFloat(name string, v float32) bool {
	loc := p.location(name)
	if loc < 0 {
		return false
	}
	rl.SetShaderValue(p.shader, loc, []float32{v}, rl.ShaderUniformFloat)
	return true
}

// SetVec3 writes a vec3 uniform.
func (p *WaveProgram) SetVec3(name string, x, y, z float32) bool {
	loc := p.location(name)
	if loc < 0 {
		return false
	}
	rl.SetShaderValue(p.shader, loc, []float32{x, y, z}, rl.ShaderUniformVec3)
	return true
}

// Shader returns the underlying raylib shader.
func (p *WaveProgram) Shader() rl.Shader {
	return p.shader
}

// Unload frees the shader.
func (p *WaveProgram) Unload() {
	if p == nil || p.shader.ID == 0 {
		return
	}
	rl.UnloadShader(p.shader)
	p.shader = rl.Shader{}
	p.locs = make(map[string]int32)
}
