// Package geometry builds the bank-note plane meshes and their atlas UVs.
package geometry

import (
	"errors"
	"fmt"
)

// ErrFinalized is returned when a finalized attribute is modified.
var ErrFinalized = errors.New("geometry: attribute finalized")

// Plane is a flat grid in the XY plane facing +Z, centred at the origin.
// Attributes are tightly packed: 3 floats per position/normal, 2 per UV.
type Plane struct {
	Width, Height                 float32
	WidthSegments, HeightSegments int

	Positions []float32
	Normals   []float32
	UVs       []float32
	Indices   []uint32

	finalized bool
}

// NewPlane builds a grid with (ws+1)*(hs+1) vertices and two triangles per cell.
// Segment counts below 1 are clamped to 1.
func NewPlane(width, height float32, widthSegments, heightSegments int) *Plane {
	if widthSegments < 1 {
		widthSegments = 1
	}
	if heightSegments < 1 {
		heightSegments = 1
	}

	gridX1 := widthSegments + 1
	gridY1 := heightSegments + 1
	segW := width / float32(widthSegments)
	segH := height / float32(heightSegments)
	halfW := width / 2
	halfH := height / 2

	n := gridX1 * gridY1
	p := &Plane{
		Width:          width,
		Height:         height,
		WidthSegments:  widthSegments,
		HeightSegments: heightSegments,
		Positions:      make([]float32, 0, n*3),
		Normals:        make([]float32, 0, n*3),
		UVs:            make([]float32, 0, n*2),
		Indices:        make([]uint32, 0, widthSegments*heightSegments*6),
	}

	for iy := 0; iy < gridY1; iy++ {
		y := float32(iy)*segH - halfH
		for ix := 0; ix < gridX1; ix++ {
			x := float32(ix)*segW - halfW
			p.Positions = append(p.Positions, x, -y, 0)
			p.Normals = append(p.Normals, 0, 0, 1)
			p.UVs = append(p.UVs,
				float32(ix)/float32(widthSegments),
				1-float32(iy)/float32(heightSegments),
			)
		}
	}

	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := uint32(ix + gridX1*iy)
			b := uint32(ix + gridX1*(iy+1))
			c := uint32(ix + 1 + gridX1*(iy+1))
			d := uint32(ix + 1 + gridX1*iy)
			p.Indices = append(p.Indices, a, b, d, b, c, d)
		}
	}

	return p
}

// VertexCount returns the number of grid vertices.
func (p *Plane) VertexCount() int {
	return len(p.Positions) / 3
}

// TriangleCount returns the number of triangles in the grid.
func (p *Plane) TriangleCount() int {
	return len(p.Indices) / 3
}

// Finalized reports whether the UV attribute is frozen.
func (p *Plane) Finalized() bool {
	return p.finalized
}

// Finalize freezes the UV attribute. It is safe to call more than once.
func (p *Plane) Finalize() {
	p.finalized = true
}

// RemapUVs replaces the UV attribute with its split-atlas remap and finalizes
// the plane. A second call fails with ErrFinalized.
func (p *Plane) RemapUVs() error {
	if p.finalized {
		return fmt.Errorf("remapping %dx%d plane: %w", p.WidthSegments, p.HeightSegments, ErrFinalized)
	}
	p.UVs = RemapSplitAtlas(p.UVs)
	p.Finalize()
	return nil
}

// Mesh is a non-indexed triangle list ready for upload.
type Mesh struct {
	Positions []float32
	Normals   []float32
	UVs       []float32
}

// VertexCount returns the number of vertices in the list.
func (m Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// Triangles expands the indexed grid into a flat triangle list.
// The high tier has more vertices than a 16-bit index buffer can address.
func (p *Plane) Triangles() Mesh {
	n := len(p.Indices)
	m := Mesh{
		Positions: make([]float32, 0, n*3),
		Normals:   make([]float32, 0, n*3),
		UVs:       make([]float32, 0, n*2),
	}
	for _, idx := range p.Indices {
		i := int(idx)
		m.Positions = append(m.Positions, p.Positions[i*3:i*3+3]...)
		m.Normals = append(m.Normals, p.Normals[i*3:i*3+3]...)
		m.UVs = append(m.UVs, p.UVs[i*2:i*2+2]...)
	}
	return m
}
