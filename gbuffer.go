package trirast

// GBuffer holds the intermediate per-pixel surface attributes written by a
// geometry pass and consumed by a lighting pass. Every plane is a flat
// row-major slice of length width*height, indexed the same way as
// FrameBuffer.
type GBuffer struct {
	width  int
	height int

	position []Vec3
	normal   []Vec3
	albedo   []Vec4
	depth    []float32
}

// NewGBuffer allocates a GBuffer sized width x height and clears it.
func NewGBuffer(width, height int) *GBuffer {
	g := &GBuffer{
		width:    width,
		height:   height,
		position: make([]Vec3, width*height),
		normal:   make([]Vec3, width*height),
		albedo:   make([]Vec4, width*height),
		depth:    make([]float32, width*height),
	}
	g.Clear()
	return g
}

// Width returns the G-buffer's pixel width.
func (g *GBuffer) Width() int { return g.width }

// Height returns the G-buffer's pixel height.
func (g *GBuffer) Height() int { return g.height }

// Clear resets every plane: position and normal to zero, albedo to
// transparent black, and depth to 1.0 (far).
func (g *GBuffer) Clear() {
	for i := range g.depth {
		g.position[i] = Vec3{}
		g.normal[i] = Vec3{}
		g.albedo[i] = Vec4{}
		g.depth[i] = 1.0
	}
}

func (g *GBuffer) index(x, y int) int {
	return y*g.width + x
}

// GetPosition returns the world-space position stored at pixel (x, y).
func (g *GBuffer) GetPosition(x, y int) Vec3 { return g.position[g.index(x, y)] }

// SetPosition stores a world-space position at pixel (x, y).
func (g *GBuffer) SetPosition(x, y int, v Vec3) { g.position[g.index(x, y)] = v }

// GetNormal returns the world-space normal stored at pixel (x, y).
func (g *GBuffer) GetNormal(x, y int) Vec3 { return g.normal[g.index(x, y)] }

// SetNormal stores a world-space normal at pixel (x, y).
func (g *GBuffer) SetNormal(x, y int, v Vec3) { g.normal[g.index(x, y)] = v }

// GetAlbedo returns the surface albedo stored at pixel (x, y).
func (g *GBuffer) GetAlbedo(x, y int) Vec4 { return g.albedo[g.index(x, y)] }

// SetAlbedo stores a surface albedo at pixel (x, y).
func (g *GBuffer) SetAlbedo(x, y int, v Vec4) { g.albedo[g.index(x, y)] = v }

// GetZ returns the depth value stored at pixel (x, y).
func (g *GBuffer) GetZ(x, y int) float32 { return g.depth[g.index(x, y)] }

// SetZ stores a depth value at pixel (x, y).
func (g *GBuffer) SetZ(x, y int, z float32) { g.depth[g.index(x, y)] = z }

// Empty reports whether pixel (x, y) was never written by a geometry pass
// (its depth is still at or beyond the far clear value).
func (g *GBuffer) Empty(x, y int) bool {
	return g.GetZ(x, y) >= emptyGBufferDepth
}
