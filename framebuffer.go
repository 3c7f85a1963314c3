package trirast

import "math"

// FrameBuffer holds the color and depth planes that a render pass writes
// into. Both planes are flat row-major slices of length width*height; pixel
// (x, y) is at index y*width + x.
type FrameBuffer struct {
	width  int
	height int
	color  []Vec4
	depth  []float32
}

// NewFrameBuffer allocates a FrameBuffer sized width x height and clears it
// to the default color and depth values.
func NewFrameBuffer(width, height int) *FrameBuffer {
	fb := &FrameBuffer{
		width:  width,
		height: height,
		color:  make([]Vec4, width*height),
		depth:  make([]float32, width*height),
	}
	fb.Clear(Vec4{}, float32(math.Inf(1)))
	return fb
}

// Width returns the framebuffer's pixel width.
func (fb *FrameBuffer) Width() int { return fb.width }

// Height returns the framebuffer's pixel height.
func (fb *FrameBuffer) Height() int { return fb.height }

// Clear resets every pixel's color to clearColor and depth to clearDepth.
// clearDepth is conventionally +Inf, since the depth test keeps the sample
// closer to the viewer (smaller Z) and +Inf never passes as "closer" by
// accident.
func (fb *FrameBuffer) Clear(clearColor Vec4, clearDepth float32) {
	for i := range fb.color {
		fb.color[i] = clearColor
		fb.depth[i] = clearDepth
	}
}

func (fb *FrameBuffer) index(x, y int) int {
	return y*fb.width + x
}

// ClearColor resets every pixel's color to c, leaving depth untouched.
func (fb *FrameBuffer) ClearColor(c Vec4) {
	for i := range fb.color {
		fb.color[i] = c
	}
}

// ClearDepth resets every pixel's depth to d, leaving color untouched.
func (fb *FrameBuffer) ClearDepth(d float32) {
	for i := range fb.depth {
		fb.depth[i] = d
	}
}

// GetZ returns the depth value stored at pixel (x, y).
func (fb *FrameBuffer) GetZ(x, y int) float32 {
	return fb.depth[fb.index(x, y)]
}

// SetZ stores a depth value at pixel (x, y).
func (fb *FrameBuffer) SetZ(x, y int, z float32) {
	fb.depth[fb.index(x, y)] = z
}

// SetPixel stores a color at pixel (x, y).
func (fb *FrameBuffer) SetPixel(x, y int, c Vec4) {
	fb.color[fb.index(x, y)] = c
}

// GetPixel returns the color stored at pixel (x, y).
func (fb *FrameBuffer) GetPixel(x, y int) Vec4 {
	return fb.color[fb.index(x, y)]
}
