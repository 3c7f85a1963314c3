package trirast

import "github.com/gogpu/trirast/internal/wide"

// FragmentProgramKind selects which of a RenderState's fixed-function or
// user-supplied shading routines a tile task runs.
type FragmentProgramKind int

const (
	// GeometryPassShader writes interpolated surface attributes into the
	// G-buffer; see §4.4 of the deferred pipeline.
	GeometryPassShader FragmentProgramKind = iota
	// LightingPassShader reads the G-buffer and accumulates lights into
	// the framebuffer; see §4.5.
	LightingPassShader
	// UserShader invokes a caller-supplied ShadeFunc, used by the forward
	// pipeline (and by any deferred pass a caller wants to override).
	UserShader
)

// ShadeFunc is the user-defined fragment shader signature: given
// VertexOutputSlots vertex-output values in SoA order for one quad (each
// a 4-wide lane) and the triangle's constant-buffer id, fill output with
// RGBA across the 4 samples in SoA layout: R0..R3, G0..G3, B0..B3, A0..A3.
type ShadeFunc func(output *[16]float32, input *[VertexOutputSlots]wide.F32x4, constantId uint32)

// FragmentProgram is a tagged union of the shading routines a render state
// can hold active at one time. Kind selects which field is meaningful;
// only UserShader carries a payload, since the geometry and lighting
// passes are fixed-function.
type FragmentProgram struct {
	Kind  FragmentProgramKind
	Shade ShadeFunc
}

// RenderState carries the renderer's currently active fragment program and
// the lights visible to the current frame. A single RenderState is shared
// read-only across all tile tasks of one pass; SwapShader must only be
// called from the orchestrator between passes, never concurrently from
// tile tasks.
type RenderState struct {
	active *FragmentProgram

	Lights []Light

	// CameraPosition, SpecularColor, and Shininess parameterize the
	// deferred lighting pass's Blinn-Phong term. Shininess is expected to
	// be a positive integer value; see approxPow.
	CameraPosition Vec3
	SpecularColor  Vec3
	Shininess      float32
}

// SwapShader installs program as the active fragment program and returns a
// restore function that puts the previous program back. Callers must defer
// the restore immediately after swapping so every exit path -- including
// an early return on a configuration error -- leaves the render state as
// it found it.
func (s *RenderState) SwapShader(program FragmentProgram) (restore func()) {
	prev := s.active
	p := program
	s.active = &p
	return func() { s.active = prev }
}

// ActiveShader returns the currently installed fragment program, or false
// if none has been swapped in.
func (s *RenderState) ActiveShader() (*FragmentProgram, bool) {
	return s.active, s.active != nil
}
