package trirast

import "errors"

// Configuration errors. These cause a tile task (or an entire frame) to
// return without side effects rather than panicking; the core is
// compute-only and never retries internally.
var (
	// ErrNoFrameBuffer is returned by SetFrameBuffer when given a nil
	// framebuffer, and by RenderProjectedBatch when called before
	// SetFrameBuffer has been given a non-nil framebuffer.
	ErrNoFrameBuffer = errors.New("trirast: framebuffer not set")

	// ErrNoShader is returned when a tile task begins with no fragment
	// program active in the render state.
	ErrNoShader = errors.New("trirast: no active shader")

	// ErrDimensionMismatch is returned when the framebuffer and G-buffer
	// dimensions disagree; this aborts the frame before any tile task runs.
	ErrDimensionMismatch = errors.New("trirast: framebuffer and G-buffer dimensions differ")

	// ErrNoSetupStage is returned by Draw when a renderer was not given an
	// UpstreamSetupFunc. Draw's projection and clipping work is an external
	// collaborator by design; the core only consumes its output.
	ErrNoSetupStage = errors.New("trirast: no upstream setup stage configured")
)
