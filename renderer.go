package trirast

import (
	"log/slog"
	"math"
	"runtime"

	"github.com/gogpu/trirast/internal/parallel"
)

// UpstreamSetupFunc performs the transform/clipping/projection work that
// produces a ProjectedTriangleInput from a draw call. It is an external
// collaborator: the core never projects or clips vertices itself.
type UpstreamSetupFunc func(state *RenderState, vertexBuffer, indexBuffer []float32, constantIdx []uint32) (*ProjectedTriangleInput, error)

// Renderer is the polymorphic entry point to the rasterizer core, in
// either its forward or deferred flavor.
type Renderer interface {
	// SetFrameBuffer recomputes the tile grid for fb's dimensions,
	// (re)allocates tile bins, and clears depth.
	SetFrameBuffer(fb *FrameBuffer) error

	// Clear resets the framebuffer (and, for a deferred renderer, the
	// G-buffer) and the global tile bins.
	Clear(color Vec4, clearColor, clearDepth bool)

	// Draw runs the configured upstream setup stage to produce a
	// ProjectedTriangleInput ready for RenderProjectedBatch.
	Draw(state *RenderState, vertexBuffer, indexBuffer []float32, constantIdx []uint32) (*ProjectedTriangleInput, error)

	// RenderProjectedBatch runs the full tile pipeline over input.
	RenderProjectedBatch(state *RenderState, input *ProjectedTriangleInput) error

	// Finish flushes any deferred writes. No-op in this design.
	Finish() error
}

// baseRenderer holds the state and scheduling infrastructure shared by
// ForwardRenderer and DeferredRenderer.
type baseRenderer struct {
	cores  int
	logger *slog.Logger
	pool   *parallel.WorkerPool
	setup  UpstreamSetupFunc

	fb     *FrameBuffer
	grid   *parallel.TileGrid[TiledTriangle]
	binner *TileBinner
}

func newBaseRenderer(opts ...RendererOption) baseRenderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cores := o.cores
	if cores <= 0 {
		cores = runtime.GOMAXPROCS(0)
	}

	logger := o.logger
	if logger == nil {
		logger = Logger()
	}

	return baseRenderer{
		cores:  cores,
		logger: logger,
		pool:   parallel.NewWorkerPool(cores),
		setup:  o.setup,
	}
}

// SetFrameBuffer implements the grid/bin (re)allocation shared by both
// pipelines; deferred rendering additionally allocates a G-buffer.
func (r *baseRenderer) SetFrameBuffer(fb *FrameBuffer) error {
	if fb == nil {
		return ErrNoFrameBuffer
	}
	r.fb = fb
	fb.ClearDepth(float32(math.Inf(1)))
	r.grid = parallel.NewTileGrid[TiledTriangle](fb.Width(), fb.Height())
	r.binner = NewTileBinner(r.grid, r.cores)
	return nil
}

func (r *baseRenderer) Draw(state *RenderState, vertexBuffer, indexBuffer []float32, constantIdx []uint32) (*ProjectedTriangleInput, error) {
	if r.setup == nil {
		return nil, ErrNoSetupStage
	}
	return r.setup(state, vertexBuffer, indexBuffer, constantIdx)
}

func (r *baseRenderer) Finish() error { return nil }

// bin runs the two-phase tile binning described in §4.2: one BinThread
// task per worker thread, parallel, followed by a serial deterministic
// merge.
func (r *baseRenderer) bin(input *ProjectedTriangleInput) {
	r.binner.Reset()

	numThreads := input.NumThreads()
	work := make([]func(), numThreads)
	for t := 0; t < numThreads; t++ {
		thread := t
		work[thread] = func() {
			r.binner.BinThread(thread, input.TriangleBuffer[thread])
		}
	}
	r.pool.ExecuteAll(work)

	r.binner.Merge()
}

// ForwardRenderer implements the single-pass forward pipeline: rasterize,
// depth-test, shade, and write color directly to the framebuffer.
type ForwardRenderer struct {
	baseRenderer
}

// NewForwardRenderer creates a forward renderer with no framebuffer bound.
// Call SetFrameBuffer before RenderProjectedBatch.
func NewForwardRenderer(opts ...RendererOption) *ForwardRenderer {
	return &ForwardRenderer{baseRenderer: newBaseRenderer(opts...)}
}

// Clear resets the framebuffer's color and/or depth planes as requested
// and empties the global tile bins.
func (r *ForwardRenderer) Clear(color Vec4, clearColor, clearDepth bool) {
	if r.fb != nil {
		if clearColor {
			r.fb.ClearColor(color)
		}
		if clearDepth {
			r.fb.ClearDepth(float32(math.Inf(1)))
		}
	}
	if r.grid != nil {
		r.grid.Reset()
	}
}

// RenderProjectedBatch bins input's triangles into tiles, then processes
// every tile in parallel, shading with state's active UserShader program.
func (r *ForwardRenderer) RenderProjectedBatch(state *RenderState, input *ProjectedTriangleInput) error {
	if r.fb == nil {
		return ErrNoFrameBuffer
	}
	if _, ok := state.ActiveShader(); !ok {
		return ErrNoShader
	}

	r.bin(input)

	tileCount := r.grid.TileCount()
	work := make([]func(), tileCount)
	for i := 0; i < tileCount; i++ {
		tile := r.grid.AtIndex(i)
		tx, ty := tile.X, tile.Y
		work[i] = func() {
			if err := ProcessForwardTile(r.grid, tx, ty, input, state, r.fb); err != nil {
				r.logger.Error("forward tile processing failed", "tileX", tx, "tileY", ty, "error", err)
			}
		}
	}
	r.pool.ExecuteAll(work)

	return nil
}

// DeferredRenderer implements the two-pass deferred pipeline: a geometry
// pass into a G-buffer, followed by a screen-space lighting pass.
type DeferredRenderer struct {
	baseRenderer
	gbuf *GBuffer
}

// NewDeferredRenderer creates a deferred renderer with no framebuffer
// bound. Call SetFrameBuffer before RenderProjectedBatch.
func NewDeferredRenderer(opts ...RendererOption) *DeferredRenderer {
	return &DeferredRenderer{baseRenderer: newBaseRenderer(opts...)}
}

// SetFrameBuffer allocates the tile grid and a G-buffer sized to fb.
func (r *DeferredRenderer) SetFrameBuffer(fb *FrameBuffer) error {
	if err := r.baseRenderer.SetFrameBuffer(fb); err != nil {
		return err
	}
	r.gbuf = NewGBuffer(fb.Width(), fb.Height())
	return nil
}

// Clear resets the framebuffer, the G-buffer, and the global tile bins.
func (r *DeferredRenderer) Clear(color Vec4, clearColor, clearDepth bool) {
	if r.fb != nil {
		if clearColor {
			r.fb.ClearColor(color)
		}
		if clearDepth {
			r.fb.ClearDepth(float32(math.Inf(1)))
		}
	}
	if r.gbuf != nil {
		r.gbuf.Clear()
	}
	if r.grid != nil {
		r.grid.Reset()
	}
}

// RenderProjectedBatch bins input's triangles, runs the geometry pass into
// the G-buffer, and -- only if state carries at least one light -- runs
// the lighting pass over the same tiles into the framebuffer.
//
// The active shader slot is swapped to GeometryPassShader and restored
// before the lighting pass begins, and swapped to LightingPassShader with
// its restore deferred, so a fatal dimension mismatch or an empty light
// list never leaves the render state holding a stale program.
func (r *DeferredRenderer) RenderProjectedBatch(state *RenderState, input *ProjectedTriangleInput) error {
	if r.fb == nil || r.gbuf == nil {
		return ErrNoFrameBuffer
	}
	if r.fb.Width() != r.gbuf.Width() || r.fb.Height() != r.gbuf.Height() {
		return ErrDimensionMismatch
	}

	r.bin(input)

	tileCount := r.grid.TileCount()

	func() {
		restore := state.SwapShader(FragmentProgram{Kind: GeometryPassShader})
		defer restore()

		work := make([]func(), tileCount)
		for i := 0; i < tileCount; i++ {
			tile := r.grid.AtIndex(i)
			tx, ty := tile.X, tile.Y
			work[i] = func() {
				if err := ProcessGeometryTile(r.grid, tx, ty, input, state, r.gbuf); err != nil {
					r.logger.Error("geometry tile processing failed", "tileX", tx, "tileY", ty, "error", err)
				}
			}
		}
		r.pool.ExecuteAll(work)
	}()

	if len(state.Lights) == 0 {
		return nil
	}

	restore := state.SwapShader(FragmentProgram{Kind: LightingPassShader})
	defer restore()

	work := make([]func(), tileCount)
	for i := 0; i < tileCount; i++ {
		tile := r.grid.AtIndex(i)
		tx, ty := tile.X, tile.Y
		work[i] = func() {
			if err := ProcessLightingTile(r.grid, tx, ty, state, r.gbuf, r.fb); err != nil {
				r.logger.Error("lighting tile processing failed", "tileX", tx, "tileY", ty, "error", err)
			}
		}
	}
	r.pool.ExecuteAll(work)

	return nil
}

var (
	_ Renderer = (*ForwardRenderer)(nil)
	_ Renderer = (*DeferredRenderer)(nil)
)
