// Package trirast provides a tile-based software rasterizer for indexed
// triangle meshes with programmable fragment shading.
//
// # Overview
//
// trirast renders batches of pre-projected triangles using a fixed-point
// edge-function rasterizer with quad-fragment (2x2 pixel) coverage testing
// and the top-left fill rule. Work is distributed across a fixed pool of
// worker goroutines by binning triangles into screen-space tiles, then
// processing each tile independently and in parallel.
//
// Two pipelines are provided:
//
//   - ForwardRenderer: single pass, depth test + shading fused per tile.
//   - DeferredRenderer: two passes through a G-buffer (position, normal,
//     albedo, depth), followed by a screen-space lighting pass.
//
// # Quick Start
//
//	import "github.com/gogpu/trirast"
//
//	r := trirast.NewForwardRenderer(trirast.WithCores(4))
//	fb := trirast.NewFrameBuffer(256, 256)
//	r.SetFrameBuffer(fb)
//	r.Clear(trirast.Vec4{}, true, true)
//	r.RenderProjectedBatch(state, input)
//
// # Scope
//
// trirast consumes already-projected triangles (integer screen-space
// coordinates in 28.4 fixed point, a precomputed depth plane, and
// precomputed edge coefficients); it does not perform vertex transforms,
// perspective projection, model loading, or image I/O. Those are treated
// as external collaborators that produce a ProjectedTriangleInput.
//
// # Architecture
//
//   - Public API: Renderer, FrameBuffer, GBuffer, ProjectedTriangle, Light
//   - internal/wide: 4-wide SIMD-style lane types for the coverage test
//   - internal/raster: quad stepping over a caller-supplied coverage test
//   - internal/parallel: tile grid and worker pool
//
// The edge-function coverage test (TriangleSIMD) and the triangle binning
// (TileBinner) live in this package.
//
// # Coordinate System
//
// Screen-space coordinates use 28.4 fixed point (4 fractional bits); the
// sub-pixel center of pixel (x, y) is (x*16+8, y*16+8). Origin (0,0) is at
// the top-left of the framebuffer, Y increases downward.
package trirast
