package trirast

import (
	"github.com/gogpu/trirast/internal/parallel"
	"github.com/gogpu/trirast/internal/raster"
	"github.com/gogpu/trirast/internal/wide"
)

// ProcessGeometryTile runs the deferred pipeline's geometry pass (Pass A)
// over tile (tx, ty): identical to ProcessForwardTile through the depth
// test and depth write, except surviving samples write interpolated
// position, normal, and albedo into gbuf instead of shading a final color
// into a framebuffer.
func ProcessGeometryTile(grid *parallel.TileGrid[TiledTriangle], tx, ty int, input *ProjectedTriangleInput, state *RenderState, gbuf *GBuffer) error {
	tile := grid.At(tx, ty)
	if tile == nil {
		return nil
	}

	program, ok := state.ActiveShader()
	if !ok || program.Kind != GeometryPassShader {
		return ErrNoShader
	}

	regionX, regionY, regionW, regionH := grid.PixelRect(tx, ty)

	for i := range tile.Queue {
		tt := &tile.Queue[i]
		simd := LoadTriangleSIMD(&tt.Triangle)

		minXf, minYf, maxXf, maxYf := tt.Triangle.BoundingBox()
		minX, minY := FixedToPixel(minXf), FixedToPixel(minYf)
		maxX, maxY := FixedToPixel(maxXf), FixedToPixel(maxYf)

		raster.WalkQuads(quadMaskTester{&simd}, minX, minY, maxX, maxY,
			int32(regionX), int32(regionY), int32(regionW), int32(regionH),
			func(qx, qy int32, trivialAccept bool) {
				shadeGeometryQuad(&simd, tt, input, gbuf, qx, qy)
			})
	}

	return nil
}

func shadeGeometryQuad(simd *TriangleSIMD, tt *TiledTriangle, input *ProjectedTriangleInput, gbuf *GBuffer, qx, qy int32) {
	mask, e0, e1, e2 := simd.TestQuadFragment(qx, qy)
	if mask == 0 {
		return
	}

	z := simd.GetZ(qx, qy)

	var survive [4]bool
	anySurvive := false
	for lane := 0; lane < 4; lane++ {
		if mask&(1<<uint(lane)) == 0 {
			continue
		}
		px, py := lanePixel(qx, qy, lane)
		if px < 0 || px >= gbuf.Width() || py < 0 || py >= gbuf.Height() {
			continue
		}
		if z[lane] < gbuf.GetZ(px, py) {
			survive[lane] = true
			anySurvive = true
		}
	}
	if !anySurvive {
		return
	}

	alpha, beta, gamma := simd.GetCoordinates(e0, e1, e2)

	var vertexOut [VertexOutputSlots]wide.F32x4
	if !InterpolateVertexOutput(&vertexOut, beta, gamma, alpha, uint32(tt.SourceTriIndex),
		input.VertexOutputBuffer[tt.SourceThread], input.VertexOutputSize,
		input.IndexOutputBuffer[tt.SourceThread]) {
		return
	}

	for lane := 0; lane < 4; lane++ {
		if !survive[lane] {
			continue
		}
		px, py := lanePixel(qx, qy, lane)
		ShadeGeometryLane(gbuf, px, py, &vertexOut, lane, z[lane])
	}
}

// ProcessLightingTile runs the deferred pipeline's lighting pass (Pass B)
// over tile (tx, ty): for every pixel in the tile's rectangle with a
// written G-buffer sample, accumulate the active lights and write the
// result into fb.
func ProcessLightingTile(grid *parallel.TileGrid[TiledTriangle], tx, ty int, state *RenderState, gbuf *GBuffer, fb *FrameBuffer) error {
	if grid.At(tx, ty) == nil {
		return nil
	}

	program, ok := state.ActiveShader()
	if !ok || program.Kind != LightingPassShader {
		return ErrNoShader
	}

	regionX, regionY, regionW, regionH := grid.PixelRect(tx, ty)

	for py := regionY; py < regionY+regionH; py++ {
		for px := regionX; px < regionX+regionW; px++ {
			if gbuf.GetZ(px, py) >= emptyGBufferDepth {
				continue
			}
			position := gbuf.GetPosition(px, py)
			normal := gbuf.GetNormal(px, py)
			albedo := gbuf.GetAlbedo(px, py)

			color := ShadeDeferredPixel(position, normal, albedo, state.Lights, state.CameraPosition, state.SpecularColor, state.Shininess)
			fb.SetPixel(px, py, color)
			fb.SetZ(px, py, gbuf.GetZ(px, py))
		}
	}

	return nil
}
