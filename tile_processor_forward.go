package trirast

import (
	"github.com/gogpu/trirast/internal/parallel"
	"github.com/gogpu/trirast/internal/raster"
	"github.com/gogpu/trirast/internal/wide"
)

// ProcessForwardTile runs the forward pipeline's single pass over tile
// (tx, ty): for every triangle bound to the tile, in submission order, it
// rasterizes, depth-tests, interpolates vertex attributes, shades, and
// writes surviving samples directly into fb.
func ProcessForwardTile(grid *parallel.TileGrid[TiledTriangle], tx, ty int, input *ProjectedTriangleInput, state *RenderState, fb *FrameBuffer) error {
	tile := grid.At(tx, ty)
	if tile == nil {
		return nil
	}

	program, ok := state.ActiveShader()
	if !ok || program.Kind != UserShader || program.Shade == nil {
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
				shadeForwardQuad(&simd, tt, input, program, fb, qx, qy)
			})
	}

	return nil
}

func shadeForwardQuad(simd *TriangleSIMD, tt *TiledTriangle, input *ProjectedTriangleInput, program *FragmentProgram, fb *FrameBuffer, qx, qy int32) {
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
		if px < 0 || px >= fb.Width() || py < 0 || py >= fb.Height() {
			continue
		}
		if z[lane] < fb.GetZ(px, py) {
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
		fb.SetZ(px, py, z[lane])
	}

	var output [16]float32
	program.Shade(&output, &vertexOut, tt.Triangle.ConstantId)

	for lane := 0; lane < 4; lane++ {
		if !survive[lane] {
			continue
		}
		px, py := lanePixel(qx, qy, lane)
		fb.SetPixel(px, py, Vec4{X: output[lane], Y: output[4+lane], Z: output[8+lane], W: output[12+lane]})
	}
}

// lanePixel returns the integer pixel coordinates of one lane of the quad
// fragment whose top-left pixel is (qx, qy).
func lanePixel(qx, qy int32, lane int) (px, py int) {
	return int(qx) + int(quadOffsetsX[lane]), int(qy) + int(quadOffsetsY[lane])
}

// quadMaskTester adapts TriangleSIMD's Mask method to internal/raster.Tester
// for raster.WalkQuads, which only needs the coverage mask.
type quadMaskTester struct {
	*TriangleSIMD
}

func (q quadMaskTester) TestQuadFragment(qx, qy int32) int {
	return q.Mask(qx, qy)
}
