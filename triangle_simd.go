package trirast

import "github.com/gogpu/trirast/internal/wide"

// quadOffsetsX and quadOffsetsY give the pixel-center sample offset of each
// lane within a 2x2 quad fragment, in top-left, top-right, bottom-left,
// bottom-right order: pixel (x,y)'s sample center is (x+0.5, y+0.5), per
// the 28.4 fixed-point sub-pixel-center convention ((x<<4)+8). Truncating
// one of these offsets to int recovers the lane's integer pixel offset
// (0 or 1), which lanePixel relies on.
var (
	quadOffsetsX = wide.F32x4{0.5, 1.5, 0.5, 1.5}
	quadOffsetsY = wide.F32x4{0.5, 0.5, 1.5, 1.5}
)

// TriangleSIMD is the rasterizer-ready form of a ProjectedTriangle: its
// three edge functions and depth plane are laid out so that a single quad
// fragment (four neighboring pixels) can be tested and shaded together.
//
// The edge function for edge i is w_i(x,y) = A_i*(x-X_i) + B_i*(y-Y_i). A
// fragment belongs to the triangle when every edge function evaluates to a
// non-negative value at the fragment's sample point. Edges that run exactly
// through a sample point are resolved by the top-left fill rule
// (isOwnerEdge) so that shared edges between adjacent triangles are never
// double-rasterized and never leave a seam.
type TriangleSIMD struct {
	edgeA [3]float32
	edgeB [3]float32
	vx    [3]float32
	vy    [3]float32

	// isOwnerEdge[i] is true when edge i owns samples that lie exactly on
	// it, per the top-left fill rule: edge i is owner iff (Y_i < Y_i+1) or
	// (Y_i == Y_i+1 and Y_i+2 >= Y_i).
	isOwnerEdge [3]bool

	z0, dZdX, dZdY float32
	invArea        float32

	triangleId uint32
	constantId uint32
}

// LoadTriangleSIMD derives a TriangleSIMD from a ProjectedTriangle's
// fixed-point vertex positions and edge coefficients. Fixed-point vertex
// coordinates are converted to pixel units (dividing by FixedOne) so that
// TestQuadFragment can operate on integer pixel coordinates directly.
func LoadTriangleSIMD(t *ProjectedTriangle) TriangleSIMD {
	s := TriangleSIMD{
		edgeA:      [3]float32{t.A0, t.A1, t.A2},
		edgeB:      [3]float32{t.B0, t.B1, t.B2},
		z0:         t.Z0,
		dZdX:       t.DZdX,
		dZdY:       t.DZdY,
		invArea:    t.InvArea,
		triangleId: t.TriangleId,
		constantId: t.ConstantId,
	}

	s.vx = [3]float32{fixedToPixelF(t.X0), fixedToPixelF(t.X1), fixedToPixelF(t.X2)}
	s.vy = [3]float32{fixedToPixelF(t.Y0), fixedToPixelF(t.Y1), fixedToPixelF(t.Y2)}

	for i := range s.isOwnerEdge {
		next := (i + 1) % 3
		nextNext := (i + 2) % 3
		s.isOwnerEdge[i] = s.vy[i] < s.vy[next] || (s.vy[i] == s.vy[next] && s.vy[nextNext] >= s.vy[i])
	}

	return s
}

func fixedToPixelF(fixed int32) float32 {
	return float32(fixed) / float32(FixedOne)
}

// edgeValues evaluates one edge function across the four lanes of a quad
// fragment whose top-left pixel is (x, y).
func (t *TriangleSIMD) edgeValues(edge int, x, y int32) wide.F32x4 {
	px := wide.SplatF32x4(float32(x)).Add(quadOffsetsX).Sub(wide.SplatF32x4(t.vx[edge]))
	py := wide.SplatF32x4(float32(y)).Add(quadOffsetsY).Sub(wide.SplatF32x4(t.vy[edge]))

	a := wide.SplatF32x4(t.edgeA[edge])
	b := wide.SplatF32x4(t.edgeB[edge])

	return a.Mul(px).Add(b.Mul(py))
}

// TestQuadFragment evaluates all three edge functions at the four pixel
// centers of the quad whose top-left pixel is (x, y) and returns a 4-bit
// coverage mask (bit i set when lane i is inside the triangle), along with
// the three edge-value planes so GetCoordinates and GetZ can reuse them
// without recomputation.
func (t *TriangleSIMD) TestQuadFragment(x, y int32) (mask int, e0, e1, e2 wide.F32x4) {
	e0 = t.edgeValues(0, x, y)
	e1 = t.edgeValues(1, x, y)
	e2 = t.edgeValues(2, x, y)

	for lane := 0; lane < 4; lane++ {
		if t.laneInside(e0[lane], 0) && t.laneInside(e1[lane], 1) && t.laneInside(e2[lane], 2) {
			mask |= 1 << uint(lane)
		}
	}
	return mask, e0, e1, e2
}

func (t *TriangleSIMD) laneInside(value float32, edge int) bool {
	if value > 0 {
		return true
	}
	if value == 0 {
		return t.isOwnerEdge[edge]
	}
	return false
}

// GetZ evaluates the depth plane equation across a quad fragment whose
// top-left pixel is (x, y).
func (t *TriangleSIMD) GetZ(x, y int32) wide.F32x4 {
	px := wide.SplatF32x4(float32(x)).Add(quadOffsetsX)
	py := wide.SplatF32x4(float32(y)).Add(quadOffsetsY)

	z0 := wide.SplatF32x4(t.z0)
	dzdx := wide.SplatF32x4(t.dZdX)
	dzdy := wide.SplatF32x4(t.dZdY)

	return z0.MulAdd(dzdx, px).MulAdd(dzdy, py)
}

// Mask reports only the coverage mask for the quad fragment at (qx, qy),
// satisfying internal/raster.Tester without exposing the edge-value planes.
func (t *TriangleSIMD) Mask(qx, qy int32) int {
	mask, _, _, _ := t.TestQuadFragment(qx, qy)
	return mask
}

// GetCoordinates converts the three raw edge-function values produced by
// TestQuadFragment into normalized barycentric weights (alpha, beta, gamma)
// summing to 1 at every covered lane. Edge i runs from vertex i to vertex
// i+1, so its value is proportional to the weight of the opposite vertex
// i+2: alpha (from edge 1) is the weight of vertex 0, beta (from edge 2)
// of vertex 1, and gamma (from edge 0) of vertex 2.
func (t *TriangleSIMD) GetCoordinates(e0, e1, e2 wide.F32x4) (alpha, beta, gamma wide.F32x4) {
	inv := wide.SplatF32x4(t.invArea)
	alpha = e1.Mul(inv)
	beta = e2.Mul(inv)
	gamma = e0.Mul(inv)
	return alpha, beta, gamma
}
