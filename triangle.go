package trirast

// ProjectedTriangle holds the per-triangle constant terms computed by the
// (external) geometry/clipping stage and consumed by the rasterizer. All
// screen-space coordinates are in 28.4 fixed point (see FixedShift).
//
// A ProjectedTriangle carries no vertex data: the rasterizer only computes
// coverage and interpolation weights, which the tile processors later apply
// against externally supplied vertex-output buffers, locating the vertex
// rows by the triangle's index within its thread's TriangleBuffer.
type ProjectedTriangle struct {
	// Fixed-point screen-space vertex positions, in counter-clockwise
	// winding order as produced by clipping/projection.
	X0, Y0 int32
	X1, Y1 int32
	X2, Y2 int32

	// Edge function coefficients (A, B) for each of the triangle's three
	// edges. Edge i is evaluated relative to vertex i as
	// E_i(x,y) = A_i*(x-X_i) + B_i*(y-Y_i), so no constant term is stored.
	A0, B0 float32
	A1, B1 float32
	A2, B2 float32

	// Depth plane equation: Z(x,y) = Z0 + dZdX*x + dZdY*y, evaluated in
	// screen space at pixel centers.
	Z0   float32
	DZdX float32
	DZdY float32

	// InvArea is 1 / (2 * signed triangle area), used to normalize raw
	// edge-function values into barycentric weights.
	InvArea float32

	// TriangleId is the upstream stage's identifier for this triangle. It
	// is copied into TriangleSIMD but not read by the tile processors, which
	// look up the triangle's vertex rows through its index within its
	// thread's TriangleBuffer (TiledTriangle.SourceTriIndex).
	TriangleId uint32

	// ConstantId indexes into a per-draw constant buffer (material,
	// transform) shared by every fragment of this triangle.
	ConstantId uint32
}

// BoundingBox returns the triangle's fixed-point axis-aligned bounding box.
func (t *ProjectedTriangle) BoundingBox() (minX, minY, maxX, maxY int32) {
	minX = min32(t.X0, min32(t.X1, t.X2))
	minY = min32(t.Y0, min32(t.Y1, t.Y2))
	maxX = max32(t.X0, max32(t.X1, t.X2))
	maxY = max32(t.Y0, max32(t.Y1, t.Y2))
	return
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
