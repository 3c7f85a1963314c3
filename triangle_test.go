package trirast

import "testing"

func TestProjectedTriangle_BoundingBox(t *testing.T) {
	tri := ProjectedTriangle{
		X0: ToFixed(16), Y0: ToFixed(16),
		X1: ToFixed(63), Y1: ToFixed(16),
		X2: ToFixed(16), Y2: ToFixed(63),
	}

	minX, minY, maxX, maxY := tri.BoundingBox()
	if minX != ToFixed(16) || minY != ToFixed(16) {
		t.Errorf("min = (%d,%d), want (%d,%d)", minX, minY, ToFixed(16), ToFixed(16))
	}
	if maxX != ToFixed(63) || maxY != ToFixed(63) {
		t.Errorf("max = (%d,%d), want (%d,%d)", maxX, maxY, ToFixed(63), ToFixed(63))
	}
}

func TestProjectedTriangle_BoundingBox_DegenerateOrdering(t *testing.T) {
	// Vertex order does not imply coordinate ordering; the bounding box
	// must be computed regardless of winding.
	tri := ProjectedTriangle{
		X0: ToFixed(50), Y0: ToFixed(10),
		X1: ToFixed(10), Y1: ToFixed(50),
		X2: ToFixed(30), Y2: ToFixed(30),
	}
	minX, minY, maxX, maxY := tri.BoundingBox()
	if minX != ToFixed(10) || minY != ToFixed(10) || maxX != ToFixed(50) || maxY != ToFixed(50) {
		t.Errorf("bbox = (%d,%d)-(%d,%d), want (10,10)-(50,50) in fixed point", minX, minY, maxX, maxY)
	}
}
