// Package raster enumerates the quad fragments a triangle's bounding box
// might cover within a pixel region, stepping by 2x2 blocks and delegating
// the actual coverage decision to a caller-supplied Tester.
package raster

// QuadVisitor receives one covered quad fragment: its pixel-space origin
// (qx, qy), and whether the walker could prove full coverage without a
// per-quad retest (trivialAccept).
type QuadVisitor func(qx, qy int32, trivialAccept bool)

// Tester evaluates a triangle's coverage mask for the quad fragment whose
// top-left pixel is (qx, qy). Bit i of the returned mask is set when lane i
// (top-left, top-right, bottom-left, bottom-right) is inside the triangle.
type Tester interface {
	TestQuadFragment(qx, qy int32) (mask int)
}

// WalkQuads enumerates every quad fragment of the triangle whose integer
// pixel bounding box is [minX,maxX]x[minY,maxY], clipped to the rectangular
// region (regionX, regionY, regionW, regionH), and invokes visit for each
// one whose coverage mask is nonzero.
//
// Quad origins are snapped down to even pixel coordinates and stepped by 2
// in both axes, since every quad fragment spans a 2x2 block of pixels. Only
// quads that overlap the clipped bounding box are visited; because origins
// are snapped down to even pixels and each quad spans two pixels, a quad on
// the box's edge can include one column or row of samples just outside it.
//
// trivialAccept is always passed as false. A full-quad test could assert it
// when all three edges are strictly positive at all four corners, but the
// tile processor always retests coverage per quad regardless, so the fast
// path buys nothing here and is omitted.
func WalkQuads(t Tester, minX, minY, maxX, maxY int32, regionX, regionY, regionW, regionH int32, visit QuadVisitor) {
	x0 := max32(minX, regionX)
	y0 := max32(minY, regionY)
	x1 := min32(maxX, regionX+regionW-1)
	y1 := min32(maxY, regionY+regionH-1)

	if x0 > x1 || y0 > y1 {
		return
	}

	x0 &^= 1
	y0 &^= 1

	for qy := y0; qy <= y1; qy += 2 {
		for qx := x0; qx <= x1; qx += 2 {
			if t.TestQuadFragment(qx, qy) == 0 {
				continue
			}
			visit(qx, qy, false)
		}
	}
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
