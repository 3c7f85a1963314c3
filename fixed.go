package trirast

// FixedShift is the number of fractional bits in the 28.4 fixed-point
// screen-space representation used for projected triangle vertices and
// quad-fragment sample coordinates.
const FixedShift = 4

// FixedOne is the fixed-point value of 1.0.
const FixedOne = 1 << FixedShift

// ToFixed converts an integer pixel coordinate to 28.4 fixed point.
func ToFixed(pixel int32) int32 {
	return pixel << FixedShift
}

// FixedToPixel converts a 28.4 fixed-point coordinate to its integer pixel
// coordinate via arithmetic shift right, matching the bounding-box
// extraction used by the rasterizer (minX, maxX, minY, maxY).
func FixedToPixel(fixed int32) int32 {
	return fixed >> FixedShift
}

// SubpixelCenter returns the fixed-point coordinates of the sample center
// of pixel (x, y): (x*16+8, y*16+8).
func SubpixelCenter(x, y int32) (fx, fy int32) {
	return x<<FixedShift + FixedOne/2, y<<FixedShift + FixedOne/2
}
