package trirast

import "github.com/gogpu/trirast/internal/wide"

// defaultAlbedo is written when no material/texture binding is supplied;
// recoverable failures in sampling degrade to opaque white rather than
// aborting the pass.
var defaultAlbedo = Vec4{X: 1, Y: 1, Z: 1, W: 1}

// ShadeGeometryLane writes one covered lane's interpolated surface
// attributes into the G-buffer at pixel (x, y). input follows the
// VertexOutputSlots layout; z is the depth-plane value at this sample.
func ShadeGeometryLane(gbuf *GBuffer, x, y int, input *[VertexOutputSlots]wide.F32x4, lane int, z float32) {
	position := Vec3{X: input[7][lane], Y: input[8][lane], Z: input[9][lane]}
	normal := Vec3{X: input[4][lane], Y: input[5][lane], Z: input[6][lane]}

	gbuf.SetPosition(x, y, position)
	// Stored as-is: the lighting pass renormalizes on read, so a
	// denormalized interpolated normal is not corrected here.
	gbuf.SetNormal(x, y, normal)
	gbuf.SetAlbedo(x, y, defaultAlbedo)
	gbuf.SetZ(x, y, z)
}
