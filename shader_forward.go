package trirast

import "github.com/gogpu/trirast/internal/wide"

// NewForwardBlinnPhongShader returns a ShadeFunc for the forward pipeline
// that reproduces the deferred pipeline's lighting exactly, lane by lane,
// against state's lights, camera position, specular color, and shininess.
// Both pipelines are expected to agree on a pixel they both cover; reusing
// ShadeDeferredPixel here instead of a parallel implementation is what
// makes that agreement exact rather than approximate.
func NewForwardBlinnPhongShader(state *RenderState) ShadeFunc {
	return func(output *[16]float32, input *[VertexOutputSlots]wide.F32x4, constantId uint32) {
		for lane := 0; lane < 4; lane++ {
			position := Vec3{X: input[7][lane], Y: input[8][lane], Z: input[9][lane]}
			normal := Vec3{X: input[4][lane], Y: input[5][lane], Z: input[6][lane]}

			color := ShadeDeferredPixel(position, normal, defaultAlbedo, state.Lights, state.CameraPosition, state.SpecularColor, state.Shininess)

			output[lane] = color.X
			output[4+lane] = color.Y
			output[8+lane] = color.Z
			output[12+lane] = color.W
		}
	}
}
