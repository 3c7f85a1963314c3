package trirast

import "github.com/gogpu/trirast/internal/wide"

// VertexOutputSlots is the fixed width of one vertex's attribute row:
// clip-space xyzw (0-3), normal (4-6), world position (7-9), UV (10-11).
const VertexOutputSlots = 12

// InterpolateVertexOutput blends a triangle's three vertex attribute rows
// across the 4 lanes of a quad fragment, using the per-lane barycentric
// weights produced by TriangleSIMD.GetCoordinates, and writes the result
// into out as VertexOutputSlots wide.F32x4 values in slot-major order.
//
// The weight parameters are named beta, gamma, alpha rather than alpha,
// beta, gamma to match the call-site convention this interpolation was
// adapted from, where the coordinate triple is threaded through under a
// rotated label. Renaming them would only relabel the convention without
// changing which vertex each weight lands on, so the order is kept as
// given: alpha weights the triangle's first vertex, beta its second, and
// gamma its third.
//
// It reports false without writing to out when triId or the resolved
// vertex rows fall outside vertexOutput/indexOutput; callers must skip the
// fragment in that case rather than write.
func InterpolateVertexOutput(out *[VertexOutputSlots]wide.F32x4, beta, gamma, alpha wide.F32x4, triId uint32, vertexOutput []float32, stride int, indexOutput [][3]uint32) bool {
	if int(triId) >= len(indexOutput) {
		return false
	}
	idx := indexOutput[triId]
	base0 := int(idx[0]) * stride
	base1 := int(idx[1]) * stride
	base2 := int(idx[2]) * stride

	if base0+VertexOutputSlots > len(vertexOutput) ||
		base1+VertexOutputSlots > len(vertexOutput) ||
		base2+VertexOutputSlots > len(vertexOutput) {
		return false
	}

	for slot := 0; slot < VertexOutputSlots; slot++ {
		v0 := wide.SplatF32x4(vertexOutput[base0+slot])
		v1 := wide.SplatF32x4(vertexOutput[base1+slot])
		v2 := wide.SplatF32x4(vertexOutput[base2+slot])
		out[slot] = v0.Mul(alpha).Add(v1.Mul(beta)).Add(v2.Mul(gamma))
	}
	return true
}
