package wide

// F32x4 represents 4 float32 values for SIMD-style floating-point operations.
// Lane order matches the quad-fragment sample order: top-left, top-right,
// bottom-left, bottom-right.
type F32x4 [4]float32

// SplatF32x4 creates an F32x4 with all lanes set to n. Go equivalent of
// _mm_set1_ps.
func SplatF32x4(n float32) F32x4 {
	return F32x4{n, n, n, n}
}

// Add performs element-wise addition.
func (v F32x4) Add(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs element-wise subtraction.
func (v F32x4) Sub(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs element-wise multiplication.
func (v F32x4) Mul(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// Div performs element-wise division.
func (v F32x4) Div(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] / other[i]
	}
	return result
}

// MulAdd computes v + a*b element-wise, matching a fused multiply-add.
func (v F32x4) MulAdd(a, b F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] + a[i]*b[i]
	}
	return result
}

// Min performs element-wise minimum. Mirrors _mm_min_ps.
func (v F32x4) Min(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		if v[i] < other[i] {
			result[i] = v[i]
		} else {
			result[i] = other[i]
		}
	}
	return result
}

// Max performs element-wise maximum. Mirrors _mm_max_ps.
func (v F32x4) Max(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		if v[i] > other[i] {
			result[i] = v[i]
		} else {
			result[i] = other[i]
		}
	}
	return result
}

// Clamp clamps each lane to [minVal, maxVal].
func (v F32x4) Clamp(minVal, maxVal float32) F32x4 {
	return v.Max(SplatF32x4(minVal)).Min(SplatF32x4(maxVal))
}

// CmpLT returns, for each lane, true if v[i] < other[i]. Mirrors
// _mm_cmplt_ps + _mm_movemask_ps combined into a bool array; callers that
// need the packed mask should use CmpLTMask.
func (v F32x4) CmpLT(other F32x4) [4]bool {
	var result [4]bool
	for i := range v {
		result[i] = v[i] < other[i]
	}
	return result
}

// CmpLTMask returns a 4-bit mask with bit i set when v[i] < other[i].
// Mirrors _mm_movemask_ps(_mm_cmplt_ps(v, other)).
func (v F32x4) CmpLTMask(other F32x4) int {
	mask := 0
	for i := range v {
		if v[i] < other[i] {
			mask |= 1 << uint(i)
		}
	}
	return mask
}
