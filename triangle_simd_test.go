package trirast

import "testing"

// rightTriangle builds a ProjectedTriangle for the right triangle with
// pixel-space vertices (0,0), (4,0), (0,4), with edge coefficients hand
// derived so that the interior satisfies y>0, x+y<4, x>0.
func rightTriangle() ProjectedTriangle {
	return ProjectedTriangle{
		X0: ToFixed(0), Y0: ToFixed(0),
		X1: ToFixed(4), Y1: ToFixed(0),
		X2: ToFixed(0), Y2: ToFixed(4),
		A0: 0, B0: 4,
		A1: -4, B1: -4,
		A2: 4, B2: 0,
		InvArea: 1.0 / 16.0,
	}
}

func TestLoadTriangleSIMD_OwnerEdges(t *testing.T) {
	tri := rightTriangle()
	s := LoadTriangleSIMD(&tri)

	want := [3]bool{true, true, false}
	if s.isOwnerEdge != want {
		t.Errorf("isOwnerEdge = %v, want %v", s.isOwnerEdge, want)
	}
}

func TestTriangleSIMD_TestQuadFragment_CoverageMask(t *testing.T) {
	tri := rightTriangle()
	s := LoadTriangleSIMD(&tri)

	mask, _, _, _ := s.TestQuadFragment(0, 0)

	// Sample points are pixel centers, (0.5,0.5) through (1.5,1.5); none of
	// them land on this triangle's edges, so all four lanes are inside.
	const wantMask = 1<<0 | 1<<1 | 1<<2 | 1<<3
	if mask != wantMask {
		t.Errorf("TestQuadFragment(0,0) mask = %#04b, want %#04b", mask, wantMask)
	}
}

func TestTriangleSIMD_Mask_MatchesTestQuadFragment(t *testing.T) {
	tri := rightTriangle()
	s := LoadTriangleSIMD(&tri)

	full, _, _, _ := s.TestQuadFragment(0, 0)
	if got := s.Mask(0, 0); got != full {
		t.Errorf("Mask(0,0) = %#04b, want %#04b", got, full)
	}
}

func TestTriangleSIMD_GetZ_EvaluatesPlane(t *testing.T) {
	tri := rightTriangle()
	tri.Z0, tri.DZdX, tri.DZdY = 1.0, 0.5, 0.25
	s := LoadTriangleSIMD(&tri)

	z := s.GetZ(2, 3)
	want := [4]float32{
		1.0 + 0.5*2.5 + 0.25*3.5,
		1.0 + 0.5*3.5 + 0.25*3.5,
		1.0 + 0.5*2.5 + 0.25*4.5,
		1.0 + 0.5*3.5 + 0.25*4.5,
	}
	for i := range want {
		if z[i] != want[i] {
			t.Errorf("GetZ lane %d = %v, want %v", i, z[i], want[i])
		}
	}
}

func TestTriangleSIMD_GetCoordinates_SumToOne(t *testing.T) {
	tri := rightTriangle()
	s := LoadTriangleSIMD(&tri)

	// Interior point well inside the triangle: (1,1).
	_, e0, e1, e2 := s.TestQuadFragment(0, 0)
	alpha, beta, gamma := s.GetCoordinates(e0, e1, e2)

	for lane := 0; lane < 4; lane++ {
		sum := alpha[lane] + beta[lane] + gamma[lane]
		if sum < 0.999 || sum > 1.001 {
			t.Errorf("lane %d barycentric sum = %v, want ~1.0", lane, sum)
		}
	}
}
