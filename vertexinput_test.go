package trirast

import "testing"

func TestProjectedTriangleInput_NumThreads(t *testing.T) {
	in := &ProjectedTriangleInput{
		TriangleBuffer: [][]ProjectedTriangle{{}, {}, {}},
	}
	if got := in.NumThreads(); got != 3 {
		t.Errorf("NumThreads() = %d, want 3", got)
	}
}

func TestProjectedTriangleInput_NumThreads_Empty(t *testing.T) {
	var in ProjectedTriangleInput
	if got := in.NumThreads(); got != 0 {
		t.Errorf("NumThreads() = %d, want 0 on a zero-value input", got)
	}
}
