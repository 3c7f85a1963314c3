package trirast

// ProjectedTriangleInput holds, per worker thread, the projected triangles
// and vertex attribute data produced by an upstream transform/setup stage.
// The core never mutates these buffers; it only binds triangles to tiles
// and reads vertex rows back out during interpolation.
type ProjectedTriangleInput struct {
	// TriangleBuffer[thread] is the list of projected triangles that
	// worker thread produced for this batch.
	TriangleBuffer [][]ProjectedTriangle

	// VertexOutputBuffer[thread] is a flat array of per-vertex attribute
	// floats, stride VertexOutputSize, owned by that worker thread.
	VertexOutputBuffer [][]float32

	// IndexOutputBuffer[thread][triIndex] gives the three vertex indices,
	// into that thread's VertexOutputBuffer rows, of a triangle's corners.
	IndexOutputBuffer [][][3]uint32

	// VertexOutputSize is the stride, in floats, of one vertex row in
	// VertexOutputBuffer.
	VertexOutputSize int
}

// NumThreads returns the number of worker-thread buffers in the input.
func (in *ProjectedTriangleInput) NumThreads() int {
	return len(in.TriangleBuffer)
}
