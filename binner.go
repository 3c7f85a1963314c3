package trirast

import "github.com/gogpu/trirast/internal/parallel"

// TiledTriangle binds a projected triangle to the tile it was placed in,
// preserving the thread and index it was submitted from so a tile
// processor can recover its vertex attributes from the correct
// thread-local buffers.
type TiledTriangle struct {
	Triangle       ProjectedTriangle
	SourceThread   int
	SourceTriIndex int
}

// localBin is one worker's bump-allocated arena of TiledTriangle records,
// partitioned by tile through a secondary index of arena offsets. This
// avoids allocating a per-tile slice-of-slices per thread per frame.
type localBin struct {
	arena []TiledTriangle
	index [][]int32
}

func newLocalBin(tileCount int) *localBin {
	return &localBin{index: make([][]int32, tileCount)}
}

func (b *localBin) reset() {
	b.arena = b.arena[:0]
	for i := range b.index {
		b.index[i] = b.index[i][:0]
	}
}

func (b *localBin) append(tileIdx int, tt TiledTriangle) {
	b.arena = append(b.arena, tt)
	b.index[tileIdx] = append(b.index[tileIdx], int32(len(b.arena)-1))
}

func (b *localBin) appendEntriesTo(tileIdx int, dst []TiledTriangle) []TiledTriangle {
	for _, offset := range b.index[tileIdx] {
		dst = append(dst, b.arena[offset])
	}
	return dst
}

// TileBinner assigns each projected triangle in a batch to every tile its
// pixel bounding box touches. Binning runs in two phases: a parallel phase
// where each worker thread fills its own local bin, and a serial merge
// that concatenates local bins into the grid's global per-tile queues in a
// deterministic order (thread id ascending, each thread's own arrival
// order preserved). That order is later used as the depth-test tie-break
// within a tile.
type TileBinner struct {
	grid      *parallel.TileGrid[TiledTriangle]
	localBins []*localBin
}

// NewTileBinner creates a binner over grid with one local bin per worker
// thread.
func NewTileBinner(grid *parallel.TileGrid[TiledTriangle], numThreads int) *TileBinner {
	b := &TileBinner{
		grid:      grid,
		localBins: make([]*localBin, numThreads),
	}
	for i := range b.localBins {
		b.localBins[i] = newLocalBin(grid.TileCount())
	}
	return b
}

// Reset clears the grid's global tile queues and every thread's local bin,
// preparing for a new batch. Frame-to-frame reuse of the underlying arenas
// means no triangle from a prior batch can leak into this one, since
// reset always truncates before any append.
func (b *TileBinner) Reset() {
	b.grid.Reset()
	for _, lb := range b.localBins {
		lb.reset()
	}
}

// BinThread runs phase 1 for one worker thread: for every triangle in
// triangles, compute its clamped integer pixel bounding box and append a
// TiledTriangle into this thread's local bin for every tile the box
// overlaps. Safe to call concurrently for distinct threadID values.
func (b *TileBinner) BinThread(threadID int, triangles []ProjectedTriangle) {
	lb := b.localBins[threadID]
	width, height := b.grid.Width(), b.grid.Height()

	for triIdx := range triangles {
		tri := &triangles[triIdx]
		minXf, minYf, maxXf, maxYf := tri.BoundingBox()

		minX := clampInt(int(FixedToPixel(minXf)), 0, width-1)
		minY := clampInt(int(FixedToPixel(minYf)), 0, height-1)
		maxX := clampInt(int(FixedToPixel(maxXf)), 0, width-1)
		maxY := clampInt(int(FixedToPixel(maxYf)), 0, height-1)

		tx0, ty0, tx1, ty1 := b.grid.TileRangeForBounds(minX, minY, maxX, maxY)

		tt := TiledTriangle{Triangle: *tri, SourceThread: threadID, SourceTriIndex: triIdx}
		for ty := ty0; ty <= ty1; ty++ {
			for tx := tx0; tx <= tx1; tx++ {
				lb.append(b.grid.Index(tx, ty), tt)
			}
		}
	}
}

// Merge runs phase 2 serially: for every tile, in tile-index order,
// concatenate each thread's local entries for that tile, threads visited
// in ascending id order. Must not run concurrently with BinThread.
func (b *TileBinner) Merge() {
	b.grid.ForEach(func(tile *parallel.Tile[TiledTriangle]) {
		tileIdx := b.grid.Index(tile.X, tile.Y)
		for _, lb := range b.localBins {
			tile.Queue = lb.appendEntriesTo(tileIdx, tile.Queue)
		}
	})
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
