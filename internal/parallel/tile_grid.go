package parallel

// TileGrid partitions a width x height raster into TileSize x TileSize
// tiles, row-major. Edge tiles may have smaller actual pixel dimensions
// when the raster is not evenly divisible by TileSize; PixelRect reports
// the clamped rectangle for a given tile.
type TileGrid[T any] struct {
	tiles  []Tile[T]
	tilesX int
	tilesY int
	width  int
	height int
}

// NewTileGrid creates a tile grid covering a width x height raster.
func NewTileGrid[T any](width, height int) *TileGrid[T] {
	tilesX := (width + TileSize - 1) / TileSize
	tilesY := (height + TileSize - 1) / TileSize

	g := &TileGrid[T]{
		tiles:  make([]Tile[T], tilesX*tilesY),
		tilesX: tilesX,
		tilesY: tilesY,
		width:  width,
		height: height,
	}
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			g.tiles[ty*tilesX+tx] = Tile[T]{X: tx, Y: ty}
		}
	}
	return g
}

// Index converts tile coordinates to the flat index used by AtIndex,
// matching the invariant tileIndex = tileY*gridWidth + tileX.
func (g *TileGrid[T]) Index(tx, ty int) int {
	return ty*g.tilesX + tx
}

// At returns the tile at tile coordinates (tx, ty), or nil if out of range.
func (g *TileGrid[T]) At(tx, ty int) *Tile[T] {
	if tx < 0 || tx >= g.tilesX || ty < 0 || ty >= g.tilesY {
		return nil
	}
	return &g.tiles[g.Index(tx, ty)]
}

// AtIndex returns the tile at a flat index previously obtained from Index.
func (g *TileGrid[T]) AtIndex(i int) *Tile[T] {
	return &g.tiles[i]
}

// TilesX returns the number of tile columns.
func (g *TileGrid[T]) TilesX() int { return g.tilesX }

// TilesY returns the number of tile rows.
func (g *TileGrid[T]) TilesY() int { return g.tilesY }

// TileCount returns the total number of tiles in the grid.
func (g *TileGrid[T]) TileCount() int { return len(g.tiles) }

// Width returns the raster width in pixels.
func (g *TileGrid[T]) Width() int { return g.width }

// Height returns the raster height in pixels.
func (g *TileGrid[T]) Height() int { return g.height }

// PixelRect returns the pixel rectangle owned by tile (tx, ty): its origin
// and its actual size, which is min(TileSize, width-x) by
// min(TileSize, height-y) for edge tiles.
func (g *TileGrid[T]) PixelRect(tx, ty int) (x, y, w, h int) {
	x = tx * TileSize
	y = ty * TileSize
	w = TileSize
	if x+w > g.width {
		w = g.width - x
	}
	h = TileSize
	if y+h > g.height {
		h = g.height - y
	}
	return x, y, w, h
}

// TileRangeForBounds converts a clamped pixel-space bounding box into the
// inclusive range of tile coordinates it overlaps.
func (g *TileGrid[T]) TileRangeForBounds(minX, minY, maxX, maxY int) (tx0, ty0, tx1, ty1 int) {
	tx0 = minX / TileSize
	ty0 = minY / TileSize
	tx1 = maxX / TileSize
	ty1 = maxY / TileSize
	return
}

// Reset empties every tile's queue, retaining backing arrays across frames.
func (g *TileGrid[T]) Reset() {
	for i := range g.tiles {
		g.tiles[i].Reset()
	}
}

// ForEach calls fn for every tile in the grid, in row-major order.
func (g *TileGrid[T]) ForEach(fn func(tile *Tile[T])) {
	for i := range g.tiles {
		fn(&g.tiles[i])
	}
}
