// Package game implements the apples selection-and-match engine: a grid of
// numbered tiles, rectangular drag selection, and removal of selections that
// sum to exactly ten.
//
// The package holds ids and values only. Everything visual (tile handles,
// screen-space centers, highlight rendering) lives behind the View interface
// implemented by the platform layer.
package game

import "math/rand"

// Tile values are drawn uniformly from [MinValue, MaxValue].
const (
	MinValue = 1
	MaxValue = 9
)

// Tile is a single numbered cell.
// ID is the 0-based row-major index assigned at generation and never reused.
type Tile struct {
	ID    int
	Value int
	Alive bool
}

// Generate creates rows*cols live tiles in row-major order with random values.
// Non-positive dimensions produce an empty grid.
func Generate(rows, cols int, rng *rand.Rand) []Tile {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	tiles := make([]Tile, rows*cols)
	for i := range tiles {
		tiles[i] = Tile{
			ID:    i,
			Value: MinValue + rng.Intn(MaxValue-MinValue+1),
			Alive: true,
		}
	}
	return tiles
}

// TileStore holds the authoritative list of live tiles.
// Removed tiles are compacted out, so iteration only ever sees live tiles.
type TileStore struct {
	tiles []Tile      // live tiles, generation order
	index map[int]int // id -> position in tiles
}

// NewTileStore creates a store over the given tiles. Tiles that are not
// alive are dropped.
func NewTileStore(tiles []Tile) *TileStore {
	s := &TileStore{
		tiles: make([]Tile, 0, len(tiles)),
	}
	for _, t := range tiles {
		if t.Alive {
			s.tiles = append(s.tiles, t)
		}
	}
	s.reindex()
	return s
}

func (s *TileStore) reindex() {
	s.index = make(map[int]int, len(s.tiles))
	for i, t := range s.tiles {
		s.index[t.ID] = i
	}
}

// Find returns the live tile with the given id.
// The second result is false for unknown or removed ids.
func (s *TileStore) Find(id int) (Tile, bool) {
	i, ok := s.index[id]
	if !ok {
		return Tile{}, false
	}
	return s.tiles[i], true
}

// RemoveAll marks every live tile whose id is in ids as removed and compacts
// the store. Unknown and duplicate ids are ignored. Returns the ids actually
// removed, in store order.
func (s *TileStore) RemoveAll(ids []int) []int {
	if len(ids) == 0 {
		return nil
	}
	doomed := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := s.index[id]; ok {
			doomed[id] = struct{}{}
		}
	}
	if len(doomed) == 0 {
		return nil
	}

	removed := make([]int, 0, len(doomed))
	kept := s.tiles[:0]
	for _, t := range s.tiles {
		if _, ok := doomed[t.ID]; ok {
			t.Alive = false
			removed = append(removed, t.ID)
			continue
		}
		kept = append(kept, t)
	}
	s.tiles = kept
	s.reindex()
	return removed
}

// IsEmpty reports whether no tile is alive.
func (s *TileStore) IsEmpty() bool {
	return len(s.tiles) == 0
}

// Len returns the number of live tiles.
func (s *TileStore) Len() int {
	return len(s.tiles)
}

// Alive returns a copy of the live tiles in generation order.
func (s *TileStore) Alive() []Tile {
	out := make([]Tile, len(s.tiles))
	copy(out, s.tiles)
	return out
}
