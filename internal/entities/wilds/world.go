package wilds

import (
	"fmt"

	"github.com/KirkDiggler/rpg-wilds/internal/errors"
)

// Tile is a single map cell code
type Tile rune

const (
	TilePlain       Tile = '.'
	TileForest      Tile = 'F'
	TileWater       Tile = '~'
	TileMountain    Tile = 'M'
	TileRefuge      Tile = 'R'
	TileCity        Tile = 'C'
	TileVillage     Tile = 'V'
	TileStart       Tile = 'S'
	TileDestination Tile = 'E'
	TileOutpost     Tile = 'A'
	TileLandmarkN   Tile = 'N'
	TileLandmarkL   Tile = 'L'
	TileLandmarkB   Tile = 'B'
	TileLandmarkH   Tile = 'H'
)

// IsImpassable reports whether nothing may ever stand on the tile
func (t Tile) IsImpassable() bool {
	return t == TileMountain
}

// IsSite reports whether the tile is an outpost or landmark with a one-time trigger
func (t Tile) IsSite() bool {
	switch t {
	case TileOutpost, TileLandmarkN, TileLandmarkL, TileLandmarkB, TileLandmarkH:
		return true
	}
	return false
}

// Biome is the terrain category used to select events, enemies and messages
type Biome string

const (
	BiomePlains      Biome = "plains"
	BiomeForest      Biome = "forest"
	BiomeWater       Biome = "water"
	BiomeMountain    Biome = "mountain"
	BiomeRefuge      Biome = "refuge"
	BiomeCity        Biome = "city"
	BiomeVillage     Biome = "village"
	BiomeStart       Biome = "start"
	BiomeDestination Biome = "destination"
	BiomeOutpost     Biome = "outpost"
	BiomeLandmark    Biome = "landmark"

	// BiomeGlobal marks content valid everywhere
	BiomeGlobal Biome = "global"
)

var tileBiomes = map[Tile]Biome{
	TilePlain:       BiomePlains,
	TileForest:      BiomeForest,
	TileWater:       BiomeWater,
	TileMountain:    BiomeMountain,
	TileRefuge:      BiomeRefuge,
	TileCity:        BiomeCity,
	TileVillage:     BiomeVillage,
	TileStart:       BiomeStart,
	TileDestination: BiomeDestination,
	TileOutpost:     BiomeOutpost,
	TileLandmarkN:   BiomeLandmark,
	TileLandmarkL:   BiomeLandmark,
	TileLandmarkB:   BiomeLandmark,
	TileLandmarkH:   BiomeLandmark,
}

// BiomeOf maps a tile to its biome; unknown codes count as plains
func BiomeOf(t Tile) Biome {
	if b, ok := tileBiomes[t]; ok {
		return b
	}
	return BiomePlains
}

// IsKnownTile reports whether the code is part of the tile legend
func IsKnownTile(t Tile) bool {
	_, ok := tileBiomes[t]
	return ok
}

// MatchesBiome reports whether content tagged with biomes applies to the given biome.
// An empty list or the global biome matches everything.
func MatchesBiome(biomes []string, biome Biome) bool {
	if len(biomes) == 0 {
		return true
	}
	for _, b := range biomes {
		if Biome(b) == BiomeGlobal || Biome(b) == biome {
			return true
		}
	}
	return false
}

// Position is a map coordinate; Y grows downward
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the position offset by dx, dy
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Key is the stable string form used in sets and flags
func (p Position) Key() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

func (p Position) String() string {
	return "(" + p.Key() + ")"
}

// Map is the immutable tile grid, one string per row
type Map struct {
	Rows []string `json:"rows"`
}

// NewMap validates that the grid is non-empty and rectangular
func NewMap(rows []string) (*Map, error) {
	if len(rows) == 0 {
		return nil, errors.InvalidArgument("map has no rows")
	}

	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, errors.InvalidArgument("map has empty rows")
	}
	for y, row := range rows {
		if len([]rune(row)) != width {
			return nil, errors.InvalidArgumentf("map row %d has width %d, expected %d", y, len([]rune(row)), width).
				WithMeta("row", y)
		}
	}

	cp := make([]string, len(rows))
	copy(cp, rows)
	return &Map{Rows: cp}, nil
}

// Width returns the number of columns
func (m *Map) Width() int {
	if len(m.Rows) == 0 {
		return 0
	}
	return len([]rune(m.Rows[0]))
}

// Height returns the number of rows
func (m *Map) Height() int {
	return len(m.Rows)
}

// InBounds reports whether p lies on the grid
func (m *Map) InBounds(p Position) bool {
	return m.Grid().IsValidPosition(toSpatial(p))
}

// TileAt returns the tile at p; ok is false outside the grid
func (m *Map) TileAt(p Position) (Tile, bool) {
	if !m.InBounds(p) {
		return 0, false
	}
	return Tile([]rune(m.Rows[p.Y])[p.X]), true
}

// Find returns the first position holding the tile, scanning row by row
func (m *Map) Find(t Tile) (Position, bool) {
	for y, row := range m.Rows {
		for x, r := range []rune(row) {
			if Tile(r) == t {
				return Position{X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}
