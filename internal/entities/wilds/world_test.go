package wilds_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
	"github.com/KirkDiggler/rpg-wilds/internal/errors"
)

type WorldTestSuite struct {
	suite.Suite
	world *wilds.Map
}

func TestWorldSuite(t *testing.T) {
	suite.Run(t, new(WorldTestSuite))
}

func (s *WorldTestSuite) SetupTest() {
	var err error
	s.world, err = wilds.NewMap([]string{
		"S.F",
		"~MR",
		"CVE",
	})
	s.Require().NoError(err)
}

func (s *WorldTestSuite) TestNewMapRejectsRaggedRows() {
	_, err := wilds.NewMap([]string{"...", ".."})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = wilds.NewMap(nil)
	s.Require().Error(err)
}

func (s *WorldTestSuite) TestDimensionsAndBounds() {
	s.Equal(3, s.world.Width())
	s.Equal(3, s.world.Height())

	s.True(s.world.InBounds(wilds.Position{X: 0, Y: 0}))
	s.True(s.world.InBounds(wilds.Position{X: 2, Y: 2}))
	s.False(s.world.InBounds(wilds.Position{X: -1, Y: 0}))
	s.False(s.world.InBounds(wilds.Position{X: 3, Y: 0}))
	s.False(s.world.InBounds(wilds.Position{X: 0, Y: 3}))
}

func (s *WorldTestSuite) TestTileAt() {
	tile, ok := s.world.TileAt(wilds.Position{X: 1, Y: 1})
	s.True(ok)
	s.Equal(wilds.TileMountain, tile)
	s.True(tile.IsImpassable())

	_, ok = s.world.TileAt(wilds.Position{X: 5, Y: 5})
	s.False(ok)
}

func (s *WorldTestSuite) TestFind() {
	pos, ok := s.world.Find(wilds.TileDestination)
	s.True(ok)
	s.Equal(wilds.Position{X: 2, Y: 2}, pos)

	_, ok = s.world.Find(wilds.TileOutpost)
	s.False(ok)
}

func (s *WorldTestSuite) TestBiomeOf() {
	testCases := []struct {
		tile     wilds.Tile
		expected wilds.Biome
	}{
		{wilds.TilePlain, wilds.BiomePlains},
		{wilds.TileForest, wilds.BiomeForest},
		{wilds.TileWater, wilds.BiomeWater},
		{wilds.TileCity, wilds.BiomeCity},
		{wilds.TileVillage, wilds.BiomeVillage},
		{wilds.TileLandmarkH, wilds.BiomeLandmark},
		{wilds.Tile('?'), wilds.BiomePlains},
	}

	for _, tc := range testCases {
		s.Run(string(tc.tile), func() {
			s.Equal(tc.expected, wilds.BiomeOf(tc.tile))
		})
	}
}

func (s *WorldTestSuite) TestSites() {
	for _, t := range []wilds.Tile{wilds.TileOutpost, wilds.TileLandmarkN, wilds.TileLandmarkL, wilds.TileLandmarkB, wilds.TileLandmarkH} {
		s.True(t.IsSite(), string(t))
	}
	s.False(wilds.TileRefuge.IsSite())
	s.Equal("site:4,7", wilds.SiteFlag(wilds.Position{X: 4, Y: 7}))
}

func (s *WorldTestSuite) TestMatchesBiome() {
	s.True(wilds.MatchesBiome(nil, wilds.BiomeForest))
	s.True(wilds.MatchesBiome([]string{"global"}, wilds.BiomeForest))
	s.True(wilds.MatchesBiome([]string{"plains", "forest"}, wilds.BiomeForest))
	s.False(wilds.MatchesBiome([]string{"plains"}, wilds.BiomeForest))
}
