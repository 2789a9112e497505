package content_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
	"github.com/KirkDiggler/rpg-wilds/internal/errors"
	"github.com/KirkDiggler/rpg-wilds/internal/repositories/content"
)

const testWorld = `
name: Test Reach
map:
  - "S.F"
  - ".~A"
player:
  hp: 10
  ac: 12
  weapon: { name: Stick, damage: 1d4, class: melee }
sites:
  - { x: 2, y: 1, event_id: outpost }
agents:
  - { id: peddler, name: Peddler, position: { x: 1, y: 0 }, move_interval: 2, valid_tiles: ".", dialogue_id: peddler_talk }
`

const testEvents = `
events:
  - id: outpost
    title: Outpost
    category: site
    choices:
      - text: Trade
        outcomes:
          - type: direct
            results:
              - { type: special, effect: start_trading, target_id: quartermaster }
  - id: tracks
    title: Tracks
    biomes: [forest]
    choices:
      - text: Follow
        outcomes:
          - type: direct
            results:
              - { type: special, effect: start_combat, enemy_ids: [wolf] }
`

const testEnemies = `
enemies:
  - { id: wolf, name: Wolf, hp: 8, ac: 12, damage: 1d6, attack_bonus: 3, xp: 50, biomes: [forest], loot: [{ item_id: pelt, quantity: 1, chance: 50 }] }
  - { id: rat, name: Rat, hp: 2, ac: 10, damage: "1", attack_bonus: 0, xp: 5, biomes: [global] }
`

const testItems = `
items:
  - { id: pelt, name: Pelt }
`

const testAmbient = `
messages:
  - { text: Leaves rustle., biomes: [forest] }
  - { text: Owls hoot., time: night }
`

type YAMLRepositoryTestSuite struct {
	suite.Suite
	ctx context.Context
	fs  fstest.MapFS
}

func TestYAMLRepositorySuite(t *testing.T) {
	suite.Run(t, new(YAMLRepositoryTestSuite))
}

func (s *YAMLRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.fs = fstest.MapFS{
		content.WorldFile:   {Data: []byte(testWorld)},
		content.EventsFile:  {Data: []byte(testEvents)},
		content.EnemiesFile: {Data: []byte(testEnemies)},
		content.ItemsFile:   {Data: []byte(testItems)},
		content.AmbientFile: {Data: []byte(testAmbient)},
	}
}

func (s *YAMLRepositoryTestSuite) newRepo() content.Repository {
	repo, err := content.NewYAMLRepository(&content.Config{FS: s.fs})
	s.Require().NoError(err)
	return repo
}

func (s *YAMLRepositoryTestSuite) TestDefaultContentIsValid() {
	tables, err := content.Load(content.DefaultFS())
	s.Require().NoError(err)
	s.Require().NoError(content.Validate(tables))

	s.NotEmpty(tables.Events)
	s.NotEmpty(tables.Enemies)
	s.NotEmpty(tables.World.Sites)
}

func (s *YAMLRepositoryTestSuite) TestMissingConfig() {
	_, err := content.NewYAMLRepository(&content.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "invalid config")
}

func (s *YAMLRepositoryTestSuite) TestMissingFile() {
	delete(s.fs, content.ItemsFile)

	_, err := content.NewYAMLRepository(&content.Config{FS: s.fs})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal(content.ItemsFile, errors.GetMeta(err)["file"])
}

func (s *YAMLRepositoryTestSuite) TestGetWorld() {
	out, err := s.newRepo().GetWorld(s.ctx, &content.GetWorldInput{})
	s.Require().NoError(err)

	s.Equal("Test Reach", out.World.Name)
	s.Len(out.World.Map, 2)
	s.Require().Len(out.World.Agents, 1)
	s.Equal("peddler_talk", out.World.Agents[0].DialogueID)
	s.Equal(wilds.Position{X: 2, Y: 1}, out.World.Sites[0].Position())
}

func (s *YAMLRepositoryTestSuite) TestGetEvent() {
	repo := s.newRepo()

	out, err := repo.GetEvent(s.ctx, &content.GetEventInput{EventID: "tracks"})
	s.Require().NoError(err)
	s.Equal("Tracks", out.Event.Title)
	s.Equal(wilds.EventCategoryStandard, out.Event.EffectiveCategory())

	_, err = repo.GetEvent(s.ctx, &content.GetEventInput{EventID: "missing"})
	s.True(errors.IsNotFound(err))

	_, err = repo.GetEvent(s.ctx, &content.GetEventInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *YAMLRepositoryTestSuite) TestListEventsFiltersByCategoryAndBiome() {
	repo := s.newRepo()

	out, err := repo.ListEvents(s.ctx, &content.ListEventsInput{
		Category: wilds.EventCategoryStandard,
		Biome:    wilds.BiomeForest,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Events, 1)
	s.Equal("tracks", out.Events[0].ID)

	out, err = repo.ListEvents(s.ctx, &content.ListEventsInput{
		Category: wilds.EventCategoryStandard,
		Biome:    wilds.BiomePlains,
	})
	s.Require().NoError(err)
	s.Empty(out.Events)
}

func (s *YAMLRepositoryTestSuite) TestListEnemiesIncludesGlobal() {
	out, err := s.newRepo().ListEnemies(s.ctx, &content.ListEnemiesInput{Biome: wilds.BiomeForest})
	s.Require().NoError(err)
	s.Require().Len(out.Enemies, 2)
	s.Equal("wolf", out.Enemies[0].ID)
	s.Equal("rat", out.Enemies[1].ID)

	out, err = s.newRepo().ListEnemies(s.ctx, &content.ListEnemiesInput{Biome: wilds.BiomeWater})
	s.Require().NoError(err)
	s.Require().Len(out.Enemies, 1)
	s.Equal("rat", out.Enemies[0].ID)
}

func (s *YAMLRepositoryTestSuite) TestListAmbient() {
	repo := s.newRepo()

	out, err := repo.ListAmbient(s.ctx, &content.ListAmbientInput{Biome: wilds.BiomeForest, Weather: wilds.WeatherClear})
	s.Require().NoError(err)
	s.Require().Len(out.Messages, 1)
	s.Equal("Leaves rustle.", out.Messages[0].Text)

	out, err = repo.ListAmbient(s.ctx, &content.ListAmbientInput{Biome: wilds.BiomeForest, Night: true})
	s.Require().NoError(err)
	s.Len(out.Messages, 2)
}

func (s *YAMLRepositoryTestSuite) TestValidateCatchesDanglingReferences() {
	tables, err := content.Load(s.fs)
	s.Require().NoError(err)

	tables.Events[1].Choices[0].Outcomes[0].Results[0].EnemyIDs = []string{"dragon"}
	tables.Enemies[0].Loot[0].ItemID = "gold"
	tables.World.Sites[0].EventID = "nowhere"

	err = content.Validate(tables)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Contains(validationErrors["events[1].choices[0].outcomes[0].results[0].enemy_ids"][0], `unknown enemy "dragon"`)
	s.Contains(validationErrors["enemies[0].loot[0].item_id"][0], `unknown item "gold"`)
	s.Contains(validationErrors["world.sites[0].event_id"][0], `unknown event "nowhere"`)
}

func (s *YAMLRepositoryTestSuite) TestValidateCatchesBadValues() {
	tables, err := content.Load(s.fs)
	s.Require().NoError(err)

	tables.Events[1].Choices[0].Outcomes = append(tables.Events[1].Choices[0].Outcomes, wilds.Outcome{
		Type:  wilds.OutcomeSkillCheck,
		Skill: "luck",
		DC:    40,
	})
	tables.Enemies[1].Damage = "lots"
	tables.World.Map = []string{"..", "..."}

	err = content.Validate(tables)
	s.Require().Error(err)

	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Contains(validationErrors, "events[1].choices[0].outcomes[1].dc")
	s.Contains(validationErrors, "events[1].choices[0].outcomes[1].skill")
	s.Contains(validationErrors, "enemies[1].damage")
	s.Contains(validationErrors, "world.map")
}

func (s *YAMLRepositoryTestSuite) TestValidateCatchesAgentIDClashes() {
	tables, err := content.Load(s.fs)
	s.Require().NoError(err)

	twin := tables.World.Agents[0]
	reserved := tables.World.Agents[0]
	reserved.ID = wilds.PlayerEntityID
	tables.World.Agents = append(tables.World.Agents, twin, reserved)

	err = content.Validate(tables)
	s.Require().Error(err)

	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Contains(validationErrors["world.agents[1].id"][0], `duplicate agent id "peddler"`)
	s.Contains(validationErrors["world.agents[2].id"][0], "is reserved")
}
