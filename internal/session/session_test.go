package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
	"github.com/KirkDiggler/rpg-wilds/internal/errors"
	"github.com/KirkDiggler/rpg-wilds/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-wilds/internal/orchestrators/event"
	"github.com/KirkDiggler/rpg-wilds/internal/orchestrators/game"
	gamemock "github.com/KirkDiggler/rpg-wilds/internal/orchestrators/game/mock"
	"github.com/KirkDiggler/rpg-wilds/internal/orchestrators/movement"
	"github.com/KirkDiggler/rpg-wilds/internal/orchestrators/weather"
	"github.com/KirkDiggler/rpg-wilds/internal/parser"
	"github.com/KirkDiggler/rpg-wilds/internal/repositories/savegame"
	"github.com/KirkDiggler/rpg-wilds/internal/session"
	"github.com/KirkDiggler/rpg-wilds/internal/testutils"
)

type SessionTestSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	mockGame *gamemock.MockService
	sim      *wilds.SimulationContext
	session  *session.Session
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockGame = gamemock.NewMockService(s.ctrl)
	s.sim = testutils.NewTestSimulation([]string{"S..", "..."}, wilds.Position{})
	s.session = session.New(s.mockGame, s.sim)
}

func (s *SessionTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SessionTestSuite) run(input string) *session.Result {
	cmd, err := parser.Parse(input)
	s.Require().NoError(err)
	res, err := s.session.Execute(s.ctx, cmd)
	s.Require().NoError(err)
	return res
}

func (s *SessionTestSuite) TestStart() {
	s.mockGame.EXPECT().NewGame(s.ctx, &game.NewGameInput{PlayerName: "Rook", Seed: 3}).
		Return(&game.NewGameOutput{Sim: s.sim}, nil)

	sess, err := session.Start(s.ctx, s.mockGame, "Rook", 3)
	s.Require().NoError(err)
	s.Same(s.sim, sess.Sim)
	s.False(sess.Over())
}

func (s *SessionTestSuite) TestMoveShowsMessagesAndOpenEvent() {
	s.mockGame.EXPECT().Move(s.ctx, &game.MoveInput{Sim: s.sim, DX: 1}).
		DoAndReturn(func(_ context.Context, in *game.MoveInput) (*game.MoveOutput, error) {
			in.Sim.Mode = wilds.ModeEvent
			in.Sim.ActiveEvent = &wilds.EventDefinition{
				ID:      "stranger",
				Title:   "A Stranger",
				Choices: []wilds.Choice{{Text: "Wave"}, {Text: "Hide"}},
			}
			return &game.MoveOutput{
				Message:   "You head east.",
				Move:      &movement.AttemptMoveOutput{Kind: movement.KindMoved, Ambient: "Birds sing."},
				Weather:   &weather.UpdateOutput{Rolled: true, Changed: true, Weather: wilds.WeatherRain},
				Followups: []string{"Well met."},
			}, nil
		})

	res := s.run("east")
	s.Equal([]string{
		"You head east.",
		"Birds sing.",
		"The weather turns: rain.",
		"Well met.",
		"A STRANGER",
		"  1) Wave",
		"  2) Hide",
	}, res.Lines)
}

func (s *SessionTestSuite) TestChooseShowsChecksAndConsequences() {
	s.mockGame.EXPECT().ChooseOption(s.ctx, &game.ChooseOptionInput{Sim: s.sim, ChoiceIndex: 1}).
		Return(&game.ChooseOptionOutput{Result: &event.ResolveChoiceOutput{
			Summary:      "You climb the wall.",
			Consequences: []string{"Gained 10 XP."},
			Checks: []event.CheckRecord{{
				Skill:  "athletics",
				Result: &wilds.SkillCheckResult{Roll: 12, Modifier: 2, Total: 14, DC: 12, Success: true},
			}},
		}}, nil)

	res := s.run("2")
	s.Equal([]string{
		"(athletics check: rolled 12, total 14)",
		"You climb the wall.",
		"Gained 10 XP.",
	}, res.Lines)
}

func (s *SessionTestSuite) TestChooseRejected() {
	s.mockGame.EXPECT().ChooseOption(s.ctx, gomock.Any()).
		Return(&game.ChooseOptionOutput{Result: &event.ResolveChoiceOutput{Rejected: true, Message: "No such choice."}}, nil)

	res := s.run("choose 7")
	s.Equal([]string{"No such choice."}, res.Lines)
}

func (s *SessionTestSuite) TestAttackRoundNamesEnemies() {
	s.sim.Mode = wilds.ModeCombat
	tmpl := testutils.NewTestEnemyTemplate("wolf", 6)
	s.sim.Combat = &wilds.CombatState{
		Round:   2,
		Outcome: wilds.OutcomeOngoing,
		Player:  wilds.SnapshotPlayer(s.sim.Player),
		Enemies: []*wilds.EnemyCombatState{wilds.NewEnemyCombatState("wolf-1", &tmpl)},
	}

	s.mockGame.EXPECT().CombatAction(s.ctx, &game.CombatActionInput{Sim: s.sim, Action: game.ActionAttack}).
		Return(&game.CombatActionOutput{
			Attack:    &combat.AttackOutput{Total: 9, Hit: false},
			EnemyTurn: &combat.EnemyTurnOutput{Attacks: []combat.EnemyAttack{{EnemyID: "wolf-1", Hit: true, Damage: 3}}},
		}, nil)

	res := s.run("attack")
	s.Equal([]string{
		"You swing (9) and miss.",
		"Test wolf hits you for 3.",
		"Round 2. You have 20/20 HP.",
		"  1) Test wolf (unharmed)",
	}, res.Lines)
}

func (s *SessionTestSuite) TestVictory() {
	s.sim.Mode = wilds.ModeCombat
	s.sim.Combat = &wilds.CombatState{Outcome: wilds.OutcomeOngoing}

	s.mockGame.EXPECT().CombatAction(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *game.CombatActionInput) (*game.CombatActionOutput, error) {
			in.Sim.Combat = nil
			in.Sim.Mode = wilds.ModeExploration
			return &game.CombatActionOutput{
				Attack: &combat.AttackOutput{Total: 17, Hit: true, Killed: true, Damage: 5},
				Finish: &combat.FinishOutput{
					Outcome:   wilds.OutcomeVictory,
					XP:        300,
					Loot:      []combat.LootAward{{ItemID: "herb", Name: "Healing Herb", Quantity: 2}},
					Level:     2,
					LeveledUp: true,
				},
			}, nil
		})

	res := s.run("hit 1")
	s.Equal([]string{
		"You strike (17) for 5 damage. Your foe falls!",
		"Victory! You gain 300 XP.",
		"You find Healing Herb x2.",
		"You reach level 2!",
	}, res.Lines)
}

func (s *SessionTestSuite) TestCombatRejected() {
	s.mockGame.EXPECT().CombatAction(s.ctx, gomock.Any()).
		Return(&game.CombatActionOutput{Rejected: true, Message: "There is nothing to fight."}, nil)

	res := s.run("defend")
	s.Equal([]string{"There is nothing to fight."}, res.Lines)
}

func (s *SessionTestSuite) TestInventoryOutsideCombat() {
	s.sim.Player.Inventory["healing_herb"] = 2
	s.sim.Player.Inventory["rope"] = 1

	res := s.run("inventory")
	s.Equal([]string{"You carry: healing herb x2, rope x1."}, res.Lines)
}

func (s *SessionTestSuite) TestSaveRemembersID() {
	gomock.InOrder(
		s.mockGame.EXPECT().Save(s.ctx, &game.SaveInput{Sim: s.sim}).Return(&game.SaveOutput{SaveID: "save_9"}, nil),
		s.mockGame.EXPECT().Save(s.ctx, &game.SaveInput{Sim: s.sim, SaveID: "save_9"}).Return(&game.SaveOutput{SaveID: "save_9"}, nil),
	)

	s.Equal([]string{"Game saved as save_9."}, s.run("save").Lines)
	s.Equal("save_9", s.session.SaveID)
	s.run("save")
}

func (s *SessionTestSuite) TestLoad() {
	loaded := testutils.NewTestSimulation([]string{"S."}, wilds.Position{})
	loaded.Time = wilds.NewGameTime(4, 9, 0)
	s.mockGame.EXPECT().Load(s.ctx, &game.LoadInput{SaveID: "save_2"}).Return(&game.LoadOutput{Sim: loaded}, nil)

	res := s.run("load save_2")
	s.Equal([]string{"Loaded save_2: Ash, day 4."}, res.Lines)
	s.Same(loaded, s.session.Sim)
	s.Equal("save_2", s.session.SaveID)
}

func (s *SessionTestSuite) TestLoadMissing() {
	s.mockGame.EXPECT().Load(s.ctx, gomock.Any()).Return(nil, errors.NotFound("save missing"))

	res := s.run("load nope")
	s.Equal([]string{"No save named nope."}, res.Lines)
	s.Same(s.sim, s.session.Sim)
}

func (s *SessionTestSuite) TestListSaves() {
	s.mockGame.EXPECT().ListSaves(s.ctx, &game.ListSavesInput{Limit: 10}).
		Return(&game.ListSavesOutput{Saves: []savegame.Summary{
			{ID: "save_1", PlayerName: "Ash", Level: 2, Day: 3, Steps: 40, Mode: wilds.ModeExploration},
		}}, nil)

	res := s.run("saves")
	s.Equal([]string{"save_1  Ash (lvl 2) day 3, 40 steps, exploration"}, res.Lines)
}

func (s *SessionTestSuite) TestQuitAndHelp() {
	s.True(s.run("quit").Quit)
	s.Equal([]string{session.HelpText}, s.run("help").Lines)
}

func (s *SessionTestSuite) TestGameErrorsPropagate() {
	s.mockGame.EXPECT().DismissEvent(s.ctx, gomock.Any()).Return(nil, errors.Internal("boom"))

	cmd, err := parser.Parse("dismiss")
	s.Require().NoError(err)
	_, err = s.session.Execute(s.ctx, cmd)
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}
