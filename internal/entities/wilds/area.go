package wilds

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/tools/spatial"

	"github.com/KirkDiggler/rpg-wilds/internal/errors"
)

// EntityTypePlayer is the core.Entity type of the player's marker in an Area
const EntityTypePlayer = "player"

// PlayerEntityID is reserved; content validation rejects agents using it
const PlayerEntityID = "@player"

var (
	_ core.Entity = playerMarker{}
	_ core.Entity = (*WanderingAgent)(nil)
	_ core.Entity = (*EnemyCombatState)(nil)
)

type playerMarker struct{}

func (playerMarker) GetID() string   { return PlayerEntityID }
func (playerMarker) GetType() string { return EntityTypePlayer }

// Grid returns a square grid with the map's dimensions
func (m *Map) Grid() *spatial.SquareGrid {
	return spatial.NewSquareGrid(spatial.SquareGridConfig{
		Width:  float64(m.Width()),
		Height: float64(m.Height()),
	})
}

func toSpatial(p Position) spatial.Position {
	return spatial.Position{X: float64(p.X), Y: float64(p.Y)}
}

func fromSpatial(p spatial.Position) Position {
	return Position{X: int(p.X), Y: int(p.Y)}
}

// Area is the occupancy view of a simulation: the player and every wandering
// agent placed in a room over the map's grid. It is rebuilt from the context
// when needed and never saved; terrain stays on the Map.
type Area struct {
	room *spatial.BasicRoom
}

// NewArea places the player and agents of sim
func NewArea(sim *SimulationContext) (*Area, error) {
	if sim == nil || sim.Map == nil {
		return nil, errors.InvalidArgument("simulation with a map is required")
	}

	room := spatial.NewBasicRoom(spatial.BasicRoomConfig{
		ID:   "wilds",
		Type: "overworld",
		Grid: sim.Map.Grid(),
	})

	if err := room.PlaceEntity(playerMarker{}, toSpatial(sim.Position)); err != nil {
		return nil, errors.Wrapf(err, "failed to place player at %s", sim.Position)
	}

	for _, agent := range sim.Agents {
		if _, taken := room.GetEntityPosition(agent.ID); taken {
			return nil, errors.InvalidArgumentf("duplicate agent id %q", agent.ID)
		}
		if err := room.PlaceEntity(agent, toSpatial(agent.Position)); err != nil {
			return nil, errors.Wrapf(err, "failed to place agent %s", agent.ID).
				WithMeta("position", agent.Position.String())
		}
	}

	return &Area{room: room}, nil
}

// InBounds reports whether p lies on the area's grid
func (a *Area) InBounds(p Position) bool {
	return a.room.GetGrid().IsValidPosition(toSpatial(p))
}

// Occupied reports whether the player or any agent stands on p
func (a *Area) Occupied(p Position) bool {
	return a.room.IsPositionOccupied(toSpatial(p))
}

// AgentAt returns the first agent placed on p, if any
func (a *Area) AgentAt(p Position) *WanderingAgent {
	for _, e := range a.room.GetEntitiesAt(toSpatial(p)) {
		if agent, ok := e.(*WanderingAgent); ok {
			return agent
		}
	}
	return nil
}

// MoveAgent moves agent to p and copies the room's position back onto it
func (a *Area) MoveAgent(agent *WanderingAgent, p Position) error {
	if err := a.room.MoveEntity(agent.ID, toSpatial(p)); err != nil {
		return errors.Wrapf(err, "failed to move agent %s to %s", agent.ID, p)
	}

	pos, ok := a.room.GetEntityPosition(agent.ID)
	if !ok {
		return errors.Internal("agent lost its position after moving")
	}
	agent.Position = fromSpatial(pos)
	return nil
}
