// Package savegame persists simulation contexts between sessions
package savegame

//go:generate mockgen -destination=mock/mock_repository.go -package=savegamemock github.com/KirkDiggler/rpg-wilds/internal/repositories/savegame Repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
	"github.com/KirkDiggler/rpg-wilds/internal/errors"
)

// Repository stores whole games. Both backends return errors.NotFound for
// unknown ids and list saves newest first.
type Repository interface {
	// Save creates a save when ID is empty, otherwise overwrites it
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get loads a save by ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// List returns save summaries, most recently updated first
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// Delete removes a save
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)

	// Repair finds saves that no longer decode and, unless DryRun, removes them
	Repair(ctx context.Context, input *RepairInput) (*RepairOutput, error)
}

// Record is a stored game
type Record struct {
	ID        string                   `json:"id"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt time.Time                `json:"updated_at"`
	Sim       *wilds.SimulationContext `json:"sim"`
}

// Summary is the listing view of a save
type Summary struct {
	ID         string
	PlayerName string
	Level      int
	Day        int
	Steps      int
	Mode       wilds.Mode
	UpdatedAt  time.Time
}

// Summarize builds the listing view of a record
func Summarize(r *Record) Summary {
	s := Summary{ID: r.ID, UpdatedAt: r.UpdatedAt}
	if r.Sim == nil {
		return s
	}
	s.Day = r.Sim.Time.Day
	s.Steps = r.Sim.Steps
	s.Mode = r.Sim.Mode
	if r.Sim.Player != nil {
		s.PlayerName = r.Sim.Player.Name
		s.Level = r.Sim.Player.Level
	}
	return s
}

// SaveInput defines the request for saving a game
type SaveInput struct {
	// ID is empty for a new save
	ID  string
	Sim *wilds.SimulationContext
}

// SaveOutput defines the response for saving a game
type SaveOutput struct {
	Record *Record
}

// GetInput defines the request for loading a save
type GetInput struct {
	ID string
}

// GetOutput defines the response for loading a save
type GetOutput struct {
	Record *Record
}

// ListInput defines the request for listing saves. Zero Limit lists all.
type ListInput struct {
	Limit int
}

// ListOutput defines the response for listing saves
type ListOutput struct {
	Saves []Summary
}

// DeleteInput defines the request for deleting a save
type DeleteInput struct {
	ID string
}

// RepairInput defines the request for a repair scan
type RepairInput struct {
	// DryRun reports problems without changing anything
	DryRun bool
}

// RepairOutput lists what the scan found
type RepairOutput struct {
	Checked int
	// Corrupt holds ids whose payload failed to decode
	Corrupt []string
	// Dangling holds index entries without a payload (redis only)
	Dangling []string
	Removed  int
}

// DeleteOutput defines the response for deleting a save
type DeleteOutput struct{}

const (
	errInputNil = "input cannot be nil"
	errIDEmpty  = "save ID cannot be empty"
	errSimNil   = "simulation cannot be nil"
)

func validateSave(input *SaveInput) error {
	if input == nil {
		return errors.InvalidArgument(errInputNil)
	}
	if input.Sim == nil {
		return errors.InvalidArgument(errSimNil)
	}
	return nil
}

func validateID(id string) error {
	if id == "" {
		return errors.InvalidArgument(errIDEmpty)
	}
	return nil
}

func decodeRecord(data []byte) (*Record, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to decode save")
	}
	if rec.Sim == nil {
		return nil, errors.DataLossf("save %s has no simulation", rec.ID)
	}
	rec.Sim.EnsureCollections()
	return &rec, nil
}
