package testutils

import (
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-wilds/internal/engine"
	"github.com/KirkDiggler/rpg-wilds/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-wilds/internal/errors"
)

// ScriptedRoller is a dice.Roller that returns queued values in order.
// Values are clamped to [1, size]. Once the queue is empty every roll returns
// its maximum, so percentage chances fail and d20 rolls hit.
type ScriptedRoller struct {
	mu     sync.Mutex
	values []int
	sizes  []int
}

var _ dice.Roller = (*ScriptedRoller)(nil)

// NewScriptedRoller creates a roller preloaded with values
func NewScriptedRoller(values ...int) *ScriptedRoller {
	return &ScriptedRoller{values: append([]int(nil), values...)}
}

// Queue appends values to the script
func (r *ScriptedRoller) Queue(values ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, values...)
}

// Roll pops the next queued value
func (r *ScriptedRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sizes = append(r.sizes, size)
	if len(r.values) == 0 {
		return size, nil
	}

	v := r.values[0]
	r.values = r.values[1:]
	switch {
	case v < 1:
		v = 1
	case v > size:
		v = size
	}
	return v, nil
}

// RollN pops count queued values
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	results := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		results = append(results, v)
	}
	return results, nil
}

// Remaining returns how many queued values are left
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

// Sizes returns the die sizes requested so far, in order
func (r *ScriptedRoller) Sizes() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.sizes...)
}

// NewTestEngine wraps roller in the rpg-toolkit engine adapter
func NewTestEngine(roller *ScriptedRoller) engine.Engine {
	adapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{DiceRoller: roller})
	if err != nil {
		panic(err)
	}
	return adapter
}
