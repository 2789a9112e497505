// Package rng provides a seedable dice roller so whole games can be replayed
package rng

import (
	"hash/fnv"
	"math/rand/v2"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-wilds/internal/errors"
)

const streamSalt = 0x9e3779b97f4a7c15

// Roller is a deterministic dice.Roller backed by a PCG source
type Roller struct {
	seed uint64
	rand *rand.Rand
}

var _ dice.Roller = (*Roller)(nil)

// New creates a roller for the seed
func New(seed uint64) *Roller {
	return &Roller{
		seed: seed,
		rand: rand.New(rand.NewPCG(seed, seed^streamSalt)),
	}
}

// Seed returns the seed the roller was created with
func (r *Roller) Seed() uint64 {
	return r.seed
}

// Roll returns a value in [1, size]
func (r *Roller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}
	return r.rand.IntN(size) + 1, nil
}

// RollN rolls count dice of the given size
func (r *Roller) RollN(count, size int) ([]int, error) {
	if count <= 0 {
		return nil, errors.InvalidArgumentf("dice count must be positive, got %d", count)
	}

	results := make([]int, count)
	for i := range results {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}
	return results, nil
}

// SeedFromString turns a seed word into a numeric seed
func SeedFromString(word string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(strings.ToLower(strings.TrimSpace(word))))
	return h.Sum64()
}
