// Package roller provides dice.Roller implementations for deterministic play
// and tests. Production code uses dice.DefaultRoller from rpg-toolkit.
package roller

import (
	"math/rand"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-casino/internal/errors"
)

var (
	_ dice.Roller = (*Seeded)(nil)
	_ dice.Roller = (*Scripted)(nil)
)

// Seeded rolls from a math/rand source; the same seed yields the same rolls.
type Seeded struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeeded creates a roller seeded with seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewSource(seed))}
}

// Roll returns a value in [1, size]
func (s *Seeded) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("invalid die size: %d", size)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(size) + 1, nil
}

// RollN returns count values in [1, size]
func (s *Seeded) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("invalid dice count: %d", count)
	}
	results := make([]int, count)
	for i := range results {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}
	return results, nil
}

// Scripted returns a fixed sequence of values, one per die. It fails once the
// script runs out or a scripted value does not fit the requested die.
type Scripted struct {
	mu     sync.Mutex
	values []int
}

// NewScripted creates a roller that yields values in order
func NewScripted(values ...int) *Scripted {
	return &Scripted{values: values}
}

// Push appends values to the end of the script
func (s *Scripted) Push(values ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = append(s.values, values...)
}

// Remaining returns how many scripted values have not been used
func (s *Scripted) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values)
}

// Roll returns the next scripted value
func (s *Scripted) Roll(size int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.values) == 0 {
		return 0, errors.FailedPrecondition("scripted roller exhausted")
	}
	v := s.values[0]
	if v < 1 || v > size {
		return 0, errors.InvalidArgumentf("scripted value %d does not fit d%d", v, size)
	}
	s.values = s.values[1:]
	return v, nil
}

// RollN returns the next count scripted values
func (s *Scripted) RollN(count, size int) ([]int, error) {
	results := make([]int, 0, count)
	for range count {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		results = append(results, v)
	}
	return results, nil
}
