// Package dice provides rpg-toolkit compatible rollers beyond the default
// crypto roller.
package dice

import (
	"fmt"
	"math/rand"
	"sync"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"
)

// SeededRoller is a deterministic roller. Given the same seed it produces
// the same sequence of faces, which makes replays and CLI runs reproducible.
type SeededRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeeded creates a roller seeded with seed
func NewSeeded(seed int64) *SeededRoller {
	return &SeededRoller{rng: rand.New(rand.NewSource(seed))}
}

var _ toolkitdice.Roller = (*SeededRoller)(nil)

// Roll returns a face in [1, size]
func (r *SeededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("invalid die size: %d", size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(size) + 1, nil
}

// RollN returns count faces in [1, size]
func (r *SeededRoller) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, fmt.Errorf("invalid dice count: %d", count)
	}

	faces := make([]int, count)
	for i := range faces {
		face, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		faces[i] = face
	}
	return faces, nil
}
