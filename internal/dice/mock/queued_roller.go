// Package dicemock provides a roller that returns predetermined faces
package dicemock

import (
	"fmt"
	"sync"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"
)

// QueuedRoller implements rpg-toolkit dice.Roller with predetermined results
type QueuedRoller struct {
	mu    sync.Mutex
	rolls []int
	index int
	sizes []int
}

// NewQueuedRoller creates a roller that returns rolls in order
func NewQueuedRoller(rolls ...int) *QueuedRoller {
	return &QueuedRoller{rolls: rolls}
}

var _ toolkitdice.Roller = (*QueuedRoller)(nil)

// SetRolls replaces the queue and resets the position
func (q *QueuedRoller) SetRolls(rolls ...int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.rolls = rolls
	q.index = 0
	q.sizes = nil
}

// Sizes returns the die size requested for every face handed out so far
func (q *QueuedRoller) Sizes() []int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]int(nil), q.sizes...)
}

// Remaining returns how many queued faces are left
func (q *QueuedRoller) Remaining() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.rolls) - q.index
}

// Roll implements dice.Roller.Roll
func (q *QueuedRoller) Roll(size int) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.index >= len(q.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", q.index, len(q.rolls))
	}

	roll := q.rolls[q.index]
	if roll < 1 || roll > size {
		return 0, fmt.Errorf("invalid roll %d for d%d", roll, size)
	}
	q.index++
	q.sizes = append(q.sizes, size)
	return roll, nil
}

// RollN implements dice.Roller.RollN
func (q *QueuedRoller) RollN(count, size int) ([]int, error) {
	rolls := make([]int, count)
	for i := range rolls {
		roll, err := q.Roll(size)
		if err != nil {
			return nil, err
		}
		rolls[i] = roll
	}
	return rolls, nil
}
