package dicesession

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/fabula-api/internal/errors"
	"github.com/KirkDiggler/fabula-api/internal/pkg/clock"
)

type memoryLog struct {
	rolls     []DiceRoll
	expiresAt time.Time
}

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu       sync.Mutex
	clock    clock.Clock
	ttl      time.Duration
	maxRolls int
	store    map[string]*memoryLog
}

// NewInMemory creates an in-memory roll log with the same TTL and length
// rules as the Redis repository. A nil clock uses the system clock.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock:    c,
		ttl:      defaultTTL,
		maxRolls: defaultMaxRolls,
		store:    make(map[string]*memoryLog),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

func (r *InMemoryRepository) live(key string) (*memoryLog, bool) {
	entry, ok := r.store[key]
	if !ok {
		return nil, false
	}
	if !r.clock.Now().Before(entry.expiresAt) {
		delete(r.store, key)
		return nil, false
	}
	return entry, true
}

// Append adds rolls to the end of the log
func (r *InMemoryRepository) Append(_ context.Context, input AppendInput) (*AppendOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}
	if len(input.Rolls) == 0 {
		return nil, errors.InvalidArgument("at least one roll is required")
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = r.ttl
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := buildMemoryKey(input.EntityID, input.Context)
	entry, ok := r.live(key)
	if !ok {
		entry = &memoryLog{}
		r.store[key] = entry
	}

	entry.rolls = append(entry.rolls, input.Rolls...)
	if len(entry.rolls) > r.maxRolls {
		entry.rolls = append([]DiceRoll(nil), entry.rolls[len(entry.rolls)-r.maxRolls:]...)
	}
	entry.expiresAt = r.clock.Now().Add(ttl)

	return &AppendOutput{Length: len(entry.rolls)}, nil
}

// Get returns a copy of the log
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.live(buildMemoryKey(input.EntityID, input.Context))
	if !ok || len(entry.rolls) == 0 {
		return nil, errors.NotFoundf("no rolls logged for %s", input.EntityID)
	}

	return &GetOutput{Session: &DiceSession{
		EntityID:  input.EntityID,
		Context:   input.Context,
		Rolls:     append([]DiceRoll(nil), entry.rolls...),
		ExpiresAt: entry.expiresAt,
	}}, nil
}

// Delete removes the log
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := buildMemoryKey(input.EntityID, input.Context)
	entry, ok := r.live(key)
	if !ok {
		return &DeleteOutput{}, nil
	}
	delete(r.store, key)

	return &DeleteOutput{RollsDeleted: len(entry.rolls)}, nil
}

func buildMemoryKey(entityID, context string) string {
	return entityID + ":" + context
}
