package actor

import (
	"context"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v2"

	"github.com/KirkDiggler/fabula-api/internal/entities/fabula"
	"github.com/KirkDiggler/fabula-api/internal/errors"
)

// File is the layout of an actors YAML file
type File struct {
	Actors []*fabula.Actor `yaml:"actors"`
}

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*fabula.Actor
}

// NewInMemory creates a new in-memory repository holding actors
func NewInMemory(actors ...*fabula.Actor) *InMemoryRepository {
	r := &InMemoryRepository{
		store: make(map[string]*fabula.Actor, len(actors)),
	}
	for _, a := range actors {
		fabula.NormalizeActor(a)
		r.store[a.ID] = a
	}
	return r
}

// LoadFile reads actors from a YAML file
func LoadFile(path string) ([]*fabula.Actor, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from operator config
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read actor file %s", path)
	}

	return ParseFile(data)
}

// ParseFile decodes an actors YAML document
func ParseFile(data []byte) ([]*fabula.Actor, error) {
	var file File
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse actor file")
	}

	seen := make(map[string]bool, len(file.Actors))
	for i, a := range file.Actors {
		if a == nil || a.ID == "" {
			return nil, errors.InvalidArgumentf("actor %d has no id", i)
		}
		if seen[a.ID] {
			return nil, errors.InvalidArgumentf("actor %s is defined twice", a.ID)
		}
		seen[a.ID] = true
		if err := fabula.ValidateAlchemy(a); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid actor "+a.ID)
		}
	}

	return file.Actors, nil
}

// NewFromFile loads a YAML actor file into an in-memory repository
func NewFromFile(path string) (*InMemoryRepository, error) {
	actors, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return NewInMemory(actors...), nil
}

// Get retrieves an actor by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	a, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("actor with ID %s not found", input.ID)
	}

	return &GetOutput{Actor: a}, nil
}

// Put stores an actor
func (r *InMemoryRepository) Put(_ context.Context, input PutInput) (*PutOutput, error) {
	if err := validatePut(input); err != nil {
		return nil, err
	}

	fabula.NormalizeActor(input.Actor)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[input.Actor.ID] = input.Actor

	return &PutOutput{Actor: input.Actor}, nil
}

// List returns every actor ordered by ID
func (r *InMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	actors := make([]*fabula.Actor, 0, len(r.store))
	for _, a := range r.store {
		actors = append(actors, a)
	}
	sort.Slice(actors, func(i, j int) bool {
		return actors[i].ID < actors[j].ID
	})

	return &ListOutput{Actors: actors}, nil
}
