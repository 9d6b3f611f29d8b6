// Package actor provides storage for actors and their inventories
package actor

//go:generate mockgen -destination=mock/mock_repository.go -package=actormock github.com/KirkDiggler/fabula-api/internal/repositories/actor Repository

import (
	"context"

	"github.com/KirkDiggler/fabula-api/internal/entities/fabula"
	"github.com/KirkDiggler/fabula-api/internal/errors"
)

// Repository defines the interface for actor persistence
type Repository interface {
	// Get retrieves an actor by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the actor doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put creates or replaces an actor, filling in Alchemy configs from item names
	// Returns errors.InvalidArgument when the actor or its ID is missing
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// List returns every stored actor ordered by ID
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// GetInput defines the input for getting an actor
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an actor
type GetOutput struct {
	Actor *fabula.Actor
}

// PutInput defines the input for storing an actor
type PutInput struct {
	Actor *fabula.Actor
}

// PutOutput defines the output for storing an actor
type PutOutput struct {
	Actor *fabula.Actor
}

// ListInput defines the input for listing actors
type ListInput struct{}

// ListOutput defines the output for listing actors
type ListOutput struct {
	Actors []*fabula.Actor
}

const (
	errActorNil     = "actor cannot be nil"
	errActorIDEmpty = "actor ID cannot be empty"
)

func validatePut(input PutInput) error {
	if input.Actor == nil {
		return errors.InvalidArgument(errActorNil)
	}
	if input.Actor.ID == "" {
		return errors.InvalidArgument(errActorIDEmpty)
	}
	if err := fabula.ValidateAlchemy(input.Actor); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid actor")
	}
	return nil
}
