// Package engine defines the action resolution rules surface
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/fabula-api/internal/engine Engine

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/fabula-api/internal/entities/fabula"
)

// Engine resolves accuracy, damage and Alchemy rolls for an actor's items
type Engine interface {
	// ResolveAction rolls one item against the actor's attributes
	ResolveAction(ctx context.Context, input *ResolveActionInput) (*ResolveActionOutput, error)

	// ResolveWithOverlay rolls a spell or skill through each equipped weapon
	// when it borrows weapon numbers, or directly otherwise
	ResolveWithOverlay(ctx context.Context, input *ResolveWithOverlayInput) (*ResolveWithOverlayOutput, error)

	// ResolveAlchemy draws d20s for an Alchemy ability and derives its effect table
	ResolveAlchemy(ctx context.Context, input *ResolveAlchemyInput) (*ResolveAlchemyOutput, error)
}

// Combatant is the actor data the engine reads. It never mutates it.
type Combatant interface {
	core.Entity

	// AttributeDie returns the current die size or a *fabula.MissingAttributeError
	AttributeDie(attr fabula.Attribute) (int, error)

	// EquippedWeapons returns equipped weapons in inventory order
	EquippedWeapons() []*fabula.Item

	// ActorLevel returns the character level
	ActorLevel() int
}
