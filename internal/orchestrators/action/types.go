package action

import (
	"github.com/KirkDiggler/fabula-api/internal/engine"
	"github.com/KirkDiggler/fabula-api/internal/entities/fabula"
	"github.com/KirkDiggler/fabula-api/internal/presenter"
	dicesession "github.com/KirkDiggler/fabula-api/internal/repositories/dice_session"
	"github.com/KirkDiggler/fabula-api/internal/sink"
)

// RollItemInput defines the request for using an item
type RollItemInput struct {
	ActorID string
	ItemID  string

	// Context groups the roll log; empty uses DefaultLogContext
	Context string

	// RollMode controls message visibility; empty uses the configured default
	RollMode sink.RollMode
}

// RollItemOutput defines the response for using an item
type RollItemOutput struct {
	// Message is what was delivered to the sink
	Message *sink.Message

	// Outcomes holds the accuracy and damage results, one per weapon for
	// abilities rolled through weapons. Empty for Alchemy and description-only items.
	Outcomes []*engine.WeaponOutcome

	// Alchemy is set for Alchemy abilities
	Alchemy *engine.AlchemyRollResult
}

// GetRollLogInput defines the request for reading an actor's roll log
type GetRollLogInput struct {
	ActorID string
	Context string
}

// GetRollLogOutput defines the response for reading an actor's roll log
type GetRollLogOutput struct {
	Session *dicesession.DiceSession
}

// ClearRollLogInput defines the request for clearing an actor's roll log
type ClearRollLogInput struct {
	ActorID string
	Context string
}

// ClearRollLogOutput defines the response for clearing an actor's roll log
type ClearRollLogOutput struct {
	RollsDeleted int
}

// GetWeaponDisplayInput defines the request for a weapon's sheet strings
type GetWeaponDisplayInput struct {
	ActorID string
	ItemID  string
}

// GetWeaponDisplayOutput defines the response for a weapon's sheet strings
type GetWeaponDisplayOutput struct {
	Display *presenter.WeaponDisplay
}

// ListActorsInput defines the request for listing actors
type ListActorsInput struct{}

// ListActorsOutput defines the response for listing actors
type ListActorsOutput struct {
	Actors []*fabula.Actor
}
