// Package dicesession stores the recent roll log for an actor
package dicesession

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=dicesessionmock github.com/KirkDiggler/fabula-api/internal/repositories/dice_session Repository

// Roll kinds
const (
	RollKindAction  = "action"
	RollKindAlchemy = "alchemy"
)

// DiceSession is the roll log of one actor within a context
type DiceSession struct {
	// Actor that made these rolls
	EntityID string

	// Context groups related rolls (e.g. "table", "scene_3")
	Context string

	// Rolls in the order they were made, oldest first
	Rolls []DiceRoll

	// When the log expires unless another roll is appended
	ExpiresAt time.Time
}

// DiceRoll is one recorded resolution
type DiceRoll struct {
	RollID   string `json:"roll_id"`
	ItemID   string `json:"item_id"`
	ItemName string `json:"item_name"`
	Kind     string `json:"kind"`

	// Weapon the roll went through, empty for direct rolls
	WeaponID string `json:"weapon_id,omitempty"`

	// Faces rolled, primary before secondary for action rolls
	Dice []int `json:"dice"`

	// Accuracy total for action rolls, unused for Alchemy
	Total       int       `json:"total,omitempty"`
	Description string    `json:"description"`
	RolledAt    time.Time `json:"rolled_at"`
}

// AppendInput contains the rolls to add to a log
type AppendInput struct {
	EntityID string
	Context  string
	Rolls    []DiceRoll

	// TTL refreshes the log lifetime; zero uses the default
	TTL time.Duration
}

// AppendOutput reports the log size after the append
type AppendOutput struct {
	Length int
}

// GetInput identifies a roll log
type GetInput struct {
	EntityID string
	Context  string
}

// GetOutput contains the roll log
type GetOutput struct {
	Session *DiceSession
}

// DeleteInput identifies a roll log
type DeleteInput struct {
	EntityID string
	Context  string
}

// DeleteOutput contains the number of rolls removed
type DeleteOutput struct {
	RollsDeleted int
}

// Repository defines the roll log storage operations
type Repository interface {
	// Append adds rolls to the end of the log, creating it when needed
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// Get returns the log, or a not found error when it is empty or expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes the log
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
