package engine

import (
	"github.com/KirkDiggler/fabula-api/internal/engine/combo"
	"github.com/KirkDiggler/fabula-api/internal/entities/fabula"
)

// Overlay carries the bonuses a spell or skill adds on top of a borrowed weapon roll
type Overlay struct {
	Accuracy int
	Damage   int
}

// ResolveActionInput contains the actor and the item to roll
type ResolveActionInput struct {
	Actor   Combatant
	Item    *fabula.Item
	Overlay *Overlay
}

// ResolveActionOutput contains the outcome of one roll
type ResolveActionOutput struct {
	Outcome *ActionOutcome
}

// ActionOutcome is the result of one accuracy and damage resolution
type ActionOutcome struct {
	ItemID string

	PrimaryAttribute   fabula.Attribute
	SecondaryAttribute fabula.Attribute
	PrimaryDie         int
	SecondaryDie       int

	// DiceFaces holds the primary face then the secondary face
	DiceFaces [2]int

	AccuracyModifier int
	OverlayAccuracy  int
	AccuracyTotal    int
	IsCritical       bool

	// HighRoll is the larger face, or 0 when the item zeroes it
	HighRoll       int
	HasDamage      bool
	DamageModifier int
	OverlayDamage  int
	DamageTotal    int
	DamageType     string
}

// ResolveWithOverlayInput contains the actor and the spell, skill or ability being used
type ResolveWithOverlayInput struct {
	Actor      Combatant
	SourceItem *fabula.Item
}

// ResolveWithOverlayOutput contains one result per equipped weapon, or a
// single direct result when the source does not borrow weapon numbers
type ResolveWithOverlayOutput struct {
	Overlaid bool
	Results  []*WeaponOutcome
}

// WeaponOutcome pairs a weapon with the outcome rolled through it. Weapon is
// nil for a direct roll of the source item.
type WeaponOutcome struct {
	Weapon  *fabula.Item
	Outcome *ActionOutcome
}

// ResolveAlchemyInput contains the actor and the Alchemy ability
type ResolveAlchemyInput struct {
	Actor Combatant
	Item  *fabula.Item
}

// ResolveAlchemyOutput contains the Alchemy draw and its effect table
type ResolveAlchemyOutput struct {
	Result *AlchemyRollResult
}

// AlchemyRollResult is the raw draw plus the deduplicated effect table
type AlchemyRollResult struct {
	Faces   []int
	Trim    bool
	Level   int
	Entries []combo.Entry
}
