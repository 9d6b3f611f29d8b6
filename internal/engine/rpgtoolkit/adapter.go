// Package rpgtoolkit implements the engine interface on top of rpg-toolkit dice.
package rpgtoolkit

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/fabula-api/internal/engine"
	"github.com/KirkDiggler/fabula-api/internal/engine/combo"
	"github.com/KirkDiggler/fabula-api/internal/entities/fabula"
	"github.com/KirkDiggler/fabula-api/internal/errors"
)

// criticalFloor is the lowest matching face that counts as a critical
const criticalFloor = 6

// alchemyDie is the die size drawn for Alchemy
const alchemyDie = 20

// Adapter implements engine.Engine using an rpg-toolkit dice roller
type Adapter struct {
	diceRoller dice.Roller
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	DiceRoller dice.Roller
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	return nil
}

// NewAdapter creates a new rpg-toolkit engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Adapter{
		diceRoller: cfg.DiceRoller,
	}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// ResolveAction rolls the primary die then the secondary die and applies the item's modifiers
func (a *Adapter) ResolveAction(
	ctx context.Context,
	input *engine.ResolveActionInput,
) (*engine.ResolveActionOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, errors.InvalidArgument("actor is required")
	}
	if input.Item == nil {
		return nil, errors.InvalidArgument("item is required")
	}

	cfg, err := fabula.RollConfigFor(input.Item)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "item cannot be rolled")
	}

	outcome, err := a.resolve(input.Actor, input.Item.ID, cfg, input.Overlay)
	if err != nil {
		return nil, err
	}

	return &engine.ResolveActionOutput{Outcome: outcome}, nil
}

// resolve performs exactly two draws, primary first
func (a *Adapter) resolve(
	actor engine.Combatant,
	itemID string,
	cfg *fabula.RollConfig,
	overlay *engine.Overlay,
) (*engine.ActionOutcome, error) {
	primaryDie, err := actor.AttributeDie(cfg.PrimaryAttribute)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeFailedPrecondition, "actor cannot roll item")
	}
	secondaryDie, err := actor.AttributeDie(cfg.SecondaryAttribute)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeFailedPrecondition, "actor cannot roll item")
	}

	primary, err := a.diceRoller.Roll(primaryDie)
	if err != nil {
		return nil, err
	}
	secondary, err := a.diceRoller.Roll(secondaryDie)
	if err != nil {
		return nil, err
	}

	if overlay == nil {
		overlay = &engine.Overlay{}
	}

	outcome := &engine.ActionOutcome{
		ItemID:             itemID,
		PrimaryAttribute:   cfg.PrimaryAttribute,
		SecondaryAttribute: cfg.SecondaryAttribute,
		PrimaryDie:         primaryDie,
		SecondaryDie:       secondaryDie,
		DiceFaces:          [2]int{primary, secondary},
		AccuracyModifier:   cfg.AccuracyModifier,
		OverlayAccuracy:    overlay.Accuracy,
		AccuracyTotal:      primary + secondary + cfg.AccuracyModifier + overlay.Accuracy,
		IsCritical:         primary == secondary && primary >= criticalFloor,
		HasDamage:          cfg.HasDamage,
		DamageType:         cfg.DamageType,
	}

	if !cfg.HRZero {
		outcome.HighRoll = max(primary, secondary)
	}
	if cfg.HasDamage {
		outcome.DamageModifier = cfg.DamageModifier
		outcome.OverlayDamage = overlay.Damage
		outcome.DamageTotal = outcome.HighRoll + cfg.DamageModifier + overlay.Damage
	}

	return outcome, nil
}

// ResolveWithOverlay rolls the source through every equipped weapon when it
// borrows weapon numbers. The source's modifiers stack on each weapon roll.
func (a *Adapter) ResolveWithOverlay(
	ctx context.Context,
	input *engine.ResolveWithOverlayInput,
) (*engine.ResolveWithOverlayOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, errors.InvalidArgument("actor is required")
	}
	if input.SourceItem == nil {
		return nil, errors.InvalidArgument("source item is required")
	}

	source := input.SourceItem
	cfg, err := fabula.RollConfigFor(source)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "item cannot be rolled")
	}

	if !source.Kind.IsAbility() || !cfg.UsesWeapon() {
		outcome, err := a.resolve(input.Actor, source.ID, cfg, nil)
		if err != nil {
			return nil, err
		}
		return &engine.ResolveWithOverlayOutput{
			Results: []*engine.WeaponOutcome{{Outcome: outcome}},
		}, nil
	}

	overlay := &engine.Overlay{
		Accuracy: cfg.AccuracyModifier,
		Damage:   cfg.DamageModifier,
	}

	weapons := input.Actor.EquippedWeapons()
	results := make([]*engine.WeaponOutcome, 0, len(weapons))
	for _, weapon := range weapons {
		weaponCfg, err := fabula.RollConfigFor(weapon)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "equipped weapon cannot be rolled")
		}

		outcome, err := a.resolve(input.Actor, weapon.ID, weaponCfg, overlay)
		if err != nil {
			return nil, err
		}
		results = append(results, &engine.WeaponOutcome{
			Weapon:  weapon,
			Outcome: outcome,
		})
	}

	return &engine.ResolveWithOverlayOutput{
		Overlaid: true,
		Results:  results,
	}, nil
}

// ResolveAlchemy draws the configured number of d20s in one roll and derives the effect table
func (a *Adapter) ResolveAlchemy(
	ctx context.Context,
	input *engine.ResolveAlchemyInput,
) (*engine.ResolveAlchemyOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, errors.InvalidArgument("actor is required")
	}

	cfg, err := fabula.AlchemyConfigFor(input.Item)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "item cannot be rolled as Alchemy")
	}

	faces, err := a.diceRoller.RollN(cfg.RollCount, alchemyDie)
	if err != nil {
		return nil, err
	}

	level := input.Actor.ActorLevel()
	entries, err := combo.Derive(faces, level, cfg.Trim)
	if err != nil {
		return nil, errors.Wrap(err, "dice roller returned an invalid face")
	}

	return &engine.ResolveAlchemyOutput{
		Result: &engine.AlchemyRollResult{
			Faces:   faces,
			Trim:    cfg.Trim,
			Level:   level,
			Entries: entries,
		},
	}, nil
}
