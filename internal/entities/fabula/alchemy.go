package fabula

import (
	"fmt"
	"strings"
)

// Alchemy roll counts
const (
	AlchemyBasicRolls    = 2
	AlchemyAdvancedRolls = 3
	AlchemySuperiorRolls = 4

	// MaxAlchemyRolls caps an explicit roll_count
	MaxAlchemyRolls = AlchemySuperiorRolls
)

// AlchemyConfig controls an Alchemy draw
type AlchemyConfig struct {
	RollCount int `json:"roll_count" yaml:"roll_count"`

	// Trim drops effects that do not suit the target (damage on allies, buffs on enemies)
	Trim bool `json:"trim,omitempty" yaml:"trim,omitempty"`
}

// AlchemyConfigFromName derives a config from an item name such as
// "Superior Alchemy (smart)". Only used when importing items that predate
// the explicit fields.
func AlchemyConfigFromName(name string) AlchemyConfig {
	cfg := AlchemyConfig{RollCount: AlchemyBasicRolls}
	switch {
	case strings.Contains(name, "Superior"):
		cfg.RollCount = AlchemySuperiorRolls
	case strings.Contains(name, "Advanced"):
		cfg.RollCount = AlchemyAdvancedRolls
	}
	cfg.Trim = strings.Contains(name, "(smart)")
	return cfg
}

// NormalizeAlchemy fills in a missing or empty Alchemy config from the item
// name. Items that are not Alchemy misc abilities are left untouched.
func NormalizeAlchemy(item *Item) {
	if item == nil || !item.IsAlchemy() {
		return
	}
	if item.Ability == nil {
		item.Ability = &AbilityData{}
	}
	if item.Ability.Alchemy != nil && item.Ability.Alchemy.RollCount > 0 {
		return
	}
	cfg := AlchemyConfigFromName(item.Name)
	item.Ability.Alchemy = &cfg
}

// NormalizeActor applies NormalizeAlchemy to every item the actor carries
func NormalizeActor(actor *Actor) {
	if actor == nil {
		return
	}
	for _, item := range actor.Items {
		NormalizeAlchemy(item)
	}
}

// AlchemyConfigFor returns the alchemy config for item, falling back to the
// name heuristic when the item has none.
func AlchemyConfigFor(item *Item) (AlchemyConfig, error) {
	if item == nil || !item.IsAlchemy() {
		id, kind := "", ItemKind("")
		if item != nil {
			id, kind = item.ID, item.Kind
		}
		return AlchemyConfig{}, &InvalidConfigError{ItemID: id, Kind: kind, Reason: "item is not an Alchemy ability"}
	}
	if item.Ability != nil && item.Ability.Alchemy != nil && item.Ability.Alchemy.RollCount > 0 {
		cfg := *item.Ability.Alchemy
		if cfg.RollCount > MaxAlchemyRolls {
			return AlchemyConfig{}, &InvalidConfigError{
				ItemID: item.ID,
				Kind:   item.Kind,
				Reason: fmt.Sprintf("alchemy roll count %d exceeds %d", cfg.RollCount, MaxAlchemyRolls),
			}
		}
		return cfg, nil
	}
	return AlchemyConfigFromName(item.Name), nil
}

// ValidateAlchemy checks every Alchemy item the actor carries
func ValidateAlchemy(actor *Actor) error {
	if actor == nil {
		return nil
	}
	for _, item := range actor.Items {
		if item == nil || !item.IsAlchemy() {
			continue
		}
		if _, err := AlchemyConfigFor(item); err != nil {
			return err
		}
	}
	return nil
}
