package fabula

import "strings"

// ItemKind discriminates the item variants
type ItemKind string

// Item kinds
const (
	KindWeapon      ItemKind = "weapon"
	KindSpell       ItemKind = "spell"
	KindSkill       ItemKind = "skill"
	KindMiscAbility ItemKind = "miscAbility"
	KindOther       ItemKind = "other"
)

// IsAbility reports whether the kind carries its roll under a roll info block
func (k ItemKind) IsAbility() bool {
	return k == KindSpell || k == KindSkill || k == KindMiscAbility
}

// Handedness of a weapon
type Handedness int

// Handedness values
const (
	OneHanded Handedness = 1
	TwoHanded Handedness = 2
)

func (h Handedness) String() string {
	if h == OneHanded {
		return "One-Handed"
	}
	return "Two-Handed"
}

// RollConfig drives a single accuracy and damage resolution
type RollConfig struct {
	PrimaryAttribute   Attribute `json:"primary_attribute" yaml:"primary_attribute"`
	SecondaryAttribute Attribute `json:"secondary_attribute" yaml:"secondary_attribute"`
	AccuracyModifier   int       `json:"accuracy_modifier,omitempty" yaml:"accuracy_modifier,omitempty"`
	HasDamage          bool      `json:"has_damage,omitempty" yaml:"has_damage,omitempty"`
	DamageModifier     int       `json:"damage_modifier,omitempty" yaml:"damage_modifier,omitempty"`
	DamageType         string    `json:"damage_type,omitempty" yaml:"damage_type,omitempty"`

	// UseWeaponAccuracy and UseWeaponDamage only apply to spells, skills and misc abilities
	UseWeaponAccuracy bool `json:"use_weapon_accuracy,omitempty" yaml:"use_weapon_accuracy,omitempty"`
	UseWeaponDamage   bool `json:"use_weapon_damage,omitempty" yaml:"use_weapon_damage,omitempty"`

	// HRZero forces the high roll component of damage to 0
	HRZero bool `json:"hr_zero,omitempty" yaml:"hr_zero,omitempty"`
}

// UsesWeapon reports whether either overlay flag is set
func (c *RollConfig) UsesWeapon() bool {
	return c.UseWeaponAccuracy || c.UseWeaponDamage
}

// WeaponData is the weapon variant of an item
type WeaponData struct {
	Roll     RollConfig `json:"roll" yaml:"roll"`
	Hands    Handedness `json:"hands" yaml:"hands"`
	Category string     `json:"category,omitempty" yaml:"category,omitempty"`
	Quality  string     `json:"quality,omitempty" yaml:"quality,omitempty"`
}

// AbilityData is the spell, skill and misc ability variant of an item
type AbilityData struct {
	// RollInfo is nil for abilities that only carry a description
	RollInfo *RollConfig    `json:"roll_info,omitempty" yaml:"roll_info,omitempty"`
	Alchemy  *AlchemyConfig `json:"alchemy,omitempty" yaml:"alchemy,omitempty"`
}

// Item is a tagged union over Kind. Weapon is set for weapons and Ability for
// spells, skills and misc abilities.
type Item struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Kind        ItemKind `json:"kind" yaml:"kind"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Equipped    bool     `json:"equipped,omitempty" yaml:"equipped,omitempty"`

	Weapon  *WeaponData  `json:"weapon,omitempty" yaml:"weapon,omitempty"`
	Ability *AbilityData `json:"ability,omitempty" yaml:"ability,omitempty"`
}

// Label is the "[kind] name" flavor shown with every message about the item
func (i *Item) Label() string {
	return "[" + string(i.Kind) + "] " + i.Name
}

// HasRoll reports whether the item carries any roll configuration
func (i *Item) HasRoll() bool {
	switch {
	case i.Kind == KindWeapon:
		return i.Weapon != nil
	case i.Kind.IsAbility():
		return i.Ability != nil && i.Ability.RollInfo != nil
	default:
		return false
	}
}

// RollConfigFor returns the roll configuration for item, dispatching on its kind.
func RollConfigFor(item *Item) (*RollConfig, error) {
	if item == nil {
		return nil, &InvalidConfigError{Reason: "item is nil"}
	}

	var cfg *RollConfig
	switch {
	case item.Kind == KindWeapon:
		if item.Weapon == nil {
			return nil, &InvalidConfigError{ItemID: item.ID, Kind: item.Kind, Reason: "weapon has no roll configuration"}
		}
		cfg = &item.Weapon.Roll
	case item.Kind.IsAbility():
		if item.Ability == nil || item.Ability.RollInfo == nil {
			return nil, &InvalidConfigError{ItemID: item.ID, Kind: item.Kind, Reason: "ability has no roll info"}
		}
		cfg = item.Ability.RollInfo
	default:
		return nil, &InvalidConfigError{ItemID: item.ID, Kind: item.Kind, Reason: "item kind cannot be rolled"}
	}

	if !cfg.PrimaryAttribute.IsValid() || !cfg.SecondaryAttribute.IsValid() {
		return nil, &InvalidConfigError{ItemID: item.ID, Kind: item.Kind, Reason: "roll attributes must be set"}
	}
	if item.Kind == KindWeapon && cfg.UsesWeapon() {
		return nil, &InvalidConfigError{ItemID: item.ID, Kind: item.Kind, Reason: "weapons cannot borrow a weapon roll"}
	}

	return cfg, nil
}

// IsAlchemy reports whether item is an Alchemy misc ability
func (i *Item) IsAlchemy() bool {
	return i.Kind == KindMiscAbility && strings.Contains(i.Name, "Alchemy")
}
