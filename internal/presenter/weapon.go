package presenter

import (
	"fmt"

	"github.com/KirkDiggler/fabula-api/internal/entities/fabula"
)

// NoQuality is shown for weapons without a quality
const NoQuality = "No Quality."

// WeaponDisplay holds the summary strings shown on a weapon sheet
type WeaponDisplay struct {
	Attack  string `json:"attack"`
	Damage  string `json:"damage"`
	Quality string `json:"quality"`
}

// WeaponDisplayFor returns the sheet strings for a weapon, or false for any other item
func WeaponDisplayFor(item *fabula.Item) (*WeaponDisplay, bool) {
	if item == nil || item.Kind != fabula.KindWeapon || item.Weapon == nil {
		return nil, false
	}

	roll := item.Weapon.Roll
	attack := fmt.Sprintf("【%s + %s】", roll.PrimaryAttribute.Abbreviation(), roll.SecondaryAttribute.Abbreviation())
	if roll.AccuracyModifier > 0 {
		attack += fmt.Sprintf(" +%d", roll.AccuracyModifier)
	}

	quality := item.Weapon.Quality
	if quality == "" {
		quality = NoQuality
	}

	return &WeaponDisplay{
		Attack:  attack,
		Damage:  fmt.Sprintf("【HR + %d】 %s", roll.DamageModifier, roll.DamageType),
		Quality: fmt.Sprintf("%s ⬩ %s ⬩ %s", item.Weapon.Hands, item.Weapon.Category, quality),
	}, true
}
