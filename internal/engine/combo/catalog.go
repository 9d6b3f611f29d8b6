// Package combo holds the Alchemy target and effect tables and the pairwise
// derivation that turns a d20 draw into a table of possible effects.
package combo

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/fabula-api/internal/errors"
)

// Face bounds for the Alchemy die
const (
	MinFace = 1
	MaxFace = 20
)

// Target describes who an Alchemy effect lands on
type Target string

// Targets, one per band of the d20
const (
	TargetSelfOrAlly Target = "You or one ally you can see that is present on the scene"
	TargetOneEnemy   Target = "One enemy you can see that is present on the scene"
	TargetAllAllies  Target = "You and every ally present on the scene"
	TargetAllEnemies Target = "Every enemy present on the scene"
)

// IsFriendly reports whether the target is the caster's side
func (t Target) IsFriendly() bool {
	return strings.Contains(string(t), "ally")
}

// TargetFor maps a face to its target band: 1-6, 7-11, 12-16, 17-20.
func TargetFor(face int) (Target, error) {
	switch {
	case face < MinFace || face > MaxFace:
		return "", errors.OutOfRangef("alchemy face %d is outside %d-%d", face, MinFace, MaxFace)
	case face <= 6:
		return TargetSelfOrAlly, nil
	case face <= 11:
		return TargetOneEnemy, nil
	case face <= 16:
		return TargetAllAllies, nil
	default:
		return TargetAllEnemies, nil
	}
}

// DamageForLevel is the damage dealt by the elemental entries at a character level
func DamageForLevel(level int) int {
	switch {
	case level >= 40:
		return 40
	case level >= 20:
		return 30
	default:
		return 20
	}
}

const dieSizeUp = "as if they were one die size higher (up to a maximum of d12) until the end of your next turn"

// effects is indexed by face-1. %d is the level-scaled damage.
var effects = [MaxFace]string{
	"treats their Dexterity and Insight " + dieSizeUp,
	"treats their Might and Willpower " + dieSizeUp,
	"suffers %d bolt damage",
	"suffers %d dark damage",
	"suffers %d earth damage",
	"suffers %d air damage",
	"suffers %d fire damage",
	"suffers %d ice damage",
	"gains Resistance to air and bolt damage until the end of the scene",
	"gains Resistance to dark and earth damage until the end of the scene",
	"gains Resistance to fire and ice damage until the end of the scene",
	"suffers enraged",
	"suffers poisoned",
	"suffers dazed, shaken, slow, and weak",
	"recovers from all status effects",
	"recovers 50 Hit Points",
	"recovers 50 Hit Points",
	"recovers 50 Mind Points",
	"recovers 100 Hit Points",
	"recovers 50 Hit Points and 50 Mind Points",
}

// EffectFor returns the effect text for a face at the given character level.
func EffectFor(face, level int) (string, error) {
	if face < MinFace || face > MaxFace {
		return "", errors.OutOfRangef("alchemy face %d is outside %d-%d", face, MinFace, MaxFace)
	}

	effect := effects[face-1]
	if face >= 3 && face <= 8 {
		return fmt.Sprintf(effect, DamageForLevel(level)), nil
	}
	return effect, nil
}

// Self effects available on every primary face regardless of its partner
const (
	selfPoison = "suffers 20 poison damage"
	selfHeal   = "recovers 30 Hit Points"
)
