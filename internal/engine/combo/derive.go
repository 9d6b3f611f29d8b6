package combo

import (
	"strconv"
	"strings"
)

// Entry is one row of the Alchemy table
type Entry struct {
	// Combo names the two faces that produce the effect, e.g. "7+Any" or "12+5"
	Combo  string `json:"combo"`
	Effect string `json:"effect"`
}

// anyPartner labels self effects that need no partner die
const anyPartner = "Any"

// hostile effects a trimmed table keeps away from friendly targets
var friendlyBlocked = []string{"suffers"}

// helpful effects a trimmed table keeps away from hostile targets
var hostileBlocked = []string{"treats", "gains", "recovers from"}

// Derive builds the deduplicated Alchemy table for a draw. Each face takes a
// turn as the primary die and picks the target; every other face supplies
// the effect. Rows keep discovery order and every effect text appears once.
func Derive(faces []int, level int, trim bool) ([]Entry, error) {
	var all []Entry
	for i, primary := range faces {
		target, err := TargetFor(primary)
		if err != nil {
			return nil, err
		}
		friendly := target.IsFriendly()
		prefix := strconv.Itoa(primary) + "+"

		var pass []Entry
		if !(trim && friendly) {
			pass = append(pass, Entry{Combo: prefix + anyPartner, Effect: string(target) + " " + selfPoison})
		}
		pass = append(pass, Entry{Combo: prefix + anyPartner, Effect: string(target) + " " + selfHeal})

		for j, partner := range faces {
			if j == i {
				continue
			}
			effect, err := EffectFor(partner, level)
			if err != nil {
				return nil, err
			}
			if trim && !suits(friendly, effect) {
				continue
			}
			pass = append(pass, Entry{
				Combo:  prefix + strconv.Itoa(partner),
				Effect: string(target) + " " + effect,
			})
		}

		all = append(all, Dedup(pass)...)
	}

	return Dedup(all), nil
}

// suits reports whether a trimmed table keeps effect for the target side
func suits(friendly bool, effect string) bool {
	blocked := hostileBlocked
	if friendly {
		blocked = friendlyBlocked
	}
	for _, word := range blocked {
		if strings.Contains(effect, word) {
			return false
		}
	}
	return true
}

// Dedup drops entries whose effect text was already seen, keeping the first
// combo that produced it.
func Dedup(entries []Entry) []Entry {
	seen := make(map[string]struct{}, len(entries))
	out := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if _, ok := seen[entry.Effect]; ok {
			continue
		}
		seen[entry.Effect] = struct{}{}
		out = append(out, entry)
	}
	return out
}
