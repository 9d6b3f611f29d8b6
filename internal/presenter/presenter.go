// Package presenter turns resolution results into the display payload handed
// to the message sink. It does no arithmetic of its own.
package presenter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/fabula-api/internal/engine"
	"github.com/KirkDiggler/fabula-api/internal/entities/fabula"
)

// NoWeaponsContent is shown when an ability borrows weapon numbers but nothing is equipped
const NoWeaponsContent = "No weapons equipped."

// Payload is what the sink renders. Exactly one of Content or Contents is used:
// Contents holds one entry per weapon when an ability was rolled through weapons.
type Payload struct {
	Label    string   `json:"label"`
	Content  string   `json:"content,omitempty"`
	Contents []string `json:"contents,omitempty"`
}

// IsMulti reports whether the payload carries per-weapon contents
func (p *Payload) IsMulti() bool {
	return len(p.Contents) > 0
}

// Lines returns the content strings in display order
func (p *Payload) Lines() []string {
	if p.IsMulti() {
		return p.Contents
	}
	return []string{p.Content}
}

// Description builds the payload for an item that has nothing to roll
func Description(item *fabula.Item) *Payload {
	return &Payload{
		Label:   item.Label(),
		Content: item.Description,
	}
}

// Action builds the payload for a single direct roll
func Action(item *fabula.Item, outcome *engine.ActionOutcome) *Payload {
	return &Payload{
		Label:   item.Label(),
		Content: OutcomeContent(outcome),
	}
}

// Overlay builds the payload for an ability resolved through the actor's weapons
func Overlay(item *fabula.Item, out *engine.ResolveWithOverlayOutput) *Payload {
	payload := &Payload{Label: item.Label()}

	if !out.Overlaid {
		if len(out.Results) > 0 {
			payload.Content = OutcomeContent(out.Results[0].Outcome)
		}
		return payload
	}

	if len(out.Results) == 0 {
		payload.Content = NoWeaponsContent
		return payload
	}

	payload.Contents = make([]string, 0, len(out.Results))
	for _, result := range out.Results {
		payload.Contents = append(payload.Contents, result.Weapon.Name+": "+OutcomeContent(result.Outcome))
	}

	return payload
}

// OutcomeContent renders the dice expression followed by the totals, for
// example "5 + 3 + 1\nAccuracy: 9, HR: 5 Damage: 11 physical Critical hit!"
func OutcomeContent(o *engine.ActionOutcome) string {
	var sb strings.Builder

	sb.WriteString(Expression(o))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Accuracy: %d, HR: %d", o.AccuracyTotal, o.HighRoll))
	if o.HasDamage {
		sb.WriteString(fmt.Sprintf(" Damage: %d", o.DamageTotal))
		if o.DamageType != "" {
			sb.WriteString(" " + o.DamageType)
		}
	}
	if o.IsCritical {
		sb.WriteString(" Critical hit!")
	}

	return sb.String()
}

// Expression is the accuracy roll written out term by term. Zero modifiers are omitted.
func Expression(o *engine.ActionOutcome) string {
	terms := []string{strconv.Itoa(o.DiceFaces[0]), strconv.Itoa(o.DiceFaces[1])}
	if o.AccuracyModifier != 0 {
		terms = append(terms, strconv.Itoa(o.AccuracyModifier))
	}
	if o.OverlayAccuracy != 0 {
		terms = append(terms, strconv.Itoa(o.OverlayAccuracy))
	}
	return strings.ReplaceAll(strings.Join(terms, " + "), "+ -", "- ")
}
