package presenter

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/fabula-api/internal/engine"
	"github.com/KirkDiggler/fabula-api/internal/entities/fabula"
)

// Alchemy builds the payload for an Alchemy draw: the faces rolled, then one
// line per combination in discovery order.
func Alchemy(item *fabula.Item, result *engine.AlchemyRollResult) *Payload {
	faces := make([]string, 0, len(result.Faces))
	for _, f := range result.Faces {
		faces = append(faces, strconv.Itoa(f))
	}

	var sb strings.Builder
	sb.WriteString("Rolled: " + strings.Join(faces, ", "))
	if result.Trim {
		sb.WriteString(" (smart)")
	}
	for _, entry := range result.Entries {
		sb.WriteString("\n" + entry.Combo + ": " + entry.Effect)
	}

	return &Payload{
		Label:   item.Label(),
		Content: sb.String(),
	}
}
