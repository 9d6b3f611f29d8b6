package fabula

import "fmt"

// MissingAttributeError is returned when an actor has no current die for an
// attribute an item wants to roll.
type MissingAttributeError struct {
	ActorID   string
	Attribute Attribute
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("actor %s has no current value for attribute %q", e.ActorID, e.Attribute)
}

// InvalidConfigError is returned when an item's kind and roll configuration disagree.
type InvalidConfigError struct {
	ItemID string
	Kind   ItemKind
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("item %s (%s): %s", e.ItemID, e.Kind, e.Reason)
}
