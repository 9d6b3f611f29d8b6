package fabula

// Actor is a character sheet as seen by the action engine.
type Actor struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Level int    `json:"level" yaml:"level"`

	// Attributes maps each attribute to its current die size (6, 8, 10 or 12)
	Attributes map[Attribute]int `json:"attributes" yaml:"attributes"`

	// Items in inventory order
	Items []*Item `json:"items,omitempty" yaml:"items,omitempty"`
}

// GetID returns the actor's ID
func (a *Actor) GetID() string {
	return a.ID
}

// GetType returns the entity type for rpg-toolkit
func (a *Actor) GetType() string {
	return "actor"
}

// AttributeDie returns the current die size for attr.
func (a *Actor) AttributeDie(attr Attribute) (int, error) {
	size, ok := a.Attributes[attr]
	if !ok || size <= 0 {
		return 0, &MissingAttributeError{ActorID: a.ID, Attribute: attr}
	}
	return size, nil
}

// EquippedWeapons returns equipped weapons in inventory order
func (a *Actor) EquippedWeapons() []*Item {
	var weapons []*Item
	for _, item := range a.Items {
		if item != nil && item.Kind == KindWeapon && item.Equipped {
			weapons = append(weapons, item)
		}
	}
	return weapons
}

// ActorLevel returns the character level used for effect tiers
func (a *Actor) ActorLevel() int {
	return a.Level
}

// FindItem looks up an inventory item by ID
func (a *Actor) FindItem(itemID string) (*Item, bool) {
	for _, item := range a.Items {
		if item != nil && item.ID == itemID {
			return item, true
		}
	}
	return nil, false
}
