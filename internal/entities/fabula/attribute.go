// Package fabula holds the actor and item data the action engine reads.
package fabula

// Attribute names one of an actor's four attributes
type Attribute string

// Attributes
const (
	AttributeDexterity Attribute = "dexterity"
	AttributeInsight   Attribute = "insight"
	AttributeMight     Attribute = "might"
	AttributeWillpower Attribute = "willpower"
)

// AllAttributes lists every attribute in sheet order
var AllAttributes = []Attribute{
	AttributeDexterity,
	AttributeInsight,
	AttributeMight,
	AttributeWillpower,
}

// Abbreviation returns the short form used on weapon display strings
func (a Attribute) Abbreviation() string {
	switch a {
	case AttributeDexterity:
		return "DEX"
	case AttributeInsight:
		return "INS"
	case AttributeMight:
		return "MIG"
	case AttributeWillpower:
		return "WLP"
	default:
		return string(a)
	}
}

// IsValid reports whether a is one of the known attributes
func (a Attribute) IsValid() bool {
	for _, known := range AllAttributes {
		if a == known {
			return true
		}
	}
	return false
}
