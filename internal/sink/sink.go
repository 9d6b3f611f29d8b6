// Package sink delivers formatted roll messages to whoever is listening.
package sink

//go:generate mockgen -destination=mock/mock_sink.go -package=sinkmock github.com/KirkDiggler/fabula-api/internal/sink Sink

import (
	"context"
	"strings"

	"github.com/KirkDiggler/fabula-api/internal/presenter"
)

// RollMode controls who can see a delivered message
type RollMode string

// Roll modes
const (
	RollModePublic RollMode = "public"
	RollModeGM     RollMode = "gm"
	RollModeBlind  RollMode = "blind"
	RollModeSelf   RollMode = "self"
)

// AllRollModes lists every accepted roll mode
var AllRollModes = []string{
	string(RollModePublic),
	string(RollModeGM),
	string(RollModeBlind),
	string(RollModeSelf),
}

// IsValid reports whether m is a known roll mode
func (m RollMode) IsValid() bool {
	for _, known := range AllRollModes {
		if string(m) == known {
			return true
		}
	}
	return false
}

// ParseRollMode normalizes s, treating an empty string as public
func ParseRollMode(s string) (RollMode, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RollModePublic, true
	}
	mode := RollMode(s)
	return mode, mode.IsValid()
}

// MessageType is the entity type reported by Message
const MessageType = "message"

// Message is one delivery: the payload, the actor speaking and the visibility
type Message struct {
	ID       string             `json:"id"`
	ActorID  string             `json:"actor_id"`
	RollMode RollMode           `json:"roll_mode"`
	Payload  *presenter.Payload `json:"payload"`
}

// GetID returns the message id
func (m *Message) GetID() string {
	return m.ID
}

// GetType returns the entity type
func (m *Message) GetType() string {
	return MessageType
}

// Sink receives finished messages
type Sink interface {
	Deliver(ctx context.Context, msg *Message) error
}
