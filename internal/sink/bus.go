package sink

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/fabula-api/internal/errors"
)

// EventMessageDelivered is published on the bus for every delivered message
const EventMessageDelivered = "fabula.message.delivered"

// ContextRollMode is the event context key holding the roll mode
const ContextRollMode = "roll_mode"

// BusSink publishes messages on an rpg-toolkit event bus
type BusSink struct {
	bus events.EventBus
}

// BusSinkConfig configures a BusSink
type BusSinkConfig struct {
	Bus events.EventBus
}

// Validate validates the config
func (c *BusSinkConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Bus == nil {
		vb.RequiredField("Bus")
	}
	return vb.Build()
}

// NewBusSink creates a sink that publishes to cfg.Bus
func NewBusSink(cfg *BusSinkConfig) (*BusSink, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid bus sink config")
	}
	return &BusSink{bus: cfg.Bus}, nil
}

// Deliver publishes msg with the message as the event source
func (s *BusSink) Deliver(ctx context.Context, msg *Message) error {
	if msg == nil {
		return errors.InvalidArgument("message is required")
	}
	if !msg.RollMode.IsValid() {
		return errors.InvalidArgumentf("unknown roll mode %q", msg.RollMode)
	}

	event := events.NewGameEvent(EventMessageDelivered, msg, nil)
	event.Context().Set(ContextRollMode, string(msg.RollMode))

	if err := s.bus.Publish(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish message")
	}

	slog.Debug("Message delivered",
		"message_id", msg.ID,
		"actor_id", msg.ActorID,
		"roll_mode", msg.RollMode)

	return nil
}

// MessageHandler receives messages taken off the bus
type MessageHandler func(ctx context.Context, msg *Message) error

// Subscribe registers handler for delivered messages and returns the subscription id
func Subscribe(bus events.EventBus, priority int, handler MessageHandler) string {
	return bus.SubscribeFunc(EventMessageDelivered, priority, func(ctx context.Context, e events.Event) error {
		msg, ok := e.Source().(*Message)
		if !ok {
			return nil
		}
		return handler(ctx, msg)
	})
}
