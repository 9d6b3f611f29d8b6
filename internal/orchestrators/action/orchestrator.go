// Package action implements the orchestrator that rolls an actor's items and
// delivers the result
package action

//go:generate mockgen -destination=mock/mock_service.go -package=actionmock github.com/KirkDiggler/fabula-api/internal/orchestrators/action Service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/fabula-api/internal/engine"
	"github.com/KirkDiggler/fabula-api/internal/entities/fabula"
	"github.com/KirkDiggler/fabula-api/internal/errors"
	"github.com/KirkDiggler/fabula-api/internal/pkg/clock"
	"github.com/KirkDiggler/fabula-api/internal/pkg/idgen"
	"github.com/KirkDiggler/fabula-api/internal/presenter"
	"github.com/KirkDiggler/fabula-api/internal/repositories/actor"
	dicesession "github.com/KirkDiggler/fabula-api/internal/repositories/dice_session"
	"github.com/KirkDiggler/fabula-api/internal/sink"
)

const (
	// DefaultLogContext is the roll log used when a request names none
	DefaultLogContext = "table"

	// DefaultRollLogTTL is how long a roll log lives after its last roll
	DefaultRollLogTTL = 15 * time.Minute
)

// Service defines the interface for item actions
type Service interface {
	// RollItem resolves an item and delivers the formatted message
	RollItem(ctx context.Context, input *RollItemInput) (*RollItemOutput, error)

	// GetRollLog returns the actor's recent rolls
	GetRollLog(ctx context.Context, input *GetRollLogInput) (*GetRollLogOutput, error)

	// ClearRollLog removes the actor's recent rolls
	ClearRollLog(ctx context.Context, input *ClearRollLogInput) (*ClearRollLogOutput, error)

	// GetWeaponDisplay returns the attack, damage and quality strings of a weapon
	GetWeaponDisplay(ctx context.Context, input *GetWeaponDisplayInput) (*GetWeaponDisplayOutput, error)

	// ListActors returns every known actor ordered by ID
	ListActors(ctx context.Context, input *ListActorsInput) (*ListActorsOutput, error)
}

// Config holds the dependencies for the action orchestrator
type Config struct {
	ActorRepo       actor.Repository
	DiceSessionRepo dicesession.Repository
	Engine          engine.Engine
	Sink            sink.Sink
	IDGenerator     idgen.Generator
	Clock           clock.Clock

	// DefaultRollMode applies when a request carries no roll mode; empty means public
	DefaultRollMode sink.RollMode

	// RollLogTTL is passed to the roll log on every append; zero uses DefaultRollLogTTL
	RollLogTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ActorRepo == nil {
		vb.RequiredField("ActorRepo")
	}
	if c.DiceSessionRepo == nil {
		vb.RequiredField("DiceSessionRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Sink == nil {
		vb.RequiredField("Sink")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.DefaultRollMode != "" && !c.DefaultRollMode.IsValid() {
		errors.ValidateEnum("DefaultRollMode", string(c.DefaultRollMode), sink.AllRollModes, vb)
	}
	if c.RollLogTTL < 0 {
		vb.Field("RollLogTTL", "cannot be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	actorRepo       actor.Repository
	diceSessionRepo dicesession.Repository
	engine          engine.Engine
	sink            sink.Sink
	idGen           idgen.Generator
	clock           clock.Clock
	defaultRollMode sink.RollMode
	rollLogTTL      time.Duration
}

// NewOrchestrator creates a new action orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	mode := cfg.DefaultRollMode
	if mode == "" {
		mode = sink.RollModePublic
	}
	ttl := cfg.RollLogTTL
	if ttl == 0 {
		ttl = DefaultRollLogTTL
	}

	return &orchestrator{
		actorRepo:       cfg.ActorRepo,
		diceSessionRepo: cfg.DiceSessionRepo,
		engine:          cfg.Engine,
		sink:            cfg.Sink,
		idGen:           cfg.IDGenerator,
		clock:           c,
		defaultRollMode: mode,
		rollLogTTL:      ttl,
	}, nil
}

// resolution is what one dispatch produced before delivery
type resolution struct {
	payload  *presenter.Payload
	outcomes []*engine.WeaponOutcome
	alchemy  *engine.AlchemyRollResult
	rolls    []dicesession.DiceRoll
}

// RollItem resolves an item and delivers the formatted message
func (o *orchestrator) RollItem(ctx context.Context, input *RollItemInput) (*RollItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.ActorID == "" {
		vb.RequiredField("actor_id")
	}
	if input.ItemID == "" {
		vb.RequiredField("item_id")
	}
	mode := input.RollMode
	if mode == "" {
		mode = o.defaultRollMode
	}
	if !mode.IsValid() {
		errors.ValidateEnum("roll_mode", string(mode), sink.AllRollModes, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	actorOut, err := o.actorRepo.Get(ctx, actor.GetInput{ID: input.ActorID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get actor %s", input.ActorID)
	}
	a := actorOut.Actor

	item, ok := a.FindItem(input.ItemID)
	if !ok {
		return nil, errors.NotFoundf("item %s not found on actor %s", input.ItemID, input.ActorID)
	}

	res, err := o.resolve(ctx, a, item)
	if err != nil {
		return nil, err
	}

	if len(res.rolls) > 0 {
		logContext := input.Context
		if logContext == "" {
			logContext = DefaultLogContext
		}
		_, err := o.diceSessionRepo.Append(ctx, dicesession.AppendInput{
			EntityID: a.ID,
			Context:  logContext,
			Rolls:    res.rolls,
			TTL:      o.rollLogTTL,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to record rolls")
		}
	}

	msg := &sink.Message{
		ID:       o.idGen.Generate(),
		ActorID:  a.ID,
		RollMode: mode,
		Payload:  res.payload,
	}
	if err := o.sink.Deliver(ctx, msg); err != nil {
		return nil, errors.Wrap(err, "failed to deliver message")
	}

	slog.Info("Item rolled",
		"actor_id", a.ID,
		"item_id", item.ID,
		"kind", item.Kind,
		"roll_mode", mode,
		"rolls", len(res.rolls))

	return &RollItemOutput{
		Message:  msg,
		Outcomes: res.outcomes,
		Alchemy:  res.alchemy,
	}, nil
}

// resolve dispatches on the item variant
func (o *orchestrator) resolve(ctx context.Context, a *fabula.Actor, item *fabula.Item) (*resolution, error) {
	switch {
	case item.Kind == fabula.KindWeapon:
		out, err := o.engine.ResolveAction(ctx, &engine.ResolveActionInput{Actor: a, Item: item})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve %s", item.ID)
		}
		return &resolution{
			payload:  presenter.Action(item, out.Outcome),
			outcomes: []*engine.WeaponOutcome{{Outcome: out.Outcome}},
			rolls:    []dicesession.DiceRoll{o.actionRoll(item, nil, out.Outcome)},
		}, nil

	case item.IsAlchemy():
		out, err := o.engine.ResolveAlchemy(ctx, &engine.ResolveAlchemyInput{Actor: a, Item: item})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve %s", item.ID)
		}
		return &resolution{
			payload: presenter.Alchemy(item, out.Result),
			alchemy: out.Result,
			rolls:   []dicesession.DiceRoll{o.alchemyRoll(item, out.Result)},
		}, nil

	case item.HasRoll():
		out, err := o.engine.ResolveWithOverlay(ctx, &engine.ResolveWithOverlayInput{Actor: a, SourceItem: item})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve %s", item.ID)
		}
		if out.Overlaid && len(out.Results) == 0 {
			slog.Warn("Ability borrows weapon numbers but no weapon is equipped",
				"actor_id", a.ID,
				"item_id", item.ID)
		}
		rolls := make([]dicesession.DiceRoll, 0, len(out.Results))
		for _, r := range out.Results {
			rolls = append(rolls, o.actionRoll(item, r.Weapon, r.Outcome))
		}
		return &resolution{
			payload:  presenter.Overlay(item, out),
			outcomes: out.Results,
			rolls:    rolls,
		}, nil

	default:
		return &resolution{payload: presenter.Description(item)}, nil
	}
}

func (o *orchestrator) actionRoll(item, weapon *fabula.Item, outcome *engine.ActionOutcome) dicesession.DiceRoll {
	roll := dicesession.DiceRoll{
		RollID:      o.idGen.Generate(),
		ItemID:      item.ID,
		ItemName:    item.Name,
		Kind:        dicesession.RollKindAction,
		Dice:        []int{outcome.DiceFaces[0], outcome.DiceFaces[1]},
		Total:       outcome.AccuracyTotal,
		Description: presenter.OutcomeContent(outcome),
		RolledAt:    o.clock.Now(),
	}
	if weapon != nil {
		roll.WeaponID = weapon.ID
	}
	return roll
}

func (o *orchestrator) alchemyRoll(item *fabula.Item, result *engine.AlchemyRollResult) dicesession.DiceRoll {
	return dicesession.DiceRoll{
		RollID:      o.idGen.Generate(),
		ItemID:      item.ID,
		ItemName:    item.Name,
		Kind:        dicesession.RollKindAlchemy,
		Dice:        append([]int(nil), result.Faces...),
		Description: fmt.Sprintf("%d effects", len(result.Entries)),
		RolledAt:    o.clock.Now(),
	}
}

// GetRollLog returns the actor's recent rolls
func (o *orchestrator) GetRollLog(ctx context.Context, input *GetRollLogInput) (*GetRollLogOutput, error) {
	if input == nil || input.ActorID == "" {
		return nil, errors.InvalidArgument("actor ID is required")
	}

	logContext := input.Context
	if logContext == "" {
		logContext = DefaultLogContext
	}

	out, err := o.diceSessionRepo.Get(ctx, dicesession.GetInput{
		EntityID: input.ActorID,
		Context:  logContext,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get roll log for %s", input.ActorID)
	}

	return &GetRollLogOutput{Session: out.Session}, nil
}

// ClearRollLog removes the actor's recent rolls
func (o *orchestrator) ClearRollLog(ctx context.Context, input *ClearRollLogInput) (*ClearRollLogOutput, error) {
	if input == nil || input.ActorID == "" {
		return nil, errors.InvalidArgument("actor ID is required")
	}

	logContext := input.Context
	if logContext == "" {
		logContext = DefaultLogContext
	}

	out, err := o.diceSessionRepo.Delete(ctx, dicesession.DeleteInput{
		EntityID: input.ActorID,
		Context:  logContext,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to clear roll log for %s", input.ActorID)
	}

	slog.Info("Roll log cleared",
		"actor_id", input.ActorID,
		"context", logContext,
		"rolls_deleted", out.RollsDeleted)

	return &ClearRollLogOutput{RollsDeleted: out.RollsDeleted}, nil
}

// GetWeaponDisplay returns the attack, damage and quality strings of a weapon
func (o *orchestrator) GetWeaponDisplay(ctx context.Context, input *GetWeaponDisplayInput) (*GetWeaponDisplayOutput, error) {
	if input == nil || input.ActorID == "" || input.ItemID == "" {
		return nil, errors.InvalidArgument("actor ID and item ID are required")
	}

	actorOut, err := o.actorRepo.Get(ctx, actor.GetInput{ID: input.ActorID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get actor %s", input.ActorID)
	}

	item, ok := actorOut.Actor.FindItem(input.ItemID)
	if !ok {
		return nil, errors.NotFoundf("item %s not found on actor %s", input.ItemID, input.ActorID)
	}

	display, ok := presenter.WeaponDisplayFor(item)
	if !ok {
		return nil, errors.InvalidArgumentf("item %s is not a weapon", input.ItemID)
	}

	return &GetWeaponDisplayOutput{Display: display}, nil
}

// ListActors returns every known actor ordered by ID
func (o *orchestrator) ListActors(ctx context.Context, _ *ListActorsInput) (*ListActorsOutput, error) {
	out, err := o.actorRepo.List(ctx, actor.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list actors")
	}

	return &ListActorsOutput{Actors: out.Actors}, nil
}
