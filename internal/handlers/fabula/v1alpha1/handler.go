// Package v1alpha1 handles the fabula ActionService gRPC interface
package v1alpha1

import (
	"context"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/fabula-api/internal/engine"
	"github.com/KirkDiggler/fabula-api/internal/entities/fabula"
	"github.com/KirkDiggler/fabula-api/internal/errors"
	"github.com/KirkDiggler/fabula-api/internal/orchestrators/action"
	dicesession "github.com/KirkDiggler/fabula-api/internal/repositories/dice_session"
	"github.com/KirkDiggler/fabula-api/internal/sink"
)

// HandlerConfig holds dependencies for the action handler
type HandlerConfig struct {
	ActionService action.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.ActionService == nil {
		return errors.InvalidArgument("action service is required")
	}
	return nil
}

// Handler implements ActionServiceServer
type Handler struct {
	actionService action.Service
}

// NewHandler creates a new action handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{actionService: cfg.ActionService}, nil
}

var _ ActionServiceServer = (*Handler)(nil)

// RollItem resolves an actor's item. Request fields: actor_id, item_id,
// optional context and roll_mode.
func (h *Handler) RollItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	actorID := stringField(req, "actor_id")
	itemID := stringField(req, "item_id")
	if actorID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("actor_id is required"))
	}
	if itemID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("item_id is required"))
	}

	out, err := h.actionService.RollItem(ctx, &action.RollItemInput{
		ActorID:  actorID,
		ItemID:   itemID,
		Context:  stringField(req, "context"),
		RollMode: sink.RollMode(stringField(req, "roll_mode")),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := map[string]any{
		"message": convertMessage(out.Message),
	}
	if len(out.Outcomes) > 0 {
		outcomes := make([]any, 0, len(out.Outcomes))
		for _, o := range out.Outcomes {
			outcomes = append(outcomes, convertOutcome(o))
		}
		resp["outcomes"] = outcomes
	}
	if out.Alchemy != nil {
		resp["alchemy"] = convertAlchemy(out.Alchemy)
	}

	return toStruct(resp)
}

// GetRollLog returns an actor's recent rolls. Request fields: actor_id, optional context.
func (h *Handler) GetRollLog(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	actorID := stringField(req, "actor_id")
	if actorID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("actor_id is required"))
	}

	out, err := h.actionService.GetRollLog(ctx, &action.GetRollLogInput{
		ActorID: actorID,
		Context: stringField(req, "context"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	rolls := make([]any, 0, len(out.Session.Rolls))
	for _, r := range out.Session.Rolls {
		rolls = append(rolls, convertRoll(r))
	}

	resp := map[string]any{
		"actor_id": out.Session.EntityID,
		"context":  out.Session.Context,
		"rolls":    rolls,
	}
	if !out.Session.ExpiresAt.IsZero() {
		resp["expires_at"] = out.Session.ExpiresAt.UTC().Format(time.RFC3339)
	}

	return toStruct(resp)
}

// ClearRollLog removes an actor's recent rolls. Request fields: actor_id, optional context.
func (h *Handler) ClearRollLog(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	actorID := stringField(req, "actor_id")
	if actorID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("actor_id is required"))
	}

	out, err := h.actionService.ClearRollLog(ctx, &action.ClearRollLogInput{
		ActorID: actorID,
		Context: stringField(req, "context"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]any{"rolls_deleted": out.RollsDeleted})
}

// GetWeaponDisplay returns the sheet strings of a weapon. Request fields: actor_id, item_id.
func (h *Handler) GetWeaponDisplay(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	actorID := stringField(req, "actor_id")
	itemID := stringField(req, "item_id")
	if actorID == "" || itemID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("actor_id and item_id are required"))
	}

	out, err := h.actionService.GetWeaponDisplay(ctx, &action.GetWeaponDisplayInput{
		ActorID: actorID,
		ItemID:  itemID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]any{
		"attack":  out.Display.Attack,
		"damage":  out.Display.Damage,
		"quality": out.Display.Quality,
	})
}

// ListActors returns every actor with the items it carries. The request is empty.
func (h *Handler) ListActors(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.actionService.ListActors(ctx, &action.ListActorsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	actors := make([]any, 0, len(out.Actors))
	for _, a := range out.Actors {
		actors = append(actors, convertActor(a))
	}

	return toStruct(map[string]any{"actors": actors})
}

func stringField(s *structpb.Struct, key string) string {
	return s.GetFields()[key].GetStringValue()
}

func toStruct(m map[string]any) (*structpb.Struct, error) {
	st, err := structpb.NewStruct(m)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode response"))
	}
	return st, nil
}

func intList(values []int) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func convertMessage(msg *sink.Message) map[string]any {
	m := map[string]any{
		"id":        msg.ID,
		"actor_id":  msg.ActorID,
		"roll_mode": string(msg.RollMode),
		"label":     msg.Payload.Label,
	}
	if msg.Payload.IsMulti() {
		contents := make([]any, len(msg.Payload.Contents))
		for i, c := range msg.Payload.Contents {
			contents[i] = c
		}
		m["contents"] = contents
	} else {
		m["content"] = msg.Payload.Content
	}
	return m
}

func convertOutcome(wo *engine.WeaponOutcome) map[string]any {
	o := wo.Outcome
	m := map[string]any{
		"item_id":             o.ItemID,
		"primary_attribute":   string(o.PrimaryAttribute),
		"secondary_attribute": string(o.SecondaryAttribute),
		"dice":                intList(o.DiceFaces[:]),
		"accuracy":            o.AccuracyTotal,
		"high_roll":           o.HighRoll,
		"critical":            o.IsCritical,
	}
	if o.HasDamage {
		m["damage"] = o.DamageTotal
		m["damage_type"] = o.DamageType
	}
	if wo.Weapon != nil {
		m["weapon_id"] = wo.Weapon.ID
	}
	return m
}

func convertAlchemy(r *engine.AlchemyRollResult) map[string]any {
	entries := make([]any, 0, len(r.Entries))
	for _, e := range r.Entries {
		entries = append(entries, map[string]any{
			"combo":  e.Combo,
			"effect": e.Effect,
		})
	}
	return map[string]any{
		"faces":   intList(r.Faces),
		"trim":    r.Trim,
		"level":   r.Level,
		"entries": entries,
	}
}

func convertActor(a *fabula.Actor) map[string]any {
	items := make([]any, 0, len(a.Items))
	for _, item := range a.Items {
		items = append(items, map[string]any{
			"id":       item.ID,
			"name":     item.Name,
			"kind":     string(item.Kind),
			"label":    item.Label(),
			"equipped": item.Equipped,
		})
	}
	return map[string]any{
		"id":    a.ID,
		"name":  a.Name,
		"level": a.Level,
		"items": items,
	}
}

func convertRoll(r dicesession.DiceRoll) map[string]any {
	m := map[string]any{
		"roll_id":     r.RollID,
		"item_id":     r.ItemID,
		"item_name":   r.ItemName,
		"kind":        r.Kind,
		"dice":        intList(r.Dice),
		"total":       r.Total,
		"description": r.Description,
		"rolled_at":   r.RolledAt.UTC().Format(time.RFC3339),
	}
	if r.WeaponID != "" {
		m["weapon_id"] = r.WeaponID
	}
	return m
}
