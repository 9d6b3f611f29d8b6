package main

import (
	"context"
	"log/slog"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/fabula-api/internal/config"
	"github.com/KirkDiggler/fabula-api/internal/dice"
	"github.com/KirkDiggler/fabula-api/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/fabula-api/internal/entities/fabula"
	"github.com/KirkDiggler/fabula-api/internal/errors"
	"github.com/KirkDiggler/fabula-api/internal/orchestrators/action"
	"github.com/KirkDiggler/fabula-api/internal/pkg/clock"
	"github.com/KirkDiggler/fabula-api/internal/pkg/idgen"
	"github.com/KirkDiggler/fabula-api/internal/redis"
	"github.com/KirkDiggler/fabula-api/internal/repositories/actor"
	dicesession "github.com/KirkDiggler/fabula-api/internal/repositories/dice_session"
	"github.com/KirkDiggler/fabula-api/internal/sink"
)

// app holds the wired action service and whatever needs closing on exit
type app struct {
	actions action.Service
	closers []func() error
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			slog.Warn("Failed to close resource", "error", err)
		}
	}
}

// newApp wires repositories, the dice engine and the orchestrator around out
func newApp(ctx context.Context, cfg *config.Config, out sink.Sink) (*app, error) {
	a := &app{}
	clk := clock.New()

	actorRepo, rollLog, err := a.repositories(ctx, cfg, clk)
	if err != nil {
		a.Close()
		return nil, err
	}

	var roller toolkitdice.Roller = toolkitdice.DefaultRoller
	if cfg.Seed != 0 {
		roller = dice.NewSeeded(cfg.Seed)
		slog.Info("Using seeded dice", "seed", cfg.Seed)
	}

	eng, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{DiceRoller: roller})
	if err != nil {
		a.Close()
		return nil, errors.Wrap(err, "failed to create engine")
	}

	actions, err := action.NewOrchestrator(&action.Config{
		ActorRepo:       actorRepo,
		DiceSessionRepo: rollLog,
		Engine:          eng,
		Sink:            out,
		IDGenerator:     idgen.NewUUID(""),
		Clock:           clk,
		DefaultRollMode: cfg.DefaultRollMode(),
		RollLogTTL:      cfg.RollLogTTL,
	})
	if err != nil {
		a.Close()
		return nil, errors.Wrap(err, "failed to create action orchestrator")
	}
	a.actions = actions

	return a, nil
}

func (a *app) repositories(
	ctx context.Context, cfg *config.Config, clk clock.Clock,
) (actor.Repository, dicesession.Repository, error) {
	if cfg.RedisAddr == "" {
		actorRepo := actor.NewInMemory()
		if cfg.ActorFile != "" {
			loaded, err := actor.NewFromFile(cfg.ActorFile)
			if err != nil {
				return nil, nil, err
			}
			actorRepo = loaded
		}
		slog.Info("Using in-memory repositories", "actor_file", cfg.ActorFile)
		return actorRepo, dicesession.NewInMemory(clk), nil
	}

	var seed []*fabula.Actor
	if cfg.ActorFile != "" {
		actors, err := actor.LoadFile(cfg.ActorFile)
		if err != nil {
			return nil, nil, err
		}
		seed = actors
	}

	client, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, nil, err
	}
	a.closers = append(a.closers, client.Close)

	if err := redis.Ping(ctx, client); err != nil {
		return nil, nil, err
	}

	actorRepo, err := actor.NewRedis(&actor.RedisConfig{Client: client})
	if err != nil {
		return nil, nil, err
	}
	for _, act := range seed {
		if _, err := actorRepo.Put(ctx, actor.PutInput{Actor: act}); err != nil {
			return nil, nil, errors.Wrapf(err, "failed to seed actor %s", act.ID)
		}
	}

	rollLog, err := dicesession.NewRedisRepository(&dicesession.Config{
		Client: client,
		Clock:  clk,
		TTL:    cfg.RollLogTTL,
	})
	if err != nil {
		return nil, nil, err
	}

	slog.Info("Using Redis repositories", "addr", cfg.RedisAddr, "seeded_actors", len(seed))
	return actorRepo, rollLog, nil
}
