package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-casino/internal/config"
	dicesvc "github.com/KirkDiggler/rpg-casino/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-casino/internal/orchestrators/encounter"
	"github.com/KirkDiggler/rpg-casino/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-casino/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-casino/internal/pkg/roller"
	redisclient "github.com/KirkDiggler/rpg-casino/internal/redis"
	dicesession "github.com/KirkDiggler/rpg-casino/internal/repositories/dice_session"
	"github.com/KirkDiggler/rpg-casino/internal/repositories/encounters"
	"github.com/KirkDiggler/rpg-casino/internal/repositories/progress"
)

type services struct {
	dice      dicesvc.Service
	encounter encounter.Service
	eventBus  events.EventBus
}

type repositories struct {
	encounters   encounters.Repository
	diceSessions dicesession.Repository
	progress     progress.Repository
}

// buildServices wires repositories, rollers and orchestrators from cfg. The
// returned func releases the redis connection, if any.
func buildServices(ctx context.Context, cfg *config.Config) (*services, func(), error) {
	clk := clock.New()

	repos, closeRepos, err := buildRepositories(ctx, cfg, clk)
	if err != nil {
		return nil, nil, err
	}

	var diceRoller dice.Roller = dice.DefaultRoller
	if cfg.DiceSeed != 0 {
		slog.Info("Using seeded dice", "seed", cfg.DiceSeed)
		diceRoller = roller.NewSeeded(cfg.DiceSeed)
	}

	diceService, err := dicesvc.NewOrchestrator(&dicesvc.Config{
		DiceSessionRepo: repos.diceSessions,
		IDGenerator:     idgen.NewUUID("roll"),
		Roller:          diceRoller,
		SessionTTL:      cfg.SessionTTL,
	})
	if err != nil {
		closeRepos()
		return nil, nil, fmt.Errorf("failed to create dice service: %w", err)
	}

	eventBus := events.NewBus()
	eventBus.SubscribeFunc(encounter.EventVictory, 0, func(_ context.Context, e events.Event) error {
		slog.Info("Boss beaten", "player_id", e.Source().GetID(), "boss_id", e.Target().GetID())
		return nil
	})

	encounterService, err := encounter.NewOrchestrator(&encounter.Config{
		EncounterRepo:     repos.encounters,
		ProgressRepo:      repos.progress,
		DiceService:       diceService,
		IDGenerator:       idgen.NewUUID("enc"),
		Roller:            diceRoller,
		EventBus:          eventBus,
		ScalingMultiplier: cfg.ScalingMultiplier,
		BossHP:            cfg.BossHP,
	})
	if err != nil {
		closeRepos()
		return nil, nil, fmt.Errorf("failed to create encounter service: %w", err)
	}

	return &services{
		dice:      diceService,
		encounter: encounterService,
		eventBus:  eventBus,
	}, closeRepos, nil
}

func buildRepositories(
	ctx context.Context, cfg *config.Config, clk clock.Clock,
) (*repositories, func(), error) {
	if !cfg.UseRedis() {
		slog.Info("Using in-memory repositories")
		return &repositories{
			encounters:   encounters.NewInMemory(clk),
			diceSessions: dicesession.NewInMemory(clk),
			progress:     progress.NewInMemory(),
		}, func() {}, nil
	}

	client, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	closeClient := func() {
		if err := client.Close(); err != nil {
			slog.Warn("Failed to close redis client", "error", err)
		}
	}
	if err := redisclient.Ping(ctx, client); err != nil {
		closeClient()
		return nil, nil, err
	}
	slog.Info("Using redis repositories", "addr", cfg.RedisAddr)

	encounterRepo, err := encounters.NewRedisRepository(&encounters.Config{
		Client: client,
		Clock:  clk,
		TTL:    cfg.SessionTTL,
	})
	if err != nil {
		closeClient()
		return nil, nil, fmt.Errorf("failed to create encounter repository: %w", err)
	}

	sessionRepo, err := dicesession.NewRedisRepository(&dicesession.Config{
		Client: client,
		Clock:  clk,
	})
	if err != nil {
		closeClient()
		return nil, nil, fmt.Errorf("failed to create dice session repository: %w", err)
	}

	progressRepo, err := progress.NewRedisRepository(&progress.Config{Client: client})
	if err != nil {
		closeClient()
		return nil, nil, fmt.Errorf("failed to create progress repository: %w", err)
	}

	return &repositories{
		encounters:   encounterRepo,
		diceSessions: sessionRepo,
		progress:     progressRepo,
	}, closeClient, nil
}
