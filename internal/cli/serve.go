package cli

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"bingo-quiz-bot/internal/app"
	"bingo-quiz-bot/internal/config"
	"bingo-quiz-bot/internal/domain"
	"bingo-quiz-bot/internal/infra/memory"
	pgcatalog "bingo-quiz-bot/internal/infra/postgres"
	redissession "bingo-quiz-bot/internal/infra/redis"
	"bingo-quiz-bot/internal/transport/telegram"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// NewServeCmd builds the CLI subcommand that runs the bot.
func NewServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the Telegram bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBot(cmd.Context(), *configPath)
		},
	}
}

func runBot(parent context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Telegram.Token == "" {
		return fmt.Errorf("telegram token is required (config or BOT_TOKEN)")
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	var store app.SessionStore
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ttl := config.TTLDuration(cfg.Redis.TTL, 0)
		store = redissession.NewSessionStore(client, ttl)
		log.Printf("using redis session store at %s", cfg.Redis.Addr)
	} else {
		store = memory.NewSessionStore()
		log.Printf("using in-memory session store (sessions vanish on restart)")
	}

	catalog, err := loadCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	log.Printf("catalog %q loaded: %d categories, max score %d",
		catalog.ID, len(catalog.Categories), app.MaxScore(catalog))

	game, err := app.NewGame(store, catalog, resultBands(cfg))
	if err != nil {
		return err
	}

	bot, err := telegram.New(cfg.Telegram.Token, game)
	if err != nil {
		return err
	}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return bot.Run(ctx)
	})
	group.Go(func() error {
		<-ctx.Done()
		game.Shutdown()
		return nil
	})

	if err := group.Wait(); err != nil && ctx.Err() == nil {
		return err
	}
	log.Printf("shutting down")
	return nil
}

// resultBands builds the band table from config, falling back to the
// built-in table when none is configured.
func resultBands(cfg config.Config) app.BandTable {
	if len(cfg.Results.Bands) == 0 {
		return app.DefaultBands()
	}
	bands := make(app.BandTable, 0, len(cfg.Results.Bands))
	for _, b := range cfg.Results.Bands {
		bands = append(bands, app.Band{Min: b.Min, Max: b.Max, Text: b.Text, Image: b.Image})
	}
	return bands
}

func loadCatalog(ctx context.Context, cfg config.Config) (domain.Catalog, error) {
	catalogID := cfg.Catalog.ID
	if catalogID == "" {
		catalogID = memory.DefaultCatalog().ID
	}

	if cfg.Postgres.URL == "" {
		loader := memory.NewStaticCatalogLoader(map[string]domain.Catalog{
			memory.DefaultCatalog().ID: memory.DefaultCatalog(),
		})
		return loader.LoadCatalog(ctx, catalogID)
	}

	pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	loadCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return pgcatalog.NewCatalogLoader(pool).LoadCatalog(loadCtx, catalogID)
}
