package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/IdleMiner_Go/internal/clock"
	"github.com/osse101/IdleMiner_Go/internal/concurrency"
	"github.com/osse101/IdleMiner_Go/internal/config"
	"github.com/osse101/IdleMiner_Go/internal/database"
	"github.com/osse101/IdleMiner_Go/internal/database/postgres"
	"github.com/osse101/IdleMiner_Go/internal/domain"
	"github.com/osse101/IdleMiner_Go/internal/item"
	"github.com/osse101/IdleMiner_Go/internal/loot"
	"github.com/osse101/IdleMiner_Go/internal/mining"
	"github.com/osse101/IdleMiner_Go/internal/player"
	"github.com/osse101/IdleMiner_Go/internal/server"
	"github.com/osse101/IdleMiner_Go/internal/validation"
	"github.com/osse101/IdleMiner_Go/migrations"
)

// App is the fully wired application.
type App struct {
	Server *server.Server
	DBPool *pgxpool.Pool
}

// Build connects to the database, applies migrations, loads the mine
// catalog and wires services into the HTTP server. On error every resource
// opened so far is released.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolOptions{
		MaxConns:    cfg.DBMaxConns,
		MaxIdleTime: cfg.DBMaxConnIdleTime,
		MaxLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return nil, err
	}
	slog.Info(LogMsgDatabaseConnected, "host", cfg.DBHost, "db", cfg.DBName)

	app, err := wire(ctx, cfg, pool)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return app, nil
}

func wire(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) (*App, error) {
	if err := database.Migrate(ctx, pool, migrations.FS); err != nil {
		return nil, err
	}

	items := item.NewCachedResolver(postgres.NewItemRepository(pool), cfg.ItemCacheSize, cfg.ItemCacheTTL)
	n, err := items.Warm(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to warm item cache: %w", err)
	}
	slog.Info(LogMsgItemsWarmed, "items", n)

	catalog, err := mining.LoadCatalog(cfg.MinesConfigPath, mining.SchemaPathMines, validation.NewSchemaValidator())
	if err != nil {
		return nil, err
	}
	warnUnknownDrops(ctx, catalog, items)

	engine := mining.NewEngine(catalog, items, newRoller(cfg.LootSeed), cfg.MiningConfig())
	players := postgres.NewPlayerRepository(pool)
	locks := concurrency.NewLockManager()
	clk := clock.NewRealClock()

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Detector: server.DetectorConfig{
			Window:      cfg.RateLimitWindow,
			MaxRequests: cfg.RateLimitMaxRequests,
		},
		DBPool:        pool,
		MiningService: mining.NewService(players, engine, locks, clk),
		PlayerService: player.NewService(players, items, locks, clk),
	})

	return &App{Server: srv, DBPool: pool}, nil
}

func newRoller(seed int) *loot.Roller {
	if seed == 0 {
		return loot.NewRoller(nil)
	}
	slog.Info(LogMsgLootSeeded, "seed", seed)
	return loot.NewSeededRoller(uint64(seed))
}

// warnUnknownDrops logs loot entries that name no catalog item. Such drops
// are skipped at mining time.
func warnUnknownDrops(ctx context.Context, catalog mining.Catalog, items item.Resolver) {
	for _, mine := range catalog.ListMines() {
		for _, entry := range mine.Loot {
			if _, err := items.ResolveItem(ctx, entry.Item); err != nil {
				if domain.IsNotFound(err) {
					slog.Warn("Mine drops an unknown item", "mine", mine.ID, "item", entry.Item)
					continue
				}
				slog.Warn("Failed to resolve mine drop", "mine", mine.ID, "item", entry.Item, "error", err)
			}
		}
	}
}
