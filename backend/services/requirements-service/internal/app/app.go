package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/acquireintel/mono-repo/backend/services/requirements-service/internal/config"
	"github.com/acquireintel/mono-repo/backend/services/requirements-service/internal/services"
	"github.com/acquireintel/mono-repo/backend/shared/go-repositories"
	"github.com/acquireintel/mono-repo/backend/shared/go-utils"
)

const (
	maxRetries     = 5
	connectTimeout = 5 * time.Second
	initialBackoff = 500 * time.Millisecond
	migrateTimeout = 30 * time.Second
)

// App struct holds references to config, DB & services.
type App struct {
	Config *config.Config
	DB     *pgxpool.Pool

	OperatorRepo    repositories.OperatorRepository
	RequirementRepo repositories.RequirementProfileRepository
	Transactor      repositories.Transactor

	MatchingService    services.MatchingService
	IngestionService   services.IngestionService
	OperatorService    services.OperatorService
	RequirementService services.RequirementService
}

func NewApp(cfg *config.Config) (*App, error) {
	utils.Logger.Info("Initializing requirements-service App")

	var (
		dbPool  *pgxpool.Pool
		err     error
		backoff = initialBackoff
	)

	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		dbPool, err = newDBPool(ctx, cfg.DBUrl)
		cancel()
		if err == nil {
			utils.Logger.Infof("requirements-service connected to DB on attempt %d", i)
			break
		}

		utils.Logger.WithError(err).Warnf(
			"Failed DB connect on attempt %d/%d. Retrying in %v...",
			i, maxRetries, backoff,
		)

		if i == maxRetries {
			return nil, fmt.Errorf("unable to connect after %d attempts: %w", maxRetries, err)
		}
		time.Sleep(backoff)
		backoff *= 2
	}

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()
	if err := repositories.Migrate(ctx, dbPool); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	utils.Logger.Info("requirements-service schema up to date")

	opRepo := repositories.NewOperatorRepository(dbPool)
	reqRepo := repositories.NewRequirementProfileRepository(dbPool)
	tx := repositories.NewTransactor(dbPool)

	app := &App{
		Config:          cfg,
		DB:              dbPool,
		OperatorRepo:    opRepo,
		RequirementRepo: reqRepo,
		Transactor:      tx,

		MatchingService:    services.NewMatchingService(cfg, reqRepo),
		IngestionService:   services.NewIngestionService(tx),
		OperatorService:    services.NewOperatorService(opRepo),
		RequirementService: services.NewRequirementService(opRepo, reqRepo),
	}

	if err := app.seed(ctx); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

// Ping reports whether the database is reachable.
func (a *App) Ping(ctx context.Context) error {
	return a.DB.Ping(ctx)
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
		utils.Logger.Info("requirements-service DB connection closed.")
	}
}

func newDBPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	cfg.MaxConnIdleTime = 2 * time.Minute
	cfg.HealthCheckPeriod = 30 * time.Second
	return pgxpool.ConnectConfig(ctx, cfg)
}
