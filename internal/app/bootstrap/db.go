// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"github.com/mnogodumalon/kurs56/internal/app/reporting"
	snapshotstore "github.com/mnogodumalon/kurs56/internal/app/store/snapshot"
	"github.com/mnogodumalon/kurs56/internal/app/system/indexes"
	"github.com/mnogodumalon/kurs56/internal/app/system/timeouts"
	"github.com/mnogodumalon/kurs56/internal/app/system/workers"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB establishes the MongoDB connection and builds the backends that
// depend on it: the per-collection stores, the snapshot loader, and the
// shared dashboard model.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	connectCtx, cancel := context.WithTimeout(ctx, timeouts.Medium())
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancelPing := context.WithTimeout(ctx, timeouts.Ping())
	defer cancelPing()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(appCfg.MongoDatabase)
	loader := snapshotstore.NewLoader(db)
	model := reporting.NewModel(loader, appCfg.UpcomingLimit, logger)

	deps := DBDeps{
		MongoClient:   client,
		MongoDatabase: db,
		Loader:        loader,
		Model:         model,
	}
	if appCfg.RefreshInterval > 0 {
		deps.Refresher = workers.NewRefresher(model, logger, appCfg.RefreshInterval, timeouts.Long())
	}

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase))

	return deps, nil
}

// EnsureSchema creates the indexes the stores rely on.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	schemaCtx, cancel := context.WithTimeout(ctx, timeouts.Long())
	defer cancel()

	if err := indexes.EnsureAll(schemaCtx, deps.MongoDatabase); err != nil {
		logger.Error("index creation failed", zap.Error(err))
		return err
	}
	return nil
}
