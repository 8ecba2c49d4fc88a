// Package sqlite contains the concrete implementation of the persistence layer using GORM over embedded SQLite.
package sqlite

import (
	"context"
	"log/slog"

	"fittrack/config"
	"fittrack/internal/errors"
	"fittrack/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the embedded SQLite database and migrates the schema.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config.Database.Path, params.Logger, params.Config.Env.Debug)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return errors.Wrap(sqlDB.PingContext(ctx), "failed to ping SQLite")
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open is the fx-free constructor shared with tests. It opens the database
// at the given path (":memory:" for in-process) and runs AutoMigrate.
func Open(path string, logger *slog.Logger, debug bool) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		// SQLite serializes writers anyway; skip GORM's per-statement
		// implicit transaction and keep explicit ones via the tx manager.
		SkipDefaultTransaction: true,
		// Surface unique-constraint violations as gorm.ErrDuplicatedKey.
		TranslateError: true,
		Logger:         newGormSlogLogger(logger, debug),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.WorkoutModel{},
		&model.MealModel{},
		&model.WeightEntryModel{},
	); err != nil {
		return nil, errors.Wrap(err, "failed to migrate schema")
	}

	return db, nil
}
