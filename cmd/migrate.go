package main

import (
	"context"
	"database/sql"
	root "numberbot"
	"numberbot/internal/config"
	"numberbot/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand that applies the goose
// migrations of the configured driver and, on postgres, the River schema.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			goose.SetBaseFS(root.Migrations)

			if cfg.Storage.Driver == config.DriverSQLite {
				strg, closeStrg := getSQLite(ctx, cfg)
				defer closeStrg()

				gooseUp(ctx, strg.DB.(*sql.DB), "sqlite3", "migrations/sqlite")

				return
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db := strg.DB.(*sql.DB)
			gooseUp(ctx, db, "postgres", "migrations/postgres")
			riverUp(ctx, db)
		},
	}

	return cmd
}

func gooseUp(ctx context.Context, db *sql.DB, dialect, dir string) {
	if err := goose.SetDialect(dialect); err != nil {
		logger.Fatal(ctx, "could not set goose dialect", zap.String("dialect", dialect), zap.Error(err))
	}
	if err := goose.UpContext(ctx, db, dir); err != nil {
		logger.Fatal(ctx, "could not migrate database", zap.String("dir", dir), zap.Error(err))
	}
}

// riverUp migrates the River queue tables to the latest version.
func riverUp(ctx context.Context, db *sql.DB) {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		logger.Fatal(ctx, "could not create river queue migrator", zap.Error(err))
	}
	migrations := migrator.AllVersions()
	latestVersion := migrations[len(migrations)-1].Version
	currentVersion := 0
	currentMigrations, err := migrator.ExistingVersions(ctx)
	if err != nil {
		logger.Fatal(ctx, "could not get existing river queue migrations", zap.Error(err))
	}
	if len(currentMigrations) > 0 {
		currentVersion = currentMigrations[len(currentMigrations)-1].Version
	}
	if latestVersion <= currentVersion {
		return
	}

	_, err = migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latestVersion,
	})
	if err != nil {
		logger.Fatal(ctx, "could not migrate river queue tables", zap.Error(err))
	}
	logger.Info(ctx, "migrated river queue tables", zap.Int("version", latestVersion))
}
