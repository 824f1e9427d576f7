package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/unionlaw/lawfirm/internal/app"
	"github.com/unionlaw/lawfirm/internal/config"
	"github.com/unionlaw/lawfirm/internal/db"
)

func MigrateCmd() *cobra.Command {
	var down bool

	c := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending SQL migrations (or roll back one with --down)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd, down)
		},
	}
	c.Flags().BoolVar(&down, "down", false, "roll back the most recent migration")

	return c
}

func runMigrate(cmd *cobra.Command, down bool) error {
	cfg := config.Load()
	if cfg.DBDriver == app.DriverMongo {
		return fmt.Errorf("migrations only apply to SQL drivers, DB_DRIVER is %q", cfg.DBDriver)
	}

	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	if down {
		err = db.MigrateDown(database.DB, cfg.DBDriver)
	} else {
		err = db.RunMigrations(database.DB, cfg.DBDriver)
	}
	if err != nil {
		return err
	}

	version, err := db.MigrationVersion(database.DB, cfg.DBDriver)
	if err != nil {
		return err
	}
	cmd.Printf("schema at version %d\n", version)
	return nil
}
