package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lucasaraujonrt/portfolio/internal/config"
	"github.com/lucasaraujonrt/portfolio/internal/content"
	"github.com/lucasaraujonrt/portfolio/internal/database"
)

func newMigrateCmd(flags *rootFlags) *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply PostgreSQL migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			if cfg.Database.URL == "" {
				return errors.New("database.url (or PORTFOLIO_DATABASE_URL) is required")
			}

			log, err := newLogger(cfg.Log, flags.verbose, os.Stderr)
			if err != nil {
				return err
			}

			if err := database.RunMigrations(cfg.Database.URL); err != nil {
				return err
			}
			log.Info("migrations applied")

			if !seed {
				return nil
			}

			opts := content.Options{Kind: content.KindPostgres, File: cfg.Content.File, DatabaseURL: cfg.Database.URL}
			src, err := opts.Source()
			if err != nil {
				return err
			}
			if err := content.Validate(src); err != nil {
				return fmt.Errorf("refusing to seed invalid content: %w", err)
			}
			if err := content.CheckUniqueIDs(src); err != nil {
				if !cfg.Content.AllowDuplicateIDs {
					return fmt.Errorf("refusing to seed content: %w", err)
				}
				log.Warn(err.Error())
			}

			db, err := database.Open(cfg.Database.URL)
			if err != nil {
				return err
			}
			store := content.NewSQLStore(db, content.DialectPostgres)
			defer store.Close()

			if err := store.Seed(ctx, src); err != nil {
				return err
			}
			log.Info("content seeded")
			return nil
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "Seed empty tables with the configured content")

	return cmd
}
