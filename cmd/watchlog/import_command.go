package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"watchlog/internal/config"
	"watchlog/internal/importer"
	"watchlog/internal/logging"
	"watchlog/internal/store"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Import the tracked shows from TVMaze into the catalog",
		Long: "Fetches every tracked show with its seasons and episodes from TVMaze " +
			"and inserts them into the catalog. Imports are append-only: running " +
			"against a populated database creates duplicate rows.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				logger, err := logging.NewFromConfig(cfg)
				if err != nil {
					return err
				}

				imp, err := importer.New(cfg, st, logger)
				if err != nil {
					return err
				}
				if err := imp.Run(cmd.Context()); err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), "Import complete")
				return nil
			})
		},
	}
}
