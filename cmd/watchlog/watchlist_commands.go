package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"watchlog/internal/config"
	"watchlog/internal/store"
	"watchlog/internal/watchlist"
)

func newWatchlistCommand(ctx *commandContext) *cobra.Command {
	watchlistCmd := &cobra.Command{
		Use:   "watchlist",
		Short: "Manage watchlists",
	}

	watchlistCmd.AddCommand(newWatchlistNewCommand(ctx))
	watchlistCmd.AddCommand(newWatchlistShowCommand(ctx))

	return watchlistCmd
}

func newWatchlistNewCommand(ctx *commandContext) *cobra.Command {
	var displayName string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a watchlist and print its identifier",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				name := strings.TrimSpace(displayName)
				if name == "" {
					name = "My Watchlist"
				}

				id := uuid.NewString()
				if err := st.EnsureWatchlist(cmd.Context(), id, name); err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Created watchlist %q\n", name)
				fmt.Fprintln(out, id)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&displayName, "name", "n", "", "Display name for the watchlist")
	return cmd
}

func newWatchlistShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <uuid>",
		Short: "Show a watchlist's name and progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				ref := watchlist.RefFor(strings.TrimSpace(args[0]))
				if !ref.Present() {
					return errors.New("watchlist identifier must not be empty")
				}

				name, ok, err := st.WatchlistDisplayName(cmd.Context(), ref)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("no watchlist with identifier %q", args[0])
				}

				episodes, err := st.ProjectEpisodes(cmd.Context(), ref)
				if err != nil {
					return err
				}
				watched := 0
				for _, episode := range episodes {
					if episode.Watched {
						watched++
					}
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Name:     %s\n", name)
				fmt.Fprintf(out, "Progress: %d/%d episodes watched\n", watched, len(episodes))
				return nil
			})
		},
	}
}
