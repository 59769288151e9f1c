package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"watchlog/internal/config"
	"watchlog/internal/store"
	"watchlog/internal/watchlist"
)

func newEpisodesCommand(ctx *commandContext) *cobra.Command {
	var watchlistUUID string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "episodes",
		Short: "List every episode in air-date order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				ref := watchlist.RefFor(watchlistUUID)
				episodes, err := st.ProjectEpisodes(cmd.Context(), ref)
				if err != nil {
					return err
				}

				if jsonOutput {
					return writeJSON(cmd, episodes)
				}

				if len(episodes) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Catalog is empty; run `watchlog import` first")
					return nil
				}

				headers := []string{"ID", "Show", "Season", "Episode", "Name", "Air date"}
				aligns := []columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignLeft, alignLeft}
				if ref.Present() {
					headers = append(headers, "Watched")
					aligns = append(aligns, alignLeft)
				}

				rows := make([][]string, 0, len(episodes))
				for _, episode := range episodes {
					row := []string{
						fmt.Sprintf("%d", episode.EpisodeID),
						episode.ShowName,
						fmt.Sprintf("%d", episode.SeasonNumber),
						fmt.Sprintf("%d", episode.EpisodeNumber),
						episode.Name,
						episode.AirDate,
					}
					if ref.Present() {
						row = append(row, yesNo(episode.Watched))
					}
					rows = append(rows, row)
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&watchlistUUID, "watchlist", "w", "", "Watchlist identifier to merge watch state from")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}
