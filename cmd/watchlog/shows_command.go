package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"watchlog/internal/config"
	"watchlog/internal/store"
)

func newShowsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "shows",
		Short: "List the shows in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				shows, err := st.ListShows(cmd.Context())
				if err != nil {
					return err
				}

				collator := collate.New(language.English, collate.IgnoreCase)
				sort.SliceStable(shows, func(i, j int) bool {
					return collator.CompareString(shows[i].Name, shows[j].Name) < 0
				})

				if jsonOutput {
					return writeJSON(cmd, shows)
				}

				if len(shows) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Catalog is empty; run `watchlog import` first")
					return nil
				}

				rows := make([][]string, 0, len(shows))
				for _, show := range shows {
					rows = append(rows, []string{
						fmt.Sprintf("%d", show.ID),
						show.Name,
						show.BackgroundColor,
						show.ForegroundColor,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Name", "Background", "Foreground"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}
