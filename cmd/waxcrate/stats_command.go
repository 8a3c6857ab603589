package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"waxcrate/internal/collection"
	"waxcrate/internal/stats"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *collection.Store) error {
				summary := stats.Compute(store.GetAll(cmd.Context()))
				if jsonOut {
					return writeJSON(cmd, summary)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Albums: %d\n", summary.TotalAlbums)
				fmt.Fprintf(out, "Estimated value: $%.2f (average $%.2f)\n", summary.TotalValue, summary.AverageValue)

				if len(summary.ByDecade) > 0 {
					rows := make([][]string, 0, len(summary.ByDecade))
					for _, d := range summary.ByDecade {
						rows = append(rows, []string{d.Decade, strconv.Itoa(d.Count)})
					}
					fmt.Fprintln(out, "\nBy decade:")
					writeRows(cmd, []string{"Decade", "Albums"}, rows, []columnAlignment{alignLeft, alignRight})
				}

				if len(summary.TopArtists) > 0 {
					rows := make([][]string, 0, len(summary.TopArtists))
					for _, a := range summary.TopArtists {
						rows = append(rows, []string{a.Artist, strconv.Itoa(a.Count)})
					}
					fmt.Fprintln(out, "\nTop artists:")
					writeRows(cmd, []string{"Artist", "Albums"}, rows, []columnAlignment{alignLeft, alignRight})
				}

				if len(summary.TopValued) > 0 {
					rows := make([][]string, 0, len(summary.TopValued))
					for _, v := range summary.TopValued {
						rows = append(rows, []string{v.Title, v.Artist, fmt.Sprintf("$%.2f", v.Value)})
					}
					fmt.Fprintln(out, "\nMost valuable:")
					writeRows(cmd, []string{"Title", "Artist", "Value"}, rows, []columnAlignment{alignLeft, alignLeft, alignRight})
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of tables")
	return cmd
}
