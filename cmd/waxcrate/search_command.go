package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"waxcrate/internal/collection"
	"waxcrate/internal/importer"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var provider string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "search <query>...",
		Short: "Search a metadata provider for releases",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			return ctx.withService(func(svc *importer.Service, _ *collection.Store) error {
				switch strings.ToLower(strings.TrimSpace(provider)) {
				case "discogs", "":
					results, err := svc.SearchDiscogs(cmd.Context(), query)
					if err != nil {
						return err
					}
					if jsonOut {
						return writeJSON(cmd, results)
					}
					if len(results) == 0 {
						fmt.Fprintln(cmd.OutOrStdout(), "No matches")
						return nil
					}
					rows := make([][]string, 0, len(results))
					for _, r := range results {
						rows = append(rows, []string{
							strconv.FormatInt(r.ID, 10),
							r.Title,
							r.Year,
							strings.Join(r.Format, ", "),
							r.Country,
						})
					}
					writeRows(cmd, []string{"Release", "Title", "Year", "Format", "Country"}, rows,
						[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignLeft})
					return nil
				case "spotify":
					albums, err := svc.SearchSpotify(cmd.Context(), query)
					if err != nil {
						return err
					}
					if jsonOut {
						return writeJSON(cmd, albums)
					}
					if len(albums) == 0 {
						fmt.Fprintln(cmd.OutOrStdout(), "No matches")
						return nil
					}
					rows := make([][]string, 0, len(albums))
					for _, album := range albums {
						names := make([]string, 0, len(album.Artists))
						for _, artist := range album.Artists {
							names = append(names, artist.Name)
						}
						rows = append(rows, []string{
							album.ID,
							album.Name,
							strings.Join(names, ", "),
							album.ReleaseDate,
						})
					}
					writeRows(cmd, []string{"Album", "Name", "Artists", "Released"}, rows,
						[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft})
					return nil
				default:
					return fmt.Errorf("unknown provider %q (use discogs or spotify)", provider)
				}
			})
		},
	}

	cmd.Flags().StringVarP(&provider, "provider", "p", "discogs", "Metadata provider: discogs or spotify")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}
