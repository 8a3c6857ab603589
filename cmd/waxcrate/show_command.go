package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"waxcrate/internal/collection"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Display one album in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseAlbumID(args[0])
			if err != nil {
				return err
			}

			return ctx.withStore(func(store *collection.Store) error {
				album := store.GetByID(cmd.Context(), id)
				if album == nil {
					return fmt.Errorf("album %d not found", id)
				}
				if jsonOut {
					return writeJSON(cmd, album)
				}
				printAlbumDetail(cmd, *album)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of text")
	return cmd
}

func printAlbumDetail(cmd *cobra.Command, album collection.Album) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s by %s\n", album.Title, album.Artist)
	fmt.Fprintf(out, "  ID:         %d\n", album.ID)
	fmt.Fprintf(out, "  Year:       %s\n", formatYear(album.Year))
	if len(album.Genres) > 0 {
		fmt.Fprintf(out, "  Genres:     %s\n", strings.Join(album.Genres, ", "))
	}
	if album.Label != "" {
		fmt.Fprintf(out, "  Label:      %s\n", album.Label)
	}
	if album.ReleaseDate != "" {
		fmt.Fprintf(out, "  Released:   %s\n", album.ReleaseDate)
	}
	if album.DateAdded != "" {
		fmt.Fprintf(out, "  Added:      %s\n", album.DateAdded)
	}
	if album.SpotifyURL != "" {
		fmt.Fprintf(out, "  Spotify:    %s\n", album.SpotifyURL)
	}
	if album.Condition != nil {
		fmt.Fprintf(out, "  Condition:  vinyl %s, sleeve %s\n", album.Condition.Vinyl, album.Condition.Sleeve)
		if album.Condition.Notes != "" {
			fmt.Fprintf(out, "              %s\n", album.Condition.Notes)
		}
	}
	if info := album.PurchaseInfo; info != nil {
		fmt.Fprintf(out, "  Paid:       $%.2f", info.Price)
		if info.Seller != "" {
			fmt.Fprintf(out, " (%s)", info.Seller)
		}
		fmt.Fprintln(out)
		if info.MarketValue != nil {
			fmt.Fprintf(out, "  Value:      %s\n", formatValue(info.MarketValue))
		}
	}
	if album.Notes != "" {
		fmt.Fprintf(out, "  Notes:      %s\n", album.Notes)
	}
	if len(album.Tracklist) > 0 {
		fmt.Fprintln(out, "  Tracklist:")
		for _, track := range album.Tracklist {
			line := "    " + track.Title
			if track.Position != "" {
				line = fmt.Sprintf("    %s. %s", track.Position, track.Title)
			}
			if track.Duration != "" {
				line += " (" + track.Duration + ")"
			}
			fmt.Fprintln(out, line)
		}
	}
}
