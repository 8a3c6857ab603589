package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"waxcrate/internal/collection"
	"waxcrate/internal/importer"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var spotifyID bool

	cmd := &cobra.Command{
		Use:   "import <release-id>",
		Short: "Import an album from Discogs or Spotify",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(svc *importer.Service, _ *collection.Store) error {
				var album *collection.Album
				var err error
				if spotifyID {
					album, err = svc.ImportSpotify(cmd.Context(), strings.TrimSpace(args[0]))
				} else {
					var id int64
					id, err = parseAlbumID(args[0])
					if err != nil {
						return err
					}
					album, err = svc.ImportRelease(cmd.Context(), id)
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %s by %s (id %d)\n", album.Title, album.Artist, album.ID)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&spotifyID, "spotify", false, "Treat the argument as a Spotify album id")
	return cmd
}
