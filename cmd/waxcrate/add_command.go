package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"waxcrate/internal/collection"
	"waxcrate/internal/importer"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var entry importer.ManualEntry

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an album by hand",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(svc *importer.Service, _ *collection.Store) error {
				album, err := svc.AddManual(cmd.Context(), entry)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s by %s (id %d)\n", album.Title, album.Artist, album.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&entry.Title, "title", "t", "", "Album title (required)")
	cmd.Flags().StringVarP(&entry.Artist, "artist", "a", "", "Artist name (required)")
	cmd.Flags().StringVarP(&entry.Year, "year", "y", "", "Release year")
	cmd.Flags().StringArrayVarP(&entry.Genres, "genre", "g", nil, "Genre (repeatable)")
	cmd.Flags().StringVar(&entry.Notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("artist")
	return cmd
}
