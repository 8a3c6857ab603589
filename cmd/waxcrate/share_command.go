package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"waxcrate/internal/collection"
	"waxcrate/internal/share"
)

func newShareCommand(ctx *commandContext) *cobra.Command {
	var wholeCollection bool
	var push bool

	cmd := &cobra.Command{
		Use:   "share [id]",
		Short: "Format an album or the collection for sharing",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !wholeCollection && len(args) == 0 {
				return fmt.Errorf("pass an album id or --collection")
			}

			return ctx.withStore(func(store *collection.Store) error {
				out := cmd.OutOrStdout()

				if wholeCollection {
					albums := store.GetAll(cmd.Context())
					fmt.Fprintln(out, share.FormatCollection(albums))
					if push {
						sender := share.NewSender(ctx.configValue())
						if err := sender.ShareCollection(cmd.Context(), albums); err != nil {
							return err
						}
						fmt.Fprintln(out, "Pushed to ntfy")
					}
					return nil
				}

				id, err := parseAlbumID(args[0])
				if err != nil {
					return err
				}
				album := store.GetByID(cmd.Context(), id)
				if album == nil {
					return fmt.Errorf("album %d not found", id)
				}
				fmt.Fprintln(out, share.FormatAlbum(*album))
				if push {
					sender := share.NewSender(ctx.configValue())
					if err := sender.ShareAlbum(cmd.Context(), *album); err != nil {
						return err
					}
					fmt.Fprintln(out, "Pushed to ntfy")
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&wholeCollection, "collection", false, "Share the whole collection")
	cmd.Flags().BoolVar(&push, "push", false, "Push the payload to the configured ntfy topic")
	return cmd
}
