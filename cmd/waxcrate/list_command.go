package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"waxcrate/internal/catalog"
	"waxcrate/internal/collection"
	"waxcrate/internal/events"
	"waxcrate/internal/logging"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var query string
	var sortFlag string
	var jsonOut bool
	var watch bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List albums in the collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := catalog.ParseSortMode(sortFlag)
			if err != nil {
				return err
			}

			return ctx.withStore(func(store *collection.Store) error {
				render := func() error {
					albums := catalog.Browse(store.GetAll(cmd.Context()), query, mode)
					if jsonOut {
						return writeJSON(cmd, albums)
					}
					if len(albums) == 0 {
						fmt.Fprintln(cmd.OutOrStdout(), "No albums in the collection")
						return nil
					}
					rows := make([][]string, 0, len(albums))
					for _, album := range albums {
						rows = append(rows, albumRow(album))
					}
					writeRows(cmd, albumHeaders, rows, albumAligns)
					return nil
				}

				if err := render(); err != nil {
					return err
				}
				if !watch {
					return nil
				}

				logger := ctx.ensureLogger()
				bus := events.NewBus(logger)
				unsubscribe := bus.Subscribe(func() {
					if err := render(); err != nil {
						logger.Warn("render after change", logging.Error(err))
					}
				})
				defer unsubscribe()

				fmt.Fprintln(cmd.OutOrStdout(), "Watching for changes (Ctrl+C to stop)")
				return events.Watch(cmd.Context(), store.Path(), bus, logger)
			})
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter by title or artist substring")
	cmd.Flags().StringVarP(&sortFlag, "sort", "s", "title", "Sort order: title, artist, or year")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-render when the collection changes on disk")
	return cmd
}
