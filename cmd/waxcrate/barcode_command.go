package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"waxcrate/internal/collection"
	"waxcrate/internal/importer"
)

func newBarcodeCommand(ctx *commandContext) *cobra.Command {
	var doImport bool

	cmd := &cobra.Command{
		Use:   "barcode <code>",
		Short: "Look up a scanned barcode on Discogs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(svc *importer.Service, _ *collection.Store) error {
				results, err := svc.LookupBarcode(cmd.Context(), args[0])
				if errors.Is(err, importer.ErrNoMatches) {
					fmt.Fprintln(cmd.OutOrStdout(), "No releases match that barcode; add the album with `waxcrate add`")
					return nil
				}
				if err != nil {
					return err
				}

				if doImport {
					album, err := svc.ImportRelease(cmd.Context(), results[0].ID)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Imported %s by %s (id %d)\n", album.Title, album.Artist, album.ID)
					return nil
				}

				rows := make([][]string, 0, len(results))
				for _, r := range results {
					rows = append(rows, []string{
						strconv.FormatInt(r.ID, 10),
						r.Title,
						r.Year,
						strings.Join(r.Label, ", "),
					})
				}
				writeRows(cmd, []string{"Release", "Title", "Year", "Label"}, rows,
					[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft})
				fmt.Fprintln(cmd.OutOrStdout(), "Import one with `waxcrate import <release>`")
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&doImport, "import", false, "Import the best match immediately")
	return cmd
}
