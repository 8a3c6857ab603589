package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"waxcrate/internal/collection"
	"waxcrate/internal/importer"
)

func newValueCommand(ctx *commandContext) *cobra.Command {
	var price, marketValue float64
	var date, seller string

	cmd := &cobra.Command{
		Use:   "value <id>",
		Short: "Record purchase details and market value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseAlbumID(args[0])
			if err != nil {
				return err
			}

			// Only flags the user actually set are applied; everything
			// else keeps its stored value.
			var update importer.PurchaseUpdate
			flags := cmd.Flags()
			if flags.Changed("price") {
				update.Price = &price
			}
			if flags.Changed("date") {
				update.Date = &date
			}
			if flags.Changed("seller") {
				update.Seller = &seller
			}
			if flags.Changed("market-value") {
				update.MarketValue = &marketValue
			}
			if update.Price == nil && update.Date == nil && update.Seller == nil && update.MarketValue == nil {
				return fmt.Errorf("nothing to update; set at least one of --price, --date, --seller, --market-value")
			}

			return ctx.withService(func(svc *importer.Service, _ *collection.Store) error {
				album, err := svc.SetPurchaseInfo(cmd.Context(), id, update)
				if err != nil {
					return err
				}
				info := album.PurchaseInfo
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: paid $%.2f, value %s\n",
					album.Title, info.Price, formatValue(info.MarketValue))
				return nil
			})
		},
	}

	cmd.Flags().Float64Var(&price, "price", 0, "Purchase price")
	cmd.Flags().StringVar(&date, "date", "", "Purchase date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&seller, "seller", "", "Where the record was bought")
	cmd.Flags().Float64Var(&marketValue, "market-value", 0, "Current market value estimate")
	return cmd
}
