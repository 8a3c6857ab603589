package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"waxcrate/internal/collection"
	"waxcrate/internal/importer"
)

func newConditionCommand(ctx *commandContext) *cobra.Command {
	var vinyl, sleeve, notes string

	cmd := &cobra.Command{
		Use:   "condition <id>",
		Short: "Grade an album's vinyl and sleeve condition",
		Long: "Grade an album's vinyl and sleeve condition.\n\nRatings use the Goldmine scale: " +
			strings.Join(ratingScaleNames(), ", ") + ".",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseAlbumID(args[0])
			if err != nil {
				return err
			}

			vinylRating, err := collection.ParseRating(vinyl)
			if err != nil {
				return err
			}
			sleeveRating, err := collection.ParseRating(sleeve)
			if err != nil {
				return err
			}

			return ctx.withService(func(svc *importer.Service, _ *collection.Store) error {
				album, err := svc.SetCondition(cmd.Context(), id, collection.Condition{
					Vinyl:  vinylRating,
					Sleeve: sleeveRating,
					Notes:  strings.TrimSpace(notes),
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Graded %s: vinyl %s, sleeve %s\n",
					album.Title, album.Condition.Vinyl, album.Condition.Sleeve)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&vinyl, "vinyl", "", "Vinyl rating (required)")
	cmd.Flags().StringVar(&sleeve, "sleeve", "", "Sleeve rating (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "Condition notes")
	_ = cmd.MarkFlagRequired("vinyl")
	_ = cmd.MarkFlagRequired("sleeve")
	return cmd
}

func ratingScaleNames() []string {
	names := make([]string, 0, len(collection.RatingScale))
	for _, rating := range collection.RatingScale {
		names = append(names, string(rating))
	}
	return names
}
