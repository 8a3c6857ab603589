package collection

import (
	"fmt"
	"strings"
)

// Rating is a grade on the standard vinyl condition scale.
type Rating string

// Ratings, Mint down to Poor.
const (
	RatingMint         Rating = "M"
	RatingNearMint     Rating = "NM"
	RatingVeryGoodPlus Rating = "VG+"
	RatingVeryGood     Rating = "VG"
	RatingGoodPlus     Rating = "G+"
	RatingGood         Rating = "G"
	RatingFair         Rating = "F"
	RatingPoor         Rating = "P"
)

// RatingScale lists all ratings in grading order, best first.
var RatingScale = []Rating{
	RatingMint,
	RatingNearMint,
	RatingVeryGoodPlus,
	RatingVeryGood,
	RatingGoodPlus,
	RatingGood,
	RatingFair,
	RatingPoor,
}

// ParseRating converts user input into a Rating, accepting any case.
func ParseRating(value string) (Rating, error) {
	candidate := Rating(strings.ToUpper(strings.TrimSpace(value)))
	for _, rating := range RatingScale {
		if candidate == rating {
			return rating, nil
		}
	}
	return "", fmt.Errorf("unknown condition rating %q (expected one of M, NM, VG+, VG, G+, G, F, P)", value)
}

// Valid reports whether the rating is on the scale.
func (r Rating) Valid() bool {
	for _, rating := range RatingScale {
		if r == rating {
			return true
		}
	}
	return false
}
