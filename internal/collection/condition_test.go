package collection

import "testing"

func TestParseRating(t *testing.T) {
	cases := []struct {
		input    string
		expected Rating
	}{
		{"M", RatingMint},
		{"nm", RatingNearMint},
		{" vg+ ", RatingVeryGoodPlus},
		{"p", RatingPoor},
	}
	for _, tc := range cases {
		got, err := ParseRating(tc.input)
		if err != nil {
			t.Fatalf("ParseRating(%q): %v", tc.input, err)
		}
		if got != tc.expected {
			t.Errorf("ParseRating(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestParseRatingRejectsUnknown(t *testing.T) {
	if _, err := ParseRating("mint-ish"); err == nil {
		t.Fatal("expected error for unknown rating")
	}
}

func TestRatingScaleOrder(t *testing.T) {
	if RatingScale[0] != RatingMint || RatingScale[len(RatingScale)-1] != RatingPoor {
		t.Fatalf("scale must run Mint down to Poor, got %v", RatingScale)
	}
	if len(RatingScale) != 8 {
		t.Fatalf("expected 8 grades, got %d", len(RatingScale))
	}
}
