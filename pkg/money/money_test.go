package money

import "testing"

func TestTaxRoundsHalfUp(t *testing.T) {
	t.Parallel()

	cases := []struct {
		subtotal Cents
		rateBps  int64
		want     Cents
	}{
		{300, 800, 24}, // 3.00 * 8% = 0.24
		{299, 800, 24}, // 23.92 rounds up
		{125, 800, 10}, // exactly 10.0
		{131, 800, 10}, // 10.48 rounds down
		{144, 800, 12}, // 11.52 rounds up
		{0, 800, 0},
		{14999, 800, 1200},
		{300, 0, 0}, // zero rate
	}

	for _, tc := range cases {
		if got := Tax(tc.subtotal, tc.rateBps); got != tc.want {
			t.Fatalf("Tax(%d, %d) = %d, want %d", tc.subtotal, tc.rateBps, got, tc.want)
		}
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	valid := map[string]Cents{
		"5":      500,
		"5.2":    520,
		"5.00":   500,
		"0":      0,
		"1.76":   176,
		"149.99": 14999,
	}
	for input, want := range valid {
		got, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("Parse(%q) = %d, want %d", input, got, want)
		}
	}

	for _, input := range []string{"", "abc", "-1", "-0.01", "1.005", "3,24"} {
		if _, err := Parse(input); err == nil {
			t.Fatalf("Parse(%q) should fail", input)
		}
	}
}

func TestStringFormatsTwoPlaces(t *testing.T) {
	t.Parallel()

	if got := Cents(324).String(); got != "3.24" {
		t.Fatalf("got %q", got)
	}
	if got := Cents(0).String(); got != "0.00" {
		t.Fatalf("got %q", got)
	}
	if got := Cents(150).String(); got != "1.50" {
		t.Fatalf("got %q", got)
	}
}

func TestLine(t *testing.T) {
	t.Parallel()

	if got := Line(299, 3); got != 897 {
		t.Fatalf("Line = %d", got)
	}
}
