package utils

import "testing"

func TestParseAmount_AcceptsFormattedStrings(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"20000", "20000"},
		{"20,000", "20000"},
		{"MMK 20,000", "20000"},
		{"$1,234.50", "1234.5"},
		{"-1,000", "-1000"},
		{"85%", "85"},
		{"  12.5  ", "12.5"},
		// Unparseable counts as zero, never an error.
		{"", "0"},
		{"n/a", "0"},
		{"--", "0"},
	}
	for _, tc := range cases {
		if got := ParseAmount(tc.in).String(); got != tc.expected {
			t.Fatalf("ParseAmount(%q) expected %s, got %s", tc.in, tc.expected, got)
		}
	}
}

func TestCalculateUtilizationPercent(t *testing.T) {
	cases := []struct {
		allocated string
		utilized  string
		expected  string
	}{
		{"1000", "500", "50"},
		{"1000", "950", "95"},
		{"1000", "1200", "120"},
		{"3", "1", "33.3333"},
		// Zero or unparseable allocated yields exactly 0, never a division
		// error or NaN.
		{"0", "500", "0"},
		{"", "500", "0"},
		{"n/a", "500", "0"},
	}
	for _, tc := range cases {
		got := CalculateUtilizationPercent(tc.allocated, tc.utilized).String()
		if got != tc.expected {
			t.Fatalf("CalculateUtilizationPercent(%q, %q) expected %s, got %s",
				tc.allocated, tc.utilized, tc.expected, got)
		}
	}
}

func TestSumAmounts_UnparseableCountsAsZero(t *testing.T) {
	total := SumAmounts([]string{"1,000", "250.50", "garbage", "", "MMK 49.50"})
	if total.String() != "1300" {
		t.Fatalf("expected 1300, got %s", total.String())
	}
}
