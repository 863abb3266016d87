package normalize

import (
	"testing"

	"bitbucket.org/mmdatafocus/console_backend/models"
)

func TestLineItem_DerivesUtilization(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		percent string
		band    models.UtilizationBand
	}{
		{
			"on track",
			`{"id":"1","allocated_amount":"1000","utilized_amount":"500"}`,
			"50", models.UtilizationOnTrack,
		},
		{
			"at risk floor",
			`{"id":"2","allocated_amount":"1000","utilized_amount":"900"}`,
			"90", models.UtilizationAtRisk,
		},
		{
			"at risk ceiling",
			`{"id":"3","allocated_amount":"1000","utilized_amount":"1000"}`,
			"100", models.UtilizationAtRisk,
		},
		{
			"over budget",
			`{"id":"4","allocated_amount":"1000","utilized_amount":"1001"}`,
			"100.1", models.UtilizationOverBudget,
		},
		{
			"formatted amounts",
			`{"id":"5","allocated":"MMK 2,000","spent_amount":"1,900"}`,
			"95", models.UtilizationAtRisk,
		},
		{
			"zero allocated",
			`{"id":"6","allocated_amount":"0","utilized_amount":"500"}`,
			"0", models.UtilizationOnTrack,
		},
		{
			"unparseable allocated",
			`{"id":"7","allocated_amount":"n/a","utilized_amount":"500"}`,
			"0", models.UtilizationOnTrack,
		},
	}
	for _, tc := range cases {
		got := LineItem(DecodeRecord([]byte(tc.body)))
		if got.UtilizationPercent.String() != tc.percent {
			t.Fatalf("%s: expected percent %s, got %s", tc.name, tc.percent, got.UtilizationPercent.String())
		}
		if got.UtilizationBand != tc.band {
			t.Fatalf("%s: expected band %q, got %q", tc.name, tc.band, got.UtilizationBand)
		}
	}
}

func TestLineItem_KeepsAmountStrings(t *testing.T) {
	got := LineItem(DecodeRecord([]byte(`{"id":"1","allocated_amount":"1,000.00","utilized_amount":"950"}`)))
	if got.AllocatedAmount != "1,000.00" {
		t.Fatalf("allocated must stay literal, got %q", got.AllocatedAmount)
	}
	if got.UtilizedAmount != "950" {
		t.Fatalf("utilized must stay literal, got %q", got.UtilizedAmount)
	}
}
