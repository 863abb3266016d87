package models

import "testing"

func TestOverallApprovalStatus_EmptyChainIsItsOwnState(t *testing.T) {
	got := OverallApprovalStatus(nil)
	if got.Status != ApprovalStatusNone {
		t.Fatalf("empty chain expected %q, got %q", ApprovalStatusNone, got.Status)
	}
	if got.Status == ApprovalStatusApproved {
		t.Fatal("empty chain must never read as approved")
	}
}

func TestOverallApprovalStatus_RejectedBeatsEverything(t *testing.T) {
	records := []ApprovalRecord{
		{Status: ApprovalStatusApproved, Required: true},
		{Status: ApprovalStatusPending, Required: true},
		// An optional rejection still rejects the whole chain.
		{Status: ApprovalStatusRejected, Required: false},
	}
	got := OverallApprovalStatus(records)
	if got.Status != ApprovalStatusRejected {
		t.Fatalf("expected rejected, got %q", got.Status)
	}
}

func TestOverallApprovalStatus_PendingCountsRequiredSteps(t *testing.T) {
	records := []ApprovalRecord{
		{Status: ApprovalStatusApproved, Required: true},
		{Status: ApprovalStatusPending, Required: true},
		{Status: ApprovalStatusPending, Required: true},
		// Optional pending steps do not hold the chain up.
		{Status: ApprovalStatusPending, Required: false},
	}
	got := OverallApprovalStatus(records)
	if got.Status != ApprovalStatusPending {
		t.Fatalf("expected pending, got %q", got.Status)
	}
	if got.PendingRequired != 2 {
		t.Fatalf("expected 2 pending required, got %d", got.PendingRequired)
	}
}

func TestOverallApprovalStatus_ApprovedWhenNothingRequiredPends(t *testing.T) {
	records := []ApprovalRecord{
		{Status: ApprovalStatusApproved, Required: true},
		{Status: ApprovalStatusPending, Required: false},
	}
	got := OverallApprovalStatus(records)
	if got.Status != ApprovalStatusApproved {
		t.Fatalf("expected approved, got %q", got.Status)
	}
}
