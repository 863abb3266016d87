package models

// ApprovalRecord is one step of a multi-step approval chain, e.g. on a
// leave request or an expense line item.
type ApprovalRecord struct {
	CommonFields
	Approver Ref            `json:"approver"`
	Status   ApprovalStatus `json:"status"`
	Required bool           `json:"required"`
	Comment  string         `json:"comment"`
}

// OverallApproval is the single aggregate the console shows for a chain.
type OverallApproval struct {
	Status ApprovalStatus `json:"status"`
	// PendingRequired counts the required steps still pending; only
	// meaningful when Status is pending.
	PendingRequired int `json:"pendingRequired"`
}

// OverallApprovalStatus folds an approval chain into one status.
// Precedence: any rejected step (required or not) rejects the whole chain;
// otherwise any required step still pending keeps it pending; otherwise it
// is approved. An empty chain is its own state, not approved.
func OverallApprovalStatus(records []ApprovalRecord) OverallApproval {
	if len(records) == 0 {
		return OverallApproval{Status: ApprovalStatusNone}
	}

	pendingRequired := 0
	for _, record := range records {
		if record.Status == ApprovalStatusRejected {
			return OverallApproval{Status: ApprovalStatusRejected}
		}
		if record.Required && record.Status == ApprovalStatusPending {
			pendingRequired++
		}
	}
	if pendingRequired > 0 {
		return OverallApproval{Status: ApprovalStatusPending, PendingRequired: pendingRequired}
	}
	return OverallApproval{Status: ApprovalStatusApproved}
}
