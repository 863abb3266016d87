package normalize

import (
	"bitbucket.org/mmdatafocus/console_backend/models"
)

// LeaveRequest folds the approval chain into the single overall status the
// console shows. An empty chain is "no approvals required", never approved.
func LeaveRequest(raw RawRecord, lookup EmployeeLookup) models.LeaveRequest {
	employee := raw.Ref(
		[]string{"employee_id", "employee", "employee.id"},
		[]string{"employee_name", "employee.full_name", "employee.name"},
	)
	employee = resolveEmployeeRef(employee, lookup)

	approver := raw.Ref(
		[]string{"approver_id", "approver", "approver.id"},
		[]string{"approver_name", "approver.full_name", "approver.name"},
	)
	approver = resolveEmployeeRef(approver, lookup)

	approvals := ApprovalRecords(raw.Records("approvals", "approval_records"), lookup)

	return models.LeaveRequest{
		CommonFields: reconcileCommon(raw),
		Employee:     employee,
		Type:         models.LeaveTypeFromString(raw.String("type", "leave_type")),
		StartDate:    raw.String("start_date", "from_date"),
		EndDate:      raw.String("end_date", "to_date"),
		Days:         raw.Amount("days", "total_days"),
		Reason:       raw.String("reason", "description"),
		Approver:     approver,

		Approvals: approvals,
		Overall:   models.OverallApprovalStatus(approvals),
	}
}

func LeaveRequests(raws []RawRecord, lookup EmployeeLookup) []models.LeaveRequest {
	out := make([]models.LeaveRequest, 0, len(raws))
	for _, raw := range raws {
		warnMissingId("leave_request", raw)
		out = append(out, LeaveRequest(raw, lookup))
	}
	return out
}

// ApprovalRecords reconciles an approval chain. A step with no explicit
// required flag counts as required: an optional approval must be marked so
// by the backend, not assumed.
func ApprovalRecords(raws []RawRecord, lookup EmployeeLookup) []models.ApprovalRecord {
	if len(raws) == 0 {
		return nil
	}
	out := make([]models.ApprovalRecord, 0, len(raws))
	for _, raw := range raws {
		approver := raw.Ref(
			[]string{"approver_id", "approver", "approver.id"},
			[]string{"approver_name", "approver.full_name", "approver.name"},
		)
		approver = resolveEmployeeRef(approver, lookup)

		required := true
		if _, ok := raw.lookup("required"); ok {
			required = raw.Bool("required")
		} else if _, ok := raw.lookup("is_required"); ok {
			required = raw.Bool("is_required")
		}

		out = append(out, models.ApprovalRecord{
			CommonFields: reconcileCommon(raw),
			Approver:     approver,
			Status:       models.ApprovalStatusFromString(raw.String("status", "state")),
			Required:     required,
			Comment:      raw.String("comment", "notes"),
		})
	}
	return out
}
