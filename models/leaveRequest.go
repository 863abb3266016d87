package models

// LeaveRequest carries its approval chain; Overall is derived from the
// chain and never sent upstream.
type LeaveRequest struct {
	CommonFields
	Employee  Ref       `json:"employee"`
	Type      LeaveType `json:"type"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Days      string    `json:"days"`
	Reason    string    `json:"reason"`
	Approver  Ref       `json:"approver"`

	Approvals []ApprovalRecord `json:"approvals"`
	Overall   OverallApproval  `json:"overall"`
}

type LeaveRequestPayload struct {
	EmployeeId string `json:"employee_id" validate:"required"`
	Type       string `json:"type" validate:"required,oneof=annual sick unpaid parental other"`
	StartDate  string `json:"start_date" validate:"required"`
	EndDate    string `json:"end_date" validate:"required"`
	Days       string `json:"days"`
	Reason     string `json:"reason"`
	ApproverId string `json:"approver_id"`
}

func (lr LeaveRequest) ToPayload() LeaveRequestPayload {
	return LeaveRequestPayload{
		EmployeeId: lr.Employee.Id,
		Type:       string(lr.Type),
		StartDate:  lr.StartDate,
		EndDate:    lr.EndDate,
		Days:       lr.Days,
		Reason:     lr.Reason,
		ApproverId: lr.Approver.Id,
	}
}
