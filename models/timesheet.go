package models

type Timesheet struct {
	CommonFields
	Employee Ref            `json:"employee"`
	Project  Ref            `json:"project"`
	Date     string         `json:"date"`
	Hours    string         `json:"hours"`
	Notes    string         `json:"notes"`
	Status   ApprovalStatus `json:"status"`
}

type TimesheetPayload struct {
	EmployeeId string `json:"employee_id" validate:"required"`
	ProjectId  string `json:"project_id" validate:"required"`
	Date       string `json:"date" validate:"required"`
	Hours      string `json:"hours" validate:"required"`
	Notes      string `json:"notes"`
}

func (ts Timesheet) ToPayload() TimesheetPayload {
	return TimesheetPayload{
		EmployeeId: ts.Employee.Id,
		ProjectId:  ts.Project.Id,
		Date:       ts.Date,
		Hours:      ts.Hours,
		Notes:      ts.Notes,
	}
}
