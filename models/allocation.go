package models

// ResourceAllocation assigns a share of an employee's time to a project.
type ResourceAllocation struct {
	CommonFields
	Project   Ref          `json:"project"`
	Employee  Ref          `json:"employee"`
	Percent   string       `json:"percent"`
	StartDate string       `json:"startDate"`
	EndDate   string       `json:"endDate"`
	Status    RecordStatus `json:"status"`
	Notes     string       `json:"notes"`
}

type ResourceAllocationPayload struct {
	ProjectId  string `json:"project_id" validate:"required"`
	EmployeeId string `json:"employee_id" validate:"required"`
	Percent    string `json:"percent" validate:"required"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status" validate:"omitempty,oneof=active inactive archived"`
	Notes      string `json:"notes"`
}

func (ra ResourceAllocation) ToPayload() ResourceAllocationPayload {
	return ResourceAllocationPayload{
		ProjectId:  ra.Project.Id,
		EmployeeId: ra.Employee.Id,
		Percent:    ra.Percent,
		StartDate:  ra.StartDate,
		EndDate:    ra.EndDate,
		Status:     string(ra.Status),
		Notes:      ra.Notes,
	}
}
