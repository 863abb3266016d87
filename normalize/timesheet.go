package normalize

import (
	"bitbucket.org/mmdatafocus/console_backend/models"
)

func Timesheet(raw RawRecord, lookup EmployeeLookup) models.Timesheet {
	employee := raw.Ref(
		[]string{"employee_id", "employee", "employee.id"},
		[]string{"employee_name", "employee.full_name", "employee.name"},
	)
	employee = resolveEmployeeRef(employee, lookup)

	return models.Timesheet{
		CommonFields: reconcileCommon(raw),
		Employee:     employee,
		Project: raw.Ref(
			[]string{"project_id", "project.id"},
			[]string{"project_name", "project.name"},
		),
		Date:   raw.String("date", "work_date"),
		Hours:  raw.Amount("hours", "hours_worked"),
		Notes:  raw.String("notes", "description"),
		Status: models.ApprovalStatusFromString(raw.String("status", "state")),
	}
}

func Timesheets(raws []RawRecord, lookup EmployeeLookup) []models.Timesheet {
	out := make([]models.Timesheet, 0, len(raws))
	for _, raw := range raws {
		warnMissingId("timesheet", raw)
		out = append(out, Timesheet(raw, lookup))
	}
	return out
}
