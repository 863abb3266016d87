package normalize

import (
	"bitbucket.org/mmdatafocus/console_backend/models"
)

func ResourceAllocation(raw RawRecord, lookup EmployeeLookup) models.ResourceAllocation {
	employee := raw.Ref(
		[]string{"employee_id", "employee", "employee.id"},
		[]string{"employee_name", "employee.full_name", "employee.name"},
	)
	employee = resolveEmployeeRef(employee, lookup)

	return models.ResourceAllocation{
		CommonFields: reconcileCommon(raw),
		Project: raw.Ref(
			[]string{"project_id", "project.id"},
			[]string{"project_name", "project.name"},
		),
		Employee:  employee,
		Percent:   raw.Amount("percent", "allocation_percent", "allocation"),
		StartDate: raw.String("start_date", "from_date"),
		EndDate:   raw.String("end_date", "to_date"),
		Status:    models.RecordStatusFromString(raw.String("status", "state")),
		Notes:     raw.String("notes", "description"),
	}
}

func ResourceAllocations(raws []RawRecord, lookup EmployeeLookup) []models.ResourceAllocation {
	out := make([]models.ResourceAllocation, 0, len(raws))
	for _, raw := range raws {
		warnMissingId("resource_allocation", raw)
		out = append(out, ResourceAllocation(raw, lookup))
	}
	return out
}
