package normalize

import (
	"bitbucket.org/mmdatafocus/console_backend/models"
)

// Department source priority:
//
//	name:        name > department_name
//	code:        code > department_code
//	status:      status > state
//	manager id:  manager_id > manager.id
//	manager name: manager_name > manager.full_name > manager.name
//	parent id:   parent_id > parent_department_id > parent.id
//	budget:      budget_amount > budget > allocated_budget
//
// The parent ref joins through the department side collection when only a
// bare id arrives.
func Department(raw RawRecord, lookup DepartmentLookup) models.Department {
	parent := raw.Ref(
		[]string{"parent_id", "parent_department_id", "parent.id"},
		[]string{"parent_name", "parent.name", "parent.department_name"},
	)
	parent = resolveDepartmentRef(parent, lookup)

	return models.Department{
		CommonFields: reconcileCommon(raw),
		Name:         raw.String("name", "department_name"),
		Code:         raw.String("code", "department_code"),
		Description:  raw.String("description"),
		Status:       models.RecordStatusFromString(raw.String("status", "state")),
		Manager: raw.Ref(
			[]string{"manager_id", "manager.id"},
			[]string{"manager_name", "manager.full_name", "manager.name"},
		),
		Parent:        parent,
		BudgetAmount:  raw.Amount("budget_amount", "budget", "allocated_budget"),
		EmployeeCount: raw.Int("employee_count", "employees_count", "headcount"),
	}
}

func Departments(raws []RawRecord, lookup DepartmentLookup) []models.Department {
	out := make([]models.Department, 0, len(raws))
	for _, raw := range raws {
		warnMissingId("department", raw)
		out = append(out, Department(raw, lookup))
	}
	return out
}

// DepartmentLookup answers side-collection joins, the department twin of
// EmployeeLookup.
type DepartmentLookup func(id string) (models.Department, bool)

// DepartmentLookupFromSlice builds a lookup over an already-reconciled side
// collection.
func DepartmentLookupFromSlice(departments []models.Department) DepartmentLookup {
	byId := make(map[string]models.Department, len(departments))
	for _, dept := range departments {
		if dept.Id != "" {
			byId[dept.Id] = dept
		}
	}
	return func(id string) (models.Department, bool) {
		dept, ok := byId[id]
		return dept, ok
	}
}

// resolveDepartmentRef fills a missing display name from the side
// collection, with the explicit sentinel when nothing resolves.
func resolveDepartmentRef(ref models.Ref, lookup DepartmentLookup) models.Ref {
	if ref.Name != "" || ref.Id == "" {
		return ref
	}
	if lookup != nil {
		if dept, ok := lookup(ref.Id); ok && dept.Name != "" {
			ref.Name = dept.Name
		}
	}
	return ref
}
