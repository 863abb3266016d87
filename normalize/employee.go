package normalize

import (
	"bitbucket.org/mmdatafocus/console_backend/models"
)

// Employee source priority:
//
//	first name: first_name > user.first_name
//	last name:  last_name > user.last_name
//	full name:  full_name > name > employee_name > first+last composed
//	email:      email > user.email
//
// The department ref joins through the department side collection when only
// a bare id arrives.
func Employee(raw RawRecord, lookup DepartmentLookup) models.Employee {
	department := raw.Ref(
		[]string{"department_id", "department.id"},
		[]string{"department_name", "department.name"},
	)
	department = resolveDepartmentRef(department, lookup)

	emp := models.Employee{
		CommonFields: reconcileCommon(raw),
		FirstName:    raw.String("first_name", "user.first_name"),
		LastName:     raw.String("last_name", "user.last_name"),
		FullName:     raw.String("full_name", "name", "employee_name"),
		Email:        raw.String("email", "user.email"),
		Phone:        raw.String("phone", "phone_number", "user.phone"),
		Position:     raw.String("position", "job_title", "title"),
		Department: department,
		Manager: raw.Ref(
			[]string{"manager_id", "manager.id"},
			[]string{"manager_name", "manager.full_name", "manager.name"},
		),
		HireDate: raw.String("hire_date", "hired_at", "start_date"),
		Status:   models.RecordStatusFromString(raw.String("status", "state")),
		Salary:   raw.Amount("salary", "base_salary"),
	}
	if emp.FullName == "" {
		if composed := composeName(emp.FirstName, emp.LastName); composed != "" {
			emp.FullName = composed
		}
	}
	return emp
}

func Employees(raws []RawRecord, lookup DepartmentLookup) []models.Employee {
	out := make([]models.Employee, 0, len(raws))
	for _, raw := range raws {
		warnMissingId("employee", raw)
		out = append(out, Employee(raw, lookup))
	}
	return out
}

func composeName(first, last string) string {
	if first == "" {
		return last
	}
	if last == "" {
		return first
	}
	return first + " " + last
}

// EmployeeLookup answers side-collection joins: given an employee id,
// return its canonical record if the owning page fetched one.
type EmployeeLookup func(id string) (models.Employee, bool)

// EmployeeLookupFromSlice builds a lookup over an already-reconciled side
// collection.
func EmployeeLookupFromSlice(employees []models.Employee) EmployeeLookup {
	byId := make(map[string]models.Employee, len(employees))
	for _, emp := range employees {
		if emp.Id != "" {
			byId[emp.Id] = emp
		}
	}
	return func(id string) (models.Employee, bool) {
		emp, ok := byId[id]
		return emp, ok
	}
}

// resolveEmployeeRef fills a missing display name from the side collection,
// with the explicit sentinel when nothing resolves.
func resolveEmployeeRef(ref models.Ref, lookup EmployeeLookup) models.Ref {
	if ref.Name != "" || ref.Id == "" {
		return ref
	}
	if lookup != nil {
		if emp, ok := lookup(ref.Id); ok {
			ref.Name = emp.DisplayName()
		}
	}
	return ref
}
