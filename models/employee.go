package models

// Employee is the canonical view-model for a person record.
type Employee struct {
	CommonFields
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	// FullName is derived for display; never sent upstream.
	FullName   string       `json:"fullName"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	Position   string       `json:"position"`
	Department Ref          `json:"department"`
	Manager    Ref          `json:"manager"`
	HireDate   string       `json:"hireDate"`
	Status     RecordStatus `json:"status"`
	Salary     string       `json:"salary"`
}

type EmployeePayload struct {
	FirstName    string `json:"first_name" validate:"required"`
	LastName     string `json:"last_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"omitempty,phone"`
	Position     string `json:"position"`
	DepartmentId string `json:"department_id"`
	ManagerId    string `json:"manager_id"`
	HireDate     string `json:"hire_date"`
	Status       string `json:"status" validate:"omitempty,oneof=active inactive archived"`
	Salary       string `json:"salary"`
}

func (e Employee) ToPayload() EmployeePayload {
	return EmployeePayload{
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		Phone:        e.Phone,
		Position:     e.Position,
		DepartmentId: e.Department.Id,
		ManagerId:    e.Manager.Id,
		HireDate:     e.HireDate,
		Status:       string(e.Status),
		Salary:       e.Salary,
	}
}

// DisplayName is the locally computed fallback when the upstream supplies
// no denormalized name.
func (e Employee) DisplayName() string {
	if e.FullName != "" {
		return e.FullName
	}
	name := e.FirstName
	if e.LastName != "" {
		if name != "" {
			name += " "
		}
		name += e.LastName
	}
	if name == "" {
		return NotSpecified
	}
	return name
}
