package models

// Department is the canonical view-model for an organization unit.
type Department struct {
	CommonFields
	Name        string       `json:"name"`
	Code        string       `json:"code"`
	Description string       `json:"description"`
	Status      RecordStatus `json:"status"`
	Manager     Ref          `json:"manager"`
	Parent      Ref          `json:"parent"`
	// BudgetAmount keeps the upstream's string form; parse only at the
	// point of arithmetic or display formatting.
	BudgetAmount  string `json:"budgetAmount"`
	EmployeeCount int    `json:"employeeCount"`
}

// DepartmentPayload is what a form submission sends back upstream.
// Identifier fields only; display names never leave the view-model.
type DepartmentPayload struct {
	Name         string `json:"name" validate:"required"`
	Code         string `json:"code" validate:"required"`
	Description  string `json:"description"`
	Status       string `json:"status" validate:"omitempty,oneof=active inactive archived"`
	ManagerId    string `json:"manager_id"`
	ParentId     string `json:"parent_id"`
	BudgetAmount string `json:"budget_amount"`
}

func (d Department) ToPayload() DepartmentPayload {
	return DepartmentPayload{
		Name:         d.Name,
		Code:         d.Code,
		Description:  d.Description,
		Status:       string(d.Status),
		ManagerId:    d.Manager.Id,
		ParentId:     d.Parent.Id,
		BudgetAmount: d.BudgetAmount,
	}
}
