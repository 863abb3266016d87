package query

import (
	"github.com/shopspring/decimal"

	"bitbucket.org/mmdatafocus/console_backend/models"
	"bitbucket.org/mmdatafocus/console_backend/utils"
)

// Per-entity field configuration. The searchable lists are fixed per
// entity; filter keys double as the HTTP query parameter names.

func DepartmentFields() FieldSet[models.Department] {
	return FieldSet[models.Department]{
		Searchable: []func(models.Department) string{
			func(d models.Department) string { return d.Name },
			func(d models.Department) string { return d.Code },
			func(d models.Department) string { return d.Description },
		},
		Filterable: map[string]func(models.Department) string{
			"status":     func(d models.Department) string { return string(d.Status) },
			"manager_id": func(d models.Department) string { return d.Manager.Id },
			"parent_id":  func(d models.Department) string { return d.Parent.Id },
		},
		SortString: map[string]func(models.Department) string{
			"name": func(d models.Department) string { return d.Name },
			"code": func(d models.Department) string { return d.Code },
		},
		SortNumeric: map[string]func(models.Department) decimal.Decimal{
			"budget": func(d models.Department) decimal.Decimal { return utils.ParseAmount(d.BudgetAmount) },
			"employees": func(d models.Department) decimal.Decimal {
				return decimal.NewFromInt(int64(d.EmployeeCount))
			},
		},
	}
}

func EmployeeFields() FieldSet[models.Employee] {
	return FieldSet[models.Employee]{
		Searchable: []func(models.Employee) string{
			func(e models.Employee) string { return e.FullName },
			func(e models.Employee) string { return e.Email },
			func(e models.Employee) string { return e.Position },
		},
		Filterable: map[string]func(models.Employee) string{
			"status":        func(e models.Employee) string { return string(e.Status) },
			"department_id": func(e models.Employee) string { return e.Department.Id },
			"manager_id":    func(e models.Employee) string { return e.Manager.Id },
		},
		SortString: map[string]func(models.Employee) string{
			"name":      func(e models.Employee) string { return e.FullName },
			"position":  func(e models.Employee) string { return e.Position },
			"hire_date": func(e models.Employee) string { return e.HireDate },
		},
		SortNumeric: map[string]func(models.Employee) decimal.Decimal{
			"salary": func(e models.Employee) decimal.Decimal { return utils.ParseAmount(e.Salary) },
		},
	}
}

func SkillFields() FieldSet[models.Skill] {
	return FieldSet[models.Skill]{
		Searchable: []func(models.Skill) string{
			func(s models.Skill) string { return s.Name },
			func(s models.Skill) string { return s.Category },
			func(s models.Skill) string { return s.Description },
		},
		Filterable: map[string]func(models.Skill) string{
			"category": func(s models.Skill) string { return s.Category },
		},
		SortString: map[string]func(models.Skill) string{
			"name":     func(s models.Skill) string { return s.Name },
			"category": func(s models.Skill) string { return s.Category },
		},
	}
}

func EmployeeSkillFields() FieldSet[models.EmployeeSkill] {
	return FieldSet[models.EmployeeSkill]{
		Searchable: []func(models.EmployeeSkill) string{
			func(es models.EmployeeSkill) string { return es.Employee.Name },
			func(es models.EmployeeSkill) string { return es.Skill.Name },
		},
		Filterable: map[string]func(models.EmployeeSkill) string{
			"employee_id": func(es models.EmployeeSkill) string { return es.Employee.Id },
			"skill_id":    func(es models.EmployeeSkill) string { return es.Skill.Id },
			"proficiency": func(es models.EmployeeSkill) string { return string(es.Proficiency) },
		},
		SortString: map[string]func(models.EmployeeSkill) string{
			"employee": func(es models.EmployeeSkill) string { return es.Employee.Name },
			"skill":    func(es models.EmployeeSkill) string { return es.Skill.Name },
		},
		SortNumeric: map[string]func(models.EmployeeSkill) decimal.Decimal{
			"level": func(es models.EmployeeSkill) decimal.Decimal {
				return decimal.NewFromInt(int64(es.Level))
			},
		},
	}
}

func LineItemFields() FieldSet[models.LineItem] {
	return FieldSet[models.LineItem]{
		Searchable: []func(models.LineItem) string{
			func(li models.LineItem) string { return li.Description },
			func(li models.LineItem) string { return li.Category.Name },
		},
		Filterable: map[string]func(models.LineItem) string{
			"budget_id":   func(li models.LineItem) string { return li.Budget.Id },
			"category_id": func(li models.LineItem) string { return li.Category.Id },
			"band":        func(li models.LineItem) string { return string(li.UtilizationBand) },
		},
		SortString: map[string]func(models.LineItem) string{
			"description": func(li models.LineItem) string { return li.Description },
		},
		SortNumeric: map[string]func(models.LineItem) decimal.Decimal{
			"allocated":   func(li models.LineItem) decimal.Decimal { return utils.ParseAmount(li.AllocatedAmount) },
			"utilized":    func(li models.LineItem) decimal.Decimal { return utils.ParseAmount(li.UtilizedAmount) },
			"utilization": func(li models.LineItem) decimal.Decimal { return li.UtilizationPercent },
		},
	}
}

func ResourceAllocationFields() FieldSet[models.ResourceAllocation] {
	return FieldSet[models.ResourceAllocation]{
		Searchable: []func(models.ResourceAllocation) string{
			func(ra models.ResourceAllocation) string { return ra.Employee.Name },
			func(ra models.ResourceAllocation) string { return ra.Project.Name },
			func(ra models.ResourceAllocation) string { return ra.Notes },
		},
		Filterable: map[string]func(models.ResourceAllocation) string{
			"status":      func(ra models.ResourceAllocation) string { return string(ra.Status) },
			"project_id":  func(ra models.ResourceAllocation) string { return ra.Project.Id },
			"employee_id": func(ra models.ResourceAllocation) string { return ra.Employee.Id },
		},
		SortString: map[string]func(models.ResourceAllocation) string{
			"employee":   func(ra models.ResourceAllocation) string { return ra.Employee.Name },
			"start_date": func(ra models.ResourceAllocation) string { return ra.StartDate },
		},
		SortNumeric: map[string]func(models.ResourceAllocation) decimal.Decimal{
			"percent": func(ra models.ResourceAllocation) decimal.Decimal { return utils.ParseAmount(ra.Percent) },
		},
	}
}

func EquipmentFields() FieldSet[models.Equipment] {
	return FieldSet[models.Equipment]{
		Searchable: []func(models.Equipment) string{
			func(e models.Equipment) string { return e.Name },
			func(e models.Equipment) string { return e.SerialNumber },
			func(e models.Equipment) string { return e.AssignedTo.Name },
		},
		Filterable: map[string]func(models.Equipment) string{
			"status":         func(e models.Equipment) string { return string(e.Status) },
			"category_id":    func(e models.Equipment) string { return e.Category.Id },
			"assigned_to_id": func(e models.Equipment) string { return e.AssignedTo.Id },
		},
		SortString: map[string]func(models.Equipment) string{
			"name":          func(e models.Equipment) string { return e.Name },
			"purchase_date": func(e models.Equipment) string { return e.PurchaseDate },
		},
		SortNumeric: map[string]func(models.Equipment) decimal.Decimal{
			"cost": func(e models.Equipment) decimal.Decimal { return utils.ParseAmount(e.Cost) },
		},
	}
}

func LeaveRequestFields() FieldSet[models.LeaveRequest] {
	return FieldSet[models.LeaveRequest]{
		Searchable: []func(models.LeaveRequest) string{
			func(lr models.LeaveRequest) string { return lr.Employee.Name },
			func(lr models.LeaveRequest) string { return lr.Reason },
		},
		Filterable: map[string]func(models.LeaveRequest) string{
			"type":        func(lr models.LeaveRequest) string { return string(lr.Type) },
			"status":      func(lr models.LeaveRequest) string { return string(lr.Overall.Status) },
			"employee_id": func(lr models.LeaveRequest) string { return lr.Employee.Id },
		},
		SortString: map[string]func(models.LeaveRequest) string{
			"employee":   func(lr models.LeaveRequest) string { return lr.Employee.Name },
			"start_date": func(lr models.LeaveRequest) string { return lr.StartDate },
		},
		SortNumeric: map[string]func(models.LeaveRequest) decimal.Decimal{
			"days": func(lr models.LeaveRequest) decimal.Decimal { return utils.ParseAmount(lr.Days) },
		},
	}
}

func ProjectPhaseFields() FieldSet[models.ProjectPhase] {
	return FieldSet[models.ProjectPhase]{
		Searchable: []func(models.ProjectPhase) string{
			func(pp models.ProjectPhase) string { return pp.Name },
			func(pp models.ProjectPhase) string { return pp.Project.Name },
		},
		Filterable: map[string]func(models.ProjectPhase) string{
			"status":     func(pp models.ProjectPhase) string { return string(pp.Status) },
			"project_id": func(pp models.ProjectPhase) string { return pp.Project.Id },
		},
		SortString: map[string]func(models.ProjectPhase) string{
			"name":       func(pp models.ProjectPhase) string { return pp.Name },
			"start_date": func(pp models.ProjectPhase) string { return pp.StartDate },
		},
		SortNumeric: map[string]func(models.ProjectPhase) decimal.Decimal{
			"sequence": func(pp models.ProjectPhase) decimal.Decimal {
				return decimal.NewFromInt(int64(pp.Sequence))
			},
			"completion": func(pp models.ProjectPhase) decimal.Decimal {
				return utils.ParseAmount(pp.CompletionPercent)
			},
		},
	}
}

func TimesheetFields() FieldSet[models.Timesheet] {
	return FieldSet[models.Timesheet]{
		Searchable: []func(models.Timesheet) string{
			func(ts models.Timesheet) string { return ts.Employee.Name },
			func(ts models.Timesheet) string { return ts.Project.Name },
			func(ts models.Timesheet) string { return ts.Notes },
		},
		Filterable: map[string]func(models.Timesheet) string{
			"status":      func(ts models.Timesheet) string { return string(ts.Status) },
			"employee_id": func(ts models.Timesheet) string { return ts.Employee.Id },
			"project_id":  func(ts models.Timesheet) string { return ts.Project.Id },
		},
		SortString: map[string]func(models.Timesheet) string{
			"date":     func(ts models.Timesheet) string { return ts.Date },
			"employee": func(ts models.Timesheet) string { return ts.Employee.Name },
		},
		SortNumeric: map[string]func(models.Timesheet) decimal.Decimal{
			"hours": func(ts models.Timesheet) decimal.Decimal { return utils.ParseAmount(ts.Hours) },
		},
	}
}

func RiskDetailFields() FieldSet[models.RiskDetail] {
	return FieldSet[models.RiskDetail]{
		Searchable: []func(models.RiskDetail) string{
			func(rd models.RiskDetail) string { return rd.Title },
			func(rd models.RiskDetail) string { return rd.Description },
			func(rd models.RiskDetail) string { return rd.Project.Name },
		},
		Filterable: map[string]func(models.RiskDetail) string{
			"severity":   func(rd models.RiskDetail) string { return string(rd.Severity) },
			"status":     func(rd models.RiskDetail) string { return string(rd.Status) },
			"project_id": func(rd models.RiskDetail) string { return rd.Project.Id },
			"owner_id":   func(rd models.RiskDetail) string { return rd.Owner.Id },
		},
		SortString: map[string]func(models.RiskDetail) string{
			"title": func(rd models.RiskDetail) string { return rd.Title },
		},
		SortNumeric: map[string]func(models.RiskDetail) decimal.Decimal{
			"probability": func(rd models.RiskDetail) decimal.Decimal { return utils.ParseAmount(rd.Probability) },
			"impact":      func(rd models.RiskDetail) decimal.Decimal { return utils.ParseAmount(rd.Impact) },
		},
	}
}

func RevenueClientFields() FieldSet[models.RevenueClient] {
	return FieldSet[models.RevenueClient]{
		Searchable: []func(models.RevenueClient) string{
			func(rc models.RevenueClient) string { return rc.Name },
			func(rc models.RevenueClient) string { return rc.Code },
			func(rc models.RevenueClient) string { return rc.Industry },
		},
		Filterable: map[string]func(models.RevenueClient) string{
			"status":             func(rc models.RevenueClient) string { return string(rc.Status) },
			"industry":           func(rc models.RevenueClient) string { return rc.Industry },
			"account_manager_id": func(rc models.RevenueClient) string { return rc.AccountManager.Id },
		},
		SortString: map[string]func(models.RevenueClient) string{
			"name": func(rc models.RevenueClient) string { return rc.Name },
		},
		SortNumeric: map[string]func(models.RevenueClient) decimal.Decimal{
			"revenue": func(rc models.RevenueClient) decimal.Decimal { return utils.ParseAmount(rc.TotalRevenue) },
		},
	}
}

func DocumentFields() FieldSet[models.Document] {
	return FieldSet[models.Document]{
		Searchable: []func(models.Document) string{
			func(d models.Document) string { return d.Name },
			func(d models.Document) string { return d.Project.Name },
			func(d models.Document) string { return d.UploadedBy.Name },
		},
		Filterable: map[string]func(models.Document) string{
			"project_id": func(d models.Document) string { return d.Project.Id },
			"mime_type":  func(d models.Document) string { return d.MimeType },
		},
		SortString: map[string]func(models.Document) string{
			"name":        func(d models.Document) string { return d.Name },
			"uploaded_at": func(d models.Document) string { return d.CreatedAt },
		},
		SortNumeric: map[string]func(models.Document) decimal.Decimal{
			"size": func(d models.Document) decimal.Decimal { return decimal.NewFromInt(d.Size) },
		},
	}
}
