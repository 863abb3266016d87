package normalize

import (
	"testing"

	"bitbucket.org/mmdatafocus/console_backend/models"
)

func TestDepartment_SourcePriority(t *testing.T) {
	raw := DecodeRecord([]byte(`{
		"id": "d1",
		"department_name": "Engineering",
		"code": "ENG",
		"state": "archived",
		"manager_id": "m1",
		"manager": {"full_name": "Sam Po"},
		"parent_department_id": "p1",
		"budget": "120,000",
		"headcount": 14,
		"created_at": "2026-01-02T03:04:05Z"
	}`))
	got := Department(raw, nil)

	if got.Id != "d1" || got.CreatedAt != "2026-01-02T03:04:05Z" {
		t.Fatalf("common fields wrong: %+v", got.CommonFields)
	}
	if got.Name != "Engineering" || got.Code != "ENG" {
		t.Fatalf("name/code wrong: %q %q", got.Name, got.Code)
	}
	if got.Status != models.RecordStatusArchived {
		t.Fatalf("expected archived, got %q", got.Status)
	}
	if got.Manager.Id != "m1" || got.Manager.Name != "Sam Po" {
		t.Fatalf("manager ref wrong: %+v", got.Manager)
	}
	if got.Parent.Id != "p1" {
		t.Fatalf("parent ref wrong: %+v", got.Parent)
	}
	if got.BudgetAmount != "120,000" {
		t.Fatalf("budget string must stay literal, got %q", got.BudgetAmount)
	}
	if got.EmployeeCount != 14 {
		t.Fatalf("expected headcount 14, got %d", got.EmployeeCount)
	}
}

func TestDepartment_MissingOptionalFieldsFallBack(t *testing.T) {
	got := Department(DecodeRecord([]byte(`{"id": "d2", "name": "Ops"}`)), nil)
	if got.Status != models.RecordStatusActive {
		t.Fatalf("missing status expected active, got %q", got.Status)
	}
	if got.Manager.IsSet() {
		t.Fatalf("expected unset manager, got %+v", got.Manager)
	}
	if got.Manager.DisplayName() != models.NotSpecified {
		t.Fatalf("expected %q, got %q", models.NotSpecified, got.Manager.DisplayName())
	}
	if got.BudgetAmount != "" {
		t.Fatalf("expected empty budget, got %q", got.BudgetAmount)
	}
}

// A bare parent id with no denormalized name joins through the department
// side collection, same contract as the employee join.
func TestDepartment_ParentJoinsThroughLookup(t *testing.T) {
	lookup := DepartmentLookupFromSlice([]models.Department{
		{CommonFields: models.CommonFields{Id: "p1"}, Name: "Operations"},
	})
	got := Department(DecodeRecord([]byte(`{"id": "d1", "name": "Facilities", "parent_id": "p1"}`)), lookup)
	if got.Parent.Id != "p1" {
		t.Fatalf("expected parent id p1, got %q", got.Parent.Id)
	}
	if got.Parent.Name != "Operations" {
		t.Fatalf("expected joined parent name, got %q", got.Parent.Name)
	}

	// A denormalized name always wins over the lookup.
	kept := Department(DecodeRecord([]byte(`{"id": "d2", "parent_id": "p1", "parent_name": "From Record"}`)), lookup)
	if kept.Parent.Name != "From Record" {
		t.Fatalf("denormalized name must win, got %q", kept.Parent.Name)
	}

	// A lookup miss keeps the bare id; display falls back to it.
	miss := Department(DecodeRecord([]byte(`{"id": "d3", "parent_id": "p9"}`)), lookup)
	if miss.Parent.DisplayName() != "p9" {
		t.Fatalf("expected display fallback p9, got %q", miss.Parent.DisplayName())
	}
}

func TestEmployee_DepartmentJoinsThroughLookup(t *testing.T) {
	lookup := DepartmentLookupFromSlice([]models.Department{
		{CommonFields: models.CommonFields{Id: "dep1"}, Name: "Engineering"},
	})
	got := Employee(DecodeRecord([]byte(`{"id": "e1", "first_name": "Jo", "department_id": "dep1"}`)), lookup)
	if got.Department.Name != "Engineering" {
		t.Fatalf("expected joined department name, got %q", got.Department.Name)
	}
}

// Re-reconciling a department built from identical input yields an identical
// record; reconciliation has no hidden state.
func TestDepartments_Deterministic(t *testing.T) {
	body := []byte(`{"id": "d1", "name": "Engineering", "budget": 5000}`)
	first := Department(DecodeRecord(body), nil)
	second := Department(DecodeRecord(body), nil)
	if first != second {
		t.Fatalf("expected identical records:\n%+v\n%+v", first, second)
	}
}
