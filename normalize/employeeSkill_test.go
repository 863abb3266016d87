package normalize

import (
	"testing"

	"bitbucket.org/mmdatafocus/console_backend/models"
)

// The skills page joins its rows against the separately fetched employee
// collection: a flat employee id with no denormalized name resolves through
// the side-collection lookup.
func TestEmployeeSkill_SideCollectionJoin(t *testing.T) {
	side := Employees([]RawRecord{
		DecodeRecord([]byte(`{"id": "e1", "first_name": "Jo", "last_name": "Lee"}`)),
	}, nil)
	lookup := EmployeeLookupFromSlice(side)

	raw := DecodeRecord([]byte(`{"id": "5", "level": 3, "employee": "e1", "skill_id": "s9", "skill_name": "Go"}`))
	got := EmployeeSkill(raw, lookup)

	if got.Id != "5" {
		t.Fatalf("expected id 5, got %q", got.Id)
	}
	if got.Proficiency != models.ProficiencyAdvanced {
		t.Fatalf("level 3 expected advanced, got %q", got.Proficiency)
	}
	if got.Employee.Id != "e1" {
		t.Fatalf("expected employee id e1, got %q", got.Employee.Id)
	}
	if got.Employee.Name != "Jo Lee" {
		t.Fatalf("expected joined name Jo Lee, got %q", got.Employee.Name)
	}
	if got.Skill.Id != "s9" || got.Skill.Name != "Go" {
		t.Fatalf("unexpected skill ref: %+v", got.Skill)
	}
}

func TestEmployeeSkill_NumericIdAndLevelPriority(t *testing.T) {
	// ids arrive as bare numbers on some endpoint versions; level falls back
	// through proficiency_level and proficiency.
	raw := DecodeRecord([]byte(`{"id": 5, "proficiency_level": 4, "employee_id": "e2"}`))
	got := EmployeeSkill(raw, nil)
	if got.Id != "5" {
		t.Fatalf("expected id 5, got %q", got.Id)
	}
	if got.Level != 4 || got.Proficiency != models.ProficiencyExpert {
		t.Fatalf("expected level 4 expert, got %d %q", got.Level, got.Proficiency)
	}
	// No lookup: the ref keeps its id, name stays empty, display falls back
	// to the id.
	if got.Employee.DisplayName() != "e2" {
		t.Fatalf("expected display fallback e2, got %q", got.Employee.DisplayName())
	}
}

func TestEmployeeSkill_MalformedRecordIsAllDefaults(t *testing.T) {
	got := EmployeeSkill(DecodeRecord([]byte(`"not an object"`)), nil)
	if got.Id != "" {
		t.Fatalf("expected empty id, got %q", got.Id)
	}
	if got.Proficiency != models.ProficiencyBeginner {
		t.Fatalf("missing level expected beginner, got %q", got.Proficiency)
	}
	if got.Employee.DisplayName() != models.NotSpecified {
		t.Fatalf("expected %q, got %q", models.NotSpecified, got.Employee.DisplayName())
	}
}

func TestEmployeeSkill_LookupNeverOverridesDenormalizedName(t *testing.T) {
	lookup := EmployeeLookupFromSlice([]models.Employee{
		{CommonFields: models.CommonFields{Id: "e1"}, FullName: "From Lookup"},
	})
	raw := DecodeRecord([]byte(`{"id": "1", "employee_id": "e1", "employee_name": "From Record"}`))
	got := EmployeeSkill(raw, lookup)
	if got.Employee.Name != "From Record" {
		t.Fatalf("denormalized name must win, got %q", got.Employee.Name)
	}
}
