package models

import "testing"

func TestEmployeeDisplayName(t *testing.T) {
	cases := []struct {
		name     string
		employee Employee
		expected string
	}{
		{"full name wins", Employee{FullName: "Jo Lee", FirstName: "Other"}, "Jo Lee"},
		{"composed from parts", Employee{FirstName: "Jo", LastName: "Lee"}, "Jo Lee"},
		{"first only", Employee{FirstName: "Jo"}, "Jo"},
		{"last only", Employee{LastName: "Lee"}, "Lee"},
		{"nothing", Employee{}, NotSpecified},
	}
	for _, tc := range cases {
		if got := tc.employee.DisplayName(); got != tc.expected {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.expected, got)
		}
	}
}

func TestRefDisplayName(t *testing.T) {
	cases := []struct {
		ref      Ref
		expected string
	}{
		{Ref{Id: "7", Name: "Engineering"}, "Engineering"},
		{Ref{Id: "7"}, "7"},
		{Ref{}, NotSpecified},
	}
	for _, tc := range cases {
		if got := tc.ref.DisplayName(); got != tc.expected {
			t.Fatalf("Ref%+v expected %q, got %q", tc.ref, tc.expected, got)
		}
	}
}

// Mutation payloads carry identifiers, never display names: editing a record
// must round-trip the ids intact while the denormalized names stay local.
func TestToPayload_CarriesIdentifiersNotDisplayNames(t *testing.T) {
	emp := Employee{
		FirstName:  "Jo",
		LastName:   "Lee",
		Email:      "jo@example.com",
		Department: Ref{Id: "d1", Name: "Engineering"},
		Manager:    Ref{Id: "m1", Name: "Sam Po"},
		Status:     RecordStatusActive,
	}
	payload := emp.ToPayload()
	if payload.DepartmentId != "d1" || payload.ManagerId != "m1" {
		t.Fatalf("identifier fields lost: %+v", payload)
	}

	dept := Department{
		Name:         "Engineering",
		Code:         "ENG",
		Manager:      Ref{Id: "m1", Name: "Sam Po"},
		Parent:       Ref{Id: "p1", Name: "Operations"},
		BudgetAmount: "120,000",
	}
	dp := dept.ToPayload()
	if dp.ManagerId != "m1" || dp.ParentId != "p1" {
		t.Fatalf("identifier fields lost: %+v", dp)
	}
	if dp.BudgetAmount != "120,000" {
		t.Fatalf("amount string must pass through untouched, got %q", dp.BudgetAmount)
	}
}
