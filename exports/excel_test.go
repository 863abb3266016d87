package exports

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"bitbucket.org/mmdatafocus/console_backend/models"
)

func TestWriteCollection_RowsFollowCollectionOrder(t *testing.T) {
	records := []models.Department{
		{Name: "Engineering", Code: "ENG", Status: models.RecordStatusActive, Manager: models.Ref{Name: "Sam Po"}, EmployeeCount: 30, BudgetAmount: "5,000"},
		{Name: "Sales", Code: "SLS", Status: models.RecordStatusActive, EmployeeCount: 12, BudgetAmount: ""},
	}

	var buf bytes.Buffer
	if err := WriteCollection(&buf, DepartmentColumns(), records); err != nil {
		t.Fatalf("WriteCollection error: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer f.Close()

	header, err := f.GetCellValue("Sheet1", "A1")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if header != "Name" {
		t.Fatalf("expected Name header, got %q", header)
	}

	first, _ := f.GetCellValue("Sheet1", "A2")
	second, _ := f.GetCellValue("Sheet1", "A3")
	if first != "Engineering" || second != "Sales" {
		t.Fatalf("rows out of order: %q, %q", first, second)
	}

	// The manager column exports the display name, with the sentinel for an
	// absent relationship.
	manager, _ := f.GetCellValue("Sheet1", "D3")
	if manager != models.NotSpecified {
		t.Fatalf("expected %q, got %q", models.NotSpecified, manager)
	}

	// The budget column is numeric so spreadsheet totals work.
	budget, _ := f.GetCellValue("Sheet1", "F2")
	if budget != "5000" {
		t.Fatalf("expected parsed budget 5000, got %q", budget)
	}
}
