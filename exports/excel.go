// Package exports writes the current filtered/sorted collection to an
// Excel workbook, for download from a list page or offline via
// cmd/export-report.
package exports

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"bitbucket.org/mmdatafocus/console_backend/models"
	"bitbucket.org/mmdatafocus/console_backend/utils"
)

// Column maps one spreadsheet column onto a record field.
type Column[T any] struct {
	Header string
	Value  func(T) interface{}
}

const sheetName = "Sheet1"

// WriteCollection streams records as an .xlsx workbook. Rows follow the
// collection's order, which is the query engine's output order.
func WriteCollection[T any](w io.Writer, columns []Column[T], records []T) error {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}

	for colIdx, column := range columns {
		cell, err := excelize.CoordinatesToCellName(colIdx+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, column.Header); err != nil {
			return err
		}
	}

	for rowIdx, record := range records {
		for colIdx, column := range columns {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, column.Value(record)); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}

// DepartmentColumns is the standard department report layout. The budget
// column exports the parsed numeric value so spreadsheet totals work.
func DepartmentColumns() []Column[models.Department] {
	return []Column[models.Department]{
		{Header: "Name", Value: func(d models.Department) interface{} { return d.Name }},
		{Header: "Code", Value: func(d models.Department) interface{} { return d.Code }},
		{Header: "Status", Value: func(d models.Department) interface{} { return string(d.Status) }},
		{Header: "Manager", Value: func(d models.Department) interface{} { return d.Manager.DisplayName() }},
		{Header: "Employees", Value: func(d models.Department) interface{} { return d.EmployeeCount }},
		{Header: "Budget", Value: func(d models.Department) interface{} {
			amount, _ := utils.ParseAmount(d.BudgetAmount).Float64()
			return amount
		}},
	}
}

// LineItemColumns exports budget line items with their derived utilization.
func LineItemColumns() []Column[models.LineItem] {
	return []Column[models.LineItem]{
		{Header: "Description", Value: func(li models.LineItem) interface{} { return li.Description }},
		{Header: "Category", Value: func(li models.LineItem) interface{} { return li.Category.DisplayName() }},
		{Header: "Allocated", Value: func(li models.LineItem) interface{} {
			amount, _ := utils.ParseAmount(li.AllocatedAmount).Float64()
			return amount
		}},
		{Header: "Utilized", Value: func(li models.LineItem) interface{} {
			amount, _ := utils.ParseAmount(li.UtilizedAmount).Float64()
			return amount
		}},
		{Header: "Utilization %", Value: func(li models.LineItem) interface{} {
			percent, _ := li.UtilizationPercent.Float64()
			return percent
		}},
		{Header: "Band", Value: func(li models.LineItem) interface{} { return string(li.UtilizationBand) }},
	}
}

// EmployeeColumns is the employee directory layout.
func EmployeeColumns() []Column[models.Employee] {
	return []Column[models.Employee]{
		{Header: "Name", Value: func(e models.Employee) interface{} { return e.DisplayName() }},
		{Header: "Email", Value: func(e models.Employee) interface{} { return e.Email }},
		{Header: "Position", Value: func(e models.Employee) interface{} { return e.Position }},
		{Header: "Department", Value: func(e models.Employee) interface{} { return e.Department.DisplayName() }},
		{Header: "Status", Value: func(e models.Employee) interface{} { return string(e.Status) }},
		{Header: "Hired", Value: func(e models.Employee) interface{} { return e.HireDate }},
	}
}

// ContentType and Disposition for the HTTP download response.
const (
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

func Disposition(name string) string {
	return fmt.Sprintf("attachment; filename=%s.xlsx", name)
}
