package export

import (
	"bytes"
	"fmt"

	"github.com/employee-manager/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	employeesSheet  = "Employees"
	statisticsSheet = "Statistics"
)

var employeeHeaders = []string{"ID", "Name", "Department", "Salary", "Hire Date"}

var departmentHeaders = []string{"Department", "Employees", "Average Salary"}

// EmployeeReport строит xlsx с листом сотрудников и листом статистики
func EmployeeReport(employees []domain.Employee, stats *domain.Statistics) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// Лист по умолчанию называется Sheet1
	if err := f.SetSheetName("Sheet1", employeesSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	row, err := writeHeader(f, employeesSheet, 0, employeeHeaders)
	if err != nil {
		return nil, fmt.Errorf("write employees header: %w", err)
	}
	if _, err := writeEmployees(f, employeesSheet, row, employees); err != nil {
		return nil, fmt.Errorf("write employees: %w", err)
	}

	if stats != nil {
		if _, err := f.NewSheet(statisticsSheet); err != nil {
			return nil, fmt.Errorf("create statistics sheet: %w", err)
		}
		if err := writeStatistics(f, statisticsSheet, stats); err != nil {
			return nil, fmt.Errorf("write statistics: %w", err)
		}
	}

	return f.WriteToBuffer()
}

func writeEmployees(f *excelize.File, sheet string, row int, employees []domain.Employee) (int, error) {
	for _, emp := range employees {
		row++
		values := []any{emp.ID, emp.Name, deref(emp.DepartmentName), deref(emp.Salary), deref(emp.HireDate)}
		for col, value := range values {
			if err := writeColumn(f, sheet, col+1, row, value); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}

func writeStatistics(f *excelize.File, sheet string, stats *domain.Statistics) error {
	summary := [][]any{
		{"Total Employees", stats.TotalEmployees},
		{"Average Salary", deref(stats.AverageSalary)},
		{"Min Salary", deref(stats.MinSalary)},
		{"Max Salary", deref(stats.MaxSalary)},
	}

	row := 0
	for _, line := range summary {
		row++
		for col, value := range line {
			if err := writeColumn(f, sheet, col+1, row, value); err != nil {
				return err
			}
		}
	}

	row, err := writeHeader(f, sheet, row+1, departmentHeaders)
	if err != nil {
		return err
	}
	for _, d := range stats.ByDepartment {
		row++
		values := []any{d.DepartmentName, d.EmployeeCount, deref(d.AverageSalary)}
		for col, value := range values {
			if err := writeColumn(f, sheet, col+1, row, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeColumn(f *excelize.File, sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

func writeHeader(f *excelize.File, sheet string, row int, headers []string) (int, error) {
	row++
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Font:      &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return row, err
	}

	cellFirst, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return row, err
	}
	cellLast, err := excelize.CoordinatesToCellName(len(headers), row)
	if err != nil {
		return row, err
	}
	if err := f.SetCellStyle(sheet, cellFirst, cellLast, style); err != nil {
		return row, err
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return row, err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 20); err != nil {
		return row, err
	}

	for idx, value := range headers {
		if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
			return row, err
		}
	}
	return row, nil
}

// deref возвращает значение или пустую строку для пустой ячейки
func deref[T any](v *T) any {
	if v == nil {
		return ""
	}
	return *v
}
