package export

import (
	"testing"

	"github.com/employee-manager/internal/domain"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func ptr[T any](v T) *T { return &v }

func TestEmployeeReport(t *testing.T) {
	employees := []domain.Employee{
		{ID: 1, Name: "Alice Smith", DepartmentName: ptr("HR"), Salary: ptr(60000.0), HireDate: ptr("2020-01-15")},
		{ID: 7, Name: "Solo"},
	}
	stats := &domain.Statistics{
		TotalEmployees: 2,
		AverageSalary:  ptr(60000.0),
		ByDepartment: []domain.DepartmentStats{
			{DepartmentName: "HR", EmployeeCount: 1, AverageSalary: ptr(60000.0)},
		},
	}

	buf, err := EmployeeReport(employees, stats)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	require.Equal(t, []string{employeesSheet, statisticsSheet}, f.GetSheetList())

	rows, err := f.GetRows(employeesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, employeeHeaders, rows[0])
	require.Equal(t, []string{"1", "Alice Smith", "HR", "60000", "2020-01-15"}, rows[1])
	require.Equal(t, "Solo", rows[2][1])

	name, err := f.GetCellValue(statisticsSheet, "A1")
	require.NoError(t, err)
	require.Equal(t, "Total Employees", name)

	total, err := f.GetCellValue(statisticsSheet, "B1")
	require.NoError(t, err)
	require.Equal(t, "2", total)

	dept, err := f.GetCellValue(statisticsSheet, "A7")
	require.NoError(t, err)
	require.Equal(t, "HR", dept)
}

func TestEmployeeReport_WithoutStatistics(t *testing.T) {
	buf, err := EmployeeReport(nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	require.Equal(t, []string{employeesSheet}, f.GetSheetList())
}
