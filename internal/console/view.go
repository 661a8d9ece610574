// Package console реализует controller.View поверх терминала.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/employee-manager/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const lineWidth = 60

// View читает ответы построчно из in и печатает в out
type View struct {
	in      *bufio.Reader
	out     io.Writer
	printer *message.Printer
}

// New создаёт консольное представление
func New(in io.Reader, out io.Writer) *View {
	return &View{
		in:      bufio.NewReader(in),
		out:     out,
		printer: message.NewPrinter(language.English),
	}
}

// Ask печатает приглашение и возвращает введённую строку без пробелов по краям.
// Длина строки не ограничена; последняя строка без перевода строки тоже принимается.
func (v *View) Ask(prompt string) (string, error) {
	fmt.Fprintf(v.out, "%s: ", prompt)
	line, err := v.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			fmt.Fprintln(v.out)
			return "", io.EOF
		}
	}
	return strings.TrimSpace(line), nil
}

// Confirm принимает y/yes, всё остальное - отказ
func (v *View) Confirm(prompt string) (bool, error) {
	answer, err := v.Ask(prompt + " (y/n)")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (v *View) ShowMenu(title string, options []string) {
	v.header(title)
	for i, opt := range options {
		fmt.Fprintf(v.out, "%d. %s\n", i+1, opt)
	}
	v.separator()
}

func (v *View) ShowEmployees(employees []domain.Employee) {
	if len(employees) == 0 {
		fmt.Fprintln(v.out, "No employees found.")
		return
	}

	fmt.Fprintf(v.out, "\nFound %d employee(s):\n", len(employees))
	v.separator()

	tw := tabwriter.NewWriter(v.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tName\tDepartment\tSalary\tHire Date")
	for _, emp := range employees {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			emp.ID, emp.Name, departmentName(emp.DepartmentName), v.money(emp.Salary), orNA(emp.HireDate))
	}
	_ = tw.Flush()
}

func (v *View) ShowEmployee(emp *domain.Employee) {
	v.header("Employee Details")
	fmt.Fprintf(v.out, "ID: %d\n", emp.ID)
	fmt.Fprintf(v.out, "Name: %s\n", emp.Name)
	fmt.Fprintf(v.out, "Department: %s\n", departmentName(emp.DepartmentName))
	fmt.Fprintf(v.out, "Salary: %s\n", v.money(emp.Salary))
	fmt.Fprintf(v.out, "Hire Date: %s\n", orNA(emp.HireDate))
}

func (v *View) ShowDepartments(departments []domain.Department) {
	if len(departments) == 0 {
		fmt.Fprintln(v.out, "No departments found.")
		return
	}

	fmt.Fprintf(v.out, "\nFound %d department(s):\n", len(departments))
	v.separator()

	tw := tabwriter.NewWriter(v.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tName")
	for _, dept := range departments {
		fmt.Fprintf(tw, "%d\t%s\n", dept.ID, dept.Name)
	}
	_ = tw.Flush()
}

// ShowDepartment печатает отдел и список его сотрудников
func (v *View) ShowDepartment(dept *domain.Department) {
	v.header("Department Details")
	fmt.Fprintf(v.out, "ID: %d\n", dept.ID)
	fmt.Fprintf(v.out, "Name: %s\n", dept.Name)

	if len(dept.Employees) == 0 {
		fmt.Fprintf(v.out, "\nNo employees in %s\n", dept.Name)
		return
	}
	fmt.Fprintf(v.out, "\nEmployees in %s:\n", dept.Name)
	for _, emp := range dept.Employees {
		fmt.Fprintf(v.out, "  - %s (%s)\n", emp.Name, v.money(emp.Salary))
	}
}

func (v *View) ShowStatistics(stats *domain.Statistics) {
	v.header("System Statistics")
	fmt.Fprintf(v.out, "Total Employees: %d\n", stats.TotalEmployees)
	fmt.Fprintf(v.out, "Average Salary: %s\n", v.money(stats.AverageSalary))
	fmt.Fprintf(v.out, "Minimum Salary: %s\n", v.money(stats.MinSalary))
	fmt.Fprintf(v.out, "Maximum Salary: %s\n", v.money(stats.MaxSalary))

	fmt.Fprintln(v.out, "\nBy Department:")
	v.separator()

	tw := tabwriter.NewWriter(v.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Department\tEmployees\tAvg Salary")
	for _, d := range stats.ByDepartment {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", d.DepartmentName, d.EmployeeCount, v.money(d.AverageSalary))
	}
	_ = tw.Flush()
}

func (v *View) Error(msg string) {
	fmt.Fprintf(v.out, "\nError: %s\n", msg)
}

func (v *View) Success(msg string) {
	fmt.Fprintf(v.out, "\nSuccess: %s\n", msg)
}

func (v *View) Info(msg string) {
	fmt.Fprintf(v.out, "\n%s\n", msg)
}

func (v *View) header(title string) {
	fmt.Fprintln(v.out)
	fmt.Fprintln(v.out, strings.Repeat("=", lineWidth))
	fmt.Fprintf(v.out, " %s\n", title)
	fmt.Fprintln(v.out, strings.Repeat("=", lineWidth))
}

func (v *View) separator() {
	fmt.Fprintln(v.out, strings.Repeat("-", lineWidth))
}

func (v *View) money(amount *float64) string {
	if amount == nil {
		return "N/A"
	}
	return v.printer.Sprintf("$%.2f", *amount)
}

func departmentName(name *string) string {
	if name == nil {
		return "Unassigned"
	}
	return *name
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}
