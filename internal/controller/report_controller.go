package controller

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/employee-manager/internal/export"
	"github.com/employee-manager/internal/service"
)

// ReportController - статистика и выгрузка в xlsx
type ReportController struct {
	empService service.EmployeeService
	view       View
	exportDir  string
	now        func() time.Time
}

func NewReportController(empService service.EmployeeService, view View, exportDir string) *ReportController {
	return &ReportController{
		empService: empService,
		view:       view,
		exportDir:  exportDir,
		now:        time.Now,
	}
}

func (c *ReportController) Statistics(ctx context.Context) error {
	stats, err := c.empService.Statistics(ctx)
	if err != nil {
		return err
	}
	c.view.ShowStatistics(stats)
	return nil
}

func (c *ReportController) Export(ctx context.Context) error {
	employees, err := c.empService.List(ctx)
	if err != nil {
		return err
	}
	stats, err := c.empService.Statistics(ctx)
	if err != nil {
		return err
	}

	buf, err := export.EmployeeReport(employees, stats)
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}

	if err := os.MkdirAll(c.exportDir, 0o750); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(c.exportDir, "employees_"+c.now().Format("20060102_150405")+".xlsx")
	if err := os.WriteFile(path, buf.Bytes(), 0o640); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	c.view.Success(fmt.Sprintf("Exported %d employee(s) to %s", len(employees), path))
	return nil
}
