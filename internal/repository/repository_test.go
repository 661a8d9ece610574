package repository_test

import (
	"context"
	"testing"

	"github.com/employee-manager/internal/domain"
	"github.com/employee-manager/internal/repository"
	"github.com/employee-manager/internal/storage/storagetest"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func names(emps []domain.Employee) []string {
	out := make([]string, len(emps))
	for i, e := range emps {
		out[i] = e.Name
	}
	return out
}

func TestEmployeeRepository_ListJoinsDepartment(t *testing.T) {
	store := storagetest.NewSeeded(t)
	repo := repository.NewEmployeeRepository(store.DB)

	emps, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Alice Smith", "Bob Johnson", "Carol Lee", "David Kim", "Eva Brown"}, names(emps))
	require.NotNil(t, emps[1].DepartmentName)
	require.Equal(t, "Engineering", *emps[1].DepartmentName)
}

func TestEmployeeRepository_CreateAndGet(t *testing.T) {
	store := storagetest.NewSeeded(t)
	repo := repository.NewEmployeeRepository(store.DB)
	ctx := context.Background()

	emp := &domain.Employee{
		Name:         "Frank Ocean",
		DepartmentID: ptr(int64(3)),
		Salary:       ptr(70000.5),
		HireDate:     ptr("2023-02-01"),
	}
	require.NoError(t, repo.Create(ctx, emp))
	require.NotZero(t, emp.ID)

	got, err := repo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	require.Equal(t, emp.Name, got.Name)
	require.Equal(t, *emp.DepartmentID, *got.DepartmentID)
	require.Equal(t, *emp.Salary, *got.Salary)
	require.Equal(t, *emp.HireDate, *got.HireDate)
	require.Equal(t, "Sales", *got.DepartmentName)
}

func TestEmployeeRepository_CreateUnassigned(t *testing.T) {
	store := storagetest.New(t)
	repo := repository.NewEmployeeRepository(store.DB)
	ctx := context.Background()

	emp := &domain.Employee{Name: "Solo"}
	require.NoError(t, repo.Create(ctx, emp))

	got, err := repo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	require.Nil(t, got.DepartmentID)
	require.Nil(t, got.DepartmentName)
	require.Nil(t, got.Salary)
	require.Nil(t, got.HireDate)
}

func TestEmployeeRepository_CreateMissingDepartment(t *testing.T) {
	store := storagetest.New(t)
	repo := repository.NewEmployeeRepository(store.DB)

	err := repo.Create(context.Background(), &domain.Employee{Name: "Ghost", DepartmentID: ptr(int64(42))})
	require.ErrorIs(t, err, domain.ErrForeignKeyViolation)
}

func TestEmployeeRepository_UpdateOnlySuppliedColumns(t *testing.T) {
	store := storagetest.NewSeeded(t)
	repo := repository.NewEmployeeRepository(store.DB)
	ctx := context.Background()

	require.NoError(t, repo.Update(ctx, 1, map[string]any{"salary": 65000.0}))

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Alice Smith", got.Name)
	require.Equal(t, 65000.0, *got.Salary)
	require.Equal(t, "2020-01-15", *got.HireDate)
	require.Equal(t, int64(1), *got.DepartmentID)
}

func TestEmployeeRepository_UpdateClearsNullable(t *testing.T) {
	store := storagetest.NewSeeded(t)
	repo := repository.NewEmployeeRepository(store.DB)
	ctx := context.Background()

	require.NoError(t, repo.Update(ctx, 2, map[string]any{"department_id": (*int64)(nil)}))

	got, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	require.Nil(t, got.DepartmentID)
	require.Nil(t, got.DepartmentName)
}

func TestEmployeeRepository_UpdateNotFound(t *testing.T) {
	store := storagetest.NewSeeded(t)
	repo := repository.NewEmployeeRepository(store.DB)

	err := repo.Update(context.Background(), 999, map[string]any{"name": "Nobody"})
	require.ErrorIs(t, err, domain.ErrEmployeeNotFound)

	err = repo.Update(context.Background(), 999, map[string]any{})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEmployeeRepository_Delete(t *testing.T) {
	store := storagetest.NewSeeded(t)
	repo := repository.NewEmployeeRepository(store.DB)
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, 4))
	require.ErrorIs(t, repo.Delete(ctx, 4), domain.ErrEmployeeNotFound)

	_, err := repo.GetByID(ctx, 4)
	require.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestEmployeeRepository_SearchCaseInsensitive(t *testing.T) {
	store := storagetest.NewSeeded(t)
	repo := repository.NewEmployeeRepository(store.DB)
	ctx := context.Background()

	emps, err := repo.SearchByName(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, []string{"Alice Smith", "Carol Lee", "David Kim", "Eva Brown"}, names(emps))

	emps, err = repo.SearchByName(ctx, "JOHN")
	require.NoError(t, err)
	require.Equal(t, []string{"Bob Johnson"}, names(emps))

	emps, err = repo.SearchByName(ctx, "%")
	require.NoError(t, err)
	require.Empty(t, emps)
}

func TestEmployeeRepository_SearchNonASCIIName(t *testing.T) {
	store := storagetest.NewSeeded(t)
	repo := repository.NewEmployeeRepository(store.DB)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Employee{Name: "Émile Zola"}))

	for _, term := range []string{"Émile", "ÉMILE", "Émile Zola", "ZOLA"} {
		emps, err := repo.SearchByName(ctx, term)
		require.NoError(t, err, term)
		require.Equal(t, []string{"Émile Zola"}, names(emps), term)
	}
}

func TestEmployeeRepository_ListByDepartment(t *testing.T) {
	store := storagetest.NewSeeded(t)
	repo := repository.NewEmployeeRepository(store.DB)

	emps, err := repo.ListByDepartment(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, []string{"Alice Smith", "Eva Brown"}, names(emps))
}

func TestEmployeeRepository_Statistics(t *testing.T) {
	store := storagetest.NewSeeded(t)
	repo := repository.NewEmployeeRepository(store.DB)

	stats, err := repo.Statistics(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 5, stats.TotalEmployees)
	require.InDelta(t, 70400.0, *stats.AverageSalary, 0.001)
	require.Equal(t, 55000.0, *stats.MinSalary)
	require.Equal(t, 95000.0, *stats.MaxSalary)

	require.Len(t, stats.ByDepartment, 3)
	require.Equal(t, "Engineering", stats.ByDepartment[0].DepartmentName)
	require.EqualValues(t, 2, stats.ByDepartment[0].EmployeeCount)
	require.InDelta(t, 87500.0, *stats.ByDepartment[0].AverageSalary, 0.001)
	require.Equal(t, "HR", stats.ByDepartment[1].DepartmentName)
	require.Equal(t, "Sales", stats.ByDepartment[2].DepartmentName)
}

func TestDepartmentRepository_CRUD(t *testing.T) {
	store := storagetest.New(t)
	repo := repository.NewDepartmentRepository(store.DB)
	ctx := context.Background()

	dept := &domain.Department{Name: "Finance"}
	require.NoError(t, repo.Create(ctx, dept))
	require.NotZero(t, dept.ID)

	require.NoError(t, repo.Update(ctx, dept.ID, "Treasury"))
	got, err := repo.GetByID(ctx, dept.ID)
	require.NoError(t, err)
	require.Equal(t, "Treasury", got.Name)

	require.NoError(t, repo.Delete(ctx, dept.ID))
	_, err = repo.GetByID(ctx, dept.ID)
	require.ErrorIs(t, err, domain.ErrDepartmentNotFound)
	require.ErrorIs(t, repo.Delete(ctx, dept.ID), domain.ErrNotFound)
	require.ErrorIs(t, repo.Update(ctx, dept.ID, "Again"), domain.ErrDepartmentNotFound)
}

func TestDepartmentRepository_UniqueBackstop(t *testing.T) {
	store := storagetest.NewSeeded(t)
	repo := repository.NewDepartmentRepository(store.DB)
	ctx := context.Background()

	err := repo.Create(ctx, &domain.Department{Name: "HR"})
	require.ErrorIs(t, err, domain.ErrDuplicateName)

	err = repo.Update(ctx, 3, "Engineering")
	require.ErrorIs(t, err, domain.ErrDuplicateDepartmentName)

	// Совпадение точное: другой регистр допустим
	require.NoError(t, repo.Create(ctx, &domain.Department{Name: "hr"}))
}

func TestDepartmentRepository_ExistsByName(t *testing.T) {
	store := storagetest.NewSeeded(t)
	repo := repository.NewDepartmentRepository(store.DB)
	ctx := context.Background()

	exists, err := repo.ExistsByName(ctx, "Sales", nil)
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.ExistsByName(ctx, "Sales", ptr(int64(3)))
	require.NoError(t, err)
	require.False(t, exists)

	exists, err = repo.ExistsByName(ctx, "Marketing", nil)
	require.NoError(t, err)
	require.False(t, exists)
}

func TestDepartmentRepository_CountAndDetail(t *testing.T) {
	store := storagetest.NewSeeded(t)
	repo := repository.NewDepartmentRepository(store.DB)
	ctx := context.Background()

	count, err := repo.CountEmployees(ctx, 2)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	dept, err := repo.GetByIDWithEmployees(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, "Engineering", dept.Name)
	require.Equal(t, []string{"Bob Johnson", "Carol Lee"}, names(dept.Employees))
	require.Equal(t, "Engineering", *dept.Employees[0].DepartmentName)

	depts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, depts, 3)
}

func TestDepartmentRepository_DeleteReferencedBackstop(t *testing.T) {
	store := storagetest.NewSeeded(t)
	repo := repository.NewDepartmentRepository(store.DB)

	err := repo.Delete(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrForeignKeyViolation)
}
