package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tempohr/tempo-backend-go/internal/domain/employee"
	"github.com/tempohr/tempo-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, company_id, full_name, email, password_hash, position, base_salary,
	hire_date, annual_leave_balance, overtime_hours_balance, balance_version,
	created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.CompanyID, &emp.FullName, &emp.Email, &emp.PasswordHash,
		&emp.Position, &emp.BaseSalary, &emp.HireDate, &emp.AnnualLeaveBalance,
		&emp.OvertimeHoursBalance, &emp.BalanceVersion,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, company_id, full_name, email, password_hash, position,
			base_salary, hire_date, annual_leave_balance
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, overtime_hours_balance, balance_version, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.CompanyID,
		emp.FullName,
		emp.Email,
		emp.PasswordHash,
		emp.Position,
		emp.BaseSalary,
		emp.HireDate,
		emp.AnnualLeaveBalance,
	).Scan(&emp.ID, &emp.OvertimeHoursBalance, &emp.BalanceVersion, &emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 AND company_id = $2`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1 LIMIT 1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, companyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE company_id = $1 ORDER BY full_name ASC`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET full_name = $1, position = $2, base_salary = $3, updated_at = NOW()
		WHERE id = $4 AND company_id = $5
	`

	commandTag, err := q.Exec(ctx, query, emp.FullName, emp.Position, emp.BaseSalary, emp.ID, emp.CompanyID)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepository) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM employees WHERE id = $1 AND company_id = $2`

	commandTag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// UpdateAnnualLeaveBalance implements employee.EmployeeRepository. The write
// is guarded by balance_version; a concurrent balance change makes the
// predicate miss and surfaces as ErrBalanceConflict.
func (r *employeeRepository) UpdateAnnualLeaveBalance(ctx context.Context, id string, newBalance int, expectedVersion int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET annual_leave_balance = $1, balance_version = balance_version + 1, updated_at = $2
		WHERE id = $3 AND balance_version = $4
	`

	commandTag, err := q.Exec(ctx, query, newBalance, time.Now(), id, expectedVersion)
	if err != nil {
		return fmt.Errorf("failed to update annual leave balance: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrBalanceConflict
	}

	return nil
}

// UpdateOvertimeBalance implements employee.EmployeeRepository.
func (r *employeeRepository) UpdateOvertimeBalance(ctx context.Context, id string, newBalance float64, expectedVersion int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET overtime_hours_balance = $1, balance_version = balance_version + 1, updated_at = $2
		WHERE id = $3 AND balance_version = $4
	`

	commandTag, err := q.Exec(ctx, query, newBalance, time.Now(), id, expectedVersion)
	if err != nil {
		return fmt.Errorf("failed to update overtime balance: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrBalanceConflict
	}

	return nil
}
