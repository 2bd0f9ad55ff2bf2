package postgresql

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepositoryImpl struct {
	q database.Querier
}

func NewEmployeeRepository(q database.Querier) employee.EmployeeRepository {
	return &employeeRepositoryImpl{q: q}
}

// translateUniqueViolation maps unique index violations onto domain
// errors so the service layer can retry or surface a conflict.
func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "employees_login_id_key":
			return employee.ErrLoginIDExists
		case "employees_email_key":
			return employee.ErrEmailExists
		}
	}
	return err
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.q)

	if newEmployee.ID == "" {
		newEmployee.ID = uuid.New().String()
	}

	query := `
		INSERT INTO employees (
			id, login_id, password_hash, must_change_password, is_active,
			first_name, last_name, email, mobile, job_position, department, manager, location,
			date_of_birth, address, nationality, personal_email, gender, marital_status,
			date_of_joining, role, status, profile_image,
			monthly_wage, yearly_wage, base_salary, hra, standard_allowance,
			performance_bonus, travel_allowance, pf_employee_percent, pf_employer_percent, tax_deductions
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19,
			$20, $21, $22, $23,
			$24, $25, $26, $27, $28,
			$29, $30, $31, $32, $33
		)
		RETURNING id, login_id, password_hash, must_change_password, is_active,
			first_name, last_name, email, mobile, job_position, department, manager, location,
			date_of_birth, address, nationality, personal_email, gender, marital_status,
			date_of_joining, role, status, profile_image,
			monthly_wage, yearly_wage, base_salary, hra, standard_allowance,
			performance_bonus, travel_allowance, pf_employee_percent, pf_employer_percent, tax_deductions,
			created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.ID, newEmployee.LoginID, newEmployee.PasswordHash, newEmployee.MustChangePassword, newEmployee.IsActive,
		newEmployee.FirstName, newEmployee.LastName, newEmployee.Email, newEmployee.Mobile, newEmployee.JobPosition,
		newEmployee.Department, newEmployee.Manager, newEmployee.Location,
		newEmployee.DateOfBirth, newEmployee.Address, newEmployee.Nationality, newEmployee.PersonalEmail,
		newEmployee.Gender, newEmployee.MaritalStatus,
		newEmployee.DateOfJoining, newEmployee.Role, newEmployee.Status, newEmployee.ProfileImage,
		newEmployee.MonthlyWage, newEmployee.YearlyWage, newEmployee.BaseSalary, newEmployee.HRA, newEmployee.StandardAllowance,
		newEmployee.PerformanceBonus, newEmployee.TravelAllowance, newEmployee.PFEmployeePercent, newEmployee.PFEmployerPercent, newEmployee.TaxDeductions,
	).Scan(
		&created.ID, &created.LoginID, &created.PasswordHash, &created.MustChangePassword, &created.IsActive,
		&created.FirstName, &created.LastName, &created.Email, &created.Mobile, &created.JobPosition,
		&created.Department, &created.Manager, &created.Location,
		&created.DateOfBirth, &created.Address, &created.Nationality, &created.PersonalEmail,
		&created.Gender, &created.MaritalStatus,
		&created.DateOfJoining, &created.Role, &created.Status, &created.ProfileImage,
		&created.MonthlyWage, &created.YearlyWage, &created.BaseSalary, &created.HRA, &created.StandardAllowance,
		&created.PerformanceBonus, &created.TravelAllowance, &created.PFEmployeePercent, &created.PFEmployerPercent, &created.TaxDeductions,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, translateUniqueViolation(fmt.Errorf("failed to create employee: %w", err))
	}
	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.q)

	query := `
		SELECT id, login_id, password_hash, must_change_password, is_active,
			first_name, last_name, email, mobile, job_position, department, manager, location,
			date_of_birth, address, nationality, personal_email, gender, marital_status,
			date_of_joining, role, status, profile_image,
			monthly_wage, yearly_wage, base_salary, hra, standard_allowance,
			performance_bonus, travel_allowance, pf_employee_percent, pf_employer_percent, tax_deductions,
			created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var found employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID, &found.LoginID, &found.PasswordHash, &found.MustChangePassword, &found.IsActive,
		&found.FirstName, &found.LastName, &found.Email, &found.Mobile, &found.JobPosition,
		&found.Department, &found.Manager, &found.Location,
		&found.DateOfBirth, &found.Address, &found.Nationality, &found.PersonalEmail,
		&found.Gender, &found.MaritalStatus,
		&found.DateOfJoining, &found.Role, &found.Status, &found.ProfileImage,
		&found.MonthlyWage, &found.YearlyWage, &found.BaseSalary, &found.HRA, &found.StandardAllowance,
		&found.PerformanceBonus, &found.TravelAllowance, &found.PFEmployeePercent, &found.PFEmployerPercent, &found.TaxDeductions,
		&found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return found, nil
}

// GetByLoginID implements employee.EmployeeRepository. Login IDs are
// matched case-insensitively.
func (e *employeeRepositoryImpl) GetByLoginID(ctx context.Context, loginID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.q)

	query := `
		SELECT id, login_id, password_hash, must_change_password, is_active,
			first_name, last_name, email, mobile, job_position, department, manager, location,
			date_of_birth, address, nationality, personal_email, gender, marital_status,
			date_of_joining, role, status, profile_image,
			monthly_wage, yearly_wage, base_salary, hra, standard_allowance,
			performance_bonus, travel_allowance, pf_employee_percent, pf_employer_percent, tax_deductions,
			created_at, updated_at
		FROM employees
		WHERE UPPER(login_id) = UPPER($1)
	`

	var found employee.Employee
	err := q.QueryRow(ctx, query, loginID).Scan(
		&found.ID, &found.LoginID, &found.PasswordHash, &found.MustChangePassword, &found.IsActive,
		&found.FirstName, &found.LastName, &found.Email, &found.Mobile, &found.JobPosition,
		&found.Department, &found.Manager, &found.Location,
		&found.DateOfBirth, &found.Address, &found.Nationality, &found.PersonalEmail,
		&found.Gender, &found.MaritalStatus,
		&found.DateOfJoining, &found.Role, &found.Status, &found.ProfileImage,
		&found.MonthlyWage, &found.YearlyWage, &found.BaseSalary, &found.HRA, &found.StandardAllowance,
		&found.PerformanceBonus, &found.TravelAllowance, &found.PFEmployeePercent, &found.PFEmployerPercent, &found.TaxDeductions,
		&found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by login ID: %w", err)
	}

	return found, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.q)

	query := `
		SELECT id, login_id, password_hash, must_change_password, is_active,
			first_name, last_name, email, mobile, job_position, department, manager, location,
			date_of_birth, address, nationality, personal_email, gender, marital_status,
			date_of_joining, role, status, profile_image,
			monthly_wage, yearly_wage, base_salary, hra, standard_allowance,
			performance_bonus, travel_allowance, pf_employee_percent, pf_employer_percent, tax_deductions,
			created_at, updated_at
		FROM employees
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.LoginID, &emp.PasswordHash, &emp.MustChangePassword, &emp.IsActive,
			&emp.FirstName, &emp.LastName, &emp.Email, &emp.Mobile, &emp.JobPosition,
			&emp.Department, &emp.Manager, &emp.Location,
			&emp.DateOfBirth, &emp.Address, &emp.Nationality, &emp.PersonalEmail,
			&emp.Gender, &emp.MaritalStatus,
			&emp.DateOfJoining, &emp.Role, &emp.Status, &emp.ProfileImage,
			&emp.MonthlyWage, &emp.YearlyWage, &emp.BaseSalary, &emp.HRA, &emp.StandardAllowance,
			&emp.PerformanceBonus, &emp.TravelAllowance, &emp.PFEmployeePercent, &emp.PFEmployerPercent, &emp.TaxDeductions,
			&emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository. Columns are applied in
// sorted order so the generated SQL is stable.
func (e *employeeRepositoryImpl) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	q := GetQuerier(ctx, e.q)

	if len(fields) == 0 {
		return nil // No updates provided
	}

	updates := make(map[string]interface{}, len(fields)+1)
	for col, val := range fields {
		updates[col] = val
	}
	updates["updated_at"] = time.Now()

	cols := make([]string, 0, len(updates))
	for col := range updates {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	setClauses := make([]string, 0, len(cols))
	args := make([]interface{}, 0, len(cols)+1)
	for i, col := range cols {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i+1))
		args = append(args, updates[col])
	}

	sql := fmt.Sprintf("UPDATE employees SET %s WHERE id = $%d RETURNING id", strings.Join(setClauses, ", "), len(cols)+1)
	args = append(args, id)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return translateUniqueViolation(fmt.Errorf("failed to update employee: %w", err))
	}
	return nil
}

// UpdateStatus implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) UpdateStatus(ctx context.Context, id string, status employee.Status) error {
	q := GetQuerier(ctx, e.q)

	query := `
		UPDATE employees
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, status, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee status: %w", err)
	}

	return nil
}

// UpdateCredentials implements employee.EmployeeRepository. The hash and
// the rotation flag change together; a failed write leaves both intact.
func (e *employeeRepositoryImpl) UpdateCredentials(ctx context.Context, id string, passwordHash string, mustChangePassword bool) error {
	q := GetQuerier(ctx, e.q)

	query := `
		UPDATE employees
		SET password_hash = $1, must_change_password = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, passwordHash, mustChangePassword, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee credentials: %w", err)
	}

	return nil
}
