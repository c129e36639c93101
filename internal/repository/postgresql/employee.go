package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/chraietrayen/PFE/internal/domain/employee"
	"github.com/chraietrayen/PFE/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, record employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	record.ID = uuid.NewString()

	query := `
		INSERT INTO employees (id, full_name, email, contract_type, base_salary, hourly_rate, annual_leave_allowance, active, hire_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, full_name, email, contract_type, base_salary, hourly_rate, annual_leave_allowance, active, hire_date, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		record.ID,
		record.FullName,
		record.Email,
		record.ContractType,
		record.BaseSalary,
		record.HourlyRate,
		record.AnnualLeaveAllowance,
		record.Active,
		record.HireDate,
	).Scan(
		&created.ID,
		&created.FullName,
		&created.Email,
		&created.ContractType,
		&created.BaseSalary,
		&created.HourlyRate,
		&created.AnnualLeaveAllowance,
		&created.Active,
		&created.HireDate,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, err
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, email, contract_type, base_salary, hourly_rate, annual_leave_allowance, active, hire_date, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID,
		&emp.FullName,
		&emp.Email,
		&emp.ContractType,
		&emp.BaseSalary,
		&emp.HourlyRate,
		&emp.AnnualLeaveAllowance,
		&emp.Active,
		&emp.HireDate,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return emp, nil
}

// GetActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, email, contract_type, base_salary, hourly_rate, annual_leave_allowance, active, hire_date, created_at, updated_at
		FROM employees
		WHERE active = true
		ORDER BY full_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID,
			&emp.FullName,
			&emp.Email,
			&emp.ContractType,
			&emp.BaseSalary,
			&emp.HourlyRate,
			&emp.AnnualLeaveAllowance,
			&emp.Active,
			&emp.HireDate,
			&emp.CreatedAt,
			&emp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}
