package employee

import (
	"context"
	"fmt"

	"github.com/chraietrayen/PFE/internal/domain/employee"
	"github.com/chraietrayen/PFE/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req *employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	hireDate, _ := validator.IsValidDate(req.HireDate)

	record := employee.Employee{
		FullName:             req.FullName,
		Email:                req.Email,
		ContractType:         employee.ContractType(req.ContractType),
		BaseSalary:           req.BaseSalary,
		HourlyRate:           req.HourlyRate,
		AnnualLeaveAllowance: req.AnnualLeaveAllowance,
		Active:               true,
		HireDate:             hireDate,
	}

	created, err := s.EmployeeRepository.Create(ctx, record)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return s.EmployeeRepository.GetByID(ctx, id)
}

// GetActive implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetActive(ctx context.Context) ([]employee.Employee, error) {
	return s.EmployeeRepository.GetActive(ctx)
}
