package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type ContractType string

const (
	ContractCDI        ContractType = "CDI"
	ContractCDD        ContractType = "CDD"
	ContractInternship ContractType = "INTERNSHIP"
)

// Employee entity
type Employee struct {
	ID           string
	FullName     string
	Email        string
	ContractType ContractType

	BaseSalary decimal.Decimal
	// HourlyRate is an explicit contractual rate; zero means the rate is
	// derived from the monthly salary at computation time.
	HourlyRate decimal.Decimal

	// AnnualLeaveAllowance overrides the policy default when set.
	AnnualLeaveAllowance *float64

	Active   bool
	HireDate time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmploymentTerms is the contract snapshot the salary calculator consumes.
type EmploymentTerms struct {
	BaseSalary   decimal.Decimal
	HourlyRate   decimal.Decimal
	ContractType ContractType
}

// Terms returns the employee's contract snapshot.
func (e Employee) Terms() EmploymentTerms {
	return EmploymentTerms{
		BaseSalary:   e.BaseSalary,
		HourlyRate:   e.HourlyRate,
		ContractType: e.ContractType,
	}
}
