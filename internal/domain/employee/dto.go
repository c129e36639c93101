package employee

import (
	"github.com/chraietrayen/PFE/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FullName             string          `json:"full_name"`
	Email                string          `json:"email"`
	ContractType         string          `json:"contract_type"`
	BaseSalary           decimal.Decimal `json:"base_salary"`
	HourlyRate           decimal.Decimal `json:"hourly_rate"`
	AnnualLeaveAllowance *float64        `json:"annual_leave_allowance,omitempty"`
	HireDate             string          `json:"hire_date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	}

	if !validator.IsInSlice(r.ContractType, []string{string(ContractCDI), string(ContractCDD), string(ContractInternship)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "contract_type",
			Message: "contract_type must be one of CDI, CDD, INTERNSHIP",
		})
	}

	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}

	if r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must not be negative",
		})
	}

	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be a YYYY-MM-DD date",
		})
	}

	if r.AnnualLeaveAllowance != nil && *r.AnnualLeaveAllowance < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "annual_leave_allowance",
			Message: "annual_leave_allowance must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID                   string          `json:"id"`
	FullName             string          `json:"full_name"`
	Email                string          `json:"email"`
	ContractType         string          `json:"contract_type"`
	BaseSalary           decimal.Decimal `json:"base_salary"`
	HourlyRate           decimal.Decimal `json:"hourly_rate"`
	AnnualLeaveAllowance *float64        `json:"annual_leave_allowance,omitempty"`
	Active               bool            `json:"active"`
	HireDate             string          `json:"hire_date"`
}
