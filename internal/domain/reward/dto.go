package reward

import (
	"github.com/chraietrayen/PFE/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GrantRewardRequest struct {
	EmployeeID  string          `json:"employee_id"`
	Date        string          `json:"date"`
	Reason      string          `json:"reason"`
	GrantedBy   string          `json:"granted_by"`
	BonusAmount decimal.Decimal `json:"bonus_amount"`
}

func (r *GrantRewardRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a YYYY-MM-DD date",
		})
	}

	if validator.IsEmpty(r.GrantedBy) {
		errs = append(errs, validator.ValidationError{
			Field:   "granted_by",
			Message: "granted_by is required",
		})
	}

	if r.BonusAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "bonus_amount",
			Message: "bonus_amount must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RewardResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	Date        string          `json:"date"`
	Reason      string          `json:"reason"`
	GrantedBy   string          `json:"granted_by"`
	BonusAmount decimal.Decimal `json:"bonus_amount"`
	Status      string          `json:"status"`
}

func ToRewardResponse(record RewardRecord) RewardResponse {
	return RewardResponse{
		ID:          record.ID,
		EmployeeID:  record.EmployeeID,
		Date:        record.Date.Format("2006-01-02"),
		Reason:      record.Reason,
		GrantedBy:   record.GrantedBy,
		BonusAmount: record.BonusAmount,
		Status:      string(record.Status),
	}
}
