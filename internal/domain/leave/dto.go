package leave

import (
	"github.com/chraietrayen/PFE/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	Type       string `json:"type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	HalfDay    bool   `json:"half_day"`
	Slot       string `json:"slot,omitempty"`
	Reason     string `json:"reason"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsInSlice(r.Type, []string{
		string(TypePaid), string(TypeUnpaid), string(TypeMaternite),
		string(TypeMaladie), string(TypePreavis), string(TypeReward),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of PAID, UNPAID, MATERNITE, MALADIE, PREAVIS, REWARD",
		})
	}

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a YYYY-MM-DD date",
		})
	}

	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a YYYY-MM-DD date",
		})
	}

	if r.HalfDay && !validator.IsInSlice(r.Slot, []string{"MORNING", "AFTERNOON"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "slot",
			Message: "slot must be MORNING or AFTERNOON for a half-day leave",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectLeaveRequest struct {
	Reason string `json:"reason"`
}

func (r *RejectLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ApproveLeaveRequest struct {
	ApproverID string `json:"approver_id"`
}

func (r *ApproveLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ApproverID) {
		errs = append(errs, validator.ValidationError{
			Field:   "approver_id",
			Message: "approver_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	Type          string  `json:"type"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	HalfDay       bool    `json:"half_day"`
	Slot          *string `json:"slot,omitempty"`
	DurationDays  float64 `json:"duration_days"`
	ImpactsSalary bool    `json:"impacts_salary"`
	Status        string  `json:"status"`
	Reason        string  `json:"reason"`
	RejectReason  *string `json:"reject_reason,omitempty"`
	ApprovedBy    *string `json:"approved_by,omitempty"`
}

func ToLeaveResponse(record LeaveRecord) LeaveResponse {
	resp := LeaveResponse{
		ID:            record.ID,
		EmployeeID:    record.EmployeeID,
		Type:          string(record.Type),
		StartDate:     record.StartDate.Format("2006-01-02"),
		EndDate:       record.EndDate.Format("2006-01-02"),
		HalfDay:       record.HalfDay,
		DurationDays:  record.DurationDays,
		ImpactsSalary: record.ImpactsSalary,
		Status:        string(record.Status),
		Reason:        record.Reason,
		RejectReason:  record.RejectReason,
		ApprovedBy:    record.ApprovedBy,
	}
	if record.Slot != nil {
		slot := string(*record.Slot)
		resp.Slot = &slot
	}
	return resp
}
