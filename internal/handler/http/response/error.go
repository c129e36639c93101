package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/chraietrayen/PFE/internal/domain/attendance"
	"github.com/chraietrayen/PFE/internal/domain/employee"
	"github.com/chraietrayen/PFE/internal/domain/leave"
	"github.com/chraietrayen/PFE/internal/domain/payroll"
	"github.com/chraietrayen/PFE/internal/domain/reward"
	"github.com/chraietrayen/PFE/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var balanceErr *leave.InsufficientBalanceError
	if errors.As(err, &balanceErr) {
		BadRequest(w, "Insufficient leave balance", map[string]string{
			"remaining": fmt.Sprintf("%g", balanceErr.Remaining),
			"requested": fmt.Sprintf("%g", balanceErr.Requested),
		})
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidPeriod):
		BadRequest(w, "Month must be between 1 and 12", nil)
	case errors.Is(err, attendance.ErrCorruptSession):
		InternalServerError(w, "Attendance data is inconsistent and needs manual review")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "An overlapping leave request already exists")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrNoWorkingDays):
		BadRequest(w, "No working day in the requested range", nil)

	// Reward domain errors
	case errors.Is(err, reward.ErrRewardNotFound):
		NotFound(w, "Reward not found")
	case errors.Is(err, reward.ErrRewardAlreadyGranted):
		Conflict(w, "A reward already exists for this employee and date")
	case errors.Is(err, reward.ErrRewardAlreadyRevoked):
		Conflict(w, "Reward already revoked")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrReportNotFound):
		NotFound(w, "Salary report not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
