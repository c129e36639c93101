package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chraietrayen/PFE/internal/domain/attendance"
	"github.com/chraietrayen/PFE/internal/handler/http/response"
)

type AttendanceHandler interface {
	GetMonthlyCalculation(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) GetMonthlyCalculation(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parsePeriod(w, r)
	if !ok {
		return
	}

	calc, err := h.attendanceService.CalculateMonth(r.Context(), chi.URLParam(r, "id"), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, calc)
}
