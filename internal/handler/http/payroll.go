package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chraietrayen/PFE/internal/domain/payroll"
	"github.com/chraietrayen/PFE/internal/handler/http/response"
)

type PayrollHandler interface {
	EstimateSalary(w http.ResponseWriter, r *http.Request)
	GenerateReport(w http.ResponseWriter, r *http.Request)
	GetReport(w http.ResponseWriter, r *http.Request)
	RunPayroll(w http.ResponseWriter, r *http.Request)
	ListReports(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService   payroll.PayrollService
	reportRepository payroll.ReportRepository
}

func NewPayrollHandler(payrollService payroll.PayrollService, reportRepository payroll.ReportRepository) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService:   payrollService,
		reportRepository: reportRepository,
	}
}

func (h *payrollHandlerImpl) EstimateSalary(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parsePeriod(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.EstimateSalary(r.Context(), chi.URLParam(r, "id"), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GenerateReport(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parsePeriod(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.GenerateReport(r.Context(), chi.URLParam(r, "id"), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary report generated", result)
}

func (h *payrollHandlerImpl) GetReport(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parsePeriod(w, r)
	if !ok {
		return
	}

	report, err := h.reportRepository.GetByEmployeeAndPeriod(r.Context(), chi.URLParam(r, "id"), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

func (h *payrollHandlerImpl) RunPayroll(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parsePeriod(w, r)
	if !ok {
		return
	}

	batch, err := h.payrollService.CalculateAllSalaries(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, batch)
}

func (h *payrollHandlerImpl) ListReports(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parsePeriod(w, r)
	if !ok {
		return
	}

	reports, err := h.reportRepository.GetByPeriod(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, reports)
}
