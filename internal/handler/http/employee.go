package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chraietrayen/PFE/internal/domain/employee"
	"github.com/chraietrayen/PFE/internal/handler/http/response"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListActive(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.employeeService.Create(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", toEmployeeResponse(created))
}

func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	emp, err := h.employeeService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toEmployeeResponse(emp))
}

func (h *employeeHandlerImpl) ListActive(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.GetActive(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		results = append(results, toEmployeeResponse(emp))
	}

	response.Success(w, results)
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:                   emp.ID,
		FullName:             emp.FullName,
		Email:                emp.Email,
		ContractType:         string(emp.ContractType),
		BaseSalary:           emp.BaseSalary,
		HourlyRate:           emp.HourlyRate,
		AnnualLeaveAllowance: emp.AnnualLeaveAllowance,
		Active:               emp.Active,
		HireDate:             emp.HireDate.Format("2006-01-02"),
	}
}
