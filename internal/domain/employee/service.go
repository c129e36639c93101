package employee

import "context"

type EmployeeService interface {
	Create(ctx context.Context, req *CreateEmployeeRequest) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetActive(ctx context.Context) ([]Employee, error)
}
