package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"saha-servis/internal/dto"
	"saha-servis/internal/entities"
	"saha-servis/internal/repositories"
	"saha-servis/pkg/types"
	"saha-servis/pkg/utils"
)

type EmployeeServiceInterface interface {
	GetEmployees(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[entities.Employee], error)
	FindEmployee(ctx context.Context, id uint64) (*entities.Employee, error)
	CreateEmployee(ctx context.Context, payload dto.CreateEmployeeDTO) (*entities.Employee, error)
	UpdateEmployee(ctx context.Context, id uint64, payload dto.UpdateEmployeeDTO) (*entities.Employee, error)
	DeleteEmployee(ctx context.Context, id uint64) error
}

type EmployeeService struct {
	repo   repositories.EmployeeRepositoryInterface
	logger *zap.Logger
}

func NewEmployeeService(repo repositories.EmployeeRepositoryInterface, logger *zap.Logger) EmployeeServiceInterface {
	return &EmployeeService{repo: repo, logger: logger}
}

func (s *EmployeeService) GetEmployees(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[entities.Employee], error) {
	list, total, err := s.repo.GetEmployees(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.NewPaginatedResponse(list, total, filter), nil
}

func (s *EmployeeService) FindEmployee(ctx context.Context, id uint64) (*entities.Employee, error) {
	return s.repo.FindEmployee(ctx, id)
}

// normalizeSkills: нижний регистр, без пустых и повторов, порядок сохраняется.
func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))
	for _, skill := range skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" || seen[skill] {
			continue
		}
		seen[skill] = true
		out = append(out, skill)
	}
	return out
}

func employeeFromDTO(payload dto.CreateEmployeeDTO) (entities.Employee, error) {
	hired, err := utils.ParseNullDate(payload.HireDate)
	if err != nil {
		return entities.Employee{}, err
	}
	return entities.Employee{
		FirstName:  strings.TrimSpace(payload.FirstName),
		LastName:   strings.TrimSpace(payload.LastName),
		Phone:      phoneNull(payload.Phone),
		Email:      trimNull(payload.Email),
		Position:   trimNull(payload.Position),
		Department: trimNull(payload.Department),
		Skills:     normalizeSkills(payload.Skills),
		HireDate:   hired,
		IsActive:   boolOr(payload.IsActive, true),
	}, nil
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, payload dto.CreateEmployeeDTO) (*entities.Employee, error) {
	employee, err := employeeFromDTO(payload)
	if err != nil {
		return nil, err
	}
	id, err := s.repo.CreateEmployee(ctx, employee)
	if err != nil {
		return nil, err
	}
	return s.repo.FindEmployee(ctx, id)
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, id uint64, payload dto.UpdateEmployeeDTO) (*entities.Employee, error) {
	employee, err := employeeFromDTO(dto.CreateEmployeeDTO(payload))
	if err != nil {
		return nil, err
	}
	employee.ID = id
	if err := s.repo.UpdateEmployee(ctx, employee); err != nil {
		return nil, err
	}
	return s.repo.FindEmployee(ctx, id)
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uint64) error {
	return s.repo.DeleteEmployee(ctx, id)
}
