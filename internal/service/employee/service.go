package employee

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/floshq/flos-admin-api/internal/model"
	"github.com/floshq/flos-admin-api/internal/repository"
	apperrors "github.com/floshq/flos-admin-api/pkg/errors"
)

type EmployeeServicer interface {
	ListEmployees(ctx context.Context, clinicID uuid.UUID) ([]*model.Employee, error)
	ToggleActivation(ctx context.Context, id uuid.UUID) (*model.Employee, error)
}

type Service struct {
	repo repository.EmployeeRepository
}

func NewService(repo repository.EmployeeRepository) *Service {
	return &Service{repo: repo}
}

// ListEmployees returns the clinic's roster, newest first. Employees are
// enrolled by the attendance bot; this console only reads and toggles.
func (s *Service) ListEmployees(ctx context.Context, clinicID uuid.UUID) ([]*model.Employee, error) {
	employees, err := s.repo.ListByClinic(ctx, clinicID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (s *Service) ToggleActivation(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	employee, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("employee", err)
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	employee.IsActive = !employee.IsActive
	if err := s.repo.SetActive(ctx, id, employee.IsActive); err != nil {
		return nil, fmt.Errorf("failed to toggle employee activation: %w", err)
	}
	return employee, nil
}
