package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/floshq/flos-admin-api/internal/model"
)

func (r *employeeRepository) Get(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	query := `
		SELECT id, clinic_id, name, employee_code, line_user_id, is_active, created_at
		FROM employees
		WHERE id = $1
	`
	var employee model.Employee
	err := r.db.GetContext(ctx, &employee, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return &employee, nil
}

func (r *employeeRepository) ListByClinic(ctx context.Context, clinicID uuid.UUID) ([]*model.Employee, error) {
	query := `
		SELECT id, clinic_id, name, employee_code, line_user_id, is_active, created_at
		FROM employees
		WHERE clinic_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	var employees []*model.Employee
	err := r.db.SelectContext(ctx, &employees, query, clinicID, model.MaxPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (r *employeeRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := `
		UPDATE employees
		SET is_active = $1
		WHERE id = $2
	`
	result, err := r.db.ExecContext(ctx, query, active, id)
	if err != nil {
		return fmt.Errorf("failed to update employee activation: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("employee not found")
	}

	return nil
}
