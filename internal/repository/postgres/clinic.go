package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/floshq/flos-admin-api/internal/model"
)

// All clinic repository methods here

func (r *clinicRepository) Create(ctx context.Context, clinic *model.Clinic) error {
	query := `
		INSERT INTO clinics (
			id, name, line_channel_id, admin_code, is_active, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
	`
	clinic.ID = uuid.New()
	clinic.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		clinic.ID,
		clinic.Name,
		clinic.LineChannelID,
		clinic.AdminCode,
		clinic.IsActive,
		clinic.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create clinic: %w", err)
	}
	return nil
}

func (r *clinicRepository) Get(ctx context.Context, id uuid.UUID) (*model.Clinic, error) {
	query := `
		SELECT id, name, line_channel_id, admin_code, is_active, created_at
		FROM clinics
		WHERE id = $1
	`
	var clinic model.Clinic
	err := r.db.GetContext(ctx, &clinic, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get clinic: %w", err)
	}
	return &clinic, nil
}

func (r *clinicRepository) List(ctx context.Context) ([]*model.Clinic, error) {
	query := `
		SELECT id, name, line_channel_id, admin_code, is_active, created_at
		FROM clinics
		ORDER BY created_at DESC
		LIMIT $1
	`
	var clinics []*model.Clinic
	err := r.db.SelectContext(ctx, &clinics, query, model.MaxPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list clinics: %w", err)
	}
	return clinics, nil
}

// ListActive feeds the clinic dropdowns on the issuing and overview forms.
func (r *clinicRepository) ListActive(ctx context.Context) ([]*model.Clinic, error) {
	query := `
		SELECT id, name, line_channel_id, admin_code, is_active, created_at
		FROM clinics
		WHERE is_active = true
		ORDER BY name ASC
		LIMIT $1
	`
	var clinics []*model.Clinic
	err := r.db.SelectContext(ctx, &clinics, query, model.MaxPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list active clinics: %w", err)
	}
	return clinics, nil
}

func (r *clinicRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := `
		UPDATE clinics
		SET is_active = $1
		WHERE id = $2
	`
	result, err := r.db.ExecContext(ctx, query, active, id)
	if err != nil {
		return fmt.Errorf("failed to update clinic activation: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("clinic not found")
	}

	return nil
}
