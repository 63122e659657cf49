package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/floshq/flos-admin-api/internal/model"
)

// Create inserts a freshly issued code. The code column carries a unique
// constraint; wrapping keeps the pq error reachable so the issuer can
// distinguish collisions from other failures.
func (r *authCodeRepository) Create(ctx context.Context, code *model.AuthCode) error {
	query := `
		INSERT INTO auth_codes (
			id, code, type, clinic_id, is_used, used_at, expires_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	code.ID = uuid.New()
	code.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		code.ID,
		code.Code,
		code.Kind,
		code.ClinicID,
		code.IsUsed,
		code.UsedAt,
		code.ExpiresAt,
		code.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create auth code: %w", err)
	}
	return nil
}

func (r *authCodeRepository) List(ctx context.Context) ([]*model.AuthCode, error) {
	query := `
		SELECT ac.id, ac.code, ac.type, ac.clinic_id, ac.is_used,
			   ac.used_at, ac.expires_at, ac.created_at,
			   c.name AS clinic_name
		FROM auth_codes ac
		LEFT JOIN clinics c ON c.id = ac.clinic_id
		ORDER BY ac.created_at DESC
		LIMIT $1
	`
	var codes []*model.AuthCode
	err := r.db.SelectContext(ctx, &codes, query, model.MaxPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list auth codes: %w", err)
	}
	return codes, nil
}
