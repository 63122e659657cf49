package postgres

import (
	"context"
	"fmt"

	"github.com/floshq/flos-admin-api/internal/model"
)

func (r *statsRepository) CountClinics(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM clinics`)
	if err != nil {
		return 0, fmt.Errorf("failed to count clinics: %w", err)
	}
	return count, nil
}

func (r *statsRepository) CountEmployees(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM employees`)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

// CountCheckInsOn counts records whose check-in falls within the given
// calendar date, bounds inclusive.
func (r *statsRepository) CountCheckInsOn(ctx context.Context, date string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM attendance_records
		WHERE check_in_time >= $1 AND check_in_time <= $2
	`
	var count int64
	err := r.db.GetContext(ctx, &count, query, date+" 00:00:00", date+" 23:59:59")
	if err != nil {
		return 0, fmt.Errorf("failed to count check-ins: %w", err)
	}
	return count, nil
}

func (r *statsRepository) CountAppointmentsByStatus(ctx context.Context, status model.AppointmentStatus) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM appointments
		WHERE status = $1
	`
	var count int64
	err := r.db.GetContext(ctx, &count, query, status)
	if err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	return count, nil
}
