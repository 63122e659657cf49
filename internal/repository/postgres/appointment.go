package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/floshq/flos-admin-api/internal/model"
)

const appointmentColumns = `a.id, a.clinic_id, a.customer_name, a.customer_phone,
			   a.appointment_date, a.appointment_time, a.treatment, a.doctor,
			   a.status, a.notes, a.created_at`

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (
			id, clinic_id, customer_name, customer_phone,
			appointment_date, appointment_time, treatment, doctor,
			status, notes, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	appointment.ID = uuid.New()
	appointment.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		appointment.ID,
		appointment.ClinicID,
		appointment.CustomerName,
		appointment.CustomerPhone,
		appointment.AppointmentDate,
		appointment.AppointmentTime,
		appointment.Treatment,
		appointment.Doctor,
		appointment.Status,
		appointment.Notes,
		appointment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments a
		WHERE a.id = $1
	`
	var appointment model.Appointment
	err := r.db.GetContext(ctx, &appointment, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

// buildAppointmentListQuery translates the filter record into one
// conjunctive query. Absent fields add no constraint; date bounds are
// inclusive on the appointment date.
func buildAppointmentListQuery(filters *model.AppointmentFilters) (string, []interface{}) {
	query := `
		SELECT ` + appointmentColumns + `, c.name AS clinic_name
		FROM appointments a
		LEFT JOIN clinics c ON c.id = a.clinic_id
	`
	var args []interface{}
	argCount := 1

	appendClause := func(clause string, value interface{}) {
		if len(args) == 0 {
			query += fmt.Sprintf(" WHERE %s $%d", clause, argCount)
		} else {
			query += fmt.Sprintf(" AND %s $%d", clause, argCount)
		}
		args = append(args, value)
		argCount++
	}

	if filters != nil {
		if filters.ClinicID != nil {
			appendClause("a.clinic_id =", *filters.ClinicID)
		}
		if filters.Status != "" {
			appendClause("a.status =", filters.Status)
		}
		if filters.From != "" {
			appendClause("a.appointment_date >=", filters.From)
		}
		if filters.To != "" {
			appendClause("a.appointment_date <=", filters.To)
		}
	}

	query += fmt.Sprintf(" ORDER BY a.appointment_date DESC, a.appointment_time DESC LIMIT $%d", argCount)
	args = append(args, model.MaxPageSize)

	return query, args
}

func (r *appointmentRepository) List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error) {
	query, args := buildAppointmentListQuery(filters)

	var appointments []*model.Appointment
	err := r.db.SelectContext(ctx, &appointments, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.AppointmentStatus) error {
	query := `
		UPDATE appointments
		SET status = $1
		WHERE id = $2
	`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update appointment status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM appointments
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}
