package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/floshq/flos-admin-api/internal/model"
)

// All repository interfaces in one file
type (
	// ClinicRepository handles clinic rows. Clinics are never hard-deleted;
	// deactivation is the only removal the consoles know.
	ClinicRepository interface {
		Create(ctx context.Context, clinic *model.Clinic) error
		Get(ctx context.Context, id uuid.UUID) (*model.Clinic, error)
		List(ctx context.Context) ([]*model.Clinic, error)
		ListActive(ctx context.Context) ([]*model.Clinic, error)
		SetActive(ctx context.Context, id uuid.UUID, active bool) error
	}

	EmployeeRepository interface {
		Get(ctx context.Context, id uuid.UUID) (*model.Employee, error)
		ListByClinic(ctx context.Context, clinicID uuid.UUID) ([]*model.Employee, error)
		SetActive(ctx context.Context, id uuid.UUID, active bool) error
	}

	// AttendanceRepository is read-only: records are written by the
	// attendance bot, never by this API.
	AttendanceRepository interface {
		List(ctx context.Context, filters *model.AttendanceFilters) ([]*model.AttendanceLogEntry, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
		List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error)
		UpdateStatus(ctx context.Context, id uuid.UUID, status model.AppointmentStatus) error
		Delete(ctx context.Context, id uuid.UUID) error
	}

	AuthCodeRepository interface {
		Create(ctx context.Context, code *model.AuthCode) error
		List(ctx context.Context) ([]*model.AuthCode, error)
	}

	StatsRepository interface {
		CountClinics(ctx context.Context) (int64, error)
		CountEmployees(ctx context.Context) (int64, error)
		CountCheckInsOn(ctx context.Context, date string) (int64, error)
		CountAppointmentsByStatus(ctx context.Context, status model.AppointmentStatus) (int64, error)
	}
)
