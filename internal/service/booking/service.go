package booking

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

type BookingServicer interface {
	GetClinic(ctx context.Context, clinicID uuid.UUID) (*model.Clinic, error)
	Submit(ctx context.Context, clinicID uuid.UUID, req *model.BookingRequest) (*model.Appointment, error)
}

// Service is the public booking intake: one clinic read, one appointment
// insert, no edit-after-submit path.
type Service struct {
	clinics      repository.ClinicRepository
	appointments repository.AppointmentRepository
}

func NewService(clinics repository.ClinicRepository, appointments repository.AppointmentRepository) *Service {
	return &Service{
		clinics:      clinics,
		appointments: appointments,
	}
}

// GetClinic resolves the booking target. A missing clinic is a terminal
// not-found state for the form, distinct from store failures.
func (s *Service) GetClinic(ctx context.Context, clinicID uuid.UUID) (*model.Clinic, error) {
	clinic, err := s.clinics.Get(ctx, clinicID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("clinic", err)
		}
		return nil, fmt.Errorf("failed to get clinic: %w", err)
	}
	return clinic, nil
}

// Submit persists the booking. Status is forced to pending here no matter
// what the caller sent; confirmation is clinic staff's job.
func (s *Service) Submit(ctx context.Context, clinicID uuid.UUID, req *model.BookingRequest) (*model.Appointment, error) {
	if _, err := s.GetClinic(ctx, clinicID); err != nil {
		return nil, err
	}

	apt := &model.Appointment{
		ClinicID:        clinicID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Treatment:       req.Treatment,
		Status:          model.AppointmentStatusPending,
	}
	if req.Doctor != "" {
		apt.Doctor = &req.Doctor
	}
	if req.Notes != "" {
		apt.Notes = &req.Notes
	}

	if err := s.appointments.Create(ctx, apt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return apt, nil
}
