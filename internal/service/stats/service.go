package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/floshq/flos-admin-api/internal/model"
	"github.com/floshq/flos-admin-api/internal/repository"
)

type StatsServicer interface {
	Dashboard(ctx context.Context) (*model.DashboardStats, error)
}

type Service struct {
	repo repository.StatsRepository
}

func NewService(repo repository.StatsRepository) *Service {
	return &Service{repo: repo}
}

// Dashboard gathers the four landing-page counters. Four independent
// COUNT queries, not a snapshot: slight skew between them is accepted.
func (s *Service) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	clinics, err := s.repo.CountClinics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count clinics: %w", err)
	}

	employees, err := s.repo.CountEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}

	today := time.Now().Format(model.DateOnly)
	attendance, err := s.repo.CountCheckInsOn(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to count today's check-ins: %w", err)
	}

	pending, err := s.repo.CountAppointmentsByStatus(ctx, model.AppointmentStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending appointments: %w", err)
	}

	return &model.DashboardStats{
		TotalClinics:        clinics,
		TotalEmployees:      employees,
		TodayAttendance:     attendance,
		PendingAppointments: pending,
	}, nil
}
