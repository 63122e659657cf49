package attendance

import (
	"context"
	"fmt"

	"github.com/floshq/flos-admin-api/internal/model"
	"github.com/floshq/flos-admin-api/internal/repository"
)

type AttendanceServicer interface {
	ListRecords(ctx context.Context, filters *model.AttendanceFilters) ([]*model.AttendanceLogEntry, error)
}

type Service struct {
	repo repository.AttendanceRepository
}

func NewService(repo repository.AttendanceRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListRecords(ctx context.Context, filters *model.AttendanceFilters) ([]*model.AttendanceLogEntry, error) {
	records, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	return records, nil
}
