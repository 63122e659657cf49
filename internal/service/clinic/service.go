package clinic

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/floshq/flos-admin-api/internal/model"
	"github.com/floshq/flos-admin-api/internal/repository"
	apperrors "github.com/floshq/flos-admin-api/pkg/errors"
	"github.com/floshq/flos-admin-api/pkg/token"
)

const (
	adminCodePrefix      = "ADMIN"
	adminCodeTokenLength = 8
	maxCreateAttempts    = 3
)

type ClinicServicer interface {
	CreateClinic(ctx context.Context, req *model.CreateClinicRequest) (*model.Clinic, error)
	GetClinic(ctx context.Context, id uuid.UUID) (*model.Clinic, error)
	ListClinics(ctx context.Context) ([]*model.Clinic, error)
	ListActiveClinics(ctx context.Context) ([]*model.Clinic, error)
	ToggleActivation(ctx context.Context, id uuid.UUID) (*model.Clinic, error)
}

type Service struct {
	repo repository.ClinicRepository
}

func NewService(repo repository.ClinicRepository) *Service {
	return &Service{repo: repo}
}

// CreateClinic onboards a tenant. The admin authorization code is minted
// here, once; there is no reissue operation. New clinics start active.
func (s *Service) CreateClinic(ctx context.Context, req *model.CreateClinicRequest) (*model.Clinic, error) {
	var lastErr error
	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		clinic := &model.Clinic{
			Name:          req.Name,
			LineChannelID: req.LineChannelID,
			AdminCode:     fmt.Sprintf("%s-%s", adminCodePrefix, token.Generate(adminCodeTokenLength)),
			IsActive:      true,
		}

		err := s.repo.Create(ctx, clinic)
		if err == nil {
			return clinic, nil
		}
		if !isUniqueViolation(err) {
			return nil, fmt.Errorf("failed to create clinic: %w", err)
		}
		lastErr = err
	}

	return nil, fmt.Errorf("failed to create clinic after %d attempts: %w", maxCreateAttempts, lastErr)
}

func (s *Service) GetClinic(ctx context.Context, id uuid.UUID) (*model.Clinic, error) {
	clinic, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("clinic", err)
		}
		return nil, fmt.Errorf("failed to get clinic: %w", err)
	}
	return clinic, nil
}

func (s *Service) ListClinics(ctx context.Context) ([]*model.Clinic, error) {
	clinics, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clinics: %w", err)
	}
	return clinics, nil
}

func (s *Service) ListActiveClinics(ctx context.Context) ([]*model.Clinic, error) {
	clinics, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active clinics: %w", err)
	}
	return clinics, nil
}

// ToggleActivation flips the active flag. Read-then-write without a
// concurrency token: two racing toggles resolve last-write-wins at the
// store, matching the rest of the console.
func (s *Service) ToggleActivation(ctx context.Context, id uuid.UUID) (*model.Clinic, error) {
	clinic, err := s.GetClinic(ctx, id)
	if err != nil {
		return nil, err
	}

	clinic.IsActive = !clinic.IsActive
	if err := s.repo.SetActive(ctx, id, clinic.IsActive); err != nil {
		return nil, fmt.Errorf("failed to toggle clinic activation: %w", err)
	}
	return clinic, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
