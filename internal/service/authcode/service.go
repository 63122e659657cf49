package authcode

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/floshq/flos-admin-api/internal/model"
	"github.com/floshq/flos-admin-api/internal/repository"
	apperrors "github.com/floshq/flos-admin-api/pkg/errors"
	"github.com/floshq/flos-admin-api/pkg/token"
)

const (
	// Token portion of every issued code.
	codeTokenLength = 10

	// Generation retries when the store reports a code collision. The
	// unique constraint on auth_codes.code is the actual uniqueness
	// contract; entropy makes retries vanishingly rare.
	maxIssueAttempts = 3
)

type AuthCodeServicer interface {
	Issue(ctx context.Context, req *model.IssueAuthCodeRequest) (*model.AuthCode, error)
	List(ctx context.Context) ([]*model.AuthCode, error)
}

type Service struct {
	repo repository.AuthCodeRepository
}

func NewService(repo repository.AuthCodeRepository) *Service {
	return &Service{repo: repo}
}

// Issue mints and persists a new code for the requested capability kind.
// The code is PREFIX-TOKEN, uppercase; the prefix makes the capability
// human-distinguishable at a glance.
func (s *Service) Issue(ctx context.Context, req *model.IssueAuthCodeRequest) (*model.AuthCode, error) {
	if !req.Kind.Valid() {
		return nil, apperrors.BadRequest(fmt.Sprintf("invalid auth code type: %s", req.Kind), nil)
	}
	if req.ExpiresAt != nil && req.ExpiresAt.Before(time.Now()) {
		return nil, apperrors.BadRequest("expiry must be in the future", nil)
	}

	var lastErr error
	for attempt := 0; attempt < maxIssueAttempts; attempt++ {
		code := &model.AuthCode{
			Code:      fmt.Sprintf("%s-%s", kindPrefix(req.Kind), token.Generate(codeTokenLength)),
			Kind:      req.Kind,
			ClinicID:  req.ClinicID,
			IsUsed:    false,
			ExpiresAt: req.ExpiresAt,
		}

		err := s.repo.Create(ctx, code)
		if err == nil {
			return code, nil
		}
		if !isUniqueViolation(err) {
			return nil, fmt.Errorf("failed to issue auth code: %w", err)
		}
		lastErr = err
	}

	return nil, fmt.Errorf("failed to issue auth code after %d attempts: %w", maxIssueAttempts, lastErr)
}

func (s *Service) List(ctx context.Context) ([]*model.AuthCode, error) {
	codes, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list auth codes: %w", err)
	}
	return codes, nil
}

func kindPrefix(kind model.AuthCodeKind) string {
	if kind == model.AuthCodeKindAttendance {
		return "ATT"
	}
	return "BOOK"
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
