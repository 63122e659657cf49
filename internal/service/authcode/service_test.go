package authcode

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floshq/flos-admin-api/internal/model"
	apperrors "github.com/floshq/flos-admin-api/pkg/errors"
)

type fakeRepo struct {
	created []*model.AuthCode
	// createErrs are returned by successive Create calls; nil entries
	// mean success.
	createErrs []error
	listCodes  []*model.AuthCode
}

func (f *fakeRepo) Create(_ context.Context, code *model.AuthCode) error {
	call := len(f.created)
	f.created = append(f.created, code)
	if call < len(f.createErrs) {
		return f.createErrs[call]
	}
	return nil
}

func (f *fakeRepo) List(_ context.Context) ([]*model.AuthCode, error) {
	return f.listCodes, nil
}

func uniqueViolation() error {
	return &pq.Error{Code: "23505"}
}

func TestIssueAttendanceCode(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	code, err := svc.Issue(context.Background(), &model.IssueAuthCodeRequest{
		Kind: model.AuthCodeKindAttendance,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(code.Code, "ATT-"), "got %s", code.Code)
	assert.Len(t, code.Code, len("ATT-")+10)
	assert.False(t, code.IsUsed)
	assert.Nil(t, code.ExpiresAt)
}

func TestIssueBookingCode(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	code, err := svc.Issue(context.Background(), &model.IssueAuthCodeRequest{
		Kind: model.AuthCodeKindBooking,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(code.Code, "BOOK-"), "got %s", code.Code)
	assert.Len(t, code.Code, len("BOOK-")+10)
}

func TestIssueRejectsUnknownKind(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.Issue(context.Background(), &model.IssueAuthCodeRequest{
		Kind: model.AuthCodeKind("superuser"),
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
}

func TestIssueRejectsPastExpiry(t *testing.T) {
	svc := NewService(&fakeRepo{})

	past := time.Now().Add(-time.Minute)
	_, err := svc.Issue(context.Background(), &model.IssueAuthCodeRequest{
		Kind:      model.AuthCodeKindAttendance,
		ExpiresAt: &past,
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
}

func TestIssueRetriesOnCodeCollision(t *testing.T) {
	repo := &fakeRepo{createErrs: []error{uniqueViolation(), nil}}
	svc := NewService(repo)

	code, err := svc.Issue(context.Background(), &model.IssueAuthCodeRequest{
		Kind: model.AuthCodeKindAttendance,
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 2)

	// Each attempt mints a fresh code.
	assert.NotEqual(t, repo.created[0].Code, repo.created[1].Code)
	assert.Equal(t, repo.created[1].Code, code.Code)
}

func TestIssueGivesUpAfterRepeatedCollisions(t *testing.T) {
	repo := &fakeRepo{createErrs: []error{uniqueViolation(), uniqueViolation(), uniqueViolation()}}
	svc := NewService(repo)

	_, err := svc.Issue(context.Background(), &model.IssueAuthCodeRequest{
		Kind: model.AuthCodeKindAttendance,
	})
	require.Error(t, err)
	assert.Len(t, repo.created, maxIssueAttempts)
}

func TestIssueSurfacesStoreErrorsImmediately(t *testing.T) {
	repo := &fakeRepo{createErrs: []error{errors.New("connection reset")}}
	svc := NewService(repo)

	_, err := svc.Issue(context.Background(), &model.IssueAuthCodeRequest{
		Kind: model.AuthCodeKindBooking,
	})
	require.Error(t, err)
	assert.Len(t, repo.created, 1, "non-collision errors must not be retried")
}
