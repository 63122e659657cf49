package postgres

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floshq/flos-admin-api/internal/model"
)

func TestBuildAppointmentListQueryNoFilters(t *testing.T) {
	query, args := buildAppointmentListQuery(nil)

	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "LEFT JOIN clinics c ON c.id = a.clinic_id")
	assert.Contains(t, query, "ORDER BY a.appointment_date DESC, a.appointment_time DESC LIMIT $1")
	require.Len(t, args, 1)
	assert.Equal(t, model.MaxPageSize, args[0])
}

func TestBuildAppointmentListQuerySingleFilter(t *testing.T) {
	query, args := buildAppointmentListQuery(&model.AppointmentFilters{
		Status: model.AppointmentStatusPending,
	})

	assert.Contains(t, query, "WHERE a.status = $1")
	require.Len(t, args, 2)
	assert.Equal(t, model.AppointmentStatusPending, args[0])
}

func TestBuildAppointmentListQueryAllFilters(t *testing.T) {
	clinicID := uuid.New()
	query, args := buildAppointmentListQuery(&model.AppointmentFilters{
		ClinicID:  &clinicID,
		Status:    model.AppointmentStatusConfirmed,
		DateRange: model.DateRange{From: "2024-03-01", To: "2024-03-31"},
	})

	assert.Contains(t, query, "WHERE a.clinic_id = $1")
	assert.Contains(t, query, "AND a.status = $2")
	assert.Contains(t, query, "AND a.appointment_date >= $3")
	assert.Contains(t, query, "AND a.appointment_date <= $4")
	assert.Contains(t, query, "LIMIT $5")

	require.Len(t, args, 5)
	assert.Equal(t, clinicID, args[0])
	assert.Equal(t, model.AppointmentStatusConfirmed, args[1])
	assert.Equal(t, "2024-03-01", args[2])
	assert.Equal(t, "2024-03-31", args[3])
	assert.Equal(t, model.MaxPageSize, args[4])

	assert.Equal(t, 1, strings.Count(query, "WHERE"), "filters must be conjunctive")
}
