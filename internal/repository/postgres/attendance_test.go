package postgres

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floshq/flos-admin-api/internal/model"
)

func TestBuildAttendanceListQueryNoFilters(t *testing.T) {
	query, args := buildAttendanceListQuery(nil)

	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "JOIN employees e ON e.id = ar.employee_id")
	assert.Contains(t, query, "JOIN clinics c ON c.id = e.clinic_id")
	assert.Contains(t, query, "ORDER BY ar.check_in_time DESC LIMIT $1")
	require.Len(t, args, 1)
	assert.Equal(t, model.MaxPageSize, args[0])
}

func TestBuildAttendanceListQueryClinicFilter(t *testing.T) {
	clinicID := uuid.New()
	query, args := buildAttendanceListQuery(&model.AttendanceFilters{ClinicID: &clinicID})

	// The clinic constraint goes through the employee, not the record.
	assert.Contains(t, query, "WHERE e.clinic_id = $1")
	require.Len(t, args, 2)
	assert.Equal(t, clinicID, args[0])
}

func TestBuildAttendanceListQueryDateBounds(t *testing.T) {
	query, args := buildAttendanceListQuery(&model.AttendanceFilters{
		DateRange: model.DateRange{From: "2024-03-01", To: "2024-03-31"},
	})

	assert.Contains(t, query, "WHERE ar.check_in_time >= $1")
	assert.Contains(t, query, "AND ar.check_in_time <= $2")
	require.Len(t, args, 3)

	// Bounds cover the whole day, inclusive.
	assert.Equal(t, "2024-03-01 00:00:00", args[0])
	assert.Equal(t, "2024-03-31 23:59:59", args[1])
}

func TestBuildAttendanceListQueryAllFilters(t *testing.T) {
	clinicID := uuid.New()
	query, args := buildAttendanceListQuery(&model.AttendanceFilters{
		ClinicID:  &clinicID,
		DateRange: model.DateRange{From: "2024-03-01", To: "2024-03-31"},
	})

	require.Len(t, args, 4)
	assert.Equal(t, 1, strings.Count(query, "WHERE"), "filters must be conjunctive")
	assert.Equal(t, 2, strings.Count(query, " AND "))
	assert.Contains(t, query, "LIMIT $4")
}
