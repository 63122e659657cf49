package postgres

import (
	"context"
	"fmt"

	"github.com/floshq/flos-admin-api/internal/model"
)

// buildAttendanceListQuery translates the filter record into a single
// conjunctive query. The clinic constraint is two-hop: the record owns no
// clinic reference, its employee does. Date bounds are inclusive whole
// days on the check-in timestamp.
func buildAttendanceListQuery(filters *model.AttendanceFilters) (string, []interface{}) {
	query := `
		SELECT ar.id, ar.employee_id, ar.check_in_time, ar.check_out_time,
			   ar.location, ar.created_at,
			   e.name AS employee_name, e.employee_code AS employee_code,
			   e.clinic_id AS clinic_id, c.name AS clinic_name
		FROM attendance_records ar
		JOIN employees e ON e.id = ar.employee_id
		JOIN clinics c ON c.id = e.clinic_id
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
			appendClause("e.clinic_id =", *filters.ClinicID)
		}
		if filters.From != "" {
			appendClause("ar.check_in_time >=", filters.From+" 00:00:00")
		}
		if filters.To != "" {
			appendClause("ar.check_in_time <=", filters.To+" 23:59:59")
		}
	}

	query += fmt.Sprintf(" ORDER BY ar.check_in_time DESC LIMIT $%d", argCount)
	args = append(args, model.MaxPageSize)

	return query, args
}

func (r *attendanceRepository) List(ctx context.Context, filters *model.AttendanceFilters) ([]*model.AttendanceLogEntry, error) {
	query, args := buildAttendanceListQuery(filters)

	var entries []*model.AttendanceLogEntry
	err := r.db.SelectContext(ctx, &entries, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	return entries, nil
}
