package model

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// WorkHoursPending is rendered while an employee is still clocked in.
const WorkHoursPending = "-"

// AttendanceRecord is one clock-in/clock-out pair. CheckOutTime is nil
// until the employee clocks out.
type AttendanceRecord struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	EmployeeID   uuid.UUID  `db:"employee_id" json:"employee_id"`
	CheckInTime  time.Time  `db:"check_in_time" json:"check_in_time"`
	CheckOutTime *time.Time `db:"check_out_time" json:"check_out_time,omitempty"`
	Location     *string    `db:"location" json:"location,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

// AttendanceLogEntry is the joined row the attendance views render: the
// record plus its employee and owning clinic.
type AttendanceLogEntry struct {
	AttendanceRecord
	EmployeeName string    `db:"employee_name" json:"employee_name"`
	EmployeeCode string    `db:"employee_code" json:"employee_code"`
	ClinicID     uuid.UUID `db:"clinic_id" json:"clinic_id"`
	ClinicName   string    `db:"clinic_name" json:"clinic_name"`
}

// AttendanceFilters narrow the attendance log. The clinic constraint is
// two-hop: record -> employee -> clinic. Date bounds are inclusive and
// cover the whole day.
type AttendanceFilters struct {
	ClinicID *uuid.UUID
	DateRange
}

// WorkHours derives the elapsed work time of a record. Returns the
// pending sentinel while checkOut is nil. The interval is not validated:
// a checkout recorded before its checkin renders the same negative-derived
// value the clock screens have always shown.
func WorkHours(checkIn time.Time, checkOut *time.Time) string {
	if checkOut == nil {
		return WorkHoursPending
	}
	diff := checkOut.Sub(checkIn)
	hours := int(math.Floor(diff.Hours()))
	minutes := int(math.Floor(math.Mod(diff.Minutes(), 60)))
	return fmt.Sprintf("%d小時%d分鐘", hours, minutes)
}

// WorkHoursOf is a convenience wrapper over WorkHours for a full record.
func (r *AttendanceRecord) WorkHoursOf() string {
	return WorkHours(r.CheckInTime, r.CheckOutTime)
}
