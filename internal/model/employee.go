package model

import (
	"time"

	"github.com/google/uuid"
)

// Employee belongs to exactly one clinic. Rows are created by the
// attendance bot, not through this API; the console only toggles
// activation.
type Employee struct {
	ID           uuid.UUID `db:"id" json:"id"`
	ClinicID     uuid.UUID `db:"clinic_id" json:"clinic_id"`
	Name         string    `db:"name" json:"name"`
	EmployeeCode string    `db:"employee_code" json:"employee_code"`
	LineUserID   string    `db:"line_user_id" json:"line_user_id"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
