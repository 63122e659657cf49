package model

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

// The five appointment states. Transitions are deliberately unconstrained:
// clinic staff may set any status over any other, so this is a closed
// enumeration rather than a guarded state machine.
const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

// Valid reports whether s is one of the five known states.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed,
		AppointmentStatusCompleted, AppointmentStatusCancelled,
		AppointmentStatusNoShow:
		return true
	}
	return false
}

// Label returns the localized display name used on exports.
func (s AppointmentStatus) Label() string {
	switch s {
	case AppointmentStatusPending:
		return "待確認"
	case AppointmentStatusConfirmed:
		return "已確認"
	case AppointmentStatusCompleted:
		return "已完成"
	case AppointmentStatusCancelled:
		return "已取消"
	case AppointmentStatusNoShow:
		return "未到"
	}
	return string(s)
}

// Appointment is a customer booking tied to one clinic. Date and time are
// kept as the wire strings the booking form submits.
type Appointment struct {
	ID              uuid.UUID         `db:"id" json:"id"`
	ClinicID        uuid.UUID         `db:"clinic_id" json:"clinic_id"`
	CustomerName    string            `db:"customer_name" json:"customer_name"`
	CustomerPhone   string            `db:"customer_phone" json:"customer_phone"`
	AppointmentDate string            `db:"appointment_date" json:"appointment_date"`
	AppointmentTime string            `db:"appointment_time" json:"appointment_time"`
	Treatment       string            `db:"treatment" json:"treatment"`
	Doctor          *string           `db:"doctor" json:"doctor,omitempty"`
	Status          AppointmentStatus `db:"status" json:"status"`
	Notes           *string           `db:"notes" json:"notes,omitempty"`
	CreatedAt       time.Time         `db:"created_at" json:"created_at"`

	// Populated by list queries that join the clinics table.
	ClinicName *string `db:"clinic_name" json:"clinic_name,omitempty"`
}

// AppointmentFilters narrow appointment lists. Zero-valued fields mean no
// constraint.
type AppointmentFilters struct {
	ClinicID *uuid.UUID
	Status   AppointmentStatus
	DateRange
}

// BookingRequest is the public booking form payload. Status is not
// accepted from the caller; intake always persists pending.
type BookingRequest struct {
	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerPhone   string `json:"customer_phone" binding:"required"`
	AppointmentDate string `json:"appointment_date" binding:"required,datetime=2006-01-02"`
	AppointmentTime string `json:"appointment_time" binding:"required,datetime=15:04"`
	Treatment       string `json:"treatment" binding:"required"`
	Doctor          string `json:"doctor"`
	Notes           string `json:"notes"`
}

type UpdateAppointmentStatusRequest struct {
	Status AppointmentStatus `json:"status" binding:"required,appointment_status"`
}
