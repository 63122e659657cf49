package model

import (
	"time"

	"github.com/google/uuid"
)

type AuthCodeKind string

const (
	AuthCodeKindAttendance AuthCodeKind = "attendance"
	AuthCodeKindBooking    AuthCodeKind = "booking"
)

func (k AuthCodeKind) Valid() bool {
	return k == AuthCodeKindAttendance || k == AuthCodeKindBooking
}

// AuthCodeState is the computed display state of a code. It is never
// persisted; expiry is evaluated against the clock at render time.
type AuthCodeState string

const (
	AuthCodeUnusedValid   AuthCodeState = "unused_valid"
	AuthCodeUnusedExpired AuthCodeState = "unused_expired"
	AuthCodeUsed          AuthCodeState = "used"
)

// AuthCode grants either attendance-kiosk or public-booking capability.
// The code string is immutable once issued; redemption (flipping is_used)
// happens in the bot integration, outside this API.
type AuthCode struct {
	ID        uuid.UUID    `db:"id" json:"id"`
	Code      string       `db:"code" json:"code"`
	Kind      AuthCodeKind `db:"type" json:"type"`
	ClinicID  *uuid.UUID   `db:"clinic_id" json:"clinic_id,omitempty"`
	IsUsed    bool         `db:"is_used" json:"is_used"`
	UsedAt    *time.Time   `db:"used_at" json:"used_at,omitempty"`
	ExpiresAt *time.Time   `db:"expires_at" json:"expires_at,omitempty"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`

	// Populated by list queries that join the clinics table. Nil for
	// global codes.
	ClinicName *string `db:"clinic_name" json:"clinic_name,omitempty"`
}

// DisplayState classifies the code at the given instant. Used always wins
// over expiry.
func (c *AuthCode) DisplayState(now time.Time) AuthCodeState {
	if c.IsUsed {
		return AuthCodeUsed
	}
	if c.ExpiresAt != nil && c.ExpiresAt.Before(now) {
		return AuthCodeUnusedExpired
	}
	return AuthCodeUnusedValid
}

type IssueAuthCodeRequest struct {
	Kind      AuthCodeKind `json:"type" binding:"required,auth_code_kind"`
	ClinicID  *uuid.UUID   `json:"clinic_id"`
	ExpiresAt *time.Time   `json:"expires_at"`
}
