package model

import (
	"time"

	"github.com/google/uuid"
)

// Clinic is a tenant organization. The admin code is minted once at
// creation and never regenerated.
type Clinic struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	LineChannelID string    `db:"line_channel_id" json:"line_channel_id"`
	AdminCode     string    `db:"admin_code" json:"admin_code"`
	IsActive      bool      `db:"is_active" json:"is_active"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

type CreateClinicRequest struct {
	Name          string `json:"name" binding:"required"`
	LineChannelID string `json:"line_channel_id" binding:"required"`
}
