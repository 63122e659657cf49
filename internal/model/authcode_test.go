package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuthCodeDisplayState(t *testing.T) {
	now := time.Date(2024, 3, 18, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name string
		code AuthCode
		want AuthCodeState
	}{
		{"fresh without expiry", AuthCode{}, AuthCodeUnusedValid},
		{"fresh before expiry", AuthCode{ExpiresAt: &future}, AuthCodeUnusedValid},
		{"expired unused", AuthCode{ExpiresAt: &past}, AuthCodeUnusedExpired},
		{"used", AuthCode{IsUsed: true}, AuthCodeUsed},
		// Used wins over expiry: redemption is the stronger fact.
		{"used and expired", AuthCode{IsUsed: true, ExpiresAt: &past}, AuthCodeUsed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.DisplayState(now))
		})
	}
}

func TestAuthCodeKindValid(t *testing.T) {
	assert.True(t, AuthCodeKindAttendance.Valid())
	assert.True(t, AuthCodeKindBooking.Valid())
	assert.False(t, AuthCodeKind("admin").Valid())
	assert.False(t, AuthCodeKind("").Valid())
}
