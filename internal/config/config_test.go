package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "flos",
		Password: "secret",
		Name:     "flos",
		SSLMode:  "disable",
	}
}

func TestDatabaseConfigValidate(t *testing.T) {
	assert.NoError(t, validDatabaseConfig().validate())

	missingHost := validDatabaseConfig()
	missingHost.Host = ""
	assert.Error(t, missingHost.validate())

	missingUser := validDatabaseConfig()
	missingUser.User = ""
	assert.Error(t, missingUser.validate())

	missingPassword := validDatabaseConfig()
	missingPassword.Password = ""
	assert.Error(t, missingPassword.validate())

	missingName := validDatabaseConfig()
	missingName.Name = ""
	assert.Error(t, missingName.validate())
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_PASSWORD", "override")

	cfg := &Config{Database: validDatabaseConfig()}
	require.NoError(t, applyEnvOverrides(cfg))

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "override", cfg.Database.Password)
}

// A malformed port must refuse startup, not fall back to port zero.
func TestApplyEnvOverridesRejectsBadPort(t *testing.T) {
	t.Setenv("DB_PORT", "fivefourthreetwo")

	cfg := &Config{Database: validDatabaseConfig()}
	err := applyEnvOverrides(cfg)
	require.Error(t, err)
	assert.Equal(t, 5432, cfg.Database.Port, "the configured port stays untouched")
}
