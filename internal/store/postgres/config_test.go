package postgres

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "missing admin url",
			cfg:     Config{AppURL: "postgres://app@localhost/db"},
			wantErr: "administrative connection string is required",
		},
		{
			name:    "missing app url",
			cfg:     Config{AdminURL: "postgres://admin@localhost/db"},
			wantErr: "application connection string is required",
		},
		{
			name: "both present",
			cfg: Config{
				AdminURL: "postgres://admin@localhost/db",
				AppURL:   "postgres://app@localhost/db",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	require.Equal(t, int32(2), cfg.AdminMaxConns)
	require.Equal(t, int32(10), cfg.AppMaxConns)
	require.Equal(t, int32(5), cfg.AcquireTimeoutSeconds)
	require.Equal(t, int32(10), cfg.ConnectTimeoutSeconds)
	require.Equal(t, int32(3600), cfg.MaxConnLifetimeSeconds)
	require.Equal(t, int32(1800), cfg.MaxConnIdleTimeSeconds)
}

func TestConfigApplyDefaultsKeepsExplicit(t *testing.T) {
	cfg := &Config{AdminMaxConns: 1, AppMaxConns: 50, AcquireTimeoutSeconds: 1}
	cfg.ApplyDefaults()

	require.Equal(t, int32(1), cfg.AdminMaxConns)
	require.Equal(t, int32(50), cfg.AppMaxConns)
	require.Equal(t, int32(1), cfg.AcquireTimeoutSeconds)
}
