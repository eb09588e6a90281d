package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("ELGAMALBN_HASH", "SHA512")
	t.Setenv("ELGAMALBN_LOG_LEVEL", "debug")
	t.Setenv("ELGAMALBN_COUNT", "3")

	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)
	require.Equal(t, "sha512", cfg.Hash)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 3, cfg.Count)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elgamal.yaml")
	data := []byte("group: bjj\nformat: decimal\nencoding: cbor\nseed: abc\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(NewViper(), path)
	require.NoError(t, err)
	require.Equal(t, "bjj", cfg.Group)
	require.Equal(t, "decimal", cfg.Format)
	require.Equal(t, "cbor", cfg.Encoding)
	require.Equal(t, "abc", cfg.Seed)

	_, err = Load(NewViper(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"Group", func(c *Config) { c.Group = "p256" }, ErrUnknownGroup},
		{"Encoding", func(c *Config) { c.Encoding = "xml" }, ErrUnknownEncoding},
		{"ZeroCount", func(c *Config) { c.Count = 0 }, ErrCount},
		{"LargeCount", func(c *Config) { c.Count = MaxCount + 1 }, ErrCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}

	t.Run("Hash", func(t *testing.T) {
		cfg := Default()
		cfg.Hash = "md5"
		require.Error(t, cfg.Validate())
	})
}
