package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 9, cfg.Pagination.PageSize)
	assert.Equal(t, 100, cfg.Pagination.MaxPageSize)
	assert.InDelta(t, 10.0, cfg.Proximity.DefaultRadiusKm, 1e-9)
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 30*time.Minute, cfg.Auth.ResetTokenTTL)
	assert.Equal(t, []string{"png", "jpg", "jpeg", "gif"}, cfg.Storage.AllowedExtensions)
	assert.Equal(t, 256, cfg.QRCode.Size)
	assert.Equal(t, defaultRateLimitBurst, cfg.HTTP.RateLimit.Burst)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Pagination: &PaginationConfig{PageSize: 20, MaxPageSize: 50},
		Proximity:  &ProximityConfig{DefaultRadiusKm: 3},
	}

	applyDefaults(cfg)

	assert.Equal(t, 20, cfg.Pagination.PageSize)
	assert.Equal(t, 50, cfg.Pagination.MaxPageSize)
	assert.InDelta(t, 3.0, cfg.Proximity.DefaultRadiusKm, 1e-9)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte("pagination:\n  pageSize: 9\nstorage:\n  bucketUrl: mem://\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unit.yaml"), yamlBody, 0o600))

	t.Chdir(dir)
	t.Setenv("PAGINATION_PAGESIZE", "12")

	cfg, err := LoadWithEnv[Config]("unit")
	require.NoError(t, err)
	require.NotNil(t, cfg.Pagination)
	assert.Equal(t, 12, cfg.Pagination.PageSize)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
}

func TestCanonicalizeEnvKey(t *testing.T) {
	loaded := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master":  map[string]any{"userName": "zembil"},
		},
		"storage":    map[string]any{"bucketUrl": ""},
		"pagination": map[string]any{"pageSize": 9},
		"firebase":   map[string]any{"credentialsPath": ""},
	}

	cases := map[string]string{
		"POSTGRES_SSLMODE":          "postgres.sslMode",
		"POSTGRES_MASTER_USERNAME":  "postgres.master.userName",
		"STORAGE_BUCKETURL":         "storage.bucketUrl",
		"PAGINATION_PAGESIZE":       "pagination.pageSize",
		"FIREBASE_CREDENTIALSPATH":  "firebase.credentialsPath",
		"PUBSUB__TOPIC":             "pubsub.topic",
		"MAIL_SMTP_HOST":            "mail.smtp.host",
	}

	for envKey, want := range cases {
		assert.Equal(t, want, canonicalizeEnvKey(envKey, loaded), envKey)
	}
}

func TestReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-a")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-b")

	replicas := replicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-a", replicas[0].Host)
	assert.Equal(t, "5432", replicas[0].Port)
	assert.Equal(t, "reader", replicas[0].UserName)
}
