package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"auth": map[string]any{
			"bcryptCost": 10,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, "catalog", cfg.Auth.Realm)
	assert.Equal(t, defaultQRCodeSize, cfg.QRCode.Size)
	assert.Equal(t, "M", cfg.QRCode.ErrorCorrectionLevel)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, defaultWorkerPort, cfg.Worker.Port)
	assert.False(t, cfg.Worker.VerifyPushAuth)
}

func TestLoadWithEnv_ClientConfigOverriddenByEnv(t *testing.T) {
	dir := t.TempDir()
	content := []byte("api:\n  baseUrl: http://localhost:5000/api\n  timeout: 5s\nsession:\n  path: s.db\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "client.yaml"), content, 0o600))

	t.Chdir(dir)
	t.Setenv("API_BASEURL", "http://catalog.internal/api")

	cfg, err := LoadWithEnv[ClientConfig]("client")
	require.NoError(t, err)

	assert.Equal(t, "http://catalog.internal/api", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "s.db", cfg.Session.Path)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[ClientConfig]("client")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client.yaml not found")
}
