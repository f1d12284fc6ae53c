package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dropDatabas3/learnhub/internal/config"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func setSecrets(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "a-secret")
	t.Setenv("JWT_REFRESH_SECRET", "b-secret")
}

func TestLoad_DefaultsAndSecretsFromEnv(t *testing.T) {
	setSecrets(t)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("addr default: %q", cfg.Server.Addr)
	}
	if cfg.Storage.Mongo.Database != "learnhub" {
		t.Fatalf("db default: %q", cfg.Storage.Mongo.Database)
	}
	if cfg.AccessTTL() != 15*time.Minute {
		t.Fatalf("access ttl: %v", cfg.AccessTTL())
	}
	if cfg.RefreshTTL() != 168*time.Hour {
		t.Fatalf("refresh ttl: %v", cfg.RefreshTTL())
	}
	if cfg.StateTTL() != 5*time.Minute {
		t.Fatalf("state ttl: %v", cfg.StateTTL())
	}
}

func TestLoad_MissingSecretsFails(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "")

	if _, err := config.Load(""); err == nil {
		t.Fatal("expected error without jwt secrets")
	}
}

func TestLoad_EqualSecretsFails(t *testing.T) {
	t.Setenv("JWT_SECRET", "same")
	t.Setenv("JWT_REFRESH_SECRET", "same")

	_, err := config.Load("")
	if err == nil || !strings.Contains(err.Error(), "differ") {
		t.Fatalf("expected equal-secret error, got %v", err)
	}
}

func TestLoad_ProviderEnvOverridesEnable(t *testing.T) {
	setSecrets(t)
	t.Setenv("GITHUB_CLIENT_ID", "gid")
	t.Setenv("GITHUB_SECRET", "gsec")
	t.Setenv("GITHUB_REDIRECT_URI", "http://localhost/cb")

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	gh := cfg.Providers.GitHub
	if !gh.Enabled || gh.ClientID != "gid" || gh.ClientSecret != "gsec" {
		t.Fatalf("github not enabled via env: %+v", gh)
	}
	if cfg.Providers.Google.Enabled {
		t.Fatal("google should stay disabled")
	}
}

func TestLoad_EnabledProviderWithMissingCredsFails(t *testing.T) {
	setSecrets(t)
	path := writeFile(t, `
providers:
  google:
    enabled: true
    client_id: gid
`)
	if _, err := config.Load(path); err == nil {
		t.Fatal("expected error for incomplete provider config")
	}
}

func TestLoad_YAMLPlusEnvPrecedence(t *testing.T) {
	setSecrets(t)
	t.Setenv("SERVER_ADDR", ":9999")
	path := writeFile(t, `
server:
  addr: ":7777"
log:
  level: debug
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":9999" {
		t.Fatalf("env should win over yaml, got %q", cfg.Server.Addr)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("yaml level lost: %q", cfg.Log.Level)
	}
}

func TestLoad_BadDurationFails(t *testing.T) {
	setSecrets(t)
	path := writeFile(t, `
jwt:
  access_ttl: "soon"
`)
	if _, err := config.Load(path); err == nil {
		t.Fatal("expected duration parse error")
	}
}

func TestLoad_UnknownCacheKindFails(t *testing.T) {
	setSecrets(t)
	path := writeFile(t, `
cache:
  kind: memcached
`)
	if _, err := config.Load(path); err == nil {
		t.Fatal("expected unknown cache kind error")
	}
}
