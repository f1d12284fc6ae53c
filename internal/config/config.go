// Package config loads service configuration from an optional YAML file
// plus environment variable overrides. Provider credentials and JWT secrets
// are validated at load time so a misconfigured provider fails at startup,
// never on a live request.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Provider credentials for one OAuth2 provider.
type Provider struct {
	Enabled      bool   `yaml:"enabled"`
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	RedirectURI  string `yaml:"redirect_uri"`
}

type Config struct {
	App struct {
		// dev | staging | prod
		Env string `yaml:"env"`
	} `yaml:"app"`

	Server struct {
		Addr               string   `yaml:"addr"`
		CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
	} `yaml:"server"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`

	Storage struct {
		Mongo struct {
			URI      string `yaml:"uri"`
			Database string `yaml:"database"`
		} `yaml:"mongo"`
	} `yaml:"storage"`

	Cache struct {
		// memory | redis
		Kind  string `yaml:"kind"`
		Redis struct {
			Addr   string `yaml:"addr"`
			DB     int    `yaml:"db"`
			Prefix string `yaml:"prefix"`
		} `yaml:"redis"`
		Memory struct {
			DefaultTTL string `yaml:"default_ttl"`
		} `yaml:"memory"`
	} `yaml:"cache"`

	JWT struct {
		Secret        string `yaml:"secret"`
		RefreshSecret string `yaml:"refresh_secret"`
		AccessTTL     string `yaml:"access_ttl"`
		RefreshTTL    string `yaml:"refresh_ttl"`
	} `yaml:"jwt"`

	Auth struct {
		// StateTTL bounds how long a login redirect stays valid.
		StateTTL string `yaml:"state_ttl"`
	} `yaml:"auth"`

	Rate struct {
		Enabled     bool   `yaml:"enabled"`
		Window      string `yaml:"window"`
		MaxRequests int    `yaml:"max_requests"`
	} `yaml:"rate"`

	Providers struct {
		GitHub   Provider `yaml:"github"`
		Google   Provider `yaml:"google"`
		Facebook Provider `yaml:"facebook"`
	} `yaml:"providers"`
}

// Load reads the YAML file at path (missing file is fine, env can carry
// everything), applies defaults and env overrides, and validates.
func Load(path string) (*Config, error) {
	var c Config

	if path != "" {
		b, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(b, &c); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	// sane defaults
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Storage.Mongo.URI == "" {
		c.Storage.Mongo.URI = "mongodb://localhost:27017"
	}
	if c.Storage.Mongo.Database == "" {
		c.Storage.Mongo.Database = "learnhub"
	}
	if c.Cache.Kind == "" {
		c.Cache.Kind = "memory"
	}
	if c.Cache.Memory.DefaultTTL == "" {
		c.Cache.Memory.DefaultTTL = "5m"
	}
	if c.JWT.AccessTTL == "" {
		c.JWT.AccessTTL = "15m"
	}
	if c.JWT.RefreshTTL == "" {
		c.JWT.RefreshTTL = "168h" // 7d
	}
	if c.Auth.StateTTL == "" {
		c.Auth.StateTTL = "5m"
	}
	if c.Rate.Window == "" {
		c.Rate.Window = "1m"
	}
	if c.Rate.MaxRequests == 0 {
		c.Rate.MaxRequests = 60
	}

	c.applyEnvOverrides()

	for _, d := range []string{
		c.Cache.Memory.DefaultTTL,
		c.JWT.AccessTTL,
		c.JWT.RefreshTTL,
		c.Auth.StateTTL,
		c.Rate.Window,
	} {
		if _, err := time.ParseDuration(d); err != nil {
			return nil, fmt.Errorf("config: bad duration %q: %w", d, err)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate enforces the invariants the rest of the service assumes.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("config: jwt.secret (JWT_SECRET) is required")
	}
	if c.JWT.RefreshSecret == "" {
		return fmt.Errorf("config: jwt.refresh_secret (JWT_REFRESH_SECRET) is required")
	}
	if c.JWT.Secret == c.JWT.RefreshSecret {
		return fmt.Errorf("config: access and refresh secrets must differ")
	}

	for name, p := range map[string]Provider{
		"github":   c.Providers.GitHub,
		"google":   c.Providers.Google,
		"facebook": c.Providers.Facebook,
	} {
		if !p.Enabled {
			continue
		}
		if p.ClientID == "" || p.ClientSecret == "" || p.RedirectURI == "" {
			return fmt.Errorf("config: provider %s enabled but missing client_id/client_secret/redirect_uri", name)
		}
	}

	if c.Cache.Kind != "memory" && c.Cache.Kind != "redis" {
		return fmt.Errorf("config: unknown cache kind %q", c.Cache.Kind)
	}
	if c.Cache.Kind == "redis" && c.Cache.Redis.Addr == "" {
		return fmt.Errorf("config: cache.redis.addr required when cache kind is redis")
	}
	return nil
}

// AccessTTL returns the parsed access token TTL.
func (c *Config) AccessTTL() time.Duration { return mustDuration(c.JWT.AccessTTL) }

// RefreshTTL returns the parsed refresh token TTL.
func (c *Config) RefreshTTL() time.Duration { return mustDuration(c.JWT.RefreshTTL) }

// StateTTL returns the parsed CSRF state TTL.
func (c *Config) StateTTL() time.Duration { return mustDuration(c.Auth.StateTTL) }

// RateWindow returns the parsed rate-limit window.
func (c *Config) RateWindow() time.Duration { return mustDuration(c.Rate.Window) }

// MemoryTTL returns the parsed memory-cache default TTL.
func (c *Config) MemoryTTL() time.Duration { return mustDuration(c.Cache.Memory.DefaultTTL) }

func mustDuration(s string) time.Duration {
	d, _ := time.ParseDuration(s) // validated in Load
	return d
}

func (c *Config) applyEnvOverrides() {
	if v, ok := getEnvStr("APP_ENV"); ok {
		c.App.Env = v
	}
	if v, ok := getEnvStr("SERVER_ADDR"); ok {
		c.Server.Addr = v
	}
	if v, ok := getEnvStr("LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := getEnvStr("MONGO_URI"); ok {
		c.Storage.Mongo.URI = v
	}
	if v, ok := getEnvStr("MONGO_DATABASE"); ok {
		c.Storage.Mongo.Database = v
	}
	if v, ok := getEnvStr("CACHE_KIND"); ok {
		c.Cache.Kind = v
	}
	if v, ok := getEnvStr("REDIS_ADDR"); ok {
		c.Cache.Redis.Addr = v
	}
	if v, ok := getEnvInt("REDIS_DB"); ok {
		c.Cache.Redis.DB = v
	}
	if v, ok := getEnvStr("JWT_SECRET"); ok {
		c.JWT.Secret = v
	}
	if v, ok := getEnvStr("JWT_REFRESH_SECRET"); ok {
		c.JWT.RefreshSecret = v
	}
	if v, ok := getEnvBool("RATE_ENABLED"); ok {
		c.Rate.Enabled = v
	}

	overrideProvider(&c.Providers.GitHub, "GITHUB")
	overrideProvider(&c.Providers.Google, "GOOGLE")
	overrideProvider(&c.Providers.Facebook, "FACEBOOK")
}

// overrideProvider applies {PREFIX}_CLIENT_ID / {PREFIX}_SECRET /
// {PREFIX}_REDIRECT_URI. Setting credentials via env implies enabled.
func overrideProvider(p *Provider, prefix string) {
	if v, ok := getEnvStr(prefix + "_CLIENT_ID"); ok {
		p.ClientID = v
		p.Enabled = true
	}
	if v, ok := getEnvStr(prefix + "_SECRET"); ok {
		p.ClientSecret = v
	}
	if v, ok := getEnvStr(prefix + "_REDIRECT_URI"); ok {
		p.RedirectURI = v
	}
}

// ---- env helpers ----

func getEnvStr(key string) (string, bool) {
	v := os.Getenv(key)
	return v, v != ""
}

func getEnvInt(key string) (int, bool) {
	if s, ok := getEnvStr(key); ok {
		if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return i, true
		}
	}
	return 0, false
}

func getEnvBool(key string) (bool, bool) {
	if s, ok := getEnvStr(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
			return b, true
		}
	}
	return false, false
}
