package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultHTTPAddr      = ":8080"
	defaultDatabaseURL   = "youtube_clone.db"
	defaultAccessTTL     = "15m"
	defaultRefreshTTL    = "240h"
	defaultAccessSecret  = "change-me-access-secret"
	defaultRefreshSecret = "change-me-refresh-secret"
	defaultRefreshPepper = "change-me-refresh-pepper"
	defaultLoginRate     = "10"
	defaultLoginWindow   = "1m"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	DatabaseURL string

	AccessTokenSecret  string
	RefreshTokenSecret string
	RefreshTokenPepper string
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration

	LoginRateLimit  int
	LoginRateWindow time.Duration

	ObjectStore ObjectStoreConfig
}

// ObjectStoreConfig points at the S3-compatible bucket where media assets
// (video files, thumbnails, avatars, covers) are uploaded.
type ObjectStoreConfig struct {
	Region        string
	Bucket        string
	Endpoint      string
	PublicBaseURL string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.HTTPAddr = getEnv("HTTP_ADDR", defaultHTTPAddr)
	cfg.DatabaseURL = getEnv("DATABASE_URL", defaultDatabaseURL)

	cfg.AccessTokenSecret = strings.TrimSpace(getEnv("ACCESS_TOKEN_SECRET", defaultAccessSecret))
	cfg.RefreshTokenSecret = strings.TrimSpace(getEnv("REFRESH_TOKEN_SECRET", defaultRefreshSecret))
	cfg.RefreshTokenPepper = strings.TrimSpace(getEnv("REFRESH_TOKEN_PEPPER", defaultRefreshPepper))

	var err error
	cfg.AccessTokenTTL, err = parseDurationEnv("ACCESS_TOKEN_TTL", defaultAccessTTL)
	if err != nil {
		return nil, err
	}
	cfg.RefreshTokenTTL, err = parseDurationEnv("REFRESH_TOKEN_TTL", defaultRefreshTTL)
	if err != nil {
		return nil, err
	}

	cfg.LoginRateLimit, err = parseIntEnv("LOGIN_RATE_LIMIT", defaultLoginRate)
	if err != nil {
		return nil, err
	}
	cfg.LoginRateWindow, err = parseDurationEnv("LOGIN_RATE_WINDOW", defaultLoginWindow)
	if err != nil {
		return nil, err
	}

	cfg.ObjectStore = ObjectStoreConfig{
		Region:        getEnv("S3_REGION", "us-east-1"),
		Bucket:        os.Getenv("S3_BUCKET"),
		Endpoint:      os.Getenv("S3_ENDPOINT"),
		PublicBaseURL: os.Getenv("S3_PUBLIC_BASE_URL"),
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.AccessTokenTTL <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_TTL must be > 0")
	}
	if cfg.RefreshTokenTTL <= 0 {
		return fmt.Errorf("REFRESH_TOKEN_TTL must be > 0")
	}
	if cfg.RefreshTokenTTL <= cfg.AccessTokenTTL {
		return fmt.Errorf("REFRESH_TOKEN_TTL must exceed ACCESS_TOKEN_TTL")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.AccessTokenSecret, defaultAccessSecret) {
			return fmt.Errorf("in prod ACCESS_TOKEN_SECRET must be set and not default")
		}
		if isEmptyOrDefault(cfg.RefreshTokenSecret, defaultRefreshSecret) {
			return fmt.Errorf("in prod REFRESH_TOKEN_SECRET must be set and not default")
		}
		if isEmptyOrDefault(cfg.RefreshTokenPepper, defaultRefreshPepper) {
			return fmt.Errorf("in prod REFRESH_TOKEN_PEPPER must be set and not default")
		}
		if cfg.ObjectStore.Bucket == "" {
			return fmt.Errorf("in prod S3_BUCKET must be set")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	v = strings.TrimSpace(v)
	return v == "" || v == def
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	return d, nil
}

func parseIntEnv(key, def string) (int, error) {
	raw := getEnv(key, def)
	var n int
	if _, err := fmt.Sscanf(raw, "%d", &n); err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q: %w", key, raw, err)
	}
	return n, nil
}
