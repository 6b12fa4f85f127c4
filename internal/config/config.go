package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	Timeout    string `yaml:"timeout"`
}

type VerificationConfig struct {
	ResendWindow string `yaml:"resend_window"`
}

type MessagingConfig struct {
	DefaultBusinessID uint   `yaml:"default_business_id"`
	DedupeTTL         string `yaml:"dedupe_ttl"`
}

type ConfigFile struct {
	App          AppConfig          `yaml:"app"`
	Database     DatabaseConfig     `yaml:"database"`
	Redis        RedisConfig        `yaml:"redis"`
	Twilio       TwilioConfig       `yaml:"twilio"`
	Verification VerificationConfig `yaml:"verification"`
	Messaging    MessagingConfig    `yaml:"messaging"`
}

// Config is the flat runtime configuration, built once at process start and
// passed into every component. Request paths never read ambient state.
type Config struct {
	Port              string
	GinMode           string
	DSN               string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	TwilioSID         string
	TwilioToken       string
	TwilioTimeout     time.Duration
	ResendWindow      time.Duration
	DedupeTTL         time.Duration
	DefaultBusinessID uint
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	return LoadFrom(env("CONFIG_PATH", "config/config.yml"))
}

func LoadFrom(path string) (*Config, error) {
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	timeout, err := time.ParseDuration(env("TWILIO_TIMEOUT", configFile.Twilio.Timeout))
	if err != nil {
		return nil, fmt.Errorf("invalid twilio timeout: %w", err)
	}

	resendWindow, err := time.ParseDuration(env("RESEND_WINDOW", configFile.Verification.ResendWindow))
	if err != nil {
		return nil, fmt.Errorf("invalid verification resend window: %w", err)
	}

	dedupeTTL, err := time.ParseDuration(env("DEDUPE_TTL", configFile.Messaging.DedupeTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid messaging dedupe TTL: %w", err)
	}

	defaultBusinessID := configFile.Messaging.DefaultBusinessID
	if v := os.Getenv("DEFAULT_BUSINESS_ID"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid DEFAULT_BUSINESS_ID: %w", err)
		}
		defaultBusinessID = uint(id)
	}

	return &Config{
		Port:              env("PORT", fmt.Sprintf("%d", configFile.App.Port)),
		GinMode:           configFile.App.GinMode,
		DSN:               env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:         env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:     env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:           configFile.Redis.DB,
		TwilioSID:         env("TWILIO_ACCOUNT_SID", configFile.Twilio.AccountSID),
		TwilioToken:       env("TWILIO_AUTH_TOKEN", configFile.Twilio.AuthToken),
		TwilioTimeout:     timeout,
		ResendWindow:      resendWindow,
		DedupeTTL:         dedupeTTL,
		DefaultBusinessID: defaultBusinessID,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
