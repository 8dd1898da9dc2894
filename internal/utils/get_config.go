package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	Env          string `yaml:"ENV" env:"ENV"`
	AppPort      string `yaml:"APP_PORT" env:"APP_PORT"`
	AppURL       string `yaml:"APP_URL" env:"APP_URL"`
	Timezone     string `yaml:"TIMEZONE" env:"TIMEZONE"`
	CORSOrigins  string `yaml:"CORS_ORIGINS" env:"CORS_ORIGINS"`
	RateLimitMax int    `yaml:"RATE_LIMIT_MAX" env:"RATE_LIMIT_MAX"`
	LogFile      string `yaml:"LOG_FILE" env:"LOG_FILE"`

	// Database configuration, optional
	DBUser     string `yaml:"DB_USER" env:"DB_USER"`
	DBName     string `yaml:"DB_NAME" env:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD" env:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT" env:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST" env:"DB_HOST"`

	// Admin login
	JWTSecret         string `yaml:"JWT_SECRET" env:"JWT_SECRET"`
	AdminUsername     string `yaml:"ADMIN_USERNAME" env:"ADMIN_USERNAME"`
	AdminPasswordHash string `yaml:"ADMIN_PASSWORD_HASH" env:"ADMIN_PASSWORD_HASH"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST" env:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT" env:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME" env:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL" env:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD" env:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET" env:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION" env:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY" env:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY" env:"AWS_SECRET_KEY"`
}

var (
	config     Config
	configOnce sync.Once
)

// LoadConfig reads config.yaml once, then lets environment variables (and
// .env outside production) override it.
func LoadConfig() {
	configOnce.Do(func() {
		if os.Getenv("ENV") != "production" {
			if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
				log.Warnf("error reading .env file: %v", err)
			}
		}

		cfg, err := ReadConfig("config.yaml")
		if err != nil {
			log.Warnf("error loading config: %v", err)
		}
		config = cfg
	})
}

// ReadConfig builds a Config from the YAML file at path (a missing file is
// fine) and the current environment.
func ReadConfig(path string) (Config, error) {
	var cfg Config

	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return withDefaults(cfg), fmt.Errorf("parse %s: %w", path, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return withDefaults(cfg), fmt.Errorf("read %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return withDefaults(cfg), fmt.Errorf("parse env: %w", err)
	}
	return withDefaults(cfg), nil
}

func withDefaults(cfg Config) Config {
	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}
	if cfg.AppURL == "" {
		cfg.AppURL = "http://localhost:" + cfg.AppPort
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Europe/Budapest"
	}
	if cfg.CORSOrigins == "" {
		cfg.CORSOrigins = "*"
	}
	if cfg.RateLimitMax <= 0 {
		cfg.RateLimitMax = 20
	}
	if cfg.LogFile == "" {
		cfg.LogFile = "./logs/app.log"
	}
	return cfg
}

// SetConfig replaces the loaded configuration. Used by tests and tools.
func SetConfig(cfg Config) {
	configOnce.Do(func() {})
	config = withDefaults(cfg)
}

func AppConfig() Config {
	return config
}

func GetConfig(key string) string {
	switch key {
	case "ENV":
		return config.Env
	case "APP_PORT":
		return config.AppPort
	case "APP_URL":
		return config.AppURL
	case "TIMEZONE":
		return config.Timezone
	case "CORS_ORIGINS":
		return config.CORSOrigins
	case "RATE_LIMIT_MAX":
		return strconv.Itoa(config.RateLimitMax)
	case "LOG_FILE":
		return config.LogFile
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "ADMIN_USERNAME":
		return config.AdminUsername
	case "ADMIN_PASSWORD_HASH":
		return config.AdminPasswordHash
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	default:
		return ""
	}
}

// HasDatabase reports whether enough DB settings exist to try connecting.
func (c Config) HasDatabase() bool {
	return c.DBHost != "" && c.DBName != ""
}

func (c Config) HasMail() bool {
	return c.SMTPHost != "" && c.SMTPPort != "" && c.SMTPAuthEmail != ""
}

func (c Config) HasS3() bool {
	return c.AWSS3Bucket != "" && c.AWSS3Region != ""
}
