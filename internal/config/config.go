package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Firebase  FirebaseConfig  `yaml:"firebase"`
	SendGrid  SendGridConfig  `yaml:"sendgrid"`
	Sheets    SheetsConfig    `yaml:"sheets"`
	Auth      AuthConfig      `yaml:"auth"`
	Intake    IntakeConfig    `yaml:"intake"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host                 string `yaml:"host"`
	Port                 int    `yaml:"port"`
	ReadTimeoutSeconds   int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds  int    `yaml:"write_timeout_seconds"`
	ShutdownGraceSeconds int    `yaml:"shutdown_grace_seconds"`
}

// FirebaseConfig contains identity-provider and document-store settings
type FirebaseConfig struct {
	ProjectID       string `yaml:"project_id"`
	CredentialsFile string `yaml:"credentials_file"`
}

// SendGridConfig contains transactional email settings
type SendGridConfig struct {
	APIKey     string `yaml:"api_key"`
	FromEmail  string `yaml:"from_email"`
	FromName   string `yaml:"from_name"`
	AdminEmail string `yaml:"admin_email"` // receives new-submission notices
}

// SheetsConfig contains the spreadsheet mirror webhook settings
type SheetsConfig struct {
	WebhookURL     string `yaml:"webhook_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// AuthConfig contains bearer-token verification settings.
// When Firebase credentials are absent the server falls back to a local
// HS256 verifier keyed by DevSecret, intended for development only.
type AuthConfig struct {
	RequireAdminClaim bool   `yaml:"require_admin_claim"`
	DevSecret         string `yaml:"dev_secret"`
}

// IntakeConfig contains submission-pipeline settings
type IntakeConfig struct {
	TestMode           bool `yaml:"test_mode"`             // skip outbound email, respond with test-mode message
	MinFillTimeSeconds int  `yaml:"min_fill_time_seconds"` // time-trap threshold
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	RetryNotifications string `yaml:"retry_notifications"`
	MaxRetryAttempts   int    `yaml:"max_retry_attempts"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Firebase
	if val := os.Getenv("FIREBASE_PROJECT_ID"); val != "" {
		c.Firebase.ProjectID = val
	}
	if val := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); val != "" {
		c.Firebase.CredentialsFile = val
	}

	// SendGrid
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.SendGrid.APIKey = val
	}
	if val := os.Getenv("SENDGRID_FROM_EMAIL"); val != "" {
		c.SendGrid.FromEmail = val
	}
	if val := os.Getenv("SENDGRID_ADMIN_EMAIL"); val != "" {
		c.SendGrid.AdminEmail = val
	}

	// Sheets
	if val := os.Getenv("SHEETS_WEBHOOK_URL"); val != "" {
		c.Sheets.WebhookURL = val
	}

	// Auth
	if val := os.Getenv("AUTH_DEV_SECRET"); val != "" {
		c.Auth.DevSecret = val
	}

	// Intake
	if val := os.Getenv("TEST_MODE"); val == "true" || val == "1" {
		c.Intake.TestMode = true
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.ReadTimeoutSeconds == 0 {
		c.Server.ReadTimeoutSeconds = 15
	}
	if c.Server.WriteTimeoutSeconds == 0 {
		c.Server.WriteTimeoutSeconds = 30
	}
	if c.Server.ShutdownGraceSeconds == 0 {
		c.Server.ShutdownGraceSeconds = 10
	}

	// Firebase validation
	if c.Firebase.ProjectID == "" {
		return fmt.Errorf("firebase project id is required")
	}

	// Auth validation: at least one verifier must be configurable
	if c.Firebase.CredentialsFile == "" && c.Auth.DevSecret == "" {
		return fmt.Errorf("either firebase credentials or an auth dev secret is required")
	}
	if c.Auth.DevSecret != "" && len(c.Auth.DevSecret) < 32 {
		return fmt.Errorf("auth dev secret must be at least 32 characters")
	}

	// SendGrid validation
	if c.SendGrid.FromEmail == "" {
		return fmt.Errorf("sendgrid from email is required")
	}

	// Sheets defaults
	if c.Sheets.TimeoutSeconds == 0 {
		c.Sheets.TimeoutSeconds = 10
	}

	// Intake defaults
	if c.Intake.MinFillTimeSeconds == 0 {
		c.Intake.MinFillTimeSeconds = 3
	}

	// Scheduler defaults
	if c.Scheduler.RetryNotifications == "" {
		c.Scheduler.RetryNotifications = "0 */15 * * * *" // every 15 minutes
	}
	if c.Scheduler.MaxRetryAttempts == 0 {
		c.Scheduler.MaxRetryAttempts = 5
	}

	return nil
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
