package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	// ErrInvalidConfig возвращается, когда значения конфигурации некорректны
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Scheduling SchedulingConfig `toml:"scheduling"`
	Auth       AuthConfig       `toml:"auth"`
	Redis      RedisConfig      `toml:"redis"`
	Queue      QueueConfig      `toml:"queue"`
	Mail       MailConfig       `toml:"mail"`
	Reminders  RemindersConfig  `toml:"reminders"`
	RateLimit  RateLimitConfig  `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	TxMaxRetries    int    `toml:"tx_max_retries"`
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SchedulingConfig параметры расчета слотов
type SchedulingConfig struct {
	Timezone    string `toml:"timezone"`
	StepMinutes int    `toml:"step_minutes"`
	HorizonDays int    `toml:"horizon_days"`
}

// Location возвращает часовой пояс, в котором считаются все даты и окна
func (s SchedulingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}

// AuthConfig настройки JWT
type AuthConfig struct {
	JWTSecret     string `toml:"jwt_secret"`
	TokenTTLHours int    `toml:"token_ttl_hours"`
	Issuer        string `toml:"issuer"`
	BcryptCost    int    `toml:"bcrypt_cost"`
}

// RedisConfig настройки Redis (блокировка бронирований и очередь задач)
type RedisConfig struct {
	Addr           string `toml:"addr"`
	Password       string `toml:"password"`
	DB             int    `toml:"db"`
	LockEnabled    bool   `toml:"lock_enabled"`
	LockTTLSeconds int    `toml:"lock_ttl_seconds"`
}

// QueueConfig настройки asynq
type QueueConfig struct {
	Enabled     bool   `toml:"enabled"`
	Name        string `toml:"name"`
	Concurrency int    `toml:"concurrency"`
	MaxRetry    int    `toml:"max_retry"`
}

// MailConfig настройки отправки писем
type MailConfig struct {
	Provider       string `toml:"provider"` // smtp | sendgrid
	FromEmail      string `toml:"from_email"`
	FromName       string `toml:"from_name"`
	PublicBaseURL  string `toml:"public_base_url"`
	SMTPHost       string `toml:"smtp_host"`
	SMTPPort       int    `toml:"smtp_port"`
	SMTPUser       string `toml:"smtp_user"`
	SMTPPassword   string `toml:"smtp_password"`
	SendGridAPIKey string `toml:"sendgrid_api_key"`
}

// RemindersConfig настройки напоминаний
type RemindersConfig struct {
	Enabled   bool   `toml:"enabled"`
	Schedule  string `toml:"schedule"` // cron выражение
	LeadHours int    `toml:"lead_hours"`
}

// RateLimitConfig ограничение частоты запросов к публичным маршрутам
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// Load читает конфигурацию из TOML файла, затем .env и переменные окружения
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	// .env необязателен
	_ = godotenv.Load()
	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			TxMaxRetries:    3,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "scheduling-service",
		},
		Scheduling: SchedulingConfig{
			Timezone:    "Europe/Paris",
			StepMinutes: 15,
			HorizonDays: 60,
		},
		Auth: AuthConfig{
			TokenTTLHours: 24,
			Issuer:        "smc-scheduling",
			BcryptCost:    10,
		},
		Redis: RedisConfig{
			Addr:           "localhost:6379",
			LockTTLSeconds: 10,
		},
		Queue: QueueConfig{
			Name:        "notifications",
			Concurrency: 5,
			MaxRetry:    5,
		},
		Mail: MailConfig{
			Provider: "smtp",
			FromName: "Planification",
			SMTPPort: 587,
		},
		Reminders: RemindersConfig{
			Schedule:  "0 * * * *",
			LeadHours: 24,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 5,
			Burst:             20,
		},
	}
}

// applyEnv переопределяет секреты из окружения
func applyEnv(cfg *Config) {
	overrideString(&cfg.Database.Password, "DB_PASSWORD")
	overrideString(&cfg.Database.Host, "DB_HOST")
	overrideInt(&cfg.Database.Port, "DB_PORT")
	overrideString(&cfg.Auth.JWTSecret, "JWT_SECRET")
	overrideString(&cfg.Redis.Addr, "REDIS_ADDR")
	overrideString(&cfg.Redis.Password, "REDIS_PASSWORD")
	overrideString(&cfg.Mail.SMTPPassword, "SMTP_PASSWORD")
	overrideString(&cfg.Mail.SendGridAPIKey, "SENDGRID_API_KEY")
	overrideInt(&cfg.Server.HTTPPort, "HTTP_PORT")
}

func overrideString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func overrideInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Port <= 0 {
		return fmt.Errorf("%w: database.port=%d", ErrInvalidConfig, c.Database.Port)
	}
	if c.Scheduling.StepMinutes <= 0 {
		return fmt.Errorf("%w: scheduling.step_minutes must be positive", ErrInvalidConfig)
	}
	if c.Scheduling.HorizonDays <= 0 {
		return fmt.Errorf("%w: scheduling.horizon_days must be positive", ErrInvalidConfig)
	}
	if _, err := c.Scheduling.Location(); err != nil {
		return fmt.Errorf("%w: scheduling.timezone=%q: %v", ErrInvalidConfig, c.Scheduling.Timezone, err)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is empty (set JWT_SECRET)", ErrInvalidConfig)
	}
	if c.Auth.TokenTTLHours <= 0 {
		return fmt.Errorf("%w: auth.token_ttl_hours must be positive", ErrInvalidConfig)
	}
	switch c.Mail.Provider {
	case "smtp", "sendgrid":
	default:
		return fmt.Errorf("%w: unknown mail.provider %q", ErrInvalidConfig, c.Mail.Provider)
	}
	if c.Reminders.Enabled && c.Reminders.LeadHours <= 0 {
		return fmt.Errorf("%w: reminders.lead_hours must be positive", ErrInvalidConfig)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit values must be positive", ErrInvalidConfig)
	}
	return nil
}
