package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	DBDriverSQLite   = "sqlite"
	DBDriverPostgres = "postgres"
)

type AppConfig struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Postgres      PostgresConfig
	Monitor       MonitorConfig
	Redis         RedisConfig
	Kafka         KafkaConfig
	Elasticsearch ElasticsearchConfig
	Webhook       WebhookConfig
	Mail          MailConfig
}

type ServerConfig struct {
	Port               string   `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel           string   `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat          string   `envconfig:"LOG_FORMAT" default:"json"`
	LogFile            string   `envconfig:"LOG_FILE" default:"./log/status-monitor.log"`
	CorsAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	RateLimitRPS       float64  `envconfig:"RATE_LIMIT_RPS" default:"20"`
	RateLimitBurst     int      `envconfig:"RATE_LIMIT_BURST" default:"40"`
	RequireWriteScope  bool     `envconfig:"REQUIRE_WRITE_SCOPE" default:"false"`
	JWTSecret          string   `envconfig:"JWT_SECRET"`
}

type DatabaseConfig struct {
	Driver     string `envconfig:"DB_DRIVER" default:"sqlite"`
	SQLitePath string `envconfig:"SQLITE_PATH" default:"./data/status.db"`
}

type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST"`
	Port     int    `envconfig:"POSTGRES_PORT" default:"5432"`
	User     string `envconfig:"POSTGRES_USER"`
	Password string `envconfig:"POSTGRES_PASSWORD"`
	DBName   string `envconfig:"POSTGRES_DB"`
	SSLMode  string `envconfig:"POSTGRES_SSLMODE" default:"disable"`
	MaxConns int    `envconfig:"POSTGRES_MAX_CONNS" default:"10"`
}

type MonitorConfig struct {
	CheckIntervalSeconds      int    `envconfig:"CHECK_INTERVAL_SECONDS" default:"5"`
	DefaultTimeoutMs          int    `envconfig:"DEFAULT_TIMEOUT_MS" default:"5000"`
	MaxCheckResults           int    `envconfig:"MAX_CHECK_RESULTS" default:"10000"`
	RetentionDays             int    `envconfig:"RETENTION_DAYS" default:"90"`
	ServicesFile              string `envconfig:"SERVICES_FILE" default:"./services.yaml"`
	MaintenanceAutoTransition bool   `envconfig:"MAINTENANCE_AUTO_TRANSITION" default:"true"`
}

// CheckInterval returns the scheduler period.
func (m MonitorConfig) CheckInterval() time.Duration {
	return time.Duration(m.CheckIntervalSeconds) * time.Second
}

type RedisConfig struct {
	Host     string        `envconfig:"REDIS_HOST"`
	Port     int           `envconfig:"REDIS_PORT" default:"6379"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"REDIS_CACHE_TTL" default:"5m"`
}

type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS"`
	Topic   string   `envconfig:"KAFKA_TOPIC" default:"check-results"`
}

type ElasticsearchConfig struct {
	Addresses []string `envconfig:"ELASTICSEARCH_ADDRESSES"`
	Username  string   `envconfig:"ELASTICSEARCH_USERNAME"`
	Password  string   `envconfig:"ELASTICSEARCH_PASSWORD"`
	Index     string   `envconfig:"ELASTICSEARCH_INDEX" default:"check_results"`
}

type WebhookConfig struct {
	URL        string        `envconfig:"WEBHOOK_URL"`
	Timeout    time.Duration `envconfig:"WEBHOOK_TIMEOUT" default:"5s"`
	RatePerMin int           `envconfig:"WEBHOOK_RATE_PER_MIN" default:"30"`
	RateBurst  int           `envconfig:"WEBHOOK_RATE_BURST" default:"5"`
}

type MailConfig struct {
	Email            string `envconfig:"MAIL_EMAIL"`
	Password         string `envconfig:"MAIL_PASSWORD"`
	Host             string `envconfig:"MAIL_HOST"`
	Port             int    `envconfig:"MAIL_PORT" default:"587"`
	AdminMailAddress string `envconfig:"MAIL_ADMIN_EMAIL"`
	ReportCron       string `envconfig:"REPORT_CRON" default:"0 0 * * *"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c AppConfig) Validate() error {
	switch c.Database.Driver {
	case DBDriverSQLite:
	case DBDriverPostgres:
		if c.Postgres.Host == "" || c.Postgres.User == "" || c.Postgres.DBName == "" {
			return fmt.Errorf("postgres driver requires POSTGRES_HOST, POSTGRES_USER and POSTGRES_DB")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.Monitor.CheckIntervalSeconds <= 0 {
		return fmt.Errorf("CHECK_INTERVAL_SECONDS must be positive")
	}
	if c.Monitor.DefaultTimeoutMs <= 0 {
		return fmt.Errorf("DEFAULT_TIMEOUT_MS must be positive")
	}
	if c.Monitor.MaxCheckResults <= 0 {
		return fmt.Errorf("MAX_CHECK_RESULTS must be positive")
	}
	if c.Monitor.RetentionDays <= 0 {
		return fmt.Errorf("RETENTION_DAYS must be positive")
	}
	if c.Mail.Host != "" && c.Mail.AdminMailAddress == "" {
		return fmt.Errorf("MAIL_ADMIN_EMAIL is required when MAIL_HOST is set")
	}
	return nil
}

// ServiceDefinition is one entry of the services seed file.
type ServiceDefinition struct {
	ID                   string  `yaml:"id"`
	Name                 string  `yaml:"name"`
	Description          string  `yaml:"description"`
	URL                  *string `yaml:"url"`
	Category             string  `yaml:"category"`
	CheckIntervalSeconds int     `yaml:"checkIntervalSeconds"`
	TimeoutMs            int     `yaml:"timeoutMs"`
	ExpectedStatusCode   int     `yaml:"expectedStatusCode"`
}

type servicesFile struct {
	Services []ServiceDefinition `yaml:"services"`
}

func LoadServiceDefinitions(path string) ([]ServiceDefinition, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadServiceDefinitions: %w", err)
	}
	return ParseServiceDefinitions(b)
}

func ParseServiceDefinitions(b []byte) ([]ServiceDefinition, error) {
	var f servicesFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("ParseServiceDefinitions: %w", err)
	}
	seen := make(map[string]struct{}, len(f.Services))
	for i, def := range f.Services {
		if def.ID == "" {
			return nil, fmt.Errorf("ParseServiceDefinitions: service #%d has no id", i+1)
		}
		if _, ok := seen[def.ID]; ok {
			return nil, fmt.Errorf("ParseServiceDefinitions: duplicate service id %q", def.ID)
		}
		seen[def.ID] = struct{}{}
		if def.Name == "" {
			f.Services[i].Name = def.ID
		}
		if def.Category == "" {
			f.Services[i].Category = "Other"
		}
	}
	return f.Services, nil
}
