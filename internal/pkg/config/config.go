package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Scheduler SchedulerConfig
	Cron      CronConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Driver        string `envconfig:"DB_DRIVER" default:"postgres"`
	Host          string `envconfig:"DB_HOST" default:"localhost"`
	Port          string `envconfig:"DB_PORT" default:"5432"`
	User          string `envconfig:"DB_USER"`
	Password      string `envconfig:"DB_PASSWORD"`
	DBName        string `envconfig:"DB_NAME"`
	SSLMode       string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone      string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns      int32  `envconfig:"DB_MAX_CONNS" default:"10"`
	SQLitePath    string `envconfig:"DB_SQLITE_PATH" default:"auction-scheduler.db"`
	AutoMigrate   bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
	MigrationsDir string `envconfig:"DB_MIGRATIONS_DIR" default:"migrations"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type SchedulerConfig struct {
	TimeZone  string  `envconfig:"SCHEDULER_TIMEZONE" default:"UTC"`
	RateLimit float64 `envconfig:"SCHEDULER_RATE_LIMIT" default:"5"`
	RateBurst int     `envconfig:"SCHEDULER_RATE_BURST" default:"10"`
}

type CronConfig struct {
	Enabled      bool          `envconfig:"CRON_ENABLED" default:"false"`
	MasterID     string        `envconfig:"CRON_MASTER_ID"`
	DayStartSpec string        `envconfig:"CRON_DAY_START_SPEC" default:"0 0 * * *"`
	ProgressSpec string        `envconfig:"CRON_PROGRESS_SPEC" default:"0 */3 * * *"`
	JobTimeout   time.Duration `envconfig:"CRON_JOB_TIMEOUT" default:"30s"`
}

type TelemetryConfig struct {
	Enabled     bool   `envconfig:"OTEL_ENABLED" default:"false"`
	Endpoint    string `envconfig:"OTEL_ENDPOINT"`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"auction-scheduler"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// SQLiteDSN enables foreign keys, a busy timeout and immediate write transactions.
func (c *DBConfig) SQLiteDSN() string {
	return "file:" + filepath.Clean(c.SQLitePath) +
		"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_txlock=immediate"
}

func (c *DBConfig) Validate() error {
	switch c.Driver {
	case DriverPostgres:
		if c.User == "" || c.DBName == "" {
			return fmt.Errorf("DB_USER and DB_NAME are required for driver %q", c.Driver)
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("DB_SQLITE_PATH is required for driver %q", c.Driver)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Driver)
	}
	return nil
}

// Location resolves SCHEDULER_TIMEZONE; "today" for every scheduler operation is taken in it.
func (c *SchedulerConfig) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULER_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c *JWTConfig) TokenDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Duration)
	if err != nil {
		return 0, fmt.Errorf("invalid JWT_DURATION %q: %w", c.Duration, err)
	}
	return d, nil
}

func LoadConfig() (Config, error) {
	loadDotEnv()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.DB.Validate(); err != nil {
		return Config{}, err
	}
	if cfg.Cron.Enabled && cfg.Cron.MasterID == "" {
		return Config{}, fmt.Errorf("CRON_MASTER_ID is required when CRON_ENABLED is true")
	}
	return cfg, nil
}

// loadDotEnv reads .env (or ENV_FILE) when present; real environment variables win.
func loadDotEnv() {
	path := os.Getenv("ENV_FILE")
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		slog.Warn("failed to load env file", "path", path, "error", err.Error())
	}
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Driver:        DriverPostgres,
			Host:          "localhost",
			Port:          "15433", // Test DB port
			User:          "test",
			Password:      "test",
			DBName:        "test_db",
			SSLMode:       "disable",
			TimeZone:      "UTC",
			MaxConns:      10,
			MigrationsDir: "migrations",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Scheduler: SchedulerConfig{
			TimeZone:  "UTC",
			RateLimit: 1000,
			RateBurst: 1000,
		},
		Cron: CronConfig{
			DayStartSpec: "0 0 * * *",
			ProgressSpec: "0 */3 * * *",
			JobTimeout:   5 * time.Second,
		},
		Telemetry: TelemetryConfig{
			ServiceName: "auction-scheduler-test",
		},
	}
}
