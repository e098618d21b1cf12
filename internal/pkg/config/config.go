package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	AMQP      AMQPConfig
	Catalog   CatalogConfig
	Proposal  ProposalConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host         string        `envconfig:"DB_HOST" default:"localhost"`
	Port         string        `envconfig:"DB_PORT" default:"5432"`
	User         string        `envconfig:"DB_USER" required:"true"`
	Password     string        `envconfig:"DB_PASSWORD" required:"true"`
	DBName       string        `envconfig:"DB_NAME" required:"true"`
	SSLMode      string        `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone     string        `envconfig:"DB_TIMEZONE" default:"Europe/Rome"`
	MaxConns     int32         `envconfig:"DB_MAX_CONNS" default:"10"`
	QueryTimeout time.Duration `envconfig:"DB_QUERY_TIMEOUT" default:"5s"`
	AutoMigrate  bool          `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Rome"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

// JWTConfig only carries the verification secret. Tokens are issued by the identity service.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

// AMQPConfig selects the event publisher. An empty URL logs events instead.
type AMQPConfig struct {
	URL            string        `envconfig:"AMQP_URL" default:""`
	Exchange       string        `envconfig:"AMQP_EXCHANGE" default:"autoflow.events"`
	ConnectRetries int           `envconfig:"AMQP_CONNECT_RETRIES" default:"5"`
	RetryDelay     time.Duration `envconfig:"AMQP_RETRY_DELAY" default:"1s"`
}

type CatalogConfig struct {
	SnapshotTTL time.Duration `envconfig:"CATALOG_SNAPSHOT_TTL" default:"30s"`
}

type ProposalConfig struct {
	ReleaseVehicleOnClose bool `envconfig:"PROPOSAL_RELEASE_VEHICLE_ON_CLOSE" default:"false"`
}

type RateLimitConfig struct {
	ShowroomRPS   float64       `envconfig:"RATE_LIMIT_SHOWROOM_RPS" default:"5"`
	ShowroomBurst int           `envconfig:"RATE_LIMIT_SHOWROOM_BURST" default:"20"`
	IdleTTL       time.Duration `envconfig:"RATE_LIMIT_IDLE_TTL" default:"10m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// LoadConfig reads the process environment, after an optional .env file
// (ENV_FILE, default ".env") has been applied without overriding it.
func LoadConfig() (Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		DB: DBConfig{
			Host:         "localhost",
			Port:         "15433", // Test DB port
			User:         "test",
			Password:     "test",
			DBName:       "test_db",
			SSLMode:      "disable",
			TimeZone:     "UTC",
			MaxConns:     10,
			QueryTimeout: 5 * time.Second,
			AutoMigrate:  true,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret: "test-secret-key-for-e2e-tests-only",
		},
		AMQP: AMQPConfig{
			Exchange: "autoflow.events",
		},
		Catalog: CatalogConfig{
			SnapshotTTL: time.Minute,
		},
		RateLimit: RateLimitConfig{
			ShowroomRPS:   1000,
			ShowroomBurst: 1000,
			IdleTTL:       time.Minute,
		},
	}
}
