package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Storage   StorageConfig   `yaml:"storage"   validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Auth      AuthConfig      `yaml:"auth"      validate:"required"`
	CORS      CORSConfig      `yaml:"cors"`
	Redis     RedisConfig     `yaml:"redis"`
	RabbitMQ  RabbitMQConfig  `yaml:"rabbitmq"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":5000" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"postgres" validate:"required,oneof=postgres memory"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"   validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"        validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"    validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"    validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"hotelbooker" validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"     validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"          validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"           validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"          validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type AuthConfig struct {
	JWTSecret    string        `yaml:"jwt_secret"    env:"ACCESS_TOKEN_SECRET" validate:"required"`
	TokenTTL     time.Duration `yaml:"token_ttl"     env:"TOKEN_TTL"           env-default:"1h" validate:"gt=0"`
	StaffEmails  []string      `yaml:"staff_emails"  env:"STAFF_EMAILS"        env-separator:","`
	StaffKey     string        `yaml:"staff_key"     env:"STAFF_API_KEY"`
	CookieSecure bool          `yaml:"cookie_secure" env:"COOKIE_SECURE"       env-default:"true"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"https://guest-glider.web.app,https://guest-glider.firebaseapp.com"`
}

// RedisConfig enables Idempotency-Key handling when Addr is set.
type RedisConfig struct {
	Addr           string        `yaml:"addr"            env:"REDIS_ADDR"`
	Password       string        `yaml:"password"        env:"REDIS_PASSWORD"`
	DB             int           `yaml:"db"              env:"REDIS_DB"              env-default:"0"`
	IdempotencyTTL time.Duration `yaml:"idempotency_ttl" env:"REDIS_IDEMPOTENCY_TTL" env-default:"24h" validate:"gt=0"`
}

// RabbitMQConfig enables booking event publishing when URL is set.
type RabbitMQConfig struct {
	URL      string `yaml:"url"      env:"RABBITMQ_URL"`
	Exchange string `yaml:"exchange" env:"RABBITMQ_EXCHANGE" env-default:"hotel.bookings" validate:"required"`
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"1m" validate:"required,gt=0"`
	// PendingTTL of zero keeps pending bookings forever.
	PendingTTL time.Duration `yaml:"pending_ttl" env:"SCHEDULER_PENDING_TTL" env-default:"0s" validate:"min=0"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
