package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage & fan-out
	Database DatabaseConfig
	Redis    RedisConfig

	// Security
	JWT       JWTConfig
	RateLimit RateLimitConfig

	// Observability
	Tracing TracingConfig
}

type EnvironmentConfig struct {
	Name     string
	Timezone string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	Driver      string
	SQLitePath  string
	PostgresDSN string
}

// RedisConfig is optional. An empty Addr disables realtime fan-out.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Channel  string
}

type JWTConfig struct {
	Secret string
	Issuer string
}

type RateLimitConfig struct {
	BookingPerMin int
}

type TracingConfig struct {
	Enabled  bool
	Endpoint string
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.Environment.Timezone = viper.GetString("environment.timezone")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Database
	cfg.Database.Driver = strings.ToLower(viper.GetString("database.driver"))
	cfg.Database.SQLitePath = viper.GetString("database.sqlite_path")
	cfg.Database.PostgresDSN = viper.GetString("database.postgres_dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Database.PostgresDSN = dsn
		if !viper.IsSet("database.driver") {
			cfg.Database.Driver = DriverPostgres
		}
	}

	// Redis
	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.Channel = viper.GetString("redis.channel")

	// Security
	cfg.JWT.Secret = viper.GetString("jwt.secret")
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.RateLimit.BookingPerMin = viper.GetInt("rate_limit.booking_per_min")

	// Tracing
	cfg.Tracing.Enabled = viper.GetBool("tracing.enabled")
	cfg.Tracing.Endpoint = viper.GetString("tracing.endpoint")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.Database.Driver {
	case DriverSQLite:
		if cfg.Database.SQLitePath == "" {
			return fmt.Errorf("database.sqlite_path is required for the sqlite driver")
		}
	case DriverPostgres:
		if cfg.Database.PostgresDSN == "" {
			return fmt.Errorf("database.postgres_dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	if cfg.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret is required")
	}
	if cfg.RateLimit.BookingPerMin <= 0 {
		return fmt.Errorf("rate_limit.booking_per_min must be positive")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("environment.timezone", "UTC")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("database.driver", DriverSQLite)
	viper.SetDefault("database.sqlite_path", "data/rental.db")

	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.channel", "notifications")

	viper.SetDefault("jwt.issuer", "rental-marketplace")
	viper.SetDefault("rate_limit.booking_per_min", 30)

	viper.SetDefault("tracing.enabled", false)
}
