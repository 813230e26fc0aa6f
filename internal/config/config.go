package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// DatabaseTypeMySQL selects the MySQL dialect
	DatabaseTypeMySQL = "mysql"
	// DatabaseTypePostgres selects the PostgreSQL dialect
	DatabaseTypePostgres = "postgres"

	envPrefix = "TRUSTKEY"

	// mysqlSessionTimeZone keeps CURRENT_TIMESTAMP in UTC to match the driver's loc
	mysqlSessionTimeZone = "'+00:00'"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Security SecurityConfig `mapstructure:"security"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Hostname       string        `mapstructure:"hostname"`
	Port           int           `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	IdleTimeout    time.Duration `mapstructure:"idle_timeout"`
	GinMode        string        `mapstructure:"gin_mode"`
	TrustedProxies []string      `mapstructure:"trusted_proxies"`
	MaxBodyBytes   int64         `mapstructure:"max_body_bytes"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Type            string        `mapstructure:"type"`
	Hostname        string        `mapstructure:"hostname"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// SecurityConfig holds request authentication and hardening configuration
type SecurityConfig struct {
	APIKeyHeader    string `mapstructure:"api_key_header"`
	SecurityHeaders bool   `mapstructure:"security_headers"`
}

// MetricsConfig holds Prometheus exposition configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Load reads configuration from .env files, the config file and environment variables.
// An empty configPath searches the default locations.
func Load(configPath string) (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("deployment")
		v.SetConfigType("yaml")
		v.AddConfigPath("./repository/conf")
		v.AddConfigPath("./cmd/server/repository/conf")
		v.AddConfigPath(".")
	}

	// Environment overrides: TRUSTKEY_DATABASE_PASSWORD -> database.password
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// loadDotEnv loads a .env file from the working directory when present
func loadDotEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to stat .env: %w", err)
	}
	if err := godotenv.Load(".env"); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.hostname", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.gin_mode", "release")
	v.SetDefault("server.trusted_proxies", []string{})
	v.SetDefault("server.max_body_bytes", 64*1024)

	v.SetDefault("database.type", DatabaseTypeMySQL)
	v.SetDefault("database.hostname", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "trustkey")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 5*time.Minute)
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("cors.enabled", true)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Content-Type", "x-api-key", "X-Correlation-ID"})
	v.SetDefault("cors.allow_credentials", false)
	v.SetDefault("cors.max_age", 600)

	v.SetDefault("security.api_key_header", "x-api-key")
	v.SetDefault("security.security_headers", true)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	switch config.Server.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid gin mode: %q", config.Server.GinMode)
	}

	if config.Database.Type != DatabaseTypeMySQL && config.Database.Type != DatabaseTypePostgres {
		return fmt.Errorf("unsupported database type: %q", config.Database.Type)
	}

	if config.Database.Hostname == "" {
		return fmt.Errorf("database hostname is required")
	}

	if config.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if config.Security.APIKeyHeader == "" {
		return fmt.Errorf("api key header name is required")
	}

	if config.Metrics.Enabled && !strings.HasPrefix(config.Metrics.Path, "/") {
		return fmt.Errorf("metrics path must start with '/': %q", config.Metrics.Path)
	}

	return nil
}

// DriverName returns the database/sql driver name for the configured dialect
func (d *DatabaseConfig) DriverName() string {
	return d.Type
}

// GetDSN returns the database connection string for the configured driver
func (d *DatabaseConfig) GetDSN() string {
	if d.Type == DatabaseTypePostgres {
		return d.postgresURL("postgres").String()
	}
	return d.mysqlConfig().FormatDSN()
}

func (d *DatabaseConfig) mysqlConfig() *mysql.Config {
	cfg := mysql.NewConfig()
	cfg.User = d.User
	cfg.Passwd = d.Password
	cfg.Net = "tcp"
	cfg.Addr = d.address()
	cfg.DBName = d.Database
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	cfg.Params = map[string]string{"time_zone": mysqlSessionTimeZone}
	return cfg
}

// GetMigrationURL returns the connection URL understood by golang-migrate
func (d *DatabaseConfig) GetMigrationURL() string {
	if d.Type == DatabaseTypePostgres {
		return d.postgresURL("postgres").String()
	}
	return "mysql://" + d.GetDSN()
}

func (d *DatabaseConfig) postgresURL(scheme string) *url.URL {
	q := url.Values{}
	if d.SSLMode != "" {
		q.Set("sslmode", d.SSLMode)
	}
	return &url.URL{
		Scheme:   scheme,
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.address(),
		Path:     "/" + d.Database,
		RawQuery: q.Encode(),
	}
}

func (d *DatabaseConfig) address() string {
	return net.JoinHostPort(d.Hostname, strconv.Itoa(d.Port))
}

// GetServerAddress returns the server address in host:port format
func (s *ServerConfig) GetServerAddress() string {
	return net.JoinHostPort(s.Hostname, strconv.Itoa(s.Port))
}
