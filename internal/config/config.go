package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port           int      `validate:"min=1,max=65535"`
	APIKey         string   `validate:"required"`
	TrustedProxies []string `validate:"dive,ip"`

	DatabaseURL       string        `validate:"required"`
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int           `validate:"min=1"`
	DBMaxConnIdleTime time.Duration `validate:"gt=0"`
	DBMaxConnLifetime time.Duration `validate:"gt=0"`
	AutoMigrate       bool

	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string `validate:"required"`

	EconomyConfigPath string
	IdentityCacheSize int           `validate:"min=1"`
	IdentityCacheTTL  time.Duration `validate:"gt=0"`
	MineCooldown      time.Duration `validate:"gte=0"`
	DevMode           bool
	ShutdownTimeout   time.Duration `validate:"gt=0"`
}

// Load reads .env (when present) and then the process environment
func Load() (*Config, error) {
	// A missing .env is fine: real deployments set the variables directly
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv(EnvPort, DefaultPort))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidPortFmt, err)
	}

	cfg := &Config{
		Port:           port,
		APIKey:         getEnv(EnvAPIKey, ""),
		TrustedProxies: getEnvAsList(EnvTrustedProxies),

		DBUser:            getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:        getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:            getEnv(EnvDBHost, DefaultDBHost),
		DBPort:            getEnv(EnvDBPort, DefaultDBPort),
		DBName:            getEnv(EnvDBName, DefaultDBName),
		DBMaxConns:        getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration(EnvDBMaxConnIdleTime, DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime),
		AutoMigrate:       getEnvAsBool(EnvAutoMigrate, true),

		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),

		EconomyConfigPath: getEnv(EnvEconomyConfig, DefaultEconomyConfigPath),
		IdentityCacheSize: getEnvAsInt(EnvIdentityCacheSize, DefaultIdentityCacheSize),
		IdentityCacheTTL:  getEnvAsDuration(EnvIdentityCacheTTL, DefaultIdentityCacheTTL),
		MineCooldown:      getEnvAsDuration(EnvMineCooldown, 0),
		DevMode:           getEnvAsBool(EnvDevMode, false),
		ShutdownTimeout:   getEnvAsDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
	}
	cfg.DatabaseURL = resolveDatabaseURL(cfg)

	if cfg.APIKey == "" {
		return nil, errors.New(ErrMsgAPIKeyRequired)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidConfigFmt, err)
	}

	return cfg, nil
}

// DatabaseURLFromEnv resolves the database URL the way Load does without
// requiring the HTTP settings. Used by maintenance commands.
func DatabaseURLFromEnv() string {
	_ = godotenv.Load()
	return resolveDatabaseURL(&Config{
		DBUser:     getEnv(EnvDBUser, DefaultDBUser),
		DBPassword: getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:     getEnv(EnvDBHost, DefaultDBHost),
		DBPort:     getEnv(EnvDBPort, DefaultDBPort),
		DBName:     getEnv(EnvDBName, DefaultDBName),
	})
}

// resolveDatabaseURL prefers DATABASE_URL, then NEON_DATABASE_URL, then
// builds a URL from the DB_* parts
func resolveDatabaseURL(cfg *Config) string {
	for _, key := range []string{EnvDatabaseURL, EnvNeonDatabaseURL} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return cfg.GetDBConnString()
}

// GetDBConnString returns the PostgreSQL connection string built from the DB_* parts
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// IsDevelopment reports whether source locations should be logged
func (c *Config) IsDevelopment() bool {
	return c.Environment == DefaultEnvironment || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
