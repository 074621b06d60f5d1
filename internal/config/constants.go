package config

import "time"

// Environment variable names
const (
	EnvPort              = "PORT"
	EnvAPIKey            = "API_KEY"
	EnvTrustedProxies    = "TRUSTED_PROXIES"
	EnvDatabaseURL       = "DATABASE_URL"
	EnvNeonDatabaseURL   = "NEON_DATABASE_URL"
	EnvDBUser            = "DB_USER"
	EnvDBPassword        = "DB_PASSWORD"
	EnvDBHost            = "DB_HOST"
	EnvDBPort            = "DB_PORT"
	EnvDBName            = "DB_NAME"
	EnvDBMaxConns        = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime = "DB_MAX_CONN_LIFETIME"
	EnvAutoMigrate       = "AUTO_MIGRATE"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvEnvironment       = "ENVIRONMENT"
	EnvServiceName       = "SERVICE_NAME"
	EnvVersion           = "VERSION"
	EnvEconomyConfig     = "ECONOMY_CONFIG"
	EnvIdentityCacheSize = "IDENTITY_CACHE_SIZE"
	EnvIdentityCacheTTL  = "IDENTITY_CACHE_TTL"
	EnvMineCooldown      = "MINE_COOLDOWN"
	EnvDevMode           = "DEV_MODE"
	EnvShutdownTimeout   = "SHUTDOWN_TIMEOUT"
	EnvSchemaVersion     = "ENV_SCHEMA_VERSION"
)

// Defaults
const (
	DefaultPort              = "8080"
	DefaultDBUser            = "postgres"
	DefaultDBPassword        = "postgres"
	DefaultDBHost            = "localhost"
	DefaultDBPort            = "5432"
	DefaultDBName            = "minesbot"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = time.Hour
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "mines-bot"
	DefaultVersion           = "dev"
	DefaultEconomyConfigPath = "configs/economy.yaml"
	DefaultIdentityCacheSize = 10000
	DefaultIdentityCacheTTL  = 10 * time.Minute
	DefaultShutdownTimeout   = 15 * time.Second
)

// Error messages
const (
	ErrMsgInvalidPortFmt   = "invalid PORT value: %w"
	ErrMsgAPIKeyRequired   = "API_KEY environment variable must be set for security"
	ErrMsgInvalidConfigFmt = "invalid configuration: %w"
)
