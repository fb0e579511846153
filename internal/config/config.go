package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// AllowedOrigins lists the browser origins the CORS policy accepts.
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// DSN is the SQLite data source name. The default is a named
	// in-memory database with a shared cache, which survives for as
	// long as the process holds its keep-alive connection.
	DSN string `mapstructure:"dsn" validate:"required"`

	// Seed populates an empty board with starter categories on startup.
	Seed bool `mapstructure:"seed"`
}
