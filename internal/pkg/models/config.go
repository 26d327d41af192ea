package models

// Config is the application configuration, loaded from the environment.
type Config struct {
	App      AppConfig      `json:"app"`
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	Redis    RedisConfig    `json:"redis"`
	NATS     NATSConfig     `json:"nats"`
	NewRelic NewRelicConfig `json:"new_relic"`
	Logger   LoggerConfig   `json:"logger"`
	Tracking TrackingConfig `json:"tracking"`
}

// AppConfig holds application-level settings
type AppConfig struct {
	Name        string `json:"name"`
	Environment string `json:"environment"`
	Debug       bool   `json:"debug"`
	Version     string `json:"version"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string `json:"host"`
	Port            int    `json:"port"`
	ReadTimeout     int    `json:"read_timeout"`
	WriteTimeout    int    `json:"write_timeout"`
	ShutdownTimeout int    `json:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL settings
type DatabaseConfig struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	SSLMode   string `json:"ssl_mode"`
	MaxConns  int    `json:"max_conns"`
	IdleConns int    `json:"idle_conns"`
}

// RedisConfig holds Redis settings
type RedisConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	PoolSize int    `json:"pool_size"`
}

// NATSConfig holds the event bus settings. Topic and group names default to
// the wire-compatibility-sensitive values and are overridable per deployment.
type NATSConfig struct {
	URL               string `json:"url"`
	LocationTopic     string `json:"location_topic"`
	NotificationTopic string `json:"notification_topic"`
	TrackingGroup     string `json:"tracking_group"`
	NotificationGroup string `json:"notification_group"`
}

// NewRelicConfig holds New Relic observability settings
type NewRelicConfig struct {
	LicenseKey string `json:"license_key"`
	AppName    string `json:"app_name"`
	Enabled    bool   `json:"enabled"`
}

// LoggerConfig holds logger settings
type LoggerConfig struct {
	Level    string `json:"level"`
	FilePath string `json:"file_path"`
}

// TrackingConfig holds tracking-pipeline settings.
type TrackingConfig struct {
	// EdgeTriggeredNotify suppresses repeated DRIVER_AVAILABLE events and only
	// emits on a transition into AVAILABLE. Off by default: the contract is one
	// event per AVAILABLE update.
	EdgeTriggeredNotify bool `json:"edge_triggered_notify"`
	// ProjectionCacheEnabled serves the fleet latest-per-driver query from the
	// Redis projection maintained by the consumer instead of a store scan.
	ProjectionCacheEnabled bool `json:"projection_cache_enabled"`
	// BroadcastBuffer bounds the per-subscriber queue on the live channel.
	BroadcastBuffer int `json:"broadcast_buffer"`
	// RetentionMaxAgeHours prunes stored locations older than this. Zero
	// disables pruning.
	RetentionMaxAgeHours int `json:"retention_max_age_hours"`
	// MigrateOnStart runs pending schema migrations at startup.
	MigrateOnStart bool   `json:"migrate_on_start"`
	MigrationsPath string `json:"migrations_path"`
}
