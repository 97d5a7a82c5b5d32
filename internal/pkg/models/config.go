package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	Logger   LoggerConfig
	Geofence GeofenceConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	Address string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string // "file" or "stdout"
}

// GeofenceConfig contains geofence engine configuration
type GeofenceConfig struct {
	WindowSize        int     // number of raw fixes kept for smoothing
	MaxReadingAgeMs   int     // readings older than this are pruned
	AccuracyLimitM    float64 // readings above this accuracy are excluded from averaging
	RetryDelayMs      int     // delay before the single automatic retry after a source timeout
	HistorySize       int     // bounded recent raw-fix history per session
	OneShotTimeoutMs  int     // how long the initial one-shot fix may take
	SessionTTLMinutes int     // Redis TTL for per-session tracking state
	GeohashPrecision  uint    // precision for diagnostic geohashes
}
