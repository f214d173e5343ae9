package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/ff-goblet/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug       bool   `mapstructure:"debug"`
	SentryDSN   string `mapstructure:"sentry_dsn"`
	Environment string `mapstructure:"environment"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres or sqlite
	Path            string        `mapstructure:"path"`   // SQLite database file, ":memory:" for an ephemeral ledger
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration. An empty URL disables event publishing.
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	CreateStream   bool          `mapstructure:"create_stream"`
	PublishTimeout time.Duration `mapstructure:"publish_timeout"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string   `mapstructure:"host"`
	Port         int      `mapstructure:"port"`
	ReadTimeout  int      `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int      `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int      `mapstructure:"idle_timeout"`  // in seconds
	CORSOrigins  []string `mapstructure:"cors_origins"`  // empty allows all origins
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string `mapstructure:"jwt_public_key"`
	Issuer       string `mapstructure:"issuer"`
}

// GemstoneConfig holds gemstone ledger configuration
type GemstoneConfig struct {
	UnredeemedCID string `mapstructure:"unredeemed_cid"`
	RedeemedCID   string `mapstructure:"redeemed_cid"`
}

// GobletConfig holds goblet minter configuration
type GobletConfig struct {
	DefaultCID string        `mapstructure:"default_cid"`
	YearWindow time.Duration `mapstructure:"year_window"`
	Epoch      string        `mapstructure:"epoch"` // RFC3339, overrides the epoch recorded at deploy
}

// WorkerConfig holds worker configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig     `mapstructure:",squash"`
	AdminAddress   string         `mapstructure:"admin_address"`
	MetricsEnabled bool           `mapstructure:"metrics_enabled"`
	WhitelistPath  string         `mapstructure:"whitelist_path"` // Optional seed file admitted at startup
	Server         ServerConfig   `mapstructure:"server"`
	Database       DatabaseConfig `mapstructure:"database"`
	NATS           NATSConfig     `mapstructure:"nats"`
	Auth           AuthConfig     `mapstructure:"auth"`
	Gemstone       GemstoneConfig `mapstructure:"gemstone"`
	Goblet         GobletConfig   `mapstructure:"goblet"`
}

// GobletDocumentConfig holds the fixed fields of goblet metadata documents
type GobletDocumentConfig struct {
	Description          string `mapstructure:"description"`
	ExternalURL          string `mapstructure:"external_url"`
	ImageCID             string `mapstructure:"image_cid"`
	SellerFeeBasisPoints int    `mapstructure:"seller_fee_basis_points"`
}

// GemstoneDocumentConfig holds the fixed fields of gemstone metadata documents
type GemstoneDocumentConfig struct {
	ExternalURL          string `mapstructure:"external_url"`
	ImageCID             string `mapstructure:"image_cid"`
	SellerFeeBasisPoints int    `mapstructure:"seller_fee_basis_points"`
}

// MetadataGenConfig holds configuration for metadata-gen
type MetadataGenConfig struct {
	BaseConfig `mapstructure:",squash"`
	OutputDir  string                 `mapstructure:"output_dir"`
	Worker     WorkerConfig           `mapstructure:"worker"`
	Goblet     GobletDocumentConfig   `mapstructure:"goblet"`
	Gemstone   GemstoneDocumentConfig `mapstructure:"gemstone"`
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("environment", "development")
	v.SetDefault("metrics_enabled", true)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("nats.stream_name", "GOBLET_EVENTS")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", "ff-goblet-api")
	v.SetDefault("nats.publish_timeout", "5s")
	v.SetDefault("goblet.default_cid", domain.DEFAULT_GOBLET_CID)
	v.SetDefault("goblet.year_window", domain.DEFAULT_YEAR_WINDOW.String())

	if err := v.ReadInConfig(); err != nil {
		var error viper.ConfigFileNotFoundError
		if errors.As(err, &error) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if _, err := domain.ParseAddress(cfg.AdminAddress); err != nil {
		return nil, fmt.Errorf("admin_address is required: %w", err)
	}
	if _, err := cfg.Goblet.ParseEpoch(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadMetadataGenConfig loads configuration for metadata-gen
func LoadMetadataGenConfig(configFile string, envPath string) (*MetadataGenConfig, error) {
	v := configureViper("metadata-gen", configFile, envPath)

	// Set defaults
	v.SetDefault("output_dir", "metadata")
	v.SetDefault("worker.pool_size", 16)
	v.SetDefault("goblet.description", "A goblet redeemed with a complete set of six gemstones.")
	v.SetDefault("goblet.external_url", "https://maltgrainwhiskey.com")
	v.SetDefault("goblet.image_cid", "QmcNKwH4yFpUrHwVcYn2rPw4uJzeyLypdXz5oSpo8JdHq8")
	v.SetDefault("goblet.seller_fee_basis_points", 1000)
	v.SetDefault("gemstone.external_url", "https://www.maltgraincane.com/")
	v.SetDefault("gemstone.image_cid", "QmQKedjazARTj4QPpUwWkRhxLBXm1mTwJzSctwyp9U5uzg")
	v.SetDefault("gemstone.seller_fee_basis_points", 1000)

	if err := v.ReadInConfig(); err != nil {
		var error viper.ConfigFileNotFoundError
		if errors.As(err, &error) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg MetadataGenConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.OutputDir == "" {
		return nil, errors.New("output_dir is required")
	}

	return &cfg, nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("GOBLET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	commonKeys := []string{
		"debug",
		"sentry_dsn",
		"environment",
		"admin_address",
		"metrics_enabled",
		"whitelist_path",
		// Database
		"database.driver",
		"database.path",
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.create_stream",
		"nats.publish_timeout",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.cors_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.issuer",
		// Ledger
		"gemstone.unredeemed_cid",
		"gemstone.redeemed_cid",
		"goblet.default_cid",
		"goblet.year_window",
		"goblet.epoch",
		// Metadata generator
		"output_dir",
		"worker.pool_size",
		"worker.queue_size",
		"goblet.description",
		"goblet.external_url",
		"goblet.image_cid",
		"goblet.seller_fee_basis_points",
		"gemstone.external_url",
		"gemstone.image_cid",
		"gemstone.seller_fee_basis_points",
	}

	for _, key := range commonKeys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the connection string for the configured driver
func (c *DatabaseConfig) DSN() string {
	if c.Driver == "sqlite" {
		return c.Path
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// ParseEpoch returns the configured epoch, nil when the deploy-time epoch applies
func (c *GobletConfig) ParseEpoch() (*time.Time, error) {
	if c.Epoch == "" {
		return nil, nil
	}

	epoch, err := time.Parse(time.RFC3339, c.Epoch)
	if err != nil {
		return nil, fmt.Errorf("invalid goblet.epoch: %w", err)
	}
	return &epoch, nil
}
