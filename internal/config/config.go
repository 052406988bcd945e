package config

import (
	"errors"
	"fmt"
	"io/fs"
	"numberbot/pkg/domain"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // embedded zoneinfo

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Storage drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config represents the application configuration structure.
// It contains settings for the environment, the Telegram bot, upstream
// providers, persistence, the admin HTTP server, and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Telegram contains the bot connection settings
	Telegram struct {
		// Token is the bot token issued by BotFather
		Token string `env:"BOT_TOKEN" yaml:"token"`
		// OwnerID is the Telegram user allowed to run operator commands
		OwnerID int64 `env:"OWNER_ID" env-default:"0" yaml:"ownerId"`
		// LogChatID is the chat operator notices are sent to. Zero logs them instead.
		LogChatID int64 `env:"LOG_CHANNEL_ID" env-default:"0" yaml:"logChatId"`
		// WelcomeImage is an optional photo URL sent with the /start greeting
		WelcomeImage string `env:"WELCOME_IMAGE" yaml:"welcomeImage"`
		// Workers bounds how many updates are handled concurrently
		Workers int `env:"TELEGRAM_WORKERS" env-default:"10" yaml:"workers"`
		// RequestTimeout caps every call made to the Telegram API
		RequestTimeout time.Duration `env:"TELEGRAM_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
	} `yaml:"telegram"`

	// ChannelList holds the channels users must join, with optional names and invite links
	ChannelList []domain.Channel `yaml:"channels"`
	// ForceSubChannels is a comma separated list of extra channel ids to require
	ForceSubChannels string `env:"FORCE_SUB_CHANNELS" yaml:"forceSubChannels"`

	// Phone controls which numbers are accepted
	Phone struct {
		// CountryCode is the dial prefix numbers are displayed and queried with
		CountryCode string `env:"COUNTRY_CODE" env-default:"+91" yaml:"countryCode"`
		// CountryName is shown when the provider does not report a country
		CountryName string `env:"COUNTRY_NAME" env-default:"India" yaml:"countryName"`
		// ISOCountry is passed to the validation provider
		ISOCountry string `env:"ISO_COUNTRY" env-default:"IN" yaml:"isoCountry"`
		// AllowedStartDigits lists the digits a national number may start with
		AllowedStartDigits []string `env:"VALID_STARTING_DIGITS" env-default:"6,7,8,9" env-separator:"," yaml:"allowedStartDigits"` //nolint: lll
		// Timezone is the location used to compute the day key of usage counters
		Timezone string `env:"TIMEZONE" env-default:"Asia/Kolkata" yaml:"timezone"`
	} `yaml:"phone"`

	// Providers contains the upstream lookup APIs
	Providers struct {
		// IdentityURL is the base URL of the name lookup API
		IdentityURL string `env:"TRUECALLER_API_URL" env-default:"https://true-call-check.vercel.app/api/truecaller" yaml:"identityUrl"` //nolint: lll
		// ValidationURL is the base URL of the number validation API
		ValidationURL string `env:"VALIDATION_API_URL" env-default:"http://apilayer.net/api/validate" yaml:"validationUrl"`
		// KeysFile holds one validation access key per line
		KeysFile string `env:"ACCESS_KEYS_FILE" env-default:"access_keys.txt" yaml:"keysFile"`
		// Timeout caps each provider round trip
		Timeout time.Duration `env:"PROVIDER_TIMEOUT" env-default:"10s" yaml:"timeout"`
	} `yaml:"providers"`

	// Limits contains per-user query caps. A value of zero disables that cap.
	Limits struct {
		// PerDay is the maximum number of lookups a user may run per calendar day
		PerDay int `env:"MAX_QUERIES_PER_USER_PER_DAY" env-default:"50" yaml:"perDay"`
		// PerMinute is the maximum number of lookups a user may run per minute
		PerMinute int `env:"MAX_QUERIES_PER_MINUTE" env-default:"10" yaml:"perMinute"`
	} `yaml:"limits"`

	// Notifications controls delivery of operator notices
	Notifications struct {
		// Buffer is how many notices wait in memory before new ones are dropped
		Buffer int `env:"NOTIFY_BUFFER" env-default:"256" yaml:"buffer"`
		// Workers is how many queued notices are delivered concurrently (postgres only)
		Workers int `env:"NOTIFY_WORKERS" env-default:"2" yaml:"workers"`
		// PerMinute caps how many notices are sent to the log chat per minute
		PerMinute int `env:"NOTIFY_PER_MINUTE" env-default:"20" yaml:"perMinute"`
		// MaxAttempts is how many times a notice is tried before it is discarded
		MaxAttempts int `env:"NOTIFY_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
	} `yaml:"notifications"`

	// Redis contains the shared limiter backend. Without a URL limits are kept in memory.
	Redis struct {
		// URL is a redis:// connection string
		URL string `env:"REDIS_URL" yaml:"url"`
	} `yaml:"redis"`

	// Storage selects the persistence backend
	Storage struct {
		// Driver is either "postgres" or "sqlite"
		Driver string `env:"STORAGE_DRIVER" env-default:"postgres" yaml:"driver"`
		// SQLitePath is the database file used by the sqlite driver
		SQLitePath string `env:"SQLITE_PATH" env-default:"numberbot.db" yaml:"sqlitePath"`
	} `yaml:"storage"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// JWTPublicKey is the PEM encoded RSA key admin tokens are verified with
		JWTPublicKey string `env:"HTTP_JWT_PUBLIC_KEY" yaml:"jwtPublicKey"`
	} `yaml:"http"`

	// JWT contains token signing settings used by the jwt command
	JWT struct {
		// PrivateKey is the PEM encoded RSA key admin tokens are signed with
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"numberbot" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Telemetry contains tracing settings
	Telemetry struct {
		// OTLPEndpoint is the OTLP/HTTP collector URL. Tracing is disabled when empty.
		OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" yaml:"otlpEndpoint"`
		// ServiceName is reported as the service.name resource attribute
		ServiceName string `env:"OTEL_SERVICE_NAME" env-default:"numberbot" yaml:"serviceName"`
	} `yaml:"telemetry"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// Variables from a .env file in the working directory are loaded first. When
// the yaml file does not exist, configuration is read from the environment only.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not read .env file: %w", err)
	}

	var cfg Config
	var err error
	if _, statErr := os.Stat(configPath); errors.Is(statErr, fs.ErrNotExist) {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(configPath, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks settings the bot cannot start without.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	return nil
}

// Channels returns the required channels: the yaml list followed by every id
// in ForceSubChannels that is not already listed. Ids coming from the
// environment are named "Channel N" by their position.
func (c *Config) Channels() []domain.Channel {
	out := make([]domain.Channel, 0, len(c.ChannelList))
	seen := make(map[string]struct{}, len(c.ChannelList))

	for _, ch := range c.ChannelList {
		ch.ID = strings.TrimSpace(ch.ID)
		if ch.ID == "" {
			continue
		}
		if ch.Name == "" {
			ch.Name = ch.ID
		}

		seen[ch.ID] = struct{}{}
		out = append(out, ch)
	}

	n := 0
	for _, id := range strings.Split(c.ForceSubChannels, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		n++
		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		out = append(out, domain.Channel{ID: id, Name: fmt.Sprintf("Channel %d", n)})
	}

	return out
}

// Location returns the time zone day keys are computed in.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Phone.Timezone)
	if err != nil {
		return nil, fmt.Errorf("could not load timezone %q: %w", c.Phone.Timezone, err)
	}

	return loc, nil
}
