package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/passport-scorer/scorer-ui/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "scorer-ui.json"

	// DefaultPort is the default server port.
	DefaultPort = 8080

	// DefaultHost is the default server host.
	DefaultHost = "0.0.0.0"

	// DefaultStaticPrefix is the URL prefix the icons are served under.
	DefaultStaticPrefix = "/assets/"

	// DefaultShutdownTimeout bounds graceful shutdown.
	DefaultShutdownTimeout = "10s"

	// DefaultPublishPrefix is the key prefix used by publish.
	DefaultPublishPrefix = "footer/"

	// DefaultRegion is the S3 region used when none is configured.
	DefaultRegion = "us-east-1"
)

// Config represents the complete scorer-ui.json configuration.
type Config struct {
	// Server contains HTTP server settings.
	Server ServerConfig `json:"server,omitempty"`

	// Static contains static asset settings.
	Static StaticConfig `json:"static,omitempty"`

	// Footer contains footer render settings.
	Footer FooterConfig `json:"footer,omitempty"`

	// Metrics contains Prometheus settings.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// Log contains logging settings.
	Log LogConfig `json:"log,omitempty"`

	// Publish contains S3 publishing settings.
	Publish PublishConfig `json:"publish,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `json:"host,omitempty"`
	Port int    `json:"port,omitempty"`

	// ShutdownTimeout is how long in-flight requests may take once the
	// server is asked to stop (e.g., "10s").
	ShutdownTimeout string `json:"shutdownTimeout,omitempty"`
}

// StaticConfig contains static asset settings.
type StaticConfig struct {
	// Prefix is the URL prefix for the icon assets.
	Prefix string `json:"prefix,omitempty"`

	// Manifest is an optional path to a fingerprint manifest.json.
	Manifest string `json:"manifest,omitempty"`

	// MaxAge is the Cache-Control max-age in seconds.
	MaxAge int `json:"maxAge,omitempty"`
}

// FooterConfig contains footer render settings.
type FooterConfig struct {
	// CommitHash is the git commit linked from the footer.
	CommitHash string `json:"commitHash,omitempty"`

	// DefaultMode is used when a request does not ask for a mode.
	DefaultMode string `json:"defaultMode,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled"`
	Path      string `json:"path,omitempty"`
	Namespace string `json:"namespace,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty"`

	// Format is "text" or "json".
	Format string `json:"format,omitempty"`
}

// PublishConfig contains S3 publishing settings.
type PublishConfig struct {
	Bucket   string `json:"bucket,omitempty"`
	Prefix   string `json:"prefix,omitempty"`
	Region   string `json:"region,omitempty"`
	Endpoint string `json:"endpoint,omitempty"`

	// PathStyle addresses the bucket in the URL path, as S3-compatible
	// stores such as MinIO require.
	PathStyle bool `json:"pathStyle,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	cfg := &Config{
		Metrics: MetricsConfig{Enabled: true},
	}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from the specified directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E100").
				WithDetail("No " + filepath.Base(path) + " found in " + filepath.Dir(path)).
				WithSuggestion("Create " + ConfigFileName + " or run without --config to use defaults")
		}
		return nil, errors.New("E101").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E101").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that " + filepath.Base(path) + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E101").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New("E101").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// ApplyEnv overrides configuration values from the environment. getenv is
// usually os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("SCORER_UI_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := getenv("SCORER_UI_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.New("E102").
				WithDetail("SCORER_UI_PORT=" + v + " is not a number").
				Wrap(err)
		}
		c.Server.Port = port
	}
	if v := getenv("GIT_COMMIT_HASH"); v != "" {
		c.Footer.CommitHash = v
	}
	if v := getenv("SCORER_UI_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := getenv("SCORER_UI_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := getenv("SCORER_UI_ASSET_MANIFEST"); v != "" {
		c.Static.Manifest = v
	}
	if v := getenv("SCORER_UI_S3_BUCKET"); v != "" {
		c.Publish.Bucket = v
	}
	if v := getenv("SCORER_UI_S3_REGION"); v != "" {
		c.Publish.Region = v
	}
	if v := getenv("SCORER_UI_S3_ENDPOINT"); v != "" {
		c.Publish.Endpoint = v
	}
	return nil
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if c.Static.Prefix == "" {
		c.Static.Prefix = DefaultStaticPrefix
	}
	if c.Static.MaxAge == 0 {
		c.Static.MaxAge = 86400
	}

	if c.Footer.DefaultMode == "" {
		c.Footer.DefaultMode = "light"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = "scorer_ui"
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	if c.Publish.Prefix == "" {
		c.Publish.Prefix = DefaultPublishPrefix
	}
	if c.Publish.Region == "" {
		c.Publish.Region = DefaultRegion
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E102").
			WithDetail("Port " + strconv.Itoa(c.Server.Port) + " is out of range")
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("E103").
			WithDetail("Unknown log level " + strconv.Quote(c.Log.Level))
	}

	if !strings.HasPrefix(c.Static.Prefix, "/") || !strings.HasSuffix(c.Static.Prefix, "/") {
		return errors.New("E105").
			WithDetail("Static prefix " + strconv.Quote(c.Static.Prefix) + " must look like /assets/")
	}

	if _, err := time.ParseDuration(c.Server.ShutdownTimeout); err != nil {
		return errors.New("E101").
			WithDetail("Invalid server.shutdownTimeout " + strconv.Quote(c.Server.ShutdownTimeout)).
			Wrap(err)
	}

	return nil
}

// Address returns the listen address for the server.
func (c *Config) Address() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// ShutdownTimeout returns the parsed shutdown timeout, falling back to the
// default on an invalid value.
func (c *Config) ShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil {
		d, _ = time.ParseDuration(DefaultShutdownTimeout)
	}
	return d
}
