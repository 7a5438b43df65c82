package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/vango-dev/vangoui/internal/errors"
	"github.com/vango-dev/vangoui/pkg/toast"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "vangoui.json"

	// EnvFileName is loaded next to the config file when present.
	EnvFileName = ".env"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "VANGOUI_"

	DefaultPort       = 6006
	DefaultHost       = "localhost"
	DefaultCacheSize  = 128
	DefaultExportDir  = "dist/stories"
	DefaultToastDelay = "5s"
	DefaultToastLimit = 5
)

// Config represents the complete vangoui.json configuration.
type Config struct {
	// Name is shown in the gallery header.
	Name string `json:"name,omitempty"`

	Gallery GalleryConfig `json:"gallery"`
	Export  ExportConfig  `json:"export"`
	Stories StoriesConfig `json:"stories"`
	Toast   ToastConfig   `json:"toast"`

	configPath string
}

// GalleryConfig configures the gallery server.
type GalleryConfig struct {
	Port int    `json:"port" validate:"min=1,max=65535"`
	Host string `json:"host" validate:"required,hostname_rfc1123|ip"`

	// CacheSize bounds the rendered story cache. Zero disables caching.
	CacheSize int `json:"cacheSize" validate:"min=0,max=100000"`

	// Metrics exposes /metrics.
	Metrics bool `json:"metrics"`

	// Tracing wraps requests and live events in OpenTelemetry spans.
	Tracing bool `json:"tracing"`

	// ShutdownTimeout is a Go duration string, e.g. "10s".
	ShutdownTimeout string `json:"shutdownTimeout,omitempty" validate:"omitempty,duration"`

	// AllowedOrigins restricts websocket upgrades. Empty allows same-origin only.
	AllowedOrigins []string `json:"allowedOrigins,omitempty" validate:"dive,required"`
}

// ExportConfig configures the static exporter.
type ExportConfig struct {
	// Target is a directory path or an s3://bucket/prefix URL.
	Target string `json:"target" validate:"required"`

	// Region is used for S3 targets.
	Region string `json:"region,omitempty"`

	// Pretty indents the exported HTML.
	Pretty bool `json:"pretty,omitempty"`
}

// StoriesConfig points at the story catalog.
type StoriesConfig struct {
	// Catalog is a path to a stories.yaml file. Empty uses the embedded catalog.
	Catalog string `json:"catalog,omitempty"`
}

// ToastConfig holds defaults applied to toasts pushed by stories and the preview.
type ToastConfig struct {
	Delay    string `json:"delay" validate:"required,duration"`
	Limit    int    `json:"limit" validate:"min=0,max=100"`
	Position string `json:"position" validate:"omitempty,oneof=top-left top-center top-right bottom-left bottom-center bottom-right"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Name: "VangoUI",
		Gallery: GalleryConfig{
			Port:            DefaultPort,
			Host:            DefaultHost,
			CacheSize:       DefaultCacheSize,
			Metrics:         true,
			ShutdownTimeout: "10s",
		},
		Export: ExportConfig{
			Target: DefaultExportDir,
		},
		Toast: ToastConfig{
			Delay:    DefaultToastDelay,
			Limit:    DefaultToastLimit,
			Position: string(toast.TopRight),
		},
	}
}

// Load reads configuration from vangoui.json in the given directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path. The .env file
// beside it is loaded first so that VANGOUI_* overrides can come from it.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E100").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				WithSuggestion("Run 'vangoui init' or create " + ConfigFileName + " manually")
		}
		return nil, errors.New("E101").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E101").
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}
	cfg.configPath = path
	cfg.applyDefaults()

	if err := LoadEnv(filepath.Dir(path)); err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but falls back to defaults when the
// directory has no config file. Environment overrides still apply.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if err == nil {
		return cfg, nil
	}
	if !errors.HasCode(err, "E100") {
		return nil, err
	}

	cfg = New()
	if err := LoadEnv(dir); err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnv loads dir/.env into the process environment. Variables that are
// already set win. A missing file is not an error.
func LoadEnv(dir string) error {
	path := filepath.Join(dir, EnvFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.New("E103").WithDetail("Failed to load " + path).Wrap(err)
	}
	return nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E101").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E101").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file, or "." if the
// config was not loaded from disk.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return "."
	}
	return filepath.Dir(c.configPath)
}

func (c *Config) applyDefaults() {
	def := New()
	if c.Gallery.Port == 0 {
		c.Gallery.Port = def.Gallery.Port
	}
	if c.Gallery.Host == "" {
		c.Gallery.Host = def.Gallery.Host
	}
	if c.Gallery.ShutdownTimeout == "" {
		c.Gallery.ShutdownTimeout = def.Gallery.ShutdownTimeout
	}
	if c.Export.Target == "" {
		c.Export.Target = def.Export.Target
	}
	if c.Toast.Delay == "" {
		c.Toast.Delay = def.Toast.Delay
	}
	if c.Toast.Position == "" {
		c.Toast.Position = def.Toast.Position
	}
}

// ApplyEnv overrides settings from VANGOUI_* variables. lookup is usually
// os.LookupEnv; tests pass a map-backed function. Malformed numbers are
// ignored so that Validate reports the effective value.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	num := func(name string, dst *int) {
		if v, ok := lookup(EnvPrefix + name); ok {
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				*dst = n
			}
		}
	}
	flag := func(name string, dst *bool) {
		if v, ok := lookup(EnvPrefix + name); ok {
			if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
				*dst = b
			}
		}
	}

	num("PORT", &c.Gallery.Port)
	str("HOST", &c.Gallery.Host)
	num("CACHE_SIZE", &c.Gallery.CacheSize)
	flag("METRICS", &c.Gallery.Metrics)
	flag("TRACING", &c.Gallery.Tracing)
	str("EXPORT_TARGET", &c.Export.Target)
	str("EXPORT_REGION", &c.Export.Region)
	str("STORIES", &c.Stories.Catalog)
	str("TOAST_DELAY", &c.Toast.Delay)
	num("TOAST_LIMIT", &c.Toast.Limit)
	str("TOAST_POSITION", &c.Toast.Position)
}

// Address returns host:port for the gallery listener.
func (c *Config) Address() string {
	return c.Gallery.Host + ":" + strconv.Itoa(c.Gallery.Port)
}

// URL returns the gallery base URL.
func (c *Config) URL() string {
	return "http://" + c.Address()
}

// ShutdownTimeout parses Gallery.ShutdownTimeout, falling back to 10s.
func (c *Config) ShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.Gallery.ShutdownTimeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// CatalogPath resolves Stories.Catalog relative to the config directory.
// It returns "" when the embedded catalog should be used.
func (c *Config) CatalogPath() string {
	if c.Stories.Catalog == "" {
		return ""
	}
	if filepath.IsAbs(c.Stories.Catalog) {
		return c.Stories.Catalog
	}
	return filepath.Join(c.Dir(), c.Stories.Catalog)
}

// ToastOptions converts the toast section into options for toast.New. The
// delay applies only to toasts that enable auto-close.
func (c *Config) ToastOptions() []toast.Option {
	opts := make([]toast.Option, 0, 2)
	if d, err := time.ParseDuration(c.Toast.Delay); err == nil {
		opts = append(opts, toast.WithDelay(d))
	}
	if p, err := toast.ParsePosition(c.Toast.Position); err == nil {
		opts = append(opts, toast.WithPosition(p))
	}
	return opts
}

// ToasterOptions returns the toaster settings derived from the toast section.
func (c *Config) ToasterOptions() []toast.ToasterOption {
	return []toast.ToasterOption{
		toast.WithDefaults(c.ToastOptions()...),
		toast.WithLimit(c.Toast.Limit),
	}
}

// Exists checks if a vangoui.json exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the directory containing
// vangoui.json.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E100").
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the nearest project root, or
// defaults when there is none.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return LoadOrDefault(wd)
	}
	return Load(root)
}
