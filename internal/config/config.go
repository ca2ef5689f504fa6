package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the console configuration.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Search   SearchConfig   `yaml:"search"`
	Presets  PresetsConfig  `yaml:"presets"`
	Storage  StorageConfig  `yaml:"storage"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// DatabaseConfig holds connection settings of the administered cluster.
type DatabaseConfig struct {
	Addrs            []string `yaml:"addrs"`
	Username         string   `yaml:"username"`
	Password         string   `yaml:"password"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// SearchConfig holds search surface settings.
type SearchConfig struct {
	Cluster           string       `yaml:"cluster"`     // name shown in views and part of every fetch key
	DebounceMS        int          `yaml:"debounce_ms"` // query text debounce
	FetchTimeoutSec   int          `yaml:"fetch_timeout_sec"`
	ResultCacheTTLSec int          `yaml:"result_cache_ttl_sec"` // 0 disables the result cache
	DefaultPerPage    int          `yaml:"default_per_page"`
	MaxFacetValues    int          `yaml:"max_facet_values"`
	MaxSurfaces       int          `yaml:"max_surfaces"`
	Budget            BudgetConfig `yaml:"budget"`
}

// BudgetConfig caps the search commands the console sends to the cluster.
type BudgetConfig struct {
	DailyQueryLimit   int64  `yaml:"daily_query_limit"`   // 0 = unlimited
	MonthlyQueryLimit int64  `yaml:"monthly_query_limit"` // 0 = unlimited
	Action            string `yaml:"action"`              // "reject" | "warn" (default)
	KeyPrefix         string `yaml:"key_prefix"`
}

// Enabled reports whether any limit is set.
func (b BudgetConfig) Enabled() bool {
	return b.DailyQueryLimit > 0 || b.MonthlyQueryLimit > 0
}

// PresetsConfig holds preset storage settings.
type PresetsConfig struct {
	KeyPrefix string `yaml:"key_prefix"`
}

// StorageConfig holds the key layout of the administered cluster.
type StorageConfig struct {
	KeyPrefix string `yaml:"key_prefix"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 30
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Database.ReadinessTimeout <= 0 {
		c.Database.ReadinessTimeout = 10
	}
	if c.Search.Cluster == "" {
		c.Search.Cluster = "default"
	}
	if c.Search.DebounceMS <= 0 {
		c.Search.DebounceMS = 200
	}
	if c.Search.FetchTimeoutSec <= 0 {
		c.Search.FetchTimeoutSec = 5
	}
	if c.Search.DefaultPerPage <= 0 {
		c.Search.DefaultPerPage = 20
	}
	if c.Search.MaxFacetValues <= 0 {
		c.Search.MaxFacetValues = 10
	}
	if c.Search.MaxSurfaces <= 0 {
		c.Search.MaxSurfaces = 64
	}
	if c.Search.Budget.Action == "" {
		c.Search.Budget.Action = "warn"
	}
	if c.Search.Budget.KeyPrefix == "" {
		c.Search.Budget.KeyPrefix = "console:"
	}
	if c.Presets.KeyPrefix == "" {
		c.Presets.KeyPrefix = "console:preset:"
	}
	if c.Storage.KeyPrefix == "" {
		c.Storage.KeyPrefix = "vecdex:"
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if len(c.Database.Addrs) == 0 {
		return fmt.Errorf("database.addrs is required")
	}
	if c.Search.ResultCacheTTLSec < 0 {
		return fmt.Errorf("search.result_cache_ttl_sec must be non-negative, got %d", c.Search.ResultCacheTTLSec)
	}
	if c.Search.DefaultPerPage > 250 {
		return fmt.Errorf("search.default_per_page must be at most 250, got %d", c.Search.DefaultPerPage)
	}
	if c.Search.Budget.DailyQueryLimit < 0 || c.Search.Budget.MonthlyQueryLimit < 0 {
		return fmt.Errorf("search.budget limits must be non-negative")
	}
	switch c.Search.Budget.Action {
	case "warn", "reject":
	default:
		return fmt.Errorf("search.budget.action must be \"warn\" or \"reject\", got %q", c.Search.Budget.Action)
	}
	if c.Presets.KeyPrefix == c.Storage.KeyPrefix {
		return fmt.Errorf("presets.key_prefix must differ from storage.key_prefix")
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
