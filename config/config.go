package config

import (
	"errors"
	"fmt"
	"houseprojects/common"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultConfigFile = "houseprojects.toml"

	EnvAddress        = "HOUSEPROJECTS_ADDRESS"
	EnvBasePath       = "HOUSEPROJECTS_BASE_PATH"
	EnvDataDir        = "HOUSEPROJECTS_DATA_DIR"
	EnvMachineID      = "HOUSEPROJECTS_MACHINE_ID"
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
	EnvLogFile        = "LOG_FILE"
	EnvTracingEnabled = "TRACING_ENABLED"
)

// Duration reads "60s" style strings.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type Config struct {
	Server  ServerConfig     `toml:"server"`
	Storage StorageConfig    `toml:"storage"`
	Log     common.LogConfig `toml:"log"`
	Display DisplayConfig    `toml:"display"`
	Tracing TracingConfig    `toml:"tracing"`
	IDGen   IDGenConfig      `toml:"idgen"`
}

type ServerConfig struct {
	Address         string   `toml:"address"`
	BasePath        string   `toml:"base_path"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

type StorageConfig struct {
	DataDir string `toml:"data_dir"`
}

type DisplayConfig struct {
	UpdateInterval  Duration `toml:"update_interval"`
	ClientTTL       Duration `toml:"client_ttl"`
	RefreshInterval Duration `toml:"refresh_interval"`
	Title           string   `toml:"title"`
}

type TracingConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
}

type IDGenConfig struct {
	MachineID uint16 `toml:"machine_id"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Address:         ":8080",
			BasePath:        "/MMM-HouseProjects/api",
			ShutdownTimeout: Duration{5 * time.Second},
		},
		Storage: StorageConfig{DataDir: "./data"},
		Log: common.LogConfig{
			Level:      "info",
			Format:     "json",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Display: DisplayConfig{
			UpdateInterval:  Duration{60 * time.Second},
			ClientTTL:       Duration{3 * time.Minute},
			RefreshInterval: Duration{time.Second},
			Title:           "House Projects",
		},
		Tracing: TracingConfig{ServiceName: common.ServiceName},
		IDGen:   IDGenConfig{MachineID: 1},
	}
}

// Load reads path over the defaults, then applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Display.UpdateInterval.Duration <= 0 {
		return fmt.Errorf("display.update_interval must be positive, got %s", cfg.Display.UpdateInterval)
	}
	if cfg.Display.ClientTTL.Duration < 0 || cfg.Display.RefreshInterval.Duration < 0 {
		return errors.New("display.client_ttl and display.refresh_interval must not be negative")
	}
	return nil
}

func applyEnv(cfg *Config) error {
	overrideString(EnvAddress, &cfg.Server.Address)
	overrideString(EnvBasePath, &cfg.Server.BasePath)
	overrideString(EnvDataDir, &cfg.Storage.DataDir)
	overrideString(EnvLogLevel, &cfg.Log.Level)
	overrideString(EnvLogFormat, &cfg.Log.Format)
	overrideString(EnvLogFile, &cfg.Log.File)

	if v, ok := os.LookupEnv(EnvMachineID); ok && v != "" {
		id, err := strconv.ParseUint(v, 10, 16)
		if err != nil {
			return fmt.Errorf("invalid %s '%s': %w", EnvMachineID, v, err)
		}
		cfg.IDGen.MachineID = uint16(id)
	}
	if v, ok := os.LookupEnv(EnvTracingEnabled); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s '%s': %w", EnvTracingEnabled, v, err)
		}
		cfg.Tracing.Enabled = enabled
	}
	return nil
}

func overrideString(key string, target *string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*target = v
	}
}
