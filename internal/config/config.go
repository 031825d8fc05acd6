package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jask/valentine/internal/evasion"
)

// Config holds application configuration.
type Config struct {
	Evasion EvasionConfig `mapstructure:"evasion"`
	UI      UIConfig      `mapstructure:"ui"`
	Log     LogConfig     `mapstructure:"log"`

	// Path is the config file that was consulted, whether or not it existed.
	Path string `mapstructure:"-"`
}

// EvasionConfig holds controller tuning in terminal cells.
type EvasionConfig struct {
	Padding     float64 `mapstructure:"padding"`
	Gap         float64 `mapstructure:"gap"`
	MaxAttempts int     `mapstructure:"max_attempts"`
	Threshold   float64 `mapstructure:"threshold"`
	Placement   string  `mapstructure:"placement"`
	Seed        uint64  `mapstructure:"seed"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	BurstDuration time.Duration `mapstructure:"burst_duration"`
	Burst         string        `mapstructure:"burst"`
	Message       string        `mapstructure:"message"`
	Footer        string        `mapstructure:"footer"`
}

// LogConfig holds logger settings. An empty File discards logs.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

const envPrefix = "VALENTINE"

// Defaults returns the built-in configuration.
func Defaults() Config {
	p := evasion.DefaultParams()
	return Config{
		Evasion: EvasionConfig{
			Padding:     p.Padding,
			Gap:         p.Gap,
			MaxAttempts: p.MaxAttempts,
			Threshold:   p.Threshold,
			Placement:   string(p.Placement),
		},
		UI: UIConfig{
			BurstDuration: 2200 * time.Millisecond,
			Burst:         "💘 💞 💝 💖 💗",
			Message:       "YAY. Okay now you're officially stuck with me.",
			Footer:        "Made with love for my Pookie.",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/valentine/config.toml or the platform
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "valentine", "config.toml"), nil
}

// Load reads configuration from flags, env, file and defaults, in that order
// of precedence. Env var overrides use prefix VALENTINE_.
func Load(args []string) (Config, error) {
	fs := pflag.NewFlagSet("valentine", pflag.ContinueOnError)
	cfgFile := fs.String("config", "", "path to config file")
	fs.String("log-file", "", "write logs to this file")
	fs.String("log-level", "", "log level (debug|info|warn|error)")
	fs.Uint64("seed", 0, "random seed for button placement (0 = random)")
	fs.String("placement", "", "initial placement policy (aligned|fixed)")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	v := viper.New()
	setDefaults(v, Defaults())

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for key, flag := range map[string]string{
		"log.file":          "log-file",
		"log.level":         "log-level",
		"evasion.seed":      "seed",
		"evasion.placement": "placement",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return Config{}, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	path := *cfgFile
	if path == "" {
		path = os.Getenv(envPrefix + "_CONFIG")
	}
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}
	v.SetConfigType("toml")
	v.SetConfigFile(path)

	// a missing file is fine; a malformed one is not
	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Path = path
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("evasion.padding", d.Evasion.Padding)
	v.SetDefault("evasion.gap", d.Evasion.Gap)
	v.SetDefault("evasion.max_attempts", d.Evasion.MaxAttempts)
	v.SetDefault("evasion.threshold", d.Evasion.Threshold)
	v.SetDefault("evasion.placement", d.Evasion.Placement)
	v.SetDefault("evasion.seed", d.Evasion.Seed)
	v.SetDefault("ui.burst_duration", d.UI.BurstDuration)
	v.SetDefault("ui.burst", d.UI.Burst)
	v.SetDefault("ui.message", d.UI.Message)
	v.SetDefault("ui.footer", d.UI.Footer)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.file", d.Log.File)
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

// Params converts the evasion section into controller parameters.
func (c Config) Params() evasion.Params {
	return evasion.Params{
		Padding:     c.Evasion.Padding,
		Gap:         c.Evasion.Gap,
		MaxAttempts: c.Evasion.MaxAttempts,
		Threshold:   c.Evasion.Threshold,
		Placement:   evasion.Placement(strings.ToLower(strings.TrimSpace(c.Evasion.Placement))),
	}
}

// Validate checks values that would otherwise surface as odd UI behaviour.
func (c Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("config %s: %w", c.Path, err)
	}
	if c.UI.BurstDuration <= 0 {
		return fmt.Errorf("config %s: ui.burst_duration must be positive, got %s", c.Path, c.UI.BurstDuration)
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("config %s: log.format must be json or text, got %q", c.Path, c.Log.Format)
	}
	return nil
}

// fileConfig mirrors Config for the TOML file written by WriteDefault.
type fileConfig struct {
	Evasion struct {
		Padding     float64 `toml:"padding"`
		Gap         float64 `toml:"gap"`
		MaxAttempts int     `toml:"max_attempts"`
		Threshold   float64 `toml:"threshold"`
		Placement   string  `toml:"placement"`
		Seed        uint64  `toml:"seed"`
	} `toml:"evasion"`
	UI struct {
		BurstDuration string `toml:"burst_duration"`
		Burst         string `toml:"burst"`
		Message       string `toml:"message"`
		Footer        string `toml:"footer"`
	} `toml:"ui"`
	Log struct {
		Level  string `toml:"level"`
		Format string `toml:"format"`
		File   string `toml:"file"`
	} `toml:"log"`
}

const fileHeader = `# valentine configuration
# Distances are in terminal cells. Env vars override with prefix VALENTINE_,
# e.g. VALENTINE_EVASION_THRESHOLD=10.

`

// WriteDefault writes cfg to path as TOML unless a file already exists there.
// It reports whether a file was written.
func WriteDefault(path string, cfg Config) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("mkdir config dir: %w", err)
	}

	var fc fileConfig
	fc.Evasion.Padding = cfg.Evasion.Padding
	fc.Evasion.Gap = cfg.Evasion.Gap
	fc.Evasion.MaxAttempts = cfg.Evasion.MaxAttempts
	fc.Evasion.Threshold = cfg.Evasion.Threshold
	fc.Evasion.Placement = cfg.Evasion.Placement
	fc.Evasion.Seed = cfg.Evasion.Seed
	fc.UI.BurstDuration = cfg.UI.BurstDuration.String()
	fc.UI.Burst = cfg.UI.Burst
	fc.UI.Message = cfg.UI.Message
	fc.UI.Footer = cfg.UI.Footer
	fc.Log.Level = cfg.Log.Level
	fc.Log.Format = cfg.Log.Format
	fc.Log.File = cfg.Log.File

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return false, fmt.Errorf("create config: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(fileHeader); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(fc); err != nil {
		return false, fmt.Errorf("encode config: %w", err)
	}
	return true, nil
}
