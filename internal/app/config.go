package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"heartnote/internal/flow"
)

// EnvPrefix prefixes every environment override, e.g. HEARTNOTE_NAME.
const EnvPrefix = "HEARTNOTE_"

// Config controls runtime behavior for the greeting.
type Config struct {
	Name        string   `yaml:"name" env:"NAME"`
	Remember    bool     `yaml:"remember" env:"REMEMBER"`
	DataDir     string   `yaml:"data_dir" env:"DATA_DIR"`
	LogPath     string   `yaml:"log_path" env:"LOG_PATH"`
	ContentPath string   `yaml:"content" env:"CONTENT"`
	ASCIIOnly   bool     `yaml:"ascii_only" env:"ASCII_ONLY"`
	Debug       bool     `yaml:"debug" env:"DEBUG"`
	Scenario    string   `yaml:"scenario" env:"SCENARIO"`
	UI          UIConfig `yaml:"ui" envPrefix:"UI_"`
}

type UIConfig struct {
	StyleVariant string `yaml:"style_variant" env:"STYLE"`
	MotionLevel  string `yaml:"motion_level" env:"MOTION"`
	MouseScope   string `yaml:"mouse_scope" env:"MOUSE"`
}

func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			StyleVariant: "rose_garden",
			MotionLevel:  "full",
			MouseScope:   "full",
		},
	}
}

// LoadConfigFile overlays the YAML file at path onto cfg. Keys the file
// leaves out keep their current value.
func LoadConfigFile(path string, cfg *Config) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays HEARTNOTE_* variables onto cfg.
func ApplyEnv(cfg *Config) error {
	return ApplyEnvFrom(nil, cfg)
}

// ApplyEnvFrom is ApplyEnv reading from vars instead of the process
// environment when vars is non-nil.
func ApplyEnvFrom(vars map[string]string, cfg *Config) error {
	opts := env.Options{Prefix: EnvPrefix}
	if vars != nil {
		opts.Environment = vars
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Remember && c.Name == "" {
		return errors.New("--remember needs a name to remember")
	}
	if c.Scenario != "" {
		switch strings.ToLower(strings.TrimSpace(c.Scenario)) {
		case "landing", "interaction", "tap", "question", "question_teased", "teased",
			"note", "note_typing", "finale", "full", "autoplay":
		default:
			if _, ok := flow.ParseScreen(c.Scenario); !ok {
				return fmt.Errorf("invalid scenario %q", c.Scenario)
			}
		}
	}
	switch c.UI.StyleVariant {
	case "", "rose_garden", "midnight", "paper":
	default:
		return fmt.Errorf("invalid ui style variant %q", c.UI.StyleVariant)
	}
	if c.UI.StyleVariant == "" {
		c.UI.StyleVariant = "rose_garden"
	}
	switch c.UI.MotionLevel {
	case "", "off", "reduced", "full":
	default:
		return fmt.Errorf("invalid ui motion level %q", c.UI.MotionLevel)
	}
	if c.UI.MotionLevel == "" {
		c.UI.MotionLevel = "full"
	}
	switch c.UI.MouseScope {
	case "", "off", "full":
	default:
		return fmt.Errorf("invalid ui mouse scope %q", c.UI.MouseScope)
	}
	if c.UI.MouseScope == "" {
		c.UI.MouseScope = "full"
	}

	if c.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return errors.New("cannot resolve user home directory")
		}
		c.DataDir = filepath.Join(home, ".local", "share", "heartnote")
	}

	return nil
}
