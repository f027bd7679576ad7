package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for the portfolio server.
// Values come from an optional YAML file; environment variables (including
// those loaded from .env) always win.
type Config struct {
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:""`
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	Mode     string `yaml:"mode" env:"GIN_MODE" env-default:"release"`
	Version  string `yaml:"-"`

	// SessionSecret signs the theme cookie. A random one is generated
	// when unset, which resets every visitor's theme on restart.
	SessionSecret string `yaml:"-" env:"SESSION_SECRET"`
	SecureCookies bool   `yaml:"secure_cookies" env:"SECURE_COOKIES" env-default:"false"`
	// RememberTheme renders the page in the theme held by the session
	// cookie. Off by default: every full load starts dark.
	RememberTheme bool `yaml:"remember_theme" env:"REMEMBER_THEME" env-default:"false"`

	Assets AssetConfig `yaml:"assets"`
	Visits VisitConfig `yaml:"visits"`
}

// AssetConfig locates files served next to the page.
type AssetConfig struct {
	Dir          string `yaml:"dir" env:"ASSET_DIR" env-default:"./public"`
	ResumePath   string `yaml:"resume_path" env:"RESUME_PATH" env-default:"/resume.pdf"`
	ProfileImage string `yaml:"profile_image" env:"PROFILE_IMAGE" env-default:"/my.png"`
}

// VisitConfig controls privacy-conscious visit counting.
type VisitConfig struct {
	// DBPath is the sqlite file. Empty disables tracking.
	DBPath        string `yaml:"db_path" env:"VISITS_DB" env-default:""`
	RetentionDays int    `yaml:"retention_days" env:"VISIT_RETENTION_DAYS" env-default:"365"`
	// AdminToken guards the stats endpoint. Generated at startup when empty.
	AdminToken string `yaml:"-" env:"ADMIN_TOKEN"`
}

// Enabled reports whether visits are recorded.
func (v VisitConfig) Enabled() bool { return v.DBPath != "" }

// Load reads path (if it exists) and then the environment.
func Load(path, version string) (*Config, error) {
	cfg := &Config{Version: version}

	var err error
	if _, statErr := os.Stat(path); path != "" && statErr == nil {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("mode must be debug, release or test, got %q", c.Mode)
	}
	if c.Port == "" {
		return errors.New("port is required")
	}
	if c.Visits.RetentionDays < 1 {
		return fmt.Errorf("visit retention must be at least one day, got %d", c.Visits.RetentionDays)
	}
	for name, p := range map[string]string{"resume_path": c.Assets.ResumePath, "profile_image": c.Assets.ProfileImage} {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("%s must be site-root relative, got %q", name, p)
		}
	}
	return nil
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return c.BindAddr + ":" + c.Port
}
