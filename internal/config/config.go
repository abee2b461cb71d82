package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/pick/pkg/selector"
)

// Flags holds the values of command-line flags relevant to config
// merging, plus whether each was explicitly set by the user.
type Flags struct {
	MinMentions int
	Winners     int
	HighVolume  int
	Seed        int64
	ThemeName   string
	NoColor     bool
	CI          bool

	MinMentionsSet bool
	WinnersSet     bool
	HighVolumeSet  bool
	SeedSet        bool
	NoColorSet     bool
	CISet          bool
}

// AppConfig is the application configuration from .pick.yaml.
type AppConfig struct {
	MinMentions int    `yaml:"min_mentions"`
	Winners     int    `yaml:"winners"`
	HighVolume  int    `yaml:"high_volume_threshold"`
	Seed        *int64 `yaml:"seed,omitempty"`
	Theme       string `yaml:"theme"`
	NoColor     bool   `yaml:"no_color"`
	CI          bool   `yaml:"ci"`

	// SeedExplicit records whether a seed came from YAML, env, or a
	// flag. Without one, the CLI derives a seed and reports it.
	SeedExplicit bool  `yaml:"-"`
	SeedValue    int64 `yaml:"-"`
}

// DefaultTheme is used when no theme is configured anywhere.
const DefaultTheme = "default"

// Load reads .pick.yaml (local directory first, then the user config
// dir) on top of hardcoded defaults. A missing file is not an error.
func Load() *AppConfig {
	cfg := &AppConfig{
		MinMentions: selector.DefaultMinMentions,
		Winners:     selector.DefaultWinners,
		HighVolume:  selector.DefaultHighVolume,
		Theme:       DefaultTheme,
	}

	path := configPath()
	if path == "" {
		return cfg
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v. Using defaults.\n", path, err)
		}
		return cfg
	}

	var fileCfg AppConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error unmarshalling config file %s: %v. Using defaults.\n", path, err)
		return cfg
	}

	if fileCfg.MinMentions > 0 {
		cfg.MinMentions = fileCfg.MinMentions
	}
	if fileCfg.Winners > 0 {
		cfg.Winners = fileCfg.Winners
	}
	if fileCfg.HighVolume > 0 {
		cfg.HighVolume = fileCfg.HighVolume
	}
	if fileCfg.Seed != nil {
		cfg.SeedExplicit = true
		cfg.SeedValue = *fileCfg.Seed
	}
	if fileCfg.Theme != "" {
		cfg.Theme = fileCfg.Theme
	}
	cfg.NoColor = fileCfg.NoColor
	cfg.CI = fileCfg.CI

	return cfg
}

// configPath finds .pick.yaml: local directory first, then the XDG
// user config dir.
func configPath() string {
	local := ".pick.yaml"
	if _, err := os.Stat(local); err == nil {
		return local
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdg := filepath.Join(configHome, "pick", ".pick.yaml")
	if _, err := os.Stat(xdg); err == nil {
		return xdg
	}
	return ""
}

// Merge applies environment variables and then CLI flags on top of the
// loaded configuration, returning the effective configuration.
func Merge(cfg *AppConfig, flags Flags) *AppConfig {
	out := *cfg

	if v := firstEnv("PICK_NO_COLOR", "NO_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			out.NoColor = b
		}
	}
	if v := firstEnv("PICK_CI", "CI"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			out.CI = b
		}
	}

	if flags.MinMentionsSet {
		out.MinMentions = flags.MinMentions
	}
	if flags.WinnersSet {
		out.Winners = flags.Winners
	}
	if flags.HighVolumeSet {
		out.HighVolume = flags.HighVolume
	}
	if flags.SeedSet {
		out.SeedExplicit = true
		out.SeedValue = flags.Seed
	}
	if flags.ThemeName != "" {
		out.Theme = flags.ThemeName
	}
	if flags.NoColorSet {
		out.NoColor = flags.NoColor
	}
	if flags.CISet {
		out.CI = flags.CI
	}

	if out.CI || out.NoColor {
		out.Theme = "mono"
	}
	return &out
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
