package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/drawer/internal/position"
)

const (
	appName        = "drawer"
	configFileName = "config.toml"
	localFileName  = "drawer.toml"
)

type Config struct {
	Sheet     SheetConfig     `koanf:"sheet" toml:"sheet"`
	Gesture   GestureConfig   `koanf:"gesture" toml:"gesture"`
	Animation AnimationConfig `koanf:"animation" toml:"animation"`

	// Sources lists the files the configuration was read from, in load order.
	Sources []string `koanf:"-" toml:"-"`

	positions position.Set
}

// SheetConfig holds the sheet layout and behaviour.
type SheetConfig struct {
	Positions    []string `koanf:"positions" toml:"positions"`         // "category:fraction" or a bare fraction
	DragEnabled  *bool    `koanf:"drag_enabled" toml:"drag_enabled"`   // default: true
	TapToExpand  *bool    `koanf:"tap_to_expand" toml:"tap_to_expand"` // default: true
	CornerRadius *int     `koanf:"corner_radius" toml:"corner_radius"` // 0 = square border (default: 1)
	HeaderHeight *int     `koanf:"header_height" toml:"header_height"` // rows (default: 3)
	BottomInset  int      `koanf:"bottom_inset" toml:"bottom_inset"`   // rows kept clear below the sheet
	Title        string   `koanf:"title" toml:"title"`
}

// GestureConfig holds drag tracking and release thresholds.
type GestureConfig struct {
	FlickVelocity    float64 `koanf:"flick_velocity" toml:"flick_velocity"`         // points/s (default: 2000)
	NudgeVelocity    float64 `koanf:"nudge_velocity" toml:"nudge_velocity"`         // points/s (default: 400)
	PointsPerRow     float64 `koanf:"points_per_row" toml:"points_per_row"`         // default: 20
	VelocityWindowMS int     `koanf:"velocity_window_ms" toml:"velocity_window_ms"` // default: 100
}

// AnimationConfig holds settle animation timing.
type AnimationConfig struct {
	MinDurationMS int `koanf:"min_duration_ms" toml:"min_duration_ms"` // default: 300
	MaxDurationMS int `koanf:"max_duration_ms" toml:"max_duration_ms"` // default: 600
	FPS           int `koanf:"fps" toml:"fps"`                         // default: 60
}

// Load reads the configuration. An explicit path is the only file read and
// must exist; otherwise the user config and ./drawer.toml are layered, the
// local file winning.
func Load(explicit string) (*Config, error) {
	var paths []string
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		paths = []string{explicit}
	} else {
		paths = getConfigPaths()
	}

	k := koanf.New(".")
	cfg := &Config{}
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		cfg.Sources = append(cfg.Sources, path)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	set, err := parsePositions(cfg.Sheet.Positions)
	if err != nil {
		return nil, err
	}
	cfg.positions = set
	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/drawer/config.toml, or the first XDG_CONFIG_DIRS match
	if path, err := xdg.SearchConfigFile(filepath.Join(appName, configFileName)); err == nil {
		paths = append(paths, path)
	}

	// 2. ./drawer.toml (pwd, highest priority)
	paths = append(paths, localFileName)

	return paths
}

// DefaultPath is where WriteDefault puts the user configuration.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appName, configFileName)
}

func parsePositions(raw []string) (position.Set, error) {
	if len(raw) == 0 {
		return position.DefaultSet(), nil
	}
	var errs []error
	ps := make([]position.Position, 0, len(raw))
	for _, s := range raw {
		p, err := position.Parse(s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		ps = append(ps, p)
	}
	if err := errors.Join(errs...); err != nil {
		return position.Set{}, fmt.Errorf("sheet.positions: %w", err)
	}
	return position.NewSet(ps...), nil
}

// Positions returns the configured resting points, or the defaults.
func (c *Config) Positions() position.Set {
	if c.positions.IsEmpty() {
		return position.DefaultSet()
	}
	return c.positions
}

// GetSheetConfig returns the sheet configuration with defaults applied.
func (c *Config) GetSheetConfig() SheetConfig {
	cfg := c.Sheet
	if cfg.DragEnabled == nil {
		cfg.DragEnabled = ptr(true)
	}
	if cfg.TapToExpand == nil {
		cfg.TapToExpand = ptr(true)
	}
	if cfg.CornerRadius == nil || *cfg.CornerRadius < 0 {
		cfg.CornerRadius = ptr(1)
	}
	if cfg.HeaderHeight == nil || *cfg.HeaderHeight < 0 {
		cfg.HeaderHeight = ptr(3)
	}
	cfg.BottomInset = max(cfg.BottomInset, 0)
	return cfg
}

// GetGestureConfig returns the gesture configuration with defaults applied.
func (c *Config) GetGestureConfig() GestureConfig {
	cfg := c.Gesture
	if cfg.FlickVelocity <= 0 {
		cfg.FlickVelocity = 2000
	}
	if cfg.NudgeVelocity <= 0 || cfg.NudgeVelocity > cfg.FlickVelocity {
		cfg.NudgeVelocity = min(400, cfg.FlickVelocity)
	}
	if cfg.PointsPerRow <= 0 {
		cfg.PointsPerRow = 20
	}
	if cfg.VelocityWindowMS <= 0 {
		cfg.VelocityWindowMS = 100
	}
	return cfg
}

// GetAnimationConfig returns the animation configuration with defaults applied.
func (c *Config) GetAnimationConfig() AnimationConfig {
	cfg := c.Animation
	if cfg.MinDurationMS <= 0 {
		cfg.MinDurationMS = 300
	}
	if cfg.MaxDurationMS < cfg.MinDurationMS {
		cfg.MaxDurationMS = max(600, cfg.MinDurationMS)
	}
	if cfg.FPS <= 0 || cfg.FPS > 240 {
		cfg.FPS = 60
	}
	return cfg
}

// VelocityWindow returns the velocity estimation window.
func (g GestureConfig) VelocityWindow() time.Duration {
	return time.Duration(g.VelocityWindowMS) * time.Millisecond
}

// MinDuration returns the shortest settle animation.
func (a AnimationConfig) MinDuration() time.Duration {
	return time.Duration(a.MinDurationMS) * time.Millisecond
}

// MaxDuration returns the longest settle animation.
func (a AnimationConfig) MaxDuration() time.Duration {
	return time.Duration(a.MaxDurationMS) * time.Millisecond
}

func ptr[T any](v T) *T {
	return &v
}
