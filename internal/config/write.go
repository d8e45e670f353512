package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/llehouerou/drawer/internal/position"
)

// Default returns the configuration with every default spelled out.
func Default() *Config {
	c := &Config{}
	c.Sheet = c.GetSheetConfig()
	c.Gesture = c.GetGestureConfig()
	c.Animation = c.GetAnimationConfig()
	for _, p := range position.DefaultSet().Sorted() {
		c.Sheet.Positions = append(c.Sheet.Positions, FormatPosition(p))
	}
	c.Sheet.Title = "Drawer"
	c.positions = position.DefaultSet()
	return c
}

// FormatPosition renders p the way sheet.positions expects it.
func FormatPosition(p position.Position) string {
	return fmt.Sprintf("%s:%g", p.Category, p.Fraction)
}

// Marshal encodes the configuration as TOML.
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// WriteDefault writes the default configuration to path, creating parent
// directories. An existing file is left untouched and reported as an error.
func WriteDefault(path string) error {
	data, err := Default().Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
