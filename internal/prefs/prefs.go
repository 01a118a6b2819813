// internal/prefs/prefs.go
package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tamzrod/flysight-configurator/internal/config"
)

// FileName is the preference file inside the per-user config directory.
const FileName = "prefs.yaml"

// Prefs are editor preferences: they survive between runs but are never
// part of a device file.
type Prefs struct {
	Units  string `yaml:"units"`  // "metric" or "imperial"
	Folder string `yaml:"folder"` // folder of the last file read or written
}

// Default returns metric units and no remembered folder.
func Default() *Prefs {
	return &Prefs{Units: config.Metric.String()}
}

// DefaultPath is <user config dir>/flysight-configurator/prefs.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}
	return filepath.Join(dir, "flysight-configurator", FileName), nil
}

// Load reads preferences from path. A missing file yields defaults.
func Load(path string) (*Prefs, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read prefs %s: %w", path, err)
	}

	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse prefs %s: %w", path, err)
	}
	return p, nil
}

// Save writes preferences to path, creating its directory.
func (p *Prefs) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write prefs %s: %w", path, err)
	}
	return nil
}

// DisplayUnits returns the stored units, metric when unset or unknown.
func (p *Prefs) DisplayUnits() config.DisplayUnits {
	u, _ := config.ParseDisplayUnits(p.Units)
	return u
}

// SetDisplayUnits stores u.
func (p *Prefs) SetDisplayUnits(u config.DisplayUnits) {
	p.Units = u.String()
}

// Remember records the folder of a file that was just read or written.
func (p *Prefs) Remember(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	p.Folder = filepath.Dir(abs)
}
