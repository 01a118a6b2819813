// internal/configfile/file.go
package configfile

import (
	"fmt"
	"os"

	"github.com/tamzrod/flysight-configurator/internal/config"
)

// Ext is the conventional device file extension.
const Ext = ".txt"

// Load reads and parses a device file.
// On error the returned configuration is the zero value and MUST NOT be used.
func Load(path string, units config.DisplayUnits) (config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(string(data), units), nil
}

// Save encodes cfg and writes it to path, replacing any existing file.
func Save(path string, cfg config.Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(Encode(cfg)); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close config %s: %w", path, err)
	}
	return nil
}
