// internal/configfile/file_test.go
package configfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/tamzrod/flysight-configurator/internal/config"
)

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config"+Ext)
	cfg := populated()

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() err=%v", err)
	}

	got, err := Load(path, cfg.DisplayUnits)
	if err != nil {
		t.Fatalf("Load() err=%v", err)
	}
	if !config.Equal(got, cfg) {
		t.Fatalf("loaded config differs:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestSave_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.txt")
	if err := os.WriteFile(path, []byte("Rate: 1\nthis file is much longer than any config could ever be\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default(config.Metric)
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() err=%v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != Encode(cfg) {
		t.Fatalf("file content is not the encoded configuration")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"), config.Metric)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestSave_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "config.txt")
	if err := Save(path, config.Default(config.Metric)); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
