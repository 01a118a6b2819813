// internal/session/session.go
package session

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/tamzrod/flysight-configurator/internal/config"
	"github.com/tamzrod/flysight-configurator/internal/configfile"
)

// DefaultName is shown for a document that was never saved.
const DefaultName = "config" + configfile.Ext

// ErrNoPath is returned by Save when the document has no file yet.
var ErrNoPath = errors.New("session: document has no file path, use SaveAs")

// FolderRecorder remembers where the last file was read or written.
type FolderRecorder interface {
	Remember(path string)
}

// Option configures a Document.
type Option func(*Document)

// WithLogger sets the logger used for open/save events.
func WithLogger(log zerolog.Logger) Option {
	return func(d *Document) { d.log = log }
}

// WithFolderRecorder sets the collaborator notified after each read or write.
func WithFolderRecorder(r FolderRecorder) Option {
	return func(d *Document) { d.folders = r }
}

// Document is one open configuration and its file.
// The Document exclusively owns Config; callers mutate it in place.
type Document struct {
	Config config.Config
	Path   string

	saved   config.Config
	log     zerolog.Logger
	folders FolderRecorder
}

// New returns an unsaved document with default settings.
func New(units config.DisplayUnits, opts ...Option) *Document {
	d := &Document{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(d)
	}
	d.setCurrent("", config.Default(units))
	return d
}

// Reset replaces the document with defaults, keeping the display units.
func (d *Document) Reset() {
	d.setCurrent("", config.Default(d.Config.DisplayUnits))
}

// Open loads path into the document, keeping the display units.
// On error nothing is changed.
func (d *Document) Open(path string) error {
	cfg, err := configfile.Load(path, d.Config.DisplayUnits)
	if err != nil {
		d.log.Debug().Err(err).Str("path", path).Msg("open failed")
		return err
	}

	d.remember(path)
	d.setCurrent(path, cfg)

	d.log.Debug().Str("path", path).
		Int("speeches", len(cfg.Speeches)).
		Int("alarms", len(cfg.Alarms)).
		Int("windows", len(cfg.Windows)).
		Msg("configuration opened")
	return nil
}

// Save writes the document to its current path.
func (d *Document) Save() error {
	if d.Path == "" {
		return ErrNoPath
	}
	return d.SaveAs(d.Path)
}

// SaveAs writes the document to path and makes path current.
func (d *Document) SaveAs(path string) error {
	if err := configfile.Save(path, d.Config); err != nil {
		d.log.Debug().Err(err).Str("path", path).Msg("save failed")
		return err
	}

	d.remember(path)
	d.setCurrent(path, d.Config)

	d.log.Debug().Str("path", path).Msg("configuration saved")
	return nil
}

// Modified reports unsaved changes.
// DisplayUnits takes part in the comparison, so switching units alone
// marks the document modified.
func (d *Document) Modified() bool {
	return !config.Equal(d.Config, d.saved)
}

// SetUnits switches the display units used for editing.
func (d *Document) SetUnits(u config.DisplayUnits) {
	d.Config.DisplayUnits = u
}

// DisplayName is the file path, or DefaultName for an unsaved document.
func (d *Document) DisplayName() string {
	if d.Path == "" {
		return DefaultName
	}
	return d.Path
}

func (d *Document) setCurrent(path string, cfg config.Config) {
	d.Path = path
	d.Config = cfg
	d.saved = cfg.Clone()
}

func (d *Document) remember(path string) {
	if d.folders != nil {
		d.folders.Remember(path)
	}
}
