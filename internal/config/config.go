// internal/config/config.go
package config

import "reflect"

// ---- SEQUENCE CAPS ----

// Entries beyond these caps are dropped when a file is read.
const (
	MaxSpeeches = 10
	MaxAlarms   = 10
	MaxWindows  = 2
)

// Config holds every device setting of one configuration document.
// Pure value: no IO, no shared ownership. Use Clone before handing a copy
// to code that may mutate the sequences.
type Config struct {
	// Presentation only, not written to the device file.
	DisplayUnits DisplayUnits `yaml:"-"`

	// ---- IDENTIFICATION ----

	ConfigName        string `yaml:"config_name"`
	ConfigDescription string `yaml:"config_description"`
	ConfigKind        string `yaml:"config_kind"`

	// ---- GPS ----

	Model Model `yaml:"model"`
	Rate  int   `yaml:"rate"` // measurement interval (ms)

	// ---- TONE ----

	ToneMode   Mode   `yaml:"tone_mode"`
	MinTone    int    `yaml:"min_tone"`
	MaxTone    int    `yaml:"max_tone"`
	Limits     Limits `yaml:"limits"`
	ToneVolume int    `yaml:"tone_volume"` // 0..8

	// ---- RATE ----

	RateMode     Mode `yaml:"rate_mode"`
	MinRateValue int  `yaml:"min_rate_value"`
	MaxRateValue int  `yaml:"max_rate_value"`
	MinRate      int  `yaml:"min_rate"` // Hz * 100
	MaxRate      int  `yaml:"max_rate"` // Hz * 100
	Flatline     bool `yaml:"flatline"`

	// ---- SPEECH ----

	SpeechRate   int      `yaml:"speech_rate"` // seconds, 0 = no speech
	SpeechVolume int      `yaml:"speech_volume"`
	Speeches     []Speech `yaml:"speeches"`

	// ---- THRESHOLDS ----

	VThreshold int `yaml:"v_threshold"` // cm/s
	HThreshold int `yaml:"h_threshold"` // cm/s

	// ---- MISC ----

	AdjustSpeed    bool `yaml:"adjust_speed"`
	TimeZoneOffset int  `yaml:"tz_offset"` // seconds

	// ---- INITIALIZATION ----

	InitMode InitMode `yaml:"init_mode"`
	InitFile string   `yaml:"init_file"` // only meaningful with InitFile mode

	// ---- ALARMS ----

	AlarmWindowAbove int     `yaml:"alarm_window_above"` // m
	AlarmWindowBelow int     `yaml:"alarm_window_below"` // m
	GroundElevation  int     `yaml:"ground_elevation"`   // m above sea level
	Alarms           []Alarm `yaml:"alarms"`

	// ---- ALTITUDE ----

	AltitudeUnits AltitudeUnits `yaml:"altitude_units"`
	AltitudeStep  int           `yaml:"altitude_step"`

	// ---- SILENCE WINDOWS ----

	Windows []Window `yaml:"windows"`
}

// Speech is one spoken announcement.
type Speech struct {
	Mode     Mode  `yaml:"mode"`
	Units    Units `yaml:"units"`
	Decimals int   `yaml:"decimals"` // altitude step in Altitude mode
}

// Alarm is an elevation-triggered one-shot audio event.
// Elevation is in meters above GroundElevation.
type Alarm struct {
	Elevation int       `yaml:"elevation"`
	Mode      AlarmMode `yaml:"mode"`
	File      string    `yaml:"file"`
}

// Window is an elevation band (meters above ground) where tones are silenced.
type Window struct {
	Top    int `yaml:"top"`
	Bottom int `yaml:"bottom"`
}

// NewSpeech returns a speech entry with default siblings.
func NewSpeech(mode Mode) Speech {
	return Speech{Mode: mode, Units: Miles, Decimals: 1}
}

// NewAlarm returns an alarm entry with default siblings.
func NewAlarm(elevation int) Alarm {
	return Alarm{Elevation: elevation, Mode: NoAlarm}
}

// NewWindow returns a zero-height window at top.
func NewWindow(top int) Window {
	return Window{Top: top, Bottom: top}
}

// Default returns a fresh document carrying the given display units.
// Values match the device firmware defaults. Sequences start empty.
func Default(units DisplayUnits) Config {
	return Config{
		DisplayUnits: units,

		Model: Airborne1G,
		Rate:  200,

		ToneMode:   GlideRatio,
		MinTone:    0,
		MaxTone:    300,
		Limits:     Clamp,
		ToneVolume: 6,

		RateMode:     ValueChange,
		MinRateValue: 300,
		MaxRateValue: 1500,
		MinRate:      100,
		MaxRate:      500,
		Flatline:     false,

		SpeechRate:   0,
		SpeechVolume: 8,

		VThreshold: 1000,
		HThreshold: 0,

		AdjustSpeed:    false,
		TimeZoneOffset: 0,

		InitMode: NoInit,

		AltitudeUnits: Feet,
		AltitudeStep:  0,
	}
}

// Clone returns a deep copy. Sequences of the copy are never shared.
func (c Config) Clone() Config {
	out := c
	out.Speeches = append([]Speech(nil), c.Speeches...)
	out.Alarms = append([]Alarm(nil), c.Alarms...)
	out.Windows = append([]Window(nil), c.Windows...)
	return out
}

// Equal reports full structural equality, DisplayUnits included.
// Used for the unsaved-changes check.
func Equal(a, b Config) bool {
	return a.DisplayUnits == b.DisplayUnits && EqualPersisted(a, b)
}

// EqualPersisted compares only the fields written to the device file.
// Nil and empty sequences compare equal.
func EqualPersisted(a, b Config) bool {
	if !reflect.DeepEqual(a.scalars(), b.scalars()) {
		return false
	}

	if len(a.Speeches) != len(b.Speeches) {
		return false
	}
	for i := range a.Speeches {
		if a.Speeches[i] != b.Speeches[i] {
			return false
		}
	}

	if len(a.Alarms) != len(b.Alarms) {
		return false
	}
	for i := range a.Alarms {
		if a.Alarms[i] != b.Alarms[i] {
			return false
		}
	}

	if len(a.Windows) != len(b.Windows) {
		return false
	}
	for i := range a.Windows {
		if a.Windows[i] != b.Windows[i] {
			return false
		}
	}

	return true
}

// scalars strips the non-comparable and presentation fields.
func (c Config) scalars() Config {
	c.DisplayUnits = Metric
	c.Speeches = nil
	c.Alarms = nil
	c.Windows = nil
	return c
}
