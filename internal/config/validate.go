// internal/config/validate.go
package config

import (
	"fmt"
	"strings"
)

// Validate checks configuration correctness.
// It performs declarative validation only and reports the first violation.
// It MUST NOT mutate configuration.
// The codec never calls it: a device file is always readable and writable.
func Validate(cfg *Config) error {
	// ------------------------------------------------------------
	// STRING FIELDS (no escaping in the file format)
	// ------------------------------------------------------------

	strs := []struct {
		key string
		val string
	}{
		{"Config_Name", cfg.ConfigName},
		{"Config_Description", cfg.ConfigDescription},
		{"Config_Kind", cfg.ConfigKind},
		{"Init_File", cfg.InitFile},
	}
	for i, a := range cfg.Alarms {
		strs = append(strs, struct {
			key string
			val string
		}{fmt.Sprintf("Alarm_File[%d]", i), a.File})
	}

	for _, s := range strs {
		if strings.ContainsAny(s.val, ";\r\n") {
			return fmt.Errorf("%s: value %q must not contain ';' or line breaks", s.key, s.val)
		}
		if s.val != strings.TrimSpace(s.val) {
			return fmt.Errorf("%s: value %q has leading or trailing whitespace", s.key, s.val)
		}
	}

	// ------------------------------------------------------------
	// ENUMS
	// ------------------------------------------------------------

	if !cfg.Model.Valid() {
		return fmt.Errorf("Model: unknown dynamic model %d", cfg.Model)
	}
	if !isToneMode(cfg.ToneMode) {
		return fmt.Errorf("Mode: %d is not a tone mode", cfg.ToneMode)
	}
	if !cfg.Limits.Valid() {
		return fmt.Errorf("Limits: unknown behaviour %d", cfg.Limits)
	}
	if !isRateMode(cfg.RateMode) {
		return fmt.Errorf("Mode_2: %d is not a rate mode", cfg.RateMode)
	}
	if !cfg.InitMode.Valid() {
		return fmt.Errorf("Init_Mode: unknown mode %d", cfg.InitMode)
	}
	if !cfg.AltitudeUnits.Valid() {
		return fmt.Errorf("Alt_Units: unknown units %d", cfg.AltitudeUnits)
	}

	// ------------------------------------------------------------
	// RANGES
	// ------------------------------------------------------------

	if cfg.Rate <= 0 {
		return fmt.Errorf("Rate: measurement rate must be > 0 ms, got %d", cfg.Rate)
	}
	if cfg.ToneVolume < 0 || cfg.ToneVolume > 8 {
		return fmt.Errorf("Volume: must be 0..8, got %d", cfg.ToneVolume)
	}
	if cfg.SpeechVolume < 0 || cfg.SpeechVolume > 8 {
		return fmt.Errorf("Sp_Volume: must be 0..8, got %d", cfg.SpeechVolume)
	}
	if cfg.SpeechRate < 0 {
		return fmt.Errorf("Sp_Rate: must be >= 0 s, got %d", cfg.SpeechRate)
	}
	if cfg.MinRate < 0 || cfg.MaxRate < 0 {
		return fmt.Errorf("Min_Rate/Max_Rate: rates must be >= 0, got %d/%d", cfg.MinRate, cfg.MaxRate)
	}
	if cfg.AltitudeStep < 0 {
		return fmt.Errorf("Alt_Step: must be >= 0, got %d", cfg.AltitudeStep)
	}
	if cfg.InitMode == InitFile && cfg.InitFile == "" {
		return fmt.Errorf("Init_File: required when Init_Mode = %d", InitFile)
	}

	// ------------------------------------------------------------
	// SEQUENCES
	// ------------------------------------------------------------

	if len(cfg.Speeches) > MaxSpeeches {
		return fmt.Errorf("speeches: %d entries exceed the limit of %d", len(cfg.Speeches), MaxSpeeches)
	}
	for i, s := range cfg.Speeches {
		if !isSpeechMode(s.Mode) {
			return fmt.Errorf("Sp_Mode[%d]: %d is not a speech mode", i, s.Mode)
		}
		if !s.Units.Valid() {
			return fmt.Errorf("Sp_Units[%d]: unknown units %d", i, s.Units)
		}
		if s.Decimals < 0 {
			return fmt.Errorf("Sp_Dec[%d]: must be >= 0, got %d", i, s.Decimals)
		}
	}

	if len(cfg.Alarms) > MaxAlarms {
		return fmt.Errorf("alarms: %d entries exceed the limit of %d", len(cfg.Alarms), MaxAlarms)
	}
	for i, a := range cfg.Alarms {
		if !a.Mode.Valid() {
			return fmt.Errorf("Alarm_Type[%d]: unknown type %d", i, a.Mode)
		}
		if a.Mode == PlayFile && a.File == "" {
			return fmt.Errorf("Alarm_File[%d]: required when Alarm_Type = %d", i, PlayFile)
		}
	}

	if len(cfg.Windows) > MaxWindows {
		return fmt.Errorf("windows: %d entries exceed the limit of %d", len(cfg.Windows), MaxWindows)
	}
	for i, w := range cfg.Windows {
		if w.Bottom > w.Top {
			return fmt.Errorf("Win_Bottom[%d]: bottom %d is above top %d", i, w.Bottom, w.Top)
		}
	}

	return nil
}

// ---- MODE SETS ----

func isToneMode(m Mode) bool {
	switch m {
	case HorizontalSpeed, VerticalSpeed, GlideRatio, InverseGlideRatio, TotalSpeed, DiveAngle:
		return true
	}
	return false
}

func isRateMode(m Mode) bool {
	switch m {
	case ValueMagnitude, ValueChange:
		return true
	}
	return isToneMode(m)
}

func isSpeechMode(m Mode) bool {
	return m == Altitude || isToneMode(m)
}
