// internal/config/normalize.go
package config

// Normalize clamps a configuration into the ranges the device accepts.
// It is allowed to mutate configuration.
// Values that Validate would reject for content reasons (strings, window
// ordering, missing files) are left alone.
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	def := Default(cfg.DisplayUnits)

	// ------------------------------------------------------------
	// ENUMS: unknown integers fall back to the default variant
	// ------------------------------------------------------------

	cfg.Model = ModelFromInt(int(cfg.Model))
	if !isToneMode(cfg.ToneMode) {
		cfg.ToneMode = def.ToneMode
	}
	cfg.Limits = LimitsFromInt(int(cfg.Limits))
	if !isRateMode(cfg.RateMode) {
		cfg.RateMode = def.RateMode
	}
	cfg.InitMode = InitModeFromInt(int(cfg.InitMode))
	cfg.AltitudeUnits = AltitudeUnitsFromInt(int(cfg.AltitudeUnits))

	// ------------------------------------------------------------
	// RANGES
	// ------------------------------------------------------------

	cfg.ToneVolume = clamp(cfg.ToneVolume, 0, 8)
	cfg.SpeechVolume = clamp(cfg.SpeechVolume, 0, 8)

	if cfg.Rate <= 0 {
		cfg.Rate = def.Rate
	}
	if cfg.SpeechRate < 0 {
		cfg.SpeechRate = 0
	}
	if cfg.AltitudeStep < 0 {
		cfg.AltitudeStep = 0
	}

	// ------------------------------------------------------------
	// SEQUENCES: truncate to caps, clamp element enums
	// ------------------------------------------------------------

	if len(cfg.Speeches) > MaxSpeeches {
		cfg.Speeches = cfg.Speeches[:MaxSpeeches]
	}
	for i := range cfg.Speeches {
		s := &cfg.Speeches[i]
		if !isSpeechMode(s.Mode) {
			s.Mode = GlideRatio
		}
		s.Units = UnitsFromInt(int(s.Units))
		if s.Decimals < 0 {
			s.Decimals = 0
		}
	}

	if len(cfg.Alarms) > MaxAlarms {
		cfg.Alarms = cfg.Alarms[:MaxAlarms]
	}
	for i := range cfg.Alarms {
		cfg.Alarms[i].Mode = AlarmModeFromInt(int(cfg.Alarms[i].Mode))
	}

	if len(cfg.Windows) > MaxWindows {
		cfg.Windows = cfg.Windows[:MaxWindows]
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
