// internal/configfile/parse.go
package configfile

import (
	"strconv"
	"strings"

	"github.com/tamzrod/flysight-configurator/internal/config"
)

// Parse reads a device file into a fresh configuration.
// It never fails: malformed lines are skipped, unknown keys ignored,
// continuation keys without an entry are no-ops and entries beyond the
// sequence caps are dropped.
// Only units is carried over from the caller; everything else starts
// from config.Default.
func Parse(text string, units config.DisplayUnits) config.Config {
	cfg := config.Default(units)

	for _, line := range splitLines(text) {
		key, val, ok := splitLine(line)
		if !ok {
			continue
		}
		apply(&cfg, key, val)
	}

	return cfg
}

// splitLines splits on \n, \r\n and bare \r.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// splitLine strips the comment and splits on the first separator.
func splitLine(line string) (key, val string, ok bool) {
	if i := strings.IndexByte(line, CommentChar); i >= 0 {
		line = line[:i]
	}

	key, val, ok = strings.Cut(line, string(Separator))
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), strings.TrimSpace(val), true
}

// leadingInt parses an optional sign followed by base-10 digits and ignores
// whatever follows. No digits or overflow yields 0.
func leadingInt(s string) int {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return v
}

// apply dispatches one key:value pair.
func apply(cfg *config.Config, key, raw string) {
	val := leadingInt(raw)

	switch key {

	// ---- strings (verbatim) ----

	case KeyConfigName:
		cfg.ConfigName = raw
	case KeyConfigDescription:
		cfg.ConfigDescription = raw
	case KeyConfigKind:
		cfg.ConfigKind = raw
	case KeyInitFile:
		cfg.InitFile = raw

	// ---- scalars ----

	case KeyModel:
		cfg.Model = config.ModelFromInt(val)
	case KeyRate:
		cfg.Rate = val

	case KeyMode:
		cfg.ToneMode = config.ModeFromInt(val, config.Default(cfg.DisplayUnits).ToneMode)
	case KeyMin:
		cfg.MinTone = val
	case KeyMax:
		cfg.MaxTone = val
	case KeyLimits:
		cfg.Limits = config.LimitsFromInt(val)
	case KeyVolume:
		cfg.ToneVolume = val

	case KeyMode2:
		cfg.RateMode = config.ModeFromInt(val, config.Default(cfg.DisplayUnits).RateMode)
	case KeyMinVal2:
		cfg.MinRateValue = val
	case KeyMaxVal2:
		cfg.MaxRateValue = val
	case KeyMinRate:
		cfg.MinRate = val
	case KeyMaxRate:
		cfg.MaxRate = val
	case KeyFlatline:
		cfg.Flatline = val != 0

	case KeySpRate:
		cfg.SpeechRate = val
	case KeySpVolume:
		cfg.SpeechVolume = val

	case KeyVThresh:
		cfg.VThreshold = val
	case KeyHThresh:
		cfg.HThreshold = val

	case KeyUseSAS:
		cfg.AdjustSpeed = val != 0
	case KeyTZOffset:
		cfg.TimeZoneOffset = val

	case KeyInitMode:
		cfg.InitMode = config.InitModeFromInt(val)

	case KeyWindow:
		cfg.AlarmWindowAbove = val
		cfg.AlarmWindowBelow = val
	case KeyWinAbove:
		cfg.AlarmWindowAbove = val
	case KeyWinBelow:
		cfg.AlarmWindowBelow = val
	case KeyDZElev:
		cfg.GroundElevation = val

	case KeyAltUnits:
		cfg.AltitudeUnits = config.AltitudeUnitsFromInt(val)
	case KeyAltStep:
		cfg.AltitudeStep = val

	// ---- speeches ----

	case KeySpMode:
		if len(cfg.Speeches) < config.MaxSpeeches {
			cfg.Speeches = append(cfg.Speeches, config.NewSpeech(config.ModeFromInt(val, config.GlideRatio)))
		}
	case KeySpUnits:
		if n := len(cfg.Speeches); n > 0 {
			cfg.Speeches[n-1].Units = config.UnitsFromInt(val)
		}
	case KeySpDec:
		if n := len(cfg.Speeches); n > 0 {
			cfg.Speeches[n-1].Decimals = val
		}

	// ---- alarms ----

	case KeyAlarmElev:
		if len(cfg.Alarms) < config.MaxAlarms {
			cfg.Alarms = append(cfg.Alarms, config.NewAlarm(val))
		}
	case KeyAlarmType:
		if n := len(cfg.Alarms); n > 0 {
			cfg.Alarms[n-1].Mode = config.AlarmModeFromInt(val)
		}
	case KeyAlarmFile:
		if n := len(cfg.Alarms); n > 0 {
			cfg.Alarms[n-1].File = raw
		}

	// ---- silence windows ----

	case KeyWinTop:
		if len(cfg.Windows) < config.MaxWindows {
			cfg.Windows = append(cfg.Windows, config.NewWindow(val))
		}
	case KeyWinBottom:
		// Past the cap this still lands on the last accepted window.
		if n := len(cfg.Windows); n > 0 {
			cfg.Windows[n-1].Bottom = val
		}
	}
}
