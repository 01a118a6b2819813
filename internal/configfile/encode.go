// internal/configfile/encode.go
package configfile

import (
	"fmt"
	"strings"

	"github.com/tamzrod/flysight-configurator/internal/config"
)

// Encode converts a configuration into the full device file text.
// Layout is locked: fixed order, fixed comments, values right-justified.
// No IO. No side effects. Never fails.
func Encode(cfg config.Config) string {
	var b strings.Builder
	w := &writer{b: &b}

	w.line("; For information on configuring FlySight, please go to")
	w.line(";     http://flysight.ca/wiki")
	w.blank()

	// --------------------
	// Identification + GPS
	// --------------------

	w.line("; GPS settings")
	w.blank()

	w.str("Config_Name:  ", cfg.ConfigName, "Configuration name")
	w.str("Config_Description:  ", cfg.ConfigDescription, "Configuration Description")
	w.str("Config_Kind:  ", cfg.ConfigKind, "Configuration kind. Allows to group configuration files together")
	w.blank()

	w.num("Model:      ", int(cfg.Model), "Dynamic model")
	w.legend(
		"0 = Portable",
		"2 = Stationary",
		"3 = Pedestrian",
		"4 = Automotive",
		"5 = Sea",
		"6 = Airborne with < 1 G acceleration",
		"7 = Airborne with < 2 G acceleration",
		"8 = Airborne with < 4 G acceleration",
	)
	w.num("Rate:       ", cfg.Rate, "Measurement rate (ms)")
	w.blank()

	// --------------------
	// Tone
	// --------------------

	w.line("; Tone settings")
	w.blank()

	w.num("Mode:       ", int(cfg.ToneMode), "Measurement mode")
	w.legend(
		"0 = Horizontal speed",
		"1 = Vertical speed",
		"2 = Glide ratio",
		"3 = Inverse glide ratio",
		"4 = Total speed",
		"11 = Dive angle",
	)
	w.num("Min:        ", cfg.MinTone, "Lowest pitch value")
	w.legend(toneUnitsLegend...)
	w.num("Max:        ", cfg.MaxTone, "Highest pitch value")
	w.legend(toneUnitsLegend...)
	w.num("Limits:     ", int(cfg.Limits), "Behaviour when outside bounds")
	w.legend(
		"0 = No tone",
		"1 = Min/max tone",
		"2 = Chirp up/down",
		"3 = Chirp down/up",
	)
	w.num("Volume:     ", cfg.ToneVolume, "0 (min) to 8 (max)")
	w.blank()

	// --------------------
	// Rate
	// --------------------

	w.line("; Rate settings")
	w.blank()

	w.num("Mode_2:     ", int(cfg.RateMode), "Determines tone rate")
	w.legend(
		"0 = Horizontal speed",
		"1 = Vertical speed",
		"2 = Glide ratio",
		"3 = Inverse glide ratio",
		"4 = Total speed",
		"8 = Magnitude of Value 1",
		"9 = Change in Value 1",
		"11 = Dive angle",
	)
	w.num("Min_Val_2:  ", cfg.MinRateValue, "Lowest rate value")
	w.legend(rateUnitsLegend...)
	w.num("Max_Val_2:  ", cfg.MaxRateValue, "Highest rate value")
	w.legend(rateUnitsLegend...)
	w.num("Min_Rate:   ", cfg.MinRate, "Minimum rate (Hz * 100)")
	w.num("Max_Rate:   ", cfg.MaxRate, "Maximum rate (Hz * 100)")
	w.num("Flatline:   ", boolInt(cfg.Flatline), "Flatline at minimum rate")
	w.legend(yesNoLegend...)
	w.blank()

	// --------------------
	// Speech
	// --------------------

	w.line("; Speech settings")
	w.blank()

	w.num("Sp_Rate:    ", cfg.SpeechRate, "Speech rate (s)")
	w.legend("0 = No speech")
	w.num("Sp_Volume:  ", cfg.SpeechVolume, "0 (min) to 8 (max)")
	w.blank()

	speeches := cfg.Speeches
	if len(speeches) == 0 {
		speeches = []config.Speech{config.NewSpeech(config.GlideRatio)}
	}
	for i, s := range speeches {
		w.speech(s, i == 0)
	}

	// --------------------
	// Thresholds + misc
	// --------------------

	w.line("; Thresholds")
	w.blank()

	w.num("V_Thresh:   ", cfg.VThreshold, "Minimum vertical speed for tone (cm/s)")
	w.num("H_Thresh:   ", cfg.HThreshold, "Minimum horizontal speed for tone (cm/s)")
	w.blank()

	w.line("; Miscellaneous")
	w.blank()

	w.num("Use_SAS:    ", boolInt(cfg.AdjustSpeed), "Use skydiver's airspeed")
	w.legend(yesNoLegend...)
	w.num("TZ_Offset:  ", cfg.TimeZoneOffset, "Timezone offset of output files in seconds")
	w.legend(
		"-14400 = UTC-4 (EDT)",
		"-18000 = UTC-5 (EST, CDT)",
		"-21600 = UTC-6 (CST, MDT)",
		"-25200 = UTC-7 (MST, PDT)",
		"-28800 = UTC-8 (PST)",
	)
	w.blank()

	// --------------------
	// Initialization
	// --------------------

	w.line("; Initialization")
	w.blank()

	w.num("Init_Mode:  ", int(cfg.InitMode), "When the FlySight is powered on")
	w.legend(
		"0 = Do nothing",
		"1 = Test speech mode",
		"2 = Play file",
	)
	w.str("Init_File:  ", cfg.InitFile, "File to be played")
	w.blank()

	// --------------------
	// Alarms
	// --------------------

	w.line("; Alarm settings")
	w.blank()

	w.warning("THESE ALARMS")

	w.line("; NOTE:    Alarm elevations are given in meters above ground")
	w.line(";          elevation, which is specified in DZ_Elev.")
	w.blank()

	w.num("Window:     ", cfg.AlarmWindowAbove, "Alarm window (m)")
	w.num("Win_Above:  ", cfg.AlarmWindowAbove, "Alarm window (m)")
	w.num("Win_Below:  ", cfg.AlarmWindowBelow, "Alarm window (m)")
	w.num("DZ_Elev:    ", cfg.GroundElevation, "Ground elevation (m above sea level)")
	w.blank()

	alarms := cfg.Alarms
	if len(alarms) == 0 {
		alarms = []config.Alarm{{Elevation: 0, Mode: config.NoAlarm, File: "0"}}
	}
	for i, a := range alarms {
		w.alarm(a, i == 0)
	}

	// --------------------
	// Altitude
	// --------------------

	w.line("; Altitude mode settings")
	w.blank()

	w.warning("ALTITUDE MODE")

	w.line("; NOTE:    Altitude is given relative to ground elevation,")
	w.line(";          which is specified in DZ_Elev. Altitude mode will")
	w.line(";          not function below 1500 m above ground.")
	w.blank()

	w.num("Alt_Units:  ", int(cfg.AltitudeUnits), "Altitude units")
	w.legend(
		"0 = m",
		"1 = ft",
	)
	w.num("Alt_Step:   ", cfg.AltitudeStep, "Altitude between announcements")
	w.legend("0 = No altitude")
	w.blank()

	// --------------------
	// Silence windows
	// --------------------

	w.line("; Silence windows")
	w.blank()

	w.line("; NOTE:    Silence windows are given in meters above ground")
	w.line(";          elevation, which is specified in DZ_Elev. Tones")
	w.line(";          will be silenced during these windows and only")
	w.line(";          alarms will be audible.")
	w.blank()

	windows := cfg.Windows
	if len(windows) == 0 {
		windows = []config.Window{{Top: 0, Bottom: 0}}
	}
	for _, win := range windows {
		w.num("Win_Top:    ", win.Top, "Silence window top (m)")
		w.num("Win_Bottom: ", win.Bottom, "Silence window bottom (m)")
		w.blank()
	}

	return b.String()
}

// ---- shared legends ----

var toneUnitsLegend = []string{
	"cm/s        in Mode 0, 1, or 4",
	"ratio * 100 in Mode 2 or 3",
	"degrees     in Mode 11",
}

var rateUnitsLegend = []string{
	"cm/s          when Mode 2 = 0, 1, or 4",
	"ratio * 100   when Mode 2 = 2 or 3",
	"percent * 100 when Mode 2 = 9",
	"degrees       when Mode 2 = 11",
}

var yesNoLegend = []string{
	"0 = No",
	"1 = Yes",
}

// legendIndent aligns legend comments under the value comment column.
const legendIndent = "                  ;   "

// ---- writer ----

type writer struct {
	b *strings.Builder
}

func (w *writer) line(s string) {
	w.b.WriteString(s)
	w.b.WriteByte('\n')
}

func (w *writer) blank() {
	w.b.WriteByte('\n')
}

// num writes a key (already padded) with a right-justified integer.
func (w *writer) num(key string, v int, comment string) {
	fmt.Fprintf(w.b, "%s%*d ; %s\n", key, ValueWidth, v, comment)
}

// str writes a key (already padded) with a right-justified string.
func (w *writer) str(key, v, comment string) {
	fmt.Fprintf(w.b, "%s%*s ; %s\n", key, ValueWidth, v, comment)
}

func (w *writer) legend(lines ...string) {
	for _, l := range lines {
		w.line(legendIndent + l)
	}
}

func (w *writer) warning(subject string) {
	w.line("; WARNING: GPS measurements depend on very weak signals")
	w.line(";          received from orbiting satellites. As such, they")
	w.line(";          are prone to interference, and should NEVER be")
	w.line(";          relied upon for life saving purposes.")
	w.blank()

	w.line(";          UNDER NO CIRCUMSTANCES SHOULD " + subject + " BE")
	w.line(";          USED TO INDICATE DEPLOYMENT OR BREAKOFF ALTITUDE.")
	w.blank()
}

func (w *writer) speech(s config.Speech, first bool) {
	w.num("Sp_Mode:    ", int(s.Mode), "Speech mode")
	if first {
		w.legend(
			"0 = Horizontal speed",
			"1 = Vertical speed",
			"2 = Glide ratio",
			"3 = Inverse glide ratio",
			"4 = Total speed",
			"5 = Altitude above DZ_Elev",
			"11 = Dive angle",
		)
	}
	w.num("Sp_Units:   ", int(s.Units), "Speech units")
	if first {
		w.legend(
			"0 = km/h or m",
			"1 = mph or feet",
		)
	}
	w.num("Sp_Dec:     ", s.Decimals, "Speech precision")
	if first {
		w.legend(
			"Altitude step in Mode 5",
			"Decimal places in all other Modes",
		)
	}
	w.blank()
}

func (w *writer) alarm(a config.Alarm, first bool) {
	w.num("Alarm_Elev: ", a.Elevation, "Alarm elevation (m above ground level)")
	w.num("Alarm_Type: ", int(a.Mode), "Alarm type")
	if first {
		w.legend(
			"0 = No alarm",
			"1 = Beep",
			"2 = Chirp up",
			"3 = Chirp down",
			"4 = Play file",
		)
	}
	w.str("Alarm_File: ", a.File, "File to be played")
	w.blank()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
