// internal/configfile/parse_test.go
package configfile

import (
	"fmt"
	"strings"
	"testing"

	"github.com/tamzrod/flysight-configurator/internal/config"
)

func TestParse_EmptyTextYieldsDefaults(t *testing.T) {
	got := Parse("", config.Imperial)
	want := config.Default(config.Imperial)

	if !config.Equal(got, want) {
		t.Fatalf("empty text: got %+v", got)
	}
}

func TestParse_CommentStripping(t *testing.T) {
	got := Parse("Rate:   100  ; comment with : colon\n", config.Metric)
	if got.Rate != 100 {
		t.Fatalf("expected rate 100, got %d", got.Rate)
	}
}

func TestParse_CommentOnlyAndMalformedLines(t *testing.T) {
	text := strings.Join([]string{
		"; Rate: 5",
		"Rate 400",
		"",
		"   ",
		":",
		"Volume:",
		"Min: abc",
	}, "\n")

	got := Parse(text, config.Metric)
	def := config.Default(config.Metric)

	if got.Rate != def.Rate {
		t.Fatalf("commented or colon-less rate applied: %d", got.Rate)
	}
	if got.ToneVolume != 0 || got.MinTone != 0 {
		t.Fatalf("non-numeric values must parse as 0: volume=%d min=%d", got.ToneVolume, got.MinTone)
	}
}

func TestParse_LineEndings(t *testing.T) {
	for name, sep := range map[string]string{"lf": "\n", "crlf": "\r\n", "cr": "\r"} {
		t.Run(name, func(t *testing.T) {
			text := "Rate: 250" + sep + "Volume: 3" + sep + "Config_Name: Swoop" + sep
			got := Parse(text, config.Metric)
			if got.Rate != 250 || got.ToneVolume != 3 || got.ConfigName != "Swoop" {
				t.Fatalf("got rate=%d volume=%d name=%q", got.Rate, got.ToneVolume, got.ConfigName)
			}
		})
	}
}

func TestParse_LeadingInt(t *testing.T) {
	cases := map[string]int{
		"12":                   12,
		"12abc":                12,
		"-5":                   -5,
		"+7":                   7,
		"3.9":                  3,
		"abc":                  0,
		"":                     0,
		"-":                    0,
		"99999999999999999999": 0,
		"-14400 seconds or so": -14400,
	}
	for in, want := range cases {
		if got := leadingInt(in); got != want {
			t.Fatalf("leadingInt(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestParse_KeysAreCaseSensitive(t *testing.T) {
	got := Parse("rate: 5\nRATE: 6\n", config.Metric)
	if got.Rate != config.Default(config.Metric).Rate {
		t.Fatalf("case-insensitive match: rate=%d", got.Rate)
	}
}

func TestParse_UnknownKeysIgnored(t *testing.T) {
	got := Parse("Future_Key: 42\nRate: 300\n", config.Metric)
	want := config.Default(config.Metric)
	want.Rate = 300

	if !config.Equal(got, want) {
		t.Fatalf("unknown key changed config: %+v", got)
	}
}

func TestParse_DuplicateScalarsLastWins(t *testing.T) {
	got := Parse("Max: 100\nMax: 700\n", config.Metric)
	if got.MaxTone != 700 {
		t.Fatalf("expected last Max to win, got %d", got.MaxTone)
	}
}

func TestParse_StringsKeptVerbatim(t *testing.T) {
	text := "Config_Name:   Wingsuit: flocking  \n" +
		"Config_Description: Two words ; trailing comment\n" +
		"Config_Kind: WS\n" +
		"Init_File: 0a1\n"

	got := Parse(text, config.Metric)

	if got.ConfigName != "Wingsuit: flocking" {
		t.Fatalf("name: %q", got.ConfigName)
	}
	if got.ConfigDescription != "Two words" {
		t.Fatalf("description: %q", got.ConfigDescription)
	}
	if got.ConfigKind != "WS" || got.InitFile != "0a1" {
		t.Fatalf("kind=%q init file=%q", got.ConfigKind, got.InitFile)
	}
}

func TestParse_EnumsAndBools(t *testing.T) {
	text := strings.Join([]string{
		"Model: 7",
		"Mode: 11",
		"Limits: 3",
		"Mode_2: 8",
		"Flatline: 2",
		"Use_SAS: 1",
		"Init_Mode: 2",
		"Alt_Units: 0",
	}, "\n")

	got := Parse(text, config.Metric)

	if got.Model != config.Airborne2G || got.ToneMode != config.DiveAngle || got.Limits != config.ChirpReverse {
		t.Fatalf("enums: %v %v %v", got.Model, got.ToneMode, got.Limits)
	}
	if got.RateMode != config.ValueMagnitude || got.InitMode != config.InitFile || got.AltitudeUnits != config.Meters {
		t.Fatalf("enums: %v %v %v", got.RateMode, got.InitMode, got.AltitudeUnits)
	}
	if !got.Flatline || !got.AdjustSpeed {
		t.Fatalf("bools: flatline=%v sas=%v", got.Flatline, got.AdjustSpeed)
	}
}

func TestParse_UnknownEnumValuesClampToDefault(t *testing.T) {
	got := Parse("Model: 1\nMode: 6\nLimits: 9\nMode_2: 10\nInit_Mode: 7\nAlt_Units: 4\n", config.Metric)
	def := config.Default(config.Metric)

	if got.Model != def.Model || got.ToneMode != def.ToneMode || got.Limits != def.Limits {
		t.Fatalf("tone enums not clamped: %+v", got)
	}
	if got.RateMode != def.RateMode || got.InitMode != def.InitMode || got.AltitudeUnits != def.AltitudeUnits {
		t.Fatalf("rate/init/alt enums not clamped: %+v", got)
	}
}

func TestParse_DisplayUnitsCarriedOver(t *testing.T) {
	got := Parse("Rate: 100\n", config.Imperial)
	if got.DisplayUnits != config.Imperial {
		t.Fatalf("display units lost: %v", got.DisplayUnits)
	}
}

// ---- legacy alias ----

func TestParse_WindowAliasThenOverride(t *testing.T) {
	got := Parse("Window: 100\nWin_Above: 200\n", config.Metric)
	if got.AlarmWindowAbove != 200 || got.AlarmWindowBelow != 100 {
		t.Fatalf("above=%d below=%d", got.AlarmWindowAbove, got.AlarmWindowBelow)
	}
}

func TestParse_WindowAliasLastWins(t *testing.T) {
	got := Parse("Win_Above: 200\nWin_Below: 300\nWindow: 100\n", config.Metric)
	if got.AlarmWindowAbove != 100 || got.AlarmWindowBelow != 100 {
		t.Fatalf("above=%d below=%d", got.AlarmWindowAbove, got.AlarmWindowBelow)
	}
}

// ---- sequences ----

func TestParse_SequenceEntries(t *testing.T) {
	text := strings.Join([]string{
		"Sp_Mode: 1",
		"Sp_Units: 0",
		"Sp_Dec: 2",
		"Sp_Mode: 5",
		"Alarm_Elev: 1000",
		"Alarm_Type: 4",
		"Alarm_File: pull",
		"Alarm_Elev: 600",
		"Win_Top: 900",
		"Win_Bottom: 500",
		"Win_Top: 300",
	}, "\n")

	got := Parse(text, config.Metric)

	wantSpeeches := []config.Speech{
		{Mode: config.VerticalSpeed, Units: config.Kilometers, Decimals: 2},
		{Mode: config.Altitude, Units: config.Miles, Decimals: 1},
	}
	wantAlarms := []config.Alarm{
		{Elevation: 1000, Mode: config.PlayFile, File: "pull"},
		{Elevation: 600, Mode: config.NoAlarm, File: ""},
	}
	wantWindows := []config.Window{
		{Top: 900, Bottom: 500},
		{Top: 300, Bottom: 300},
	}

	want := config.Default(config.Metric)
	want.Speeches = wantSpeeches
	want.Alarms = wantAlarms
	want.Windows = wantWindows

	if !config.Equal(got, want) {
		t.Fatalf("sequences:\n got %+v %+v %+v\nwant %+v %+v %+v",
			got.Speeches, got.Alarms, got.Windows, wantSpeeches, wantAlarms, wantWindows)
	}
}

func TestParse_AlarmCap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 15; i++ {
		fmt.Fprintf(&b, "Alarm_Elev: %d\n", (i+1)*100)
	}

	got := Parse(b.String(), config.Metric)

	if len(got.Alarms) != config.MaxAlarms {
		t.Fatalf("expected %d alarms, got %d", config.MaxAlarms, len(got.Alarms))
	}
	for i, a := range got.Alarms {
		if a.Elevation != (i+1)*100 {
			t.Fatalf("alarm %d: expected elevation %d, got %d", i, (i+1)*100, a.Elevation)
		}
	}
}

// Speech entries are capped on their own count, independent of alarms.
func TestParse_SpeechCapIndependentOfAlarms(t *testing.T) {
	var b strings.Builder
	for i := 0; i < config.MaxAlarms; i++ {
		fmt.Fprintf(&b, "Alarm_Elev: %d\n", i)
	}
	for i := 0; i < 12; i++ {
		fmt.Fprintf(&b, "Sp_Mode: 2\nSp_Dec: %d\n", i)
	}

	got := Parse(b.String(), config.Metric)

	if len(got.Speeches) != config.MaxSpeeches {
		t.Fatalf("expected %d speeches, got %d", config.MaxSpeeches, len(got.Speeches))
	}
	// continuation keys past the cap land on the last accepted entry
	if got.Speeches[config.MaxSpeeches-1].Decimals != 11 {
		t.Fatalf("last speech decimals: %d", got.Speeches[config.MaxSpeeches-1].Decimals)
	}
}

func TestParse_ContinuationBeforeStart(t *testing.T) {
	text := "Win_Bottom: 50\nAlarm_Type: 1\nAlarm_File: x\nSp_Units: 0\nSp_Dec: 3\n"

	got := Parse(text, config.Metric)

	if len(got.Windows) != 0 || len(got.Alarms) != 0 || len(got.Speeches) != 0 {
		t.Fatalf("continuation keys created entries: %+v %+v %+v", got.Windows, got.Alarms, got.Speeches)
	}
}

func TestParse_WinBottomPastCapMutatesLastWindow(t *testing.T) {
	text := strings.Join([]string{
		"Win_Top: 900", "Win_Bottom: 800",
		"Win_Top: 600", "Win_Bottom: 500",
		"Win_Top: 300", "Win_Bottom: 100",
	}, "\n")

	got := Parse(text, config.Metric)

	want := []config.Window{{Top: 900, Bottom: 800}, {Top: 600, Bottom: 100}}
	if len(got.Windows) != 2 || got.Windows[0] != want[0] || got.Windows[1] != want[1] {
		t.Fatalf("windows: got %+v want %+v", got.Windows, want)
	}
}

func TestParse_UnknownSequenceEnumsClamp(t *testing.T) {
	got := Parse("Sp_Mode: 7\nSp_Units: 5\nAlarm_Elev: 1\nAlarm_Type: 9\n", config.Metric)

	if got.Speeches[0].Mode != config.GlideRatio || got.Speeches[0].Units != config.Miles {
		t.Fatalf("speech: %+v", got.Speeches[0])
	}
	if got.Alarms[0].Mode != config.NoAlarm {
		t.Fatalf("alarm: %+v", got.Alarms[0])
	}
}
