// internal/config/enums.go
package config

import "strconv"

// Enumerations are stored in the device file as plain integers.
// Unknown integers are clamped to a default variant at the file boundary
// by the *FromInt constructors.

// ---- DISPLAY UNITS ----

// DisplayUnits selects how values are shown to the user.
// Presentation only: never written to the device file.
type DisplayUnits int

const (
	Metric   DisplayUnits = 0
	Imperial DisplayUnits = 1
)

func (u DisplayUnits) Valid() bool {
	return u == Metric || u == Imperial
}

func (u DisplayUnits) String() string {
	switch u {
	case Metric:
		return "metric"
	case Imperial:
		return "imperial"
	}
	return "DisplayUnits(" + strconv.Itoa(int(u)) + ")"
}

// ParseDisplayUnits accepts "metric" or "imperial".
func ParseDisplayUnits(s string) (DisplayUnits, bool) {
	switch s {
	case "metric", "Metric":
		return Metric, true
	case "imperial", "Imperial":
		return Imperial, true
	}
	return Metric, false
}

// ---- GNSS DYNAMIC MODEL ----

type Model int

const (
	Portable   Model = 0
	Stationary Model = 2
	Pedestrian Model = 3
	Automotive Model = 4
	Sea        Model = 5
	Airborne1G Model = 6
	Airborne2G Model = 7
	Airborne4G Model = 8
)

func (m Model) Valid() bool {
	switch m {
	case Portable, Stationary, Pedestrian, Automotive, Sea,
		Airborne1G, Airborne2G, Airborne4G:
		return true
	}
	return false
}

func (m Model) String() string {
	switch m {
	case Portable:
		return "Portable"
	case Stationary:
		return "Stationary"
	case Pedestrian:
		return "Pedestrian"
	case Automotive:
		return "Automotive"
	case Sea:
		return "Sea"
	case Airborne1G:
		return "Airborne with < 1 G acceleration"
	case Airborne2G:
		return "Airborne with < 2 G acceleration"
	case Airborne4G:
		return "Airborne with < 4 G acceleration"
	}
	return "Model(" + strconv.Itoa(int(m)) + ")"
}

// ModelFromInt returns Airborne1G for unknown values.
func ModelFromInt(v int) Model {
	if m := Model(v); m.Valid() {
		return m
	}
	return Airborne1G
}

// ---- MEASUREMENT MODE ----

// Mode is the measured quantity driving tone pitch, tone rate or speech.
type Mode int

const (
	HorizontalSpeed   Mode = 0
	VerticalSpeed     Mode = 1
	GlideRatio        Mode = 2
	InverseGlideRatio Mode = 3
	TotalSpeed        Mode = 4
	Altitude          Mode = 5
	ValueMagnitude    Mode = 8
	ValueChange       Mode = 9
	DiveAngle         Mode = 11
)

// Modes lists every defined Mode in encoding order.
var Modes = []Mode{
	HorizontalSpeed, VerticalSpeed, GlideRatio, InverseGlideRatio,
	TotalSpeed, Altitude, ValueMagnitude, ValueChange, DiveAngle,
}

func (m Mode) Valid() bool {
	for _, v := range Modes {
		if v == m {
			return true
		}
	}
	return false
}

// IsSpeed reports whether values in this mode are speeds in cm/s.
func (m Mode) IsSpeed() bool {
	return m == HorizontalSpeed || m == VerticalSpeed || m == TotalSpeed
}

// IsRatio reports whether values in this mode are ratios * 100.
func (m Mode) IsRatio() bool {
	return m == GlideRatio || m == InverseGlideRatio
}

func (m Mode) String() string {
	switch m {
	case HorizontalSpeed:
		return "Horizontal speed"
	case VerticalSpeed:
		return "Vertical speed"
	case GlideRatio:
		return "Glide ratio"
	case InverseGlideRatio:
		return "Inverse glide ratio"
	case TotalSpeed:
		return "Total speed"
	case Altitude:
		return "Altitude"
	case ValueMagnitude:
		return "Magnitude of Value 1"
	case ValueChange:
		return "Change in Value 1"
	case DiveAngle:
		return "Dive angle"
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// ModeFromInt returns fallback for unknown values.
func ModeFromInt(v int, fallback Mode) Mode {
	if m := Mode(v); m.Valid() {
		return m
	}
	return fallback
}

// ---- LIMITS ----

// Limits is the tone behaviour outside the min/max bounds.
type Limits int

const (
	NoTone       Limits = 0
	Clamp        Limits = 1
	Chirp        Limits = 2
	ChirpReverse Limits = 3
)

func (l Limits) Valid() bool {
	return l >= NoTone && l <= ChirpReverse
}

func (l Limits) String() string {
	switch l {
	case NoTone:
		return "No tone"
	case Clamp:
		return "Min/max tone"
	case Chirp:
		return "Chirp up/down"
	case ChirpReverse:
		return "Chirp down/up"
	}
	return "Limits(" + strconv.Itoa(int(l)) + ")"
}

// LimitsFromInt returns Clamp for unknown values.
func LimitsFromInt(v int) Limits {
	if l := Limits(v); l.Valid() {
		return l
	}
	return Clamp
}

// ---- SPEECH UNITS ----

type Units int

const (
	Kilometers Units = 0
	Miles      Units = 1
	Knots      Units = 2
)

func (u Units) Valid() bool {
	return u >= Kilometers && u <= Knots
}

func (u Units) String() string {
	switch u {
	case Kilometers:
		return "km/h or m"
	case Miles:
		return "mph or feet"
	case Knots:
		return "knots"
	}
	return "Units(" + strconv.Itoa(int(u)) + ")"
}

// UnitsFromInt returns Miles for unknown values.
func UnitsFromInt(v int) Units {
	if u := Units(v); u.Valid() {
		return u
	}
	return Miles
}

// ---- INITIALIZATION ----

type InitMode int

const (
	NoInit   InitMode = 0
	InitTest InitMode = 1
	InitFile InitMode = 2
)

func (m InitMode) Valid() bool {
	return m >= NoInit && m <= InitFile
}

func (m InitMode) String() string {
	switch m {
	case NoInit:
		return "Do nothing"
	case InitTest:
		return "Test speech mode"
	case InitFile:
		return "Play file"
	}
	return "InitMode(" + strconv.Itoa(int(m)) + ")"
}

// InitModeFromInt returns NoInit for unknown values.
func InitModeFromInt(v int) InitMode {
	if m := InitMode(v); m.Valid() {
		return m
	}
	return NoInit
}

// ---- ALARMS ----

type AlarmMode int

const (
	NoAlarm   AlarmMode = 0
	Beep      AlarmMode = 1
	ChirpUp   AlarmMode = 2
	ChirpDown AlarmMode = 3
	PlayFile  AlarmMode = 4
)

func (m AlarmMode) Valid() bool {
	return m >= NoAlarm && m <= PlayFile
}

func (m AlarmMode) String() string {
	switch m {
	case NoAlarm:
		return "No alarm"
	case Beep:
		return "Beep"
	case ChirpUp:
		return "Chirp up"
	case ChirpDown:
		return "Chirp down"
	case PlayFile:
		return "Play file"
	}
	return "AlarmMode(" + strconv.Itoa(int(m)) + ")"
}

// AlarmModeFromInt returns NoAlarm for unknown values.
func AlarmModeFromInt(v int) AlarmMode {
	if m := AlarmMode(v); m.Valid() {
		return m
	}
	return NoAlarm
}

// ---- ALTITUDE ANNOUNCEMENTS ----

// AltitudeUnits is the unit the device uses when announcing altitude.
// Independent of DisplayUnits.
type AltitudeUnits int

const (
	Meters AltitudeUnits = 0
	Feet   AltitudeUnits = 1
)

func (u AltitudeUnits) Valid() bool {
	return u == Meters || u == Feet
}

func (u AltitudeUnits) String() string {
	switch u {
	case Meters:
		return "m"
	case Feet:
		return "ft"
	}
	return "AltitudeUnits(" + strconv.Itoa(int(u)) + ")"
}

// AltitudeUnitsFromInt returns Feet for unknown values.
func AltitudeUnitsFromInt(v int) AltitudeUnits {
	if u := AltitudeUnits(v); u.Valid() {
		return u
	}
	return Feet
}
