// internal/configfile/constants.go
package configfile

// Device file layout constants.
// These values define the file format shared with the firmware and MUST NOT
// be configurable.

// ---- SYNTAX ----

// CommentChar starts a comment running to end of line.
const CommentChar = ';'

// Separator splits key from value (first occurrence only).
const Separator = ':'

// ValueWidth is the minimum right-justified width of every written value.
const ValueWidth = 5

// ---- KEYS: IDENTIFICATION ----

const (
	KeyConfigName        = "Config_Name"
	KeyConfigDescription = "Config_Description"
	KeyConfigKind        = "Config_Kind"
)

// ---- KEYS: GPS ----

const (
	KeyModel = "Model"
	KeyRate  = "Rate"
)

// ---- KEYS: TONE ----

const (
	KeyMode   = "Mode"
	KeyMin    = "Min"
	KeyMax    = "Max"
	KeyLimits = "Limits"
	KeyVolume = "Volume"
)

// ---- KEYS: RATE ----

const (
	KeyMode2    = "Mode_2"
	KeyMinVal2  = "Min_Val_2"
	KeyMaxVal2  = "Max_Val_2"
	KeyMinRate  = "Min_Rate"
	KeyMaxRate  = "Max_Rate"
	KeyFlatline = "Flatline"
)

// ---- KEYS: SPEECH ----

const (
	KeySpRate   = "Sp_Rate"
	KeySpVolume = "Sp_Volume"
	KeySpMode   = "Sp_Mode" // starts a speech entry
	KeySpUnits  = "Sp_Units"
	KeySpDec    = "Sp_Dec"
)

// ---- KEYS: THRESHOLDS / MISC ----

const (
	KeyVThresh  = "V_Thresh"
	KeyHThresh  = "H_Thresh"
	KeyUseSAS   = "Use_SAS"
	KeyTZOffset = "TZ_Offset"
)

// ---- KEYS: INITIALIZATION ----

const (
	KeyInitMode = "Init_Mode"
	KeyInitFile = "Init_File"
)

// ---- KEYS: ALARMS ----

const (
	// KeyWindow is the legacy alias setting both alarm windows.
	KeyWindow    = "Window"
	KeyWinAbove  = "Win_Above"
	KeyWinBelow  = "Win_Below"
	KeyDZElev    = "DZ_Elev"
	KeyAlarmElev = "Alarm_Elev" // starts an alarm entry
	KeyAlarmType = "Alarm_Type"
	KeyAlarmFile = "Alarm_File"
)

// ---- KEYS: ALTITUDE ----

const (
	KeyAltUnits = "Alt_Units"
	KeyAltStep  = "Alt_Step"
)

// ---- KEYS: SILENCE WINDOWS ----

const (
	KeyWinTop    = "Win_Top" // starts a silence window entry
	KeyWinBottom = "Win_Bottom"
)
