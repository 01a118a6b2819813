// internal/config/config_test.go
package config

import "testing"

func TestEqual_Structural(t *testing.T) {
	a := *valid()
	b := a.Clone()

	if !Equal(a, b) {
		t.Fatalf("clone not equal")
	}

	b.Alarms[0].Elevation++
	if Equal(a, b) {
		t.Fatalf("alarm change not detected")
	}
}

func TestEqual_OrderMatters(t *testing.T) {
	a := Default(Metric)
	a.Windows = []Window{{Top: 600, Bottom: 300}, {Top: 200, Bottom: 100}}
	b := a.Clone()
	b.Windows[0], b.Windows[1] = b.Windows[1], b.Windows[0]

	if Equal(a, b) {
		t.Fatalf("reordered windows compare equal")
	}
}

func TestEqual_NilAndEmptySequences(t *testing.T) {
	a := Default(Metric)
	b := Default(Metric)
	b.Speeches = []Speech{}
	b.Alarms = []Alarm{}

	if !Equal(a, b) {
		t.Fatalf("nil and empty sequences differ")
	}
}

// DisplayUnits takes part in the unsaved-changes comparison but not in the
// persisted comparison.
func TestEqual_DisplayUnits(t *testing.T) {
	a := Default(Metric)
	b := Default(Imperial)

	if Equal(a, b) {
		t.Fatalf("Equal ignored display units")
	}
	if !EqualPersisted(a, b) {
		t.Fatalf("EqualPersisted compared display units")
	}
}

func TestClone_DoesNotShare(t *testing.T) {
	a := *valid()
	b := a.Clone()
	b.Speeches[0].Decimals = 4
	b.Windows[0].Top = 1

	if a.Speeches[0].Decimals != 1 || a.Windows[0].Top != 600 {
		t.Fatalf("clone shares sequences with original")
	}
}

func TestFromInt_ClampsUnknown(t *testing.T) {
	if ModelFromInt(1) != Airborne1G || ModelFromInt(7) != Airborne2G {
		t.Fatalf("ModelFromInt")
	}
	if ModeFromInt(6, GlideRatio) != GlideRatio || ModeFromInt(11, GlideRatio) != DiveAngle {
		t.Fatalf("ModeFromInt")
	}
	if LimitsFromInt(4) != Clamp || LimitsFromInt(3) != ChirpReverse {
		t.Fatalf("LimitsFromInt")
	}
	if UnitsFromInt(-1) != Miles || UnitsFromInt(2) != Knots {
		t.Fatalf("UnitsFromInt")
	}
	if InitModeFromInt(3) != NoInit || InitModeFromInt(2) != InitFile {
		t.Fatalf("InitModeFromInt")
	}
	if AlarmModeFromInt(5) != NoAlarm || AlarmModeFromInt(4) != PlayFile {
		t.Fatalf("AlarmModeFromInt")
	}
	if AltitudeUnitsFromInt(2) != Feet || AltitudeUnitsFromInt(0) != Meters {
		t.Fatalf("AltitudeUnitsFromInt")
	}
}

func TestParseDisplayUnits(t *testing.T) {
	if u, ok := ParseDisplayUnits("imperial"); !ok || u != Imperial {
		t.Fatalf("imperial: %v %v", u, ok)
	}
	if u, ok := ParseDisplayUnits("Metric"); !ok || u != Metric {
		t.Fatalf("Metric: %v %v", u, ok)
	}
	if _, ok := ParseDisplayUnits("furlongs"); ok {
		t.Fatalf("furlongs accepted")
	}
	if Imperial.String() != "imperial" {
		t.Fatalf("String: %s", Imperial)
	}
}
