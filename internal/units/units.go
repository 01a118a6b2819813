// internal/units/units.go
package units

import (
	"math"

	"github.com/tamzrod/flysight-configurator/internal/config"
)

// ---- CONVERSION FACTORS ----

const (
	// cmPerSecPerKmh is 1 km/h in cm/s.
	cmPerSecPerKmh = 100000.0 / 3600.0

	// cmPerSecPerMph is 1 mph in cm/s.
	cmPerSecPerMph = 160934.4 / 3600.0

	// metersPerFoot is the international foot.
	metersPerFoot = 0.3048

	// ratioScale is the fixed-point scale of ratios and percentages.
	ratioScale = 100.0
)

// Converter maps internal integer encodings to display values and back.
// Stateless: the zero value converts metric.
// Every *FromUnits method rounds to the nearest integer (half away from zero).
type Converter struct {
	Units config.DisplayUnits
}

// For returns the converter matching cfg's display units.
func For(cfg *config.Config) Converter {
	return Converter{Units: cfg.DisplayUnits}
}

// ---- SPEED (cm/s) ----

func (c Converter) SpeedToUnits(v int) float64 {
	if c.Units == config.Imperial {
		return float64(v) / cmPerSecPerMph
	}
	return float64(v) / cmPerSecPerKmh
}

func (c Converter) SpeedFromUnits(v float64) int {
	if c.Units == config.Imperial {
		return round(v * cmPerSecPerMph)
	}
	return round(v * cmPerSecPerKmh)
}

func (c Converter) SpeedLabel() string {
	if c.Units == config.Imperial {
		return "mph"
	}
	return "km/h"
}

// ---- DISTANCE (m) ----

func (c Converter) DistanceToUnits(v int) float64 {
	if c.Units == config.Imperial {
		return float64(v) / metersPerFoot
	}
	return float64(v)
}

func (c Converter) DistanceFromUnits(v float64) int {
	if c.Units == config.Imperial {
		return round(v * metersPerFoot)
	}
	return round(v)
}

func (c Converter) DistanceLabel() string {
	if c.Units == config.Imperial {
		return "ft"
	}
	return "m"
}

// ---- TONE VALUE ----

// ToneToUnits converts a Min/Max pitch value for the given tone mode.
// Speed modes convert as speed, ratio modes divide by 100, anything else
// (dive angle included) passes through.
func (c Converter) ToneToUnits(mode config.Mode, v int) float64 {
	switch {
	case mode.IsSpeed():
		return c.SpeedToUnits(v)
	case mode.IsRatio():
		return float64(v) / ratioScale
	}
	return float64(v)
}

func (c Converter) ToneFromUnits(mode config.Mode, v float64) int {
	switch {
	case mode.IsSpeed():
		return c.SpeedFromUnits(v)
	case mode.IsRatio():
		return round(v * ratioScale)
	}
	return round(v)
}

func (c Converter) ToneLabel(mode config.Mode) string {
	switch {
	case mode.IsSpeed():
		return c.SpeedLabel()
	case mode == config.DiveAngle:
		return "deg"
	}
	return ""
}

// ---- RATE VALUE ----

// RateToUnits is ToneToUnits plus the percentage modes
// (ValueMagnitude, ValueChange) which divide by 100.
func (c Converter) RateToUnits(mode config.Mode, v int) float64 {
	if isPercent(mode) {
		return float64(v) / ratioScale
	}
	return c.ToneToUnits(mode, v)
}

func (c Converter) RateFromUnits(mode config.Mode, v float64) int {
	if isPercent(mode) {
		return round(v * ratioScale)
	}
	return c.ToneFromUnits(mode, v)
}

func (c Converter) RateLabel(mode config.Mode) string {
	if isPercent(mode) {
		return "%"
	}
	return c.ToneLabel(mode)
}

func isPercent(mode config.Mode) bool {
	return mode == config.ValueMagnitude || mode == config.ValueChange
}

func round(v float64) int {
	return int(math.Round(v))
}
