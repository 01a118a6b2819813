// internal/units/fields.go
package units

import "github.com/tamzrod/flysight-configurator/internal/config"

// Accessor pairs for the fields an editor shows in display units.
// Getters read cfg in cfg.DisplayUnits; setters store the rounded internal value.

func VThreshold(cfg *config.Config) float64 {
	return For(cfg).SpeedToUnits(cfg.VThreshold)
}

func SetVThreshold(cfg *config.Config, v float64) {
	cfg.VThreshold = For(cfg).SpeedFromUnits(v)
}

func HThreshold(cfg *config.Config) float64 {
	return For(cfg).SpeedToUnits(cfg.HThreshold)
}

func SetHThreshold(cfg *config.Config, v float64) {
	cfg.HThreshold = For(cfg).SpeedFromUnits(v)
}

// ---- alarm distances ----

func AlarmWindowAbove(cfg *config.Config) float64 {
	return For(cfg).DistanceToUnits(cfg.AlarmWindowAbove)
}

func SetAlarmWindowAbove(cfg *config.Config, v float64) {
	cfg.AlarmWindowAbove = For(cfg).DistanceFromUnits(v)
}

func AlarmWindowBelow(cfg *config.Config) float64 {
	return For(cfg).DistanceToUnits(cfg.AlarmWindowBelow)
}

func SetAlarmWindowBelow(cfg *config.Config, v float64) {
	cfg.AlarmWindowBelow = For(cfg).DistanceFromUnits(v)
}

func GroundElevation(cfg *config.Config) float64 {
	return For(cfg).DistanceToUnits(cfg.GroundElevation)
}

func SetGroundElevation(cfg *config.Config, v float64) {
	cfg.GroundElevation = For(cfg).DistanceFromUnits(v)
}

// ---- tone bounds (keyed on ToneMode) ----

func MinTone(cfg *config.Config) float64 {
	return For(cfg).ToneToUnits(cfg.ToneMode, cfg.MinTone)
}

func SetMinTone(cfg *config.Config, v float64) {
	cfg.MinTone = For(cfg).ToneFromUnits(cfg.ToneMode, v)
}

func MaxTone(cfg *config.Config) float64 {
	return For(cfg).ToneToUnits(cfg.ToneMode, cfg.MaxTone)
}

func SetMaxTone(cfg *config.Config, v float64) {
	cfg.MaxTone = For(cfg).ToneFromUnits(cfg.ToneMode, v)
}

// ---- rate bounds (keyed on RateMode) ----

func MinRateValue(cfg *config.Config) float64 {
	return For(cfg).RateToUnits(cfg.RateMode, cfg.MinRateValue)
}

func SetMinRateValue(cfg *config.Config, v float64) {
	cfg.MinRateValue = For(cfg).RateFromUnits(cfg.RateMode, v)
}

func MaxRateValue(cfg *config.Config) float64 {
	return For(cfg).RateToUnits(cfg.RateMode, cfg.MaxRateValue)
}

func SetMaxRateValue(cfg *config.Config, v float64) {
	cfg.MaxRateValue = For(cfg).RateFromUnits(cfg.RateMode, v)
}

// ---- rates (Hz * 100, unit independent) ----

func MinRate(cfg *config.Config) float64 {
	return float64(cfg.MinRate) / ratioScale
}

func SetMinRate(cfg *config.Config, hz float64) {
	cfg.MinRate = round(hz * ratioScale)
}

func MaxRate(cfg *config.Config) float64 {
	return float64(cfg.MaxRate) / ratioScale
}

func SetMaxRate(cfg *config.Config, hz float64) {
	cfg.MaxRate = round(hz * ratioScale)
}
