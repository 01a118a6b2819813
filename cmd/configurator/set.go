// cmd/configurator/set.go
package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tamzrod/flysight-configurator/internal/config"
	"github.com/tamzrod/flysight-configurator/internal/configfile"
	"github.com/tamzrod/flysight-configurator/internal/units"
)

// setters are the fields entered in display units, by device file key.
// Tone and rate values follow the current tone and rate modes.
var setters = map[string]func(*config.Config, float64){
	configfile.KeyMin:     units.SetMinTone,
	configfile.KeyMax:     units.SetMaxTone,
	configfile.KeyMinVal2: units.SetMinRateValue,
	configfile.KeyMaxVal2: units.SetMaxRateValue,
	configfile.KeyMinRate: units.SetMinRate,
	configfile.KeyMaxRate: units.SetMaxRate,

	configfile.KeyVThresh: units.SetVThreshold,
	configfile.KeyHThresh: units.SetHThreshold,

	configfile.KeyWindow: func(cfg *config.Config, v float64) {
		units.SetAlarmWindowAbove(cfg, v)
		units.SetAlarmWindowBelow(cfg, v)
	},
	configfile.KeyWinAbove: units.SetAlarmWindowAbove,
	configfile.KeyWinBelow: units.SetAlarmWindowBelow,
	configfile.KeyDZElev:   units.SetGroundElevation,
}

// setField stores raw, given in cfg.DisplayUnits, into field.
// cfg is left untouched unless the result passes Validate.
func setField(cfg *config.Config, field, raw string) error {
	set, ok := setters[field]
	if !ok {
		return fmt.Errorf("unknown field %q (one of %s)", field, strings.Join(setterKeys(), ", "))
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("%s: %q is not a number", field, raw)
	}

	next := cfg.Clone()
	set(&next, v)
	if err := config.Validate(&next); err != nil {
		return err
	}

	*cfg = next
	return nil
}

func setterKeys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
