// cmd/configurator/show_test.go
package main

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/tamzrod/flysight-configurator/internal/config"
)

func TestRenderUsesDisplayUnits(t *testing.T) {
	is := is.New(t)

	cfg := config.Default(config.Metric)
	cfg.GroundElevation = 3048
	out := render("config.txt", &cfg)
	is.True(strings.Contains(out, "36.0 km/h"))   // V_Thresh 1000 cm/s
	is.True(strings.Contains(out, "3048 m"))      // DZ_Elev
	is.True(strings.Contains(out, "3.00 %"))      // Min_Val_2 in Change in Value 1
	is.True(strings.Contains(out, "Glide ratio")) // tone mode

	cfg.DisplayUnits = config.Imperial
	out = render("config.txt", &cfg)
	is.True(strings.Contains(out, "22.4 mph"))
	is.True(strings.Contains(out, "10000 ft"))
}

func TestRenderListsSequences(t *testing.T) {
	is := is.New(t)

	cfg := config.Default(config.Metric)
	cfg.Alarms = []config.Alarm{{Elevation: 1000, Mode: config.PlayFile, File: "pull"}}
	cfg.Windows = []config.Window{{Top: 600, Bottom: 300}}
	cfg.Speeches = []config.Speech{config.NewSpeech(config.Altitude)}

	out := render("x.txt", &cfg)
	is.True(strings.Contains(out, "Play file pull"))
	is.True(strings.Contains(out, "300 to 600 m"))
	is.True(strings.Contains(out, "Altitude, mph or feet, 1"))
}
