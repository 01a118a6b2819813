// cmd/configurator/show.go
package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tamzrod/flysight-configurator/internal/config"
	"github.com/tamzrod/flysight-configurator/internal/units"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	labelStyle   = lipgloss.NewStyle().Width(24).Foreground(lipgloss.Color("245"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// page collects rows for one settings group.
type page struct {
	b *strings.Builder
}

func (p page) section(name string) {
	p.b.WriteString(sectionStyle.Render(name))
	p.b.WriteByte('\n')
}

func (p page) row(label string, format string, args ...any) {
	p.b.WriteString(labelStyle.Render(label))
	p.b.WriteString(valueStyle.Render(fmt.Sprintf(format, args...)))
	p.b.WriteByte('\n')
}

// render shows cfg the way the editor pages do: grouped, in display units.
func render(name string, cfg *config.Config) string {
	var b strings.Builder
	p := page{b: &b}
	conv := units.For(cfg)

	b.WriteString(titleStyle.Render(name))
	b.WriteString(fmt.Sprintf(" (%s)\n", cfg.DisplayUnits))

	p.section("General")
	p.row("Name", "%s", cfg.ConfigName)
	p.row("Description", "%s", cfg.ConfigDescription)
	p.row("Kind", "%s", cfg.ConfigKind)
	p.row("Dynamic model", "%s", cfg.Model)
	p.row("Measurement rate", "%d ms", cfg.Rate)

	p.section("Tone")
	p.row("Mode", "%s", cfg.ToneMode)
	p.row("Minimum", "%.2f %s", units.MinTone(cfg), conv.ToneLabel(cfg.ToneMode))
	p.row("Maximum", "%.2f %s", units.MaxTone(cfg), conv.ToneLabel(cfg.ToneMode))
	p.row("Outside bounds", "%s", cfg.Limits)
	p.row("Volume", "%d", cfg.ToneVolume)

	p.section("Rate")
	p.row("Mode", "%s", cfg.RateMode)
	p.row("Minimum value", "%.2f %s", units.MinRateValue(cfg), conv.RateLabel(cfg.RateMode))
	p.row("Maximum value", "%.2f %s", units.MaxRateValue(cfg), conv.RateLabel(cfg.RateMode))
	p.row("Minimum rate", "%.2f Hz", units.MinRate(cfg))
	p.row("Maximum rate", "%.2f Hz", units.MaxRate(cfg))
	p.row("Flatline", "%t", cfg.Flatline)

	p.section("Speech")
	p.row("Rate", "%d s", cfg.SpeechRate)
	p.row("Volume", "%d", cfg.SpeechVolume)
	for i, s := range cfg.Speeches {
		p.row(fmt.Sprintf("Speech %d", i+1), "%s, %s, %d", s.Mode, s.Units, s.Decimals)
	}

	p.section("Thresholds")
	p.row("Vertical", "%.1f %s", units.VThreshold(cfg), conv.SpeedLabel())
	p.row("Horizontal", "%.1f %s", units.HThreshold(cfg), conv.SpeedLabel())

	p.section("Miscellaneous")
	p.row("Skydiver's airspeed", "%t", cfg.AdjustSpeed)
	p.row("Time zone offset", "%d s", cfg.TimeZoneOffset)

	p.section("Initialization")
	p.row("On power up", "%s", cfg.InitMode)
	if cfg.InitMode == config.InitFile {
		p.row("File", "%s", cfg.InitFile)
	}

	p.section("Alarms")
	p.row("Window above", "%.0f %s", units.AlarmWindowAbove(cfg), conv.DistanceLabel())
	p.row("Window below", "%.0f %s", units.AlarmWindowBelow(cfg), conv.DistanceLabel())
	p.row("Ground elevation", "%.0f %s", units.GroundElevation(cfg), conv.DistanceLabel())
	for i, a := range cfg.Alarms {
		elev := conv.DistanceToUnits(a.Elevation)
		if a.Mode == config.PlayFile {
			p.row(fmt.Sprintf("Alarm %d", i+1), "%.0f %s, %s %s", elev, conv.DistanceLabel(), a.Mode, a.File)
			continue
		}
		p.row(fmt.Sprintf("Alarm %d", i+1), "%.0f %s, %s", elev, conv.DistanceLabel(), a.Mode)
	}

	p.section("Altitude")
	p.row("Units", "%s", cfg.AltitudeUnits)
	p.row("Step", "%d", cfg.AltitudeStep)

	p.section("Silence windows")
	for i, w := range cfg.Windows {
		p.row(fmt.Sprintf("Window %d", i+1), "%.0f to %.0f %s",
			conv.DistanceToUnits(w.Bottom), conv.DistanceToUnits(w.Top), conv.DistanceLabel())
	}

	return b.String()
}
