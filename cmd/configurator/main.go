// cmd/configurator/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/tamzrod/flysight-configurator/internal/config"
	"github.com/tamzrod/flysight-configurator/internal/configfile"
	"github.com/tamzrod/flysight-configurator/internal/prefs"
	"github.com/tamzrod/flysight-configurator/internal/session"
)

const usage = `usage: configurator [-prefs file] [-v] <command> [args]

commands:
  new <out.txt>                     write a default configuration
  fmt <in.txt> [out.txt]            rewrite in the canonical commented layout
  show [-units metric|imperial] <file>
                                    print settings in display units
  check <file>                      validate settings
  export <file>                     print the configuration as YAML
  import <in.yaml> <out.txt>        convert YAML into a device file
  set [-units metric|imperial] <file> <field> <value>
                                    store one value entered in display units
  units <metric|imperial>           store the preferred display units
`

type app struct {
	log       zerolog.Logger
	prefs     *prefs.Prefs
	prefsPath string
}

func main() {
	flags := flag.NewFlagSet("configurator", flag.ExitOnError)
	flags.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	prefsPath := flags.String("prefs", "", "preferences file (default: user config dir)")
	verbose := flags.Bool("v", false, "debug logging")
	_ = flags.Parse(os.Args[1:])

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()

	if flags.NArg() < 1 {
		flags.Usage()
		os.Exit(2)
	}

	// --------------------
	// Preferences
	// --------------------

	path := *prefsPath
	if path == "" {
		p, err := prefs.DefaultPath()
		if err != nil {
			log.Fatal().Err(err).Msg("no preferences location")
		}
		path = p
	}

	pr, err := prefs.Load(path)
	if err != nil {
		log.Fatal().Err(err).Msg("preferences load failed")
	}

	a := &app{log: log, prefs: pr, prefsPath: path}

	// --------------------
	// Dispatch
	// --------------------

	cmd, args := flags.Arg(0), flags.Args()[1:]

	switch cmd {
	case "new":
		err = a.cmdNew(args)
	case "fmt":
		err = a.cmdFmt(args)
	case "show":
		err = a.cmdShow(args)
	case "check":
		err = a.cmdCheck(args)
	case "export":
		err = a.cmdExport(args)
	case "import":
		err = a.cmdImport(args)
	case "set":
		err = a.cmdSet(args)
	case "units":
		err = a.cmdUnits(args)
	default:
		flags.Usage()
		os.Exit(2)
	}

	if err != nil {
		log.Error().Err(err).Str("command", cmd).Msg("command failed")
		os.Exit(1)
	}
}

// document returns a session wired to the preferences.
func (a *app) document(units config.DisplayUnits) *session.Document {
	return session.New(units,
		session.WithLogger(a.log),
		session.WithFolderRecorder(a.prefs),
	)
}

// savePrefs persists remembered state; failure is not fatal.
func (a *app) savePrefs() {
	if err := a.prefs.Save(a.prefsPath); err != nil {
		a.log.Warn().Err(err).Str("path", a.prefsPath).Msg("preferences not saved")
	}
}

func (a *app) cmdNew(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("new: expected <out.txt>")
	}

	doc := a.document(a.prefs.DisplayUnits())
	if err := doc.SaveAs(args[0]); err != nil {
		return err
	}
	a.savePrefs()

	a.log.Info().Str("path", args[0]).Msg("default configuration written")
	return nil
}

func (a *app) cmdFmt(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("fmt: expected <in.txt> [out.txt]")
	}

	doc := a.document(a.prefs.DisplayUnits())
	if err := doc.Open(args[0]); err != nil {
		return err
	}

	if err := config.Validate(&doc.Config); err != nil {
		a.log.Warn().Err(err).Str("path", args[0]).Msg("configuration has issues")
	}

	out := args[0]
	if len(args) == 2 {
		out = args[1]
	}
	if err := doc.SaveAs(out); err != nil {
		return err
	}
	a.savePrefs()

	a.log.Info().Str("in", args[0]).Str("out", out).Msg("configuration rewritten")
	return nil
}

func (a *app) cmdShow(args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	unitsFlag := fs.String("units", "", "metric or imperial (default: preference)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("show: expected <file>")
	}

	units := a.prefs.DisplayUnits()
	if *unitsFlag != "" {
		u, ok := config.ParseDisplayUnits(*unitsFlag)
		if !ok {
			return fmt.Errorf("show: unknown units %q", *unitsFlag)
		}
		units = u
	}

	doc := a.document(units)
	if err := doc.Open(fs.Arg(0)); err != nil {
		return err
	}
	a.savePrefs()

	fmt.Print(render(doc.DisplayName(), &doc.Config))
	return nil
}

func (a *app) cmdCheck(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("check: expected <file>")
	}

	cfg, err := configfile.Load(args[0], a.prefs.DisplayUnits())
	if err != nil {
		return err
	}
	if err := config.Validate(&cfg); err != nil {
		return fmt.Errorf("check %s: %w", args[0], err)
	}

	a.log.Info().Str("path", args[0]).Msg("configuration ok")
	return nil
}

func (a *app) cmdExport(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("export: expected <file>")
	}

	cfg, err := configfile.Load(args[0], a.prefs.DisplayUnits())
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}

func (a *app) cmdImport(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("import: expected <in.yaml> <out.txt>")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	cfg, err := decodeYAML(data, a.prefs.DisplayUnits())
	if err != nil {
		return fmt.Errorf("import %s: %w", args[0], err)
	}

	doc := a.document(cfg.DisplayUnits)
	doc.Config = cfg
	if err := doc.SaveAs(args[1]); err != nil {
		return err
	}
	a.savePrefs()

	a.log.Info().Str("in", args[0]).Str("out", args[1]).Msg("configuration imported")
	return nil
}

// decodeYAML builds a configuration from an export, starting from defaults.
// The result MUST pass Validate: the device file has no escaping, so a
// string carrying a line break would inject extra keys.
func decodeYAML(data []byte, units config.DisplayUnits) (config.Config, error) {
	cfg := config.Default(units)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return config.Config{}, err
	}
	config.Normalize(&cfg)

	if err := config.Validate(&cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func (a *app) cmdSet(args []string) error {
	fs := flag.NewFlagSet("set", flag.ContinueOnError)
	unitsFlag := fs.String("units", "", "units of <value>: metric or imperial (default: preference)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 3 {
		return fmt.Errorf("set: expected <file> <field> <value>")
	}
	path, field, value := fs.Arg(0), fs.Arg(1), fs.Arg(2)

	doc := a.document(a.prefs.DisplayUnits())
	if *unitsFlag != "" {
		u, ok := config.ParseDisplayUnits(*unitsFlag)
		if !ok {
			return fmt.Errorf("set: unknown units %q", *unitsFlag)
		}
		doc.SetUnits(u)
	}
	if err := doc.Open(path); err != nil {
		return err
	}

	if err := setField(&doc.Config, field, value); err != nil {
		return fmt.Errorf("set %s: %w", path, err)
	}

	if !doc.Modified() {
		a.log.Info().Str("path", path).Str("field", field).Msg("value unchanged")
		return nil
	}
	if err := doc.Save(); err != nil {
		return err
	}
	a.savePrefs()

	a.log.Info().Str("path", path).Str("field", field).
		Str("value", value).Str("units", doc.Config.DisplayUnits.String()).
		Msg("value stored")
	return nil
}

func (a *app) cmdUnits(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("units: expected metric or imperial")
	}

	u, ok := config.ParseDisplayUnits(args[0])
	if !ok {
		return fmt.Errorf("units: unknown units %q", args[0])
	}

	a.prefs.SetDisplayUnits(u)
	if err := a.prefs.Save(a.prefsPath); err != nil {
		return err
	}

	a.log.Info().Str("units", u.String()).Msg("display units stored")
	return nil
}
