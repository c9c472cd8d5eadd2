// Command octdump encodes, decodes and sizes values in the oct binary format.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/rs/zerolog"

	"github.com/stewi1014/oct/internal/registry"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if _, err := app.Parse(os.Args[1:]); err != nil {
		exitWithErr(err)
	}
}

// globals holds the state shared by every command, set up before a command runs.
type globals struct {
	configFile string
	format     string
	logLevel   string

	cfg      Config
	logger   zerolog.Logger
	registry *registry.Registry

	stdout io.Writer
	stderr io.Writer
}

func newApp(stdout, stderr io.Writer) *kingpin.Application {
	app := kingpin.New("octdump", "Encode, decode and size values in the oct binary format.")
	app.UsageWriter(stdout)
	app.ErrorWriter(stderr)

	g := &globals{
		registry: registry.Default(),
		stdout:   stdout,
		stderr:   stderr,
	}
	app.Flag("config", "YAML configuration file.").StringVar(&g.configFile)
	app.Flag("format", "Text form of encoded data.").EnumVar(&g.format, formatHex, formatBase64)
	app.Flag("log-level", "Log level: debug, info, warn, error or disabled.").StringVar(&g.logLevel)
	app.PreAction(g.setup)

	addEncodeCommand(app, g)
	addDecodeCommand(app, g)
	addSizesCommand(app, g)
	return app
}

// setup loads the configuration file, applies flag overrides and creates the logger.
func (g *globals) setup(*kingpin.ParseContext) error {
	cfg := DefaultConfig()
	if g.configFile != "" {
		var err error
		if cfg, err = LoadConfig(g.configFile); err != nil {
			return err
		}
	}

	if g.format != "" {
		cfg.Format = g.format
	}
	if g.logLevel != "" {
		cfg.LogLevel = g.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	g.cfg = cfg
	g.logger = zerolog.New(zerolog.ConsoleWriter{Out: g.stderr, NoColor: true}).
		Level(cfg.Level()).
		With().Timestamp().Logger()

	g.logger.Debug().
		Str("config", g.configFile).
		Str("format", cfg.Format).
		Str("max_data", cfg.MaxData).
		Msg("configured")
	return nil
}

func exitWithErr(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
