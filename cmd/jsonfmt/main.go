// Command jsonfmt reformats and inspects JSON documents.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"gopkg.in/yaml.v2"

	"github.com/jsondoc-go/jsondoc/pkg/intern"
)

func main() {
	app := kingpin.New("jsonfmt", "A command-line tool to reformat and inspect JSON documents.")
	logLevel := app.Flag("log.level", "Log level.").Default("info").Enum("debug", "info", "warn", "error")
	configFile := app.Flag("config.file", "YAML file with key registry settings.").String()
	app.PreAction(func(*kingpin.ParseContext) error {
		return setup(*logLevel, *configFile)
	})

	addFmtCommand(app)
	addStatsCommand(app)

	kingpin.MustParse(app.Parse(os.Args[1:]))
}

// setup builds the process-wide key registry from the config file, if any,
// before a command touches a document.
func setup(logLevel, configFile string) error {
	logger := level.NewFilter(log.NewLogfmtLogger(os.Stderr), allowLevel(logLevel))

	cfg := intern.DefaultConfig()
	if configFile != "" {
		buf, err := os.ReadFile(configFile)
		if err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.UnmarshalStrict(buf, &cfg); err != nil {
			return fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	reg, err := intern.New(cfg, log.With(logger, "component", "intern"))
	if err != nil {
		return err
	}
	intern.DefaultRegistry = reg
	return nil
}

func allowLevel(name string) level.Option {
	switch name {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}

func exitWithErr(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
