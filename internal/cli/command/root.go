package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/alt3/tokens-go/internal/cli/config"
	"github.com/alt3/tokens-go/internal/cli/output"
	"github.com/alt3/tokens-go/internal/infra/buildinfo"
	"github.com/alt3/tokens-go/internal/telemetry/logger"
	"github.com/alt3/tokens-go/internal/telemetry/metric"
)

// Metadata keys populated by the Before hook.
const (
	metaConfig  = "config"
	metaMetrics = "metrics"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "tokens-cli",
		Usage:   "Generate expiring tokens for resets, invitations and verification links",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			GenerateCommand(),
			HashCommand(),
			VerifyCommand(),
			ConfigCommand(),
			VersionCommand(),
		},
		Before: setup,
		After:  teardown,
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to the CLI configuration file",
			EnvVars: []string{"TOKENS_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
		},
		&cli.BoolFlag{
			Name:    "wide",
			Aliases: []string{"w"},
			Usage:   "Show wide output (more columns)",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable debug logging",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.BoolFlag{
			Name:  "metrics",
			Usage: "Write generation metrics to stderr on exit",
		},
	}
}

// GlobalFlags holds the global flags explicitly set on the command line.
type GlobalFlags struct {
	Config   string
	Output   string
	Wide     bool
	Verbose  bool
	LogLevel string
	Metrics  bool
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		Config:   c.String("config"),
		Output:   c.String("output"),
		Wide:     c.Bool("wide"),
		Verbose:  c.Bool("verbose"),
		LogLevel: c.String("log-level"),
		Metrics:  c.Bool("metrics"),
	}
}

// overrides maps explicitly set flags onto configuration keys.
func (f *GlobalFlags) overrides() map[string]any {
	o := make(map[string]any)
	if f.Output != "" {
		o["output.format"] = f.Output
	}
	if f.Wide {
		o["output.wide"] = true
	}
	if f.LogLevel != "" {
		o["log.level"] = f.LogLevel
	}
	if f.Verbose {
		o["log.level"] = "debug"
	}
	return o
}

// setup loads configuration and initializes logging and metrics.
func setup(c *cli.Context) error {
	flags := ParseGlobalFlags(c)

	cfg, err := config.Load(flags.Config, flags.overrides())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: c.App.ErrWriter,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	c.App.Metadata[metaConfig] = cfg
	c.App.Metadata[metaMetrics] = metric.NewRegistry()
	c.Context = logger.WithLogger(c.Context, log)
	logger.SetDefault(log)

	log.Debug("configuration loaded",
		"format", cfg.Output.Format,
		"lifetime", cfg.Token.Lifetime,
	)
	return nil
}

// teardown dumps metrics when requested. It runs even if setup failed.
func teardown(c *cli.Context) error {
	if !c.Bool("metrics") {
		return nil
	}
	r, ok := c.App.Metadata[metaMetrics].(*metric.Registry)
	if !ok {
		return nil
	}
	return r.WriteText(c.App.ErrWriter)
}

// GetConfig retrieves the loaded configuration, or defaults.
func GetConfig(c *cli.Context) *config.CLIConfig {
	if cfg, ok := c.App.Metadata[metaConfig].(*config.CLIConfig); ok {
		return cfg
	}
	return config.Default()
}

// GetLogger retrieves the command logger from the context.
func GetLogger(c *cli.Context) logger.Logger {
	return logger.FromContext(c.Context)
}

// GetMetrics retrieves the run's metric registry, or the global one.
func GetMetrics(c *cli.Context) *metric.Registry {
	if r, ok := c.App.Metadata[metaMetrics].(*metric.Registry); ok {
		return r
	}
	return metric.Global()
}

// formatter returns the formatter selected by configuration.
func formatter(c *cli.Context) output.Formatter {
	cfg := GetConfig(c)
	return output.NewFormatter(output.Format(cfg.Output.Format), cfg.Output.Wide)
}
