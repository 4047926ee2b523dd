package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/alt3/tokens-go/internal/cli/config"
	"github.com/alt3/tokens-go/internal/cli/output"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "CLI configuration",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the effective configuration",
				Action: configShow,
			},
			{
				Name:   "validate",
				Usage:  "Validate the configuration file",
				Action: configValidate,
			},
			{
				Name:   "path",
				Usage:  "Print the configuration file path",
				Action: configPath,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	cfg := GetConfig(c)

	switch output.Format(cfg.Output.Format) {
	case output.FormatJSON, output.FormatYAML:
		return formatter(c).Format(c.App.Writer, cfg)
	}

	table := &output.Table{Headers: []string{"KEY", "VALUE"}}
	table.AddRow("token.lifetime", output.FormatCell(cfg.Token.Lifetime))
	table.AddRow("token.length", output.FormatCell(cfg.Token.Length))
	table.AddRow("token.category", output.FormatCell(cfg.Token.Category))
	table.AddRow("output.format", output.FormatCell(cfg.Output.Format))
	table.AddRow("output.wide", output.FormatCell(cfg.Output.Wide))
	table.AddRow("log.level", output.FormatCell(cfg.Log.Level))
	table.AddRow("log.format", output.FormatCell(cfg.Log.Format))
	return table.Render(c.App.Writer)
}

// configValidate reports success; loading already validated the file in setup.
func configValidate(c *cli.Context) error {
	path := configFilePath(c)
	_, err := fmt.Fprintf(c.App.Writer, "Configuration valid: %s\n", path)
	return err
}

func configPath(c *cli.Context) error {
	_, err := fmt.Fprintln(c.App.Writer, configFilePath(c))
	return err
}

func configFilePath(c *cli.Context) string {
	if path := c.String("config"); path != "" {
		return path
	}
	return config.DefaultConfigPath()
}
