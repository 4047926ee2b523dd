package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/alt3/tokens-go/internal/cli/output"
	"github.com/alt3/tokens-go/internal/infra/buildinfo"
)

// VersionCommand returns the version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "Show version information",
		Action: versionAction,
	}
}

func versionAction(c *cli.Context) error {
	info := buildinfo.Get()

	switch output.Format(GetConfig(c).Output.Format) {
	case output.FormatJSON, output.FormatYAML:
		return formatter(c).Format(c.App.Writer, info)
	default:
		_, err := fmt.Fprintf(c.App.Writer, "tokens-cli %s\n", info)
		return err
	}
}
