package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/alt3/tokens-go/internal/cli/output"
	"github.com/alt3/tokens-go/pkg/token"
)

// HashCommand returns the hash command.
func HashCommand() *cli.Command {
	return &cli.Command{
		Name:      "hash",
		Usage:     "Print the SHA-256 digest of a token value",
		ArgsUsage: "VALUE",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "argon2id",
				Usage: "Use a salted Argon2id hash, for short low-entropy values",
			},
		},
		Action: hashAction,
	}
}

// VerifyCommand returns the verify command.
func VerifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "Check a token value against a stored digest",
		ArgsUsage: "VALUE HASH",
		Action:    verifyAction,
	}
}

func hashAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: hash VALUE")
	}

	v := token.StringValue(c.Args().First())
	digest := token.Hash(v)
	if c.Bool("argon2id") {
		var err error
		if digest, err = token.HashArgon2id(v); err != nil {
			return err
		}
	}

	switch output.Format(GetConfig(c).Output.Format) {
	case output.FormatJSON, output.FormatYAML:
		return formatter(c).Format(c.App.Writer, map[string]string{"hash": digest})
	default:
		_, err := fmt.Fprintln(c.App.Writer, digest)
		return err
	}
}

func verifyAction(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("usage: verify VALUE HASH")
	}

	ok := token.Verify(token.StringValue(c.Args().Get(0)), c.Args().Get(1))
	GetLogger(c).Debug("token verified", "match", ok)

	switch output.Format(GetConfig(c).Output.Format) {
	case output.FormatJSON, output.FormatYAML:
		if err := formatter(c).Format(c.App.Writer, map[string]bool{"match": ok}); err != nil {
			return err
		}
	default:
		if ok {
			fmt.Fprintln(c.App.Writer, "OK")
		}
	}

	if !ok {
		return cli.Exit("hash mismatch", 1)
	}
	return nil
}
