package command

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"
	"golang.org/x/time/rate"

	"github.com/alt3/tokens-go/internal/cli/output"
	"github.com/alt3/tokens-go/internal/telemetry/metric"
	"github.com/alt3/tokens-go/pkg/token"
)

// GenerateCommand returns the generate subcommand group.
func GenerateCommand() *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "Generate tokens",
		Subcommands: []*cli.Command{
			{
				Name:      "manual",
				Usage:     "Wrap a value issued elsewhere",
				ArgsUsage: "VALUE",
				Flags:     tokenFlags(),
				Action:    generateManual,
			},
			{
				Name:  "bytes",
				Usage: "Generate a random hex token",
				Flags: append(tokenFlags(),
					&cli.IntFlag{
						Name:    "length",
						Aliases: []string{"l"},
						Usage:   "Token length in hex characters (positive, even)",
					},
					&cli.BoolFlag{
						Name:  "raw",
						Usage: "Keep the raw bytes instead of hex encoding",
					},
				),
				Action: generateBytes,
			},
			{
				Name:  "int",
				Usage: "Generate a random integer token",
				Flags: append(tokenFlags(),
					&cli.Int64Flag{
						Name:     "min",
						Usage:    "Lower bound (inclusive)",
						Required: true,
					},
					&cli.Int64Flag{
						Name:     "max",
						Usage:    "Upper bound (inclusive)",
						Required: true,
					},
				),
				Action: generateInt,
			},
			{
				Name:   "ulid",
				Usage:  "Generate a ULID token",
				Flags:  tokenFlags(),
				Action: generateULID,
			},
			{
				Name:   "uuid",
				Usage:  "Generate a random UUID (v4) token",
				Flags:  tokenFlags(),
				Action: generateUUID,
			},
			{
				Name:   "ksuid",
				Usage:  "Generate a KSUID token",
				Flags:  tokenFlags(),
				Action: generateKSUID,
			},
			{
				Name:  "nanoid",
				Usage: "Generate a NanoID token",
				Flags: append(tokenFlags(),
					&cli.IntFlag{
						Name:  "size",
						Usage: "Number of characters",
						Value: token.DefaultNanoIDSize,
					},
					&cli.StringFlag{
						Name:  "alphabet",
						Usage: "Characters to draw from",
						Value: token.DefaultNanoIDAlphabet,
					},
				),
				Action: generateNanoID,
			},
		},
	}
}

// tokenFlags returns the flags shared by all generate subcommands.
func tokenFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "lifetime",
			Usage: "Relative lifetime, e.g. \"+3 days\" or \"90 minutes\"",
		},
		&cli.StringFlag{
			Name:  "category",
			Usage: "Category label, e.g. reset or invite",
		},
		&cli.StringFlag{
			Name:  "payload",
			Usage: "Payload to attach; parsed as JSON when valid",
		},
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Usage:   "Number of tokens to generate",
			Value:   1,
		},
		&cli.Float64Flag{
			Name:  "rate",
			Usage: "Maximum tokens per second for batches (0 = unlimited)",
		},
	}
}

func generateManual(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: generate manual VALUE")
	}
	return runGenerate(c, token.NewManual(c.Args().First()))
}

func generateBytes(c *cli.Context) error {
	length := GetConfig(c).Token.Length
	if c.IsSet("length") {
		length = c.Int("length")
	}

	opts := []token.RandomBytesOption{token.WithLength(length)}
	if c.Bool("raw") {
		opts = append(opts, token.AsBytes())
	}

	g, err := token.NewRandomBytes(opts...)
	if err != nil {
		return err
	}
	return runGenerate(c, g)
}

func generateInt(c *cli.Context) error {
	return runGenerate(c, token.NewRandomInt(c.Int64("min"), c.Int64("max")))
}

func generateULID(c *cli.Context) error {
	return runGenerate(c, token.NewULID())
}

func generateUUID(c *cli.Context) error {
	return runGenerate(c, token.NewUUID(nil))
}

func generateKSUID(c *cli.Context) error {
	return runGenerate(c, token.NewKSUID())
}

func generateNanoID(c *cli.Context) error {
	g, err := token.NewNanoID(c.Int("size"), c.String("alphabet"))
	if err != nil {
		return err
	}
	return runGenerate(c, g)
}

// runGenerate creates --count tokens from g and prints them.
func runGenerate(c *cli.Context, g token.Generator) error {
	count := c.Int("count")
	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}

	limiter, err := batchLimiter(c.Float64("rate"))
	if err != nil {
		return err
	}

	opts := tokenOptions(c)
	log := GetLogger(c).With("adapter", token.AdapterName(g))
	instrumented := metric.Instrument(g, GetMetrics(c))

	tokens := make([]*token.Token, 0, count)
	for i := 0; i < count; i++ {
		if err := limiter.Wait(c.Context); err != nil {
			return err
		}
		t, err := token.New(instrumented, opts...)
		if err != nil {
			log.Error("token generation failed", "error", err)
			return err
		}
		log.Debug("token generated",
			"token", t.Token().String(),
			"category", t.Category(),
			"expires", t.Expires(),
		)
		tokens = append(tokens, t)
	}

	return printTokens(c, tokens)
}

// batchLimiter returns a limiter admitting perSecond tokens per second with a
// burst of one second's worth. Zero means unlimited.
func batchLimiter(perSecond float64) (*rate.Limiter, error) {
	if perSecond < 0 {
		return nil, fmt.Errorf("rate must not be negative, got %v", perSecond)
	}
	if perSecond == 0 {
		return rate.NewLimiter(rate.Inf, 1), nil
	}
	return rate.NewLimiter(rate.Limit(perSecond), max(1, int(perSecond))), nil
}

// tokenOptions builds token options from flags, falling back to configuration.
func tokenOptions(c *cli.Context) []token.Option {
	cfg := GetConfig(c)

	lifetime := cfg.Token.Lifetime
	if c.IsSet("lifetime") {
		lifetime = c.String("lifetime")
	}
	opts := []token.Option{token.WithLifetime(lifetime)}
	switch {
	case c.IsSet("category"):
		opts = append(opts, token.WithCategory(c.String("category")))
	case cfg.Token.Category != "":
		opts = append(opts, token.WithCategory(cfg.Token.Category))
	}
	if c.IsSet("payload") {
		opts = append(opts, token.WithPayload(parsePayload(c.String("payload"))))
	}
	return opts
}

// parsePayload decodes s as JSON, or returns it unchanged when it is not JSON.
func parsePayload(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	return v
}

func printTokens(c *cli.Context, tokens []*token.Token) error {
	w := c.App.Writer
	cfg := GetConfig(c)

	if output.Format(cfg.Output.Format).Structured() {
		f := formatter(c)
		if len(tokens) == 1 {
			return f.Format(w, tokens[0].Snapshot())
		}
		snapshots := make([]token.Snapshot, len(tokens))
		for i, t := range tokens {
			snapshots[i] = t.Snapshot()
		}
		return f.Format(w, snapshots)
	}

	if len(tokens) == 1 {
		table := &output.Table{Headers: []string{"FIELD", "VALUE"}}
		for _, f := range tokens[0].Snapshot().Fields() {
			table.AddRow(f.Key, displayField(f.Value))
		}
		return table.Render(w)
	}

	table := &output.Table{Headers: []string{"VALUE", "CATEGORY", "EXPIRES"}}
	if cfg.Output.Wide {
		table.Headers = append(table.Headers, "ADAPTER", "LIFETIME", "CREATED", "PAYLOAD")
	}
	for _, t := range tokens {
		s := t.Snapshot()
		row := []string{displayField(s.Value), displayField(s.Category), s.Expires}
		if cfg.Output.Wide {
			row = append(row, displayField(s.Adapter), s.Lifetime, s.Created, displayField(s.Payload))
		}
		table.AddRow(row...)
	}
	return table.Render(w)
}

// displayField renders one snapshot field for table output. Binary values
// are shown hex encoded; structured payloads as compact JSON.
func displayField(v any) string {
	switch v := v.(type) {
	case token.Value:
		if v.IsBinary() {
			return hex.EncodeToString(v.Bytes())
		}
		return output.FormatCell(v.String())
	case token.Generator:
		return token.Describe(v)
	case nil, string:
		return output.FormatCell(v)
	case map[string]any, []any:
		b, err := json.Marshal(v)
		if err != nil {
			return output.FormatCell(v)
		}
		return string(b)
	default:
		return output.FormatCell(v)
	}
}
