package config

import (
	"fmt"

	"github.com/alt3/tokens-go/internal/cli/output"
	"github.com/alt3/tokens-go/pkg/token"
)

// CLIConfig is the configuration for tokens-cli.
type CLIConfig struct {
	Token  TokenConfig  `koanf:"token" json:"token" yaml:"token"`
	Output OutputConfig `koanf:"output" json:"output" yaml:"output"`
	Log    LogConfig    `koanf:"log" json:"log" yaml:"log"`
}

// TokenConfig holds defaults applied to generated tokens.
type TokenConfig struct {
	Lifetime string `koanf:"lifetime" json:"lifetime" yaml:"lifetime"`
	Length   int    `koanf:"length" json:"length" yaml:"length"` // random bytes length in hex characters
	Category string `koanf:"category" json:"category" yaml:"category"`
}

// OutputConfig selects how tokens are printed.
type OutputConfig struct {
	Format string `koanf:"format" json:"format" yaml:"format"` // table, json, yaml
	Wide   bool   `koanf:"wide" json:"wide" yaml:"wide"`
}

// LogConfig configures diagnostic logging on stderr.
type LogConfig struct {
	Level  string `koanf:"level" json:"level" yaml:"level"`
	Format string `koanf:"format" json:"format" yaml:"format"`
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		Token: TokenConfig{
			Lifetime: token.DefaultLifetime,
			Length:   token.DefaultLength,
		},
		Output: OutputConfig{
			Format: string(output.FormatTable),
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// defaultMap flattens Default() into loader keys.
func defaultMap() map[string]any {
	d := Default()
	return map[string]any{
		"token.lifetime": d.Token.Lifetime,
		"token.length":   d.Token.Length,
		"token.category": d.Token.Category,
		"output.format":  d.Output.Format,
		"output.wide":    d.Output.Wide,
		"log.level":      d.Log.Level,
		"log.format":     d.Log.Format,
	}
}

// Validate checks the configuration and normalizes the output format name.
func (c *CLIConfig) Validate() error {
	if _, err := token.ParseLifetime(c.Token.Lifetime); err != nil {
		return fmt.Errorf("token.lifetime: %w", err)
	}
	if c.Token.Length <= 0 || c.Token.Length%2 != 0 {
		return fmt.Errorf("token.length: must be a positive even number, got %d", c.Token.Length)
	}
	format, err := output.ParseFormat(c.Output.Format)
	if err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	c.Output.Format = string(format)
	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level: unsupported level %q", c.Log.Level)
	}
	return nil
}
