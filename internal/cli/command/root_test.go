package command

import (
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
)

func TestApp(t *testing.T) {
	app := App()
	if app.Name != "tokens-cli" {
		t.Errorf("Name = %q, want %q", app.Name, "tokens-cli")
	}
	if app.Usage == "" {
		t.Error("Usage should not be empty")
	}

	commandNames := make(map[string]bool)
	for _, cmd := range app.Commands {
		commandNames[cmd.Name] = true
	}
	for _, name := range []string{"generate", "hash", "verify", "config", "version"} {
		if !commandNames[name] {
			t.Errorf("missing required command: %s", name)
		}
	}
}

func TestApp_GlobalFlags(t *testing.T) {
	flagNames := make(map[string]bool)
	for _, flag := range App().Flags {
		flagNames[flag.Names()[0]] = true
	}
	for _, name := range []string{"config", "output", "wide", "verbose", "log-level", "metrics"} {
		if !flagNames[name] {
			t.Errorf("missing required flag: %s", name)
		}
	}
}

func TestGlobalFlags_Overrides(t *testing.T) {
	tests := []struct {
		name  string
		flags GlobalFlags
		want  map[string]any
	}{
		{"none", GlobalFlags{}, map[string]any{}},
		{"output", GlobalFlags{Output: "json", Wide: true}, map[string]any{"output.format": "json", "output.wide": true}},
		{"log level", GlobalFlags{LogLevel: "info"}, map[string]any{"log.level": "info"}},
		{"verbose wins", GlobalFlags{LogLevel: "error", Verbose: true}, map[string]any{"log.level": "debug"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.flags.overrides()
			if len(got) != len(tt.want) {
				t.Fatalf("overrides() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("overrides()[%q] = %v, want %v", k, got[k], v)
				}
			}
		})
	}
}

func TestGetters_WithoutSetup(t *testing.T) {
	app := &cli.App{Metadata: map[string]any{}}
	ctx := cli.NewContext(app, nil, nil)

	if cfg := GetConfig(ctx); cfg.Token.Lifetime != "+3 days" {
		t.Errorf("GetConfig() lifetime = %q, want default", cfg.Token.Lifetime)
	}
	if GetLogger(ctx) == nil {
		t.Error("GetLogger() returned nil")
	}
	if GetMetrics(ctx) == nil {
		t.Error("GetMetrics() returned nil")
	}
}

func TestSetup_InvalidConfig(t *testing.T) {
	path := writeConfig(t, "output:\n  format: xml\n")

	_, _, err := runApp(t, "--config", path, "version")
	if err == nil || !strings.Contains(err.Error(), "output.format") {
		t.Fatalf("expected output.format error, got %v", err)
	}
}

func TestSetup_MissingExplicitConfig(t *testing.T) {
	_, _, err := runApp(t, "--config", "/nonexistent/cli.yaml", "version")
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestMetricsFlag(t *testing.T) {
	_, stderr, err := runApp(t, "--metrics", "generate", "manual", "--count", "2", "dummy")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stderr, `tokens_generated_total{adapter="manual"} 2`) {
		t.Errorf("metrics not written to stderr: %q", stderr)
	}
}

func TestVerboseLogging_RedactsValues(t *testing.T) {
	_, stderr, err := runApp(t, "--verbose", "generate", "manual", "supersecretvalue")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stderr, "token generated") {
		t.Errorf("expected debug log, got %q", stderr)
	}
	if strings.Contains(stderr, "supersecretvalue") {
		t.Errorf("token value leaked into logs: %q", stderr)
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := runApp(t, "version")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(stdout, "tokens-cli ") {
		t.Errorf("version output = %q", stdout)
	}

	stdout, _, err = runApp(t, "-o", "json", "version")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stdout, `"version"`) {
		t.Errorf("json version output = %q", stdout)
	}
}
