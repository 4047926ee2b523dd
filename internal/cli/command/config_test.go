package command

import (
	"strings"
	"testing"
)

func TestConfigShow(t *testing.T) {
	stdout, _, err := runApp(t, "config", "show")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{"token.lifetime", "+3 days", "token.length", "32", "output.format", "table"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q: %q", want, stdout)
		}
	}
}

func TestConfigShow_YAML(t *testing.T) {
	path := writeConfig(t, "token:\n  category: reset\n")

	stdout, _, err := runApp(t, "--config", path, "-o", "yaml", "config", "show")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{"token:\n", "3 days", "  category: reset\n", "  format: yaml\n"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q: %q", want, stdout)
		}
	}
}

func TestConfigValidateAndPath(t *testing.T) {
	path := writeConfig(t, "log:\n  level: info\n")

	stdout, _, err := runApp(t, "--config", path, "config", "validate")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stdout, path) {
		t.Errorf("validate output = %q", stdout)
	}

	stdout, _, err = runApp(t, "--config", path, "config", "path")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.TrimSpace(stdout) != path {
		t.Errorf("path = %q, want %q", stdout, path)
	}
}
