// Package config provides CLI configuration for tokens-cli.
//
//   - spec.go: CLIConfig struct (~/.tokens/cli.yaml)
//   - loader.go: Layered loading through confloader
//
// Configuration covers token defaults (lifetime, length, category), the
// output format and logging.
package config
