// Package confloader loads configuration from layered sources using koanf.
//
// Priority (highest to lowest):
//
//  1. Overrides (command-line flags, loaded with LoadMap)
//  2. Environment variables (TOKENS_ prefix)
//  3. Configuration file (YAML)
//  4. Defaults
//
// Keys are dot separated; TOKENS_TOKEN_LIFETIME maps to token.lifetime.
package confloader
