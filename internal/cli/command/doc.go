// Package command provides CLI command definitions for tokens-cli.
//
// Commands:
//
//   - generate: create tokens from any adapter (manual, bytes, int, ulid, uuid, ksuid, nanoid)
//   - hash, verify: SHA-256 or Argon2id digests for storing tokens at rest
//   - config: show and validate the effective CLI configuration
//   - version: build information
package command
