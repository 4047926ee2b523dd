// Package main provides the entry point for tokens-cli.
//
// The CLI generates expiring tokens for password resets, invitations and
// account verification, and hashes them for storage:
//
//	tokens-cli generate bytes --length 64 --category reset
//	tokens-cli -o json generate uuid --lifetime "+2 hours" --payload '{"uid":1}'
//	tokens-cli hash 3f9a...
//	tokens-cli verify 3f9a... <sha256>
package main
