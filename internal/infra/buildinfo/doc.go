// Package buildinfo provides build information for tokens-cli.
//
// Values are injected at link time:
//
//	go build -ldflags "-X github.com/alt3/tokens-go/internal/infra/buildinfo.Version=v1.0.0"
//
// GoVersion falls back to the running toolchain when not injected.
package buildinfo
