package confloader

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultEnvPrefix is the default environment variable prefix.
const DefaultEnvPrefix = "TOKENS_"

// Loader merges configuration layers into a single koanf tree.
type Loader struct {
	k         *koanf.Koanf
	envPrefix string
	filePath  string
	defaults  map[string]any
	overrides map[string]any
	strict    bool
	loaded    bool
}

// Option configures a Loader.
type Option func(*Loader)

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(l *Loader) { l.envPrefix = prefix }
}

// WithConfigFile sets the YAML file layer. An empty path skips it.
func WithConfigFile(path string) Option {
	return func(l *Loader) { l.filePath = path }
}

// WithDefaults sets the lowest priority layer.
func WithDefaults(defaults map[string]any) Option {
	return func(l *Loader) { l.defaults = defaults }
}

// WithOverrides sets the highest priority layer, typically flags.
func WithOverrides(overrides map[string]any) Option {
	return func(l *Loader) { l.overrides = overrides }
}

// WithStrict makes Load fail on keys the target struct does not declare.
func WithStrict() Option {
	return func(l *Loader) { l.strict = true }
}

// NewLoader creates a new configuration loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		envPrefix: DefaultEnvPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load applies defaults, file, environment and overrides, each layer
// replacing keys of the previous ones, then decodes into target.
func (l *Loader) Load(target any) error {
	layers := []struct {
		name string
		load func() error
	}{
		{"defaults", func() error { return l.LoadMap(l.defaults) }},
		{"config file", func() error { return l.LoadFile(l.filePath) }},
		{"env", l.LoadEnv},
		{"overrides", func() error { return l.LoadMap(l.overrides) }},
	}

	for _, layer := range layers {
		if err := layer.load(); err != nil {
			return fmt.Errorf("load %s: %w", layer.name, err)
		}
	}

	if err := l.Unmarshal(target); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	l.loaded = true
	return nil
}

// LoadFile merges a YAML file. An empty path is a no-op.
func (l *Loader) LoadFile(path string) error {
	if path == "" {
		return nil
	}
	if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadEnv merges prefixed environment variables: TOKENS_OUTPUT_FORMAT=json
// sets output.format. Variables that do not name a section.key pair, such
// as TOKENS_CONFIG, are ignored.
func (l *Loader) LoadEnv() error {
	return l.k.Load(env.Provider(l.envPrefix, ".", l.envKey), nil)
}

func (l *Loader) envKey(name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, l.envPrefix))
	key = strings.ReplaceAll(key, "_", ".")
	if !strings.Contains(key, ".") {
		return ""
	}
	return key
}

// LoadMap merges a map of dotted keys. A nil or empty map is a no-op.
func (l *Loader) LoadMap(data map[string]any) error {
	if len(data) == 0 {
		return nil
	}
	return l.k.Load(mapProvider(data), nil)
}

// Unmarshal decodes the merged tree into target using koanf struct tags.
// Strings are weakly converted to numbers, booleans and durations.
func (l *Loader) Unmarshal(target any) error {
	return l.k.UnmarshalWithConf("", target, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.TextUnmarshallerHookFunc(),
			),
			ErrorUnused:      l.strict,
			WeaklyTypedInput: true,
			Result:           target,
		},
	})
}

// GetString returns a string value from the merged tree.
func (l *Loader) GetString(key string) string {
	return l.k.String(key)
}

// GetInt returns an int value from the merged tree.
func (l *Loader) GetInt(key string) int {
	return l.k.Int(key)
}

// IsLoaded reports whether Load has completed successfully.
func (l *Loader) IsLoaded() bool {
	return l.loaded
}

// Keys returns all keys in the merged tree.
func (l *Loader) Keys() []string {
	return l.k.Keys()
}
