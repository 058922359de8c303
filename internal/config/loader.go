package config

import (
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// EnvPrefix is the prefix of environment variables overriding configuration
// keys. An underscore separates hierarchy levels, so RECORDDB_LOG_LEVEL sets
// log.level.
const EnvPrefix = "RECORDDB_"

var ErrConfiguration = errors.New("configuration error")

// Load builds the configuration from, in increasing precedence, the built-in
// defaults, the optional YAML file, the environment and the given overrides.
// An empty configFile is skipped; a missing one is an error.
func Load(configFile string, overrides map[string]any) (*Configuration, error) {
	parser := koanf.New(".")

	if err := parser.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrapf(ErrConfiguration, "failed to load defaults: %v", err)
	}

	if len(configFile) != 0 {
		raw, err := os.ReadFile(configFile)
		if err != nil {
			return nil, errors.Wrapf(ErrConfiguration, "failed to read %s: %v", configFile, err)
		}

		if err := parser.Load(rawbytes.Provider(raw), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(ErrConfiguration, "failed to parse %s: %v", configFile, err)
		}
	}

	if err := parser.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, val string) (string, any) {
			return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), "_", "."), val
		},
	}), nil); err != nil {
		return nil, errors.Wrapf(ErrConfiguration, "failed to parse environment: %v", err)
	}

	if len(overrides) != 0 {
		if err := parser.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrapf(ErrConfiguration, "failed to apply overrides: %v", err)
		}
	}

	var conf Configuration
	if err := parser.UnmarshalWithConf("", &conf, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				logLevelDecodeHookFunc,
				logFormatDecodeHookFunc,
			),
			Result:           &conf,
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return nil, errors.Wrapf(ErrConfiguration, "failed to decode: %v", err)
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(&conf); err != nil {
		return nil, errors.Wrapf(ErrConfiguration, "invalid configuration: %v", err)
	}

	return &conf, nil
}

func logLevelDecodeHookFunc(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(zerolog.Level(0)) {
		return data, nil
	}

	level, err := zerolog.ParseLevel(data.(string))
	if err != nil {
		return nil, err
	}

	return level, nil
}

func logFormatDecodeHookFunc(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(LogTextFormat) {
		return data, nil
	}

	switch data.(string) {
	case "gelf":
		return LogGelfFormat, nil
	case "text", "":
		return LogTextFormat, nil
	default:
		return nil, errors.Errorf("unsupported log format %q", data)
	}
}
