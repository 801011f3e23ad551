package config

import (
	"sort"

	"github.com/arthur-debert/chatstyle/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/v2"
)

// Options selects the layers Load merges
type Options struct {
	// Path names the user config file; "" tries $CHATSTYLE_CONFIG and then
	// the default location
	Path string
	// Set holds key=value overrides applied last
	Set []string
	// IgnoreEnv skips CHATSTYLE_* variables
	IgnoreEnv bool
}

// Load merges every configuration layer and decodes the result
func Load(opts Options) (*Config, error) {
	k, source, err := newKoanf(opts)
	if err != nil {
		return nil, err
	}

	cfg, err := decode(k)
	if err != nil {
		return nil, err
	}
	cfg.Source = source

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	var md mapstructure.Metadata
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "mapstructure",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			Metadata:         &md,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	sort.Strings(md.Unused)
	for _, key := range md.Unused {
		log.Warn().Str("key", key).Msg("Ignoring unknown configuration key")
	}
	return &cfg, nil
}
