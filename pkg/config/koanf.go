package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/chatstyle/pkg/errors"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// keyDelim separates nested keys inside koanf. Emoticon triggers, custom
// ids and global names may contain dots, so "." is not usable.
const keyDelim = "\x1f"

const (
	// EnvPrefix prefixes every environment override
	EnvPrefix = "CHATSTYLE_"
	// EnvConfigPath names the user config file when --config is not given
	EnvConfigPath = EnvPrefix + "CONFIG"
)

// DefaultPath is where the user config file lives when nothing else is given
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "chatstyle", "config.toml")
}

// UserPath resolves the user config file. An explicitly named file (flag or
// environment) must exist; the default location is optional and "" is
// returned when it is missing.
func UserPath(explicit string) (string, error) {
	if explicit == "" {
		explicit = os.Getenv(EnvConfigPath)
	}
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", explicit).
				WithDetail("path", explicit)
		}
		return explicit, nil
	}

	p := DefaultPath()
	if _, err := os.Stat(p); err != nil {
		return "", nil
	}
	return p, nil
}

// fileParser picks the koanf parser for a config file by extension
func fileParser(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrUnknownFormat, "unsupported config format %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

// newKoanf merges every configuration layer. It returns the user file that
// was loaded, or "" when there was none.
func newKoanf(opts Options) (*koanf.Koanf, string, error) {
	k := koanf.New(keyDelim)

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, "", errors.Wrap(err, errors.ErrInternal, "failed to load embedded defaults")
	}

	// 2. User file
	path, err := UserPath(opts.Path)
	if err != nil {
		return nil, "", err
	}
	if path != "" {
		parser, err := fileParser(path)
		if err != nil {
			return nil, "", err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, "", errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		log.Debug().Str("path", path).Msg("Loaded user config")
	}

	// 3. Environment
	if !opts.IgnoreEnv {
		if err := k.Load(env.Provider(EnvPrefix, keyDelim, envKey), nil); err != nil {
			return nil, "", errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
		}
	}

	// 4. --set overrides
	if len(opts.Set) > 0 {
		overrides, err := parseSets(opts.Set)
		if err != nil {
			return nil, "", err
		}
		if err := k.Load(confmap.Provider(overrides, keyDelim), nil); err != nil {
			return nil, "", errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	return k, path, nil
}

// envKey maps CHATSTYLE_DEFAULT_STYLE__MESSAGES__CHAT onto
// default_style.messages.chat. Returning "" drops the variable.
func envKey(s string) string {
	if s == EnvConfigPath {
		return ""
	}
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", keyDelim)
}

// parseSets turns key=value pairs into a flat override map
func parseSets(sets []string) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(sets))
	for _, s := range sets {
		key, value, ok := strings.Cut(s, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "override %q is not key=value", s).
				WithDetail("override", s)
		}
		out[strings.ReplaceAll(key, ".", keyDelim)] = value
	}
	return out, nil
}
