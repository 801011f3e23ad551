// Package config loads chatstyle configuration.
//
// Configuration is layered with koanf, later layers overriding earlier ones:
//
//  1. the embedded defaults (embedded/defaults.toml)
//  2. the user file: --config, $CHATSTYLE_CONFIG or
//     $XDG_CONFIG_HOME/chatstyle/config.toml (TOML or YAML)
//  3. CHATSTYLE_* environment variables, "__" separating nested keys
//  4. --set key=value overrides, "." separating nested keys
//
// The merged tree is decoded into Config, whose styles are handed to the
// style resolver as style.RawStyleData records.
package config
