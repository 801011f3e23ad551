package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/chatstyle/pkg/errors"
	"github.com/arthur-debert/chatstyle/pkg/logging"
	"github.com/arthur-debert/chatstyle/pkg/parser"
	"github.com/arthur-debert/chatstyle/pkg/predicate"
	"github.com/arthur-debert/chatstyle/pkg/style"
	"github.com/muesli/termenv"
)

var log = logging.GetLogger("config")

// Config is the decoded configuration tree
type Config struct {
	// DataDir roots the "from_file" emoticon source
	DataDir string `mapstructure:"data_dir"`

	Parser  ParserConfig      `mapstructure:"parser"`
	Globals map[string]string `mapstructure:"globals"`
	Watch   WatchConfig       `mapstructure:"watch"`
	Server  ServerConfig      `mapstructure:"server"`

	DefaultStyle     style.RawStyleData `mapstructure:"default_style"`
	PermissionStyles []PermissionStyle  `mapstructure:"permission_styles"`

	// Source is the user file the config was loaded from, "" for none
	Source string `mapstructure:"-"`
}

// ParserConfig controls template compilation
type ParserConfig struct {
	LegacyCodes  bool   `mapstructure:"legacy_codes"`
	Normalize    bool   `mapstructure:"normalize"`
	ColorProfile string `mapstructure:"color_profile"`
}

// WatchConfig controls config file watching
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// ServerConfig holds the preview server settings
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// PermissionStyle is one entry of [[permission_styles]]
type PermissionStyle struct {
	Name    string                 `mapstructure:"name"`
	Require map[string]interface{} `mapstructure:"require"`
	Style   style.RawStyleData     `mapstructure:"style"`
}

// Tier is a permission style with its predicate decoded
type Tier struct {
	Name string
	Raw  style.RawStyleData
}

// Profile resolves the configured colour profile
func (c *Config) Profile() (termenv.Profile, error) {
	p, ok := parser.ParseProfile(c.Parser.ColorProfile)
	if !ok {
		return termenv.Ascii, errors.Newf(errors.ErrConfigValid, "unknown color profile %q", c.Parser.ColorProfile).
			WithDetail("field", "parser.color_profile")
	}
	return p, nil
}

// NewParser builds the template parser described by the config
func (c *Config) NewParser() (*parser.Parser, error) {
	profile, err := c.Profile()
	if err != nil {
		return nil, err
	}
	return c.NewParserWithProfile(profile), nil
}

// NewParserWithProfile is NewParser with the colour profile overridden
func (c *Config) NewParserWithProfile(profile termenv.Profile) *parser.Parser {
	return parser.New(
		parser.WithProfile(profile),
		parser.WithLegacyCodes(c.Parser.LegacyCodes),
		parser.WithNormalization(c.Parser.Normalize),
		parser.WithGlobals(parser.NewGlobals(c.Globals)),
	)
}

// ResolvedDataDir is DataDir or, when unset, $XDG_DATA_HOME/chatstyle.
// Relative paths are taken relative to the config file.
func (c *Config) ResolvedDataDir() string {
	dir := c.DataDir
	if dir == "" {
		return filepath.Join(xdg.DataHome, "chatstyle")
	}
	if !filepath.IsAbs(dir) && c.Source != "" {
		dir = filepath.Join(filepath.Dir(c.Source), dir)
	}
	return dir
}

// Tiers decodes the permission styles in order. Unnamed entries are named
// after their position.
func (c *Config) Tiers() ([]Tier, error) {
	tiers := make([]Tier, 0, len(c.PermissionStyles))
	for i, ps := range c.PermissionStyles {
		name := ps.Name
		if name == "" {
			name = fmt.Sprintf("permission_styles[%d]", i)
		}

		raw := ps.Style
		if ps.Require != nil {
			pred, err := predicate.Decode(ps.Require)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigValid, "permission style %s has an invalid require", name).
					WithDetail("style", name)
			}
			raw.Require = pred
		}
		tiers = append(tiers, Tier{Name: name, Raw: raw})
	}
	return tiers, nil
}

// Validate checks what decoding alone cannot
func (c *Config) Validate() error {
	if _, err := c.Profile(); err != nil {
		return err
	}
	if _, err := c.Tiers(); err != nil {
		return err
	}
	seen := map[string]bool{}
	for _, ps := range c.PermissionStyles {
		if ps.Name == "" {
			continue
		}
		if seen[ps.Name] {
			return errors.Newf(errors.ErrConfigValid, "permission style %q defined twice", ps.Name).
				WithDetail("style", ps.Name)
		}
		seen[ps.Name] = true
	}
	return nil
}
