// Package predicate provides the access checks that gate permission styles.
// Evaluating real permissions belongs to the host; a Subject adapts it.
package predicate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/chatstyle/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
)

// Subject is whoever an event is rendered for
type Subject interface {
	OperatorLevel() int
	HasPermission(node string) bool
}

// Predicate decides whether a style applies to a subject
type Predicate interface {
	Test(s Subject) bool
	String() string
}

// Operator passes subjects with at least the given operator level
type Operator struct {
	Level int
}

func (p Operator) Test(s Subject) bool { return s != nil && s.OperatorLevel() >= p.Level }
func (p Operator) String() string      { return fmt.Sprintf("operator(%d)", p.Level) }

// Permission passes subjects holding a permission node
type Permission struct {
	Node string
}

func (p Permission) Test(s Subject) bool { return s != nil && s.HasPermission(p.Node) }
func (p Permission) String() string      { return "permission(" + p.Node + ")" }

// Any passes when at least one child passes
type Any []Predicate

func (p Any) Test(s Subject) bool {
	for _, c := range p {
		if c.Test(s) {
			return true
		}
	}
	return false
}

func (p Any) String() string { return "any(" + join(p) + ")" }

// All passes when every child passes
type All []Predicate

func (p All) Test(s Subject) bool {
	for _, c := range p {
		if !c.Test(s) {
			return false
		}
	}
	return true
}

func (p All) String() string { return "all(" + join(p) + ")" }

func join(ps []Predicate) string {
	parts := make([]string, len(ps))
	for i, c := range ps {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

// Default is used when a style declares no requirement
func Default() Predicate { return Operator{Level: 0} }

// spec is the config shape of a predicate
type spec struct {
	Type  string                   `mapstructure:"type"`
	Level int                      `mapstructure:"level"`
	Node  string                   `mapstructure:"node"`
	Of    []map[string]interface{} `mapstructure:"of"`
}

// Decode builds a predicate from its config form, e.g.
//
//	{type = "permission", node = "chatstyle.vip"}
//	{type = "any", of = [{type = "operator", level = 2}, ...]}
//
// A nil or empty map yields Default().
func Decode(raw map[string]interface{}) (Predicate, error) {
	if len(raw) == 0 {
		return Default(), nil
	}

	var sp spec
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &sp,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to create predicate decoder")
	}
	if err := dec.Decode(raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid predicate")
	}

	switch strings.ToLower(sp.Type) {
	case "operator", "op":
		return Operator{Level: sp.Level}, nil
	case "permission", "perm":
		if sp.Node == "" {
			return nil, errors.New(errors.ErrConfigValid, "permission predicate needs a node")
		}
		return Permission{Node: sp.Node}, nil
	case "any", "all":
		children := make([]Predicate, 0, len(sp.Of))
		for i, c := range sp.Of {
			child, err := Decode(c)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigValid, "%s[%d]", sp.Type, i)
			}
			children = append(children, child)
		}
		if strings.EqualFold(sp.Type, "any") {
			return Any(children), nil
		}
		return All(children), nil
	default:
		return nil, errors.Newf(errors.ErrUnknownPredicate, "unknown predicate type %q", sp.Type).
			WithDetail("known", Types())
	}
}

// Types lists the predicate type names Decode accepts
func Types() []string {
	names := []string{"operator", "permission", "any", "all"}
	sort.Strings(names)
	return names
}

// StaticSubject is a fixed subject, used by the CLI and preview server
type StaticSubject struct {
	Level       int
	Permissions []string
}

func (s StaticSubject) OperatorLevel() int { return s.Level }

func (s StaticSubject) HasPermission(node string) bool {
	for _, p := range s.Permissions {
		if p == node || p == "*" {
			return true
		}
		if prefix, ok := strings.CutSuffix(p, ".*"); ok && strings.HasPrefix(node, prefix+".") {
			return true
		}
	}
	return false
}
