// Package identifier parses namespaced resource identifiers of the form
// "namespace:path". A bare path, or one with an empty namespace before the
// colon, uses the "minecraft" namespace.
package identifier

import (
	"strings"

	"github.com/arthur-debert/chatstyle/pkg/errors"
)

// DefaultNamespace applies when an identifier has no namespace part
const DefaultNamespace = "minecraft"

// ID is a parsed namespaced identifier. The zero value is not valid.
type ID struct {
	Namespace string
	Path      string
}

// Parse validates s and splits it into namespace and path.
func Parse(s string) (ID, error) {
	ns, path := DefaultNamespace, s
	if i := strings.IndexByte(s, ':'); i >= 0 {
		path = s[i+1:]
		if i > 0 {
			ns = s[:i]
		}
	}

	if ns == "" || path == "" {
		return ID{}, malformed(s, "namespace and path must be non-empty")
	}
	for _, r := range ns {
		if !validNamespaceRune(r) {
			return ID{}, malformed(s, "invalid character in namespace").WithDetail("char", string(r))
		}
	}
	for _, r := range path {
		if !validPathRune(r) {
			return ID{}, malformed(s, "invalid character in path").WithDetail("char", string(r))
		}
	}

	return ID{Namespace: ns, Path: path}, nil
}

// MustParse is Parse for identifiers known to be valid
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id ID) String() string {
	return id.Namespace + ":" + id.Path
}

// MarshalText implements encoding.TextMarshaler
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (id *ID) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func malformed(s, msg string) *errors.CodedError {
	return errors.New(errors.ErrMalformedIdentifier, msg).WithDetail("identifier", s)
}

func validNamespaceRune(r rune) bool {
	return r == '_' || r == '-' || r == '.' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

func validPathRune(r rune) bool {
	return r == '/' || validNamespaceRune(r)
}
