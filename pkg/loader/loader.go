// Package loader fetches the external documents emoticon keys refer to.
//
// A document is addressed by a source kind and a path. Kinds map to
// filesystems: "from_file" reads the data directory next to the config file
// and "builtin" reads files compiled into the binary. Whatever the on-disk
// format (JSON, YAML, TOML or CLDR XML) the result is JSON bytes.
package loader

import (
	"path"
	"strings"

	"github.com/arthur-debert/chatstyle/pkg/errors"
	"github.com/arthur-debert/chatstyle/pkg/filesystem"
	"github.com/arthur-debert/chatstyle/pkg/logging"
	"github.com/arthur-debert/chatstyle/pkg/registry"
	"github.com/buger/jsonparser"
	"github.com/dustin/go-humanize"
)

var log = logging.GetLogger("loader")

// Source kinds understood by NewDefault
const (
	KindFromFile = "from_file"
	KindBuiltin  = "builtin"
)

// Document is a JSON document
type Document []byte

// Loader resolves (kind, path) pairs to documents
type Loader struct {
	sources registry.Registry[filesystem.FS]
}

// New returns a loader with no sources
func New() *Loader {
	return &Loader{sources: registry.New[filesystem.FS]()}
}

// NewDefault returns a loader with the builtin source and, when dataDir is
// not empty, a from_file source rooted there.
func NewDefault(dataDir string) *Loader {
	l := New()
	_ = l.Register(KindBuiltin, Builtin())
	if dataDir != "" {
		_ = l.Register(KindFromFile, filesystem.NewDataDir(dataDir))
	}
	return l
}

// Register adds or replaces the filesystem behind a source kind
func (l *Loader) Register(kind string, fsys filesystem.FS) error {
	return l.sources.Set(kind, fsys)
}

// Kinds lists the registered source kinds
func (l *Loader) Kinds() []string {
	return l.sources.List()
}

// candidateExts are tried, in order, for paths without an extension
var candidateExts = []string{".json", ".yaml", ".yml", ".toml", ".xml"}

// Load reads and converts one document. Failures carry ErrUnknownSource,
// ErrUnknownFormat or ErrLoad.
func (l *Loader) Load(kind, p string) (Document, error) {
	fsys, ok := l.sources.Lookup(kind)
	if !ok {
		return nil, errors.Newf(errors.ErrUnknownSource, "unknown source kind %q", kind).
			WithDetail("kind", kind).
			WithDetail("known", l.Kinds())
	}

	name, err := resolve(fsys, p)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrLoad, "cannot find %s document %q", kind, p).
			WithDetail("kind", kind).
			WithDetail("path", p)
	}

	data, err := fsys.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrLoad, "cannot read %s document %q", kind, name).
			WithDetail("kind", kind).
			WithDetail("path", name)
	}

	doc, err := convert(name, data)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("kind", kind).
		Str("path", name).
		Str("size", humanize.Bytes(uint64(len(data)))).
		Msg("Loaded emoticon document")

	return doc, nil
}

func resolve(fsys filesystem.FS, p string) (string, error) {
	p = strings.TrimPrefix(path.Clean("/"+p), "/")
	if path.Ext(p) != "" {
		return p, nil
	}
	var firstErr error
	for _, ext := range candidateExts {
		if _, err := fsys.Stat(p + ext); err == nil {
			return p + ext, nil
		} else if firstErr == nil {
			firstErr = err
		}
	}
	return "", firstErr
}

func convert(name string, data []byte) (Document, error) {
	var (
		doc Document
		err error
	)
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".json":
		doc = data
	case ".yaml", ".yml":
		doc, err = fromYAML(data)
	case ".toml":
		doc, err = fromTOML(data)
	case ".xml":
		doc, err = fromCLDRXML(data)
	default:
		return nil, errors.Newf(errors.ErrUnknownFormat, "unsupported document format %q", ext).
			WithDetail("path", name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrLoad, "cannot parse %s", name).WithDetail("path", name)
	}

	if _, typ, _, err := jsonparser.Get(doc); err != nil || typ != jsonparser.Object {
		return nil, errors.Newf(errors.ErrLoad, "%s is not a JSON object", name).WithDetail("path", name)
	}
	return doc, nil
}
