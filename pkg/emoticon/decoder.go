package emoticon

import (
	"strings"

	"github.com/arthur-debert/chatstyle/pkg/errors"
	"github.com/arthur-debert/chatstyle/pkg/loader"
	"github.com/arthur-debert/chatstyle/pkg/logging"
	"github.com/arthur-debert/chatstyle/pkg/node"
	"github.com/arthur-debert/chatstyle/pkg/parser"
)

var log = logging.GetLogger("emoticon")

// Marker starts every special key
const Marker = "$"

// Mode selects how a source document is read
type Mode string

const (
	ModeDefault           Mode = "default"
	ModeEmojibase         Mode = "emojibase"
	ModeEmojibaseUnlocked Mode = "emojibase_unlocked"
	ModeCLDR              Mode = "cldr"
)

// Entry is one imported trigger
type Entry struct {
	Trigger string
	Node    node.Node
}

// Skip records a sub-entry that could not be imported
type Skip struct {
	Entry string
	Err   error
}

// Report describes the decoding of one special key
type Report struct {
	Key    string
	Mode   Mode
	Source string
	Path   string
	// Entries is the number of triggers registered
	Entries int
	// Filtered counts emojibase entries dropped as variant forms
	Filtered int
	Skips    []Skip
	// Err is set when the whole key was skipped
	Err error
}

// Loader fetches source documents
type Loader interface {
	Load(kind, path string) (loader.Document, error)
}

type decodeFunc func(d *Decoder, doc loader.Document, base string, rep *Report) []Entry

var modes = map[Mode]decodeFunc{
	ModeDefault:           decodeDefault,
	ModeEmojibase:         decodeEmojibaseStrict,
	ModeEmojibaseUnlocked: decodeEmojibaseUnlocked,
	ModeCLDR:              decodeCLDR,
}

// Modes lists the supported modes
func Modes() []Mode {
	return []Mode{ModeDefault, ModeEmojibase, ModeEmojibaseUnlocked, ModeCLDR}
}

// Decoder turns special keys into entries
type Decoder struct {
	parser *parser.Parser
	loader Loader
}

// NewDecoder returns a decoder parsing base templates with p
func NewDecoder(p *parser.Parser, l Loader) *Decoder {
	return &Decoder{parser: p, loader: l}
}

// IsSpecial reports whether an emoticon key must go through a Decoder
func IsSpecial(key string) bool {
	return strings.HasPrefix(key, Marker)
}

// ParseKey splits "$mode:source:path". Anything but exactly three parts is
// an ErrMalformedKey.
func ParseKey(key string) (mode Mode, source, path string, err error) {
	if !IsSpecial(key) {
		return "", "", "", errors.Newf(errors.ErrMalformedKey, "key %q does not start with %q", key, Marker).
			WithDetail("key", key)
	}
	parts := strings.SplitN(key[len(Marker):], ":", 3)
	if len(parts) != 3 {
		return "", "", "", errors.Newf(errors.ErrMalformedKey, "key %q must have the form $mode:source:path", key).
			WithDetail("key", key).
			WithDetail("parts", len(parts))
	}
	return Mode(parts[0]), parts[1], parts[2], nil
}

// DecodeSpecial imports the entries a special key refers to. It never
// fails: problems are described by the returned Report.
func (d *Decoder) DecodeSpecial(key, baseTemplate string) ([]Entry, Report) {
	rep := Report{Key: key}

	mode, source, path, err := ParseKey(key)
	if err != nil {
		rep.Err = err
		log.Debug().Str("key", key).Err(err).Msg("Skipping malformed emoticon key")
		return nil, rep
	}
	rep.Mode, rep.Source, rep.Path = mode, source, path

	decode, ok := modes[mode]
	if !ok {
		rep.Err = errors.Newf(errors.ErrUnknownMode, "unknown emoticon mode %q", mode).
			WithDetail("key", key).
			WithDetail("mode", string(mode))
		log.Warn().Str("key", key).Str("mode", string(mode)).Msg("Skipping emoticon key with unknown mode")
		return nil, rep
	}

	doc, err := d.loader.Load(source, path)
	if err != nil {
		rep.Err = err
		log.Warn().Str("key", key).Err(err).Msg("Skipping emoticon source")
		return nil, rep
	}

	entries := decode(d, doc, baseTemplate, &rep)
	rep.Entries = len(entries)

	log.Debug().
		Str("key", key).
		Int("entries", rep.Entries).
		Int("skipped", len(rep.Skips)).
		Int("filtered", rep.Filtered).
		Msg("Decoded emoticon source")

	return entries, rep
}

// bindText parses base with every dynamic placeholder replaced by text
func (d *Decoder) bindText(base, text string) node.Node {
	lit := node.Text(text)
	return d.parser.WithDynamic(func(string, string) node.Node { return lit }).Parse(base)
}

// bindNode parses base with every dynamic placeholder replaced by n
func (d *Decoder) bindNode(base string, n node.Node) node.Node {
	return d.parser.WithDynamic(func(string, string) node.Node { return n }).Parse(base)
}

func skip(rep *Report, entry string, err error) {
	rep.Skips = append(rep.Skips, Skip{Entry: entry, Err: err})
}

func entryError(entry, msg string) *errors.CodedError {
	return errors.New(errors.ErrDecodeEntry, msg).WithDetail("entry", entry)
}
