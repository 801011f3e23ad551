package emoticon

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/chatstyle/pkg/errors"
	"github.com/arthur-debert/chatstyle/pkg/loader"
	"github.com/buger/jsonparser"
)

// decodeDefault reads {"name": "replacement"}. Each replacement is itself
// a template and is substituted for the placeholders of base.
func decodeDefault(d *Decoder, doc loader.Document, base string, rep *Report) []Entry {
	var entries []Entry
	err := jsonparser.ObjectEach(doc, func(key, value []byte, typ jsonparser.ValueType, _ int) error {
		name := string(key)
		if typ != jsonparser.String {
			skip(rep, name, entryError(name, "replacement is not a string").WithDetail("type", typ.String()))
			return nil
		}
		replacement, err := jsonparser.ParseString(value)
		if err != nil {
			skip(rep, name, errors.Wrap(err, errors.ErrDecodeEntry, "invalid replacement string"))
			return nil
		}
		entries = append(entries, Entry{Trigger: name, Node: d.bindNode(base, d.parser.Parse(replacement))})
		return nil
	})
	if err != nil {
		rep.Err = errors.Wrap(err, errors.ErrDecodeEntry, "cannot walk document")
	}
	return entries
}

func decodeEmojibaseStrict(d *Decoder, doc loader.Document, base string, rep *Report) []Entry {
	return decodeEmojibase(d, doc, base, rep, true)
}

func decodeEmojibaseUnlocked(d *Decoder, doc loader.Document, base string, rep *Report) []Entry {
	return decodeEmojibase(d, doc, base, rep, false)
}

// decodeEmojibase reads {"1F600": "trigger"} or {"1F600": ["a", "b"]}
func decodeEmojibase(d *Decoder, doc loader.Document, base string, rep *Report, strict bool) []Entry {
	var entries []Entry
	err := jsonparser.ObjectEach(doc, func(key, value []byte, typ jsonparser.ValueType, _ int) error {
		seq := string(key)

		grapheme, variant, err := decodeCodepoints(seq)
		if err != nil {
			skip(rep, seq, err)
			return nil
		}
		if strict && variant {
			rep.Filtered++
			return nil
		}

		triggers, err := triggerList(seq, value, typ, rep)
		if err != nil {
			skip(rep, seq, err)
			return nil
		}

		n := d.bindText(base, grapheme)
		for _, t := range triggers {
			entries = append(entries, Entry{Trigger: t, Node: n})
		}
		return nil
	})
	if err != nil {
		rep.Err = errors.Wrap(err, errors.ErrDecodeEntry, "cannot walk document")
	}
	return entries
}

// decodeCodepoints turns "1F44D-1F3FB" into its text. variant is set when
// the sequence holds a skin tone modifier, a variation selector or a
// zero width joiner.
func decodeCodepoints(seq string) (text string, variant bool, err error) {
	var b strings.Builder
	for _, hex := range strings.Split(seq, "-") {
		v, perr := strconv.ParseUint(hex, 16, 32)
		if perr != nil {
			return "", false, errors.Wrapf(perr, errors.ErrDecodeEntry, "invalid codepoint %q", hex).
				WithDetail("entry", seq)
		}
		r := rune(v)
		if !utf8.ValidRune(r) {
			return "", false, entryError(seq, "codepoint out of range").WithDetail("codepoint", hex)
		}
		if IsVariantRune(r) {
			variant = true
		}
		b.WriteRune(r)
	}
	return b.String(), variant, nil
}

// IsVariantRune reports the codepoints strict emojibase mode excludes
func IsVariantRune(r rune) bool {
	return (r >= 0x1F3FB && r <= 0x1F3FF) || r == 0xFE0F || r == 0x200D
}

// triggerList reads a string or an array of strings. Non-string array
// items are skipped one by one.
func triggerList(seq string, value []byte, typ jsonparser.ValueType, rep *Report) ([]string, error) {
	switch typ {
	case jsonparser.String:
		t, err := jsonparser.ParseString(value)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrDecodeEntry, "invalid trigger string").WithDetail("entry", seq)
		}
		if t == "" {
			return nil, entryError(seq, "empty trigger")
		}
		return []string{t}, nil

	case jsonparser.Array:
		var out []string
		i := 0
		_, err := jsonparser.ArrayEach(value, func(item []byte, itemType jsonparser.ValueType, _ int, _ error) {
			defer func() { i++ }()
			label := seq + "[" + strconv.Itoa(i) + "]"
			if itemType != jsonparser.String {
				skip(rep, label, entryError(label, "trigger is not a string").WithDetail("type", itemType.String()))
				return
			}
			t, err := jsonparser.ParseString(item)
			if err != nil || t == "" {
				skip(rep, label, entryError(label, "invalid trigger"))
				return
			}
			out = append(out, t)
		})
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrDecodeEntry, "invalid trigger list").WithDetail("entry", seq)
		}
		return out, nil

	default:
		return nil, entryError(seq, "triggers must be a string or a list of strings").
			WithDetail("type", typ.String())
	}
}

// decodeCLDR reads annotations.annotations and registers every default
// keyword with spaces and colons turned into underscores
func decodeCLDR(d *Decoder, doc loader.Document, base string, rep *Report) []Entry {
	annotations, typ, _, err := jsonparser.Get(doc, "annotations", "annotations")
	if err != nil || typ != jsonparser.Object {
		rep.Err = errors.New(errors.ErrDecodeEntry, "document has no annotations.annotations object").
			WithDetail("key", rep.Key)
		return nil
	}

	var entries []Entry
	err = jsonparser.ObjectEach(annotations, func(key, value []byte, typ jsonparser.ValueType, _ int) error {
		emoji := string(key)
		if typ != jsonparser.Object {
			skip(rep, emoji, entryError(emoji, "annotation is not an object"))
			return nil
		}

		names, ntyp, _, err := jsonparser.Get(value, "default")
		if err != nil || ntyp != jsonparser.Array {
			skip(rep, emoji, entryError(emoji, "annotation has no default list"))
			return nil
		}

		n := d.bindText(base, emoji)
		i := 0
		_, err = jsonparser.ArrayEach(names, func(item []byte, itemType jsonparser.ValueType, _ int, _ error) {
			defer func() { i++ }()
			label := emoji + "[" + strconv.Itoa(i) + "]"
			if itemType != jsonparser.String {
				skip(rep, label, entryError(label, "name is not a string"))
				return
			}
			name, err := jsonparser.ParseString(item)
			if err != nil || name == "" {
				skip(rep, label, entryError(label, "invalid name"))
				return
			}
			entries = append(entries, Entry{Trigger: SanitizeName(name), Node: n})
		})
		if err != nil {
			skip(rep, emoji, errors.Wrap(err, errors.ErrDecodeEntry, "invalid default list"))
		}
		return nil
	})
	if err != nil {
		rep.Err = errors.Wrap(err, errors.ErrDecodeEntry, "cannot walk annotations")
	}
	return entries
}

// SanitizeName turns a CLDR keyword into a trigger
func SanitizeName(name string) string {
	return strings.NewReplacer(" ", "_", ":", "_").Replace(name)
}
