package loader_test

import (
	"testing"

	"github.com/arthur-debert/chatstyle/pkg/errors"
	"github.com/arthur-debert/chatstyle/pkg/loader"
	"github.com/arthur-debert/chatstyle/pkg/testutil"
	"github.com/buger/jsonparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memLoader(t *testing.T, files map[string]string) *loader.Loader {
	t.Helper()
	l := loader.New()
	require.NoError(t, l.Register(loader.KindFromFile, testutil.MemorySource(t, files)))
	return l
}

func TestLoadFormats(t *testing.T) {
	l := memLoader(t, map[string]string{
		"emoji.json": `{"1F600": ["grinning"]}`,
		"emoji.yaml": "1F600:\n  - grinning\n2764: heart\n",
		"emoji.toml": "\"1F600\" = [\"grinning\"]\n",
		"ann.xml": `<?xml version="1.0" encoding="UTF-8"?>
<ldml>
  <annotations>
    <annotation cp="😀">face | grin | grinning face</annotation>
    <annotation cp="😀" type="tts">grinning face</annotation>
  </annotations>
</ldml>`,
		"bare.json": `{"a": "b"}`,
	})

	tests := []struct {
		name  string
		path  string
		keys  []string
		value string
	}{
		{"json", "emoji.json", []string{"1F600", "[0]"}, "grinning"},
		{"yaml", "emoji.yaml", []string{"1F600", "[0]"}, "grinning"},
		{"yaml numeric key", "emoji.yaml", []string{"2764"}, "heart"},
		{"toml", "emoji.toml", []string{"1F600", "[0]"}, "grinning"},
		{"cldr xml default", "ann.xml", []string{"annotations", "annotations", "😀", "default", "[2]"}, "grinning face"},
		{"cldr xml tts", "ann.xml", []string{"annotations", "annotations", "😀", "tts", "[0]"}, "grinning face"},
		{"extension inferred", "bare", []string{"a"}, "b"},
		{"leading slash ignored", "/bare.json", []string{"a"}, "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := l.Load(loader.KindFromFile, tt.path)
			require.NoError(t, err)

			got, err := jsonparser.GetString(doc, tt.keys...)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	l := memLoader(t, map[string]string{
		"list.json":  `["not", "an", "object"]`,
		"broken.yml": "a: [unclosed",
		"notes.txt":  "hello",
	})

	tests := []struct {
		name string
		kind string
		path string
		code errors.ErrorCode
	}{
		{"unknown kind", "from_space", "x.json", errors.ErrUnknownSource},
		{"missing file", loader.KindFromFile, "missing.json", errors.ErrLoad},
		{"missing without extension", loader.KindFromFile, "missing", errors.ErrLoad},
		{"not an object", loader.KindFromFile, "list.json", errors.ErrLoad},
		{"unparsable yaml", loader.KindFromFile, "broken.yml", errors.ErrLoad},
		{"unknown format", loader.KindFromFile, "notes.txt", errors.ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := l.Load(tt.kind, tt.path)
			assert.Nil(t, doc)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestBuiltin(t *testing.T) {
	l := loader.NewDefault("")
	assert.Equal(t, []string{loader.KindBuiltin}, l.Kinds())

	for _, name := range []string{"joypixels", "cldr_en", "text"} {
		t.Run(name, func(t *testing.T) {
			doc, err := l.Load(loader.KindBuiltin, name)
			require.NoError(t, err)
			assert.NotEmpty(t, doc)
		})
	}

	assert.ElementsMatch(t, []string{"cldr_en.json", "joypixels.json", "text.json"}, loader.BuiltinNames())

	grin, err := l.Load(loader.KindBuiltin, "cldr_en.json")
	require.NoError(t, err)
	_, typ, _, err := jsonparser.Get(grin, "annotations", "annotations", "😀", "default")
	require.NoError(t, err)
	assert.Equal(t, jsonparser.Array, typ)
}

func TestNewDefaultWithDataDir(t *testing.T) {
	l := loader.NewDefault(t.TempDir())
	assert.Equal(t, []string{loader.KindBuiltin, loader.KindFromFile}, l.Kinds())
}
