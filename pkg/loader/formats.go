package loader

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

func fromYAML(data []byte) (Document, error) {
	var v interface{}
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return json.Marshal(stringKeys(v))
}

func fromTOML(data []byte) (Document, error) {
	var v map[string]interface{}
	if err := toml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// stringKeys rewrites YAML mappings with non-string keys (an unquoted
// codepoint like 2764 decodes as an int) into JSON-compatible maps.
func stringKeys(v interface{}) interface{} {
	switch t := v.(type) {
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = stringKeys(val)
		}
		return out
	case map[string]interface{}:
		for k, val := range t {
			t[k] = stringKeys(val)
		}
		return t
	case []interface{}:
		for i, val := range t {
			t[i] = stringKeys(val)
		}
		return t
	default:
		return v
	}
}

// cldrEntry mirrors one emoji of the CLDR JSON annotations file
type cldrEntry struct {
	Default []string `json:"default,omitempty"`
	TTS     []string `json:"tts,omitempty"`
}

// fromCLDRXML converts an LDML annotations file into the shape of the CLDR
// JSON distribution:
//
//	<annotation cp="😀">face | grin</annotation>
//	<annotation cp="😀" type="tts">grinning face</annotation>
//
// becomes {"annotations":{"annotations":{"😀":{"default":["face","grin"],"tts":["grinning face"]}}}}
func fromCLDRXML(data []byte) (Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}

	entries := map[string]*cldrEntry{}
	for _, el := range doc.FindElements("//annotation") {
		cp := el.SelectAttrValue("cp", "")
		if cp == "" {
			continue
		}
		e, ok := entries[cp]
		if !ok {
			e = &cldrEntry{}
			entries[cp] = e
		}

		text := strings.TrimSpace(el.Text())
		if el.SelectAttrValue("type", "") == "tts" {
			if text != "" {
				e.TTS = append(e.TTS, text)
			}
			continue
		}
		for _, kw := range strings.Split(text, "|") {
			if kw = strings.TrimSpace(kw); kw != "" {
				e.Default = append(e.Default, kw)
			}
		}
	}

	return json.Marshal(map[string]interface{}{
		"annotations": map[string]interface{}{
			"annotations": entries,
		},
	})
}
