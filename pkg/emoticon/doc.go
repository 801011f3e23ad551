// Package emoticon expands special emoticon keys into bulk emoticon entries.
//
// A special key has the form
//
//	$<mode>:<source_kind>:<path>
//
// and its value is a base template whose ${...} placeholders are replaced
// by each imported emoji. Modes:
//
//	default             {"name": "replacement template", ...}
//	emojibase           {"1F600": ["grinning"], "1F44D-1F3FB": "thumbsup_tone1", ...}
//	emojibase_unlocked  as emojibase, keeping skin tones, FE0F and ZWJ sequences
//	cldr                {"annotations": {"annotations": {"😀": {"default": [...]}}}}
//
// Decoding is best effort: a bad entry is recorded as a Skip and the rest of
// the document is still imported.
package emoticon
