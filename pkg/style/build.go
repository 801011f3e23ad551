package style

import (
	"fmt"
	"sort"

	"github.com/arthur-debert/chatstyle/pkg/emoticon"
	"github.com/arthur-debert/chatstyle/pkg/identifier"
	"github.com/arthur-debert/chatstyle/pkg/logging"
	"github.com/arthur-debert/chatstyle/pkg/node"
	"github.com/arthur-debert/chatstyle/pkg/parser"
	"github.com/arthur-debert/chatstyle/pkg/predicate"
)

var log = logging.GetLogger("style")

// EmoticonDecoder expands "$mode:source:path" emoticon keys
type EmoticonDecoder interface {
	DecodeSpecial(key, baseTemplate string) ([]emoticon.Entry, emoticon.Report)
}

// BuildOptions carries the collaborators Build needs
type BuildOptions struct {
	// Name labels the style in reports and logs
	Name string
	// Parser compiles templates; nil uses parser.New()
	Parser *parser.Parser
	// Decoder handles special emoticon keys; nil skips them
	Decoder EmoticonDecoder
}

// slotRule says where an unset slot takes its value from. When Own is set,
// the style's own already-resolved slot Own is consulted before the
// fallback style.
type slotRule struct {
	Slot Slot
	Own  Slot
}

// slotRules is evaluated in order, so any Own slot must precede its user
var slotRules = []slotRule{
	{SlotDisplayName, noSlot},
	{SlotChat, noSlot},
	{SlotJoin, noSlot},
	{SlotJoinFirstTime, SlotJoin},
	{SlotJoinRenamed, noSlot},
	{SlotLeft, noSlot},
	{SlotDeath, noSlot},
	{SlotAdvancementTask, noSlot},
	{SlotAdvancementChallenge, noSlot},
	{SlotAdvancementGoal, noSlot},
	{SlotPrivateMessageSent, noSlot},
	{SlotPrivateMessageReceived, noSlot},
	{SlotTeamChatSent, noSlot},
	{SlotTeamChatReceived, noSlot},
	{SlotSayCommand, noSlot},
	{SlotMeCommand, noSlot},
	{SlotPetDeath, noSlot},
	{SlotSpoilerStyle, noSlot},
	{SlotLinkStyle, noSlot},
	{SlotMentionStyle, noSlot},
}

// Build resolves raw into a Style. Unset slots inherit from fallback, one
// level deep; an explicit "" resolves to node.Empty and does not inherit.
// Emoticon, formatting and custom maps come from raw alone. Build never
// fails: bad entries are skipped and recorded in the style's Report.
func Build(raw RawStyleData, fallback *Style, opts BuildOptions) *Style {
	p := opts.Parser
	if p == nil {
		p = parser.New()
	}

	s := &Style{
		name:       opts.Name,
		emoticons:  make(map[string]node.Node),
		formatting: make(map[string]bool, len(raw.Formatting)),
		custom:     make(map[identifier.ID]node.Node, len(raw.Custom)),
		require:    raw.Require,
	}
	if s.require == nil {
		s.require = predicate.Default()
	}

	for _, rule := range slotRules {
		if v := raw.value(rule.Slot); v != nil {
			n := p.Parse(*v)
			s.slots[rule.Slot] = n
			s.report.Warnings = append(s.report.Warnings, validate(rule.Slot.String(), n, slotTable[rule.Slot].vars)...)
			continue
		}
		if rule.Own != noSlot && s.slots[rule.Own] != nil {
			s.slots[rule.Slot] = s.slots[rule.Own]
			continue
		}
		if fallback != nil {
			s.slots[rule.Slot] = fallback.slots[rule.Slot]
		}
	}

	switch {
	case raw.SpoilerSymbol != nil:
		s.spoilerSymbol = raw.SpoilerSymbol
	case fallback != nil:
		s.spoilerSymbol = fallback.spoilerSymbol
	}

	s.buildEmoticons(raw.Emoticons, p, opts.Decoder)

	for name, on := range raw.Formatting {
		s.formatting[name] = on
	}

	for key, tmpl := range raw.Custom {
		id, err := identifier.Parse(key)
		if err != nil {
			log.Debug().Str("style", s.name).Str("key", key).Err(err).Msg("Skipping custom message with malformed id")
			s.report.Custom = append(s.report.Custom, Issue{Key: key, Err: err})
			continue
		}
		n := p.Parse(tmpl)
		s.custom[id] = n
		s.report.Warnings = append(s.report.Warnings, validate("custom "+id.String(), n, customVars)...)
	}
	sort.Slice(s.report.Custom, func(i, j int) bool { return s.report.Custom[i].Key < s.report.Custom[j].Key })
	sort.SliceStable(s.report.Warnings, func(i, j int) bool { return s.report.Warnings[i].Field < s.report.Warnings[j].Field })

	for _, w := range s.report.Warnings {
		log.Warn().Str("style", s.name).Str("field", w.Field).Str("placeholder", w.Placeholder).
			Msg("Template uses a placeholder its event never supplies; it will render empty")
	}

	return s
}

// buildEmoticons registers special keys first and plain keys after, each
// group in sorted order, so explicitly configured triggers win over bulk
// imported ones.
func (s *Style) buildEmoticons(raw map[string]string, p *parser.Parser, dec EmoticonDecoder) {
	var special, plain []string
	for key := range raw {
		if emoticon.IsSpecial(key) {
			special = append(special, key)
		} else {
			plain = append(plain, key)
		}
	}
	sort.Strings(special)
	sort.Strings(plain)

	for _, key := range special {
		if dec == nil {
			s.report.Emoticons = append(s.report.Emoticons, emoticon.Report{Key: key, Err: errNoDecoder(key)})
			continue
		}
		entries, rep := dec.DecodeSpecial(key, raw[key])
		for _, e := range entries {
			s.emoticons[e.Trigger] = e.Node
		}
		s.report.Emoticons = append(s.report.Emoticons, rep)
	}

	for _, key := range plain {
		s.emoticons[key] = p.Parse(raw[key])
	}
}

// validate reports placeholders of n that the slot's context never supplies
func validate(field string, n node.Node, vars []string) []Warning {
	var out []Warning
	seen := map[string]bool{}
	for _, name := range node.Placeholders(n) {
		if seen[name] || contains(vars, name) {
			continue
		}
		seen[name] = true
		out = append(out, Warning{Field: field, Placeholder: name})
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Warning flags a placeholder that renders empty because its event never
// supplies it
type Warning struct {
	Field       string
	Placeholder string
}

func (w Warning) String() string {
	return w.Field + ": ${" + w.Placeholder + "} is never supplied"
}

// Issue is a skipped configuration entry
type Issue struct {
	Key string
	Err error
}

// Report collects everything Build skipped or warned about
type Report struct {
	Emoticons []emoticon.Report
	Custom    []Issue
	Warnings  []Warning
}

// Clean reports whether nothing was skipped and nothing warned
func (r Report) Clean() bool {
	if len(r.Custom) > 0 || len(r.Warnings) > 0 {
		return false
	}
	for _, e := range r.Emoticons {
		if e.Err != nil || len(e.Skips) > 0 {
			return false
		}
	}
	return true
}

// Summary is a one-line description for logs and the CLI
func (r Report) Summary() string {
	entries, skips, failed := 0, 0, 0
	for _, e := range r.Emoticons {
		entries += e.Entries
		skips += len(e.Skips)
		if e.Err != nil {
			failed++
		}
	}
	return fmt.Sprintf("emoticon sources: %d (%d failed, %d entries, %d skipped); custom skipped: %d; warnings: %d",
		len(r.Emoticons), failed, entries, skips, len(r.Custom), len(r.Warnings))
}
