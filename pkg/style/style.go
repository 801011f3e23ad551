// Package style resolves raw configuration into immutable Styles and
// renders events against them.
package style

import (
	"sort"

	"github.com/arthur-debert/chatstyle/pkg/errors"
	"github.com/arthur-debert/chatstyle/pkg/identifier"
	"github.com/arthur-debert/chatstyle/pkg/node"
	"github.com/arthur-debert/chatstyle/pkg/predicate"
	"github.com/arthur-debert/chatstyle/pkg/render"
)

// Style is a fully resolved template bundle for one permission tier.
// It is never modified after Build returns.
type Style struct {
	name          string
	slots         [slotCount]node.Node
	spoilerSymbol *string
	emoticons     map[string]node.Node
	formatting    map[string]bool
	custom        map[identifier.ID]node.Node
	require       predicate.Predicate
	report        Report
}

func (s *Style) Name() string { return s.name }

// Require is the predicate that selects this style
func (s *Style) Require() predicate.Predicate { return s.require }

// Report lists what Build skipped or warned about
func (s *Style) Report() Report { return s.report }

// Node returns the resolved template of slot: nil when unset
func (s *Style) Node(slot Slot) node.Node {
	if !slot.valid() {
		return nil
	}
	return s.slots[slot]
}

// Render renders slot against ctx, applying the slot's blank rule
func (s *Style) Render(slot Slot, ctx render.Context) render.Result {
	return render.RenderSlot(s.Node(slot), ctx, slot.Blank())
}

func (s *Style) DisplayName(vanillaDisplayName, name string) render.Result {
	return s.Render(SlotDisplayName, DisplayNameContext(vanillaDisplayName, name))
}

func (s *Style) Chat(player, message string) render.Result {
	return s.Render(SlotChat, ChatContext(player, message))
}

func (s *Style) Join(player string) render.Result {
	return s.Render(SlotJoin, PlayerContext(player))
}

func (s *Style) JoinFirstTime(player string) render.Result {
	return s.Render(SlotJoinFirstTime, PlayerContext(player))
}

func (s *Style) JoinRenamed(player, oldName string) render.Result {
	return s.Render(SlotJoinRenamed, RenamedContext(player, oldName))
}

func (s *Style) Left(player string) render.Result {
	return s.Render(SlotLeft, PlayerContext(player))
}

func (s *Style) Death(player, defaultMessage string) render.Result {
	return s.Render(SlotDeath, DeathContext(player, defaultMessage))
}

// AdvancementKind selects one of the three advancement slots
type AdvancementKind int

const (
	AdvancementTask AdvancementKind = iota
	AdvancementChallenge
	AdvancementGoal
)

func (s *Style) Advancement(kind AdvancementKind, player, advancement string) render.Result {
	slot := SlotAdvancementTask
	switch kind {
	case AdvancementChallenge:
		slot = SlotAdvancementChallenge
	case AdvancementGoal:
		slot = SlotAdvancementGoal
	}
	return s.Render(slot, AdvancementContext(player, advancement))
}

func (s *Style) PrivateMessageSent(sender, receiver, message string) render.Result {
	return s.Render(SlotPrivateMessageSent, PrivateMessageContext(sender, receiver, message))
}

func (s *Style) PrivateMessageReceived(sender, receiver, message string) render.Result {
	return s.Render(SlotPrivateMessageReceived, PrivateMessageContext(sender, receiver, message))
}

func (s *Style) TeamChatSent(team, displayName, message string) render.Result {
	return s.Render(SlotTeamChatSent, TeamChatContext(team, displayName, message))
}

func (s *Style) TeamChatReceived(team, displayName, message string) render.Result {
	return s.Render(SlotTeamChatReceived, TeamChatContext(team, displayName, message))
}

func (s *Style) SayCommand(player, displayName, message string) render.Result {
	return s.Render(SlotSayCommand, CommandContext(player, displayName, message))
}

func (s *Style) MeCommand(player, displayName, message string) render.Result {
	return s.Render(SlotMeCommand, CommandContext(player, displayName, message))
}

func (s *Style) PetDeath(pet, defaultMessage string) render.Result {
	return s.Render(SlotPetDeath, PetDeathContext(pet, defaultMessage))
}

// Custom renders a custom message id. Unknown ids are Absent; an explicit
// blank suppresses.
func (s *Style) Custom(id identifier.ID, receiver *string, displayName, message string) render.Result {
	return render.RenderSlot(s.custom[id], CustomContext(receiver, displayName, message), render.Suppressing())
}

// CustomIDs lists configured custom ids, sorted
func (s *Style) CustomIDs() []identifier.ID {
	ids := make([]identifier.ID, 0, len(s.custom))
	for id := range s.custom {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

func (s *Style) Link() node.Node    { return s.slots[SlotLinkStyle] }
func (s *Style) Mention() node.Node { return s.slots[SlotMentionStyle] }
func (s *Style) Spoiler() node.Node { return s.slots[SlotSpoilerStyle] }

// SpoilerSymbol is the configured symbol, if any
func (s *Style) SpoilerSymbol() (string, bool) {
	if s.spoilerSymbol == nil {
		return "", false
	}
	return *s.spoilerSymbol, true
}

// SpoilerSymbolOr returns the configured symbol or def
func (s *Style) SpoilerSymbolOr(def string) string {
	if v, ok := s.SpoilerSymbol(); ok {
		return v
	}
	return def
}

// Emoticon looks up the node registered for trigger
func (s *Style) Emoticon(trigger string) (node.Node, bool) {
	n, ok := s.emoticons[trigger]
	return n, ok
}

// EmoticonCount is the number of registered triggers
func (s *Style) EmoticonCount() int { return len(s.emoticons) }

// EachEmoticon calls fn for every trigger in sorted order
func (s *Style) EachEmoticon(fn func(trigger string, n node.Node)) {
	triggers := make([]string, 0, len(s.emoticons))
	for t := range s.emoticons {
		triggers = append(triggers, t)
	}
	sort.Strings(triggers)
	for _, t := range triggers {
		fn(t, s.emoticons[t])
	}
}

// Formatting reports a formatting flag and whether it is configured
func (s *Style) Formatting(name string) (on, ok bool) {
	on, ok = s.formatting[name]
	return on, ok
}

// FormattingFlags returns a copy of the formatting flags
func (s *Style) FormattingFlags() map[string]bool {
	out := make(map[string]bool, len(s.formatting))
	for k, v := range s.formatting {
		out[k] = v
	}
	return out
}

func errNoDecoder(key string) error {
	return errors.New(errors.ErrInternal, "no emoticon decoder configured").WithDetail("key", key)
}
