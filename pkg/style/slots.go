package style

import (
	"github.com/arthur-debert/chatstyle/pkg/errors"
	"github.com/arthur-debert/chatstyle/pkg/render"
)

// Slot names one template position of a Style
type Slot int

const (
	SlotDisplayName Slot = iota
	SlotChat
	SlotJoin
	SlotJoinFirstTime
	SlotJoinRenamed
	SlotLeft
	SlotDeath
	SlotAdvancementTask
	SlotAdvancementChallenge
	SlotAdvancementGoal
	SlotPrivateMessageSent
	SlotPrivateMessageReceived
	SlotTeamChatSent
	SlotTeamChatReceived
	SlotSayCommand
	SlotMeCommand
	SlotPetDeath
	SlotSpoilerStyle
	SlotLinkStyle
	SlotMentionStyle

	slotCount
)

// noSlot marks a rule without an own-slot shortcut
const noSlot Slot = -1

type slotInfo struct {
	name string
	// configuration key, relative to the style table
	key string
	// variables supplied by the slot's context builder
	vars  []string
	blank render.Blank
}

var (
	playerVars      = []string{VarPlayer}
	messageBlank    = render.Suppressing()
	displayNameVars = []string{VarVanillaDisplayName, VarPlayer, VarName, VarDefault}
)

var slotTable = [slotCount]slotInfo{
	SlotDisplayName:            {"display_name", "display_name", displayNameVars, render.PassThrough(VarVanillaDisplayName)},
	SlotChat:                   {"chat", "messages.chat", []string{VarPlayer, VarMessage}, messageBlank},
	SlotJoin:                   {"join", "messages.joined_game", playerVars, messageBlank},
	SlotJoinFirstTime:          {"join_first_time", "messages.joined_for_first_time", playerVars, messageBlank},
	SlotJoinRenamed:            {"join_renamed", "messages.joined_after_name_change", []string{VarPlayer, VarOldName}, messageBlank},
	SlotLeft:                   {"left", "messages.left_game", playerVars, messageBlank},
	SlotDeath:                  {"death", "messages.base_death", []string{VarPlayer, VarDefaultMessage}, messageBlank},
	SlotAdvancementTask:        {"advancement_task", "messages.advancement_task", []string{VarPlayer, VarAdvancement}, messageBlank},
	SlotAdvancementChallenge:   {"advancement_challenge", "messages.advancement_challenge", []string{VarPlayer, VarAdvancement}, messageBlank},
	SlotAdvancementGoal:        {"advancement_goal", "messages.advancement_goal", []string{VarPlayer, VarAdvancement}, messageBlank},
	SlotPrivateMessageSent:     {"private_message_sent", "messages.private_message_sent", []string{VarSender, VarReceiver, VarMessage}, messageBlank},
	SlotPrivateMessageReceived: {"private_message_received", "messages.private_message_received", []string{VarSender, VarReceiver, VarMessage}, messageBlank},
	SlotTeamChatSent:           {"team_chat_sent", "messages.sent_team_chat", []string{VarTeam, VarDisplayName, VarMessage}, messageBlank},
	SlotTeamChatReceived:       {"team_chat_received", "messages.received_team_chat", []string{VarTeam, VarDisplayName, VarMessage}, messageBlank},
	SlotSayCommand:             {"say_command", "messages.say_command", []string{VarPlayer, VarDisplayName, VarMessage}, messageBlank},
	SlotMeCommand:              {"me_command", "messages.me_command", []string{VarPlayer, VarDisplayName, VarMessage}, messageBlank},
	SlotPetDeath:               {"pet_death", "messages.pet_death", []string{VarPet, VarDefaultMessage}, messageBlank},
	SlotSpoilerStyle:           {"spoiler_style", "spoiler_style", []string{VarSpoiler}, messageBlank},
	SlotLinkStyle:              {"link_style", "link_style", []string{VarURL}, messageBlank},
	SlotMentionStyle:           {"mention_style", "mention_style", []string{VarPlayer}, messageBlank},
}

func (s Slot) valid() bool { return s >= 0 && s < slotCount }

func (s Slot) String() string {
	if !s.valid() {
		return "unknown"
	}
	return slotTable[s].name
}

// ConfigKey is the slot's key inside a style table, e.g. "messages.chat"
func (s Slot) ConfigKey() string {
	if !s.valid() {
		return ""
	}
	return slotTable[s].key
}

// Vars lists the context variables available to the slot's template
func (s Slot) Vars() []string {
	if !s.valid() {
		return nil
	}
	return append([]string(nil), slotTable[s].vars...)
}

// Blank is what an explicitly blank template means for the slot
func (s Slot) Blank() render.Blank {
	if !s.valid() {
		return messageBlank
	}
	return slotTable[s].blank
}

// Slots returns every slot in declaration order
func Slots() []Slot {
	out := make([]Slot, slotCount)
	for i := range out {
		out[i] = Slot(i)
	}
	return out
}

// ParseSlot accepts a slot name or its config key
func ParseSlot(name string) (Slot, error) {
	for i, info := range slotTable {
		if info.name == name || info.key == name {
			return Slot(i), nil
		}
	}
	return noSlot, errors.Newf(errors.ErrUnknownSlot, "unknown slot %q", name).WithDetail("slot", name)
}
