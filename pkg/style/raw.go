package style

import "github.com/arthur-debert/chatstyle/pkg/predicate"

// Messages holds the raw message templates of a style. A nil field is unset;
// a pointer to "" is an explicit blank.
type Messages struct {
	Chat                   *string `mapstructure:"chat" toml:"chat,omitempty" json:"chat,omitempty"`
	JoinedGame             *string `mapstructure:"joined_game" toml:"joined_game,omitempty" json:"joined_game,omitempty"`
	JoinedForFirstTime     *string `mapstructure:"joined_for_first_time" toml:"joined_for_first_time,omitempty" json:"joined_for_first_time,omitempty"`
	JoinedAfterNameChange  *string `mapstructure:"joined_after_name_change" toml:"joined_after_name_change,omitempty" json:"joined_after_name_change,omitempty"`
	LeftGame               *string `mapstructure:"left_game" toml:"left_game,omitempty" json:"left_game,omitempty"`
	BaseDeath              *string `mapstructure:"base_death" toml:"base_death,omitempty" json:"base_death,omitempty"`
	AdvancementTask        *string `mapstructure:"advancement_task" toml:"advancement_task,omitempty" json:"advancement_task,omitempty"`
	AdvancementChallenge   *string `mapstructure:"advancement_challenge" toml:"advancement_challenge,omitempty" json:"advancement_challenge,omitempty"`
	AdvancementGoal        *string `mapstructure:"advancement_goal" toml:"advancement_goal,omitempty" json:"advancement_goal,omitempty"`
	PrivateMessageSent     *string `mapstructure:"private_message_sent" toml:"private_message_sent,omitempty" json:"private_message_sent,omitempty"`
	PrivateMessageReceived *string `mapstructure:"private_message_received" toml:"private_message_received,omitempty" json:"private_message_received,omitempty"`
	SentTeamChat           *string `mapstructure:"sent_team_chat" toml:"sent_team_chat,omitempty" json:"sent_team_chat,omitempty"`
	ReceivedTeamChat       *string `mapstructure:"received_team_chat" toml:"received_team_chat,omitempty" json:"received_team_chat,omitempty"`
	SayCommand             *string `mapstructure:"say_command" toml:"say_command,omitempty" json:"say_command,omitempty"`
	MeCommand              *string `mapstructure:"me_command" toml:"me_command,omitempty" json:"me_command,omitempty"`
	PetDeath               *string `mapstructure:"pet_death" toml:"pet_death,omitempty" json:"pet_death,omitempty"`
}

// RawStyleData is one style as supplied by configuration, before parsing
type RawStyleData struct {
	DisplayName   *string           `mapstructure:"display_name" toml:"display_name,omitempty" json:"display_name,omitempty"`
	Messages      Messages          `mapstructure:"messages" toml:"messages" json:"messages"`
	SpoilerStyle  *string           `mapstructure:"spoiler_style" toml:"spoiler_style,omitempty" json:"spoiler_style,omitempty"`
	SpoilerSymbol *string           `mapstructure:"spoiler_symbol" toml:"spoiler_symbol,omitempty" json:"spoiler_symbol,omitempty"`
	LinkStyle     *string           `mapstructure:"link_style" toml:"link_style,omitempty" json:"link_style,omitempty"`
	MentionStyle  *string           `mapstructure:"mention_style" toml:"mention_style,omitempty" json:"mention_style,omitempty"`
	Emoticons     map[string]string `mapstructure:"emoticons" toml:"emoticons,omitempty" json:"emoticons,omitempty"`
	Formatting    map[string]bool   `mapstructure:"formatting" toml:"formatting,omitempty" json:"formatting,omitempty"`
	Custom        map[string]string `mapstructure:"custom" toml:"custom,omitempty" json:"custom,omitempty"`

	// Require gates a permission style; nil means everyone
	Require predicate.Predicate `mapstructure:"-" toml:"-" json:"-"`
}

// value returns the raw template for slot, nil when unset
func (r *RawStyleData) value(slot Slot) *string {
	m := &r.Messages
	switch slot {
	case SlotDisplayName:
		return r.DisplayName
	case SlotChat:
		return m.Chat
	case SlotJoin:
		return m.JoinedGame
	case SlotJoinFirstTime:
		return m.JoinedForFirstTime
	case SlotJoinRenamed:
		return m.JoinedAfterNameChange
	case SlotLeft:
		return m.LeftGame
	case SlotDeath:
		return m.BaseDeath
	case SlotAdvancementTask:
		return m.AdvancementTask
	case SlotAdvancementChallenge:
		return m.AdvancementChallenge
	case SlotAdvancementGoal:
		return m.AdvancementGoal
	case SlotPrivateMessageSent:
		return m.PrivateMessageSent
	case SlotPrivateMessageReceived:
		return m.PrivateMessageReceived
	case SlotTeamChatSent:
		return m.SentTeamChat
	case SlotTeamChatReceived:
		return m.ReceivedTeamChat
	case SlotSayCommand:
		return m.SayCommand
	case SlotMeCommand:
		return m.MeCommand
	case SlotPetDeath:
		return m.PetDeath
	case SlotSpoilerStyle:
		return r.SpoilerStyle
	case SlotLinkStyle:
		return r.LinkStyle
	case SlotMentionStyle:
		return r.MentionStyle
	default:
		return nil
	}
}

// Set assigns a template to slot. Used by tests and the --set CLI path.
func (r *RawStyleData) Set(slot Slot, template string) {
	v := template
	m := &r.Messages
	switch slot {
	case SlotDisplayName:
		r.DisplayName = &v
	case SlotChat:
		m.Chat = &v
	case SlotJoin:
		m.JoinedGame = &v
	case SlotJoinFirstTime:
		m.JoinedForFirstTime = &v
	case SlotJoinRenamed:
		m.JoinedAfterNameChange = &v
	case SlotLeft:
		m.LeftGame = &v
	case SlotDeath:
		m.BaseDeath = &v
	case SlotAdvancementTask:
		m.AdvancementTask = &v
	case SlotAdvancementChallenge:
		m.AdvancementChallenge = &v
	case SlotAdvancementGoal:
		m.AdvancementGoal = &v
	case SlotPrivateMessageSent:
		m.PrivateMessageSent = &v
	case SlotPrivateMessageReceived:
		m.PrivateMessageReceived = &v
	case SlotTeamChatSent:
		m.SentTeamChat = &v
	case SlotTeamChatReceived:
		m.ReceivedTeamChat = &v
	case SlotSayCommand:
		m.SayCommand = &v
	case SlotMeCommand:
		m.MeCommand = &v
	case SlotPetDeath:
		m.PetDeath = &v
	case SlotSpoilerStyle:
		r.SpoilerStyle = &v
	case SlotLinkStyle:
		r.LinkStyle = &v
	case SlotMentionStyle:
		r.MentionStyle = &v
	}
}

// String is a helper for building RawStyleData literals
func String(s string) *string { return &s }
