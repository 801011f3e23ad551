package style

import "github.com/arthur-debert/chatstyle/pkg/render"

// Context variable names available to templates
const (
	VarPlayer             = "player"
	VarMessage            = "message"
	VarOldName            = "old_name"
	VarDefaultMessage     = "default_message"
	VarAdvancement        = "advancement"
	VarSender             = "sender"
	VarReceiver           = "receiver"
	VarTeam               = "team"
	VarDisplayName        = "display_name"
	VarPet                = "pet"
	VarVanillaDisplayName = "vanilla_display_name"
	VarName               = "name"
	VarDefault            = "default"
	VarSpoiler            = "spoiler"
	VarURL                = "url"
)

// ChatContext is used by the chat slot
func ChatContext(player, message string) render.Context {
	return render.Context{VarPlayer: player, VarMessage: message}
}

// PlayerContext is used by join, join_first_time and left
func PlayerContext(player string) render.Context {
	return render.Context{VarPlayer: player}
}

func RenamedContext(player, oldName string) render.Context {
	return render.Context{VarPlayer: player, VarOldName: oldName}
}

func DeathContext(player, defaultMessage string) render.Context {
	return render.Context{VarPlayer: player, VarDefaultMessage: defaultMessage}
}

func AdvancementContext(player, advancement string) render.Context {
	return render.Context{VarPlayer: player, VarAdvancement: advancement}
}

func PrivateMessageContext(sender, receiver, message string) render.Context {
	return render.Context{VarSender: sender, VarReceiver: receiver, VarMessage: message}
}

func TeamChatContext(team, displayName, message string) render.Context {
	return render.Context{VarTeam: team, VarDisplayName: displayName, VarMessage: message}
}

// CommandContext is used by /say and /me
func CommandContext(player, displayName, message string) render.Context {
	return render.Context{VarPlayer: player, VarDisplayName: displayName, VarMessage: message}
}

// CustomContext is used by custom message ids. A nil receiver renders as "".
func CustomContext(receiver *string, displayName, message string) render.Context {
	r := ""
	if receiver != nil {
		r = *receiver
	}
	return render.Context{VarReceiver: r, VarDisplayName: displayName, VarMessage: message}
}

func PetDeathContext(pet, defaultMessage string) render.Context {
	return render.Context{VarPet: pet, VarDefaultMessage: defaultMessage}
}

// DisplayNameContext exposes the vanilla display name under its own name,
// as "player" and as "default"; name is the plain account name.
func DisplayNameContext(vanillaDisplayName, name string) render.Context {
	return render.Context{
		VarVanillaDisplayName: vanillaDisplayName,
		VarPlayer:             vanillaDisplayName,
		VarDefault:            vanillaDisplayName,
		VarName:               name,
	}
}

func SpoilerContext(spoiler string) render.Context {
	return render.Context{VarSpoiler: spoiler}
}

func LinkContext(url string) render.Context {
	return render.Context{VarURL: url}
}

func MentionContext(player string) render.Context {
	return render.Context{VarPlayer: player}
}

// customVars are the variables CustomContext supplies
var customVars = []string{VarReceiver, VarDisplayName, VarMessage}
