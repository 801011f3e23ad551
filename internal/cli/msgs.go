package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Chat style templates and emoticon tables"
	MsgRenderShort     = "Render one slot for a subject"
	MsgValidateShort   = "Build every style and report problems"
	MsgEmoticonsShort  = "List emoticon triggers for a subject"
	MsgGenConfigShort  = "Write the default configuration file"
	MsgServeShort      = "Serve the preview HTTP API"
	MsgVersionShort    = "Print version information"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Status messages
	MsgSuppressed      = "(suppressed: the slot is blank for this style)"
	MsgAbsent          = "(absent: no template for this message)"
	MsgRenderedBy      = "style: %s\n"
	MsgStyleClean      = "  ok"
	MsgAllClean        = "All styles built cleanly."
	MsgNotClean        = "Some styles have problems."
	MsgNoEmoticons     = "No emoticons match."
	MsgEmoticonCount   = "%s emoticons for style %s\n"
	MsgConfigWritten   = "Wrote default configuration to %s\n"
	MsgServing         = "Serving %d styles on http://%s\n"
	MsgWatching        = "Watching %s for changes\n"
	MsgRequire         = "  require: %s\n"
	MsgReportEmoticons = "  emoticons %s (%s): %d entries"
	MsgReportFiltered  = ", %d variant forms filtered"

	// Error messages
	MsgErrLoadStyles  = "failed to load styles: %w"
	MsgErrUnknownSty  = "unknown style %q"
	MsgErrNeedID      = "the custom slot needs --id"
	MsgErrBadVar      = "--var %q is not name=value"
	MsgErrBadColor    = "--color must be auto, always or never, got %q"
	MsgErrNotClean    = "validation failed"
	MsgErrNoCommand   = "no command specified"
	MsgErrHelpMissing = "help command not found"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Configuration file (default $XDG_CONFIG_HOME/chatstyle/config.toml)"
	MsgFlagColor      = "Colour output: auto, always or never"
	MsgFlagSet        = "Override a configuration key, e.g. --set parser.legacy_codes=true"
	MsgFlagVar        = "Context variable as name=value (repeatable)"
	MsgFlagPermission = "Permission the subject holds (repeatable, supports prefix.*)"
	MsgFlagOpLevel    = "Operator level of the subject"
	MsgFlagID         = "Custom message id (namespace:path) for the custom slot"
	MsgFlagStyle      = "Render with the named style instead of selecting one"
	MsgFlagStrict     = "Fail when any style is not clean"
	MsgFlagFilter     = "Only show triggers containing this text"
	MsgFlagForce      = "Overwrite an existing file"
	MsgFlagAddr       = "Listen address (default from server.addr)"
	MsgFlagWatch      = "Rebuild styles when the configuration file changes"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/validate-long.txt
	msgValidateLongRaw string
	MsgValidateLong    = strings.TrimSpace(msgValidateLongRaw)

	//go:embed msgs/emoticons-long.txt
	msgEmoticonsLongRaw string
	MsgEmoticonsLong    = strings.TrimSpace(msgEmoticonsLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/serve-long.txt
	msgServeLongRaw string
	MsgServeLong    = strings.TrimSpace(msgServeLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
