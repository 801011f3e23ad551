package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/chatstyle/pkg/config"
	"github.com/arthur-debert/chatstyle/pkg/errors"
	"github.com/arthur-debert/chatstyle/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tieredConfig = `
[default_style.custom]
"myplugin:broadcast" = "[Broadcast] ${message}"

[[permission_styles]]
name = "admin"
require = { type = "operator", level = 4 }
[permission_styles.style.messages]
chat = "<red>[Admin]</> ${player}: ${message}"

[[permission_styles]]
name = "vip"
require = { type = "permission", node = "chat.vip" }
[permission_styles.style]
display_name = "<gold>${name}</>"
[permission_styles.style.emoticons]
vipheart = "<light_purple>♥</>"
`

// run executes the root command and returns stdout and stderr
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRenderDefaults(t *testing.T) {
	testutil.NewTestEnvironment(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "chat",
			args: []string{"render", "chat", "--var", "player=Steve", "--var", "message=hello"},
			want: "Steve: hello\n",
		},
		{
			name: "config key as slot",
			args: []string{"render", "messages.chat", "--var", "player=Steve", "--var", "message=hi"},
			want: "Steve: hi\n",
		},
		{
			name: "globals are baked in",
			args: []string{"render", "join_first_time", "--var", "player=Alex"},
			want: "Welcome to chatstyle, Alex!\n",
		},
		{
			name: "blank display name passes the vanilla name through",
			args: []string{"render", "display_name", "--var", "vanilla_display_name=Steve", "--var", "name=steve"},
			want: "Steve\n",
		},
		{
			name: "value with equals sign",
			args: []string{"render", "chat", "--var", "player=Steve", "--var", "message=a=b"},
			want: "Steve: a=b\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
			assert.Contains(t, stderr, "style: default")
		})
	}
}

func TestRenderSuppressedAndAbsent(t *testing.T) {
	testutil.NewTestEnvironment(t)

	stdout, stderr, err := run(t, "render", "chat", "--set", "default_style.messages.chat=", "--var", "player=Steve")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, MsgSuppressed)

	stdout, stderr, err = run(t, "render", "custom", "--id", "myplugin:unknown")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, MsgAbsent)
}

func TestRenderTiers(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	cfg := env.WriteFile("chatstyle.toml", tieredConfig)

	tests := []struct {
		name      string
		args      []string
		want      string
		wantStyle string
	}{
		{
			name:      "operator selects admin",
			args:      []string{"render", "chat", "--op-level", "4", "--var", "player=Steve", "--var", "message=hi"},
			want:      "[Admin] Steve: hi\n",
			wantStyle: "admin",
		},
		{
			name:      "low operator level falls back to default",
			args:      []string{"render", "chat", "--op-level", "3", "--var", "player=Steve", "--var", "message=hi"},
			want:      "Steve: hi\n",
			wantStyle: "default",
		},
		{
			name:      "permission selects vip",
			args:      []string{"render", "display_name", "-p", "chat.vip", "--var", "vanilla_display_name=Steve", "--var", "name=steve"},
			want:      "steve\n",
			wantStyle: "vip",
		},
		{
			name:      "vip inherits chat from default",
			args:      []string{"render", "chat", "-p", "chat.*", "--var", "player=Steve", "--var", "message=hi"},
			want:      "Steve: hi\n",
			wantStyle: "vip",
		},
		{
			name:      "explicit style wins over selection",
			args:      []string{"render", "chat", "--op-level", "4", "--style", "default", "--var", "player=Steve", "--var", "message=hi"},
			want:      "Steve: hi\n",
			wantStyle: "default",
		},
		{
			name:      "custom message",
			args:      []string{"render", "custom", "--id", "myplugin:broadcast", "--var", "message=restarting"},
			want:      "[Broadcast] restarting\n",
			wantStyle: "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := run(t, append([]string{"--config", cfg}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
			assert.Contains(t, stderr, "style: "+tt.wantStyle)
		})
	}
}

func TestRenderErrors(t *testing.T) {
	testutil.NewTestEnvironment(t)

	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{"unknown slot", []string{"render", "nope"}, errors.ErrUnknownSlot},
		{"custom without id", []string{"render", "custom"}, errors.ErrInvalidInput},
		{"malformed id", []string{"render", "custom", "--id", "My:broadcast"}, errors.ErrMalformedIdentifier},
		{"bad var", []string{"render", "chat", "--var", "player"}, errors.ErrInvalidInput},
		{"unknown style", []string{"render", "chat", "--style", "ghost"}, errors.ErrNotFound},
		{"bad color", []string{"--color", "sometimes", "render", "chat"}, errors.ErrInvalidInput},
		{"bad override", []string{"--set", "novalue", "render", "chat"}, errors.ErrInvalidInput},
		{"missing config", []string{"--config", "/does/not/exist.toml", "render", "chat"}, errors.ErrConfigLoad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestValidate(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	t.Run("defaults are clean", func(t *testing.T) {
		stdout, _, err := run(t, "validate", "--strict")
		require.NoError(t, err)
		assert.Contains(t, stdout, "default")
		assert.Contains(t, stdout, "$emojibase:builtin:joypixels")
		assert.Contains(t, stdout, MsgAllClean)
	})

	cfg := env.WriteFile("chatstyle.toml", `
[default_style.messages]
chat = "${oops}: ${message}"

[default_style.emoticons]
"$default:nowhere:x" = "${emoji}"
`)

	t.Run("problems are listed", func(t *testing.T) {
		stdout, _, err := run(t, "--config", cfg, "validate")
		require.NoError(t, err)
		assert.Contains(t, stdout, "chat: ${oops} is never supplied")
		assert.Contains(t, stdout, "$default:nowhere:x")
		assert.Contains(t, stdout, MsgNotClean)
	})

	t.Run("strict fails", func(t *testing.T) {
		_, _, err := run(t, "--config", cfg, "validate", "--strict")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestEmoticons(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	cfg := env.WriteFile("chatstyle.toml", tieredConfig)

	stdout, _, err := run(t, "--config", cfg, "emoticons", "--filter", "shrug")
	require.NoError(t, err)
	assert.Contains(t, stdout, "shrug")
	assert.Contains(t, stdout, "¯\\_(ツ)_/¯")
	assert.NotContains(t, stdout, "tableflip")
	assert.NotContains(t, stdout, "vipheart")

	stdout, _, err = run(t, "--config", cfg, "emoticons", "-p", "chat.vip", "--filter", "VIP")
	require.NoError(t, err)
	assert.Contains(t, stdout, "vipheart")
	assert.Contains(t, stdout, "♥")
	assert.Contains(t, stdout, "vip")

	stdout, _, err = run(t, "--config", cfg, "emoticons", "--filter", "zzz-nothing")
	require.NoError(t, err)
	assert.Contains(t, stdout, MsgNoEmoticons)
}

func TestGenConfig(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	t.Run("stdout", func(t *testing.T) {
		stdout, _, err := run(t, "genconfig", "-")
		require.NoError(t, err)
		assert.Equal(t, config.GenerateConfigContent(), stdout)
	})

	t.Run("explicit path", func(t *testing.T) {
		p := filepath.Join(env.Root, "out", "config.toml")
		stdout, _, err := run(t, "genconfig", p)
		require.NoError(t, err)
		assert.Contains(t, stdout, p)
		assert.FileExists(t, p)

		_, _, err = run(t, "genconfig", p)
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

		_, _, err = run(t, "genconfig", "--force", p)
		assert.NoError(t, err)
	})

	t.Run("default location", func(t *testing.T) {
		_, _, err := run(t, "genconfig")
		require.NoError(t, err)
		assert.FileExists(t, config.DefaultPath())

		// the written file loads as the user config and changes nothing
		stdout, _, err := run(t, "render", "chat", "--var", "player=Steve", "--var", "message=hi")
		require.NoError(t, err)
		assert.Equal(t, "Steve: hi\n", stdout)
	})
}

func TestHelpTopics(t *testing.T) {
	testutil.NewTestEnvironment(t)

	stdout, _, err := run(t, "help", "topics")
	require.NoError(t, err)
	for _, topic := range []string{"templates", "styles", "emoticons"} {
		assert.Contains(t, stdout, topic)
	}

	stdout, _, err = run(t, "topics")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Available help topics:")

	stdout, _, err = run(t, "help", "templates")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Placeholders")
}

func TestVersionAndCompletion(t *testing.T) {
	testutil.NewTestEnvironment(t)

	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "chatstyle dev")

	stdout, _, err = run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, stdout, "chatstyle")

	_, _, err = run(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestNoCommand(t *testing.T) {
	testutil.NewTestEnvironment(t)

	_, _, err := run(t)
	assert.EqualError(t, err, MsgErrNoCommand)
}

func TestParseVars(t *testing.T) {
	ctx, err := parseVars([]string{"player=Steve", "message=", "x=a=b"})
	require.NoError(t, err)
	assert.Equal(t, "Steve", ctx["player"])
	assert.Equal(t, "", ctx["message"])
	assert.Equal(t, "a=b", ctx["x"])

	_, err = parseVars([]string{"=value"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestManPages(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	dir := filepath.Join(env.Root, "man")
	require.NoError(t, os.MkdirAll(dir, 0755))

	_, _, err := run(t, "man", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "chatstyle.1"))
	assert.FileExists(t, filepath.Join(dir, "chatstyle-render.1"))
}
