package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/require"
)

// envConfigPath mirrors config.EnvConfigPath; config's own tests import
// this package
const envConfigPath = "CHATSTYLE_CONFIG"

// TestEnvironment is an isolated set of XDG directories
type TestEnvironment struct {
	t *testing.T

	Root       string
	ConfigHome string
	DataHome   string
	StateHome  string
}

// NewTestEnvironment points XDG_CONFIG_HOME, XDG_DATA_HOME and
// XDG_STATE_HOME at fresh directories and clears CHATSTYLE_CONFIG. The
// previous environment is restored when the test ends.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()
	root := t.TempDir()
	env := &TestEnvironment{
		t:          t,
		Root:       root,
		ConfigHome: filepath.Join(root, "config"),
		DataHome:   filepath.Join(root, "data"),
		StateHome:  filepath.Join(root, "state"),
	}

	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_DATA_HOME", env.DataHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	t.Setenv(envConfigPath, "")
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	return env
}

// WriteFile writes content to name, relative to Root, creating parent
// directories, and returns the absolute path
func (env *TestEnvironment) WriteFile(name, content string) string {
	env.t.Helper()
	return WriteFile(env.t, env.Root, name, content)
}

// WriteFile writes content to dir/name, creating parent directories
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}
