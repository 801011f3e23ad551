package testutil

import (
	"testing"

	"github.com/arthur-debert/chatstyle/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// MemorySource returns an in-memory filesystem holding files, keyed by
// slash-separated path
func MemorySource(t *testing.T, files map[string]string) filesystem.FS {
	t.Helper()
	mem := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(mem, name, []byte(content), 0644))
	}
	return filesystem.NewAferoFS(mem)
}
