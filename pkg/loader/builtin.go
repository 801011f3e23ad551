package loader

import (
	"embed"
	"io/fs"

	"github.com/arthur-debert/chatstyle/pkg/filesystem"
)

//go:embed builtin/*.json
var builtinFiles embed.FS

// Builtin is the filesystem behind the "builtin" source kind
func Builtin() filesystem.FS {
	sub, err := fs.Sub(builtinFiles, "builtin")
	if err != nil {
		panic(err)
	}
	return filesystem.NewIOFS(sub)
}

// BuiltinNames lists the documents available to "builtin" keys
func BuiltinNames() []string {
	entries, _ := fs.ReadDir(builtinFiles, "builtin")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
