package scaffold

import (
	"embed"
	"io/fs"
)

//go:embed all:template
var templateFS embed.FS

// DefaultTemplate returns the project template bundled with the binary.
func DefaultTemplate() fs.FS {
	sub, err := fs.Sub(templateFS, "template")
	if err != nil {
		// fs.Sub only fails on an invalid path, and "template" is a literal.
		panic(err)
	}
	return sub
}
