package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// Gitignore is written verbatim to every generated project.
const Gitignore = `# Dependencies
node_modules/

# Build output
dist/

# Astro
.astro/

# Environment variables
.env
.env.*
!.env.example

# IDE
.vscode/
.idea/

# OS
.DS_Store
Thumbs.db
`

// WriteGitignore writes Gitignore to <dir>/.gitignore, replacing any
// .gitignore the template shipped.
func WriteGitignore(fsys afero.Fs, dir string) error {
	path := filepath.Join(dir, ".gitignore")
	if err := afero.WriteFile(fsys, path, []byte(Gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}
	return nil
}
