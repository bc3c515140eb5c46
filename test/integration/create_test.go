//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestCreateNewProject runs the binary with a name and no existing directory.
func TestCreateNewProject(t *testing.T) {
	workDir := t.TempDir()

	res := runBinary(t, workDir, "", "my-app")
	if res.ExitCode != 0 {
		t.Fatalf("exit code = %d\nstderr:\n%s", res.ExitCode, res.Stderr)
	}

	dir := filepath.Join(workDir, "my-app")
	assertFileContains(t, filepath.Join(dir, "package.json"), `"name": "my-app"`)
	assertFileContains(t, filepath.Join(dir, ".gitignore"), "node_modules/")
	assertFileContains(t, filepath.Join(dir, ".gitignore"), "!.env.example")
	assertFileExists(t, filepath.Join(dir, "astro.config.mjs"))
	assertFileExists(t, filepath.Join(dir, "src", "pages", "index.astro"))

	if !strings.Contains(res.Stdout, "Next steps:") {
		t.Errorf("stdout missing next steps:\n%s", res.Stdout)
	}
}

// TestCreateMissingManifest points the binary at a template without a
// package.json and expects a failure with nothing but the copy on disk.
func TestCreateMissingManifest(t *testing.T) {
	workDir := t.TempDir()
	tmplDir := t.TempDir()
	writeFile(t, filepath.Join(tmplDir, "README.md"), "# template\n")

	res := runBinary(t, workDir, "", "--template", tmplDir, "my-app")
	if res.ExitCode != 1 {
		t.Fatalf("exit code = %d, want 1\nstdout:\n%s", res.ExitCode, res.Stdout)
	}
	if !strings.Contains(res.Stderr, "Error:") {
		t.Errorf("stderr = %q, want Error: prefix", res.Stderr)
	}
	assertFileNotExists(t, filepath.Join(workDir, "my-app", ".gitignore"))
}

// TestCreateTooManyArguments rejects a second positional argument.
func TestCreateTooManyArguments(t *testing.T) {
	res := runBinary(t, t.TempDir(), "", "one", "two")
	if res.ExitCode != 1 {
		t.Fatalf("exit code = %d, want 1", res.ExitCode)
	}
	if !strings.Contains(res.Stderr, "Error:") {
		t.Errorf("stderr = %q, want Error: prefix", res.Stderr)
	}
}

// TestVersion prints build info injected at link time.
func TestVersion(t *testing.T) {
	res := runBinary(t, t.TempDir(), "", "--version")
	if res.ExitCode != 0 {
		t.Fatalf("exit code = %d", res.ExitCode)
	}
	if !strings.Contains(res.Stdout, "create-bearnie version dev") {
		t.Errorf("stdout = %q", res.Stdout)
	}
}

// TestCreateFromPipedName answers the name prompt on stdin.
func TestCreateFromPipedName(t *testing.T) {
	workDir := t.TempDir()

	res := runBinary(t, workDir, "piped-app\n")
	if res.ExitCode != 0 {
		t.Fatalf("exit code = %d\nstderr:\n%s", res.ExitCode, res.Stderr)
	}
	assertFileContains(t, filepath.Join(workDir, "piped-app", "package.json"), `"name": "piped-app"`)
}

// TestDeclineOverwriteFromStdin answers "n" to the overwrite question and
// expects the existing directory to be left alone.
func TestDeclineOverwriteFromStdin(t *testing.T) {
	workDir := t.TempDir()
	keep := filepath.Join(workDir, "my-app", "keep.txt")
	writeFile(t, keep, "keep\n")

	res := runBinary(t, workDir, "n\n", "my-app")
	if res.ExitCode != 0 {
		t.Fatalf("exit code = %d\nstderr:\n%s", res.ExitCode, res.Stderr)
	}
	if !strings.Contains(res.Stdout, "Cancelled.") {
		t.Errorf("stdout missing Cancelled.:\n%s", res.Stdout)
	}
	assertFileContains(t, keep, "keep")
	assertFileNotExists(t, filepath.Join(workDir, "my-app", "package.json"))
}

// TestPromptCancelledByEndOfInput covers stdin that ends before a valid
// name was given.
func TestPromptCancelledByEndOfInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty stdin", ""},
		{"invalid name", "bad name!\n"},
		{"path outside working directory", "../escape\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			workDir := filepath.Join(root, "work")
			if err := os.Mkdir(workDir, 0755); err != nil {
				t.Fatal(err)
			}

			res := runBinary(t, workDir, tt.input)
			if res.ExitCode != 0 {
				t.Fatalf("exit code = %d\nstderr:\n%s", res.ExitCode, res.Stderr)
			}
			if !strings.Contains(res.Stdout, "Cancelled.") {
				t.Errorf("stdout missing Cancelled.:\n%s", res.Stdout)
			}

			entries, err := os.ReadDir(workDir)
			if err != nil {
				t.Fatal(err)
			}
			if len(entries) != 0 {
				t.Errorf("working directory has %d entries, want none", len(entries))
			}
			assertFileNotExists(t, filepath.Join(root, "escape"))
		})
	}
}
