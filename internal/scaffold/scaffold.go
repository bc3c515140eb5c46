package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/lexingtonthemes/create-bearnie/internal/branding"
	"github.com/lexingtonthemes/create-bearnie/internal/ctxlog"
	"github.com/lexingtonthemes/create-bearnie/internal/manifest"
	"github.com/lexingtonthemes/create-bearnie/internal/prompt"
	"github.com/lexingtonthemes/create-bearnie/internal/ui"
	"github.com/spf13/afero"
)

// Status is the terminal state of a scaffolding run.
type Status int

const (
	StatusSuccess Status = iota
	StatusCancelled
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusCancelled:
		return "cancelled"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// ExitCode maps the status to a process exit code. Cancelling is not an error.
func (s Status) ExitCode() int {
	if s == StatusFailed {
		return 1
	}
	return 0
}

// Project identifies the project a run resolved.
type Project struct {
	Name string // as given on the command line or at the prompt
	Dir  string // absolute target directory
}

// Result holds the outcome of Run.
type Result struct {
	Status   Status
	Project  Project
	Files    int      // template files copied
	Warnings []string // non-fatal problems, in the order found
	Err      error    // set when Status is StatusFailed
}

// Options configures Run. Zero values fall back to the bundled template,
// the OS filesystem, the process working directory, and os.Stdout.
type Options struct {
	// Name is the project name from the command line; empty means ask.
	Name     string
	WorkDir  string
	Template fs.FS
	Fs       afero.Fs
	Prompter prompt.Prompter
	Out      io.Writer
}

func (o *Options) setDefaults() error {
	if o.Template == nil {
		o.Template = DefaultTemplate()
	}
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.WorkDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}
		o.WorkDir = cwd
	}
	return nil
}

// Run scaffolds a project. It never exits the process: cancellation at
// either prompt yields StatusCancelled, and any I/O failure yields
// StatusFailed with Err set. A failure after the copy leaves the partially
// written directory in place.
func Run(ctx context.Context, opts Options) *Result {
	log := ctxlog.FromContext(ctx)
	result := &Result{}

	fail := func(err error) *Result {
		result.Status = StatusFailed
		result.Err = err
		log.Debug("scaffold failed", "error", err)
		return result
	}
	cancel := func() *Result {
		result.Status = StatusCancelled
		log.Debug("scaffold cancelled")
		return result
	}

	if err := opts.setDefaults(); err != nil {
		return fail(err)
	}

	name, err := resolveName(opts)
	if errors.Is(err, prompt.ErrCancelled) {
		return cancel()
	}
	if err != nil {
		return fail(err)
	}
	if name == "" {
		return cancel()
	}
	if err := ValidateName(name); err != nil {
		if opts.Name == "" {
			return fail(fmt.Errorf("prompted project name %q: %w", name, err))
		}
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"project name %q contains characters other than letters, numbers, hyphens, and underscores", name))
	}

	target := filepath.Join(opts.WorkDir, name)
	result.Project = Project{Name: name, Dir: target}
	log.Debug("resolved project", "name", name, "dir", target)

	exists, err := afero.Exists(opts.Fs, target)
	if err != nil {
		return fail(fmt.Errorf("checking %s: %w", target, err))
	}
	if exists {
		if opts.Prompter == nil {
			return fail(fmt.Errorf("directory %s already exists", target))
		}
		overwrite, err := opts.Prompter.Confirm(
			fmt.Sprintf("Directory %s already exists. Overwrite?", ui.Cyan(name)), false)
		if errors.Is(err, prompt.ErrCancelled) || (err == nil && !overwrite) {
			return cancel()
		}
		if err != nil {
			return fail(err)
		}

		log.Debug("removing existing directory", "dir", target)
		if err := opts.Fs.RemoveAll(target); err != nil {
			return fail(fmt.Errorf("removing %s: %w", target, err))
		}
	}

	if err := ctx.Err(); err != nil {
		return fail(fmt.Errorf("scaffolding interrupted: %w", err))
	}

	ui.Creating(opts.Out, target)

	files, err := CopyTree(opts.Template, opts.Fs, target)
	if err != nil {
		return fail(fmt.Errorf("copying template: %w", err))
	}
	result.Files = files
	log.Debug("copied template", "files", files)

	manifestPath := filepath.Join(target, manifest.FileName)
	if err := manifest.PatchName(opts.Fs, manifestPath, name); err != nil {
		return fail(err)
	}
	log.Debug("patched manifest", "path", manifestPath)

	if err := WriteGitignore(opts.Fs, target); err != nil {
		return fail(err)
	}

	ui.Created(opts.Out)

	result.Warnings = append(result.Warnings, validateManifest(opts.Fs, manifestPath)...)
	result.Status = StatusSuccess
	return result
}

// resolveName returns the command-line name, or asks for one.
func resolveName(opts Options) (string, error) {
	if opts.Name != "" {
		return opts.Name, nil
	}
	if opts.Prompter == nil {
		return "", errors.New("project name is required when no prompter is available")
	}
	return opts.Prompter.Input("Project name:", branding.DefaultProjectName(), ValidateName)
}

// validateManifest reports schema problems in the generated package.json.
func validateManifest(fsys afero.Fs, path string) []string {
	res, err := manifest.ValidateFile(fsys, path)
	if err != nil {
		return []string{fmt.Sprintf("Could not validate %s: %v", manifest.FileName, err)}
	}

	var warnings []string
	for _, issue := range res.Issues {
		warnings = append(warnings, fmt.Sprintf("%s %s", manifest.FileName, issue))
	}
	return warnings
}
