package cli

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/lexingtonthemes/create-bearnie/internal/branding"
	"github.com/lexingtonthemes/create-bearnie/internal/config"
	"github.com/lexingtonthemes/create-bearnie/internal/ctxlog"
	"github.com/lexingtonthemes/create-bearnie/internal/manifest"
	"github.com/lexingtonthemes/create-bearnie/internal/prompt"
	"github.com/lexingtonthemes/create-bearnie/internal/runtime"
	"github.com/lexingtonthemes/create-bearnie/internal/scaffold"
	"github.com/lexingtonthemes/create-bearnie/internal/ui"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Seams replaced in tests.
var (
	newPrompter = func() prompt.Prompter { return prompt.NewHuhPrompter() }
	checkNode   = runtime.CheckNode
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [project-name]",
	Short: branding.Description(),
	Long: branding.Description() + `.

Copies the ` + branding.DisplayName() + ` starter template into ./<project-name>, sets the
package.json name, and writes a .gitignore. Without a project name you are
asked for one; an existing directory is only replaced after confirmation.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	// Any word is a project name, including "completion".
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	RunE:              runCreate,
}

func init() {
	rootCmd.Flags().String(config.KeyTemplate, "", "Copy this template directory instead of the bundled one (env "+branding.EnvVar(config.KeyTemplate)+")")
	rootCmd.Flags().BoolP(config.KeyVerbose, "v", false, "Log each scaffolding step to stderr (env "+branding.EnvVar(config.KeyVerbose)+")")
}

// Execute runs the root command with build info injected via ldflags and
// returns the process exit code.
func Execute(version, commit, date string) int {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", buildVersion, buildCommit, buildDate)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ui.Error(rootCmd.ErrOrStderr(), err)
		return scaffold.StatusFailed.ExitCode()
	}
	return scaffold.StatusSuccess.ExitCode()
}

func runCreate(cmd *cobra.Command, args []string) error {
	if err := config.Load(cmd.Flags()); err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	out := cmd.OutOrStdout()
	ctx := ctxlog.WithLogger(cmd.Context(), ctxlog.New(cmd.ErrOrStderr(), config.Verbose()))

	tmpl, err := resolveTemplate(config.TemplateDir())
	if err != nil {
		return err
	}

	var name string
	if len(args) > 0 {
		name = args[0]
	}

	ui.Banner(out)

	result := scaffold.Run(ctx, scaffold.Options{
		Name:     name,
		Template: tmpl,
		Prompter: newPrompter(),
		Out:      out,
	})

	switch result.Status {
	case scaffold.StatusCancelled:
		ui.Cancelled(out)
		return nil
	case scaffold.StatusFailed:
		return result.Err
	}

	for _, w := range result.Warnings {
		ui.Warning(out, w)
	}
	reportNode(ctx, out, result.Project.Dir)
	ui.NextSteps(out, result.Project.Name)
	return nil
}

// resolveTemplate returns the bundled template, or the override directory
// when one is configured.
func resolveTemplate(dir string) (fs.FS, error) {
	if dir == "" {
		return scaffold.DefaultTemplate(), nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving template directory %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("template directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template directory %s is not a directory", abs)
	}
	return os.DirFS(abs), nil
}

// reportNode warns when the local Node.js does not match the generated
// project's engines.node range. Problems here never fail the run.
func reportNode(ctx context.Context, out io.Writer, projectDir string) {
	log := ctxlog.FromContext(ctx)

	data, err := os.ReadFile(filepath.Join(projectDir, manifest.FileName))
	if err != nil {
		log.Debug("skipping node check", "error", err)
		return
	}

	check, err := checkNode(ctx, manifest.EngineRange(data))
	if err != nil {
		log.Debug("node check failed", "error", err)
		return
	}
	if msg := check.Message(); msg != "" {
		ui.Warning(out, msg)
	}
}
