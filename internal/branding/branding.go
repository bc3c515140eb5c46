// Package branding provides compile-time identity values for the CLI.
//
// Values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork only has to edit the YAML.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName            string `yaml:"cli_name"`
	DisplayName        string `yaml:"display_name"`
	LogoName           string `yaml:"logo_name"`
	Description        string `yaml:"description"`
	EnvPrefix          string `yaml:"env_prefix"`
	DefaultProjectName string `yaml:"default_project_name"`
	GoModule           string `yaml:"go_module"`
	DocsLabel          string `yaml:"docs_label"`
	DocsURL            string `yaml:"docs_url"`
	AuthorName         string `yaml:"author_name"`
	AuthorURL          string `yaml:"author_url"`
	StudioName         string `yaml:"studio_name"`
	StudioURL          string `yaml:"studio_url"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:            "create-bearnie",
			DisplayName:        "Bearnie",
			LogoName:           "bearnie",
			Description:        "Scaffold a new Bearnie project",
			EnvPrefix:          "CREATE_BEARNIE",
			DefaultProjectName: "my-bearnie-app",
			GoModule:           "github.com/lexingtonthemes/create-bearnie",
			DocsLabel:          "bearnie.dev/docs/components",
			DocsURL:            "https://bearnie.dev/docs/components",
			AuthorName:         "Michael",
			AuthorURL:          "https://michaelandreuzza.com",
			StudioName:         "Lexington Themes",
			StudioURL:          "https://lexingtonthemes.com",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "create-bearnie").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Bearnie").
func DisplayName() string { load(); return defaults.DisplayName }

// LogoName returns the lowercase word shown next to the logo in the banner.
func LogoName() string { load(); return defaults.LogoName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "CREATE_BEARNIE").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// DefaultProjectName returns the name suggested by the interactive prompt.
func DefaultProjectName() string { load(); return defaults.DefaultProjectName }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// DocsLabel and DocsURL describe the component docs link printed on success.
func DocsLabel() string { load(); return defaults.DocsLabel }
func DocsURL() string   { load(); return defaults.DocsURL }

// AuthorName and AuthorURL describe the author credit link.
func AuthorName() string { load(); return defaults.AuthorName }
func AuthorURL() string  { load(); return defaults.AuthorURL }

// StudioName and StudioURL describe the studio credit link.
func StudioName() string { load(); return defaults.StudioName }
func StudioURL() string  { load(); return defaults.StudioURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("template") → "CREATE_BEARNIE_TEMPLATE".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
