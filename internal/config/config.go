package config

import (
	"fmt"
	"strings"

	"github.com/lexingtonthemes/create-bearnie/internal/branding"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys. Each doubles as a flag name and, upper-cased behind the
// branding env prefix, as an environment variable.
const (
	KeyTemplate = "template"
	KeyVerbose  = "verbose"
)

// Load initializes Viper to read from the environment and the given flags.
// Flags set on the command line take precedence over the environment.
func Load(flags *pflag.FlagSet) error {
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if flags == nil {
		return nil
	}
	if err := viper.BindPFlags(flags); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// TemplateDir returns the template override directory, or "" for the bundled template.
func TemplateDir() string {
	return viper.GetString(KeyTemplate)
}

// Verbose reports whether step-by-step debug logging is enabled.
func Verbose() bool {
	return viper.GetBool(KeyVerbose)
}
