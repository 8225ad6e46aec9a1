package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// The name of the settings file, without the file extension because
	// viper supports many different config file languages.
	defaultSettingsFilename = "vtopo"

	// The environment variable prefix of all environment variables bound to command line flags.
	envPrefix = "VTOPO"
)

// initializeConfig sets up viper and binds the cobra flags to settings file
// values and environment variables.
func initializeConfig(cmd *cobra.Command) error {
	v := viper.New()

	v.SetConfigName(defaultSettingsFilename)
	v.AddConfigPath(".")

	// A missing settings file is fine; a broken one is not.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	return bindFlags(cmd, v)
}

// bindFlags sets every flag not given on the command line from its viper value.
// Flags given on the command line take priority.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var errs []error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || !v.IsSet(f.Name) {
			return
		}

		if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil {
			errs = append(errs, fmt.Errorf("invalid value for %s: %w", f.Name, err))
		}
	})

	return errors.Join(errs...)
}
