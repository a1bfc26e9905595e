package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"spacyctl/internal/app"
	"spacyctl/internal/types"
)

func newAppService() app.Service {
	return app.NewService(app.Config{
		ReleasesURL:     viper.GetString("releases_url"),
		DownloadURL:     viper.GetString("download_url"),
		HTTPTimeoutSec:  viper.GetInt("http_timeout"),
		RegistryBackend: types.RegistryBackend(viper.GetString("registry_backend")),
		Python:          viper.GetString("python"),
		SitePackages:    viper.GetStringSlice("site_packages"),
	})
}

// bindCommandFlags binds the named flags of the executing command to
// their same-named viper keys. Commands share keys like "model" and
// "format"; binding in PreRunE keeps each key pointing at the active
// command's flag instead of whichever command was constructed last.
func bindCommandFlags(cmd *cobra.Command, names ...string) error {
	for _, name := range names {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := viper.BindPFlag(name, flag); err != nil {
			return err
		}
	}
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}

// resolveOutputPath merges the --output flag with the configured value.
// A config-sourced path goes through the same coercion and existing-
// file guard the flag value does at parse time.
func resolveOutputPath(cmd *cobra.Command, value Path, key string, flagName string) (string, error) {
	if flagChanged(cmd, flagName) {
		return value.String(), nil
	}
	raw := strings.TrimSpace(viper.GetString(key))
	if raw == "" {
		return "", nil
	}
	path, err := NewPath(raw, PathConstraints{})
	if err != nil {
		return "", err
	}
	checked, err := ValidateNewOutputPath(path)
	if err != nil {
		return "", err
	}
	return checked.String(), nil
}
