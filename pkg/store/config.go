// Package store resolves project file locations and owns the low-level
// persistence mechanics: atomic writes, timestamped backups, the
// best-effort UI-state cache, and filesystem change notification.
package store

import (
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the project under management.
type Config interface {
	ProjectDir() string
}

// LoadConfig resolves configuration from a .labjo file, LABJO_*
// environment variables, and defaults, in that order of preference.
func LoadConfig() (Config, error) {
	viper.SetDefault("project", ".")
	viper.SetConfigName(".labjo") // .yaml is implicit
	viper.SetEnvPrefix("LABJO")
	viper.AutomaticEnv()

	if override := os.Getenv("LABJO_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	project := viper.GetString("project")
	if strings.HasPrefix(project, "~") {
		if expanded, err := homedir.Expand(project); err == nil {
			project = expanded
		}
	}

	return &fileConfig{Project: project}, nil
}

type fileConfig struct {
	Project string `json:"project"`
}

func (f *fileConfig) ProjectDir() string {
	return f.Project
}
