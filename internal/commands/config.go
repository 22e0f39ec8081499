package commands

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type effectiveConfig struct {
	BaseURL    string `yaml:"base_url"`
	Timeout    string `yaml:"timeout"`
	SessionDir string `yaml:"session_dir"`
	Language   string `yaml:"language"`
	File       string `yaml:"config_file,omitempty"`
}

func addConfig(topLevel *cobra.Command, rt *runtime) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the settings in effect after flags, environment and config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2)
			defer encoder.Close()

			return encoder.Encode(effectiveConfig{
				BaseURL:    rt.config.BaseURL,
				Timeout:    rt.config.Timeout.String(),
				SessionDir: rt.config.SessionDir,
				Language:   rt.language,
				File:       rt.config.File,
			})
		},
	}
	topLevel.AddCommand(cmd)
}
