package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/younisrahman/appheader/pkg/config"
	"gopkg.in/yaml.v3"
)

var (
	configEnv   bool
	configWrite bool

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())
			if cfg == nil {
				return config.ErrNilConfig
			}
			out := cmd.OutOrStdout()

			switch {
			case configWrite:
				if err := cfg.WriteConfig(); err != nil {
					return fmt.Errorf("write config: %w", err)
				}
				fmt.Fprintln(out, cfg.ConfigPath())
				return nil
			case configEnv:
				for _, e := range cfg.Environ() {
					fmt.Fprintln(out, e)
				}
				return nil
			}

			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			defer enc.Close() // nolint: errcheck
			return enc.Encode(cfg)
		},
	}
)

func init() {
	configCmd.Flags().BoolVar(&configEnv, "env", false, "print the configuration as environment variables")
	configCmd.Flags().BoolVarP(&configWrite, "write", "w", false, "write the configuration file to the data path")
}
