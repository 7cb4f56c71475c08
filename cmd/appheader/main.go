package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/younisrahman/appheader/pkg/config"
	applog "github.com/younisrahman/appheader/pkg/log"
	"github.com/younisrahman/appheader/pkg/ui/icons"
)

var (
	// Version contains the application version number. It's set via ldflags
	// when building.
	Version = ""

	// CommitSHA contains the SHA of the commit that this application was built
	// against. It's set via ldflags when building.
	CommitSHA = ""

	configPath string

	logFile *os.File

	rootCmd = &cobra.Command{
		Use:                "appheader",
		Short:              "An animated application header for the terminal",
		Long:               "appheader renders a header with a drawer button, the focused screen's title, and a right action, all with press animations.",
		SilenceUsage:       true,
		PersistentPreRunE:  initContext,
		PersistentPostRunE: closeContext,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")
	rootCmd.AddCommand(
		demoCmd,
		iconsCmd,
		configCmd,
		manCmd,
	)

	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Sum != "" {
			Version = info.Main.Version
		} else {
			Version = "unknown (built from source)"
		}
	}
	rootCmd.Version = Version
}

// initContext loads the configuration and sets up the logger. Both travel
// in the command context.
func initContext(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger, f, err := applog.NewLogger(cfg)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	logFile = f

	// Set global logger
	log.SetDefault(logger)

	for name, glyphs := range cfg.Glyphs {
		if fam, ok := icons.ParseFamily(name); ok {
			icons.Default.Extend(fam, glyphs)
		}
	}

	ctx := cmd.Context()
	ctx = config.WithContext(ctx, cfg)
	ctx = log.WithContext(ctx, logger)
	cmd.SetContext(ctx)

	return nil
}

func closeContext(*cobra.Command, []string) error {
	if logFile != nil {
		return logFile.Close()
	}
	return nil
}

// loadConfig reads the config from path, or from the data path when path is
// empty. Environment variables take precedence over the file.
func loadConfig(path string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path == "" {
		if err := cfg.Parse(); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
		return cfg, nil
	}

	if err := config.ParseConfig(cfg, path); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.ParseEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
