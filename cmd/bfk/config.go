// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"bfk-cli/internal/config"
	"bfk-cli/internal/issue"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

var (
	configDumpFormat string

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage bfk configuration",
		Long: `Manage bfk configuration.

Configuration is stored in:
  - Linux: ~/.config/bfk/config.cue
  - macOS: ~/Library/Application Support/bfk/config.cue
  - Windows: %APPDATA%\bfk\config.cue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfigFile()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	})

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Output the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return dumpConfig(cmd, configDumpFormat)
		},
	}
	dumpCmd.Flags().StringVar(&configDumpFormat, "format", "cue", "output format (cue or toml)")
	configCmd.AddCommand(dumpCmd)
}

func showConfig() error {
	cfg, err := config.Load()
	if err != nil {
		renderIssue(issue.ConfigLoadFailedId)
		return &ExitError{Code: 1, Err: err}
	}

	fmt.Println(TitleStyle.Render("Current Configuration"))
	fmt.Println()

	cfgDir, dirErr := config.ConfigDir()
	cfgPath := ""
	if dirErr == nil {
		cfgPath = filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
	}
	if cfgPath != "" && fileExists(cfgPath) {
		fmt.Printf("%s: %s\n", CmdStyle.Render("Config file"), cfgPath)
	} else {
		fmt.Printf("%s: %s\n", CmdStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Println()

	fmt.Printf("%s: %s\n", CmdStyle.Render("tape_size"), SuccessStyle.Render(fmt.Sprintf("%d", cfg.TapeSize)))
	fmt.Printf("%s: %s\n", CmdStyle.Render("max_steps"), SuccessStyle.Render(fmt.Sprintf("%d", cfg.MaxSteps)))
	fmt.Printf("%s: %s\n", CmdStyle.Render("ui.color_scheme"), SuccessStyle.Render(string(cfg.UI.ColorScheme)))
	fmt.Printf("%s: %s\n", CmdStyle.Render("ui.verbose"), SuccessStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))
	return nil
}

func initConfigFile() error {
	if err := config.CreateDefaultConfig(); err != nil {
		return &ExitError{Code: 1, Err: issue.WrapWithOperation(err, "create default config")}
	}

	cfgDir, err := config.ConfigDir()
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}
	fmt.Printf("%s %s\n",
		SuccessStyle.Render("Created"),
		filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
	return nil
}

func showConfigPath() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}
	fmt.Println(filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
	return nil
}

func dumpConfig(cmd *cobra.Command, format string) error {
	cfg, err := config.Load()
	if err != nil {
		renderIssue(issue.ConfigLoadFailedId)
		return &ExitError{Code: 1, Err: err}
	}

	switch format {
	case "cue":
		fmt.Fprint(cmd.OutOrStdout(), config.GenerateCUE(cfg))
	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return &ExitError{Code: 1, Err: issue.WrapWithOperation(err, "encode config as TOML")}
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
	default:
		return &ExitError{Code: 1, Err: fmt.Errorf("unknown format %q (must be cue or toml)", format)}
	}
	return nil
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
