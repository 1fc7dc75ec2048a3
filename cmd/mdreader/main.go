// Package main provides the mdreader command.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kyaoi/mdreader/internal/app"
)

// Build information set via ldflags
var version = "dev"

var (
	tag        string
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "mdreader <path-to-markdown-or-directory>",
	Short: "Read markdown articles in the terminal",
	Long: `mdreader renders markdown articles in the terminal.

Press p to open the display settings panel, choose font, size, colors and
content width, then apply them to the article. ? shows every key.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(cmd.Context(), app.Options{
			Target:     filepath.Clean(args[0]),
			Tag:        tag,
			ConfigPath: configPath,
			LogLevel:   logLevel,
		})
	},
}

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List the display settings and their defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.PrintCatalog(cmd.OutOrStdout())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mdreader %s\n", version)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&tag, "tag", "t", "", "only show articles whose front matter lists this tag")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/mdreader/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "trace, debug, info, warn or error")
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
