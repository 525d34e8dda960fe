package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projboard/internal/launcher"
)

var opts launcher.Options

var rootCmd = &cobra.Command{
	Use:   "projboard",
	Short: "Projboard - A terminal-based project board",
	Long: `Projboard is a terminal-based board for tracking projects.
Add projects with a title, description and head count, then drag them
between the ACTIVE and FINISHED lists as work progresses.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch(opts)
	},
}

func init() {
	rootCmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to config file (default $XDG_CONFIG_HOME/projboard/config.yaml)")
	rootCmd.Flags().StringVar(&opts.Theme, "theme", "", "color preset to use: default or monochrome")
	rootCmd.Flags().StringVar(&opts.Focus, "focus", "", "list to focus at startup: active or finished")
	rootCmd.Flags().BoolVar(&opts.Debug, "debug", false, "write debug level logs to ~/.projboard/logs")
}

func Execute() error {
	return rootCmd.Execute()
}
