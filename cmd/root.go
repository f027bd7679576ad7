package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Serve Sahil Talaviya's portfolio site",
	Long: `portfolio serves the one-page portfolio: the rendered page, its static
assets, a small JSON API over the same content, and a rotating quote
stream. Visit counting is optional and stores only hashed addresses.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path (optional)")
}
