// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "easytheme",
	Short: "easytheme - CSS custom property themes from a few colors",
	Long: `easytheme turns a handful of primary and contrast colors into CSS custom
properties (--theme-<name>, -rgb, -contrast and lighter/darker variants) for
light and dark color schemes.

Themes can be rendered to stdout, written as stylesheet files, previewed in
the terminal, or served live over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
