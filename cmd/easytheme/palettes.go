// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/easytheme/internal/preview"
	"github.com/thatcatcamp/easytheme/internal/themes"
)

var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List the built-in palettes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range themes.ListPalettes() {
			fmt.Println(preview.PaletteRow(p))
		}
	},
}

func init() {
	rootCmd.AddCommand(palettesCmd)
}
