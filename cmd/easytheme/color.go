// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/easytheme/internal/color"
	"github.com/thatcatcamp/easytheme/internal/preview"
)

var colorCmd = &cobra.Command{
	Use:   "color",
	Short: "Color conversion helpers",
	Long:  "Convert between hex, RGB and HSL and shift the lightness of a color",
}

var colorHSLCmd = &cobra.Command{
	Use:   "hsl <hex>",
	Short: "Convert a hex color to HSL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		hsl := color.HexToHSL(normalizeHex(args[0]))
		fmt.Printf("hsl(%d, %d%%, %d%%)\n", hsl.H, hsl.S, hsl.L)
	},
}

var colorRGBCmd = &cobra.Command{
	Use:   "rgb <hex>",
	Short: "Convert a hex color to an RGB triple",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rgb, err := color.ParseHex(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(rgb)
	},
}

var colorHexCmd = &cobra.Command{
	Use:   "hex <h> <s> <l>",
	Short: "Convert HSL components to a hex color",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		var hsl [3]float64
		for i, arg := range args {
			v, err := parseFinite(arg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: invalid component: %v\n", err)
				os.Exit(1)
			}
			hsl[i] = v
		}

		hex := color.HSLToHex(hsl[0], hsl[1], hsl[2])
		fmt.Println(preview.Swatch(hex))
	},
}

// Flag parsing is off so negative deltas like -15 are read as arguments
var colorShiftCmd = &cobra.Command{
	Use:                "shift <hex> <delta>",
	Short:              "Shift the lightness of a hex color",
	DisableFlagParsing: true,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "Error: usage: easytheme color shift <hex> <delta>")
			os.Exit(1)
		}

		if _, err := color.ParseHex(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		delta, err := parseFinite(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid delta: %v\n", err)
			os.Exit(1)
		}

		hex := color.ChangeBrightness(normalizeHex(args[0]), delta)
		fmt.Println(preview.Swatch(hex))
	},
}

// parseFinite parses a number, rejecting NaN and infinities
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}

func normalizeHex(hex string) string {
	return "#" + strings.TrimPrefix(hex, "#")
}

func init() {
	colorCmd.AddCommand(colorHSLCmd)
	colorCmd.AddCommand(colorRGBCmd)
	colorCmd.AddCommand(colorHexCmd)
	colorCmd.AddCommand(colorShiftCmd)
	rootCmd.AddCommand(colorCmd)
}
