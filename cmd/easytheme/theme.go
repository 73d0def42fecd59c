// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/easytheme/internal/config"
	"github.com/thatcatcamp/easytheme/internal/preview"
	"github.com/thatcatcamp/easytheme/internal/stylesheet"
	"github.com/thatcatcamp/easytheme/internal/themes"
)

var errNoEntries = errors.New("no theme entries")

// themeSource picks where a command reads its theme from. A palette wins
// over a file; with neither flag set, theme.palette and then theme.file
// from the config are used.
type themeSource struct {
	file    string
	palette string
}

func (s *themeSource) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.file, "file", "f", "", "theme file (default from theme.file)")
	cmd.Flags().StringVarP(&s.palette, "palette", "p", "", "built-in palette name")
}

func (s *themeSource) load(mode themes.Mode) (themes.ThemeOptions, themes.StepConfig, error) {
	palette := s.palette
	if palette == "" && s.file == "" {
		palette = config.GetString("theme.palette")
	}

	if palette != "" {
		p, err := themes.LookupPalette(palette)
		if err != nil {
			return nil, nil, err
		}
		return themes.GenerateOptions(p, mode), nil, nil
	}

	path := s.file
	if path == "" {
		path = config.GetString("theme.file")
	}

	f, err := themes.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	opts := f.Options(mode)
	if len(opts) == 0 {
		return nil, nil, fmt.Errorf("%w for %s mode in %s", errNoEntries, mode, path)
	}
	return opts, f.Steps, nil
}

var (
	renderSource  themeSource
	renderDark    bool
	previewSource themeSource
	previewDark   bool
	setSource     themeSource
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the theme stylesheet to stdout",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		mustInitConfig()

		mode := themes.Light
		if renderDark {
			mode = themes.Dark
		}

		opts, steps, err := renderSource.load(mode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		css, err := themes.GenerateCSS(opts, mode, steps)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(css)
	},
}

var setCmd = &cobra.Command{
	Use:       "set <light|dark>",
	Short:     "Write a theme stylesheet into output.dir",
	ValidArgs: []string{"light", "dark"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		mustInitConfig()

		mode, err := themes.ParseMode(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		opts, steps, err := setSource.load(mode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		sink := stylesheet.NewDirSink(config.GetString("output.dir"))
		manager, err := stylesheet.NewManager(sink, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if mode == themes.Dark {
			err = manager.SetDarkTheme(opts, steps)
		} else {
			err = manager.SetLightTheme(opts, steps)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Wrote %s\n", sink.Path(mode.StylesheetID()))
	},
}

var clearCmd = &cobra.Command{
	Use:       "clear <light|dark>",
	Short:     "Remove a theme stylesheet from output.dir",
	ValidArgs: []string{"light", "dark"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		mustInitConfig()

		mode, err := themes.ParseMode(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		sink := stylesheet.NewDirSink(config.GetString("output.dir"))
		manager, err := stylesheet.NewManager(sink, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if mode == themes.Dark {
			err = manager.ClearDarkTheme()
		} else {
			err = manager.ClearLightTheme()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Removed %s\n", sink.Path(mode.StylesheetID()))
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show theme colors as terminal swatches",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		mustInitConfig()

		mode := themes.Light
		if previewDark {
			mode = themes.Dark
		}

		opts, steps, err := previewSource.load(mode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		rules, err := opts.Rules(steps)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(preview.Render(mode.StylesheetID(), rules))
	},
}

func init() {
	renderSource.addFlags(renderCmd)
	renderCmd.Flags().BoolVar(&renderDark, "dark", false, "render the dark mode stylesheet")

	previewSource.addFlags(previewCmd)
	previewCmd.Flags().BoolVar(&previewDark, "dark", false, "preview the dark mode colors")

	setSource.addFlags(setCmd)

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(previewCmd)
}
