// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thatcatcamp/easytheme/internal/config"
	"github.com/thatcatcamp/easytheme/internal/stylesheet"
	"github.com/thatcatcamp/easytheme/internal/themes"
)

const lightOnlyTheme = `steps:
  hover: 10
light:
  brand: ["#808080", "#000000", true]
`

func setupConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := config.InitConfig(filepath.Join(dir, "config.yaml")); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	return dir
}

func writeTheme(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "theme.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestThemeSourcePalette(t *testing.T) {
	setupConfig(t)

	src := themeSource{palette: "indigo"}
	opts, steps, err := src.load(themes.Light)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if steps != nil {
		t.Errorf("palette should use default steps, got %v", steps)
	}
	if len(opts) == 0 || opts[0].Selector != "primary" || opts[0].Spec.Primary != "#4f46e5" {
		t.Errorf("unexpected options: %+v", opts)
	}

	if _, _, err := (&themeSource{palette: "plaid"}).load(themes.Light); !errors.Is(err, themes.ErrUnknownPalette) {
		t.Errorf("Expected ErrUnknownPalette, got %v", err)
	}
}

func TestThemeSourceFile(t *testing.T) {
	dir := setupConfig(t)
	path := writeTheme(t, dir, lightOnlyTheme)

	src := themeSource{file: path}
	opts, steps, err := src.load(themes.Light)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(opts) != 1 || opts[0].Selector != "brand" {
		t.Errorf("unexpected options: %+v", opts)
	}
	if len(steps) != 1 || steps[0].Name != "hover" {
		t.Errorf("unexpected steps: %+v", steps)
	}

	if _, _, err := src.load(themes.Dark); !errors.Is(err, errNoEntries) {
		t.Errorf("Expected errNoEntries for dark mode, got %v", err)
	}
}

func TestThemeSourceConfigDefaults(t *testing.T) {
	dir := setupConfig(t)
	path := writeTheme(t, dir, lightOnlyTheme)

	if err := config.Set("theme.file", path); err != nil {
		t.Fatal(err)
	}
	opts, _, err := (&themeSource{}).load(themes.Light)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(opts) != 1 {
		t.Errorf("Expected theme.file to be used, got %+v", opts)
	}

	if err := config.Set("theme.palette", "rose"); err != nil {
		t.Fatal(err)
	}
	opts, _, err = (&themeSource{}).load(themes.Light)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if opts[0].Spec.Primary != "#e11d48" {
		t.Errorf("Expected theme.palette to win, got %+v", opts[0])
	}

	// An explicit file flag beats the configured palette
	opts, _, err = (&themeSource{file: path}).load(themes.Light)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if opts[0].Selector != "brand" {
		t.Errorf("Expected file entries, got %+v", opts[0])
	}
}

func TestPreloadThemes(t *testing.T) {
	dir := setupConfig(t)

	doc := stylesheet.NewDocument()
	manager, err := stylesheet.NewManager(doc, nil)
	if err != nil {
		t.Fatal(err)
	}

	if err := preloadThemes(manager, filepath.Join(dir, "missing.yaml")); err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if len(doc.IDs()) != 0 {
		t.Fatalf("Expected no stylesheets, got %v", doc.IDs())
	}

	path := writeTheme(t, dir, lightOnlyTheme)
	if err := preloadThemes(manager, path); err != nil {
		t.Fatalf("preload failed: %v", err)
	}

	css, ok := doc.Stylesheet("easy-theme")
	if !ok {
		t.Fatal("light stylesheet not preloaded")
	}
	if !strings.Contains(css, "--theme-brand-hover:#999999;") {
		t.Errorf("file steps not applied:\n%s", css)
	}
	if _, ok := doc.Stylesheet("easy-theme-dark"); ok {
		t.Error("dark stylesheet should stay unset without dark entries")
	}
}
