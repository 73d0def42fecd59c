// SPDX-License-Identifier: MIT
package stylesheet

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thatcatcamp/easytheme/internal/color"
	"github.com/thatcatcamp/easytheme/internal/themes"
)

func brandOptions() themes.ThemeOptions {
	var opts themes.ThemeOptions
	return opts.Add("brand", "#112233", "#ffffff", false)
}

func newTestManager(t *testing.T) (*Manager, *Document) {
	t.Helper()
	doc := NewDocument()
	m, err := NewManager(doc, nil)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	return m, doc
}

func TestNewManagerNilSink(t *testing.T) {
	if _, err := NewManager(nil, nil); !errors.Is(err, ErrNilSink) {
		t.Fatalf("expected ErrNilSink, got %v", err)
	}
}

func TestSetLightTheme(t *testing.T) {
	m, doc := newTestManager(t)

	if err := m.SetLightTheme(brandOptions(), nil); err != nil {
		t.Fatalf("SetLightTheme failed: %v", err)
	}

	css, ok := doc.Stylesheet("easy-theme")
	if !ok {
		t.Fatal("easy-theme stylesheet not created")
	}
	if !strings.HasPrefix(css, ":root {") {
		t.Errorf("expected :root block, got:\n%s", css)
	}
	if n := strings.Count(css, "--theme-brand"); n != 4 {
		t.Errorf("expected 4 brand rules, got %d", n)
	}
	if _, ok := doc.Stylesheet("easy-theme-dark"); ok {
		t.Error("dark stylesheet should not exist")
	}
}

func TestSetThemeOverwritesInPlace(t *testing.T) {
	m, doc := newTestManager(t)

	if err := m.SetDarkTheme(brandOptions(), nil); err != nil {
		t.Fatal(err)
	}
	if err := m.SetLightTheme(brandOptions(), nil); err != nil {
		t.Fatal(err)
	}

	var opts themes.ThemeOptions
	opts = opts.Add("accent", "#ff8800", "#000000", false)
	if err := m.SetDarkTheme(opts, nil); err != nil {
		t.Fatal(err)
	}

	ids := doc.IDs()
	if len(ids) != 2 || ids[0] != "easy-theme-dark" || ids[1] != "easy-theme" {
		t.Fatalf("overwrite should keep attach order, got %v", ids)
	}

	css, _ := doc.Stylesheet("easy-theme-dark")
	if strings.Contains(css, "--theme-brand") || !strings.Contains(css, "--theme-accent") {
		t.Errorf("dark stylesheet not replaced:\n%s", css)
	}
	if !strings.HasPrefix(css, "@media (prefers-color-scheme: dark)") {
		t.Errorf("dark stylesheet missing media query:\n%s", css)
	}
}

func TestSetThemeInvalidWritesNothing(t *testing.T) {
	m, doc := newTestManager(t)
	if err := m.SetLightTheme(brandOptions(), nil); err != nil {
		t.Fatal(err)
	}
	before, _ := doc.Stylesheet("easy-theme")

	var bad themes.ThemeOptions
	bad = bad.Add("brand", "#nothex", "#ffffff", false)
	err := m.SetLightTheme(bad, nil)
	if !errors.Is(err, color.ErrInvalidHex) {
		t.Fatalf("expected ErrInvalidHex, got %v", err)
	}

	after, _ := doc.Stylesheet("easy-theme")
	if before != after {
		t.Error("stylesheet changed after a failed set")
	}
}

func TestManagerDefaultSteps(t *testing.T) {
	doc := NewDocument()
	m, err := NewManager(doc, themes.StepConfig{{Name: "hover", Delta: 5}})
	if err != nil {
		t.Fatal(err)
	}

	var opts themes.ThemeOptions
	opts = opts.Add("brand", "#808080", "#000000", true)

	if err := m.SetLightTheme(opts, nil); err != nil {
		t.Fatal(err)
	}
	css, _ := doc.Stylesheet("easy-theme")
	if !strings.Contains(css, "--theme-brand-hover:") || strings.Contains(css, "--theme-brand-lighter:") {
		t.Errorf("manager steps not applied:\n%s", css)
	}

	if err := m.SetLightTheme(opts, themes.StepConfig{{Name: "focus", Delta: -5}}); err != nil {
		t.Fatal(err)
	}
	css, _ = doc.Stylesheet("easy-theme")
	if !strings.Contains(css, "--theme-brand-focus:") || strings.Contains(css, "--theme-brand-hover:") {
		t.Errorf("call steps should override manager steps:\n%s", css)
	}
}

func TestClearTheme(t *testing.T) {
	m, doc := newTestManager(t)
	if err := m.SetLightTheme(brandOptions(), nil); err != nil {
		t.Fatal(err)
	}
	if err := m.SetDarkTheme(brandOptions(), nil); err != nil {
		t.Fatal(err)
	}

	if err := m.ClearLightTheme(); err != nil {
		t.Fatalf("ClearLightTheme failed: %v", err)
	}
	if _, ok := doc.Stylesheet("easy-theme"); ok {
		t.Error("ClearLightTheme should remove the light stylesheet")
	}
	if _, ok := doc.Stylesheet("easy-theme-dark"); !ok {
		t.Error("ClearLightTheme should leave the dark stylesheet")
	}

	if err := m.ClearDarkTheme(); err != nil {
		t.Fatalf("ClearDarkTheme failed: %v", err)
	}
	if len(doc.IDs()) != 0 {
		t.Errorf("expected empty document, got %v", doc.IDs())
	}
}

func TestClearThemeMissingIsNoop(t *testing.T) {
	m, doc := newTestManager(t)

	if err := m.ClearTheme(themes.Light); err != nil {
		t.Fatalf("clearing a missing stylesheet failed: %v", err)
	}
	if err := m.ClearTheme(themes.Dark); err != nil {
		t.Fatalf("clearing a missing stylesheet failed: %v", err)
	}
	if doc.RenderHead() != "" {
		t.Error("document should be unchanged")
	}
}

func TestRenderHead(t *testing.T) {
	doc := NewDocument()
	doc.Replace("easy-theme", ":root {}")
	doc.Replace("evil", "</style><script>")

	head := doc.RenderHead()
	if !strings.HasPrefix(head, `<style id="easy-theme">:root {}</style>`) {
		t.Errorf("unexpected head:\n%s", head)
	}
	if strings.Contains(head, "</style><script>") {
		t.Error("stylesheet content escaped its element")
	}
}

func TestDirSink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "public")
	sink := NewDirSink(dir)
	m, err := NewManager(sink, nil)
	if err != nil {
		t.Fatal(err)
	}

	if err := m.SetDarkTheme(brandOptions(), nil); err != nil {
		t.Fatalf("SetDarkTheme failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "easy-theme-dark.css"))
	if err != nil {
		t.Fatalf("stylesheet not written: %v", err)
	}
	if !strings.Contains(string(data), "--theme-brand:#112233;") {
		t.Errorf("unexpected file content:\n%s", data)
	}
	if _, err := os.Stat(filepath.Join(dir, "easy-theme-dark.css.tmp")); !os.IsNotExist(err) {
		t.Error("temp file left behind")
	}

	if err := m.ClearDarkTheme(); err != nil {
		t.Fatalf("ClearDarkTheme failed: %v", err)
	}
	if _, err := os.Stat(sink.Path("easy-theme-dark")); !os.IsNotExist(err) {
		t.Error("stylesheet file not removed")
	}
	if err := m.ClearDarkTheme(); err != nil {
		t.Errorf("second clear should be a no-op, got %v", err)
	}
}
