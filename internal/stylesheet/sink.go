// SPDX-License-Identifier: MIT

// Package stylesheet owns the light and dark theme stylesheets and writes
// generated CSS into whatever Sink holds them.
package stylesheet

import (
	"errors"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Sink stores stylesheets by id
type Sink interface {
	// Replace creates the stylesheet or overwrites its content in place
	Replace(id, css string) error
	// Remove deletes the stylesheet. Removing a missing id is not an error.
	Remove(id string) error
}

// Document is an in-memory document head holding style elements in the
// order they were first attached. It is safe for concurrent use.
type Document struct {
	mu     sync.RWMutex
	order  []string
	sheets map[string]string
}

// NewDocument creates an empty document
func NewDocument() *Document {
	return &Document{sheets: make(map[string]string)}
}

// Replace implements Sink
func (d *Document) Replace(id, css string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.sheets[id]; !exists {
		d.order = append(d.order, id)
	}
	d.sheets[id] = css
	return nil
}

// Remove implements Sink
func (d *Document) Remove(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.sheets[id]; !exists {
		return nil
	}
	delete(d.sheets, id)
	for i, existing := range d.order {
		if existing == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return nil
}

// Stylesheet returns the CSS stored under id
func (d *Document) Stylesheet(id string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	css, ok := d.sheets[id]
	return css, ok
}

// IDs returns the attached stylesheet ids in attach order
func (d *Document) IDs() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return append([]string(nil), d.order...)
}

// RenderHead renders every stylesheet as a <style> element
func (d *Document) RenderHead() string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var sb strings.Builder
	for _, id := range d.order {
		sb.WriteString(`<style id="`)
		sb.WriteString(html.EscapeString(id))
		sb.WriteString(`">`)
		// CSS cannot close the element early
		sb.WriteString(strings.ReplaceAll(d.sheets[id], "</", `<\/`))
		sb.WriteString("</style>\n")
	}
	return sb.String()
}

// DirSink writes each stylesheet to <dir>/<id>.css
type DirSink struct {
	Dir string
}

// NewDirSink returns a sink rooted at dir
func NewDirSink(dir string) *DirSink {
	return &DirSink{Dir: dir}
}

// Path returns the file a stylesheet id is written to
func (s *DirSink) Path(id string) string {
	return filepath.Join(s.Dir, id+".css")
}

// Replace writes the stylesheet through a temp file and rename
func (s *DirSink) Replace(id, css string) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	path := s.Path(id)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(css), 0644); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write stylesheet: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write stylesheet: %w", err)
	}
	return nil
}

// Remove deletes the stylesheet file if it exists
func (s *DirSink) Remove(id string) error {
	if err := os.Remove(s.Path(id)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove stylesheet: %w", err)
	}
	return nil
}
