// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/easytheme/internal/color"
	"github.com/thatcatcamp/easytheme/internal/stylesheet"
	"github.com/thatcatcamp/easytheme/internal/themes"
)

// Selectors and step names end up inside CSS variable names
var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ThemeHandler serves and updates the light and dark stylesheets
type ThemeHandler struct {
	manager *stylesheet.Manager
	doc     *stylesheet.Document
}

// NewThemeHandler creates a handler. manager must write into doc.
func NewThemeHandler(manager *stylesheet.Manager, doc *stylesheet.Document) *ThemeHandler {
	return &ThemeHandler{manager: manager, doc: doc}
}

type entryRequest struct {
	Selector string `json:"selector" binding:"required"`
	Primary  string `json:"primary" binding:"required"`
	Contrast string `json:"contrast" binding:"required"`
	Extras   bool   `json:"extras"`
}

type stepRequest struct {
	Name  string  `json:"name" binding:"required"`
	Delta float64 `json:"delta"`
}

type themeRequest struct {
	Options []entryRequest `json:"options" binding:"required,dive"`
	Steps   []stepRequest  `json:"steps" binding:"dive"`
}

func (r themeRequest) toOptions() (themes.ThemeOptions, themes.StepConfig, error) {
	opts := make(themes.ThemeOptions, 0, len(r.Options))
	for _, e := range r.Options {
		if !namePattern.MatchString(e.Selector) {
			return nil, nil, fmt.Errorf("invalid selector %q", e.Selector)
		}
		opts = opts.Add(e.Selector, e.Primary, e.Contrast, e.Extras)
	}

	var steps themes.StepConfig
	for _, s := range r.Steps {
		if !namePattern.MatchString(s.Name) {
			return nil, nil, fmt.Errorf("invalid step name %q", s.Name)
		}
		steps = append(steps, themes.Step{Name: s.Name, Delta: s.Delta})
	}

	return opts, steps, nil
}

// Health reports service status
func (h *ThemeHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "easytheme",
	})
}

// Stylesheet serves the CSS for one mode
func (h *ThemeHandler) Stylesheet(mode themes.Mode) gin.HandlerFunc {
	return func(c *gin.Context) {
		css, ok := h.doc.Stylesheet(mode.StylesheetID())
		if !ok {
			c.String(http.StatusNotFound, "/* %s theme not set */", mode)
			return
		}
		c.Header("Cache-Control", "no-cache")
		c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(css))
	}
}

// Head serves the current style elements as an HTML fragment
func (h *ThemeHandler) Head(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(h.doc.RenderHead()))
}

// Palettes lists the built-in palettes
func (h *ThemeHandler) Palettes(c *gin.Context) {
	c.JSON(http.StatusOK, themes.ListPalettes())
}

// SetTheme replaces a mode's stylesheet from a JSON body
func (h *ThemeHandler) SetTheme(c *gin.Context) {
	mode, ok := bindMode(c)
	if !ok {
		return
	}

	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts, steps, err := req.toOptions()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.apply(c, opts, mode, steps)
}

// SetPalette replaces a mode's stylesheet with a built-in palette
func (h *ThemeHandler) SetPalette(c *gin.Context) {
	mode, ok := bindMode(c)
	if !ok {
		return
	}

	p, err := themes.LookupPalette(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	h.apply(c, themes.GenerateOptions(p, mode), mode, nil)
}

// ClearTheme removes a mode's stylesheet
func (h *ThemeHandler) ClearTheme(c *gin.Context) {
	mode, ok := bindMode(c)
	if !ok {
		return
	}

	if err := h.manager.ClearTheme(mode); err != nil {
		log.Error("clear theme failed", "mode", mode, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear theme"})
		return
	}

	log.Info("theme cleared", "mode", mode, "subject", c.GetString("subject"))
	c.Status(http.StatusNoContent)
}

func (h *ThemeHandler) apply(c *gin.Context, opts themes.ThemeOptions, mode themes.Mode, steps themes.StepConfig) {
	if err := h.manager.SetTheme(opts, mode, steps); err != nil {
		if errors.Is(err, color.ErrInvalidHex) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Error("set theme failed", "mode", mode, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to set theme"})
		return
	}

	log.Info("theme set", "mode", mode, "selectors", len(opts), "subject", c.GetString("subject"))
	c.Status(http.StatusNoContent)
}

func bindMode(c *gin.Context) (themes.Mode, bool) {
	mode, err := themes.ParseMode(c.Param("mode"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return mode, false
	}
	return mode, true
}
