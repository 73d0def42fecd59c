// SPDX-License-Identifier: MIT
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/easytheme/internal/auth"
	"github.com/thatcatcamp/easytheme/internal/middleware"
	"github.com/thatcatcamp/easytheme/internal/themes"
)

// NewRouter wires the public stylesheet routes and the authenticated theme
// API. filter may be nil. X-Forwarded-For is only honored from
// trustedProxies; with none, the client is the connection's remote address.
func NewRouter(h *ThemeHandler, limiter *middleware.RateLimiter, filter *middleware.IPFilter, trustedProxies []string) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.SecurityHeadersMiddleware())

	r.GET("/health", h.Health)
	r.GET("/"+themes.Light.StylesheetID()+".css", h.Stylesheet(themes.Light))
	r.GET("/"+themes.Dark.StylesheetID()+".css", h.Stylesheet(themes.Dark))
	r.GET("/head", h.Head)

	api := r.Group("/api")
	api.GET("/palettes", h.Palettes)

	write := api.Group("/theme")
	write.Use(middleware.IPFilterMiddleware(filter))
	write.Use(middleware.RateLimitMiddleware(limiter, http.MethodPut, http.MethodDelete))
	write.Use(auth.RequireToken())
	{
		write.PUT("/:mode", h.SetTheme)
		write.PUT("/:mode/palette/:name", h.SetPalette)
		write.DELETE("/:mode", h.ClearTheme)
	}

	return r, nil
}
