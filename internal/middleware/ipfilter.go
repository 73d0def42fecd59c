// SPDX-License-Identifier: MIT
package middleware

import (
	"fmt"
	"net"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// IPFilter holds parsed CIDR ranges for the theme write API
type IPFilter struct {
	blocked []*net.IPNet
	allowed []*net.IPNet
}

// NewIPFilter parses blocklist and allowlist CIDRs. An empty allowlist
// allows every address that is not blocked.
func NewIPFilter(blocklist, allowlist []string) (*IPFilter, error) {
	blocked, err := parseCIDRs(blocklist)
	if err != nil {
		return nil, fmt.Errorf("blocklist: %w", err)
	}
	allowed, err := parseCIDRs(allowlist)
	if err != nil {
		return nil, fmt.Errorf("allowlist: %w", err)
	}
	return &IPFilter{blocked: blocked, allowed: allowed}, nil
}

func parseCIDRs(cidrs []string) ([]*net.IPNet, error) {
	nets := make([]*net.IPNet, 0, len(cidrs))
	for _, cidr := range cidrs {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			return nil, err
		}
		nets = append(nets, ipNet)
	}
	return nets, nil
}

// Allowed reports whether ip may reach the filtered routes
func (f *IPFilter) Allowed(ip net.IP) bool {
	if ip == nil {
		return false
	}

	for _, ipNet := range f.blocked {
		if ipNet.Contains(ip) {
			return false
		}
	}

	if len(f.allowed) == 0 {
		return true
	}
	for _, ipNet := range f.allowed {
		if ipNet.Contains(ip) {
			return true
		}
	}
	return false
}

// IPFilterMiddleware aborts with 403 for clients the filter rejects.
// A nil filter lets everything through.
func IPFilterMiddleware(filter *IPFilter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if filter == nil {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if !filter.Allowed(net.ParseIP(clientIP)) {
			log.Warn("client ip rejected", "ip", clientIP, "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		c.Next()
	}
}
