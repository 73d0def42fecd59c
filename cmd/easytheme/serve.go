// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/easytheme/internal/auth"
	"github.com/thatcatcamp/easytheme/internal/config"
	"github.com/thatcatcamp/easytheme/internal/handlers"
	"github.com/thatcatcamp/easytheme/internal/middleware"
	"github.com/thatcatcamp/easytheme/internal/stylesheet"
	"github.com/thatcatcamp/easytheme/internal/themes"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the theme stylesheets over HTTP",
	Long: `Serve /easy-theme.css and /easy-theme-dark.css and accept theme updates on
/api/theme/:mode. Updates need a bearer token from "easytheme token".`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		mustInitConfig()

		if err := auth.CheckSecret(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Hint: run \"easytheme token --new-secret\" or set EASYTHEME_JWT_SECRET")
			os.Exit(1)
		}

		if config.GetString("log.level") != "debug" {
			gin.SetMode(gin.ReleaseMode)
		}

		doc := stylesheet.NewDocument()
		manager, err := stylesheet.NewManager(doc, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := preloadThemes(manager, config.GetString("theme.file")); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		limiter := middleware.NewRateLimiter(config.GetInt("server.rate_limit"), config.GetDuration("server.rate_interval"))
		defer limiter.Stop()

		filter, err := middleware.NewIPFilter(config.GetStringSlice("server.write_blocklist"), config.GetStringSlice("server.write_allowlist"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid ip filter: %v\n", err)
			os.Exit(1)
		}

		addr := serveListen
		if addr == "" {
			addr = config.GetString("server.listen")
		}

		router, err := handlers.NewRouter(handlers.NewThemeHandler(manager, doc), limiter, filter, config.GetStringSlice("server.trusted_proxies"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		srv := &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		errc := make(chan error, 1)
		go func() {
			log.Info("stylesheet server listening", "addr", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errc <- err
			}
			close(errc)
		}()

		select {
		case err := <-errc:
			if err != nil {
				log.Fatal("server failed", "err", err)
			}
			return
		case <-ctx.Done():
		}

		log.Info("shutting down")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown", "err", err)
		}
	},
}

// preloadThemes sets both modes from the theme file if it exists. A mode
// with no entries is left unset.
func preloadThemes(manager *stylesheet.Manager, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Info("no theme file, starting empty", "path", path)
		return nil
	}

	f, err := themes.LoadFile(path)
	if err != nil {
		return err
	}

	for _, mode := range []themes.Mode{themes.Light, themes.Dark} {
		opts := f.Options(mode)
		if len(opts) == 0 {
			continue
		}
		if err := manager.SetTheme(opts, mode, f.Steps); err != nil {
			return err
		}
		log.Info("preloaded theme", "mode", mode, "selectors", len(opts), "path", path)
	}

	return nil
}

func init() {
	serveCmd.Flags().StringVarP(&serveListen, "listen", "l", "", "listen address (default from server.listen)")
	rootCmd.AddCommand(serveCmd)
}
