// Copyright LIMIT Lab, 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/limitlab/labsite/internal/content"
	"github.com/limitlab/labsite/internal/watch"
	"github.com/limitlab/labsite/internal/web"
	"github.com/limitlab/labsite/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the website over HTTP",
	Long: `Serve renders the pages on each request. The publications page filters
server-side from the conference, year, and field query parameters, and
/api/publications returns the same result as JSON.

With --watch, edits to the content directory are picked up without a
restart. A content file that fails to load is logged and the previous
content keeps being served.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	if cfg.Server.Watch {
		if _, err := os.Stat(cfg.Content.Dir); err != nil {
			return fmt.Errorf("--watch needs a content directory: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c, err := loadContent(ctx, cfg.Content)
	if err != nil {
		return err
	}

	srv, err := web.NewServer(c, logger)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(ctx, cfg.Server.Addr, cfg.Server.ShutdownTimeout)
	})

	if cfg.Server.Watch {
		if cfg.Content.Source == types.SourceSQLite {
			logger.Warn("--watch follows the YAML files; re-run catalog import to refresh sqlite publications")
		}
		w := watch.New(cfg.Content.Dir, srv.SetContent, logger, watch.WithLoader(func(string) (*content.Content, error) {
			return loadContent(ctx, cfg.Content)
		}))
		g.Go(func() error {
			return w.Run(ctx)
		})
	}

	logger.Info("labsite serving",
		zap.String("addr", cfg.Server.Addr),
		zap.String("content_dir", cfg.Content.Dir),
		zap.String("source", string(cfg.Content.Source)),
		zap.Int("publications", c.Publications.Len()))

	return g.Wait()
}

func init() {
	serveCmd.Flags().String("addr", ":9001", "listen address")
	serveCmd.Flags().Bool("watch", false, "reload content when files change")
	bindFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	bindFlag("server.watch", serveCmd.Flags().Lookup("watch"))

	rootCmd.AddCommand(serveCmd)
}
