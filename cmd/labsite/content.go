// Copyright LIMIT Lab, 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/limitlab/labsite/internal/catalog"
	"github.com/limitlab/labsite/internal/content"
	"github.com/limitlab/labsite/internal/publication"
	"github.com/limitlab/labsite/pkg/types"
)

// loadContent reads the content set, taking publications from the catalog
// when the sqlite source is configured.
func loadContent(ctx context.Context, cc types.ContentConfig) (*content.Content, error) {
	c, err := content.Load(cc.Dir)
	if err != nil {
		return nil, err
	}
	if cc.Source != types.SourceSQLite {
		return c, nil
	}

	if _, err := os.Stat(cc.DB); err != nil {
		return nil, fmt.Errorf("catalog %s: %w (run labsite catalog import first)", cc.DB, err)
	}
	cat, err := catalog.Open(cc.DB)
	if err != nil {
		return nil, err
	}
	defer cat.Close()

	store, err := cat.Store(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", cc.DB, err)
	}
	logger.Debug("publications loaded from catalog", zap.String("db", cc.DB), zap.Int("count", store.Len()))
	return c.WithPublications(store), nil
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("conference", publication.All, "conference to show, or all")
	cmd.Flags().String("year", publication.All, "year to show, or all")
	cmd.Flags().String("field", publication.All, "research field to show, or all")
}

func filterFromFlags(cmd *cobra.Command) publication.Filter {
	conference, _ := cmd.Flags().GetString("conference")
	year, _ := cmd.Flags().GetString("year")
	field, _ := cmd.Flags().GetString("field")
	return publication.Filter{Conference: conference, Year: year, Field: field}.Normalize()
}
