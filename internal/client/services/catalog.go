package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/catalog"
	"github.com/dmitrijs2005/storefront/internal/client/metrics"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/storefront/internal/client/repositories/products"
	"github.com/dmitrijs2005/storefront/internal/client/state"
	"github.com/dmitrijs2005/storefront/internal/dbx"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

var errCacheMismatch = errors.New("catalog cache inconsistent")

// CatalogService keeps the catalog state in line with the remote catalog.
type CatalogService interface {
	// Load fetches the catalog and dispatches CatalogSet. If the fetch fails
	// and a cached catalog exists, the cached one is dispatched instead and
	// Load returns nil. Otherwise the store is not touched and the fetch
	// error is returned.
	Load(ctx context.Context) error

	// StartRefresher calls Load every interval until ctx is done. Errors are
	// logged, not returned.
	StartRefresher(ctx context.Context, interval time.Duration)
}

type catalogService struct {
	source     catalog.Source
	db         *sql.DB
	dispatcher state.Dispatcher
	metrics    *metrics.Metrics
	logger     logging.Logger
	now        func() time.Time
}

// NewCatalogService wires a catalog source to the store. db holds the cache;
// m may be nil.
func NewCatalogService(source catalog.Source, db *sql.DB, d state.Dispatcher, m *metrics.Metrics, logger logging.Logger) CatalogService {
	return &catalogService{
		source:     source,
		db:         db,
		dispatcher: d,
		metrics:    m,
		logger:     logger.With("component", "catalog"),
		now:        time.Now,
	}
}

func (c *catalogService) Load(ctx context.Context) error {
	start := c.now()

	items, err := c.source.FetchAll(ctx)
	if err != nil {
		return c.loadFromCache(ctx, start, err)
	}

	if err := c.saveCache(ctx, items); err != nil {
		c.logger.Warn(ctx, "catalog cache not updated", "error", err)
	}

	c.dispatcher.Dispatch(state.NewCatalogSet(items))
	c.observe(metrics.FetchRemote, start)
	c.logger.Info(ctx, "catalog loaded", "products", len(items), "source", metrics.FetchRemote)
	return nil
}

func (c *catalogService) loadFromCache(ctx context.Context, start time.Time, fetchErr error) error {
	cached, fetchedAt, err := c.readCache(ctx)
	if errors.Is(err, errCacheMismatch) {
		c.logger.Warn(ctx, "catalog cache inconsistent, discarding", "error", err)
		if rerr := c.resetCache(ctx); rerr != nil {
			c.logger.Warn(ctx, "catalog cache reset failed", "error", rerr)
		}
	} else if err != nil {
		c.logger.Warn(ctx, "catalog cache unreadable", "error", err)
	}

	if len(cached) == 0 {
		c.observe(metrics.FetchFailed, start)
		c.logger.Error(ctx, "catalog fetch failed", "error", fetchErr)
		return fmt.Errorf("load catalog: %w", fetchErr)
	}

	c.dispatcher.Dispatch(state.NewCatalogSet(cached))
	c.observe(metrics.FetchCache, start)
	c.logger.Warn(ctx, "catalog fetch failed, using cached catalog",
		"error", fetchErr, "products", len(cached), "fetched_at", fetchedAt)
	return nil
}

func (c *catalogService) saveCache(ctx context.Context, items []models.Product) error {
	return dbx.WithTx(ctx, c.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := products.NewSQLiteRepository(tx).ReplaceAll(ctx, items); err != nil {
			return err
		}
		meta := metadata.NewSQLiteRepository(tx)
		if err := meta.Set(ctx, metadata.KeyFetchedAt, c.now().UTC().Format(time.RFC3339)); err != nil {
			return err
		}
		return meta.Set(ctx, metadata.KeyProductCount, strconv.Itoa(len(items)))
	})
}

// readCache returns the cached catalog and when it was fetched. A cache whose
// row count disagrees with the recorded product_count fails with
// errCacheMismatch.
func (c *catalogService) readCache(ctx context.Context) ([]models.Product, string, error) {
	items, err := products.NewSQLiteRepository(c.db).GetAll(ctx)
	if err != nil {
		return nil, "", err
	}
	meta, err := metadata.NewSQLiteRepository(c.db).List(ctx)
	if err != nil {
		return nil, "", err
	}
	if want, ok := meta[metadata.KeyProductCount]; ok && want != strconv.Itoa(len(items)) {
		return nil, "", fmt.Errorf("%w: %d rows, product_count %s", errCacheMismatch, len(items), want)
	}
	return items, meta[metadata.KeyFetchedAt], nil
}

// resetCache empties the product table and its metadata.
func (c *catalogService) resetCache(ctx context.Context) error {
	return dbx.WithTx(ctx, c.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := products.NewSQLiteRepository(tx).ReplaceAll(ctx, nil); err != nil {
			return err
		}
		return metadata.NewSQLiteRepository(tx).Clear(ctx)
	})
}

func (c *catalogService) observe(result string, start time.Time) {
	if c.metrics != nil {
		c.metrics.ObserveFetch(result, c.now().Sub(start))
	}
}

func (c *catalogService) StartRefresher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := c.Load(ctx); err != nil && !errors.Is(err, context.Canceled) {
				c.logger.Warn(ctx, "catalog refresh failed", "error", err)
			}
		case <-ctx.Done():
			return
		}
	}
}
