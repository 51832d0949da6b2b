package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/storefront/internal/client/catalog"
	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/client/config"
	"github.com/dmitrijs2005/storefront/internal/client/metrics"
	"github.com/dmitrijs2005/storefront/internal/client/services"
	"github.com/dmitrijs2005/storefront/internal/client/state"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	store   *state.Store
	metrics *metrics.Metrics

	authService    services.AuthService
	catalogService services.CatalogService
	cartService    services.CartService

	reader *bufio.Reader
	out    io.Writer

	status      atomic.Pointer[string]
	unsubscribe []func()
}

// NewApp opens the catalog cache and builds the store and services. Every
// dispatch goes through the metrics middleware.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	source := catalog.NewHTTPSource(c.CatalogURL, catalog.Options{
		Timeout:     c.RequestTimeout,
		MaxAttempts: c.RetryMaxAttempts,
		RetryDelay:  c.RetryDelay,
	})

	store := state.NewStore(nil)
	m := metrics.New()
	d := m.Instrument(store)

	a := &App{
		config:         c,
		logger:         logger,
		db:             db,
		store:          store,
		metrics:        m,
		authService:    services.NewAuthService(d, store),
		catalogService: services.NewCatalogService(source, db, d, m, logger),
		cartService:    services.NewCartService(d, store),
		reader:         bufio.NewReader(os.Stdin),
		out:            os.Stdout,
	}
	a.subscribe()
	return a, nil
}

// subscribe registers the App's store listeners: the metrics gauges and the
// prompt status.
func (a *App) subscribe() {
	a.refreshStatus()
	a.unsubscribe = append(a.unsubscribe,
		a.store.Subscribe(a.metrics.Subscriber(a.store)),
		a.store.Subscribe(a.refreshStatus),
	)
}

func (a *App) refreshStatus() {
	s := statusLine(a.store.GetState())
	a.status.Store(&s)
}

func (a *App) getStatus() string {
	if s := a.status.Load(); s != nil {
		return *s
	}
	return ""
}

func (a *App) isLoggedIn() bool {
	return state.IsAuthenticated(a.store.GetState())
}

// Run loads the catalog in the background, starts the refresher and the
// optional metrics endpoint, and blocks in the REPL until the user exits or
// stdin closes. On return the background goroutines are cancelled and
// waited for before the store and the cache are closed.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
		a.Close()
	}()

	if a.config.MetricsAddr != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := a.metrics.Serve(ctx, a.config.MetricsAddr, a.logger); err != nil {
				a.logger.Error(ctx, "metrics endpoint stopped", "error", err)
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := a.catalogService.Load(ctx); err != nil {
			a.logger.Error(ctx, "initial catalog load failed", "error", err)
		}
		a.catalogService.StartRefresher(ctx, a.config.RefreshInterval)
	}()

	fmt.Fprintln(a.out, "Welcome to the storefront (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

// Close disposes the store and closes the catalog cache.
func (a *App) Close() {
	for _, unsub := range a.unsubscribe {
		unsub()
	}
	a.unsubscribe = nil
	a.store.Dispose()
	if a.db != nil {
		_ = a.db.Close()
	}
}
