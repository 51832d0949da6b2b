package services

import (
	"context"
	"database/sql"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/state"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// recordingDispatcher forwards to a real store and keeps every action.
type recordingDispatcher struct {
	mu      sync.Mutex
	store   *state.Store
	actions []state.Action
}

func newRecordingDispatcher() *recordingDispatcher {
	return &recordingDispatcher{store: state.NewStore(nil)}
}

func (r *recordingDispatcher) Dispatch(a state.Action) state.Action {
	r.mu.Lock()
	r.actions = append(r.actions, a)
	r.mu.Unlock()
	return r.store.Dispatch(a)
}

func (r *recordingDispatcher) GetState() *state.AppState { return r.store.GetState() }

func (r *recordingDispatcher) kinds() []state.Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]state.Kind, 0, len(r.actions))
	for _, a := range r.actions {
		out = append(out, a.Kind())
	}
	return out
}

// fakeSource returns queued results in order; the last one repeats.
type fakeSource struct {
	mu      sync.Mutex
	results []fakeResult
	calls   int
}

type fakeResult struct {
	items []models.Product
	err   error
}

func (f *fakeSource) FetchAll(ctx context.Context) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.calls
	if i >= len(f.results) {
		i = len(f.results) - 1
	}
	f.calls++
	return f.results[i].items, f.results[i].err
}

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func openCache(t *testing.T) *sql.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := client.InitDatabase(context.Background(), "file:"+name+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func product(id int64, title, price string) models.Product {
	return models.Product{ID: id, Title: title, Price: decimal.RequireFromString(price)}
}
