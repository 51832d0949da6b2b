package state

import (
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_InitialState(t *testing.T) {
	s := NewStore(nil)
	assert.Equal(t, InitialState(), s.GetState())

	preloaded := &AppState{
		Auth:     DefaultAuthState(),
		Products: &CatalogState{Items: []models.Product{product(1, "A", 10)}},
		Cart:     DefaultCartState(),
	}
	assert.Same(t, preloaded, NewStore(preloaded).GetState())
}

func TestStore_DispatchReplacesState(t *testing.T) {
	s := NewStore(nil)
	before := s.GetState()

	act := NewCartAdd(product(1, "A", 10))
	ret := s.Dispatch(act)

	assert.Equal(t, act, ret)
	after := s.GetState()
	assert.NotSame(t, before, after)
	assert.Len(t, after.Cart.CartItems, 1)
	assert.Empty(t, before.Cart.CartItems, "old state must not be mutated")
}

func TestStore_SubscribersSeeNewState(t *testing.T) {
	s := NewStore(nil)

	var seen []int
	s.Subscribe(func() { seen = append(seen, CartCount(s.GetState())) })

	s.Dispatch(NewCartAdd(product(1, "A", 10)))
	s.Dispatch(NewCartAdd(product(2, "B", 20)))
	s.Dispatch(bogusAction{})

	assert.Equal(t, []int{1, 2, 2}, seen)
}

func TestStore_Unsubscribe(t *testing.T) {
	s := NewStore(nil)

	var a, b int
	unsubA := s.Subscribe(func() { a++ })
	s.Subscribe(func() { b++ })

	s.Dispatch(NewAuthLogout())
	unsubA()
	unsubA()
	s.Dispatch(NewAuthLogout())

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}

func TestStore_Dispose(t *testing.T) {
	s := NewStore(nil)
	s.Dispatch(NewCartAdd(product(1, "A", 10)))

	calls := 0
	s.Subscribe(func() { calls++ })
	s.Dispose()

	last := s.GetState()
	act := NewCartAdd(product(2, "B", 20))
	assert.Equal(t, act, s.Dispatch(act))
	assert.Same(t, last, s.GetState())
	assert.Zero(t, calls)

	unsub := s.Subscribe(func() { calls++ })
	unsub()
	s.Dispatch(act)
	assert.Zero(t, calls)
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	s := NewStore(nil)

	var mu sync.Mutex
	notified := 0
	s.Subscribe(func() {
		mu.Lock()
		notified++
		mu.Unlock()
	})

	const workers, perWorker = 8, 50
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				s.Dispatch(NewCartAdd(product(id, "P", 1)))
			}
		}(int64(w))
	}
	wg.Wait()

	require.Equal(t, workers*perWorker, CartCount(s.GetState()))
	assert.Equal(t, workers*perWorker, notified)
}

func TestStore_EndToEndScenario(t *testing.T) {
	s := NewStore(nil)

	initial := s.GetState()
	assert.Nil(t, initial.Auth.User)
	assert.False(t, initial.Auth.IsAuthenticated)
	assert.Empty(t, initial.Products.Items)
	assert.Empty(t, initial.Cart.CartItems)

	a, b := product(1, "A", 10), product(2, "B", 20)

	s.Dispatch(NewCatalogSet([]models.Product{a, b}))
	items := s.GetState().Products.Items
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int64(2), items[1].ID)

	s.Dispatch(NewCartAdd(a))
	assert.Equal(t, []models.Product{a}, s.GetState().Cart.CartItems)

	s.Dispatch(NewCartAdd(a))
	cart := s.GetState().Cart.CartItems
	require.Len(t, cart, 2)
	assert.Equal(t, int64(1), cart[0].ID)
	assert.Equal(t, int64(1), cart[1].ID)

	s.Dispatch(NewCartRemove(1))
	assert.Empty(t, s.GetState().Cart.CartItems)

	s.Dispatch(NewAuthLogin(&models.User{Email: "a@b.com"}))
	assert.True(t, s.GetState().Auth.IsAuthenticated)
	assert.Equal(t, "a@b.com", s.GetState().Auth.User.Email)
	assert.Len(t, s.GetState().Products.Items, 2)
}

func TestStore_SubscriberMayDispatch(t *testing.T) {
	s := NewStore(nil)
	s.Dispatch(NewCatalogSet([]models.Product{product(1, "A", 10)}))

	var counts []int
	s.Subscribe(func() {
		st := s.GetState()
		counts = append(counts, CartCount(st))
		if CartCount(st) == 1 {
			s.Dispatch(NewCartAdd(product(2, "B", 20)))
		}
	})

	done := make(chan struct{})
	go func() {
		s.Dispatch(NewCartAdd(product(1, "A", 10)))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("nested dispatch from a subscriber did not return")
	}

	assert.Equal(t, []int{1, 2}, counts)
	assert.Equal(t, 2, CartCount(s.GetState()))
}
