package feedstore

import (
	"context"
	"sync"
)

// Pool یک Store به ازای هر scope فعال
//
// Stores are created lazily on first use and refreshed together by the
// refresh worker.
type Pool struct {
	fetcher Fetcher

	mu     sync.Mutex
	stores map[string]*Store
}

func NewPool(fetcher Fetcher) *Pool {
	return &Pool{
		fetcher: fetcher,
		stores:  make(map[string]*Store),
	}
}

// Get returns the store for a city scope ("" for global), creating it on
// first use.
func (p *Pool) Get(city string) *Store {
	p.mu.Lock()
	defer p.mu.Unlock()

	st, ok := p.stores[city]
	if !ok {
		st = New(p.fetcher)
		st.SetScope(city)
		p.stores[city] = st
	}
	return st
}

// RefreshAll refreshes every known scope. Errors are collected per scope so
// one failing city does not starve the rest.
func (p *Pool) RefreshAll(ctx context.Context) map[string]error {
	p.mu.Lock()
	stores := make(map[string]*Store, len(p.stores))
	for city, st := range p.stores {
		stores[city] = st
	}
	p.mu.Unlock()

	errs := make(map[string]error)
	for city, st := range stores {
		if err := st.Refresh(ctx); err != nil {
			errs[city] = err
		}
	}
	return errs
}
