package query

import (
	"context"
	"time"

	catalog "github.com/felipesilva4/desafio-aiqfome/internal/catalog/domain"
)

type stubSource struct {
	products map[int64]*catalog.Product
	errs     map[int64]error
	calls    map[int64]int
}

func newStubSource(products ...*catalog.Product) *stubSource {
	s := &stubSource{
		products: make(map[int64]*catalog.Product),
		errs:     make(map[int64]error),
		calls:    make(map[int64]int),
	}
	for _, p := range products {
		s.products[p.ID] = p
	}
	return s
}

func (s *stubSource) FetchProduct(ctx context.Context, productID int64) (*catalog.Product, error) {
	s.calls[productID]++
	if err, ok := s.errs[productID]; ok {
		return nil, err
	}
	p, ok := s.products[productID]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	return p, nil
}

func (s *stubSource) totalCalls() int {
	total := 0
	for _, n := range s.calls {
		total += n
	}
	return total
}

type stubCache struct {
	entries  map[int64]catalog.Product
	expires  map[int64]time.Time
	setCalls int
	getErr   error
	setErr   error
}

func newStubCache() *stubCache {
	return &stubCache{
		entries: make(map[int64]catalog.Product),
		expires: make(map[int64]time.Time),
	}
}

func (c *stubCache) Get(ctx context.Context, productID int64) (*catalog.Product, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	p, ok := c.entries[productID]
	if !ok || time.Now().After(c.expires[productID]) {
		return nil, catalog.ErrCacheMiss
	}
	snapshot := p
	return &snapshot, nil
}

func (c *stubCache) SetIfAbsent(ctx context.Context, product *catalog.Product, ttl time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	if _, ok := c.entries[product.ID]; ok && time.Now().Before(c.expires[product.ID]) {
		return nil
	}
	c.setCalls++
	c.entries[product.ID] = *product
	c.expires[product.ID] = time.Now().Add(ttl)
	return nil
}

// seed plants an entry with an explicit expiry, bypassing set-if-absent
func (c *stubCache) seed(product catalog.Product, expiresAt time.Time) {
	c.entries[product.ID] = product
	c.expires[product.ID] = expiresAt
}
