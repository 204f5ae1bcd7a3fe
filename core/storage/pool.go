package storage

import (
	"sync"
)

// Pool lazily creates and caches one Client per region.
// It is owned by whoever builds content sources and passed in explicitly.
type Pool struct {
	cfg Config

	mu      sync.Mutex
	clients map[string]Client
	factory func(cfg Config, region string) (Client, error)
}

// NewPool creates a pool that builds clients with NewClient.
func NewPool(cfg Config) *Pool {
	return NewPoolWithFactory(cfg, NewClient)
}

// NewPoolWithFactory creates a pool that builds clients with factory.
func NewPoolWithFactory(cfg Config, factory func(cfg Config, region string) (Client, error)) *Pool {
	return &Pool{
		cfg:     cfg,
		clients: make(map[string]Client),
		factory: factory,
	}
}

// DefaultRegion returns the region used for locations that do not carry one.
func (p *Pool) DefaultRegion() string {
	if p.cfg.Region != "" {
		return p.cfg.Region
	}
	return DefaultRegion
}

// Get returns the client for region, creating it on first use.
func (p *Pool) Get(region string) (Client, error) {
	if region == "" {
		region = p.DefaultRegion()
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if c, ok := p.clients[region]; ok {
		return c, nil
	}

	c, err := p.factory(p.cfg, region)
	if err != nil {
		return nil, err
	}
	p.clients[region] = c
	return c, nil
}

// Len returns the number of clients created so far.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.clients)
}
