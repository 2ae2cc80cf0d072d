package cache

import (
	"time"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/dweb-gateway/constant"
	"github.com/dgraph-io/ristretto/v2"
)

// entry is stored whole and never mutated, so readers always see a complete record.
type entry struct {
	value     string
	updatedAt time.Time
}

// Manager is a string key/value store with a TTL checked on read. Expired
// entries stay readable through Stale until ristretto evicts them for space.
type Manager struct {
	name   string
	cache  *ristretto.Cache[string, entry]
	ttl    time.Duration
	now    func() time.Time
	logger log.Logger
}

// New creates a new cache manager. name only appears in logs.
func New(name string, ttl time.Duration, logger log.Logger) (*Manager, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, entry]{
		NumCounters:        constant.CacheNumCounters,
		MaxCost:            constant.CacheMaxCost,
		BufferItems:        constant.CacheBufferItems,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}

	return &Manager{
		name:   name,
		cache:  cache,
		ttl:    ttl,
		now:    time.Now,
		logger: logger,
	}, nil
}

// SetClock replaces the time source (useful for testing)
func (m *Manager) SetClock(now func() time.Time) {
	if now != nil {
		m.now = now
	}
}

// Get returns the value for key if it was stored less than ttl ago.
func (m *Manager) Get(key string) (string, bool) {
	e, found := m.cache.Get(key)
	if !found {
		m.logger.Debugf("%s cache miss for %s", m.name, key)
		return "", false
	}

	if !m.now().Before(e.updatedAt.Add(m.ttl)) {
		m.logger.Debugf("%s cache entry for %s expired at %s", m.name, key, e.updatedAt.Add(m.ttl).Format(time.RFC3339))
		return "", false
	}

	m.logger.Debugf("%s cache hit for %s", m.name, key)

	return e.value, true
}

// Stale returns the last value stored for key regardless of its age.
func (m *Manager) Stale(key string) (string, bool) {
	e, found := m.cache.Get(key)
	if !found {
		return "", false
	}

	return e.value, true
}

// Store overwrites key with value, timestamped now.
func (m *Manager) Store(key, value string) {
	m.cache.Set(key, entry{value: value, updatedAt: m.now()}, 1)
	m.cache.Wait()

	m.logger.Debugf("Stored %s cache entry for %s", m.name, key)
}

// Close releases the underlying cache.
func (m *Manager) Close() {
	m.cache.Close()
}
