package cache

import (
	"net/http"
	"time"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/dweb-gateway/constant"
	"github.com/LerianStudio/dweb-gateway/model"
	"github.com/dgraph-io/ristretto/v2"
)

// ResponseStore holds whole HTTP responses keyed by request. Only GET requests
// are cacheable.
type ResponseStore struct {
	cache  *ristretto.Cache[string, *model.Response]
	ttl    time.Duration
	logger log.Logger
}

// NewResponseStore creates a response store whose entries expire after ttl.
func NewResponseStore(ttl time.Duration, logger log.Logger) (*ResponseStore, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, *model.Response]{
		NumCounters: constant.CacheNumCounters,
		MaxCost:     constant.ResponseCacheMaxCost,
		BufferItems: constant.CacheBufferItems,
	})
	if err != nil {
		return nil, err
	}

	return &ResponseStore{
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}, nil
}

// Match returns a copy of the cached response for req.
func (s *ResponseStore) Match(req *model.Request) (*model.Response, bool) {
	if req.Method != http.MethodGet {
		return nil, false
	}

	res, found := s.cache.Get(req.CacheKey())
	if !found {
		return nil, false
	}

	s.logger.Debugf("Response cache hit for %s", req.CacheKey())

	return res.Clone(), true
}

// Put stores a copy of res for req. Only complete (200) responses to GET
// requests are kept. It reports whether the response was admitted.
func (s *ResponseStore) Put(req *model.Request, res *model.Response) bool {
	if req.Method != http.MethodGet || res.StatusCode != http.StatusOK {
		return false
	}

	ok := s.cache.SetWithTTL(req.CacheKey(), res.Clone(), responseCost(res), s.ttl)
	s.cache.Wait()

	if ok {
		s.logger.Debugf("Stored response for %s", req.CacheKey())
	} else {
		s.logger.Warnf("Response for %s was not admitted to the cache", req.CacheKey())
	}

	return ok
}

// Close releases the underlying cache.
func (s *ResponseStore) Close() {
	s.cache.Close()
}

// responseCost estimates the memory held by res: body plus ~30 bytes per header value.
func responseCost(res *model.Response) int64 {
	cost := int64(len(res.Body))

	for _, values := range res.Header {
		cost += int64(30 * len(values))
	}

	return cost + 1
}
