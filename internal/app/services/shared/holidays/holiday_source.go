package holidays

import (
	"context"
	"fmt"
	"larib-portal/internal/app/config"
	"larib-portal/internal/pkg/workdays"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Doer is the subset of http.Client the source needs, injectable for tests.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type cacheEntry struct {
	data      workdays.HolidayMap
	fetchedAt time.Time
}

// Source caches the French public-holiday feed. It owns the single
// process-wide cache entry: absent at start, created on first successful
// fetch, replaced wholesale on re-fetch, never partially mutated. Fetch
// failures degrade to the stale entry, then to an empty map; GetHolidays
// never returns an error.
type Source struct {
	log      *zap.Logger
	client   Doer
	feedURL  string
	freshFor time.Duration
	timeout  time.Duration
	now      func() time.Time

	// limiter spaces out live fetch attempts so a cold cache under a failing
	// upstream cannot hammer the feed on every request.
	limiter *rate.Limiter

	mu    sync.Mutex
	cache *cacheEntry
}

func NewSource(log *zap.Logger, client Doer, internalConfig *config.InternalConfig) *Source {
	minInterval := time.Duration(internalConfig.Holiday.FetchMinIntervalInSeconds) * time.Second
	return &Source{
		log:      log,
		client:   client,
		feedURL:  internalConfig.Holiday.FeedURL,
		freshFor: time.Duration(internalConfig.Holiday.CacheTTLInHours) * time.Hour,
		timeout:  time.Duration(internalConfig.Holiday.FetchTimeoutInSeconds) * time.Second,
		now:      time.Now,
		limiter:  rate.NewLimiter(rate.Every(minInterval), 1),
	}
}

// GetHolidays returns the current holiday snapshot. Callers must treat the
// returned map as immutable and reuse one snapshot per unit of work.
func (s *Source) GetHolidays(ctx context.Context) workdays.HolidayMap {
	now := s.now()

	s.mu.Lock()
	if s.cache != nil && now.Sub(s.cache.fetchedAt) < s.freshFor {
		data := s.cache.data
		s.mu.Unlock()
		return data
	}
	stale := s.cache
	s.mu.Unlock()

	if !s.limiter.Allow() {
		return s.fallback(stale, nil)
	}

	data, err := s.fetch(ctx)
	if err != nil {
		return s.fallback(stale, err)
	}

	s.mu.Lock()
	s.cache = &cacheEntry{data: data, fetchedAt: now}
	s.mu.Unlock()

	return data
}

func (s *Source) fetch(ctx context.Context) (workdays.HolidayMap, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.feedURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("holiday feed returned status %d", resp.StatusCode)
	}

	data := workdays.HolidayMap{}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *Source) fallback(stale *cacheEntry, err error) workdays.HolidayMap {
	if err != nil {
		s.log.Error("holiday feed fetch failed",
			zap.String("feed_url", s.feedURL),
			zap.Bool("stale_cache_available", stale != nil),
			zap.Error(err),
		)
	}
	if stale != nil {
		return stale.data
	}
	return workdays.HolidayMap{}
}
