package cache

import (
	"strconv"
	"strings"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/finances-tracker/internal/logger"
)

const (
	keyPrefix        = "report:"
	generationPrefix = "gen:"
)

type memcacheClient interface {
	Get(key string) (*memcache.Item, error)
	Set(item *memcache.Item) error
	Add(item *memcache.Item) error
	Delete(key string) error
	Increment(key string, delta uint64) (uint64, error)
}

type MemcacheClient struct {
	client memcacheClient
	ttl    time.Duration
}

type config interface {
	Hosts() []string
	Timeout() time.Duration
}

func NewMemcache(config config, ttl time.Duration) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	if timeout := config.Timeout(); timeout > 0 {
		mc.Timeout = timeout
	}
	return newMemcache(mc, ttl), errors.Wrap(mc.Ping(), "ping memcached")
}

func newMemcache(client memcacheClient, ttl time.Duration) *MemcacheClient {
	return &MemcacheClient{client: client, ttl: ttl}
}

func formatKey(period string) string {
	return keyPrefix + period
}

func generationKey(period string) string {
	return generationPrefix + period
}

// ReportGeneration returns the write counter of period. It grows on every
// invalidation, a counter that was never bumped reads as 0.
func (mc *MemcacheClient) ReportGeneration(period string) (uint64, error) {
	item, err := mc.client.Get(generationKey(period))
	if errors.Is(err, memcache.ErrCacheMiss) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "get report generation")
	}
	// memcached may space-pad counters after incr
	gen, err := strconv.ParseUint(strings.TrimSpace(string(item.Value)), 10, 64)
	return gen, errors.Wrap(err, "parse report generation")
}

// CacheReport stores a report built from the data of the given generation.
// The report is dropped again if period was written to since then.
func (mc *MemcacheClient) CacheReport(period string, report string, generation uint64) error {
	logger.Info("cache report", zap.String("period", period), zap.Uint64("generation", generation))
	err := mc.client.Set(&memcache.Item{
		Key:        formatKey(period),
		Value:      []byte(report),
		Expiration: int32(mc.ttl.Seconds()),
	})
	if err != nil {
		return errors.Wrap(err, "cache report")
	}

	// Checked after Set: a writer bumps the generation before deleting the report,
	// so either this read sees the bump or the writer's delete follows the Set.
	current, err := mc.ReportGeneration(period)
	if err == nil && current == generation {
		return nil
	}
	logger.Info("drop outdated report", zap.String("period", period), zap.Uint64("current", current))
	if delErr := mc.client.Delete(formatKey(period)); delErr != nil && !errors.Is(delErr, memcache.ErrCacheMiss) {
		return errors.Wrap(delErr, "drop outdated report")
	}
	return err
}

// GetReport returns the cached rendering of period; ok is false on a cache miss.
func (mc *MemcacheClient) GetReport(period string) (report string, ok bool, err error) {
	logger.Info("get report from cache", zap.String("period", period))
	item, err := mc.client.Get(formatKey(period))
	if errors.Is(err, memcache.ErrCacheMiss) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "get report")
	}
	return string(item.Value), true, nil
}

func (mc *MemcacheClient) InvalidateReports(periods []string) error {
	logger.Info("invalidate cache", zap.Strings("periods", periods))

	for _, p := range periods {
		if err := mc.bumpGeneration(p); err != nil {
			return errors.Wrap(err, "invalidate report")
		}
		err := mc.client.Delete(formatKey(p))
		if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
			return errors.Wrap(err, "invalidate report")
		}
	}
	return nil
}

func (mc *MemcacheClient) bumpGeneration(period string) error {
	key := generationKey(period)
	_, err := mc.client.Increment(key, 1)
	if !errors.Is(err, memcache.ErrCacheMiss) {
		return err
	}
	err = mc.client.Add(&memcache.Item{Key: key, Value: []byte("1")})
	if !errors.Is(err, memcache.ErrNotStored) {
		return err
	}
	// lost the race to create the counter
	_, err = mc.client.Increment(key, 1)
	return err
}
