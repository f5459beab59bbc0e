package cache

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	hosts []string
}

func (c testConfig) Hosts() []string {
	return c.hosts
}

func (c testConfig) Timeout() time.Duration {
	return 100 * time.Millisecond
}

// fakeMemcache keeps items in a map and follows memcached semantics for
// misses, add and incr.
type fakeMemcache struct {
	mu    sync.Mutex
	items map[string]*memcache.Item

	// afterSet runs once the next Set has been applied.
	afterSet func()
}

func newFakeMemcache() *fakeMemcache {
	return &fakeMemcache{items: make(map[string]*memcache.Item)}
}

func (f *fakeMemcache) Get(key string) (*memcache.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[key]
	if !ok {
		return nil, memcache.ErrCacheMiss
	}
	return item, nil
}

func (f *fakeMemcache) Set(item *memcache.Item) error {
	f.mu.Lock()
	f.items[item.Key] = item
	hook := f.afterSet
	f.afterSet = nil
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	return nil
}

func (f *fakeMemcache) Add(item *memcache.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[item.Key]; ok {
		return memcache.ErrNotStored
	}
	f.items[item.Key] = item
	return nil
}

func (f *fakeMemcache) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[key]; !ok {
		return memcache.ErrCacheMiss
	}
	delete(f.items, key)
	return nil
}

func (f *fakeMemcache) Increment(key string, delta uint64) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[key]
	if !ok {
		return 0, memcache.ErrCacheMiss
	}
	val, err := strconv.ParseUint(string(item.Value), 10, 64)
	if err != nil {
		return 0, err
	}
	val += delta
	item.Value = []byte(strconv.FormatUint(val, 10))
	return val, nil
}

func Test_OnFormatKey_ShouldPrefixPeriod(t *testing.T) {
	assert.Equal(t, "report:2025-10", formatKey("2025-10"))
	assert.Equal(t, "gen:2025-10", generationKey("2025-10"))
}

func Test_OnUnreachableServer_ShouldFailToInit(t *testing.T) {
	mc, err := NewMemcache(testConfig{hosts: []string{"127.0.0.1:1"}}, time.Minute)

	require.Error(t, err)
	require.NotNil(t, mc)
	assert.Equal(t, time.Minute, mc.ttl)
	client, ok := mc.client.(*memcache.Client)
	require.True(t, ok)
	assert.Equal(t, 100*time.Millisecond, client.Timeout)
}

func Test_OnCurrentGeneration_ShouldCacheReport(t *testing.T) {
	mc := newMemcache(newFakeMemcache(), time.Hour)

	gen, err := mc.ReportGeneration("2025-10")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), gen)

	require.NoError(t, mc.CacheReport("2025-10", "report text", gen))

	text, ok, err := mc.GetReport("2025-10")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "report text", text)
}

func Test_OnInvalidate_ShouldBumpGenerationAndDropReport(t *testing.T) {
	mc := newMemcache(newFakeMemcache(), time.Hour)
	require.NoError(t, mc.CacheReport("2025-10", "report text", 0))

	require.NoError(t, mc.InvalidateReports([]string{"2025-10", "2025-11"}))
	require.NoError(t, mc.InvalidateReports([]string{"2025-10"}))

	_, ok, err := mc.GetReport("2025-10")
	require.NoError(t, err)
	assert.False(t, ok)

	gen, err := mc.ReportGeneration("2025-10")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), gen)
	gen, err = mc.ReportGeneration("2025-11")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), gen)
}

func Test_OnWriteBetweenRequestAndAccept_ShouldNotCacheOutdatedReport(t *testing.T) {
	mc := newMemcache(newFakeMemcache(), time.Hour)

	requested, err := mc.ReportGeneration("2025-10")
	require.NoError(t, err)

	// a transaction is recorded while the report is being built
	require.NoError(t, mc.InvalidateReports([]string{"2025-10"}))

	require.NoError(t, mc.CacheReport("2025-10", "outdated report", requested))

	_, ok, err := mc.GetReport("2025-10")
	require.NoError(t, err)
	assert.False(t, ok)
}

func Test_OnWriteRightAfterCaching_ShouldNotKeepOutdatedReport(t *testing.T) {
	fake := newFakeMemcache()
	mc := newMemcache(fake, time.Hour)
	fake.afterSet = func() {
		require.NoError(t, mc.InvalidateReports([]string{"2025-10"}))
	}

	require.NoError(t, mc.CacheReport("2025-10", "outdated report", 0))

	_, ok, err := mc.GetReport("2025-10")
	require.NoError(t, err)
	assert.False(t, ok)
}

func Test_OnPaddedCounter_ShouldParseGeneration(t *testing.T) {
	fake := newFakeMemcache()
	fake.items[generationKey("2025-10")] = &memcache.Item{Key: generationKey("2025-10"), Value: []byte("7  ")}
	mc := newMemcache(fake, time.Hour)

	gen, err := mc.ReportGeneration("2025-10")

	require.NoError(t, err)
	assert.Equal(t, uint64(7), gen)
}
