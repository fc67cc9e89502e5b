package fetchsrc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPTemplateFetcherFetchReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("ETag", `"abc"`)
		w.Write([]byte("%PDF-1.7 fixture"))
	}))
	defer srv.Close()

	f := NewHTTPTemplateFetcher()
	data, etag, _, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7 fixture", string(data))
	assert.Equal(t, `"abc"`, etag)
}

func TestHTTPTemplateFetcherConditionalReturns304(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("If-None-Match") == `"v1"` {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", `"v1"`)
		w.Write([]byte("body"))
	}))
	defer srv.Close()

	f := NewHTTPTemplateFetcher()
	_, _, _, err := f.FetchConditional(context.Background(), srv.URL, `"v1"`, "")
	assert.ErrorIs(t, err, ErrNotModified)
}

func TestHTTPTemplateFetcherNonOKStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewHTTPTemplateFetcher()
	_, _, _, err := f.Fetch(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestDiskTemplateCachePutAndGet(t *testing.T) {
	dir := t.TempDir()
	cache, err := NewDiskTemplateCache(dir, time.Hour)
	require.NoError(t, err)
	require.NoError(t, cache.Put("https://example.com/t.pdf", []byte("data"), "etag1", ""))

	entry, fresh := cache.Get("https://example.com/t.pdf")
	require.True(t, fresh, "expected a fresh cache hit")
	assert.Equal(t, "data", string(entry.Data))
	assert.Equal(t, "etag1", entry.ETag)
}

func TestDiskTemplateCacheExpiresAfterTTL(t *testing.T) {
	dir := t.TempDir()
	cache, err := NewDiskTemplateCache(dir, time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, cache.Put("loc", []byte("data"), "", ""))
	time.Sleep(5 * time.Millisecond)

	_, fresh := cache.Get("loc")
	assert.False(t, fresh, "expected the entry to be stale after TTL elapses")

	_, ok := cache.GetStale("loc")
	assert.True(t, ok, "GetStale should still find the entry regardless of TTL")
}

func TestDiskTemplateCacheMissReturnsFalse(t *testing.T) {
	dir := t.TempDir()
	cache, _ := NewDiskTemplateCache(dir, time.Hour)
	_, ok := cache.Get("never-cached")
	assert.False(t, ok, "expected a cache miss for an unknown location")
}

func TestDiskTemplateCacheClearRemovesEntries(t *testing.T) {
	dir := t.TempDir()
	cache, _ := NewDiskTemplateCache(dir, time.Hour)
	_ = cache.Put("loc", []byte("data"), "", "")

	require.NoError(t, cache.Clear())
	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

func TestResolveTemplateServesFreshCacheWithoutNetworkCall(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.Write([]byte("network"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	cache, _ := NewDiskTemplateCache(dir, time.Hour)
	_ = cache.Put(srv.URL, []byte("cached"), "", "")

	fetcher := NewHTTPTemplateFetcher()
	data, err := ResolveTemplate(context.Background(), fetcher, cache, srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "cached", string(data))
	assert.False(t, called, "fresh cache hit should not reach the network")
}

func TestResolveTemplateFallsBackToStaleOnNetworkError(t *testing.T) {
	dir := t.TempDir()
	cache, _ := NewDiskTemplateCache(dir, time.Millisecond)
	loc := "http://127.0.0.1:1/unreachable"
	_ = cache.Put(loc, []byte("stale-but-good"), "", "")
	time.Sleep(5 * time.Millisecond)

	fetcher := NewHTTPTemplateFetcher()
	data, err := ResolveTemplate(context.Background(), fetcher, cache, loc)
	require.NoError(t, err)
	assert.Equal(t, "stale-but-good", string(data))
}

func TestDiskTemplateCacheKeyIsStableAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	a, _ := NewDiskTemplateCache(dir, time.Hour)
	_ = a.Put("https://example.com/x.pdf", []byte("one"), "", "")

	b, _ := NewDiskTemplateCache(dir, time.Hour)
	entry, ok := b.Get("https://example.com/x.pdf")
	require.True(t, ok, "cache key derivation must be stable across cache instances")
	assert.Equal(t, "one", string(entry.Data))
}

func TestNewDiskTemplateCacheCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	_, err := NewDiskTemplateCache(dir, time.Hour)
	require.NoError(t, err)
	_, err = os.Stat(dir)
	assert.NoError(t, err, "expected cache dir to be created")
}
