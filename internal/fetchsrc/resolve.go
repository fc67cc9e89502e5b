package fetchsrc

import (
	"context"
	"errors"
)

// ResolveTemplate returns template bytes for location, consulting cache
// first. A fresh cache hit is returned immediately. A stale hit is
// conditionally revalidated against fetcher; a 304 just refreshes the
// cache's timestamp and a 200 replaces the cached body. If the network
// call fails outright, a stale cached copy is still served rather than
// failing the whole fill — template content rarely changes underneath a
// generated-on-the-fly form, so serving last-known-good is preferable to
// an outage turning into a hard failure. cache may be nil to disable
// caching entirely.
func ResolveTemplate(ctx context.Context, fetcher TemplateFetcher, cache *DiskTemplateCache, location string) ([]byte, error) {
	if cache == nil {
		data, _, _, err := fetcher.Fetch(ctx, location)
		return data, err
	}

	if entry, fresh := cache.Get(location); fresh {
		return entry.Data, nil
	}

	stale, hadStale := cache.GetStale(location)

	httpFetcher, supportsConditional := fetcher.(*HTTPTemplateFetcher)
	var data []byte
	var etag, lastModified string
	var err error
	if supportsConditional && hadStale {
		data, etag, lastModified, err = httpFetcher.FetchConditional(ctx, location, stale.ETag, stale.LastModified)
		if errors.Is(err, ErrNotModified) {
			_ = cache.touch(location, stale.ETag, stale.LastModified)
			return stale.Data, nil
		}
	} else {
		data, etag, lastModified, err = fetcher.Fetch(ctx, location)
	}

	if err != nil {
		if hadStale {
			return stale.Data, nil
		}
		return nil, err
	}

	_ = cache.Put(location, data, etag, lastModified)
	return data, nil
}
