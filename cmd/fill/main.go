// Command fill renders field data onto a PDF template and writes the
// composed PDF (and, optionally, its processing metadata) to disk.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/omofolarin/fill-pdf/internal/fetchsrc"
	"github.com/omofolarin/fill-pdf/pkg/formfill"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "cache" {
		runCacheCommand(os.Args[2:])
		return
	}

	templateArg := flag.String("template", "", "template PDF: local path or http(s) URL")
	dataPath := flag.String("data", "", "path to a JSON array of field descriptors")
	outPath := flag.String("output", "", "path to write the composed PDF")
	metadataPath := flag.String("metadata", "", "optional path to write processing metadata JSON")
	keepFields := flag.Bool("keep-fields", false, "keep the interactive form layer instead of flattening")
	useCache := flag.Bool("cache", false, "cache fetched templates on disk")
	cacheDir := flag.String("cache-dir", defaultCacheDir(), "template cache directory")
	cacheTTLSeconds := flag.Int("cache-ttl", 3600, "cache freshness window, in seconds")
	cacheRefresh := flag.Bool("cache-refresh", false, "bypass a fresh cache hit and force revalidation")
	flag.Parse()

	if *templateArg == "" || *dataPath == "" || *outPath == "" {
		fmt.Println("usage: fill --template <path|url> --data <fields.json> --output <out.pdf> [--metadata <meta.json>] [--keep-fields] [--cache] [--cache-ttl <seconds>] [--cache-dir <dir>] [--cache-refresh]")
		fmt.Println("       fill cache clear [--cache-dir <dir>]")
		os.Exit(1)
	}

	ctx := context.Background()
	fetcher := fetchsrc.NewHTTPTemplateFetcher()

	templateBytes, err := loadTemplate(ctx, fetcher, *templateArg, *useCache, *cacheDir, time.Duration(*cacheTTLSeconds)*time.Second, *cacheRefresh)
	if err != nil {
		log.Fatalf("fill: load template: %v", err)
	}

	rawFields, err := os.ReadFile(*dataPath)
	if err != nil {
		log.Fatalf("fill: read field data: %v", err)
	}
	var fields []formfill.Field
	if err := json.Unmarshal(rawFields, &fields); err != nil {
		log.Fatalf("fill: parse field data: %v", err)
	}

	fields, resolveWarnings := resolveImageValues(ctx, fetcher, fields)
	for _, w := range resolveWarnings {
		fmt.Printf("warning: %s\n", w)
	}

	pdfBytes, meta, err := formfill.Fill(templateBytes, fields, formfill.Options{Flatten: !*keepFields})
	if err != nil {
		log.Fatalf("fill: %v", err)
	}

	if err := os.WriteFile(*outPath, pdfBytes, 0o644); err != nil {
		log.Fatalf("fill: write output: %v", err)
	}
	fmt.Printf("wrote %s (%d fields processed, %d skipped)\n", *outPath, meta.FieldsProcessed, meta.FieldsSkipped)
	for _, w := range meta.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
	for _, e := range meta.Errors {
		fmt.Printf("error: %s\n", e)
	}

	if *metadataPath != "" {
		metaJSON, err := json.MarshalIndent(meta, "", "  ")
		if err != nil {
			log.Fatalf("fill: marshal metadata: %v", err)
		}
		if err := os.WriteFile(*metadataPath, metaJSON, 0o644); err != nil {
			log.Fatalf("fill: write metadata: %v", err)
		}
	}

	if len(meta.Errors) > 0 {
		os.Exit(1)
	}
}

// loadTemplate resolves templateArg to bytes: a bare filesystem read for a
// local path, or a fetch (optionally disk-cached) for an http(s) URL.
func loadTemplate(ctx context.Context, fetcher *fetchsrc.HTTPTemplateFetcher, templateArg string, useCache bool, cacheDir string, ttl time.Duration, forceRefresh bool) ([]byte, error) {
	if !isURL(templateArg) {
		return os.ReadFile(templateArg)
	}

	if !useCache {
		data, _, _, err := fetcher.Fetch(ctx, templateArg)
		return data, err
	}

	cache, err := fetchsrc.NewDiskTemplateCache(cacheDir, ttl)
	if err != nil {
		return nil, err
	}
	if forceRefresh {
		ttl = 0 // treat any cached entry as stale, forcing revalidation
		cache.TTL = ttl
	}
	return fetchsrc.ResolveTemplate(ctx, fetcher, cache, templateArg)
}

// resolveImageValues resolves the raw value of every image/signature field
// to decoded bytes before the core ever sees them: an inline value is treated
// as base64, a { "url": "..." } descriptor is fetched eagerly with fetcher
// (the same HTTPTemplateFetcher used for the template itself). A field whose
// value can't be resolved is dropped from the list and reported as a
// warning, per the image-fetcher collaborator contract — the core never
// learns that field existed.
func resolveImageValues(ctx context.Context, fetcher fetchsrc.TemplateFetcher, fields []formfill.Field) ([]formfill.Field, []string) {
	var warnings []string
	resolved := make([]formfill.Field, 0, len(fields))
	for _, f := range fields {
		if f.FieldType != formfill.FieldImage && f.FieldType != formfill.FieldSignature {
			resolved = append(resolved, f)
			continue
		}
		data, warn, ok := resolveImageValue(ctx, fetcher, f)
		if !ok {
			warnings = append(warnings, warn)
			continue
		}
		f.Value = data
		resolved = append(resolved, f)
	}
	return resolved, warnings
}

// resolveImageValue resolves a single image/signature field's value to
// decoded bytes. Accepted shapes are a base64-encoded string (inline data)
// or a URL descriptor object `{ "url": "...", ... }` (fetched over HTTP,
// GET only — matching the single-purpose style of HTTPTemplateFetcher).
func resolveImageValue(ctx context.Context, fetcher fetchsrc.TemplateFetcher, f formfill.Field) ([]byte, string, bool) {
	switch v := f.Value.(type) {
	case string:
		data, err := base64.StdEncoding.DecodeString(v)
		if err != nil {
			return nil, fmt.Sprintf("Skipped field %s: value is not valid base64: %s", f.FieldID, err), false
		}
		return data, "", true

	case map[string]any:
		rawURL, _ := v["url"].(string)
		if rawURL == "" {
			return nil, fmt.Sprintf("Skipped field %s: URL descriptor missing \"url\"", f.FieldID), false
		}
		data, _, _, err := fetcher.Fetch(ctx, rawURL)
		if err != nil {
			return nil, fmt.Sprintf("Skipped field %s: fetch image %s: %s", f.FieldID, rawURL, err), false
		}
		return data, "", true

	default:
		return nil, fmt.Sprintf("Skipped field %s: value is neither a base64 string nor a URL descriptor", f.FieldID), false
	}
}

func isURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ".fill-cache"
	}
	return dir + "/fill-pdf/templates"
}

func runCacheCommand(args []string) {
	fs := flag.NewFlagSet("cache", flag.ExitOnError)
	cacheDir := fs.String("cache-dir", defaultCacheDir(), "template cache directory")
	fs.Parse(args)

	if fs.NArg() == 0 || fs.Arg(0) != "clear" {
		fmt.Println("usage: fill cache clear [--cache-dir <dir>]")
		os.Exit(1)
	}

	cache, err := fetchsrc.NewDiskTemplateCache(*cacheDir, 0)
	if err != nil {
		log.Fatalf("fill: cache clear: %v", err)
	}
	if err := cache.Clear(); err != nil {
		log.Fatalf("fill: cache clear: %v", err)
	}
	fmt.Printf("cleared %s\n", *cacheDir)
}
