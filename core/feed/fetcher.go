// ABOUTME: Feed fetcher retrieves and parses RSS/Atom feeds into bounded article sets
// ABOUTME: Individual feed failures are recorded, never raised; feeds fetch concurrently

package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/url"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/mmcdole/gofeed"

	"briefing-api/core/domain"
	"briefing-api/core/interfaces"
	htmlutil "briefing-api/pkg/utils/html"
)

// Per-feed article cap bounds
const (
	MinArticlesPerFeed = 1
	MaxArticlesPerFeed = 5
)

const feedCacheTTL = 10 * time.Minute

// Fetcher retrieves feeds and extracts articles
type Fetcher struct {
	deps    interfaces.Dependencies
	timeout time.Duration
}

// NewFetcher creates a feed fetcher with the given per-feed timeout
func NewFetcher(deps interfaces.Dependencies, timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Fetcher{
		deps:    deps,
		timeout: timeout,
	}
}

// FetchAll fetches every feed concurrently and merges results back into
// request order regardless of completion order. A failed feed becomes a
// FeedFailure entry; FetchAll itself never fails.
func (f *Fetcher) FetchAll(ctx context.Context, feedURLs []string, maxPerFeed int) ([]domain.FeedSource, []domain.FeedFailure) {
	sources := make([]*domain.FeedSource, len(feedURLs))
	failures := make([]*domain.FeedFailure, len(feedURLs))

	var wg sync.WaitGroup
	for i, feedURL := range feedURLs {
		wg.Add(1)
		go func(i int, feedURL string) {
			defer wg.Done()
			source, err := f.Fetch(ctx, feedURL, maxPerFeed)
			if err != nil {
				failures[i] = &domain.FeedFailure{URL: feedURL, Reason: err.Error()}
				return
			}
			sources[i] = source
		}(i, feedURL)
	}
	wg.Wait()

	ordered := make([]domain.FeedSource, 0, len(feedURLs))
	failed := make([]domain.FeedFailure, 0)
	for i := range feedURLs {
		if sources[i] != nil {
			ordered = append(ordered, *sources[i])
		}
		if failures[i] != nil {
			failed = append(failed, *failures[i])

			f.deps.Logger.Warn("Feed skipped", map[string]interface{}{
				"url":    failures[i].URL,
				"reason": failures[i].Reason,
			})
		}
	}
	return ordered, failed
}

// Fetch retrieves a single feed and extracts up to maxPerFeed articles in
// feed order. The feed's own order is preserved; no re-sorting happens.
func (f *Fetcher) Fetch(ctx context.Context, feedURL string, maxPerFeed int) (*domain.FeedSource, error) {
	if feedURL == "" {
		return nil, errors.New("feed URL cannot be empty")
	}

	parsedURL, err := url.Parse(feedURL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, errors.New("invalid URL format")
	}

	if maxPerFeed < MinArticlesPerFeed {
		maxPerFeed = MinArticlesPerFeed
	}
	if maxPerFeed > MaxArticlesPerFeed {
		maxPerFeed = MaxArticlesPerFeed
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	if cached := f.getCachedSource(ctx, feedURL); cached != nil {
		return truncateSource(cached, maxPerFeed), nil
	}

	if f.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	resp, err := f.deps.HTTPClient.Get(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, errors.New("feed returned non-200 status code")
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, err
	}

	source, err := f.parseFeedContent(body, feedURL, parsedURL.Host)
	if err != nil {
		return nil, err
	}

	// Cache the full extraction; per-request caps are applied on read
	f.cacheSource(ctx, feedURL, source)

	return truncateSource(source, maxPerFeed), nil
}

// parseFeedContent parses feed bytes and extracts articles
func (f *Fetcher) parseFeedContent(content []byte, feedURL, host string) (*domain.FeedSource, error) {
	if len(content) == 0 {
		return nil, errors.New("empty feed content")
	}

	parser := gofeed.NewParser()
	parsed, err := parser.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(parsed.Title)
	if name == "" {
		name = sourceNameFromHost(host)
	}

	source := &domain.FeedSource{
		URL:      feedURL,
		Name:     name,
		Articles: make([]domain.Article, 0, len(parsed.Items)),
	}

	for _, item := range parsed.Items {
		title := htmlutil.StripHTML(item.Title)
		if title == "" {
			continue
		}
		summary := item.Description
		if summary == "" {
			summary = item.Content
		}
		source.Articles = append(source.Articles, domain.Article{
			Title:   title,
			Summary: htmlutil.StripHTML(summary),
			Source:  name,
		})
	}

	return source, nil
}

// truncateSource caps the article list, preserving feed order
func truncateSource(source *domain.FeedSource, maxPerFeed int) *domain.FeedSource {
	capped := *source
	if len(capped.Articles) > maxPerFeed {
		capped.Articles = capped.Articles[:maxPerFeed]
	}
	return &capped
}

// sourceNameFromHost derives a readable publication name from a URL host,
// e.g. "rss.example.com" -> "Example"
func sourceNameFromHost(host string) string {
	host = strings.TrimPrefix(host, "www.")
	labels := strings.Split(host, ".")
	name := labels[0]
	if len(labels) > 2 {
		// Prefer the registrable label over a subdomain like "rss" or "feeds"
		name = labels[len(labels)-2]
	}
	if name == "" {
		return "News Source"
	}

	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// getCachedSource returns a previously parsed feed, or nil on any miss
func (f *Fetcher) getCachedSource(ctx context.Context, feedURL string) *domain.FeedSource {
	if f.deps.Cache == nil {
		return nil
	}
	data, err := f.deps.Cache.Get(ctx, cacheKey(feedURL))
	if err != nil {
		return nil
	}
	var source domain.FeedSource
	if err := json.Unmarshal(data, &source); err != nil {
		return nil
	}
	return &source
}

// cacheSource stores the parsed feed; cache errors are ignored
func (f *Fetcher) cacheSource(ctx context.Context, feedURL string, source *domain.FeedSource) {
	if f.deps.Cache == nil {
		return
	}
	data, err := json.Marshal(source)
	if err != nil {
		return
	}
	_ = f.deps.Cache.Set(ctx, cacheKey(feedURL), data, feedCacheTTL)
}

func cacheKey(feedURL string) string {
	return "feed:" + feedURL
}
