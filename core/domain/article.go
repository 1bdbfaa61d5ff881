// ABOUTME: Article and FeedSource domain models for fetched feed content
// ABOUTME: Articles are immutable once extracted and consumed once by the composer

package domain

// Article represents a single article extracted from a feed.
// Articles are created during fetch and never mutated afterwards.
type Article struct {
	// Title is the article headline, HTML stripped
	Title string

	// Summary is the plain-text description of the article, HTML stripped
	Summary string

	// Source is the display name of the publication the article came from
	Source string
}

// FeedSource represents one fetched feed with its resolved display name
type FeedSource struct {
	// URL is the feed's RSS/Atom URL
	URL string

	// Name is the publication display name resolved from feed metadata,
	// falling back to the URL host when the feed carries no title
	Name string

	// Articles holds the extracted articles in feed order
	Articles []Article
}

// FeedFailure records a feed that could not be fetched or parsed.
// Per-feed failures are non-fatal and surfaced in result metadata.
type FeedFailure struct {
	// URL is the feed URL that failed
	URL string

	// Reason is a human-readable description of the failure
	Reason string
}
