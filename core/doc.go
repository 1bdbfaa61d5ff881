// Package core contains the business logic for the briefing API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Article, BriefingRequest, PCMClip, etc.)
// - feed: Feed fetching and article extraction
// - briefing: Narration script composition
// - speech: Text-to-speech coordination
// - audio: PCM mixing and output file production
// - pipeline: End-to-end orchestration of the above stages
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, TTS, codec)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "briefing-api/core/feed"
//	    "briefing-api/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create the fetcher
//	fetcher := feed.NewFetcher(deps, 10*time.Second)
//
//	// Pull articles
//	sources, failures := fetcher.FetchAll(ctx, []string{
//	    "https://example.com/feed.rss",
//	}, 3)
package core
