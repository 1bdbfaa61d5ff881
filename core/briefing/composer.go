// ABOUTME: Briefing composer turns fetched articles into a single narration script
// ABOUTME: Enforces the global article ceiling and the provider character budget

package briefing

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"briefing-api/core/domain"
	"briefing-api/core/interfaces"
)

// summaryLimit truncates article summaries before narration
const summaryLimit = 197

// Composer assembles narration scripts
type Composer struct {
	logger interfaces.Logger

	// maxTotalArticles is the global article ceiling per briefing
	maxTotalArticles int

	// characterBudget is the provider's per-request character ceiling
	characterBudget int

	// now is injectable for deterministic tests
	now func() time.Time
}

// NewComposer creates a composer with the given limits
func NewComposer(logger interfaces.Logger, maxTotalArticles, characterBudget int) *Composer {
	return &Composer{
		logger:           logger,
		maxTotalArticles: maxTotalArticles,
		characterBudget:  characterBudget,
		now:              time.Now,
	}
}

// Compose flattens the per-feed article lists feed-by-feed in request
// order (each feed's own order preserved) and renders the narration.
// Articles stop being added once the next one would push the script past
// the character budget; the returned ArticleCount reflects only articles
// actually present in the text.
func (c *Composer) Compose(sources []domain.FeedSource) *domain.BriefingScript {
	articles := flatten(sources, c.maxTotalArticles)

	greeting := fmt.Sprintf("Good morning. Here is your news briefing for %s.\n\n",
		c.now().Format("Monday, January 2"))
	signOff := "That concludes your news briefing. Have a great day!"

	var b strings.Builder
	b.WriteString(greeting)

	// The sign-off is always appended, so its cost is reserved up front
	budget := c.characterBudget - utf8.RuneCountInString(signOff)
	used := utf8.RuneCountInString(greeting)

	included := 0
	var sourceNames []string
	seen := map[string]bool{}

	for i, article := range articles {
		segment := renderSegment(article, i == 0)
		cost := utf8.RuneCountInString(segment)
		if used+cost > budget {
			c.logger.Warn("Character budget reached, truncating briefing", map[string]interface{}{
				"included": included,
				"dropped":  len(articles) - included,
			})
			break
		}
		b.WriteString(segment)
		used += cost
		included++

		if !seen[article.Source] {
			seen[article.Source] = true
			sourceNames = append(sourceNames, article.Source)
		}
	}

	b.WriteString(signOff)

	text := b.String()
	// A budget smaller than the greeting and sign-off alone cannot hold
	// the full template; cap the script so the length never passes the
	// provider ceiling.
	if runes := []rune(text); len(runes) > c.characterBudget {
		c.logger.Warn("Character budget below template size, capping script", map[string]interface{}{
			"budget":   c.characterBudget,
			"template": len(runes),
		})
		limit := c.characterBudget
		if limit < 0 {
			limit = 0
		}
		text = string(runes[:limit])
	}
	return &domain.BriefingScript{
		Text:           text,
		CharacterCount: utf8.RuneCountInString(text),
		ArticleCount:   included,
		Sources:        sourceNames,
	}
}

// flatten concatenates articles feed-by-feed and applies the global
// ceiling, dropping from the tail
func flatten(sources []domain.FeedSource, ceiling int) []domain.Article {
	var articles []domain.Article
	for _, source := range sources {
		articles = append(articles, source.Articles...)
	}
	if ceiling > 0 && len(articles) > ceiling {
		articles = articles[:ceiling]
	}
	return articles
}

// renderSegment emits one article's narration: transition, source, title,
// trimmed summary
func renderSegment(article domain.Article, first bool) string {
	prefix := "From"
	if !first {
		prefix = "Next, from"
	}
	return fmt.Sprintf("%s %s... %s. %s\n\n",
		prefix, article.Source, article.Title, trimSummary(article.Summary))
}

// trimSummary bounds the summary length, appending an ellipsis when cut
func trimSummary(summary string) string {
	runes := []rune(summary)
	if len(runes) <= summaryLimit {
		return summary
	}
	return string(runes[:summaryLimit]) + "..."
}
