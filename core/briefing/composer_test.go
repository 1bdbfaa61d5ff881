package briefing

import (
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"briefing-api/core/domain"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

func fixedComposer(ceiling, budget int) *Composer {
	c := NewComposer(nopLogger{}, ceiling, budget)
	c.now = func() time.Time {
		return time.Date(2024, time.March, 4, 7, 0, 0, 0, time.UTC)
	}
	return c
}

func makeSource(name string, count int) domain.FeedSource {
	s := domain.FeedSource{URL: "https://" + name + ".example.com/feed", Name: name}
	for i := 0; i < count; i++ {
		s.Articles = append(s.Articles, domain.Article{
			Title:   fmt.Sprintf("%s headline %d", name, i+1),
			Summary: fmt.Sprintf("%s summary %d", name, i+1),
			Source:  name,
		})
	}
	return s
}

func TestCompose_GreetingAndSignOff(t *testing.T) {
	composer := fixedComposer(20, 5000)

	script := composer.Compose([]domain.FeedSource{makeSource("Alpha", 1)})

	if !strings.HasPrefix(script.Text, "Good morning. Here is your news briefing for Monday, March 4.") {
		t.Errorf("missing greeting with date, got %q", script.Text[:80])
	}
	if !strings.HasSuffix(script.Text, "That concludes your news briefing. Have a great day!") {
		t.Errorf("missing sign-off, got tail %q", script.Text[len(script.Text)-80:])
	}
}

func TestCompose_FeedByFeedOrder(t *testing.T) {
	composer := fixedComposer(20, 5000)

	script := composer.Compose([]domain.FeedSource{
		makeSource("Alpha", 2),
		makeSource("Beta", 2),
	})

	a1 := strings.Index(script.Text, "Alpha headline 1")
	a2 := strings.Index(script.Text, "Alpha headline 2")
	b1 := strings.Index(script.Text, "Beta headline 1")
	b2 := strings.Index(script.Text, "Beta headline 2")
	for _, idx := range []int{a1, a2, b1, b2} {
		if idx < 0 {
			t.Fatalf("missing article in script: %s", script.Text)
		}
	}
	if !(a1 < a2 && a2 < b1 && b1 < b2) {
		t.Error("articles should be concatenated feed-by-feed, preserving each feed's order")
	}
}

func TestCompose_TransitionPhrases(t *testing.T) {
	composer := fixedComposer(20, 5000)

	script := composer.Compose([]domain.FeedSource{makeSource("Alpha", 2)})

	if !strings.Contains(script.Text, "From Alpha... Alpha headline 1.") {
		t.Error("first article should use the plain transition")
	}
	if !strings.Contains(script.Text, "Next, from Alpha... Alpha headline 2.") {
		t.Error("subsequent articles should use 'Next, from'")
	}
}

func TestCompose_GlobalArticleCeiling(t *testing.T) {
	composer := fixedComposer(20, 100000)

	// 6 feeds x 5 articles = 30 fetched, ceiling is 20
	var sources []domain.FeedSource
	for i := 0; i < 6; i++ {
		sources = append(sources, makeSource(fmt.Sprintf("Feed%d", i), 5))
	}

	script := composer.Compose(sources)

	if script.ArticleCount != 20 {
		t.Errorf("ArticleCount = %d, want exactly 20", script.ArticleCount)
	}
	if strings.Contains(script.Text, "Feed4 headline 5") {
		t.Error("articles past the ceiling should be dropped from the tail")
	}
}

func TestCompose_CharacterBudgetTruncation(t *testing.T) {
	budget := 400
	composer := fixedComposer(20, budget)

	script := composer.Compose([]domain.FeedSource{makeSource("Alpha", 10)})

	if script.CharacterCount > budget {
		t.Errorf("CharacterCount = %d exceeds budget %d", script.CharacterCount, budget)
	}
	if script.ArticleCount >= 10 {
		t.Error("budget should have truncated the article list")
	}
	if script.ArticleCount < 1 {
		t.Error("at least one article should fit in a 400-char budget")
	}
	// The count must match the articles actually present in the text
	occurrences := strings.Count(script.Text, "headline")
	if occurrences != script.ArticleCount {
		t.Errorf("text contains %d articles but ArticleCount = %d", occurrences, script.ArticleCount)
	}
	if !strings.HasSuffix(script.Text, "Have a great day!") {
		t.Error("sign-off must survive truncation")
	}
}

func TestCompose_CharacterCountIsExact(t *testing.T) {
	composer := fixedComposer(20, 5000)

	script := composer.Compose([]domain.FeedSource{makeSource("Alpha", 3)})

	if got := utf8.RuneCountInString(script.Text); got != script.CharacterCount {
		t.Errorf("CharacterCount = %d, want %d (exact rune count)", script.CharacterCount, got)
	}
}

func TestCompose_SourcesDistinctInFirstAppearanceOrder(t *testing.T) {
	composer := fixedComposer(20, 5000)

	script := composer.Compose([]domain.FeedSource{
		makeSource("Alpha", 1),
		makeSource("Beta", 1),
		makeSource("Alpha", 1),
	})

	if len(script.Sources) != 2 {
		t.Fatalf("Sources = %v, want 2 distinct entries", script.Sources)
	}
	if script.Sources[0] != "Alpha" || script.Sources[1] != "Beta" {
		t.Errorf("Sources = %v, want [Alpha Beta]", script.Sources)
	}
}

func TestCompose_SourcesOnlyForIncludedArticles(t *testing.T) {
	composer := fixedComposer(20, 350)

	script := composer.Compose([]domain.FeedSource{
		makeSource("Alpha", 1),
		makeSource("Beta", 10),
		makeSource("Gamma", 1),
	})

	for _, s := range script.Sources {
		if s == "Gamma" && script.ArticleCount < 12 {
			t.Error("a source whose articles were all truncated must not be listed")
		}
	}
}

func TestCompose_NoArticles(t *testing.T) {
	composer := fixedComposer(20, 5000)

	script := composer.Compose(nil)

	if script.ArticleCount != 0 {
		t.Errorf("ArticleCount = %d, want 0", script.ArticleCount)
	}
	if len(script.Sources) != 0 {
		t.Errorf("Sources = %v, want empty", script.Sources)
	}
	if !strings.Contains(script.Text, "Good morning") {
		t.Error("even an empty briefing keeps the template text")
	}
}

func TestCompose_BudgetBelowTemplateCapsScript(t *testing.T) {
	composer := fixedComposer(20, 60)

	script := composer.Compose([]domain.FeedSource{makeSource("Alpha", 3)})

	if script.CharacterCount > 60 {
		t.Errorf("CharacterCount = %d, want at most 60", script.CharacterCount)
	}
	if got := utf8.RuneCountInString(script.Text); got != script.CharacterCount {
		t.Errorf("text length = %d runes, CharacterCount = %d", got, script.CharacterCount)
	}
	if script.ArticleCount != 0 {
		t.Errorf("ArticleCount = %d, want 0 when nothing fits", script.ArticleCount)
	}
}

func TestTrimSummary(t *testing.T) {
	long := strings.Repeat("a", 300)

	got := trimSummary(long)

	if utf8.RuneCountInString(got) != summaryLimit+3 {
		t.Errorf("trimmed length = %d, want %d plus ellipsis", utf8.RuneCountInString(got), summaryLimit)
	}
	if !strings.HasSuffix(got, "...") {
		t.Error("trimmed summary should end with an ellipsis")
	}
	if trimSummary("short") != "short" {
		t.Error("short summaries pass through unchanged")
	}
}
