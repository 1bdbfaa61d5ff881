// ABOUTME: HTML utilities for converting feed markup into narration-safe plain text
// ABOUTME: Uses goquery for tag removal with a manual fallback for unparseable fragments

package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML removes markup from a feed-provided fragment and collapses
// whitespace, leaving plain text suitable for narration.
func StripHTML(fragment string) string {
	if fragment == "" {
		return ""
	}

	text := fragment
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err == nil {
		doc.Find("script, style").Remove()
		text = doc.Text()
	} else {
		text = stripTagsManually(fragment)
	}

	text = DecodeEntities(text)
	return collapseWhitespace(text)
}

// stripTagsManually removes anything between angle brackets. Only used
// when the fragment is too broken for the HTML parser.
func stripTagsManually(text string) string {
	for strings.Contains(text, "<") && strings.Contains(text, ">") {
		start := strings.Index(text, "<")
		end := strings.Index(text, ">")
		if start < end && start >= 0 && end >= 0 {
			text = text[:start] + " " + text[end+1:]
		} else {
			break
		}
	}
	return text
}

// collapseWhitespace trims the string and folds runs of whitespace into
// single spaces
func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// DecodeEntities decodes HTML entities that survive text extraction
func DecodeEntities(text string) string {
	replacements := []struct {
		entity      string
		replacement string
	}{
		{"&nbsp;", " "},
		{"&amp;", "&"},
		{"&lt;", "<"},
		{"&gt;", ">"},
		{"&quot;", "\""},
		{"&#39;", "'"},
		{"&apos;", "'"},
		{"&#8230;", "..."},
		{"&#8217;", "'"},
		{"&#8220;", "\""},
		{"&#8221;", "\""},
		{"&ldquo;", "\""},
		{"&rdquo;", "\""},
		{"&lsquo;", "'"},
		{"&rsquo;", "'"},
		{"&mdash;", "-"},
		{"&ndash;", "-"},
		{"&hellip;", "..."},
	}

	result := text
	for _, r := range replacements {
		result = strings.ReplaceAll(result, r.entity, r.replacement)
	}
	return result
}
