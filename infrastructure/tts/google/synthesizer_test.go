package google

import (
	"context"
	"strings"
	"testing"

	"briefing-api/core/domain"
	coreerrors "briefing-api/core/errors"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

func TestSynthesize_NotConfigured(t *testing.T) {
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "")

	s := NewSynthesizer(nopLogger{}, 5000)
	_, err := s.Synthesize(context.Background(), "text", "en-US-natalie", domain.FormatMP3)

	if !coreerrors.IsProviderNotConfigured(err) {
		t.Fatalf("error should be ProviderNotConfiguredError, got %v", err)
	}
}

func TestVoiceNames_CoverFixedVoiceSet(t *testing.T) {
	for _, v := range domain.Voices {
		if _, ok := voiceNames[v.ID]; !ok {
			t.Errorf("voice %s has no Google mapping", v.ID)
		}
	}
}

func TestSplitTextIntoChunks(t *testing.T) {
	text := strings.Repeat("word ", 500)

	chunks := splitTextIntoChunks(text, 100)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	var rejoined []string
	for _, c := range chunks {
		if len(c) > 100 {
			t.Errorf("chunk exceeds limit: %d chars", len(c))
		}
		rejoined = append(rejoined, c)
	}
	if strings.Join(rejoined, " ") != strings.TrimSpace(text) {
		t.Error("chunking should preserve the full text")
	}
}

func TestSplitTextIntoChunks_Empty(t *testing.T) {
	if chunks := splitTextIntoChunks("", 100); len(chunks) != 0 {
		t.Errorf("empty text should yield no chunks, got %v", chunks)
	}
}
