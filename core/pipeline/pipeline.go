// ABOUTME: Orchestrates the briefing stages: fetch, compose, synthesize, mix
// ABOUTME: Stages run strictly in order; the first failing stage aborts the run

package pipeline

import (
	"context"
	"strings"

	"briefing-api/core/audio"
	"briefing-api/core/domain"
	coreerrors "briefing-api/core/errors"
	"briefing-api/core/interfaces"
)

// Stage names the phase a briefing run is in
type Stage string

// Pipeline stages in execution order. Failed is terminal; a failed run
// produces no briefing artifact.
const (
	StageFetching     Stage = "fetching"
	StageComposing    Stage = "composing"
	StageSynthesizing Stage = "synthesizing"
	StageMixing       Stage = "mixing"
	StageDone         Stage = "done"
	StageFailed       Stage = "failed"
)

// feedFetcher pulls articles from the requested feeds
type feedFetcher interface {
	FetchAll(ctx context.Context, feedURLs []string, maxPerFeed int) ([]domain.FeedSource, []domain.FeedFailure)
}

// scriptComposer turns fetched articles into narration text
type scriptComposer interface {
	Compose(sources []domain.FeedSource) *domain.BriefingScript
}

// speechService converts the script into speech audio
type speechService interface {
	Synthesize(ctx context.Context, script *domain.BriefingScript, voiceID string, format domain.AudioFormat) (*domain.SynthesisResult, error)
	Configured() bool
	ProviderName() string
}

// audioMixer lays the speech over the background track and writes the file
type audioMixer interface {
	Mix(ctx context.Context, speechAudio []byte, cfg domain.MixConfiguration) (*audio.MixOutput, error)
}

// Pipeline runs one briefing request end to end
type Pipeline struct {
	fetcher  feedFetcher
	composer scriptComposer
	speech   speechService
	mixer    audioMixer
	logger   interfaces.Logger

	backgroundTrackPath string
	outputDir           string
	publicPrefix        string
}

// NewPipeline wires the briefing stages together. publicPrefix is the URL
// path under which files in outputDir are served.
func NewPipeline(
	fetcher feedFetcher,
	composer scriptComposer,
	speech speechService,
	mixer audioMixer,
	logger interfaces.Logger,
	backgroundTrackPath, outputDir, publicPrefix string,
) *Pipeline {
	return &Pipeline{
		fetcher:             fetcher,
		composer:            composer,
		speech:              speech,
		mixer:               mixer,
		logger:              logger,
		backgroundTrackPath: backgroundTrackPath,
		outputDir:           outputDir,
		publicPrefix:        publicPrefix,
	}
}

// Run executes every stage for one request. On error no partial result is
// returned; feeds that failed on an otherwise successful run are reported
// in the result, not as errors.
func (p *Pipeline) Run(ctx context.Context, req domain.BriefingRequest) (*domain.BriefingResult, error) {
	p.logStage(StageFetching, map[string]interface{}{
		"feeds":        len(req.FeedURLs),
		"voice":        req.VoiceID,
		"format":       string(req.Format),
		"max_per_feed": req.MaxArticlesPerFeed,
	})

	sources, failures := p.fetcher.FetchAll(ctx, req.FeedURLs, req.MaxArticlesPerFeed)

	total := 0
	for _, s := range sources {
		total += len(s.Articles)
	}
	if total == 0 {
		p.logStage(StageFailed, map[string]interface{}{
			"reason":       "no articles",
			"feeds_failed": len(failures),
		})
		return nil, &coreerrors.NoArticlesError{FeedCount: len(req.FeedURLs)}
	}

	p.logStage(StageComposing, map[string]interface{}{"articles": total})
	script := p.composer.Compose(sources)

	p.logStage(StageSynthesizing, map[string]interface{}{
		"provider":   p.speech.ProviderName(),
		"characters": script.CharacterCount,
	})
	synthesis, err := p.speech.Synthesize(ctx, script, req.VoiceID, req.Format)
	if err != nil {
		p.logStage(StageFailed, map[string]interface{}{"failed_in": string(StageSynthesizing), "error": err.Error()})
		return nil, err
	}

	p.logStage(StageMixing, map[string]interface{}{"speech_bytes": len(synthesis.Audio)})
	mixed, err := p.mixer.Mix(ctx, synthesis.Audio, domain.MixConfiguration{
		Format:              req.Format,
		BackgroundTrackPath: p.backgroundTrackPath,
		OutputDir:           p.outputDir,
	})
	if err != nil {
		p.logStage(StageFailed, map[string]interface{}{"failed_in": string(StageMixing), "error": err.Error()})
		return nil, err
	}

	// Prefer the provider's duration figure; fall back to the measured
	// length when the provider did not report one.
	duration := synthesis.DurationSeconds
	if duration <= 0 {
		duration = mixed.DurationSeconds
	}

	result := &domain.BriefingResult{
		AudioURL:            p.publicURL(mixed.Filename),
		OutputPath:          mixed.Path,
		Script:              script.Text,
		DurationSeconds:     duration,
		CharactersUsed:      synthesis.CharactersUsed,
		CharactersRemaining: synthesis.CharactersRemaining,
		ArticleCount:        script.ArticleCount,
		Sources:             script.Sources,
		FailedFeeds:         failures,
	}

	p.logStage(StageDone, map[string]interface{}{
		"audio_url":  result.AudioURL,
		"duration_s": result.DurationSeconds,
		"articles":   result.ArticleCount,
	})

	return result, nil
}

// Configured reports whether the speech provider has a credential
func (p *Pipeline) Configured() bool {
	return p.speech.Configured()
}

// ProviderName identifies the active speech provider
func (p *Pipeline) ProviderName() string {
	return p.speech.ProviderName()
}

func (p *Pipeline) publicURL(filename string) string {
	return strings.TrimRight(p.publicPrefix, "/") + "/" + filename
}

func (p *Pipeline) logStage(stage Stage, fields map[string]interface{}) {
	if fields == nil {
		fields = map[string]interface{}{}
	}
	fields["pipeline_stage"] = string(stage)
	if stage == StageFailed {
		p.logger.Error("Briefing pipeline failed", fields)
		return
	}
	p.logger.Info("Briefing pipeline stage", fields)
}
