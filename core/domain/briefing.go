// ABOUTME: Briefing domain models covering the request, script, synthesis and final result
// ABOUTME: Defines the fixed voice and audio format enumerations accepted by the pipeline

package domain

// AudioFormat is the requested output container/codec
type AudioFormat string

// Supported output formats
const (
	FormatMP3  AudioFormat = "MP3"
	FormatWAV  AudioFormat = "WAV"
	FormatFLAC AudioFormat = "FLAC"
)

// AudioFormats lists every supported output format
var AudioFormats = []AudioFormat{FormatMP3, FormatWAV, FormatFLAC}

// Valid reports whether the format is one of the supported set
func (f AudioFormat) Valid() bool {
	switch f {
	case FormatMP3, FormatWAV, FormatFLAC:
		return true
	}
	return false
}

// Extension returns the file extension for the format, without the dot
func (f AudioFormat) Extension() string {
	switch f {
	case FormatWAV:
		return "wav"
	case FormatFLAC:
		return "flac"
	default:
		return "mp3"
	}
}

// Voice identifies one of the fixed narration voices
type Voice struct {
	// ID is the provider voice identifier
	ID string

	// DisplayName is the human-readable voice name
	DisplayName string

	// Locale is the voice's BCP-47 style locale (en-US / en-UK)
	Locale string

	// Gender is "female" or "male"
	Gender string
}

// Voices is the fixed set of narration voices spanning US/UK, female/male
var Voices = []Voice{
	{ID: "en-US-natalie", DisplayName: "Natalie", Locale: "en-US", Gender: "female"},
	{ID: "en-US-terrell", DisplayName: "Terrell", Locale: "en-US", Gender: "male"},
	{ID: "en-UK-ruby", DisplayName: "Ruby", Locale: "en-UK", Gender: "female"},
	{ID: "en-UK-theo", DisplayName: "Theo", Locale: "en-UK", Gender: "male"},
}

// DefaultVoiceID is used when a request does not name a voice
const DefaultVoiceID = "en-US-natalie"

// ValidVoiceID reports whether the given ID names one of the fixed voices
func ValidVoiceID(id string) bool {
	for _, v := range Voices {
		if v.ID == id {
			return true
		}
	}
	return false
}

// BriefingRequest is one briefing job as handed to the pipeline
type BriefingRequest struct {
	// FeedURLs is the ordered list of feed URLs to ingest
	FeedURLs []string

	// VoiceID is one of the fixed voice identifiers
	VoiceID string

	// Format is the requested output audio format
	Format AudioFormat

	// MaxArticlesPerFeed bounds articles taken from each feed (1-5)
	MaxArticlesPerFeed int
}

// BriefingScript is the composed narration text for one briefing
type BriefingScript struct {
	// Text is the full narration, plain text with no markup
	Text string

	// CharacterCount is the exact length of Text in characters
	CharacterCount int

	// ArticleCount is the number of articles actually represented in Text
	ArticleCount int

	// Sources lists the distinct source display names referenced, in
	// first-appearance order
	Sources []string
}

// SynthesisResult holds the provider's speech output and usage accounting.
// Values are reported by the provider verbatim, never recomputed.
type SynthesisResult struct {
	// Audio is the raw synthesized speech audio
	Audio []byte

	// DurationSeconds is the speech duration as reported by the provider
	DurationSeconds float64

	// CharactersUsed is the character count the provider billed
	CharactersUsed int

	// CharactersRemaining is the provider-reported remaining quota
	CharactersRemaining int
}

// MixConfiguration controls the audio mixing stage
type MixConfiguration struct {
	// Format is the requested output format
	Format AudioFormat

	// BackgroundTrackPath optionally points at the looped music bed.
	// Empty or missing file means speech-only output, not an error.
	BackgroundTrackPath string

	// OutputDir is the directory final audio files are written to
	OutputDir string
}

// BriefingResult is the terminal artifact of one successful pipeline run
type BriefingResult struct {
	// AudioURL is the public path of the generated audio file
	AudioURL string

	// OutputPath is the filesystem location of the generated file
	OutputPath string

	// Script is the full narration text
	Script string

	// DurationSeconds is the speech duration in seconds
	DurationSeconds float64

	// CharactersUsed and CharactersRemaining mirror provider accounting
	CharactersUsed      int
	CharactersRemaining int

	// ArticleCount is the number of articles included in the script
	ArticleCount int

	// Sources lists the distinct source display names that contributed
	Sources []string

	// FailedFeeds records feeds that were skipped, with reasons
	FailedFeeds []FeedFailure
}
