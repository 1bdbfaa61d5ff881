package ffmpeg

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"briefing-api/core/domain"
	coreerrors "briefing-api/core/errors"
)

func TestAvailable_MissingBinary(t *testing.T) {
	codec := NewCodec("definitely-not-a-real-encoder-binary", "also-not-real")

	err := codec.Available()
	if err == nil {
		t.Fatal("Available should fail when the binary cannot be resolved")
	}
	if !coreerrors.IsEncoderUnavailable(err) {
		t.Errorf("error should be EncoderUnavailableError, got %T", err)
	}
}

func TestDecode_EmptyInput(t *testing.T) {
	codec := NewCodec("", "")

	if _, err := codec.Decode(context.Background(), nil); err == nil {
		t.Error("Decode should reject empty input without invoking ffmpeg")
	}
}

func TestDecodeFile_EmptyPath(t *testing.T) {
	codec := NewCodec("", "")

	if _, err := codec.DecodeFile(context.Background(), "  "); err == nil {
		t.Error("DecodeFile should reject an empty path")
	}
}

func TestEncode_RejectsEmptyClipAndBadFormat(t *testing.T) {
	codec := NewCodec("", "")
	ctx := context.Background()

	if err := codec.Encode(ctx, nil, domain.FormatMP3, "out.mp3"); err == nil {
		t.Error("Encode should reject a nil clip")
	}

	clip := &domain.PCMClip{SampleRate: domain.PCMSampleRate, Channels: domain.PCMChannels, Samples: make([]int16, 8)}
	if err := codec.Encode(ctx, clip, domain.AudioFormat("OGG"), "out.ogg"); err == nil {
		t.Error("Encode should reject an unsupported format")
	}
}

func TestEncodeDurationRoundTrip(t *testing.T) {
	codec := NewCodec("", "")
	if err := codec.Available(); err != nil {
		t.Skip("ffmpeg not available")
	}

	const seconds = 2
	frames := seconds * domain.PCMSampleRate
	clip := &domain.PCMClip{
		SampleRate: domain.PCMSampleRate,
		Channels:   domain.PCMChannels,
		Samples:    make([]int16, frames*domain.PCMChannels),
	}
	// A 440Hz tone so the lossy encoder has a real signal to work on
	for i := 0; i < frames; i++ {
		s := int16(8000 * math.Sin(2*math.Pi*440*float64(i)/float64(domain.PCMSampleRate)))
		clip.Samples[2*i] = s
		clip.Samples[2*i+1] = s
	}

	// MP3 pads the stream out to whole 1152-sample frames, so its
	// container duration lands a little past the source length
	tolerances := map[domain.AudioFormat]float64{
		domain.FormatWAV:  0.05,
		domain.FormatFLAC: 0.05,
		domain.FormatMP3:  0.1,
	}

	dir := t.TempDir()
	ctx := context.Background()
	for _, format := range []domain.AudioFormat{domain.FormatMP3, domain.FormatWAV, domain.FormatFLAC} {
		t.Run(string(format), func(t *testing.T) {
			path := filepath.Join(dir, "tone."+format.Extension())
			if err := codec.Encode(ctx, clip, format, path); err != nil {
				t.Fatalf("Encode(%s): %v", format, err)
			}

			got, err := codec.ProbeDuration(ctx, path)
			if err != nil {
				t.Fatalf("ProbeDuration(%s): %v", format, err)
			}
			if diff := math.Abs(got - seconds); diff > tolerances[format] {
				t.Errorf("%s duration = %.3fs, want %.3fs within %.0fms",
					format, got, float64(seconds), tolerances[format]*1000)
			}
		})
	}
}

func TestEncoderArgs(t *testing.T) {
	tests := []struct {
		format domain.AudioFormat
		codec  string
	}{
		{domain.FormatMP3, "libmp3lame"},
		{domain.FormatWAV, "pcm_s16le"},
		{domain.FormatFLAC, "flac"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			args := encoderArgs(tt.format)
			found := false
			for _, a := range args {
				if a == tt.codec {
					found = true
				}
			}
			if !found {
				t.Errorf("encoderArgs(%s) = %v, missing codec %q", tt.format, args, tt.codec)
			}
		})
	}
}
