// ABOUTME: Audio codec implementation that shells out to ffmpeg
// ABOUTME: Normalizes any input to the working PCM shape and encodes PCM to MP3/WAV/FLAC

package ffmpeg

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"briefing-api/core/domain"
	coreerrors "briefing-api/core/errors"
)

// Codec implements the AudioCodec interface by invoking ffmpeg
type Codec struct {
	ffmpegPath  string
	ffprobePath string
}

// NewCodec creates a codec using the given binary paths. Empty paths fall
// back to resolving "ffmpeg"/"ffprobe" from PATH.
func NewCodec(ffmpegPath, ffprobePath string) *Codec {
	if strings.TrimSpace(ffmpegPath) == "" {
		ffmpegPath = "ffmpeg"
	}
	if strings.TrimSpace(ffprobePath) == "" {
		ffprobePath = "ffprobe"
	}
	return &Codec{ffmpegPath: ffmpegPath, ffprobePath: ffprobePath}
}

// Available reports whether both ffmpeg and ffprobe can be resolved.
// Called once at startup; the result is cached by the caller.
func (c *Codec) Available() error {
	if _, err := exec.LookPath(c.ffmpegPath); err != nil {
		return &coreerrors.EncoderUnavailableError{Binary: c.ffmpegPath}
	}
	if _, err := exec.LookPath(c.ffprobePath); err != nil {
		return &coreerrors.EncoderUnavailableError{Binary: c.ffprobePath}
	}
	return nil
}

// Decode converts encoded audio bytes into a PCM clip
func (c *Codec) Decode(ctx context.Context, data []byte) (*domain.PCMClip, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("decode: empty input")
	}
	return c.runDecode(ctx, bytes.NewReader(data), "pipe:0")
}

// DecodeFile converts an audio file on disk into a PCM clip
func (c *Codec) DecodeFile(ctx context.Context, path string) (*domain.PCMClip, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("decode: empty path")
	}
	return c.runDecode(ctx, nil, path)
}

func (c *Codec) runDecode(ctx context.Context, stdin *bytes.Reader, input string) (*domain.PCMClip, error) {
	args := []string{
		"-hide_banner", "-loglevel", "error",
		"-i", input,
		"-vn",
		"-f", "s16le",
		"-acodec", "pcm_s16le",
		"-ac", strconv.Itoa(domain.PCMChannels),
		"-ar", strconv.Itoa(domain.PCMSampleRate),
		"pipe:1",
	}

	cmd := exec.CommandContext(ctx, c.ffmpegPath, args...)
	if stdin != nil {
		cmd.Stdin = stdin
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg decode: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	raw := stdout.Bytes()
	if len(raw) < 2 {
		return nil, fmt.Errorf("ffmpeg decode: no audio stream in input")
	}

	samples := make([]int16, len(raw)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(raw[2*i:]))
	}

	return &domain.PCMClip{
		SampleRate: domain.PCMSampleRate,
		Channels:   domain.PCMChannels,
		Samples:    samples,
	}, nil
}

// Encode writes the clip to path in the requested format at a fixed
// quality setting
func (c *Codec) Encode(ctx context.Context, clip *domain.PCMClip, format domain.AudioFormat, path string) error {
	if clip == nil || len(clip.Samples) == 0 {
		return fmt.Errorf("encode: empty clip")
	}
	if !format.Valid() {
		return fmt.Errorf("encode: unsupported format %q", string(format))
	}

	args := []string{
		"-hide_banner", "-loglevel", "error",
		"-f", "s16le",
		"-ar", strconv.Itoa(clip.SampleRate),
		"-ac", strconv.Itoa(clip.Channels),
		"-i", "pipe:0",
	}
	args = append(args, encoderArgs(format)...)
	args = append(args, "-y", path)

	raw := make([]byte, len(clip.Samples)*2)
	for i, s := range clip.Samples {
		binary.LittleEndian.PutUint16(raw[2*i:], uint16(s))
	}

	cmd := exec.CommandContext(ctx, c.ffmpegPath, args...)
	cmd.Stdin = bytes.NewReader(raw)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg encode: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// encoderArgs returns codec flags per output format
func encoderArgs(format domain.AudioFormat) []string {
	switch format {
	case domain.FormatWAV:
		return []string{"-codec:a", "pcm_s16le", "-f", "wav"}
	case domain.FormatFLAC:
		return []string{"-codec:a", "flac", "-f", "flac"}
	default:
		return []string{"-codec:a", "libmp3lame", "-q:a", "4", "-f", "mp3"}
	}
}
