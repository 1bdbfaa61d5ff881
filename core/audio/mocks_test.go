// ABOUTME: Hand-rolled codec and logger fakes for mixer tests
// ABOUTME: The codec fake records encode calls so tests can inspect the written clip

package audio

import (
	"context"
	"errors"

	"briefing-api/core/domain"
)

type encodeCall struct {
	clip   *domain.PCMClip
	format domain.AudioFormat
	path   string
}

// mockCodec satisfies interfaces.AudioCodec without touching any encoder binary
type mockCodec struct {
	availableErr    error
	decodeClip      *domain.PCMClip
	decodeErr       error
	fileClips       map[string]*domain.PCMClip
	fileErr         error
	encodeErr       error
	encodeCalls     []encodeCall
	decodeFileCalls []string
}

func (m *mockCodec) Decode(ctx context.Context, data []byte) (*domain.PCMClip, error) {
	if m.decodeErr != nil {
		return nil, m.decodeErr
	}
	return m.decodeClip, nil
}

func (m *mockCodec) DecodeFile(ctx context.Context, path string) (*domain.PCMClip, error) {
	m.decodeFileCalls = append(m.decodeFileCalls, path)
	if m.fileErr != nil {
		return nil, m.fileErr
	}
	if clip, ok := m.fileClips[path]; ok {
		return clip, nil
	}
	return nil, errors.New("no clip registered for path")
}

func (m *mockCodec) Encode(ctx context.Context, clip *domain.PCMClip, format domain.AudioFormat, path string) error {
	m.encodeCalls = append(m.encodeCalls, encodeCall{clip: clip, format: format, path: path})
	return m.encodeErr
}

func (m *mockCodec) Available() error {
	return m.availableErr
}

// nopLogger discards everything
type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}
