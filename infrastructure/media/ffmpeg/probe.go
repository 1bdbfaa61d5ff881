// ABOUTME: Duration probe built on ffprobe's JSON output
// ABOUTME: Used to verify encoded output length against the decoded speech duration

package ffmpeg

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// probeResult is the subset of ffprobe's JSON output we read
type probeResult struct {
	Format struct {
		Duration   string `json:"duration"`
		FormatName string `json:"format_name"`
	} `json:"format"`
}

// ProbeDuration returns the container duration of the file at path in
// seconds, as measured by ffprobe.
func (c *Codec) ProbeDuration(ctx context.Context, path string) (float64, error) {
	if strings.TrimSpace(path) == "" {
		return 0, fmt.Errorf("ffprobe: empty path")
	}

	cmd := exec.CommandContext(ctx, c.ffprobePath,
		"-v", "error", "-hide_banner",
		"-show_format",
		"-of", "json",
		"--", path,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return 0, fmt.Errorf("ffprobe: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	var result probeResult
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		return 0, fmt.Errorf("ffprobe parse: %w", err)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(result.Format.Duration), 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe parse duration %q: %w", result.Format.Duration, err)
	}
	return duration, nil
}
