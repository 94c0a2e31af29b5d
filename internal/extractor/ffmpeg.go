package extractor

import (
	"context"
	"fmt"

	"vidscribe/internal/logger"
	"vidscribe/pkg/executor"
)

type ffmpegExtractor struct {
	binaryPath string
	executor   executor.Executor
	logger     logger.Logger
}

// NewFFmpeg creates an AudioExtractor backed by an ffmpeg binary.
func NewFFmpeg(binaryPath string, exec executor.Executor, log logger.Logger) AudioExtractor {
	return &ffmpegExtractor{
		binaryPath: binaryPath,
		executor:   exec,
		logger:     log,
	}
}

// Extract converts the video's audio track to mono 16kHz 16-bit PCM, the
// format the transcription engine expects.
func (e *ffmpegExtractor) Extract(ctx context.Context, videoPath, wavPath string) error {
	e.logger.Info(ctx, "Extracting audio: %s", videoPath)

	args := []string{
		"-i", videoPath,
		"-vn",
		"-ac", "1",
		"-ar", "16000",
		"-c:a", "pcm_s16le",
		"-y",
		wavPath,
	}

	if _, _, err := e.executor.Execute(ctx, e.binaryPath, args...); err != nil {
		return fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	e.logger.Info(ctx, "Audio extracted: %s", wavPath)
	return nil
}
