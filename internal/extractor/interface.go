package extractor

import "context"

// AudioExtractor converts a video file into a waveform file the
// transcription engine can consume.
type AudioExtractor interface {
	Extract(ctx context.Context, videoPath, wavPath string) error
}
