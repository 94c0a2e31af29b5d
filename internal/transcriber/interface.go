package transcriber

import (
	"context"

	"vidscribe/internal/subtitle"
)

// Options configures one transcription call.
type Options struct {
	BeamSize int
	Language string // empty means auto-detect
}

// Info carries detected-language metadata for one transcription.
type Info struct {
	Language    string
	Probability float64
}

// Transcriber converts a waveform file into ordered, timed segments.
type Transcriber interface {
	Transcribe(ctx context.Context, wavPath string, opts Options) ([]subtitle.Segment, Info, error)
}
