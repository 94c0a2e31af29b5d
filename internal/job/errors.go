package job

import "fmt"

// ExtractionError reports an audio extraction failure for one file.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract audio from %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// TranscriptionError reports a transcription failure for one file.
type TranscriptionError struct {
	Path string
	Err  error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcribe %s: %v", e.Path, e.Err)
}

func (e *TranscriptionError) Unwrap() error { return e.Err }

// WriteError reports a failure writing or publishing a subtitle artifact.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write subtitle for %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// SummaryError reports a summarization failure for one file. The subtitle
// artifact is unaffected; only the summary is skipped.
type SummaryError struct {
	Path string
	Err  error
}

func (e *SummaryError) Error() string {
	return fmt.Sprintf("summarize %s: %v", e.Path, e.Err)
}

func (e *SummaryError) Unwrap() error { return e.Err }
