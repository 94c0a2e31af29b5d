package job

// State is the explicit lifecycle of a per-file transcription job.
type State int

const (
	StatePending State = iota
	StateExtractingAudio
	StateTranscribing
	StateWriting
	StatePublishing
	StateDone
	StateSkipped
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateExtractingAudio:
		return "extracting_audio"
	case StateTranscribing:
		return "transcribing"
	case StateWriting:
		return "writing"
	case StatePublishing:
		return "publishing"
	case StateDone:
		return "done"
	case StateSkipped:
		return "skipped"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the job has finished in this state.
func (s State) Terminal() bool {
	return s == StateDone || s == StateSkipped || s == StateFailed
}
