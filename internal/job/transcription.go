package job

import (
	"context"
	"os"

	"vidscribe/internal/extractor"
	"vidscribe/internal/logger"
	"vidscribe/internal/scanner"
	"vidscribe/internal/subtitle"
	"vidscribe/internal/transcriber"
)

// TranscriptionJob drives one media file through
// extraction → transcription → writing → publish → cleanup.
//
// The final subtitle path is only ever produced by an atomic rename of the
// fully written temporary subtitle, so a final artifact observed on disk is
// guaranteed complete. Temporary paths never outlive a run.
type TranscriptionJob struct {
	media       scanner.MediaFile
	artifacts   ArtifactSet
	extractor   extractor.AudioExtractor
	transcriber transcriber.Transcriber
	language    string
	logger      logger.Logger
	state       State
}

// NewTranscriptionJob creates a job for one media file. language is an
// optional hint passed through to the transcriber.
func NewTranscriptionJob(
	media scanner.MediaFile,
	ext extractor.AudioExtractor,
	tr transcriber.Transcriber,
	language string,
	log logger.Logger,
) *TranscriptionJob {
	return &TranscriptionJob{
		media:       media,
		artifacts:   ArtifactsFor(media),
		extractor:   ext,
		transcriber: tr,
		language:    language,
		logger:      log,
		state:       StatePending,
	}
}

// State returns the job's current state.
func (j *TranscriptionJob) State() State { return j.state }

// Artifacts returns the paths this job operates on.
func (j *TranscriptionJob) Artifacts() ArtifactSet { return j.artifacts }

// Run executes the state machine to a terminal state. The returned error is
// non-nil exactly when the terminal state is Failed; it is typed
// (*ExtractionError, *TranscriptionError, *WriteError) for the stage that
// failed. Temporary artifacts are removed on every exit path.
func (j *TranscriptionJob) Run(ctx context.Context) (State, error) {
	defer j.finalize(ctx)

	if _, err := os.Stat(j.artifacts.FinalSubtitle); err == nil {
		j.logger.Info(ctx, "Subtitle already exists, skipping: %s", j.artifacts.FinalSubtitle)
		j.transition(ctx, StateSkipped)
		return j.state, nil
	}

	j.transition(ctx, StateExtractingAudio)
	if err := j.extractor.Extract(ctx, j.media.Path, j.artifacts.TempWaveform); err != nil {
		return j.fail(ctx, &ExtractionError{Path: j.media.Path, Err: err})
	}

	j.transition(ctx, StateTranscribing)
	segments, info, err := j.transcriber.Transcribe(ctx, j.artifacts.TempWaveform, transcriber.Options{
		BeamSize: 5,
		Language: j.language,
	})
	if err != nil {
		return j.fail(ctx, &TranscriptionError{Path: j.media.Path, Err: err})
	}
	j.logger.Info(ctx, "Language %q (probability %.2f): %s", info.Language, info.Probability, j.media.Path)

	j.transition(ctx, StateWriting)
	if err := subtitle.WriteFile(j.artifacts.TempSubtitle, segments); err != nil {
		return j.fail(ctx, &WriteError{Path: j.media.Path, Err: err})
	}

	j.transition(ctx, StatePublishing)
	if err := os.Rename(j.artifacts.TempSubtitle, j.artifacts.FinalSubtitle); err != nil {
		return j.fail(ctx, &WriteError{Path: j.media.Path, Err: err})
	}
	if err := os.Remove(j.artifacts.TempWaveform); err != nil {
		j.logger.Warn(ctx, "Failed to remove temp waveform %s: %v", j.artifacts.TempWaveform, err)
	}

	j.transition(ctx, StateDone)
	j.logger.Info(ctx, "Subtitle published: %s", j.artifacts.FinalSubtitle)
	return j.state, nil
}

func (j *TranscriptionJob) transition(ctx context.Context, next State) {
	j.logger.Debug(ctx, "Job %s: %s -> %s", j.media.Path, j.state, next)
	j.state = next
}

func (j *TranscriptionJob) fail(ctx context.Context, err error) (State, error) {
	j.logger.Error(ctx, "Job failed in state %s: %v", j.state, err)
	j.transition(ctx, StateFailed)
	return j.state, err
}

// finalize removes temporary artifacts regardless of how the run ended.
func (j *TranscriptionJob) finalize(ctx context.Context) {
	for _, path := range []string{j.artifacts.TempWaveform, j.artifacts.TempSubtitle} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := os.Remove(path); err != nil {
			j.logger.Warn(ctx, "Failed to clean up temp file %s: %v", path, err)
		} else {
			j.logger.Debug(ctx, "Cleaned up temp file: %s", path)
		}
	}
}
