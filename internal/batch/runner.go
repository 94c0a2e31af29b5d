package batch

import (
	"context"

	"vidscribe/internal/extractor"
	"vidscribe/internal/job"
	"vidscribe/internal/logger"
	"vidscribe/internal/scanner"
	"vidscribe/internal/summarizer"
	"vidscribe/internal/transcriber"
)

// Runner processes a snapshot of media files strictly sequentially. Every
// per-file failure is caught, logged with the file identity, and counted;
// one bad file never stops the batch.
type Runner struct {
	extractor   extractor.AudioExtractor
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer // nil disables summaries
	language    string
	docx        bool
	logger      logger.Logger
}

// Result tallies the outcome of one batch run.
type Result struct {
	Total     int
	Done      int
	Skipped   int
	Failed    int
	Summaries int
}

// New creates a Runner. Pass a nil Summarizer to run transcription only.
func New(
	ext extractor.AudioExtractor,
	tr transcriber.Transcriber,
	sum summarizer.Summarizer,
	language string,
	docx bool,
	log logger.Logger,
) *Runner {
	return &Runner{
		extractor:   ext,
		transcriber: tr,
		summarizer:  sum,
		language:    language,
		docx:        docx,
		logger:      log,
	}
}

// Run processes every file in the snapshot. Files appearing on disk after
// the snapshot was taken are not picked up.
func (r *Runner) Run(ctx context.Context, files []scanner.MediaFile) Result {
	res := Result{Total: len(files)}

	for i, file := range files {
		r.logger.Info(ctx, "Processing file %d/%d: %s", i+1, len(files), file.Path)
		r.processOne(ctx, file, &res)
		r.logger.Info(ctx, "Finished file %d/%d: %s", i+1, len(files), file.Path)
	}

	r.logger.Info(ctx, "Batch complete: %d done, %d skipped, %d failed of %d",
		res.Done, res.Skipped, res.Failed, res.Total)
	return res
}

// ProcessFile runs the per-file jobs outside a snapshot, for watch mode.
func (r *Runner) ProcessFile(ctx context.Context, file scanner.MediaFile) error {
	var res Result
	r.processOne(ctx, file, &res)
	return nil
}

func (r *Runner) processOne(ctx context.Context, file scanner.MediaFile, res *Result) {
	tj := job.NewTranscriptionJob(file, r.extractor, r.transcriber, r.language, r.logger)
	state, err := tj.Run(ctx)
	switch {
	case err != nil:
		r.logger.Error(ctx, "Transcription failed for %s: %v", file.Path, err)
		res.Failed++
		return
	case state == job.StateSkipped:
		res.Skipped++
	default:
		res.Done++
	}

	if r.summarizer == nil {
		return
	}

	sj := job.NewSummaryJob(file, r.summarizer, r.docx, r.logger)
	if err := sj.Run(ctx); err != nil {
		// Summary failures skip the summary only; the subtitle stands.
		r.logger.Error(ctx, "Summary failed for %s: %v", file.Path, err)
		return
	}
	res.Summaries++
}
