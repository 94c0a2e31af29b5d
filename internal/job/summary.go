package job

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"vidscribe/internal/chunker"
	"vidscribe/internal/logger"
	"vidscribe/internal/scanner"
	"vidscribe/internal/summarizer"
)

// SummaryJob reads a file's published subtitle, summarizes it block by
// block, and publishes the joined result as the final summary artifact.
type SummaryJob struct {
	media      scanner.MediaFile
	artifacts  ArtifactSet
	summarizer summarizer.Summarizer
	docx       bool
	logger     logger.Logger
}

// NewSummaryJob creates a summary job for one media file. When docx is set,
// a .docx rendering is written alongside the text artifact.
func NewSummaryJob(media scanner.MediaFile, sum summarizer.Summarizer, docx bool, log logger.Logger) *SummaryJob {
	return &SummaryJob{
		media:      media,
		artifacts:  ArtifactsFor(media),
		summarizer: sum,
		docx:       docx,
		logger:     log,
	}
}

// Run produces the summary artifact. It is a no-op when the subtitle is
// missing (nothing to summarize yet) or the summary already exists. Blocks
// are summarized strictly in order; any failure aborts the whole job with a
// *SummaryError and leaves no partial summary behind.
func (j *SummaryJob) Run(ctx context.Context) error {
	if _, err := os.Stat(j.artifacts.FinalSubtitle); err != nil {
		j.logger.Debug(ctx, "No subtitle to summarize: %s", j.artifacts.FinalSubtitle)
		return nil
	}
	if _, err := os.Stat(j.artifacts.FinalSummary); err == nil {
		j.logger.Info(ctx, "Summary already exists, skipping: %s", j.artifacts.FinalSummary)
		return nil
	}

	data, err := os.ReadFile(j.artifacts.FinalSubtitle)
	if err != nil {
		return &SummaryError{Path: j.media.Path, Err: err}
	}

	blocks := chunker.Blocks(string(data))
	if len(blocks) == 0 {
		j.logger.Info(ctx, "Transcript has no prose to summarize: %s", j.artifacts.FinalSubtitle)
		return nil
	}

	j.logger.Info(ctx, "Summarizing %d block(s): %s", len(blocks), j.media.Path)

	summaries := make([]string, 0, len(blocks))
	for i, block := range blocks {
		j.logger.Debug(ctx, "Summarizing block %d/%d", i+1, len(blocks))
		summary, err := j.summarizer.Summarize(ctx, chunker.Join(block))
		if err != nil {
			return &SummaryError{Path: j.media.Path, Err: err}
		}
		summaries = append(summaries, strings.TrimSpace(summary))
	}

	if err := j.publish(ctx, strings.Join(summaries, "\n\n")); err != nil {
		return &SummaryError{Path: j.media.Path, Err: err}
	}

	j.logger.Info(ctx, "Summary published: %s", j.artifacts.FinalSummary)
	return nil
}

// publish stages the joined summary and renames it into place, mirroring
// the subtitle publish barrier.
func (j *SummaryJob) publish(ctx context.Context, text string) error {
	tempPath := j.artifacts.FinalSummary + ".tmp"
	defer func() {
		if _, err := os.Stat(tempPath); err == nil {
			if err := os.Remove(tempPath); err != nil {
				j.logger.Warn(ctx, "Failed to clean up temp summary %s: %v", tempPath, err)
			}
		}
	}()

	if err := os.WriteFile(tempPath, []byte(text+"\n"), 0644); err != nil {
		return err
	}
	if err := os.Rename(tempPath, j.artifacts.FinalSummary); err != nil {
		return err
	}

	if j.docx {
		title := strings.TrimSuffix(filepath.Base(j.media.Path), filepath.Ext(j.media.Path))
		docxPath := j.media.Stem() + "_summary.docx"
		if err := summarizer.RenderDocx(title, text, docxPath); err != nil {
			j.logger.Warn(ctx, "Failed to write docx summary %s: %v", docxPath, err)
		}
	}

	return nil
}
