package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"vidscribe/internal/logger"
	"vidscribe/internal/subtitle"
	"vidscribe/pkg/executor"
)

// whisper.cpp prints detection results like:
//   auto-detected language: ja (p = 0.976396)
var reDetectedLanguage = regexp.MustCompile(`auto-detected language: (\w+) \(p = ([0-9.]+)\)`)

type whisperTranscriber struct {
	binaryPath string
	modelPath  string
	threads    int
	executor   executor.Executor
	logger     logger.Logger
}

// NewWhisper creates a Transcriber backed by a whisper.cpp binary and a
// ggml model file. threads <= 0 leaves the engine's default in place.
func NewWhisper(binaryPath, modelPath string, threads int, exec executor.Executor, log logger.Logger) Transcriber {
	return &whisperTranscriber{
		binaryPath: binaryPath,
		modelPath:  modelPath,
		threads:    threads,
		executor:   exec,
		logger:     log,
	}
}

// Transcribe runs the engine against wavPath and returns its segments in
// emission order. The engine writes an SRT file into a private workspace
// that is parsed and removed before returning; the caller owns all
// rendering to durable paths.
func (t *whisperTranscriber) Transcribe(ctx context.Context, wavPath string, opts Options) ([]subtitle.Segment, Info, error) {
	workDir, err := os.MkdirTemp("", "vidscribe-*")
	if err != nil {
		return nil, Info{}, fmt.Errorf("create workspace: %w", err)
	}
	defer os.RemoveAll(workDir)

	outPrefix := filepath.Join(workDir, "segments")

	t.logger.Info(ctx, "Transcribing (beam size %d): %s", opts.BeamSize, wavPath)

	args := t.buildArgs(wavPath, outPrefix, opts)
	_, stderr, err := t.executor.Execute(ctx, t.binaryPath, args...)
	if err != nil {
		return nil, Info{}, fmt.Errorf("whisper transcribe: %w", err)
	}

	srtFile, err := os.Open(outPrefix + ".srt")
	if err != nil {
		return nil, Info{}, fmt.Errorf("whisper completed but produced no output: %w", err)
	}
	defer srtFile.Close()

	segments, err := subtitle.Parse(srtFile)
	if err != nil {
		return nil, Info{}, fmt.Errorf("parse whisper output: %w", err)
	}

	info := detectLanguage(stderr, opts.Language)
	t.logger.Info(ctx, "Detected language %q (probability %.2f), %d segments",
		info.Language, info.Probability, len(segments))

	return segments, info, nil
}

func (t *whisperTranscriber) buildArgs(wavPath, outPrefix string, opts Options) []string {
	args := []string{
		"-m", t.modelPath,
		"-f", wavPath,
		"-osrt",
		"-of", outPrefix,
	}
	if opts.BeamSize > 0 {
		args = append(args, "-bs", strconv.Itoa(opts.BeamSize))
	}
	if t.threads > 0 {
		args = append(args, "-t", strconv.Itoa(t.threads))
	}
	lang := strings.TrimSpace(opts.Language)
	if lang == "" {
		lang = "auto"
	}
	args = append(args, "-l", lang)
	return args
}

// detectLanguage scrapes the engine's stderr for the auto-detection line.
// A forced language is reported back with probability 1.
func detectLanguage(stderr, forced string) Info {
	if m := reDetectedLanguage.FindStringSubmatch(stderr); m != nil {
		p, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			p = 0
		}
		return Info{Language: m[1], Probability: p}
	}
	if forced != "" {
		return Info{Language: forced, Probability: 1}
	}
	return Info{Language: "unknown"}
}
