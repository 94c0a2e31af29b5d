package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vidscribe/internal/config"
	"vidscribe/internal/extractor"
	"vidscribe/internal/logger"
	"vidscribe/internal/subtitle"
	"vidscribe/internal/transcriber"
	"vidscribe/pkg/executor"
)

var (
	videoExts = map[string]bool{".mp4": true, ".mkv": true, ".mov": true, ".avi": true}
	audioExts = map[string]bool{".wav": true, ".mp3": true, ".ogg": true, ".flac": true}
)

func main() {
	model := flag.String("model", "base", "whisper model size (tiny, base, small, medium, large-v3)")
	language := flag.String("language", "", "language code hint (e.g. en, ja); auto-detect when empty")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-model SIZE] [-language CODE] <input_file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	inputFile := flag.Arg(0)

	ctx := context.Background()
	cfg := config.Default()
	cfg.Whisper.Model = *model

	log := logger.New(cfg.Logging.Level, os.Stdout)

	ext := strings.ToLower(filepath.Ext(inputFile))
	switch {
	case videoExts[ext]:
		transcribeVideo(ctx, cfg, inputFile, *language, log)
	case audioExts[ext]:
		transcribeAudio(ctx, cfg, inputFile, inputFile, *language, log)
	default:
		log.Error(ctx, "Unsupported file format: %s", ext)
	}
}

// transcribeVideo extracts a temporary waveform first, then transcribes it.
// The waveform is removed whether or not transcription succeeds.
func transcribeVideo(ctx context.Context, cfg *config.Config, inputFile, language string, log logger.Logger) {
	exec := executor.New()
	ffmpeg := extractor.NewFFmpeg(cfg.FFmpeg.BinaryPath, exec, log)

	stem := strings.TrimSuffix(inputFile, filepath.Ext(inputFile))
	tempWav := stem + ".temp.wav"

	if err := ffmpeg.Extract(ctx, inputFile, tempWav); err != nil {
		log.Error(ctx, "Audio extraction failed: %v", err)
		return
	}
	defer func() {
		if err := os.Remove(tempWav); err != nil {
			log.Warn(ctx, "Failed to remove temp waveform %s: %v", tempWav, err)
		}
	}()

	transcribeAudio(ctx, cfg, tempWav, inputFile, language, log)
}

// transcribeAudio transcribes a waveform and writes <stem of target>.srt.
func transcribeAudio(ctx context.Context, cfg *config.Config, wavPath, target, language string, log logger.Logger) {
	exec := executor.New()
	tr := transcriber.NewWhisper(cfg.Whisper.BinaryPath, cfg.ModelPath(), cfg.Whisper.Threads, exec, log)

	segments, info, err := tr.Transcribe(ctx, wavPath, transcriber.Options{
		BeamSize: cfg.Whisper.BeamSize,
		Language: language,
	})
	if err != nil {
		log.Error(ctx, "Transcription failed: %v", err)
		return
	}
	log.Info(ctx, "Detected language %q (probability %.2f)", info.Language, info.Probability)

	srtPath := strings.TrimSuffix(target, filepath.Ext(target)) + ".srt"
	if err := subtitle.WriteFile(srtPath, segments); err != nil {
		log.Error(ctx, "Failed to write subtitle: %v", err)
		return
	}

	log.Info(ctx, "Subtitle saved: %s", srtPath)
}
