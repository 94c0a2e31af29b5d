package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"vidscribe/internal/batch"
	"vidscribe/internal/config"
	"vidscribe/internal/extractor"
	"vidscribe/internal/logger"
	"vidscribe/internal/scanner"
	"vidscribe/internal/summarizer"
	"vidscribe/internal/transcriber"
	"vidscribe/internal/watcher"
	"vidscribe/pkg/executor"
)

const configFile = "config.yaml"

// The batch entry point processes .mp4 files only; other containers go
// through the single-file tool.
var videoExts = []string{".mp4"}

func main() {
	ctx := context.Background()

	// Optional .env with GEMINI_API_KEYS; absence is fine.
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, logPath, err := newRunLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	runID := uuid.NewString()
	log.Info(ctx, "Run %s started, logging to %s", runID, logPath)

	root, err := resolveRoot(cfg)
	if err != nil {
		log.Error(ctx, "Failed to resolve root directory: %v", err)
		os.Exit(1)
	}
	log.Info(ctx, "Scanning root: %s", root)

	files, err := scanner.Scan(root, videoExts)
	if err != nil {
		// The only fatal error: the root itself is missing or unreadable.
		log.Error(ctx, "Scan failed: %v", err)
		os.Exit(1)
	}
	log.Info(ctx, "Found %d video file(s)", len(files))

	exec := executor.New()
	ext := extractor.NewFFmpeg(cfg.FFmpeg.BinaryPath, exec, log)
	tr := transcriber.NewWhisper(cfg.Whisper.BinaryPath, cfg.ModelPath(), cfg.Whisper.Threads, exec, log)

	var sum summarizer.Summarizer
	if cfg.Summary.Enabled {
		sum, err = newSummarizer(cfg, log)
		if err != nil {
			log.Warn(ctx, "Summaries disabled: %v", err)
		}
	}

	runner := batch.New(ext, tr, sum, cfg.Whisper.Language, cfg.Summary.Docx, log)
	res := runner.Run(ctx, files)

	if cfg.Batch.Watch {
		if err := runWatch(ctx, cfg, runner, root, log); err != nil && !errors.Is(err, context.Canceled) {
			log.Error(ctx, "Watch mode failed: %v", err)
		}
	}

	log.Info(ctx, "Run %s finished", runID)
	if cfg.Batch.StrictExit && res.Failed > 0 {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(configFile); err != nil {
		return config.Default(), nil
	}
	return config.Load(configFile)
}

// resolveRoot returns the configured root, or the executable's parent
// directory when none is configured.
func resolveRoot(cfg *config.Config) (string, error) {
	if cfg.Paths.Root != "" {
		return cfg.Paths.Root, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(filepath.Dir(exe)), nil
}

// newRunLogger builds the per-run log stream: a timestamp-named file in the
// configured log directory plus stdout. The file handle lives for the whole
// process; there is no teardown.
func newRunLogger(cfg *config.Config) (logger.Logger, string, error) {
	if err := os.MkdirAll(cfg.Paths.LogDir, 0755); err != nil {
		return nil, "", fmt.Errorf("create log directory: %w", err)
	}

	name := fmt.Sprintf("run_%s.log", time.Now().Format("20060102_150405"))
	path := filepath.Join(cfg.Paths.LogDir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, "", fmt.Errorf("open log file: %w", err)
	}

	return logger.New(cfg.Logging.Level, io.MultiWriter(os.Stdout, f)), path, nil
}

func newSummarizer(cfg *config.Config, log logger.Logger) (summarizer.Summarizer, error) {
	raw := os.Getenv("GEMINI_API_KEYS")
	var keys []string
	for _, key := range strings.Split(raw, ",") {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}
	return summarizer.NewGemini(keys, cfg.Summary.Model, log)
}

// runWatch keeps processing files created under root until SIGINT/SIGTERM.
func runWatch(ctx context.Context, cfg *config.Config, runner *batch.Runner, root string, log logger.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := watcher.New(root, videoExts, func(ctx context.Context, path string) error {
		return runner.ProcessFile(ctx, scanner.MediaFile{Path: path})
	}, log)
	if err != nil {
		return err
	}
	defer w.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- w.Start(ctx)
	}()

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
		cancel()
		return <-errChan
	case err := <-errChan:
		return err
	}
}
