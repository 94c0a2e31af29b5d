package transcriber

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"vidscribe/internal/logger"
)

// scriptedExecutor pretends to be the whisper binary: it writes an SRT file
// at the -of prefix and emits scripted stderr.
type scriptedExecutor struct {
	srt    string
	stderr string
	fail   bool
	args   []string
}

func (e *scriptedExecutor) Execute(ctx context.Context, name string, args ...string) (string, string, error) {
	e.args = args
	if e.fail {
		return "", e.stderr, errors.New("exit status 1")
	}
	for i, arg := range args {
		if arg == "-of" && i+1 < len(args) {
			if err := os.WriteFile(args[i+1]+".srt", []byte(e.srt), 0644); err != nil {
				return "", "", err
			}
		}
	}
	return "", e.stderr, nil
}

func testLogger() logger.Logger {
	return logger.New("error", os.Stderr)
}

func TestTranscribe(t *testing.T) {
	exec := &scriptedExecutor{
		srt:    "1\n00:00:00,000 --> 00:00:01,500\nHello\n\n",
		stderr: "whisper_full_with_state: auto-detected language: ja (p = 0.976396)\n",
	}
	tr := NewWhisper("whisper-cli", "models/ggml-base.bin", 4, exec, testLogger())

	segments, info, err := tr.Transcribe(context.Background(), "in.wav", Options{BeamSize: 5})
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if len(segments) != 1 || segments[0].Text != "Hello" {
		t.Errorf("segments = %+v", segments)
	}
	if info.Language != "ja" || info.Probability != 0.976396 {
		t.Errorf("info = %+v, want ja / 0.976396", info)
	}
}

func TestTranscribeFailure(t *testing.T) {
	exec := &scriptedExecutor{fail: true}
	tr := NewWhisper("whisper-cli", "models/ggml-base.bin", 0, exec, testLogger())

	if _, _, err := tr.Transcribe(context.Background(), "in.wav", Options{BeamSize: 5}); err == nil {
		t.Error("Transcribe() should propagate engine failure")
	}
}

func TestBuildArgs(t *testing.T) {
	tr := &whisperTranscriber{binaryPath: "whisper-cli", modelPath: "m.bin", threads: 8}

	args := tr.buildArgs("in.wav", "/tmp/prefix", Options{BeamSize: 5, Language: "ja"})
	joined := strings.Join(args, " ")

	for _, want := range []string{"-m m.bin", "-f in.wav", "-osrt", "-of /tmp/prefix", "-bs 5", "-t 8", "-l ja"} {
		if !strings.Contains(joined, want) {
			t.Errorf("args %q missing %q", joined, want)
		}
	}
}

func TestBuildArgsAutoLanguage(t *testing.T) {
	tr := &whisperTranscriber{binaryPath: "whisper-cli", modelPath: "m.bin"}

	args := tr.buildArgs("in.wav", "/tmp/prefix", Options{BeamSize: 5})
	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "-l auto") {
		t.Errorf("args %q should request auto-detection", joined)
	}
	if strings.Contains(joined, "-t ") {
		t.Errorf("args %q should omit threads when unset", joined)
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name     string
		stderr   string
		forced   string
		wantLang string
		wantProb float64
	}{
		{
			name:     "auto detected",
			stderr:   "noise\nauto-detected language: en (p = 0.950000)\nmore noise",
			wantLang: "en",
			wantProb: 0.95,
		},
		{
			name:     "forced language",
			stderr:   "no detection line",
			forced:   "ja",
			wantLang: "ja",
			wantProb: 1,
		},
		{
			name:     "nothing known",
			stderr:   "",
			wantLang: "unknown",
			wantProb: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := detectLanguage(tt.stderr, tt.forced)
			if info.Language != tt.wantLang || info.Probability != tt.wantProb {
				t.Errorf("detectLanguage() = %+v, want {%s %v}", info, tt.wantLang, tt.wantProb)
			}
		})
	}
}
