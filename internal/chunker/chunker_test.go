package chunker

import (
	"strings"
	"testing"
)

func TestBlocksFiltersStructure(t *testing.T) {
	input := "1\n00:00:00,000 --> 00:00:01,500\nHello there\n\n" +
		"2\n00:00:01,500 --> 00:00:03,000\nWorld\n\n"

	blocks := Blocks(input)
	if len(blocks) != 1 {
		t.Fatalf("Blocks() returned %d blocks, want 1", len(blocks))
	}
	want := []string{"Hello there", "World"}
	if len(blocks[0]) != len(want) {
		t.Fatalf("block has %d lines, want %d", len(blocks[0]), len(want))
	}
	for i := range want {
		if blocks[0][i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, blocks[0][i], want[i])
		}
	}
}

func TestBlocksDropsDigitOnlyProse(t *testing.T) {
	// Known heuristic: a spoken line of pure digits/punctuation is
	// indistinguishable from SRT structure and gets dropped.
	blocks := Blocks("42\n1,2,3.\nactual words")
	if len(blocks) != 1 || len(blocks[0]) != 1 || blocks[0][0] != "actual words" {
		t.Errorf("Blocks() = %v, want single block [actual words]", blocks)
	}
}

func TestBlocksEmptyInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"only structure", "1\n00:00:00,000 --> 00:00:01,000\n\n2\n"},
		{"only blanks", "\n\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if blocks := Blocks(tt.input); len(blocks) != 0 {
				t.Errorf("Blocks(%q) = %v, want none", tt.input, blocks)
			}
		})
	}
}

func TestBlocksRoundTrip(t *testing.T) {
	var lines []string
	for i := 0; i < 5000; i++ {
		lines = append(lines, strings.Repeat("spoken words ", 10))
	}
	input := strings.Join(lines, "\n")

	blocks := Blocks(input)
	if len(blocks) < 2 {
		t.Fatalf("expected multiple blocks, got %d", len(blocks))
	}

	var joined []string
	for _, block := range blocks {
		joined = append(joined, block...)
	}
	if strings.Join(joined, "\n") != input {
		t.Error("joining all blocks does not reconstruct the filtered transcript")
	}
}

func TestBlocksSizeBound(t *testing.T) {
	var lines []string
	for i := 0; i < 3000; i++ {
		lines = append(lines, strings.Repeat("x", 100)+" words")
	}

	blocks := Blocks(strings.Join(lines, "\n"))
	for i, block := range blocks {
		if size := len(Join(block)); size > MaxBlockBytes {
			t.Errorf("block %d is %d bytes, exceeds %d", i, size, MaxBlockBytes)
		}
	}
}

func TestBlocksOversizedLine(t *testing.T) {
	huge := strings.Repeat("a", MaxBlockBytes+100)
	input := "before\n" + huge + "\nafter"

	blocks := Blocks(input)
	if len(blocks) != 3 {
		t.Fatalf("Blocks() returned %d blocks, want 3", len(blocks))
	}
	if blocks[0][0] != "before" {
		t.Errorf("first block = %q, want %q", blocks[0][0], "before")
	}
	if blocks[1][0] != huge {
		t.Error("oversized line was not kept whole in its own block")
	}
	if blocks[2][0] != "after" {
		t.Errorf("last block = %q, want %q", blocks[2][0], "after")
	}
}
