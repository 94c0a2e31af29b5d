package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Segment is one contiguous span of transcribed speech.
type Segment struct {
	Start float64 // seconds
	End   float64 // seconds
	Text  string
}

// FormatTimestamp renders seconds as an SRT timestamp, HH:MM:SS,mmm.
// Minutes and seconds wrap modularly; hours grow without bound so
// recordings longer than a day keep distinct timestamps.
func FormatTimestamp(sec float64) string {
	milliseconds := int(sec*1000) % 1000
	seconds := int(sec) % 60
	minutes := int(sec) / 60 % 60
	hours := int(sec) / 3600
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, milliseconds)
}

// Write renders segments as SRT entries: 1-based index, timestamp range,
// trimmed text, blank separator. Output is byte-identical across runs for
// the same input.
func Write(w io.Writer, segments []Segment) error {
	bw := bufio.NewWriter(w)
	for i, seg := range segments {
		fmt.Fprintf(bw, "%d\n", i+1)
		fmt.Fprintf(bw, "%s --> %s\n", FormatTimestamp(seg.Start), FormatTimestamp(seg.End))
		fmt.Fprintf(bw, "%s\n\n", strings.TrimSpace(seg.Text))
	}
	return bw.Flush()
}

// WriteFile renders segments to path, creating or truncating it.
func WriteFile(path string, segments []Segment) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, segments); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
