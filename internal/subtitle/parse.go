package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var reTimestampLine = regexp.MustCompile(`^(\d+):(\d{2}):(\d{2}),(\d{3}) --> (\d+):(\d{2}):(\d{2}),(\d{3})$`)

// Parse reads SRT content back into segments. It tolerates CRLF line endings
// and trailing blank lines, and joins multi-line cues with a single space.
func Parse(r io.Reader) ([]Segment, error) {
	var segments []Segment

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		current  *Segment
		sawTimes bool
	)
	flush := func() {
		if current != nil && sawTimes {
			current.Text = strings.TrimSpace(current.Text)
			segments = append(segments, *current)
		}
		current = nil
		sawTimes = false
	}

	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			flush()
		case current == nil && isIndexLine(trimmed):
			current = &Segment{}
		case current != nil && !sawTimes:
			m := reTimestampLine.FindStringSubmatch(trimmed)
			if m == nil {
				return nil, fmt.Errorf("malformed timestamp line: %q", trimmed)
			}
			current.Start = timestampSeconds(m[1], m[2], m[3], m[4])
			current.End = timestampSeconds(m[5], m[6], m[7], m[8])
			sawTimes = true
		case current != nil:
			if current.Text != "" {
				current.Text += " "
			}
			current.Text += trimmed
		default:
			return nil, fmt.Errorf("unexpected line outside entry: %q", trimmed)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	flush()

	return segments, nil
}

func isIndexLine(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func timestampSeconds(h, m, s, ms string) float64 {
	hours, _ := strconv.Atoi(h)
	minutes, _ := strconv.Atoi(m)
	seconds, _ := strconv.Atoi(s)
	millis, _ := strconv.Atoi(ms)
	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000
}
