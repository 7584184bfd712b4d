// Package note loads the raw learning note that feeds the posting pipeline.
package note

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// ErrEmpty reports a note file that exists but contains no usable text.
var ErrEmpty = errors.New("note file contains no text")

// dayMarkerRe matches a leading progress marker such as "Day 12:".
var dayMarkerRe = regexp.MustCompile(`^Day\s+(\d+)\s*:`)

// RawNote is the untouched note text plus the progress day parsed from its
// first line. Day is 0 when the note carries no marker.
type RawNote struct {
	Text string
	Day  int
}

// InputError reports an unreadable or empty note file.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("read note %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// Load reads the note at path. Surrounding whitespace is trimmed but the text
// is otherwise left exactly as written, so a "Day N:" marker survives for the
// later stages to preserve.
func Load(path string) (RawNote, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RawNote{}, &InputError{Path: path, Err: err}
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return RawNote{}, &InputError{Path: path, Err: ErrEmpty}
	}
	n := RawNote{Text: text}
	if m := dayMarkerRe.FindStringSubmatch(text); m != nil {
		if day, convErr := strconv.Atoi(m[1]); convErr == nil {
			n.Day = day
		}
	}
	return n, nil
}
