package recorder

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/five82/keylog/internal/logtail"
)

// DefaultPath is the log file used when no path is configured. Relative
// paths resolve against the process working directory.
const DefaultPath = "keystrokes.log"

const (
	timestampLayout      = "2006-01-02T15:04:05"
	timestampMicroLayout = "2006-01-02T15:04:05.000000"
)

// Recorder appends timestamped event descriptions to a plaintext log file.
type Recorder struct {
	path  string
	clock func() time.Time
}

// Option customises a Recorder.
type Option func(*Recorder)

// WithClock overrides the time source used for entry timestamps.
func WithClock(clock func() time.Time) Option {
	return func(r *Recorder) {
		if clock != nil {
			r.clock = clock
		}
	}
}

// Info describes the current state of the log file on disk.
type Info struct {
	Exists  bool
	Size    int64
	ModTime time.Time
}

// New returns a Recorder writing to path.
func New(path string, opts ...Option) (*Recorder, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("log path must not be empty")
	}
	r := &Recorder{path: path, clock: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Path returns the log file path.
func (r *Recorder) Path() string {
	return r.path
}

// Record appends one entry for description. The file is opened in append
// mode, created when missing, and closed before Record returns.
func (r *Recorder) Record(description string) error {
	line := FormatLine(r.clock(), description)

	file, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	if _, err := file.WriteString(line); err != nil {
		_ = file.Close()
		return fmt.Errorf("append log: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close log: %w", err)
	}
	return nil
}

// FormatLine renders a complete log entry, including the trailing newline.
func FormatLine(t time.Time, description string) string {
	return FormatTimestamp(t) + " " + description + "\n"
}

// FormatTimestamp renders t in UTC as ISO-8601 with a trailing Z. The
// fractional part carries microseconds and is omitted when they are zero.
func FormatTimestamp(t time.Time) string {
	utc := t.UTC()
	if utc.Nanosecond()/int(time.Microsecond) == 0 {
		return utc.Format(timestampLayout) + "Z"
	}
	return utc.Format(timestampMicroLayout) + "Z"
}

// Stat reports whether the log file exists and how large it is.
func (r *Recorder) Stat() (Info, error) {
	info, err := os.Stat(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Info{}, nil
		}
		return Info{}, fmt.Errorf("stat log: %w", err)
	}
	return Info{Exists: true, Size: info.Size(), ModTime: info.ModTime()}, nil
}

// Tail returns at most maxChars characters from the end of the log. found is
// false when the log file does not exist; nothing is created in that case.
func (r *Recorder) Tail(maxChars int) (content string, found bool, err error) {
	return logtail.Tail(r.path, maxChars)
}

// Clear deletes the log file. A missing file is not an error.
func (r *Recorder) Clear() error {
	if err := os.Remove(r.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete log: %w", err)
	}
	return nil
}
