package logtail

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// Tail returns at most maxChars characters from the end of the file at path.
// A non-positive maxChars returns the whole file. found is false, with a nil
// error, when the file does not exist.
func Tail(path string, maxChars int) (content string, found bool, err error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	if maxChars <= 0 {
		data, err := io.ReadAll(file)
		if err != nil {
			return "", true, fmt.Errorf("read log: %w", err)
		}
		return string(data), true, nil
	}

	info, err := file.Stat()
	if err != nil {
		return "", true, fmt.Errorf("stat log: %w", err)
	}

	// The last maxChars runes always fit in the last maxChars*UTFMax bytes.
	window := int64(maxChars) * utf8.UTFMax
	var offset int64
	if info.Size() > window {
		offset = info.Size() - window
	}
	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		return "", true, fmt.Errorf("seek log: %w", err)
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return "", true, fmt.Errorf("read log: %w", err)
	}
	if offset > 0 {
		for len(data) > 0 && !utf8.RuneStart(data[0]) {
			data = data[1:]
		}
	}
	return LastChars(string(data), maxChars), true, nil
}

// LastChars returns the trailing n characters (code points) of s.
func LastChars(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := len(s)
	for count := 0; count < n; count++ {
		_, size := utf8.DecodeLastRuneInString(s[:i])
		i -= size
	}
	return s[i:]
}
