package logtail

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTail(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	for i := 0; i < 10; i++ {
		content.WriteString("0123456789\n")
	}
	all := content.String()
	if err := os.WriteFile(logPath, []byte(all), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxChars int
		expected string
	}{
		{name: "read all (0)", maxChars: 0, expected: all},
		{name: "read all (negative)", maxChars: -1, expected: all},
		{name: "read partial (5)", maxChars: 5, expected: "6789\n"},
		{name: "read exactly all (110)", maxChars: 110, expected: all},
		{name: "read more than exists (500)", maxChars: 500, expected: all},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found, err := Tail(logPath, tt.maxChars)
			if err != nil {
				t.Fatalf("Tail() error = %v", err)
			}
			if !found {
				t.Fatalf("Tail() found = false, want true")
			}
			if got != tt.expected {
				t.Errorf("Tail() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTail_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.log")

	got, found, err := Tail(path, 100)
	if err != nil {
		t.Fatalf("Tail() error = %v", err)
	}
	if found || got != "" {
		t.Fatalf("Tail() = (%q, %v), want (\"\", false)", got, found)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("Tail created %s (stat err = %v)", path, err)
	}
}

func TestTail_LargeFileReturnsExactTrailingWindow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.log")
	body := strings.Repeat("x", 30000) + strings.Repeat("y", 20000)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, _, err := Tail(path, 20000)
	if err != nil {
		t.Fatalf("Tail() error = %v", err)
	}
	if got != strings.Repeat("y", 20000) {
		t.Fatalf("Tail() returned %d chars starting %q, want 20000 y's", len(got), got[:10])
	}
}

func TestTail_MultibyteBoundary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "utf8.log")
	// 'é' is two bytes, '€' three; the byte window cuts through runes.
	body := strings.Repeat("é", 50) + strings.Repeat("€", 10) + "!"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, _, err := Tail(path, 12)
	if err != nil {
		t.Fatalf("Tail() error = %v", err)
	}
	want := "é" + strings.Repeat("€", 10) + "!"
	if got != want {
		t.Fatalf("Tail() = %q, want %q", got, want)
	}
}

func TestLastChars(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"", 3, ""},
		{"abc", 0, ""},
		{"abc", 5, "abc"},
		{"abcdef", 3, "def"},
		{"héllo", 4, "éllo"},
	}
	for _, tc := range cases {
		if got := LastChars(tc.in, tc.n); got != tc.want {
			t.Fatalf("LastChars(%q, %d) = %q, want %q", tc.in, tc.n, got, tc.want)
		}
	}
}
