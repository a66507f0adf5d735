// Package input loads puzzle text from disk.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrFileUnreadable wraps any failure to open or read an input file.
var ErrFileUnreadable = errors.New("input: file unreadable")

// ReadString returns the whole file with line endings normalised to "\n".
func ReadString(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrFileUnreadable, path, err)
	}
	return strings.ReplaceAll(string(b), "\r\n", "\n"), nil
}

// ReadLines returns the file's lines without terminators. A trailing
// newline does not produce an empty final line.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileUnreadable, path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFileUnreadable, path, err)
	}

	return lines, nil
}
