// Package parsers turns raw procfs text into typed values. Every function
// here is pure: input is a string or byte slice already read from the
// accounting source, output is a value or an error. File access lives in
// the collector so these stay trivially testable with fixture text.
package parsers

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// DefaultReadCap bounds reads of accounting files. Procfs files report
// size 0 to stat, so the only safe way to read them is a capped read with
// explicit truncation detection.
const DefaultReadCap = 1 << 20 // 1 MiB

// ErrTruncated reports that an accounting file exceeded the read cap.
// Parsing a partial file would silently produce wrong numbers, so callers
// get an explicit error instead.
var ErrTruncated = errors.New("accounting file exceeds read cap")

// ReadFileCapped reads path into a dynamically-grown buffer of at most
// readCap bytes. A readCap <= 0 falls back to DefaultReadCap.
func ReadFileCapped(path string, readCap int) ([]byte, error) {
	if readCap <= 0 {
		readCap = DefaultReadCap
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Read one byte past the cap so truncation is detectable.
	data, err := io.ReadAll(io.LimitReader(f, int64(readCap)+1))
	if err != nil {
		return nil, err
	}
	if len(data) > readCap {
		return nil, fmt.Errorf("%s: %w", path, ErrTruncated)
	}
	return data, nil
}
