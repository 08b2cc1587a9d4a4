// Package seed bootstraps an empty category table from a line-per-name file,
// read from the local file system or from S3.
package seed

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"strings"
)

// Loader defines the interface for loading seed files.
type Loader interface {
	// Load reads a seed file and returns its entries in file order.
	Load(ctx context.Context, name string) ([]string, error)
}

// isGzipped reports whether a file or key name denotes gzip content.
func isGzipped(name string) bool {
	return strings.HasSuffix(name, ".gz")
}

// readEntries reads one entry per line. Surrounding whitespace is trimmed;
// blank lines and lines starting with '#' are skipped.
func readEntries(ctx context.Context, r io.Reader, gzipped bool) ([]string, error) {
	if gzipped {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	entries := []string{}
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lines: %w", err)
	}

	return entries, nil
}
