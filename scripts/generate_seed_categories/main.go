package main

import (
	"compress/gzip"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Writes a gzipped starter category list usable as SEED_CATEGORIES_FILE.
func main() {
	dataDir := "data/seed"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	categories := []string{
		"Electronics",
		"Office Supplies",
		"Tools",
		"Garden",
		"Cleaning",
		"Packaging",
	}

	filePath := filepath.Join(dataDir, "categories.txt.gz")
	if err := writeSeedFile(filePath, categories); err != nil {
		log.Fatalf("Failed to create %s: %v", filePath, err)
	}

	fmt.Printf("Created %s with %d categories\n", filePath, len(categories))
	fmt.Printf("\nStart the server with SEED_CATEGORIES_FILE=%s to load them into an empty database.\n", filePath)
}

func writeSeedFile(filePath string, names []string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)

	if _, err := fmt.Fprintln(gzipWriter, "# starter categories"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(gzipWriter, name); err != nil {
			return fmt.Errorf("failed to write category: %w", err)
		}
	}

	if err := gzipWriter.Close(); err != nil {
		return fmt.Errorf("failed to flush gzip stream: %w", err)
	}
	return nil
}
