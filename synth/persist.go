package synth

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// csvHeader is the column contract of the output artifact.
var csvHeader = []string{
	"id",
	"query",
	"dimension_tuple_json",
	"query_type",
	"is_realistic_and_kept",
	"notes_for_filtering",
}

// OutputPath combines the base name with the current timestamp under dir,
// creating dir if it does not exist yet.
func OutputPath(dir, baseName string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	return filepath.Join(dir, fmt.Sprintf("%s_%s.csv", baseName, timestamp)), nil
}

// WriteCSV persists the records as one CSV file at path, one row per record.
// Given no records it logs and returns without creating a file; a zero-row
// artifact is never produced.
func WriteCSV(path string, records []QueryRecord, logger *slog.Logger) error {
	if len(records) == 0 {
		logger.Info("No queries to save")
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, record := range records {
		tupleJSON := ""
		if record.Tuple != nil {
			tupleJSON = record.Tuple.Canonical()
		}

		kept := "0"
		if record.Kept {
			kept = "1"
		}

		row := []string{
			record.ID,
			record.Query,
			tupleJSON,
			string(record.Category),
			kept,
			record.Note,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write record %s: %w", record.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush output file: %w", err)
	}

	logger.Info("Saved queries", "count", len(records), "path", path)

	return nil
}
