package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteCSVDir writes one CSV file per sheet into dir, creating it if
// needed. File names are slugged sheet names.
func WriteCSVDir(dir string, sheets []Sheet) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir %s: %w", dir, err)
	}
	for _, sheet := range sheets {
		path := filepath.Join(dir, slug(sheet.Name)+".csv")
		if err := writeCSV(path, sheet); err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(path string, sheet Sheet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(sheet.Header); err != nil {
		return fmt.Errorf("write header of %s: %w", path, err)
	}
	for _, row := range sheet.Rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row of %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

func slug(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "/", "_")
	return s
}
