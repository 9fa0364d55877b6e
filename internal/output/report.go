package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/pillar-calculator/internal/domain"
)

// GenerateReport writes the comparison to a timestamped file in dir and returns the file names.
// The pseudo format "all" writes the verbose console report and the detailed CSV.
func GenerateReport(results *domain.Comparison, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, f := range []Formatter{ConsoleVerboseFormatter{}, CSVDetailedExporter{}} {
			name, err := WriteFormatted(f, results, dir, FileExtension(f))
			if err != nil {
				return files, err
			}
			files = append(files, name)
		}
		return files, nil
	}
	f, err := lookup(format)
	if err != nil {
		return nil, err
	}
	name, err := WriteFormatted(f, results, dir, FileExtension(f))
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}

// Render writes the formatted comparison to w.
func Render(w io.Writer, results *domain.Comparison, format string) error {
	f, err := lookup(format)
	if err != nil {
		return err
	}
	data, err := f.Format(results)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Lookup resolves a format name or alias to a formatter.
func Lookup(format string) (Formatter, error) { return lookup(format) }

func lookup(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	// enrich error with available formatters and aliases
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
