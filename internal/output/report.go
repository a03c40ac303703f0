package output

import (
	"fmt"
	"strings"
)

// GenerateReport writes the report in the requested format to a timestamped file in dir
// and returns the written paths. Format "all" writes the console and projection CSV reports.
func GenerateReport(report *Report, format, dir string) ([]string, error) {
	if dir == "" {
		dir = "."
	}
	if NormalizeFormatName(format) == "all" {
		var paths []string
		for _, name := range []string{"console", "projection-csv"} {
			p, err := WriteFormatted(GetFormatterByName(name), report, dir, FileExtension(name))
			if err != nil {
				return paths, err
			}
			paths = append(paths, p)
		}
		return paths, nil
	}
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	p, err := WriteFormatted(f, report, dir, FileExtension(format))
	if err != nil {
		return nil, err
	}
	return []string{p}, nil
}
