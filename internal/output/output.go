// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output renders qualifying papers to the console or to a file.
// CSV is the default file format; JSON, YAML and SQLite are written only
// when asked for by name, or by FormatAuto from the file extension.
package output

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// Format identifies an output file format.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatSQLite Format = "sqlite"

	// FormatAuto picks the format from the file extension.
	FormatAuto Format = "auto"
)

// ParseFormat validates a user-supplied format name. The empty string
// selects CSV.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return FormatCSV, nil
	case FormatCSV, FormatJSON, FormatYAML, FormatSQLite, FormatAuto:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q: use csv, json, yaml, sqlite, or auto", s)
	}
}

// FormatFor infers the format from path's extension, defaulting to CSV.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatCSV
	}
}

// Report is the document written by the structured formats.
type Report struct {
	Query   string        `json:"query" yaml:"query"`
	Summary Summary       `json:"summary" yaml:"summary"`
	Papers  []types.Paper `json:"papers" yaml:"papers"`
}

// Summary records how many identifiers were searched and how many papers
// qualified.
type Summary struct {
	Searched    int       `json:"searched" yaml:"searched"`
	Total       int       `json:"total" yaml:"total"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
}

// NewReport builds a Report for papers found by query among searched IDs.
func NewReport(query string, searched int, papers []types.Paper) Report {
	return Report{
		Query: query,
		Summary: Summary{
			Searched:    searched,
			Total:       len(papers),
			GeneratedAt: time.Now().UTC(),
		},
		Papers: papers,
	}
}

// WriteFile writes r to path in format f. An empty f writes CSV whatever the
// extension; FormatAuto infers the format from path. Existing files are
// replaced.
func WriteFile(path string, f Format, r Report) error {
	if f == FormatAuto {
		f = FormatFor(path)
	}
	switch f {
	case "", FormatCSV:
		return writeCSVFile(path, r.Papers)
	case FormatJSON:
		return writeJSONFile(path, r)
	case FormatYAML:
		return writeYAMLFile(path, r)
	case FormatSQLite:
		return writeSQLiteFile(path, r.Papers)
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}
