// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// WriteCSV writes a header row and one row per paper to w. Rows end in
// CRLF.
func WriteCSV(w io.Writer, papers []types.Paper) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(types.Columns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, p := range papers {
		if err := cw.Write(p.Row()); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", p.PubmedID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeCSVFile(path string, papers []types.Paper) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteCSV(f, papers); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
