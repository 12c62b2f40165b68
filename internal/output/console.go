// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// Print writes each paper to w as a separator line followed by one
// "Column: value" line per field.
func Print(w io.Writer, papers []types.Paper) {
	sep := strings.Repeat("-", 50)
	for _, p := range papers {
		fmt.Fprintln(w, sep)
		for i, v := range p.Row() {
			fmt.Fprintf(w, "%s: %s\n", types.Columns[i], v)
		}
	}
}
