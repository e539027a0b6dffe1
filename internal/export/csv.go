// Package export renders tabular data as semicolon-delimited CSV, the
// format the agency's spreadsheet templates expect.  Fields containing
// the delimiter, a double quote or a newline are quoted, and embedded
// quotes are escaped by doubling, so a standard CSV reader configured
// with a ';' comma recovers the values exactly.
package export

import (
	"encoding/csv"
	"io"
)

// Delimiter used for all exports.
const Delimiter = ';'

// Write streams a header row followed by data rows to w.
func Write(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	cw.Comma = Delimiter
	if len(header) > 0 {
		if err := cw.Write(header); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
