// Package export renders registry snapshots to portable formats.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/abhisek/leadvane/internal/registry"
)

var csvHeader = []string{"name", "email", "score", "category", "key_info", "raw_input"}

// WriteCSV writes the records in registry order, header first.
func WriteCSV(w io.Writer, records []registry.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.Name,
			r.Email,
			strconv.Itoa(r.Score),
			string(r.Category),
			r.KeyInfo,
			r.RawInput,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
