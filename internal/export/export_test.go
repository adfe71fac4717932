package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"testing"

	"github.com/abhisek/leadvane/internal/registry"
	"github.com/abhisek/leadvane/internal/scoring"
)

func sampleRecords() []registry.Record {
	return []registry.Record{
		{
			Name:     "Sarah",
			Email:    "sarah@acme.com",
			RawInput: "CTO Sarah [sarah@acme.com] ready to buy $50K Q2",
			KeyInfo:  "CTO | $50K | Q2 | HIGH INTENT",
			Score:    95,
			Category: scoring.TierPlatinum,
		},
		{
			Name:     "Jo",
			Email:    "jo@gmail.com",
			RawInput: "Add Jo jo@gmail.com",
			KeyInfo:  "N/A",
			Score:    70,
			Category: scoring.TierLead,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleRecords()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}
	if rows[0][0] != "name" || rows[0][2] != "score" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][1] != "sarah@acme.com" || rows[1][2] != "95" || rows[1][3] != "Platinum" {
		t.Errorf("unexpected first row: %v", rows[1])
	}
	if rows[2][0] != "Jo" || rows[2][4] != "N/A" {
		t.Errorf("unexpected second row: %v", rows[2])
	}
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil || len(rows) != 1 {
		t.Errorf("want header only, got %v (err %v)", rows, err)
	}
}

func TestWriteTierChart(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTierChart(&buf, sampleRecords()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// PNG magic bytes.
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a png")
	}
}

func TestWriteTierChart_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTierChart(&buf, nil)
	if !errors.Is(err, ErrNoRecords) {
		t.Errorf("got %v, want ErrNoRecords", err)
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written on error")
	}
}
