package export

import (
	"errors"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/abhisek/leadvane/internal/registry"
	"github.com/abhisek/leadvane/internal/scoring"
)

// ErrNoRecords means there is nothing to chart.
var ErrNoRecords = errors.New("no records to chart")

var tierColors = map[scoring.Tier]drawing.Color{
	scoring.TierLead:     drawing.ColorFromHex("6c8ebf"),
	scoring.TierGold:     drawing.ColorFromHex("d6b656"),
	scoring.TierPlatinum: drawing.ColorFromHex("9673a6"),
}

// WriteTierChart renders a PNG pie chart of records per tier. Tiers with no
// records are omitted from the chart.
func WriteTierChart(w io.Writer, records []registry.Record) error {
	if len(records) == 0 {
		return ErrNoRecords
	}

	counts := make(map[scoring.Tier]int)
	for _, r := range records {
		counts[r.Category]++
	}

	var values []chart.Value
	for _, tier := range scoring.AllTiers() {
		n := counts[tier]
		if n == 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: string(tier),
			Value: float64(n),
			Style: chart.Style{FillColor: tierColors[tier]},
		})
	}

	pie := chart.PieChart{
		Title:  "Customers by tier",
		Width:  512,
		Height: 512,
		Values: values,
	}
	return pie.Render(chart.PNG, w)
}
