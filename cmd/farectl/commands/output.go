package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/models"
)

const (
	outputJSON  = "json"
	outputTable = "table"
)

func printReport(w io.Writer, format string, report models.FareReport) error {
	switch format {
	case outputTable:
		renderTable(w, report)
		return nil
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(models.NewFareEnvelope(report))
	}
}

// renderTable prints one row per option. A failed provider gets a single row
// carrying its error.
func renderTable(w io.Writer, report models.FareReport) {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("%s -> %s", orDash(report.Request.OriginName()), orDash(report.Request.DestinationName())))
	t.AppendHeader(table.Row{"Provider", "Fleet", "Price"})

	for _, name := range report.Providers() {
		res, _ := report.Result(name)
		if res.Failed() {
			t.AppendRow(table.Row{name, "-", "error: " + res.Error})
			continue
		}
		for _, o := range res.Options {
			t.AppendRow(table.Row{name, o.FleetLabel, o.PriceText})
		}
		t.AppendSeparator()
	}

	t.AppendFooter(table.Row{"", "Report", report.ID.String()})
	t.Render()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
