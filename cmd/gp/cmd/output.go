package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/donaldgifford/grocery-prices/internal/aggregate"
	apiclient "github.com/donaldgifford/grocery-prices/internal/api/client"
	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printPricesTable(w io.Writer, prices []domain.PriceRecord) error {
	tw := newTabWriter(w)
	tw.writef("VENDOR\tITEM\tSIZE\tREGULAR\tPROMO\tAVAILABILITY\n")
	for i := range prices {
		p := &prices[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			p.Vendor,
			truncate(p.ItemName, 40),
			deref(p.UnitLabel),
			money(p.RegularPrice),
			money(p.PromoPrice),
			availability(p.Availability),
		)
	}
	return tw.finish()
}

func printLocationsTable(w io.Writer, locations []domain.LocationRecord) error {
	tw := newTabWriter(w)
	tw.writef("VENDOR\tID\tNAME\tADDRESS\tDISTANCE\n")
	for i := range locations {
		l := &locations[i]
		distance := "-"
		if l.DistanceMiles != nil {
			distance = fmt.Sprintf("%.1f mi", *l.DistanceMiles)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			l.Vendor,
			l.LocationID,
			truncate(l.Name, 30),
			formatAddress(l.Address),
			distance,
		)
	}
	return tw.finish()
}

func printSourcesTable(w io.Writer, sources []aggregate.SourceStatus) error {
	tw := newTabWriter(w)
	tw.writef("SOURCE\tSTATUS\tCOUNT\tDURATION\tERROR\n")
	for i := range sources {
		s := &sources[i]
		tw.writef("%s\t%s\t%d\t%dms\t%s\n",
			s.Vendor,
			s.Status,
			s.Count,
			s.DurationMs,
			truncate(s.Error, 60),
		)
	}
	return tw.finish()
}

func printVendorsTable(w io.Writer, vendors []apiclient.Vendor) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tCAPABILITIES\tLIMIT\tQUOTA\n")
	for i := range vendors {
		v := &vendors[i]
		quota := "-"
		if v.Quota != nil {
			quota = fmt.Sprintf("%d/%d", v.Quota.DailyUsed, v.Quota.DailyLimit)
		}
		tw.writef("%s\t%s\t%s\t%d\t%s\n",
			v.ID,
			v.DisplayName,
			strings.Join(v.Capabilities, ","),
			v.ResultLimit,
			quota,
		)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func money(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	return "$" + d.StringFixed(2)
}

func availability(a *domain.AvailabilityStatus) string {
	if a == nil {
		return "-"
	}
	return string(*a)
}

func deref(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func formatAddress(a domain.Address) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{a.Line1, a.City, strings.TrimSpace(a.State + " " + a.ZipCode)} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
