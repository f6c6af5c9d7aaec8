package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"
)

// Alignment is a table column alignment
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// RenderTable renders rows under headers with rounded borders. Missing
// cells render empty.
func RenderTable(headers []string, rows [][]string, aligns []Alignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := range headers {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == AlignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// TableFormatter renders a report as terminal tables
type TableFormatter struct {
	opts Options
}

// NewTableFormatter creates a table formatter
func NewTableFormatter(opts Options) *TableFormatter {
	return &TableFormatter{opts: opts}
}

// Format returns FormatTable
func (f *TableFormatter) Format() Format {
	return FormatTable
}

// Render writes the report
func (f *TableFormatter) Render(w io.Writer, report *Report) error {
	var b strings.Builder

	switch f.opts.View {
	case ViewHopRates:
		f.renderHopRates(&b, report)
	default:
		f.renderBitterness(&b, report)
	}

	if len(report.FileErrors) > 0 {
		b.WriteString("\nFiles that could not be read:\n")
		for _, e := range report.FileErrors {
			fmt.Fprintf(&b, "  %s: %s\n", e.File, e.Message)
		}
	}
	if len(report.FileWarnings) > 0 {
		b.WriteString("\nWarnings:\n")
		for _, e := range report.FileWarnings {
			fmt.Fprintf(&b, "  %s: %s\n", e.File, e.Message)
		}
	}

	s := report.Summary
	fmt.Fprintf(&b, "\n%d recipes: %d ok, %d underspecified, %d malformed\n",
		s.Recipes, s.OK, s.Underspecified, s.Malformed)
	if s.Underspecified > 0 {
		b.WriteString("Underspecified recipes need measured gravities; pass them with --measurements.\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (f *TableFormatter) renderBitterness(b *strings.Builder, report *Report) {
	headers := []string{"File", "Recipe", "Method", "Pre-boil SG", "OG", "IBU", "Style IBU", "Status"}
	aligns := []Alignment{AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight, AlignLeft}

	rows := make([][]string, 0, len(report.Recipes))
	for _, r := range report.Recipes {
		method := r.Method
		if r.MethodDefaulted {
			method += " (default)"
		}
		status := string(r.Status)
		if r.Error != "" {
			status += ": " + r.Error
		}
		rows = append(rows, []string{
			r.File,
			r.Name,
			method,
			fixed(r.PreBoilGravity, gravityPlaces),
			fixed(r.OriginalGravity, gravityPlaces),
			fixed(r.TotalIBU, ibuPlaces),
			styleCell(r),
			status,
		})
	}
	b.WriteString(RenderTable(headers, rows, aligns))
	b.WriteString("\n")

	if !f.opts.ShowHops {
		return
	}
	for _, r := range report.Recipes {
		if len(r.Hops) == 0 {
			continue
		}
		fmt.Fprintf(b, "\n%s\n", r.Name)
		b.WriteString(renderHops(r.Hops))
		b.WriteString("\n")
	}
}

func renderHops(hops []HopResult) string {
	headers := []string{"Hop", "Use", "Time (min)", "Amount (g)", "Alpha %", "Avg Vol (L)", "Avg SG", "IBU"}
	aligns := []Alignment{AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight, AlignRight, AlignRight}

	rows := make([][]string, 0, len(hops))
	for _, h := range hops {
		row := []string{
			h.Name,
			h.Use,
			h.Time.String(),
			h.Amount.StringFixed(massPlaces),
			h.Alpha.StringFixed(massPlaces),
		}
		if h.Bittering {
			row = append(row,
				h.Volume.StringFixed(volumePlaces),
				h.Gravity.StringFixed(gravityPlaces),
				h.IBU.StringFixed(ibuPlaces),
			)
		} else {
			row = append(row, "-", "-", "-")
		}
		rows = append(rows, row)
	}
	return RenderTable(headers, rows, aligns)
}

func (f *TableFormatter) renderHopRates(b *strings.Builder, report *Report) {
	headers := []string{"File", "Recipe", "Largest addition", "g/L"}
	aligns := []Alignment{AlignLeft, AlignLeft, AlignLeft, AlignRight}

	rows := make([][]string, 0, len(report.Recipes))
	for _, r := range report.Recipes {
		rows = append(rows, []string{r.File, r.Name, r.MaxHopName, fixed(r.MaxHopRate, ratePlaces)})
	}
	b.WriteString(RenderTable(headers, rows, aligns))
	b.WriteString("\n")

	if rate := report.Summary.MaxHopRate; rate != nil {
		fmt.Fprintf(b, "\nLargest single hop addition: %s g/L (%s)\n",
			rate.StringFixed(ratePlaces), report.Summary.MaxHopRecipe)
	}
}

func styleCell(r RecipeResult) string {
	if r.StyleIBU == "" {
		return "-"
	}
	if r.InStyle != nil && !*r.InStyle {
		return r.StyleIBU + " (out)"
	}
	return r.StyleIBU
}

func fixed(d *decimal.Decimal, places int32) string {
	if d == nil {
		return "-"
	}
	return d.StringFixed(places)
}
