// Package export renders analytic reports as xlsx workbooks.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/analytics"
)

// Sheet names in workbook order.
const (
	SheetOverview        = "Overview"
	SheetDelays          = "Order Delays"
	SheetCancellations   = "Cancellations"
	SheetStockouts       = "Stockouts"
	SheetRiders          = "Rider Performance"
	SheetRecommendations = "Recommendations"
)

type styleSet struct {
	title  int
	header int
	text   int
	number int
}

func boxBorder() []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	borders := make([]excelize.Border, 0, len(sides))
	for _, s := range sides {
		borders = append(borders, excelize.Border{Type: s, Style: 1, Color: "000000"})
	}
	return borders
}

func newStyles(f *excelize.File) (styleSet, error) {
	var st styleSet
	var err error

	st.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E7E6E6"}},
	})
	if err != nil {
		return st, err
	}

	st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    boxBorder(),
	})
	if err != nil {
		return st, err
	}

	st.text, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Border:    boxBorder(),
	})
	if err != nil {
		return st, err
	}

	numFmt := "0.00"
	st.number, err = f.NewStyle(&excelize.Style{
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:       boxBorder(),
		CustomNumFmt: &numFmt,
	})
	return st, err
}

// sheetWriter writes styled cells to one sheet, keeping the first
// error and ignoring the rest.
type sheetWriter struct {
	f    *excelize.File
	name string
	st   styleSet
	err  error
}

func (w *sheetWriter) cell(col, row int, v any, style int) {
	if w.err != nil {
		return
	}
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}
	if err := w.f.SetCellValue(w.name, ref, v); err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetCellStyle(w.name, ref, ref, style)
}

func (w *sheetWriter) headers(row int, labels ...string) {
	for i, label := range labels {
		w.cell(i+1, row, label, w.st.header)
	}
}

func (w *sheetWriter) colWidth(col string, width float64) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetColWidth(w.name, col, col, width)
}

// Workbook renders the report as a six-sheet xlsx file.
func Workbook(rep *analytics.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	st, err := newStyles(f)
	if err != nil {
		return nil, fmt.Errorf("create styles: %w", err)
	}

	if err := f.SetSheetName("Sheet1", SheetOverview); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{SheetDelays, SheetCancellations, SheetStockouts, SheetRiders, SheetRecommendations} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("add sheet %s: %w", name, err)
		}
	}

	writers := []func(*sheetWriter, *analytics.Report){
		writeOverview,
		writeDelays,
		writeCancellations,
		writeStockouts,
		writeRiders,
		writeRecommendations,
	}
	names := []string{SheetOverview, SheetDelays, SheetCancellations, SheetStockouts, SheetRiders, SheetRecommendations}
	for i, write := range writers {
		w := &sheetWriter{f: f, name: names[i], st: st}
		write(w, rep)
		if w.err != nil {
			return nil, fmt.Errorf("write sheet %s: %w", names[i], w.err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeOverview(w *sheetWriter, rep *analytics.Report) {
	w.colWidth("A", 30)
	w.colWidth("B", 20)

	w.cell(1, 1, "Quick Commerce Analytics Report", w.st.title)
	w.cell(1, 2, "Generated: "+rep.GeneratedAt.Format("2006-01-02 15:04"), w.st.text)

	w.headers(5, "Metric", "Value")
	metrics := []struct {
		label string
		value float64
	}{
		{"Total Orders", float64(rep.Overview.TotalOrders)},
		{"Delivered Orders", float64(rep.Overview.DeliveredOrders)},
		{"Cancelled Orders", float64(rep.Overview.CancelledOrders)},
		{"Cancellation Rate", rep.Overview.CancellationRate},
		{"Avg Delivery Time", rep.Overview.AvgDeliveryTime},
		{"Avg Delay", rep.Overview.AvgDelay},
		{"On Time Rate", rep.Overview.OnTimeRate},
		{"Stockout Rate", rep.Overview.StockoutRate},
	}
	for i, m := range metrics {
		w.cell(1, 6+i, m.label, w.st.text)
		w.cell(2, 6+i, m.value, w.st.number)
	}
}

func writeDelays(w *sheetWriter, rep *analytics.Report) {
	w.colWidth("A", 30)
	w.colWidth("B", 15)

	w.cell(1, 1, "Order Delays Analysis", w.st.title)

	w.headers(4, "Delay Category", "Count")
	dist := []struct {
		label string
		count int
	}{
		{"On Time", rep.Delays.Distribution.OnTime},
		{"Slight Delay", rep.Delays.Distribution.Slight},
		{"Moderate Delay", rep.Delays.Distribution.Moderate},
		{"Severe Delay", rep.Delays.Distribution.Severe},
	}
	row := 5
	for _, d := range dist {
		w.cell(1, row, d.label, w.st.text)
		w.cell(2, row, d.count, w.st.number)
		row++
	}

	row += 2
	w.headers(row, "Zone", "Avg Delay (min)", "Order Count")
	row++
	for _, z := range rep.Delays.ByZone {
		w.cell(1, row, z.Zone, w.st.text)
		w.cell(2, row, z.AvgDelay, w.st.number)
		w.cell(3, row, z.Count, w.st.number)
		row++
	}
}

func writeCancellations(w *sheetWriter, rep *analytics.Report) {
	w.colWidth("A", 30)
	w.colWidth("B", 15)

	w.cell(1, 1, "Cancellation Analysis", w.st.title)

	w.headers(4, "Reason", "Count")
	for i, r := range rep.Cancellations.ByReason {
		w.cell(1, 5+i, r.Reason, w.st.text)
		w.cell(2, 5+i, r.Count, w.st.number)
	}
}

func writeStockouts(w *sheetWriter, rep *analytics.Report) {
	w.colWidth("A", 40)
	w.colWidth("B", 20)
	w.colWidth("C", 20)

	w.cell(1, 1, "Stockout Analysis", w.st.title)

	w.headers(4, "Product Name", "Department", "Stockout Count")
	for i, p := range rep.Stockouts.TopProducts {
		w.cell(1, 5+i, p.Product, w.st.text)
		w.cell(2, 5+i, p.Department, w.st.text)
		w.cell(3, 5+i, p.Count, w.st.number)
	}
}

func writeRiders(w *sheetWriter, rep *analytics.Report) {
	w.colWidth("A", 25)
	for _, col := range []string{"B", "C", "D"} {
		w.colWidth(col, 20)
	}

	w.cell(1, 1, "Rider Performance Analysis", w.st.title)

	w.headers(4, "Rider Name", "Zone", "Total Deliveries", "Avg Delay (min)")
	for i, r := range rep.Riders.TopPerformers {
		w.cell(1, 5+i, r.Name, w.st.text)
		w.cell(2, 5+i, r.Zone, w.st.text)
		w.cell(3, 5+i, r.TotalDeliveries, w.st.number)
		w.cell(4, 5+i, r.AvgDelay, w.st.number)
	}
}

func writeRecommendations(w *sheetWriter, rep *analytics.Report) {
	w.colWidth("A", 20)
	w.colWidth("B", 15)
	w.colWidth("C", 50)
	w.colWidth("D", 50)

	w.cell(1, 1, "Data-Driven Recommendations", w.st.title)

	w.headers(4, "Category", "Priority", "Issue", "Recommendation")
	for i, r := range rep.Recommendations {
		w.cell(1, 5+i, r.Category, w.st.text)
		w.cell(2, 5+i, string(r.Priority), w.st.text)
		w.cell(3, 5+i, r.Issue, w.st.text)
		w.cell(4, 5+i, r.Recommendation, w.st.text)
	}
}
