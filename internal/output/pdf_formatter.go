package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/rpgo/coastfire-calculator/internal/domain"
)

const (
	pdfPageWidth    = 297.0 // A4 landscape
	pdfMarginLeft   = 12.0
	pdfMarginRight  = 12.0
	pdfMarginTop    = 12.0
	pdfMarginBottom = 15.0
	pdfContentWidth = pdfPageWidth - pdfMarginLeft - pdfMarginRight
	pdfGridColumns  = 10
)

// PDFFormatter renders a summary page, the chart series and a sampled grid.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(report *domain.Report) ([]byte, error) {
	r := &pdfReport{pdf: fpdf.New("L", "mm", "A4", ""), report: report}
	r.pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	r.pdf.SetAutoPageBreak(true, pdfMarginBottom)

	r.addSummaryPage()
	r.addChartTable()
	if report.Grid != nil && len(report.Grid.Rows) > 0 {
		r.addGridTable()
	}

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type pdfReport struct {
	pdf    *fpdf.Fpdf
	report *domain.Report
}

func (r *pdfReport) addSummaryPage() {
	in := r.report.Inputs
	r.pdf.AddPage()
	r.pdf.SetFont("Arial", "B", 24)
	r.pdf.SetTextColor(11, 122, 117)
	r.pdf.CellFormat(pdfContentWidth, 14, "CoastFIRE Projection", "", 1, "L", false, 0, "")

	r.pdf.SetFont("Arial", "I", 10)
	r.pdf.SetTextColor(90, 90, 90)
	r.pdf.CellFormat(pdfContentWidth, 6, "Generated: "+r.report.GeneratedAt.Format("2 January 2006 15:04"), "", 1, "L", false, 0, "")
	r.pdf.Ln(6)

	rows := [][2]string{
		{"Current Assets", FormatCurrency(in.CurrentAssets)},
		{"Current Age", intToString(in.CurrentAge)},
		{"Annual Spending", FormatCurrency(in.Spending)},
		{"Safe Withdrawal Rate", FormatPercentage(in.SWR)},
		{"Return / Inflation", FormatPercentage(in.ReturnRate) + " / " + FormatPercentage(in.Inflation)},
		{"Target Nest Egg", FormatAmount(r.report.Target)},
		{"Coast Age", FormatCoastAge(r.report.CoastAge)},
	}
	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.SetDrawColor(200, 200, 200)
	for _, row := range rows {
		r.pdf.SetFont("Arial", "B", 11)
		r.pdf.SetTextColor(29, 43, 54)
		r.pdf.CellFormat(70, 8, row[0], "1", 0, "L", true, 0, "")
		r.pdf.SetFont("Arial", "", 11)
		r.pdf.CellFormat(70, 8, row[1], "1", 1, "R", false, 0, "")
	}

	if len(r.report.Warnings) > 0 {
		r.pdf.Ln(6)
		r.pdf.SetFont("Arial", "B", 11)
		r.pdf.SetTextColor(179, 38, 30)
		r.pdf.MultiCell(pdfContentWidth, 6, strings.Join(r.report.Warnings, " "), "", "L", false)
	}
}

func (r *pdfReport) addChartTable() {
	r.pdf.AddPage()
	r.drawSectionHeader(fmt.Sprintf("Required vs. Coasting Assets at %s Spending", FormatCurrency(r.report.Chart.Spending)))
	headers := []string{"Age", "Required Today", "Current Assets", "Coasting Assets", "Target"}
	widths := []float64{25, 55, 55, 55, 55}
	r.drawTableHeader(headers, widths)
	for _, pt := range r.report.Chart.Points {
		r.drawTableRow([]string{
			intToString(pt.Age),
			FormatAmount(pt.RequiredToday),
			FormatAmount(pt.CurrentAssets),
			FormatAmount(pt.Coasting),
			FormatAmount(pt.Target),
		}, widths)
	}
}

func (r *pdfReport) addGridTable() {
	grid := r.report.Grid
	cols := sampleColumns(len(grid.Spending), pdfGridColumns)

	r.pdf.AddPage()
	r.drawSectionHeader("Required Assets Today by Retirement Age and Spending")

	headers := []string{"Age"}
	widths := []float64{25}
	colWidth := (pdfContentWidth - 25) / float64(len(cols))
	for _, j := range cols {
		headers = append(headers, FormatCurrency(grid.Spending[j]))
		widths = append(widths, colWidth)
	}
	r.drawTableHeader(headers, widths)
	for _, row := range grid.Rows {
		cells := []string{intToString(row.Age)}
		for _, j := range cols {
			cells = append(cells, FormatCompact(row.Cells[j]))
		}
		r.drawTableRow(cells, widths)
	}
}

func (r *pdfReport) drawSectionHeader(title string) {
	r.pdf.SetFont("Arial", "B", 14)
	r.pdf.SetTextColor(11, 122, 117)
	r.pdf.CellFormat(pdfContentWidth, 10, title, "", 1, "L", false, 0, "")
	r.pdf.SetDrawColor(11, 122, 117)
	r.pdf.Line(pdfMarginLeft, r.pdf.GetY(), pdfMarginLeft+pdfContentWidth, r.pdf.GetY())
	r.pdf.Ln(3)
}

func (r *pdfReport) drawTableHeader(headers []string, widths []float64) {
	r.pdf.SetFillColor(11, 122, 117)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 8)
	for i, header := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 6, header, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *pdfReport) drawTableRow(cells []string, widths []float64) {
	r.pdf.SetFillColor(250, 250, 250)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.SetFont("Arial", "", 8)
	for i, cell := range cells {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 5, cell, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}
