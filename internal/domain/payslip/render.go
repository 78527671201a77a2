package payslip

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"idms/internal/platform/money"
)

const detailRows = 6

type RendererOption func(*Renderer)

// WithStrictTotals makes Render reject records whose totals disagree
// with their line items.
func WithStrictTotals(strict bool) RendererOption {
	return func(r *Renderer) {
		r.strictTotals = strict
	}
}

// Renderer draws payslip records onto a single PDF page. It holds no
// mutable state and is safe for concurrent use.
type Renderer struct {
	layout       Layout
	strictTotals bool
}

func NewRenderer(layout Layout, opts ...RendererOption) *Renderer {
	r := &Renderer{layout: layout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) Layout() Layout {
	return r.layout
}

// Result carries the document plus the geometry it was drawn with.
type Result struct {
	PDF      []byte
	Pages    int
	HeaderY  float64
	GridTop  float64
	ItemRows int
	EndY     float64
}

func (r *Renderer) Render(rec Record) ([]byte, error) {
	res, err := r.RenderDetailed(rec)
	if err != nil {
		return nil, err
	}
	return res.PDF, nil
}

func (r *Renderer) RenderDetailed(rec Record) (Result, error) {
	if err := Validate(rec); err != nil {
		return Result{}, err
	}
	if r.strictTotals {
		if err := CheckTotals(rec); err != nil {
			return Result{}, err
		}
	}

	p := newPage(r.layout)
	res := Result{}
	y := r.layout.InitialY

	y = p.header(*rec.Company, y)
	res.HeaderY = y
	y = p.titleBar(rec.Month, y)
	res.GridTop = y
	y = p.detailGrid(*rec.Employee, y)
	y = p.tableHeader(y)
	y, res.ItemRows = p.itemRows(rec.Earnings, rec.Deductions, y)
	y = p.totalsRow(rec.TotalEarnings, rec.TotalDeductions, y)
	y = p.netPay(rec.NetPay, y)
	y = p.footer(rec.PrintDate, y)
	res.EndY = y
	if limit := r.layout.PageHeight - r.layout.Margin; y > limit {
		return Result{}, fmt.Errorf("%w: content ends at %.1fmm, page allows %.1fmm", ErrRender, y, limit)
	}

	var buf bytes.Buffer
	if err := p.pdf.Output(&buf); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrRender, err)
	}
	res.PDF = buf.Bytes()
	res.Pages = p.pdf.PageCount()
	return res, nil
}

type page struct {
	pdf *gofpdf.Fpdf
	l   Layout
	tr  func(string) string
}

func newPage(l Layout) *page {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: l.PageWidth, Ht: l.PageHeight},
	})
	pdf.SetCompression(l.Compress)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(l.CreationDate)
	pdf.SetTitle("Payslip", false)
	pdf.SetCreator("idms", false)
	pdf.SetMargins(l.Margin, l.InitialY, l.Margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetLineWidth(0.2)
	pdf.SetDrawColor(0, 0, 0)
	pdf.AddPage()
	// Core fonts are cp1252 encoded.
	return &page{pdf: pdf, l: l, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (p *page) font(style string, size float64) {
	p.pdf.SetFont(p.l.FontFamily, style, size)
}

func (p *page) right() float64 {
	return p.l.Margin + p.l.ContentWidth()
}

// baseline places text of the current font vertically centred in a box.
func (p *page) baseline(top, height float64) float64 {
	_, fontHeight := p.pdf.GetFontSize()
	return top + (height+fontHeight*0.7)/2
}

func (p *page) text(txt string, x, y float64) {
	p.pdf.Text(x, y, p.tr(txt))
}

func (p *page) textCentered(txt string, y float64) {
	txt = p.tr(txt)
	p.pdf.Text(p.l.CenterX()-p.pdf.GetStringWidth(txt)/2, y, txt)
}

func (p *page) textRight(txt string, x, y float64) {
	txt = p.tr(txt)
	p.pdf.Text(x-p.pdf.GetStringWidth(txt), y, txt)
}

func (p *page) splitBox(y, height float64, style string) {
	p.pdf.Rect(p.l.Margin, y, p.l.ContentWidth(), height, style)
	p.pdf.Line(p.l.CenterX(), y, p.l.CenterX(), y+height)
}

func (p *page) amount(d decimal.Decimal) string {
	return money.FormatAmount(d, p.l.Grouping)
}

func (p *page) header(c Company, y float64) float64 {
	start := y
	p.font("B", p.l.CompanyFontSize)
	p.textCentered(c.Name, y)
	y += p.l.LineHeight

	p.font("", p.l.BodyFontSize)
	for _, line := range strings.Split(c.Address, ", ") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		p.textCentered(line, y)
		y += p.l.AddressLineHeight
	}
	return max(y, start+p.l.MinHeaderHeight)
}

func (p *page) titleBar(month string, y float64) float64 {
	p.pdf.SetFillColor(p.l.FillGray, p.l.FillGray, p.l.FillGray)
	p.pdf.Rect(p.l.Margin, y, p.l.ContentWidth(), p.l.TitleBarHeight, "F")
	p.font("B", p.l.TitleFontSize)
	p.textCentered("PAYSLIP - "+strings.ToUpper(month), p.baseline(y, p.l.TitleBarHeight))
	return y + p.l.TitleBarHeight
}

type detailField struct {
	label string
	value string
}

func (p *page) detailGrid(e Employee, y float64) float64 {
	fb := p.l.Fallbacks
	rows := [detailRows][2]detailField{
		{{"Name", orFallback(e.Name, fb.Text)}, {"Employee No.", orFallback(e.ID, fb.Text)}},
		{{"Joining Date", orFallback(e.JoiningDate, fb.Text)}, {"PAN Number", orFallback(e.PAN, fb.Text)}},
		{{"Designation", orFallback(e.Designation, fb.Text)}, {"UAN", orFallback(e.UAN, fb.Text)}},
		{{"Department", orFallback(e.Department, fb.Text)}, {"Location", orFallback(e.Location, fb.Text)}},
		{{"Effective Work Days", workDaysText(e.WorkDays, fb.WorkDays)}, {"Bank", orFallback(e.Bank, fb.Text)}},
		{{"LOP", lossOfPayText(e.LossOfPay, fb.LossOfPay)}, {"Bank Account No.", orFallback(e.AccountNo, fb.Text)}},
	}

	height := detailRows * p.l.LineHeight
	p.splitBox(y, height, "D")
	p.font("", p.l.BodyFontSize)
	columns := [2]float64{p.l.Margin, p.l.CenterX()}
	for i, row := range rows {
		base := p.baseline(y+float64(i)*p.l.LineHeight, p.l.LineHeight)
		for col, field := range row {
			p.text(field.label+":", columns[col]+p.l.LabelOffset, base)
			p.text(field.value, columns[col]+p.l.ValueOffset, base)
		}
	}
	return y + height
}

func (p *page) tableHeader(y float64) float64 {
	p.splitBox(y, p.l.LineHeight, "D")
	p.font("B", p.l.BodyFontSize)
	base := p.baseline(y, p.l.LineHeight)
	p.text("Earnings", p.l.Margin+p.l.CellPadding, base)
	p.textRight("Actual", p.l.CenterX()-p.l.CellPadding, base)
	p.text("Deductions", p.l.CenterX()+p.l.CellPadding, base)
	p.textRight("Actual", p.right()-p.l.CellPadding, base)
	return y + p.l.LineHeight
}

func (p *page) itemRows(earnings, deductions []LineItem, y float64) (float64, int) {
	rows := max(len(earnings), len(deductions))
	p.font("", p.l.BodyFontSize)
	for i := range rows {
		p.splitBox(y, p.l.LineHeight, "D")
		base := p.baseline(y, p.l.LineHeight)
		if i < len(earnings) {
			p.text(earnings[i].Label+":", p.l.Margin+p.l.CellPadding, base)
			p.textRight(p.amount(earnings[i].Amount), p.l.CenterX()-p.l.CellPadding, base)
		}
		if i < len(deductions) {
			p.text(deductions[i].Label+":", p.l.CenterX()+p.l.CellPadding, base)
			p.textRight(p.amount(deductions[i].Amount), p.right()-p.l.CellPadding, base)
		}
		y += p.l.LineHeight
	}
	return y, rows
}

func (p *page) totalsRow(earnings, deductions decimal.Decimal, y float64) float64 {
	p.pdf.SetFillColor(p.l.FillGray, p.l.FillGray, p.l.FillGray)
	p.splitBox(y, p.l.LineHeight, "FD")
	p.font("B", p.l.BodyFontSize)
	base := p.baseline(y, p.l.LineHeight)
	p.text("Total Earnings:", p.l.Margin+p.l.CellPadding, base)
	p.textRight(p.amount(earnings), p.l.CenterX()-p.l.CellPadding, base)
	p.text("Total Deductions:", p.l.CenterX()+p.l.CellPadding, base)
	p.textRight(p.amount(deductions), p.right()-p.l.CellPadding, base)
	return y + p.l.LineHeight
}

func (p *page) netPay(net decimal.Decimal, y float64) float64 {
	height := 2 * p.l.LineHeight
	p.pdf.Rect(p.l.Margin, y, p.l.ContentWidth(), height, "D")

	p.font("B", p.l.BodyFontSize+1)
	base := p.baseline(y, p.l.LineHeight)
	p.text("NET PAY (Total Earnings - Total Deductions):", p.l.Margin+p.l.CellPadding, base)
	p.textRight(p.amount(net)+"/-", p.right()-p.l.CellPadding, base)

	p.font("", p.l.BodyFontSize)
	p.text("("+money.AmountInWords(net)+")", p.l.Margin+p.l.CellPadding, p.baseline(y+p.l.LineHeight, p.l.LineHeight))
	return y + height
}

func (p *page) footer(printDate string, y float64) float64 {
	y += p.l.FooterOffset
	p.font("", p.l.FooterFontSize)
	p.text(p.l.Disclaimer, p.l.Margin, y)
	p.textRight("Print Date: "+printDate, p.right(), y)
	return y
}

func orFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func workDaysText(days *int, fallback string) string {
	if days == nil {
		return fallback
	}
	return strconv.Itoa(*days)
}

func lossOfPayText(lop *decimal.Decimal, fallback string) string {
	if lop == nil {
		return fallback
	}
	return lop.String()
}
