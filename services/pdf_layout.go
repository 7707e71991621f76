// services/pdf_layout.go
package services

import (
	"strconv"

	"swiftinvoice-backend/models"
)

// The layout engine turns a fully loaded invoice into an ordered list of
// absolute-positioned draw operations on one A4 page. It is pure: given the
// same invoice, totals and logo bytes it always emits the same sequence. It
// never touches the network or the database.
//
// Item lists are assumed to fit a single page; overflow behavior is
// unspecified.

type OpKind int

const (
	OpText OpKind = iota
	OpRect
	OpImage
)

// RGB is an sRGB color with 0-255 channels.
type RGB struct {
	R, G, B int
}

// DrawOp is one primitive: place text, fill a rectangle, or place an image.
// Fields are interpreted per kind; coordinates are points from the top-left
// of the page.
type DrawOp struct {
	Kind OpKind

	X, Y float64
	W, H float64

	// OpText
	Text  string
	Size  float64
	Bold  bool
	Align string // "L" or "R"
	Color RGB

	// OpRect
	Fill RGB

	// OpImage
	Image []byte
}

// Column is one fixed-width item-table column.
type Column struct {
	Label string
	X     float64
	Width float64
}

// LayoutConfig carries every coordinate and color the engine uses. It is an
// explicit value, passed in per call, so tests can supply alternate layouts.
type LayoutConfig struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64

	HeaderBandHeight float64
	HeaderBandFill   RGB

	LogoX     float64
	LogoY     float64
	LogoWidth float64

	TitleSize float64
	MetaSize  float64

	BillToY    float64
	LineHeight float64

	TableTop      float64
	TableWidth    float64
	RowHeight     float64
	HeaderRowFill RGB
	StripeFill    RGB
	Columns       []Column

	TotalsLabelX float64
	FooterGap    float64

	TextColor  RGB
	MutedColor RGB
}

// DefaultLayout mirrors the layout the frontend previews: A4 in points,
// 50pt margins, five-column item table, light-gray header row and stripes.
func DefaultLayout() LayoutConfig {
	return LayoutConfig{
		PageWidth:  595,
		PageHeight: 842,
		Margin:     50,

		HeaderBandHeight: 120,
		HeaderBandFill:   RGB{243, 244, 246}, // #f3f4f6

		LogoX:     50,
		LogoY:     50,
		LogoWidth: 90,

		TitleSize: 24,
		MetaSize:  10,

		BillToY:    150,
		LineHeight: 15,

		TableTop:      250,
		TableWidth:    530,
		RowHeight:     20,
		HeaderRowFill: RGB{243, 244, 246}, // #f3f4f6
		StripeFill:    RGB{248, 250, 252}, // #f8fafc
		Columns: []Column{
			{Label: "Item", X: 50, Width: 200},
			{Label: "Description", X: 250, Width: 140},
			{Label: "Qty", X: 390, Width: 50},
			{Label: "Rate", X: 440, Width: 60},
			{Label: "Amount", X: 500, Width: 80},
		},

		TotalsLabelX: 400,
		FooterGap:    120,

		TextColor:  RGB{0, 0, 0},
		MutedColor: RGB{102, 102, 102}, // #666666
	}
}

// BuildInvoiceDocument assembles the full one-page document: header band,
// optional logo, title and metadata, Bill To block, item table with
// even-index row striping, totals block and footer.
func BuildInvoiceDocument(inv models.Invoice, totals Totals, logo []byte, cfg LayoutConfig) []DrawOp {
	ops := make([]DrawOp, 0, 16+4*len(inv.Items))

	// Header band across the whole page width.
	ops = append(ops, DrawOp{
		Kind: OpRect,
		X:    0, Y: 0,
		W: cfg.PageWidth, H: cfg.HeaderBandHeight,
		Fill: cfg.HeaderBandFill,
	})

	if len(logo) > 0 {
		ops = append(ops, DrawOp{
			Kind:  OpImage,
			X:     cfg.LogoX,
			Y:     cfg.LogoY,
			W:     cfg.LogoWidth,
			Image: logo,
		})
	}

	rightWidth := cfg.PageWidth - 2*cfg.Margin
	ops = append(ops,
		DrawOp{Kind: OpText, Text: "INVOICE", X: cfg.Margin, Y: cfg.Margin,
			W: rightWidth, Size: cfg.TitleSize, Bold: true, Align: "R", Color: cfg.TextColor},
		DrawOp{Kind: OpText, Text: "Invoice #: " + inv.ID.String(), X: cfg.Margin, Y: cfg.Margin + 35,
			W: rightWidth, Size: cfg.MetaSize, Align: "R", Color: cfg.TextColor},
		DrawOp{Kind: OpText, Text: "Date: " + FormatDate(inv.CreatedAt), X: cfg.Margin, Y: cfg.Margin + 50,
			W: rightWidth, Size: cfg.MetaSize, Align: "R", Color: cfg.TextColor},
	)

	// Bill To block: name always, company and email only when present.
	y := cfg.BillToY
	ops = append(ops, DrawOp{Kind: OpText, Text: "Bill To:", X: cfg.Margin, Y: y,
		W: 200, Size: 12, Bold: true, Align: "L", Color: cfg.TextColor})
	y += cfg.LineHeight
	ops = append(ops, DrawOp{Kind: OpText, Text: inv.Client.Name, X: cfg.Margin, Y: y,
		W: 200, Size: cfg.MetaSize, Align: "L", Color: cfg.TextColor})
	if inv.Client.Company != "" {
		y += cfg.LineHeight
		ops = append(ops, DrawOp{Kind: OpText, Text: inv.Client.Company, X: cfg.Margin, Y: y,
			W: 200, Size: cfg.MetaSize, Align: "L", Color: cfg.TextColor})
	}
	if inv.Client.Email != "" {
		y += cfg.LineHeight
		ops = append(ops, DrawOp{Kind: OpText, Text: inv.Client.Email, X: cfg.Margin, Y: y,
			W: 200, Size: cfg.MetaSize, Align: "L", Color: cfg.TextColor})
	}

	ops = append(ops, buildItemTable(inv.Items, totals, cfg)...)

	// Totals block, right-aligned label/value pairs.
	rowsBottom := cfg.TableTop + 25 + float64(len(inv.Items))*cfg.RowHeight
	amountX := cfg.Columns[len(cfg.Columns)-1].X
	amountW := cfg.Columns[len(cfg.Columns)-1].Width
	totalsY := rowsBottom + 20

	taxLabel := "Tax (" + totals.TaxRate.StringFixed(0) + "%):"
	ops = append(ops,
		DrawOp{Kind: OpText, Text: "Subtotal:", X: cfg.TotalsLabelX, Y: totalsY,
			W: 80, Size: 10, Bold: true, Align: "L", Color: cfg.TextColor},
		DrawOp{Kind: OpText, Text: FormatCurrency(totals.Subtotal), X: amountX, Y: totalsY,
			W: amountW, Size: 10, Bold: true, Align: "L", Color: cfg.TextColor},
		DrawOp{Kind: OpText, Text: taxLabel, X: cfg.TotalsLabelX, Y: totalsY + 20,
			W: 80, Size: 10, Bold: true, Align: "L", Color: cfg.TextColor},
		DrawOp{Kind: OpText, Text: FormatCurrency(totals.Tax), X: amountX, Y: totalsY + 20,
			W: amountW, Size: 10, Bold: true, Align: "L", Color: cfg.TextColor},
		DrawOp{Kind: OpText, Text: "Total:", X: cfg.TotalsLabelX, Y: totalsY + 45,
			W: 80, Size: 12, Bold: true, Align: "L", Color: cfg.TextColor},
		DrawOp{Kind: OpText, Text: FormatCurrency(totals.Total), X: amountX, Y: totalsY + 45,
			W: amountW, Size: 12, Bold: true, Align: "L", Color: cfg.TextColor},
	)

	// Footer.
	footerY := rowsBottom + cfg.FooterGap
	ops = append(ops,
		DrawOp{Kind: OpText, Text: "Payment Terms: Due within 30 days", X: cfg.Margin, Y: footerY,
			W: 300, Size: 9, Align: "L", Color: cfg.TextColor},
		DrawOp{Kind: OpText, Text: "Thank you for your business!", X: cfg.Margin, Y: footerY + 15,
			W: 300, Size: 9, Align: "L", Color: cfg.MutedColor},
	)

	return ops
}

func buildItemTable(items []models.InvoiceItem, totals Totals, cfg LayoutConfig) []DrawOp {
	ops := make([]DrawOp, 0, 2+6*len(items))

	tableX := cfg.Columns[0].X

	// Header row background, then labels.
	ops = append(ops, DrawOp{
		Kind: OpRect,
		X:    tableX, Y: cfg.TableTop - 5,
		W: cfg.TableWidth, H: cfg.RowHeight,
		Fill: cfg.HeaderRowFill,
	})
	for _, col := range cfg.Columns {
		ops = append(ops, DrawOp{Kind: OpText, Text: col.Label, X: col.X, Y: cfg.TableTop,
			W: col.Width, Size: 10, Bold: true, Align: "L", Color: cfg.TextColor})
	}

	y := cfg.TableTop + 25
	for i, item := range items {
		// Even-indexed rows carry a light stripe for readability.
		if i%2 == 0 {
			ops = append(ops, DrawOp{
				Kind: OpRect,
				X:    tableX, Y: y - 5,
				W: cfg.TableWidth, H: cfg.RowHeight,
				Fill: cfg.StripeFill,
			})
		}

		cells := []string{
			item.ServiceName,
			item.Description,
			strconv.Itoa(item.Quantity),
			FormatCurrency(item.Rate),
			FormatCurrency(totals.LineAmounts[i]),
		}
		for j, col := range cfg.Columns {
			ops = append(ops, DrawOp{Kind: OpText, Text: cells[j], X: col.X, Y: y,
				W: col.Width, Size: 9, Align: "L", Color: cfg.TextColor})
		}

		y += cfg.RowHeight
	}

	return ops
}
