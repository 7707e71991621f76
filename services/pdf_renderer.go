// services/pdf_renderer.go
package services

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/jung-kurt/gofpdf"
)

// writePDF is the final serialization step, a variable so tests can force a
// write failure and exercise the cleanup path.
var writePDF = func(pdf *gofpdf.Fpdf, path string) error {
	return pdf.OutputFileAndClose(path)
}

// RenderPDF serializes a draw-op sequence into a PDF file inside a freshly
// created, uniquely named temp directory and returns the file path. On any
// failure the directory is removed before the error propagates, so no
// partial file is ever left behind. Concurrent invocations are independent:
// each gets its own directory and its own gofpdf instance.
func RenderPDF(ops []DrawOp, invoiceID string) (string, error) {
	dir, err := os.MkdirTemp("", "invoice-"+invoiceID+"-")
	if err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}

	pdfPath := filepath.Join(dir, fmt.Sprintf("invoice-%s.pdf", invoiceID))

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	imageCount := 0
	for _, op := range ops {
		switch op.Kind {
		case OpRect:
			pdf.SetFillColor(op.Fill.R, op.Fill.G, op.Fill.B)
			pdf.Rect(op.X, op.Y, op.W, op.H, "F")

		case OpText:
			style := ""
			if op.Bold {
				style = "B"
			}
			pdf.SetFont("Helvetica", style, op.Size)
			pdf.SetTextColor(op.Color.R, op.Color.G, op.Color.B)
			pdf.SetXY(op.X, op.Y)
			pdf.CellFormat(op.W, op.Size*1.2, op.Text, "", 0, op.Align, false, 0, "")

		case OpImage:
			imageCount++
			placeImage(pdf, op, imageCount)
		}
	}

	if pdf.Err() {
		os.RemoveAll(dir)
		return "", fmt.Errorf("failed to assemble PDF: %w", pdf.Error())
	}

	if err := writePDF(pdf, pdfPath); err != nil {
		os.RemoveAll(dir)
		return "", fmt.Errorf("failed to write PDF: %w", err)
	}

	return pdfPath, nil
}

// CleanupPDF removes the temp directory RenderPDF created for pdfPath. Safe
// to call after the download response was sent, whether or not it succeeded.
func CleanupPDF(pdfPath string) {
	if pdfPath == "" {
		return
	}
	os.RemoveAll(filepath.Dir(pdfPath))
}

func placeImage(pdf *gofpdf.Fpdf, op DrawOp, n int) {
	kind, err := filetype.Match(op.Image)
	if err != nil || kind == filetype.Unknown {
		// Undecodable bytes should never have made it this far; skip rather
		// than fail the whole document.
		return
	}

	imageType := strings.ToUpper(kind.Extension) // "PNG", "JPG", "GIF"
	opts := gofpdf.ImageOptions{ImageType: imageType, ReadDpi: false}
	name := fmt.Sprintf("logo-%d", n)

	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(op.Image))
	if pdf.Err() {
		// Unsupported or corrupt image data: clear the error and render the
		// document without it.
		pdf.ClearError()
		return
	}

	pdf.ImageOptions(name, op.X, op.Y, op.W, 0, false, opts, 0, "")
}
