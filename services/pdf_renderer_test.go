package services

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOps() []DrawOp {
	return []DrawOp{
		{Kind: OpRect, X: 0, Y: 0, W: 595, H: 120, Fill: RGB{243, 244, 246}},
		{Kind: OpText, Text: "INVOICE", X: 50, Y: 50, W: 495, Size: 24, Bold: true, Align: "R"},
		{Kind: OpText, Text: "Bill To:", X: 50, Y: 150, W: 200, Size: 12, Bold: true, Align: "L"},
	}
}

func TestRenderPDFWritesFile(t *testing.T) {
	path, err := RenderPDF(sampleOps(), "test-1")
	require.NoError(t, err)
	defer CleanupPDF(path)

	assert.Equal(t, "invoice-test-1.pdf", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"), "output is not a PDF")
	assert.Greater(t, len(data), 100)
}

func TestRenderPDFUniqueDirsPerInvocation(t *testing.T) {
	first, err := RenderPDF(sampleOps(), "same-id")
	require.NoError(t, err)
	defer CleanupPDF(first)

	second, err := RenderPDF(sampleOps(), "same-id")
	require.NoError(t, err)
	defer CleanupPDF(second)

	assert.NotEqual(t, filepath.Dir(first), filepath.Dir(second))
}

func TestCleanupPDFRemovesTempDir(t *testing.T) {
	path, err := RenderPDF(sampleOps(), "cleanup")
	require.NoError(t, err)

	dir := filepath.Dir(path)
	CleanupPDF(path)

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr), "temp dir still exists after cleanup")
}

func TestCleanupPDFEmptyPath(t *testing.T) {
	assert.NotPanics(t, func() { CleanupPDF("") })
}

// Garbage image bytes must not fail the document; the image is skipped.
func TestRenderPDFSkipsUndecodableImage(t *testing.T) {
	ops := append(sampleOps(), DrawOp{Kind: OpImage, X: 50, Y: 50, W: 90, Image: []byte("not an image")})

	path, err := RenderPDF(ops, "bad-image")
	require.NoError(t, err)
	defer CleanupPDF(path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

// A failed write must still remove the temp directory before the error
// propagates; no partial file may be left behind.
func TestRenderPDFRemovesTempDirOnWriteFailure(t *testing.T) {
	orig := writePDF
	defer func() { writePDF = orig }()

	var attempted string
	writePDF = func(pdf *gofpdf.Fpdf, path string) error {
		attempted = path
		return errors.New("disk full")
	}

	path, err := RenderPDF(sampleOps(), "write-fail")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write PDF")
	assert.Empty(t, path)

	require.NotEmpty(t, attempted)
	_, statErr := os.Stat(filepath.Dir(attempted))
	assert.True(t, os.IsNotExist(statErr), "temp dir left behind after failed write")
}

func TestRenderPDFConcurrentInvocations(t *testing.T) {
	const n = 8

	paths := make(chan string, n)
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		go func(i int) {
			path, err := RenderPDF(sampleOps(), "concurrent")
			paths <- path
			errs <- err
		}(i)
	}

	seen := make(map[string]bool)
	for i := 0; i < n; i++ {
		require.NoError(t, <-errs)
		path := <-paths
		assert.False(t, seen[filepath.Dir(path)], "temp dir reused across invocations")
		seen[filepath.Dir(path)] = true
		CleanupPDF(path)
	}
}
