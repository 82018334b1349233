// Package testpdf builds small PDF documents for tests.
package testpdf

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/stretchr/testify/require"
)

func init() {
	api.DisableConfigDir()
}

// PNG returns a tiny solid-colour PNG. Different seeds give different colours.
func PNG(t testing.TB, seed int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	c := color.RGBA{R: uint8(seed * 40), G: uint8(255 - seed*20), B: 128, A: 255}
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// New returns a document with the given number of pages, one image each.
func New(t testing.TB, pages int) []byte {
	t.Helper()
	imgs := make([]io.Reader, pages)
	for i := range imgs {
		imgs[i] = bytes.NewReader(PNG(t, i))
	}
	var buf bytes.Buffer
	err := api.ImportImages(nil, &buf, imgs, pdfcpu.DefaultImportConfig(), model.NewDefaultConfiguration())
	require.NoError(t, err)
	return buf.Bytes()
}

// PageCount returns the number of pages in data.
func PageCount(t testing.TB, data []byte) int {
	t.Helper()
	n, err := api.PageCount(bytes.NewReader(data), model.NewDefaultConfiguration())
	require.NoError(t, err)
	return n
}
