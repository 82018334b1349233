package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	// Keep pdfcpu from creating a config directory in the user's home.
	api.DisableConfigDir()
}

func newConfig() *model.Configuration {
	return model.NewDefaultConfiguration()
}

// PageCount returns the number of pages of the document read from rs.
func PageCount(ctx context.Context, rs io.ReadSeeker) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	n, err := api.PageCount(rs, newConfig())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}
	return n, nil
}

// readDocument reads and validates a whole document once so pages can be
// copied out of it repeatedly.
func readDocument(rs io.ReadSeeker) (*model.Context, error) {
	doc, err := api.ReadValidateAndOptimize(rs, newConfig())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}
	return doc, nil
}

// copyPages builds a new document holding pages of src in the given order.
func copyPages(src *model.Context, pages []int) ([]byte, error) {
	out, err := pdfcpu.ExtractPages(src, pages, false)
	if err != nil {
		return nil, fmt.Errorf("failed to copy pages: %w", err)
	}
	var buf bytes.Buffer
	if err := api.WriteContext(out, &buf); err != nil {
		return nil, fmt.Errorf("failed to write document: %w", err)
	}
	return buf.Bytes(), nil
}
