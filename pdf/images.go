package pdf

import (
	"context"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
)

// ImagesToPDF creates a document with one page per image, in order.
func ImagesToPDF(ctx context.Context, images []io.Reader, w io.Writer, onProgress ProgressFunc) error {
	if len(images) == 0 {
		return ErrNoInputFiles
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	report(onProgress, fraction(0, len(images)), fmt.Sprintf("Converting %d images", len(images)))
	if err := api.ImportImages(nil, w, images, pdfcpu.DefaultImportConfig(), newConfig()); err != nil {
		return fmt.Errorf("pdfcpu image import failed: %w", err)
	}
	report(onProgress, 100, "Conversion complete!")
	return nil
}
