package pdf

import (
	"context"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// CompressPDF rewrites the source with pdfcpu's optimizer, which drops
// duplicate and unused objects.
func CompressPDF(ctx context.Context, rs io.ReadSeeker, w io.Writer, onProgress ProgressFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	report(onProgress, 25, "Loading PDF...")
	if err := api.Optimize(rs, w, newConfig()); err != nil {
		return fmt.Errorf("%w: optimize failed: %v", ErrInvalidPDF, err)
	}
	report(onProgress, 100, "Compression complete!")
	return nil
}
