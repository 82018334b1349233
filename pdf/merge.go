package pdf

import (
	"context"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// NamedSource is an uploaded document together with its original file name.
type NamedSource struct {
	Name   string
	Reader io.ReadSeeker
}

// MergePDFs concatenates the sources in order. Every source is validated
// first so a broken file is reported by name.
func MergePDFs(ctx context.Context, sources []NamedSource, w io.Writer, onProgress ProgressFunc) error {
	if len(sources) == 0 {
		return ErrNoInputFiles
	}

	readers := make([]io.ReadSeeker, 0, len(sources))
	for i, src := range sources {
		if err := ctx.Err(); err != nil {
			return err
		}
		report(onProgress, fraction(i, len(sources)), fmt.Sprintf("Processing file %d of %d", i+1, len(sources)))

		if _, err := PageCount(ctx, src.Reader); err != nil {
			return fmt.Errorf("%s: %w", src.Name, err)
		}
		if err := rewind(src.Reader); err != nil {
			return err
		}
		readers = append(readers, src.Reader)
	}

	report(onProgress, 100, "Finalizing merged PDF...")
	if err := api.MergeRaw(readers, w, false, newConfig()); err != nil {
		return fmt.Errorf("pdfcpu merge failed: %w", err)
	}
	return nil
}
