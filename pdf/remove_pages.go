package pdf

import (
	"context"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// RemovePages writes the source without the pages named by selector.
func RemovePages(ctx context.Context, rs io.ReadSeeker, w io.Writer, selector string) error {
	totalPages, err := PageCount(ctx, rs)
	if err != nil {
		return fmt.Errorf("failed to get page count: %w", err)
	}

	pageNumbers, err := FilterPages(ParsePageNumbers(selector), totalPages)
	if err != nil {
		return err
	}
	if len(pageNumbers) == totalPages {
		return ErrRemoveAllPages
	}

	if err := rewind(rs); err != nil {
		return err
	}
	if err := api.RemovePages(rs, w, PageSelection(pageNumbers), newConfig()); err != nil {
		return fmt.Errorf("pdfcpu remove pages failed: %w", err)
	}
	return nil
}

func rewind(rs io.ReadSeeker) error {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to reset file position: %w", err)
	}
	return nil
}
