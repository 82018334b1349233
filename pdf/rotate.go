package pdf

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// RotatePDF turns pages clockwise by angle degrees. Negative angles turn
// counter-clockwise; an angle that amounts to no turn at all is rejected. An
// empty selector rotates every page.
func RotatePDF(ctx context.Context, rs io.ReadSeeker, w io.Writer, angle int, selector string) error {
	angle, err := normalizeRotation(angle)
	if err != nil {
		return err
	}

	var selection []string
	if strings.TrimSpace(selector) != "" {
		totalPages, err := PageCount(ctx, rs)
		if err != nil {
			return err
		}
		pages, err := FilterPages(ParsePageNumbers(selector), totalPages)
		if err != nil {
			return err
		}
		if err := rewind(rs); err != nil {
			return err
		}
		selection = PageSelection(pages)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := api.Rotate(rs, w, angle, selection, newConfig()); err != nil {
		return fmt.Errorf("pdfcpu rotate failed: %w", err)
	}
	return nil
}

// normalizeRotation maps angle onto 90, 180 or 270.
func normalizeRotation(angle int) (int, error) {
	if angle%90 != 0 {
		return 0, ErrInvalidRotation
	}
	angle = (angle%360 + 360) % 360
	if angle == 0 {
		return 0, ErrInvalidRotation
	}
	return angle, nil
}
