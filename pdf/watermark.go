package pdf

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// AddWatermark stamps text diagonally across every page.
func AddWatermark(ctx context.Context, rs io.ReadSeeker, w io.Writer, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyWatermark
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	wm, err := api.TextWatermark(text, WatermarkDescription, false, false, types.POINTS)
	if err != nil {
		return fmt.Errorf("invalid watermark: %w", err)
	}
	if err := api.AddWatermarks(rs, w, nil, wm, newConfig()); err != nil {
		return fmt.Errorf("pdfcpu watermark failed: %w", err)
	}
	return nil
}
