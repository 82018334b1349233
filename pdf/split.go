package pdf

import (
	"context"
	"fmt"
	"io"
)

// OutputFile is a named document produced by an operation.
type OutputFile struct {
	Name string
	Data []byte
}

// SplitResult holds one output per kept range, in selector order.
type SplitResult struct {
	Files   []OutputFile
	Skipped []SplitRange
}

// SplitPDF produces one document per range. Ranges that run past the end of
// the source are skipped rather than failing the whole split; ErrNoValidRanges
// is returned only when no range fits.
func SplitPDF(ctx context.Context, rs io.ReadSeeker, ranges []SplitRange, onProgress ProgressFunc) (*SplitResult, error) {
	doc, err := readDocument(rs)
	if err != nil {
		return nil, err
	}

	kept, skipped := FilterRanges(ranges, doc.PageCount)
	if len(kept) == 0 {
		return nil, ErrNoValidRanges
	}

	result := &SplitResult{
		Files:   make([]OutputFile, 0, len(kept)),
		Skipped: skipped,
	}
	for i, r := range kept {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		report(onProgress, fraction(i, len(kept)), fmt.Sprintf("Creating split %d of %d", i+1, len(kept)))

		data, err := copyPages(doc, r.Pages())
		if err != nil {
			return nil, fmt.Errorf("split %s: %w", r, err)
		}
		result.Files = append(result.Files, OutputFile{
			Name: fmt.Sprintf("split-%d.pdf", i+1),
			Data: data,
		})
	}

	report(onProgress, 100, "Split complete!")
	return result, nil
}
