package pdf

import (
	"context"
	"io"
)

// ExtractPages copies the given pages of the source into a new document.
// Pages beyond the end of the source are dropped; ErrNoValidPages is returned
// when none remain.
func ExtractPages(ctx context.Context, rs io.ReadSeeker, pages []int, onProgress ProgressFunc) ([]byte, error) {
	report(onProgress, 25, "Loading PDF...")
	doc, err := readDocument(rs)
	if err != nil {
		return nil, err
	}

	valid, err := FilterPages(pages, doc.PageCount)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report(onProgress, 50, "Extracting pages...")
	data, err := copyPages(doc, valid)
	if err != nil {
		return nil, err
	}

	report(onProgress, 100, "Pages extracted!")
	return data, nil
}
