package pdf

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// OfficeExtensions lists the document types the office converter accepts.
var OfficeExtensions = []string{".doc", ".docx", ".odt", ".rtf", ".txt", ".xls", ".xlsx", ".ods", ".csv", ".ppt", ".pptx", ".odp"}

// OfficeConverter turns office documents into PDF with a headless office
// suite binary such as soffice.
type OfficeConverter struct {
	Binary  string
	TempDir string
	Timeout time.Duration
}

// Convert writes r (originally named name) to a scratch directory, converts it
// and returns the resulting PDF bytes.
func (c *OfficeConverter) Convert(ctx context.Context, name string, r io.Reader) ([]byte, error) {
	if err := CheckBinaryAvailable(c.Binary); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(name))
	if !isOfficeExtension(ext) {
		return nil, fmt.Errorf("unsupported document type %q", ext)
	}

	if err := os.MkdirAll(c.TempDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	workDir, err := os.MkdirTemp(c.TempDir, "office-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create work directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	inFile := filepath.Join(workDir, "input"+ext)
	out, err := os.Create(inFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create input file: %w", err)
	}
	_, err = io.Copy(out, r)
	out.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to save input file: %w", err)
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = ConvertTimeout
	}
	output, err := execCommandWithTimeout(ctx, timeout, c.Binary, "--headless", "--convert-to", "pdf", "--outdir", workDir, inFile)
	if err != nil {
		if len(output) > 0 {
			return nil, fmt.Errorf("%s convert failed: %w\nOutput: %s", c.Binary, err, output)
		}
		return nil, fmt.Errorf("%s convert failed: %w", c.Binary, err)
	}

	data, err := os.ReadFile(filepath.Join(workDir, "input.pdf"))
	if err != nil {
		return nil, fmt.Errorf("conversion did not produce output file: %w", err)
	}
	return data, nil
}

func isOfficeExtension(ext string) bool {
	for _, e := range OfficeExtensions {
		if e == ext {
			return true
		}
	}
	return false
}
