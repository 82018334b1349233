package document

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"pdfnest/pdf"
)

// ExcelToJSON converts every sheet of an XLSX workbook into an array of row
// objects keyed by the sheet's header row. The result maps sheet names to
// their rows.
func ExcelToJSON(ctx context.Context, r io.Reader, onProgress pdf.ProgressFunc) ([]byte, error) {
	report(onProgress, 25, "Reading Excel file...")
	f, err := openWorkbook(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	report(onProgress, 50, "Converting to JSON...")
	result := make(map[string][]map[string]any)
	for _, sheet := range f.GetSheetList() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
		}
		result[sheet] = rowObjects(rows)
	}

	report(onProgress, 75, "Finalizing JSON...")
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}

	report(onProgress, 100, "Conversion complete!")
	return data, nil
}

// ExcelToCSV converts the first sheet of an XLSX workbook to CSV. Rows are
// padded to the width of the widest row.
func ExcelToCSV(ctx context.Context, r io.Reader, onProgress pdf.ProgressFunc) ([]byte, error) {
	report(onProgress, 25, "Reading Excel file...")
	f, err := openWorkbook(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report(onProgress, 50, "Converting to CSV...")
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrInvalidWorkbook)
	}
	sheet := sheets[0]
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, row := range rows {
		record := make([]string, width)
		copy(record, row)
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV: %w", err)
		}
	}

	report(onProgress, 75, "Finalizing CSV...")
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to write CSV: %w", err)
	}

	report(onProgress, 100, "Conversion complete!")
	return buf.Bytes(), nil
}

func openWorkbook(r io.Reader) (*excelize.File, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	return f, nil
}

// rowObjects turns the rows below the header into objects. Blank header cells
// become __EMPTY, __EMPTY_1 and so on, repeated headers get a _1, _2 suffix.
// Blank cells are left out and rows with no values are skipped.
func rowObjects(rows [][]string) []map[string]any {
	objects := []map[string]any{}
	if len(rows) == 0 {
		return objects
	}

	keys := headerKeys(rows[0])
	for _, row := range rows[1:] {
		obj := make(map[string]any)
		for i, cell := range row {
			if cell == "" {
				continue
			}
			var key string
			if i < len(keys) {
				key = keys[i]
			} else {
				key = emptyKey(i - len(keys) + countEmpty(keys))
			}
			obj[key] = cellValue(cell)
		}
		if len(obj) > 0 {
			objects = append(objects, obj)
		}
	}
	return objects
}

func headerKeys(header []string) []string {
	keys := make([]string, len(header))
	seen := make(map[string]int)
	empty := 0
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			keys[i] = emptyKey(empty)
			empty++
			continue
		}
		if n, ok := seen[h]; ok {
			seen[h] = n + 1
			keys[i] = h + "_" + strconv.Itoa(n+1)
			continue
		}
		seen[h] = 0
		keys[i] = h
	}
	return keys
}

func emptyKey(n int) string {
	if n == 0 {
		return "__EMPTY"
	}
	return "__EMPTY_" + strconv.Itoa(n)
}

func countEmpty(keys []string) int {
	n := 0
	for _, k := range keys {
		if strings.HasPrefix(k, "__EMPTY") {
			n++
		}
	}
	return n
}

// cellValue keeps numeric cells as numbers in the JSON output.
func cellValue(cell string) any {
	if v, err := strconv.ParseFloat(cell, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		return v
	}
	return cell
}

func report(onProgress pdf.ProgressFunc, progress float64, status string) {
	if onProgress != nil {
		onProgress(pdf.ProcessingProgress{Progress: progress, Status: status})
	}
}
