package pdf

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfnest/internal/testpdf"
)

func TestPageCount(t *testing.T) {
	n, err := PageCount(context.Background(), bytes.NewReader(testpdf.New(t, 4)))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = PageCount(context.Background(), strings.NewReader("not a pdf"))
	assert.ErrorIs(t, err, ErrInvalidPDF)
}

func TestSplitPDF(t *testing.T) {
	src := testpdf.New(t, 10)

	var updates []ProcessingProgress
	result, err := SplitPDF(context.Background(), bytes.NewReader(src), ParseSplitRanges("1-5,6-10"), func(p ProcessingProgress) {
		updates = append(updates, p)
	})
	require.NoError(t, err)
	require.Len(t, result.Files, 2)
	assert.Empty(t, result.Skipped)

	assert.Equal(t, "split-1.pdf", result.Files[0].Name)
	assert.Equal(t, "split-2.pdf", result.Files[1].Name)
	assert.Equal(t, 5, testpdf.PageCount(t, result.Files[0].Data))
	assert.Equal(t, 5, testpdf.PageCount(t, result.Files[1].Data))

	require.Len(t, updates, 3)
	assert.Equal(t, 0.0, updates[0].Progress)
	assert.Equal(t, 50.0, updates[1].Progress)
	assert.Equal(t, 100.0, updates[2].Progress)
}

func TestSplitPDF_SkipsRangesPastTheEnd(t *testing.T) {
	src := testpdf.New(t, 10)

	result, err := SplitPDF(context.Background(), bytes.NewReader(src), ParseSplitRanges("8-12,2-3"), nil)
	require.NoError(t, err)
	require.Len(t, result.Files, 1)
	assert.Equal(t, []SplitRange{{Start: 8, End: 12}}, result.Skipped)
	assert.Equal(t, 2, testpdf.PageCount(t, result.Files[0].Data))
}

func TestSplitPDF_NoValidRanges(t *testing.T) {
	src := testpdf.New(t, 3)

	_, err := SplitPDF(context.Background(), bytes.NewReader(src), ParseSplitRanges("4-6"), nil)
	assert.ErrorIs(t, err, ErrNoValidRanges)

	_, err = SplitPDF(context.Background(), bytes.NewReader(src), nil, nil)
	assert.ErrorIs(t, err, ErrNoValidRanges)
}

func TestSplitPDF_InvalidSource(t *testing.T) {
	_, err := SplitPDF(context.Background(), strings.NewReader("garbage"), ParseSplitRanges("1"), nil)
	assert.ErrorIs(t, err, ErrInvalidPDF)
}

func TestSplitPDF_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SplitPDF(ctx, bytes.NewReader(testpdf.New(t, 2)), ParseSplitRanges("1,2"), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtractPages(t *testing.T) {
	src := testpdf.New(t, 10)

	data, err := ExtractPages(context.Background(), bytes.NewReader(src), ParsePageNumbers("1-5,8,10-12"), nil)
	require.NoError(t, err)
	assert.Equal(t, 7, testpdf.PageCount(t, data))

	_, err = ExtractPages(context.Background(), bytes.NewReader(src), ParsePageNumbers("11,12"), nil)
	assert.ErrorIs(t, err, ErrNoValidPages)
}

func TestRemovePages(t *testing.T) {
	src := testpdf.New(t, 5)

	var out bytes.Buffer
	require.NoError(t, RemovePages(context.Background(), bytes.NewReader(src), &out, "2,4,9"))
	assert.Equal(t, 3, testpdf.PageCount(t, out.Bytes()))

	err := RemovePages(context.Background(), bytes.NewReader(src), io.Discard, "1-5")
	assert.ErrorIs(t, err, ErrRemoveAllPages)

	err = RemovePages(context.Background(), bytes.NewReader(src), io.Discard, "x")
	assert.ErrorIs(t, err, ErrNoValidPages)
}

func TestMergePDFs(t *testing.T) {
	sources := []NamedSource{
		{Name: "a.pdf", Reader: bytes.NewReader(testpdf.New(t, 2))},
		{Name: "b.pdf", Reader: bytes.NewReader(testpdf.New(t, 3))},
	}

	var statuses []string
	var out bytes.Buffer
	err := MergePDFs(context.Background(), sources, &out, func(p ProcessingProgress) {
		statuses = append(statuses, p.Status)
	})
	require.NoError(t, err)
	assert.Equal(t, 5, testpdf.PageCount(t, out.Bytes()))
	assert.Equal(t, []string{"Processing file 1 of 2", "Processing file 2 of 2", "Finalizing merged PDF..."}, statuses)
}

func TestMergePDFs_Errors(t *testing.T) {
	err := MergePDFs(context.Background(), nil, io.Discard, nil)
	assert.ErrorIs(t, err, ErrNoInputFiles)

	sources := []NamedSource{
		{Name: "a.pdf", Reader: bytes.NewReader(testpdf.New(t, 1))},
		{Name: "broken.pdf", Reader: strings.NewReader("nope")},
	}
	err = MergePDFs(context.Background(), sources, io.Discard, nil)
	assert.ErrorIs(t, err, ErrInvalidPDF)
	assert.Contains(t, err.Error(), "broken.pdf")
}

func TestRotatePDF(t *testing.T) {
	src := testpdf.New(t, 3)

	var out bytes.Buffer
	require.NoError(t, RotatePDF(context.Background(), bytes.NewReader(src), &out, 90, ""))
	assert.Equal(t, 3, testpdf.PageCount(t, out.Bytes()))

	out.Reset()
	require.NoError(t, RotatePDF(context.Background(), bytes.NewReader(src), &out, 180, "2"))
	assert.Equal(t, 3, testpdf.PageCount(t, out.Bytes()))

	err := RotatePDF(context.Background(), bytes.NewReader(src), io.Discard, 45, "")
	assert.ErrorIs(t, err, ErrInvalidRotation)

	err = RotatePDF(context.Background(), bytes.NewReader(src), io.Discard, 90, "7")
	assert.ErrorIs(t, err, ErrNoValidPages)

	out.Reset()
	require.NoError(t, RotatePDF(context.Background(), bytes.NewReader(src), &out, -90, ""))
	assert.Equal(t, 3, testpdf.PageCount(t, out.Bytes()))

	for _, angle := range []int{0, 360, -360, 720} {
		err := RotatePDF(context.Background(), bytes.NewReader(src), io.Discard, angle, "")
		assert.ErrorIs(t, err, ErrInvalidRotation, "angle %d", angle)
	}
}

func TestNormalizeRotation(t *testing.T) {
	tests := []struct {
		angle   int
		want    int
		wantErr bool
	}{
		{angle: 90, want: 90},
		{angle: 180, want: 180},
		{angle: 270, want: 270},
		{angle: -90, want: 270},
		{angle: -180, want: 180},
		{angle: 450, want: 90},
		{angle: 0, wantErr: true},
		{angle: 360, wantErr: true},
		{angle: 45, wantErr: true},
	}
	for _, tt := range tests {
		got, err := normalizeRotation(tt.angle)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidRotation, "angle %d", tt.angle)
			continue
		}
		require.NoError(t, err, "angle %d", tt.angle)
		assert.Equal(t, tt.want, got, "angle %d", tt.angle)
	}
}

func TestAddWatermark(t *testing.T) {
	src := testpdf.New(t, 2)

	var out bytes.Buffer
	require.NoError(t, AddWatermark(context.Background(), bytes.NewReader(src), &out, "CONFIDENTIAL"))
	assert.Equal(t, 2, testpdf.PageCount(t, out.Bytes()))


	err := AddWatermark(context.Background(), bytes.NewReader(src), io.Discard, "   ")
	assert.ErrorIs(t, err, ErrEmptyWatermark)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = AddWatermark(ctx, bytes.NewReader(src), io.Discard, "DRAFT")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWatermarkDescription(t *testing.T) {
	wm, err := api.TextWatermark("DRAFT", WatermarkDescription, false, false, types.POINTS)
	require.NoError(t, err)
	assert.Equal(t, "Helvetica", wm.FontName)
	assert.Equal(t, 50, wm.FontSize)
	assert.InDelta(t, 0.3, wm.Opacity, 1e-9)
}

func TestProtectAndUnlock(t *testing.T) {
	src := testpdf.New(t, 2)

	var locked bytes.Buffer
	require.NoError(t, ProtectPDF(context.Background(), bytes.NewReader(src), &locked, "s3cret"))
	assert.NotEqual(t, src, locked.Bytes())

	err := UnlockPDF(context.Background(), bytes.NewReader(locked.Bytes()), io.Discard, "wrong")
	assert.ErrorIs(t, err, ErrUnlockFailed)

	var unlocked bytes.Buffer
	require.NoError(t, UnlockPDF(context.Background(), bytes.NewReader(locked.Bytes()), &unlocked, "s3cret"))
	assert.Equal(t, 2, testpdf.PageCount(t, unlocked.Bytes()))

	assert.ErrorIs(t, ProtectPDF(context.Background(), bytes.NewReader(src), io.Discard, ""), ErrEmptyPassword)
	assert.ErrorIs(t, UnlockPDF(context.Background(), bytes.NewReader(src), io.Discard, ""), ErrEmptyPassword)
}

func TestCompressPDF(t *testing.T) {
	src := testpdf.New(t, 3)

	var out bytes.Buffer
	require.NoError(t, CompressPDF(context.Background(), bytes.NewReader(src), &out, nil))
	assert.Equal(t, 3, testpdf.PageCount(t, out.Bytes()))

	err := CompressPDF(context.Background(), strings.NewReader("junk"), io.Discard, nil)
	assert.ErrorIs(t, err, ErrInvalidPDF)
}

func TestImagesToPDF(t *testing.T) {
	images := []io.Reader{
		bytes.NewReader(testpdf.PNG(t, 1)),
		bytes.NewReader(testpdf.PNG(t, 2)),
		bytes.NewReader(testpdf.PNG(t, 3)),
	}

	var out bytes.Buffer
	require.NoError(t, ImagesToPDF(context.Background(), images, &out, nil))
	assert.Equal(t, 3, testpdf.PageCount(t, out.Bytes()))

	assert.ErrorIs(t, ImagesToPDF(context.Background(), nil, io.Discard, nil), ErrNoInputFiles)
}

func TestOfficeConverter_Unavailable(t *testing.T) {
	c := &OfficeConverter{Binary: "pdfnest-no-such-office-binary", TempDir: t.TempDir()}
	_, err := c.Convert(context.Background(), "letter.docx", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrConverterUnavailable)
}

func TestOfficeConverter_UnsupportedType(t *testing.T) {
	c := &OfficeConverter{Binary: "sh", TempDir: t.TempDir()}
	_, err := c.Convert(context.Background(), "tool.exe", strings.NewReader("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported document type")
}
