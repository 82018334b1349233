package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	pdfPkg "pdfnest/pdf"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var (
	pdfAccept   = []string{".pdf", "application/pdf"}
	imageAccept = []string{".png", ".jpg", ".jpeg", ".tif", ".tiff", ".webp", "image/png", "image/jpeg", "image/tiff", "image/webp"}
)

// Handler serves the document conversion endpoints.
type Handler struct {
	config *Config
	logger *logrus.Logger
	office *pdfPkg.OfficeConverter
}

// NewHandler creates a handler bound to config.
func NewHandler(config *Config, logger *logrus.Logger) *Handler {
	return &Handler{
		config: config,
		logger: logger,
		office: &pdfPkg.OfficeConverter{
			Binary:  config.OfficeBinary,
			TempDir: config.TempDir,
			Timeout: config.ConvertTimeout,
		},
	}
}

type upload struct {
	Name string
	Data []byte
}

type selectorRequest struct {
	Selector  string `json:"selector"`
	PageCount int    `json:"page_count"`
}

// HandleParsePages previews how a page selector is understood, optionally
// bounded by a page count.
func (h *Handler) HandleParsePages(c *gin.Context) {
	log := requestLogger(c, h.logger)

	var req selectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, log, badRequest("Invalid request body"))
		return
	}

	pages := pdfPkg.ParsePageNumbers(req.Selector)
	if req.PageCount > 0 {
		var err error
		if pages, err = pdfPkg.FilterPages(pages, req.PageCount); err != nil {
			respondError(c, log, err)
			return
		}
	}
	if len(pages) == 0 {
		respondError(c, log, pdfPkg.ErrNoValidPages)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pages":    pages,
		"count":    len(pages),
		"selector": pdfPkg.FormatPageNumbers(pages),
	})
}

// HandleParseRanges previews how a split selector is understood.
func (h *Handler) HandleParseRanges(c *gin.Context) {
	log := requestLogger(c, h.logger)

	var req selectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, log, badRequest("Invalid request body"))
		return
	}

	ranges := pdfPkg.ParseSplitRanges(req.Selector)
	skipped := []pdfPkg.SplitRange{}
	if req.PageCount > 0 {
		var outOfBounds []pdfPkg.SplitRange
		ranges, outOfBounds = pdfPkg.FilterRanges(ranges, req.PageCount)
		skipped = append(skipped, outOfBounds...)
	}
	if len(ranges) == 0 {
		respondError(c, log, pdfPkg.ErrNoValidRanges)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ranges": ranges, "skipped": skipped})
}

func (h *Handler) HandleExtract(c *gin.Context) {
	log := requestLogger(c, h.logger)

	src, err := h.formPDF(c)
	if err != nil {
		respondError(c, log, err)
		return
	}

	pages := pdfPkg.ParsePageNumbers(c.PostForm("pages"))
	if len(pages) == 0 {
		respondError(c, log, pdfPkg.ErrNoValidPages)
		return
	}

	data, err := pdfPkg.ExtractPages(c.Request.Context(), bytes.NewReader(src.Data), pages, h.progress(c, "extract"))
	if err != nil {
		respondError(c, log, err)
		return
	}

	sendArtifact(c, &pdfPkg.Artifact{
		Filename:    "extracted-pages-" + src.Name,
		ContentType: pdfPkg.ContentTypePDF,
		Data:        data,
	})
}

func (h *Handler) HandleSplit(c *gin.Context) {
	log := requestLogger(c, h.logger)

	src, err := h.formPDF(c)
	if err != nil {
		respondError(c, log, err)
		return
	}

	ranges := pdfPkg.ParseSplitRanges(c.PostForm("ranges"))
	if len(ranges) == 0 {
		respondError(c, log, pdfPkg.ErrNoValidRanges)
		return
	}

	result, err := pdfPkg.SplitPDF(c.Request.Context(), bytes.NewReader(src.Data), ranges, h.progress(c, "split"))
	if err != nil {
		respondError(c, log, err)
		return
	}

	if len(result.Skipped) > 0 {
		skipped := make([]string, len(result.Skipped))
		for i, r := range result.Skipped {
			skipped[i] = r.String()
		}
		c.Header(HeaderSkippedRanges, strings.Join(skipped, ","))
		log.WithField("skipped", skipped).Warn("split ranges beyond the last page were skipped")
	}

	artifact, err := pdfPkg.Bundle(result.Files, pdfPkg.DefaultArchiveName)
	if err != nil {
		respondError(c, log, err)
		return
	}
	sendArtifact(c, artifact)
}

func (h *Handler) HandleRemovePages(c *gin.Context) {
	pagesParam := c.PostForm("pages")
	if strings.TrimSpace(pagesParam) == "" {
		respondError(c, requestLogger(c, h.logger), badRequest("No pages specified"))
		return
	}

	h.handlePDFFile(c, "pages_removed", func(ctx context.Context, rs io.ReadSeeker, w io.Writer) error {
		return pdfPkg.RemovePages(ctx, rs, w, pagesParam)
	})
}

func (h *Handler) HandleRotate(c *gin.Context) {
	angle, err := strconv.Atoi(c.DefaultPostForm("angle", "90"))
	if err != nil {
		respondError(c, requestLogger(c, h.logger), badRequest("Rotation angle must be a number"))
		return
	}
	pages := c.PostForm("pages")

	h.handlePDFFile(c, "rotated", func(ctx context.Context, rs io.ReadSeeker, w io.Writer) error {
		return pdfPkg.RotatePDF(ctx, rs, w, angle, pages)
	})
}

func (h *Handler) HandleWatermark(c *gin.Context) {
	text := c.PostForm("text")
	h.handlePDFFile(c, "watermarked", func(ctx context.Context, rs io.ReadSeeker, w io.Writer) error {
		return pdfPkg.AddWatermark(ctx, rs, w, text)
	})
}

func (h *Handler) HandleProtect(c *gin.Context) {
	password := c.PostForm("password")
	h.handlePDFFile(c, "protected", func(ctx context.Context, rs io.ReadSeeker, w io.Writer) error {
		return pdfPkg.ProtectPDF(ctx, rs, w, password)
	})
}

func (h *Handler) HandleUnlock(c *gin.Context) {
	password := c.PostForm("password")
	h.handlePDFFile(c, "unlocked", func(ctx context.Context, rs io.ReadSeeker, w io.Writer) error {
		return pdfPkg.UnlockPDF(ctx, rs, w, password)
	})
}

func (h *Handler) HandleCompress(c *gin.Context) {
	progress := h.progress(c, "compress")
	h.handlePDFFile(c, "compressed", func(ctx context.Context, rs io.ReadSeeker, w io.Writer) error {
		return pdfPkg.CompressPDF(ctx, rs, w, progress)
	})
}

func (h *Handler) HandleMerge(c *gin.Context) {
	log := requestLogger(c, h.logger)

	files, err := h.formFiles(c, "pdf", pdfAccept)
	if err != nil {
		respondError(c, log, err)
		return
	}
	if len(files) < 2 {
		respondError(c, log, badRequest("Please select at least 2 PDF files to merge"))
		return
	}

	sources := make([]pdfPkg.NamedSource, len(files))
	for i, f := range files {
		sources[i] = pdfPkg.NamedSource{Name: f.Name, Reader: bytes.NewReader(f.Data)}
	}

	var out bytes.Buffer
	if err := pdfPkg.MergePDFs(c.Request.Context(), sources, &out, h.progress(c, "merge")); err != nil {
		respondError(c, log, err)
		return
	}

	sendArtifact(c, &pdfPkg.Artifact{
		Filename:    "merged-document.pdf",
		ContentType: pdfPkg.ContentTypePDF,
		Data:        out.Bytes(),
	})
}

func (h *Handler) HandleImagesToPDF(c *gin.Context) {
	log := requestLogger(c, h.logger)

	files, err := h.formFiles(c, "images", imageAccept)
	if err != nil {
		respondError(c, log, err)
		return
	}

	images := make([]io.Reader, len(files))
	for i, f := range files {
		images[i] = bytes.NewReader(f.Data)
	}

	var out bytes.Buffer
	if err := pdfPkg.ImagesToPDF(c.Request.Context(), images, &out, h.progress(c, "images")); err != nil {
		respondError(c, log, err)
		return
	}

	sendArtifact(c, &pdfPkg.Artifact{
		Filename:    "images.pdf",
		ContentType: pdfPkg.ContentTypePDF,
		Data:        out.Bytes(),
	})
}

func (h *Handler) HandleOfficeToPDF(c *gin.Context) {
	log := requestLogger(c, h.logger)

	file, header, err := c.Request.FormFile("document")
	if err != nil {
		respondError(c, log, badRequest("No document provided"))
		return
	}
	defer file.Close()

	if header.Size > h.config.MaxFileSize {
		respondError(c, log, badRequest(fmt.Sprintf("file size %d exceeds maximum allowed %d bytes", header.Size, h.config.MaxFileSize)))
		return
	}
	if !acceptFile(header, pdfPkg.OfficeExtensions) {
		respondError(c, log, badRequest("Unsupported document type"))
		return
	}

	data, err := h.office.Convert(c.Request.Context(), header.Filename, file)
	if err != nil {
		respondError(c, log, err)
		return
	}

	name := sanitizeFilename(header.Filename)
	sendArtifact(c, &pdfPkg.Artifact{
		Filename:    strings.TrimSuffix(name, filepath.Ext(name)) + ".pdf",
		ContentType: pdfPkg.ContentTypePDF,
		Data:        data,
	})
}

// handlePDFFile runs a single-input, single-output operation on the uploaded
// "pdf" field and sends the result back as <name>_<suffix>.pdf.
func (h *Handler) handlePDFFile(c *gin.Context, suffix string, operation func(context.Context, io.ReadSeeker, io.Writer) error) {
	log := requestLogger(c, h.logger)

	src, err := h.formPDF(c)
	if err != nil {
		respondError(c, log, err)
		return
	}

	var out bytes.Buffer
	if err := operation(c.Request.Context(), bytes.NewReader(src.Data), &out); err != nil {
		respondError(c, log, err)
		return
	}
	if out.Len() == 0 {
		respondError(c, log, fmt.Errorf("PDF operation did not produce output"))
		return
	}

	sendArtifact(c, &pdfPkg.Artifact{
		Filename:    outputFilename(src.Name, suffix),
		ContentType: pdfPkg.ContentTypePDF,
		Data:        out.Bytes(),
	})
}

func (h *Handler) formPDF(c *gin.Context) (*upload, error) {
	file, header, err := c.Request.FormFile("pdf")
	if err != nil {
		return nil, badRequest("No PDF file provided")
	}
	defer file.Close()

	if err := validatePDFFile(file, header, h.config.MaxFileSize); err != nil {
		return nil, badRequest(err.Error())
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	return &upload{Name: sanitizeFilename(header.Filename), Data: data}, nil
}

// formFiles collects every file of a multi-file field that matches accept,
// the same way the drag and drop picker filters dropped files.
func (h *Handler) formFiles(c *gin.Context, field string, accept []string) ([]upload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, badRequest("No files uploaded")
	}

	var uploads []upload
	for _, header := range form.File[field] {
		if !acceptFile(header, accept) {
			requestLogger(c, h.logger).WithField("filename", header.Filename).Debug("ignoring file of unaccepted type")
			continue
		}
		if len(uploads) >= h.config.MaxFiles {
			return nil, badRequest(fmt.Sprintf("too many files (maximum %d)", h.config.MaxFiles))
		}
		if header.Size > h.config.MaxFileSize {
			return nil, badRequest(fmt.Sprintf("%s: file size %d exceeds maximum allowed %d bytes", header.Filename, header.Size, h.config.MaxFileSize))
		}

		data, err := readFileHeader(header)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, upload{Name: sanitizeFilename(header.Filename), Data: data})
	}

	if len(uploads) == 0 {
		return nil, pdfPkg.ErrNoInputFiles
	}
	return uploads, nil
}

func (h *Handler) progress(c *gin.Context, operation string) pdfPkg.ProgressFunc {
	log := requestLogger(c, h.logger).WithField("operation", operation)
	return func(p pdfPkg.ProcessingProgress) {
		log.WithField("progress", p.Progress).Debug(p.Status)
	}
}

func readFileHeader(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", header.Filename, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", header.Filename, err)
	}
	return data, nil
}

func sendArtifact(c *gin.Context, artifact *pdfPkg.Artifact) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", sanitizeFilename(artifact.Filename)))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

// acceptFile reports whether the upload's extension or declared MIME type is
// in accept.
func acceptFile(header *multipart.FileHeader, accept []string) bool {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	contentType := header.Header.Get("Content-Type")
	for _, a := range accept {
		if a == ext || (contentType != "" && a == contentType) {
			return true
		}
	}
	return false
}

// outputFilename derives a download name such as report_rotated.pdf
func outputFilename(original, suffix string) string {
	if original == "" {
		return "document_" + suffix + ".pdf"
	}
	if strings.HasSuffix(strings.ToLower(original), ".pdf") {
		return original[:len(original)-4] + "_" + suffix + ".pdf"
	}
	return original + "_" + suffix + ".pdf"
}

// sanitizeFilename removes path traversal attempts and dangerous characters
func sanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "..", "")
	filename = strings.ReplaceAll(filename, "/", "_")
	filename = strings.ReplaceAll(filename, "\\", "_")
	filename = strings.ReplaceAll(filename, "\"", "")

	filename = strings.TrimSpace(filepath.Base(filename))

	if filename == "" || filename == "." {
		filename = "document.pdf"
	}
	return filename
}

// validatePDFFile checks the size limit and the %PDF header
func validatePDFFile(file multipart.File, header *multipart.FileHeader, maxSize int64) error {
	if header.Size > maxSize {
		return fmt.Errorf("file size %d exceeds maximum allowed %d bytes", header.Size, maxSize)
	}

	buffer := make([]byte, 4)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file header: %v", err)
	}

	if n < 4 || string(buffer[:4]) != "%PDF" {
		return fmt.Errorf("invalid PDF file: header does not match")
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to reset file position: %v", err)
	}
	return nil
}
