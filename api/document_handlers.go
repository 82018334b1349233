package api

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"pdfnest/document"
	pdfPkg "pdfnest/pdf"

	"github.com/gin-gonic/gin"
)

const (
	contentTypeJSON = "application/json"
	contentTypeCSV  = "text/csv"
	contentTypeXML  = "application/xml"
)

var excelAccept = []string{".xlsx", ".xlsm", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"}

type xmlRequest struct {
	Root   string              `json:"root"`
	Fields []document.XMLField `json:"fields"`
}

func (h *Handler) HandleExcelToJSON(c *gin.Context) {
	h.handleWorkbook(c, ".json", contentTypeJSON, document.ExcelToJSON)
}

func (h *Handler) HandleExcelToCSV(c *gin.Context) {
	h.handleWorkbook(c, ".csv", contentTypeCSV, document.ExcelToCSV)
}

// HandleCreateXML builds an XML document from a root element name and a list
// of typed fields.
func (h *Handler) HandleCreateXML(c *gin.Context) {
	log := requestLogger(c, h.logger)

	var req xmlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, log, badRequest("Invalid request body"))
		return
	}

	data, err := document.CreateXML(req.Root, req.Fields, h.progress(c, "xml"))
	if err != nil {
		respondError(c, log, err)
		return
	}

	sendArtifact(c, &pdfPkg.Artifact{
		Filename:    strings.TrimSpace(req.Root) + ".xml",
		ContentType: contentTypeXML,
		Data:        data,
	})
}

// handleWorkbook reads the uploaded "file" field as a workbook, converts it
// and sends the result back under the upload's name with ext.
func (h *Handler) handleWorkbook(c *gin.Context, ext, contentType string, convert func(context.Context, io.Reader, pdfPkg.ProgressFunc) ([]byte, error)) {
	log := requestLogger(c, h.logger)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		respondError(c, log, badRequest("No Excel file provided"))
		return
	}
	defer file.Close()

	if header.Size > h.config.MaxFileSize {
		respondError(c, log, badRequest(fmt.Sprintf("file size %d exceeds maximum allowed %d bytes", header.Size, h.config.MaxFileSize)))
		return
	}
	if !acceptFile(header, excelAccept) {
		respondError(c, log, badRequest("Unsupported spreadsheet type"))
		return
	}

	data, err := convert(c.Request.Context(), file, h.progress(c, "excel"+ext))
	if err != nil {
		respondError(c, log, err)
		return
	}

	name := sanitizeFilename(header.Filename)
	sendArtifact(c, &pdfPkg.Artifact{
		Filename:    strings.TrimSuffix(name, filepath.Ext(name)) + ext,
		ContentType: contentType,
		Data:        data,
	})
}
