package api

import (
	"context"
	"errors"
	"net/http"

	"pdfnest/document"
	pdfPkg "pdfnest/pdf"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// errBadRequest marks request-shape problems found by the handlers themselves
var errBadRequest = errors.New("bad request")

// requestError is a client mistake whose message is safe to show as is
type requestError struct {
	msg string
}

func (e *requestError) Error() string { return e.msg }

func (e *requestError) Is(target error) bool { return target == errBadRequest }

func badRequest(msg string) error {
	return &requestError{msg: msg}
}

var userMessages = map[error]string{
	pdfPkg.ErrNoValidPages:         `Please enter valid page numbers (e.g., "1,3,5" or "1-5").`,
	pdfPkg.ErrNoValidRanges:        `Please enter valid page ranges (e.g., "1-5,6-10").`,
	pdfPkg.ErrUnlockFailed:         "Invalid password or corrupted PDF",
	pdfPkg.ErrRemoveAllPages:       "Cannot remove every page of the document",
	pdfPkg.ErrConverterUnavailable: "Document conversion is not available on this server",
	document.ErrInvalidWorkbook:    "The file could not be read as an Excel workbook",
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, pdfPkg.ErrNoValidPages),
		errors.Is(err, pdfPkg.ErrNoValidRanges),
		errors.Is(err, pdfPkg.ErrInvalidRotation),
		errors.Is(err, pdfPkg.ErrEmptyWatermark),
		errors.Is(err, pdfPkg.ErrEmptyPassword),
		errors.Is(err, pdfPkg.ErrNoInputFiles),
		errors.Is(err, pdfPkg.ErrRemoveAllPages),
		errors.Is(err, pdfPkg.ErrUnlockFailed),
		errors.Is(err, document.ErrInvalidXMLName):
		return http.StatusBadRequest
	case errors.Is(err, pdfPkg.ErrInvalidPDF),
		errors.Is(err, document.ErrInvalidWorkbook):
		return http.StatusUnprocessableEntity
	case errors.Is(err, pdfPkg.ErrConverterUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func messageFor(err error) string {
	for target, msg := range userMessages {
		if errors.Is(err, target) {
			return msg
		}
	}
	msg := err.Error()
	if len(msg) > maxErrorMessageLength {
		msg = msg[:maxErrorMessageLength] + "..."
	}
	return msg
}

// respondError logs err and writes it as a JSON error body.
func respondError(c *gin.Context, logger logrus.FieldLogger, err error) {
	status := statusFor(err)
	entry := logger.WithError(err).WithField("status", status)
	if status >= http.StatusInternalServerError {
		entry.Error("PDF operation error")
	} else {
		entry.Debug("PDF operation rejected")
	}
	_ = c.Error(err)
	c.JSON(status, gin.H{"error": messageFor(err)})
}
