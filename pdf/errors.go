package pdf

import "errors"

var (
	ErrNoValidPages         = errors.New("no valid pages selected")
	ErrNoValidRanges        = errors.New("no valid page ranges selected")
	ErrInvalidPDF           = errors.New("invalid or corrupted PDF")
	ErrUnlockFailed         = errors.New("invalid password or corrupted PDF")
	ErrNothingToBundle      = errors.New("no output files to deliver")
	ErrInvalidRotation      = errors.New("rotation must be a multiple of 90 degrees")
	ErrEmptyWatermark       = errors.New("watermark text is empty")
	ErrEmptyPassword        = errors.New("password is empty")
	ErrNoInputFiles         = errors.New("no input files")
	ErrRemoveAllPages       = errors.New("cannot remove every page of a document")
	ErrConverterUnavailable = errors.New("document converter unavailable")
)
