package document

import "errors"

var (
	// ErrInvalidWorkbook is returned when an upload cannot be read as XLSX
	ErrInvalidWorkbook = errors.New("invalid Excel workbook")

	// ErrInvalidXMLName is returned for a root element that is not a legal XML name
	ErrInvalidXMLName = errors.New("invalid XML element name")
)
