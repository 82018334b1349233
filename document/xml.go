package document

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"pdfnest/pdf"
)

// XMLField is one child element of a generated XML document. Type "number"
// and "boolean" coerce Value; anything else is written as text.
type XMLField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

var xmlName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9._-]*$`)

// CreateXML builds an XML document with root as the document element and one
// child per field. Fields with an empty key or value, or a key that is not a
// legal element name, are left out.
func CreateXML(root string, fields []XMLField, onProgress pdf.ProgressFunc) ([]byte, error) {
	root = strings.TrimSpace(root)
	if !xmlName.MatchString(root) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidXMLName, root)
	}

	report(onProgress, 25, "Building XML structure...")
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")

	start := xml.StartElement{Name: xml.Name{Local: root}}
	if err := enc.EncodeToken(start); err != nil {
		return nil, fmt.Errorf("failed to write XML: %w", err)
	}

	report(onProgress, 50, "Adding fields...")
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" || field.Value == "" || !xmlName.MatchString(key) {
			continue
		}
		el := xml.StartElement{Name: xml.Name{Local: key}}
		if err := enc.EncodeElement(fieldValue(field), el); err != nil {
			return nil, fmt.Errorf("failed to write field %s: %w", key, err)
		}
	}

	report(onProgress, 75, "Finalizing XML...")
	if err := enc.EncodeToken(start.End()); err != nil {
		return nil, fmt.Errorf("failed to write XML: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return nil, fmt.Errorf("failed to write XML: %w", err)
	}

	report(onProgress, 100, "XML created!")
	return buf.Bytes(), nil
}

// fieldValue coerces a field to its declared type. Unparseable numbers become 0.
func fieldValue(field XMLField) string {
	switch field.Type {
	case "number":
		v, err := strconv.ParseFloat(strings.TrimSpace(field.Value), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case "boolean":
		return strconv.FormatBool(strings.EqualFold(strings.TrimSpace(field.Value), "true"))
	}
	return field.Value
}
