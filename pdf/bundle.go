package pdf

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// Artifact is what gets handed to the user: either a single document or an
// archive of several.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
	Archived    bool
}

// Bundle prepares outputs for delivery. A single file is delivered as is; two
// or more are always zipped into one archive named archiveName.
func Bundle(files []OutputFile, archiveName string) (*Artifact, error) {
	switch {
	case len(files) == 0:
		return nil, ErrNothingToBundle
	case len(files) == 1:
		return &Artifact{
			Filename:    files[0].Name,
			ContentType: ContentTypePDF,
			Data:        files[0].Data,
		}, nil
	}

	if archiveName == "" {
		archiveName = DefaultArchiveName
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range files {
		w, err := zw.Create(f.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to create archive entry %s: %w", f.Name, err)
		}
		if _, err := w.Write(f.Data); err != nil {
			return nil, fmt.Errorf("failed to write archive entry %s: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}

	return &Artifact{
		Filename:    archiveName,
		ContentType: ContentTypeZip,
		Data:        buf.Bytes(),
		Archived:    true,
	}, nil
}
