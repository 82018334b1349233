package pdf

const (
	// MaxPageNumber is the largest page index a selector may name. Tokens that
	// reach beyond it are dropped like any other invalid token.
	MaxPageNumber = 1 << 16

	// DefaultArchiveName is the file name used when several outputs are zipped
	DefaultArchiveName = "pdf-files.zip"

	// ContentTypePDF is the MIME type of a single delivered document
	ContentTypePDF = "application/pdf"

	// ContentTypeZip is the MIME type of a bundled archive
	ContentTypeZip = "application/zip"

	// OwnerPasswordSuffix is appended to the user password to derive the owner password
	OwnerPasswordSuffix = "_owner"

	// WatermarkDescription configures the diagonal text watermark
	WatermarkDescription = "fontname:Helvetica, points:50, rotation:45, opacity:0.3, fillcolor:#CCCCCC"
)
