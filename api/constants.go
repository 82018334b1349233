package api

import "time"

const (
	// DefaultMaxFileSize is the default maximum upload size per file (10MB)
	DefaultMaxFileSize = 10 * 1024 * 1024

	// DefaultMaxFiles caps how many files one multi-file request may carry
	DefaultMaxFiles = 20

	// DefaultPort is the default server port
	DefaultPort = "8080"

	// DefaultTempDir is the default scratch directory for office conversions
	DefaultTempDir = "./temp"

	// DefaultOfficeBinary is the headless office suite used for conversions
	DefaultOfficeBinary = "soffice"

	// ServerReadTimeout is the HTTP server read timeout
	ServerReadTimeout = 30 * time.Second

	// ServerWriteTimeout is the HTTP server write timeout
	ServerWriteTimeout = 90 * time.Second

	// ServerIdleTimeout is the HTTP server idle timeout
	ServerIdleTimeout = 60 * time.Second

	// GracefulShutdownTimeout is the timeout for graceful shutdown
	GracefulShutdownTimeout = 10 * time.Second

	// multipartMemory is what gin keeps in memory before spilling parts to disk
	multipartMemory = 32 << 20

	// maxErrorMessageLength truncates error details returned to clients
	maxErrorMessageLength = 200

	// HeaderRequestID carries the per-request identifier
	HeaderRequestID = "X-Request-ID"

	// HeaderSkippedRanges lists split ranges that did not fit the document
	HeaderSkippedRanges = "X-Skipped-Ranges"
)
