package constants

import "strings"

// Format is the closed set of input kinds the pipeline accepts. The format
// is resolved once from the file extension at the acquisition boundary and
// never re-derived downstream.
type Format string

const (
	IMAGE Format = "IMAGE"
	PDF   Format = "PDF"
	TEXT  Format = "TEXT"
)

// AllowedExtensions holds the file extensions accepted for ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"txt":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat resolves a file extension to its Format. Returns "" for
// anything outside the allowed set.
func MapExtToFormat(ext string) Format {
	switch NormalizeExt(ext) {
	case "jpg", "jpeg", "png":
		return IMAGE
	case "pdf":
		return PDF
	case "txt":
		return TEXT
	default:
		return ""
	}
}
