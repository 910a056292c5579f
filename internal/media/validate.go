package media

import "strings"

const (
	maxImageBytes = 10 << 20  // 10 MiB
	maxVideoBytes = 100 << 20 // 100 MiB
)

// allowedContentTypes is the fixed upload allow-list. Anything else is
// rejected before any network call.
var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,

	"video/mp4":       true,
	"video/webm":      true,
	"video/ogg":       true,
	"video/quicktime": true,
}

// ValidateFile checks a candidate file's declared MIME type and byte size
// against the upload policy. It is pure and performs no I/O, so it runs
// before the store is touched. A file exactly at the size ceiling passes.
func ValidateFile(contentType string, size int64) error {
	if !allowedContentTypes[contentType] {
		return NewValidationError("Invalid file type. Only images and videos are allowed.")
	}

	max := int64(maxImageBytes)
	if strings.HasPrefix(contentType, "video/") {
		max = maxVideoBytes
	}
	if size > max {
		return NewValidationError("File too large. Maximum size is %dMB.", max>>20)
	}
	return nil
}
