package utils

import "strings"

// Do not depend on the OS for mimetypes.
// A Windows update screwed us over here and broke all the automatic mime
// typing via Go in April 2021.

// MimeTypeByExtension returns a mimetype for the given file name extension,
// which must including the leading dot.
// If the extension is not known, the call returns with ok=false and,
// additionally, a default "application/octet-stream" mime type is returned.
func MimeTypeByExtension(ext string) (mimeType string, ok bool) {
	mimeType, ok = mimeTypes[strings.ToLower(ext)]
	if ok {
		return
	}

	return defaultMimeType, false
}

var (
	defaultMimeType = "application/octet-stream"

	mimeTypes = map[string]string{
		".bmp":         "image/bmp",
		".gif":         "image/gif",
		".ico":         "image/x-icon",
		".jpeg":        "image/jpeg",
		".jpg":         "image/jpeg",
		".png":         "image/png",
		".svg":         "image/svg+xml",
		".webmanifest": "application/manifest+json",
		".webp":        "image/webp",
	}
)
