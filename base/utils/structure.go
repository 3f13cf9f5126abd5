package utils

import "io/fs"

// FSPermission describes who may access a written file.
type FSPermission uint8

const (
	AdminOnlyPermission FSPermission = iota
	PublicReadPermission
	PublicWritePermission
)

// AsUnixFilePermission return the corresponding unix permission for a regular file.
func (perm FSPermission) AsUnixFilePermission() fs.FileMode {
	switch perm {
	case AdminOnlyPermission:
		return 0o600
	case PublicReadPermission:
		return 0o644
	case PublicWritePermission:
		return 0o666
	}

	return 0
}
