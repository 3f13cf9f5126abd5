//go:build !windows

package utils

import "os"

// SetFilePermission sets the permission of a non executable file.
func SetFilePermission(path string, perm FSPermission) error {
	return os.Chmod(path, perm.AsUnixFilePermission())
}
