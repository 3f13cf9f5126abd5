package utils

import (
	"errors"
	"io/fs"
	"os"
)

// PathExists returns whether the given path (file or dir) exists.
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || errors.Is(err, fs.ErrExist)
}

// IsRegularFile returns whether the given path exists and is a regular file.
// Symlinks are followed.
func IsRegularFile(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && stat.Mode().IsRegular()
}
