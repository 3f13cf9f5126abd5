package renameio

import (
	"io"

	"github.com/avantgarde/favicongen/base/utils"
)

// WriteFile mirrors os.WriteFile, replacing an existing file with the same
// name atomically.
func WriteFile(filename string, data []byte, perm utils.FSPermission) error {
	return WriteWith(filename, perm, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// WriteWith streams the output of write into filename, replacing an existing
// file with the same name atomically. If write fails, filename is left as it
// was and the temporary file is removed.
func WriteWith(filename string, perm utils.FSPermission, write func(w io.Writer) error) error {
	t, err := TempFile(filename)
	if err != nil {
		return err
	}
	defer func() {
		_ = t.Cleanup()
	}()

	if err := utils.SetFilePermission(t.Name(), perm); err != nil {
		return err
	}

	if err := write(t); err != nil {
		return err
	}

	return t.CloseAtomicallyReplace()
}
