package csvio

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/podiumlabs/podium/pkg/constants"
	"github.com/podiumlabs/podium/pkg/errors"
)

// WriteTable writes a header and rows to path, prefixed with the UTF-8 byte
// order mark the downstream tooling expects. The file is written to a
// temporary sibling and renamed into place, so readers never observe a
// half-written table.
func WriteTable(path string, header []string, rows [][]string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return errors.WrapIO("create", "temp file", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = tmp.Close() }()

	if err := writeAll(tmp, header, rows); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("write", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("rename", path, err)
	}
	if err := os.Chmod(path, constants.FilePermissions); err != nil {
		return errors.WrapIO("chmod", path, err)
	}
	return nil
}

func writeAll(f *os.File, header []string, rows [][]string) error {
	if _, err := f.Write(utf8BOM); err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
