// Package csvio reads and writes the dataset's CSV files. Readers tolerate a
// UTF-8 byte order mark and enforce per-table header contracts; writers emit
// the mark the source tooling expects and replace output files atomically, so
// a failed run never leaves a partially written table behind.
package csvio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/podiumlabs/podium/pkg/errors"
)

// utf8BOM is the byte order mark the source files carry.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadTable decodes a CSV file into header-keyed records, enforcing that
// every required column is present. Columns beyond the required set are kept;
// the header contract is a minimum, not an exact match.
func ReadTable(path string, required []string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	defer func() { _ = f.Close() }()

	return decode(skipBOM(f), path, required)
}

func decode(r io.Reader, path string, required []string) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows surface as missing cells, not read errors

	header, err := cr.Read()
	if err != nil {
		return nil, errors.WrapParse("csv", path, err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[col] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, errors.NewParseError("csv", path, fmt.Sprintf("missing required column %q", col), nil)
		}
	}

	var records []map[string]string
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &errors.ParseError{Format: "csv", File: path, Line: line, Message: err.Error(), Err: err}
		}

		rec := make(map[string]string, len(header))
		for col, i := range index {
			if i < len(row) {
				rec[col] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// skipBOM drops a leading UTF-8 byte order mark if one is present.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	lead, err := br.Peek(len(utf8BOM))
	if err == nil && lead[0] == utf8BOM[0] && lead[1] == utf8BOM[1] && lead[2] == utf8BOM[2] {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}
