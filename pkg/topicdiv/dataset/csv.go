package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/cognicore/topicdiv/pkg/topicdiv/internalerr"
)

// ReadCSV parses a CSV file whose first record is the header.
func ReadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ds, err := decodeCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	ds.Sources = []string{path}
	return ds, nil
}

func decodeCSV(r io.Reader) (*Dataset, error) {
	// Spreadsheet exports often carry a UTF-8 BOM that would otherwise end up
	// in the first column name. Other bytes pass through untouched so invalid
	// UTF-8 is rejected below instead of being replaced.
	br := transform.NewReader(bufio.NewReader(r), unicode.BOMOverride(transform.Nop))
	cr := csv.NewReader(br)
	cr.ReuseRecord = false

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("no header row: %w", internalerr.ErrInvalidInput)
	}
	if err != nil {
		return nil, err
	}
	if err := checkUTF8(cr, header); err != nil {
		return nil, err
	}

	ds := &Dataset{Columns: dedupeColumns(header)}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := checkUTF8(cr, rec); err != nil {
			return nil, err
		}
		ds.Rows = append(ds.Rows, rec)
	}
	return ds, nil
}

func checkUTF8(cr *csv.Reader, rec []string) error {
	for i, field := range rec {
		if !utf8.ValidString(field) {
			line, col := cr.FieldPos(i)
			return fmt.Errorf("line %d column %d: invalid UTF-8: %w", line, col, internalerr.ErrInvalidInput)
		}
	}
	return nil
}

// dedupeColumns renames repeated header names to name.1, name.2, ...
func dedupeColumns(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, name := range header {
		n, dup := seen[name]
		seen[name] = n + 1
		if !dup {
			out[i] = name
			continue
		}
		candidate := name + "." + strconv.Itoa(n)
		for {
			if _, taken := seen[candidate]; !taken {
				break
			}
			n++
			candidate = name + "." + strconv.Itoa(n)
		}
		seen[name] = n + 1
		seen[candidate] = 1
		out[i] = candidate
	}
	return out
}

// WriteCSV atomically replaces path with the dataset: the rows go to a
// temporary file in the same directory which is renamed over path.
func WriteCSV(path string, ds *Dataset) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*.csv")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	bw := bufio.NewWriterSize(tmp, 64*1024)
	if err := encodeCSV(bw, ds); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	_ = os.Chmod(tmpPath, 0o644)
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

func encodeCSV(w io.Writer, ds *Dataset) error {
	cw := csv.NewWriter(w)
	if err := writeRecord(w, cw, ds.Columns); err != nil {
		return err
	}
	for _, row := range ds.Rows {
		if err := writeRecord(w, cw, row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeRecord writes one record. csv.Writer emits a lone empty field as a
// blank line, which csv.Reader skips, so that case is written quoted.
func writeRecord(w io.Writer, cw *csv.Writer, rec []string) error {
	if len(rec) != 1 || rec[0] != "" {
		return cw.Write(rec)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\"\"\n")
	return err
}
