package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ImportResult describes the outcome of a CSV import.
type ImportResult struct {
	File     string   `json:"file,omitempty"`
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Warnings []string `json:"warnings,omitempty"`
}

// ImportCSV reads a roster from a CSV file. The first record is a header
// and is always skipped. Each record needs at least two fields: name and
// score. Bad records (short, non-numeric score, score out of range) are
// skipped with a warning, the rest of the file still imports. Duplicate
// names keep the later score and the later roster position.
func ImportCSV(path string) (*Roster, *ImportResult, error) {
	if path == "" {
		return nil, nil, errors.New("file path required")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "error opening file: %s", path)
	}
	defer f.Close()

	roster, res, err := readCSV(f)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "error reading file: %s", path)
	}
	res.File = path

	slog.Debug("csv import done", "file", path, "imported", res.Imported, "skipped", res.Skipped)
	return roster, res, nil
}

func readCSV(in io.Reader) (*Roster, *ImportResult, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.LazyQuotes = true

	roster := NewRoster()
	res := &ImportResult{}

	header := true
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, errors.Wrap(err, "error reading csv record")
		}

		if header {
			header = false
			continue
		}

		if len(rec) < 2 {
			if !emptyRecord(rec) {
				res.warn("skipping incomplete row: %v", rec)
			}
			continue
		}

		name := strings.TrimSpace(rec[0])
		raw := strings.TrimSpace(rec[1])

		score, err := strconv.Atoi(raw)
		if err != nil {
			res.warn("skipping %s: invalid score value: %s", name, raw)
			continue
		}

		if score < ScoreMin || score > ScoreMax {
			res.warn("skipping %s: score %d is out of range", name, score)
			continue
		}

		if _, ok := roster.Get(name); ok {
			slog.Debug("duplicate student, keeping later score", "name", name, "score", score)
		}

		if err := roster.Set(name, score); err != nil {
			res.warn("skipping row: %v", err)
			continue
		}
	}

	res.Imported = roster.Len()
	return roster, res, nil
}

func (r *ImportResult) warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	slog.Warn(msg)
	r.Warnings = append(r.Warnings, msg)
	r.Skipped++
}

func emptyRecord(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
