// Package input reads process descriptions from CSV.
package input

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vinhtrinh326/schedsim/internal/scheduler"
)

var ErrMalformedRow = errors.New("malformed process row")

// Open opens the processing file and returns a close func that reports
// close failures to onErr.
func Open(path string, onErr func(error)) (*os.File, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: error opening scheduling file", err)
	}
	closeFn := func() {
		if err := f.Close(); err != nil && onErr != nil {
			onErr(fmt.Errorf("%w: error closing scheduling file", err))
		}
	}
	return f, closeFn, nil
}

// LoadProcesses parses rows of the form id,burst,arrival[,priority].
// Blank lines are skipped, as is a leading header row.
func LoadProcesses(r io.Reader) ([]scheduler.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV", err)
	}

	processes := make([]scheduler.Process, 0, len(rows))
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		p, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		processes = append(processes, p)
	}
	return processes, nil
}

func isHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	_, err := strconv.ParseInt(strings.TrimSpace(row[0]), 10, 64)
	return err != nil
}

func parseRow(row []string) (scheduler.Process, error) {
	var p scheduler.Process
	if len(row) != 3 && len(row) != 4 {
		return p, fmt.Errorf("%w: want 3 or 4 fields, got %d", ErrMalformedRow, len(row))
	}
	fields := []*int64{&p.ProcessID, &p.BurstDuration, &p.ArrivalTime, &p.Priority}
	for i, cell := range row {
		v, err := strconv.ParseInt(strings.TrimSpace(cell), 10, 64)
		if err != nil {
			return p, fmt.Errorf("%w: field %d: %v", ErrMalformedRow, i+1, err)
		}
		*fields[i] = v
	}
	return p, nil
}
