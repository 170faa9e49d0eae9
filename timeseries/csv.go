package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// CSVOptions holds options for loading a price series from CSV.
type CSVOptions struct {
	DateColumn  string // Column holding dates (default: "Date")
	ValueColumn string // Column holding the price (default: "Adj Close")
	DateFormat  string // Preferred date layout (default: "2006-01-02")
	SkipRows    int    // Data rows to drop after the header
}

// DefaultCSVOptions returns defaults suited to daily OHLC exports.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		DateColumn:  "Date",
		ValueColumn: "Adj Close",
		DateFormat:  "2006-01-02",
	}
}

// LoadCSV loads a price series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	series, err := LoadCSVFromReader(file, opts)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filename, err)
	}
	return series, nil
}

// LoadCSVFromReader loads a price series from an io.Reader.
// The first row is treated as a header; rows with empty or non-numeric
// values are skipped. Rows must already be in chronological order.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	dateIdx, valueIdx := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(strings.Trim(h, "\"")) {
		case opts.DateColumn:
			dateIdx = i
		case opts.ValueColumn:
			valueIdx = i
		}
	}
	if valueIdx == -1 {
		return nil, fmt.Errorf("value column %q not found in header", opts.ValueColumn)
	}

	skipped := 0
	var values []float64
	var timestamps []time.Time

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if skipped < opts.SkipRows {
			skipped++
			continue
		}

		if valueIdx >= len(record) {
			continue
		}
		valStr := strings.TrimSpace(strings.Trim(record[valueIdx], "\""))
		if valStr == "" || valStr == "NA" || valStr == "null" {
			continue
		}
		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			continue
		}

		if dateIdx >= 0 && dateIdx < len(record) {
			dateStr := strings.TrimSpace(strings.Trim(record[dateIdx], "\""))
			ts, err := parseDate(dateStr, opts.DateFormat)
			if err != nil {
				return nil, fmt.Errorf("parse date %q: %w", dateStr, err)
			}
			timestamps = append(timestamps, ts)
		}

		values = append(values, val)
	}

	if len(values) == 0 {
		return nil, errors.New("no valid data found in CSV")
	}

	if len(timestamps) == len(values) {
		return NewWithTimestamps(timestamps, values)
	}
	return New(values), nil
}

// parseDate tries the preferred layout first, then common fallbacks.
func parseDate(s, preferred string) (time.Time, error) {
	layouts := []string{
		preferred,
		"2006-01-02",
		"2006-01-02T15:04:05",
		"2006/01/02",
		"01/02/2006",
	}
	var err error
	for _, layout := range layouts {
		var ts time.Time
		ts, err = time.Parse(layout, s)
		if err == nil {
			return ts, nil
		}
	}
	return time.Time{}, err
}
