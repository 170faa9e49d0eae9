package timeseries

import (
	"strings"
	"testing"
)

const sampleCSV = `Date,Open,High,Low,Close,Adj Close,Volume
2020-01-02,100.0,101.0,99.0,100.5,100.5,1000
2020-01-03,100.5,102.0,100.0,101.5,101.5,1100
2020-01-06,101.5,103.0,101.0,102.5,102.5,1200
2020-01-07,102.5,103.5,102.0,103.0,103.0,1300
`

func TestLoadCSVFromReader(t *testing.T) {
	series, err := LoadCSVFromReader(strings.NewReader(sampleCSV), nil)
	if err != nil {
		t.Fatalf("LoadCSVFromReader failed: %v", err)
	}

	if series.Len() != 4 {
		t.Fatalf("Expected 4 observations, got %d", series.Len())
	}
	if series.Values[0] != 100.5 {
		t.Errorf("Expected first value 100.5, got %v", series.Values[0])
	}
	if series.Values[3] != 103.0 {
		t.Errorf("Expected last value 103.0, got %v", series.Values[3])
	}

	if len(series.Timestamps) != 4 {
		t.Fatalf("Expected 4 timestamps, got %d", len(series.Timestamps))
	}
	if got := series.Timestamps[0].Format("2006-01-02"); got != "2020-01-02" {
		t.Errorf("Expected first date 2020-01-02, got %s", got)
	}
}

func TestLoadCSVSkipRows(t *testing.T) {
	opts := DefaultCSVOptions()
	opts.SkipRows = 2

	series, err := LoadCSVFromReader(strings.NewReader(sampleCSV), opts)
	if err != nil {
		t.Fatalf("LoadCSVFromReader failed: %v", err)
	}

	if series.Len() != 2 {
		t.Fatalf("Expected 2 observations after skipping 2 rows, got %d", series.Len())
	}
	if series.Values[0] != 102.5 {
		t.Errorf("Expected first value 102.5, got %v", series.Values[0])
	}
}

func TestLoadCSVCustomColumn(t *testing.T) {
	opts := DefaultCSVOptions()
	opts.ValueColumn = "Close"

	series, err := LoadCSVFromReader(strings.NewReader(sampleCSV), opts)
	if err != nil {
		t.Fatalf("LoadCSVFromReader failed: %v", err)
	}
	if series.Values[0] != 100.5 {
		t.Errorf("Expected Close value 100.5, got %v", series.Values[0])
	}
}

func TestLoadCSVMissingColumn(t *testing.T) {
	opts := DefaultCSVOptions()
	opts.ValueColumn = "Nope"

	_, err := LoadCSVFromReader(strings.NewReader(sampleCSV), opts)
	if err == nil {
		t.Error("Expected error for missing value column")
	}
}

func TestLoadCSVSkipsInvalidValues(t *testing.T) {
	csv := `Date,Adj Close
2020-01-02,100.5
2020-01-03,NA
2020-01-06,
2020-01-07,103.0
`
	series, err := LoadCSVFromReader(strings.NewReader(csv), nil)
	if err != nil {
		t.Fatalf("LoadCSVFromReader failed: %v", err)
	}
	if series.Len() != 2 {
		t.Fatalf("Expected 2 valid observations, got %d", series.Len())
	}
}

func TestLoadCSVEmpty(t *testing.T) {
	csv := "Date,Adj Close\n"
	_, err := LoadCSVFromReader(strings.NewReader(csv), nil)
	if err == nil {
		t.Error("Expected error for CSV with no data rows")
	}
}
