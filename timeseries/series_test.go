package timeseries

import (
	"math"
	"testing"
	"time"
)

func TestNewSyntheticTimestamps(t *testing.T) {
	s := New([]float64{1, 2, 3})

	if s.Len() != 3 {
		t.Fatalf("Expected length 3, got %d", s.Len())
	}
	if len(s.Timestamps) != 3 {
		t.Fatalf("Expected 3 timestamps, got %d", len(s.Timestamps))
	}
	for i := 1; i < len(s.Timestamps); i++ {
		if !s.Timestamps[i].After(s.Timestamps[i-1]) {
			t.Errorf("Timestamps not increasing at index %d", i)
		}
	}
}

func TestNewWithTimestampsValidation(t *testing.T) {
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := NewWithTimestamps([]time.Time{base, base.AddDate(0, 0, 1)}, []float64{1})
	if err == nil {
		t.Error("Expected error for mismatched lengths")
	}

	// Duplicate timestamp
	_, err = NewWithTimestamps([]time.Time{base, base}, []float64{1, 2})
	if err == nil {
		t.Error("Expected error for duplicate timestamps")
	}

	// Out of order
	_, err = NewWithTimestamps([]time.Time{base.AddDate(0, 0, 1), base}, []float64{1, 2})
	if err == nil {
		t.Error("Expected error for unsorted timestamps")
	}

	s, err := NewWithTimestamps([]time.Time{base, base.AddDate(0, 0, 1)}, []float64{1, 2})
	if err != nil {
		t.Fatalf("Valid input failed: %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("Expected length 2, got %d", s.Len())
	}
}

func TestDiff(t *testing.T) {
	s := New([]float64{1, 4, 9, 16})
	diff := s.Diff()

	expected := []float64{3, 5, 7}
	if diff.Len() != len(expected) {
		t.Fatalf("Expected length %d, got %d", len(expected), diff.Len())
	}
	for i, v := range expected {
		if diff.Values[i] != v {
			t.Errorf("Expected diff[%d]=%v, got %v", i, v, diff.Values[i])
		}
	}
}

func TestDiffNLagDifference(t *testing.T) {
	s := New([]float64{10, 20, 30, 40, 50})
	diff := s.DiffN(2)

	expected := []float64{20, 20, 20}
	if diff.Len() != len(expected) {
		t.Fatalf("Expected length %d, got %d", len(expected), diff.Len())
	}
	for i, v := range expected {
		if diff.Values[i] != v {
			t.Errorf("Expected diff[%d]=%v, got %v", i, v, diff.Values[i])
		}
	}
}

func TestDiffNZeroLag(t *testing.T) {
	s := New([]float64{5, 7, 9})
	diff := s.DiffN(0)

	if diff.Len() != 3 {
		t.Fatalf("Expected length 3 for lag-0 difference, got %d", diff.Len())
	}
	for i, v := range diff.Values {
		if v != 0 {
			t.Errorf("Expected zero at index %d, got %v", i, v)
		}
	}
}

func TestDiffNOutOfRange(t *testing.T) {
	s := New([]float64{1, 2, 3})

	if got := s.DiffN(5).Len(); got != 0 {
		t.Errorf("Expected empty series for oversized lag, got length %d", got)
	}
	if got := s.DiffN(-1).Len(); got != 0 {
		t.Errorf("Expected empty series for negative lag, got length %d", got)
	}
}

func TestSeasonalDiff(t *testing.T) {
	s := New([]float64{1, 2, 3, 11, 12, 13})
	diff := s.SeasonalDiff(3)

	expected := []float64{10, 10, 10}
	if diff.Len() != len(expected) {
		t.Fatalf("Expected length %d, got %d", len(expected), diff.Len())
	}
	for i, v := range expected {
		if diff.Values[i] != v {
			t.Errorf("Expected diff[%d]=%v, got %v", i, v, diff.Values[i])
		}
	}
}

func TestSlice(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5})

	sub := s.Slice(1, 4)
	if sub.Len() != 3 {
		t.Fatalf("Expected length 3, got %d", sub.Len())
	}
	if sub.Values[0] != 2 || sub.Values[2] != 4 {
		t.Errorf("Unexpected slice values: %v", sub.Values)
	}

	// Slice returns a copy
	sub.Values[0] = 99
	if s.Values[1] == 99 {
		t.Error("Slice should not share backing storage with the source")
	}

	if got := s.Slice(3, 2).Len(); got != 0 {
		t.Errorf("Expected empty series for inverted bounds, got length %d", got)
	}
}

func TestSummaryStatistics(t *testing.T) {
	s := New([]float64{2, 4, 6, 8})

	if got := s.Mean(); got != 5 {
		t.Errorf("Expected mean 5, got %v", got)
	}
	if got := s.Variance(); math.Abs(got-20.0/3.0) > 1e-9 {
		t.Errorf("Expected variance %v, got %v", 20.0/3.0, got)
	}
	if got := s.Min(); got != 2 {
		t.Errorf("Expected min 2, got %v", got)
	}
	if got := s.Max(); got != 8 {
		t.Errorf("Expected max 8, got %v", got)
	}
}
