package evaluate

import (
	"errors"
	"math"
	"testing"
)

func TestMAPEPerfect(t *testing.T) {
	actual := []float64{100, 101, 102, 103}
	mape, err := MAPE(actual, actual, 0)
	if err != nil {
		t.Fatalf("MAPE failed: %v", err)
	}
	if mape != 0 {
		t.Errorf("Expected exactly 0 for identical sequences, got %v", mape)
	}
}

func TestMAPEKnownValue(t *testing.T) {
	actual := []float64{110, 110}
	predicted := []float64{100, 100}

	mape, err := MAPE(actual, predicted, 0)
	if err != nil {
		t.Fatalf("MAPE failed: %v", err)
	}
	if math.Abs(mape-10) > 1e-9 {
		t.Errorf("Expected 10%%, got %v", mape)
	}
}

func TestMAPELengthMismatch(t *testing.T) {
	if _, err := MAPE([]float64{1, 2}, []float64{1}, 0); err == nil {
		t.Error("Expected error for mismatched lengths")
	}
}

func TestMAPEDegenerate(t *testing.T) {
	actual := []float64{1, 2, 3}
	predicted := []float64{1, 0, 3}

	_, err := MAPE(actual, predicted, 0)

	var degen *DegenerateError
	if !errors.As(err, &degen) {
		t.Fatalf("Expected *DegenerateError, got %v", err)
	}
	if degen.Index != 1 {
		t.Errorf("Expected the offending index 1, got %d", degen.Index)
	}
}

func TestMAPEZeroInSkippedPrefix(t *testing.T) {
	actual := []float64{1, 2, 3}
	predicted := []float64{0, 2, 3}

	mape, err := MAPE(actual, predicted, 1)
	if err != nil {
		t.Fatalf("Expected the skipped zero to be ignored, got %v", err)
	}
	if mape != 0 {
		t.Errorf("Expected 0, got %v", mape)
	}
}

func TestMAPEDefaultWarmup(t *testing.T) {
	n := 20
	actual := make([]float64, n)
	predicted := make([]float64, n)
	for i := range actual {
		actual[i] = 100
		predicted[i] = 100
	}
	// Error confined to the default warm-up window.
	for i := 0; i < DefaultWarmup; i++ {
		predicted[i] = 50
	}

	mape, err := MAPE(actual, predicted, -1)
	if err != nil {
		t.Fatalf("MAPE failed: %v", err)
	}
	if mape != 0 {
		t.Errorf("Expected the default warm-up to exclude the noisy prefix, got %v", mape)
	}
}

func TestMAPESkipTooLarge(t *testing.T) {
	if _, err := MAPE([]float64{1, 2}, []float64{1, 2}, 2); err == nil {
		t.Error("Expected error when the skip leaves nothing to score")
	}
}
