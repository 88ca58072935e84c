package analyze

import (
	"math/rand"
	"testing"
)

func TestHistogramBinSums(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	values := make([]float64, 500)
	for i := range values {
		values[i] = rng.NormFloat64()*10 + 50
	}

	chart := Histogram(values, "load")
	if chart == nil {
		t.Fatal("expected a histogram")
	}
	if chart.Type != "histogram" {
		t.Errorf("type = %q, want histogram", chart.Type)
	}
	if len(chart.Labels) != len(chart.Values) {
		t.Fatalf("labels/values length mismatch: %d vs %d", len(chart.Labels), len(chart.Values))
	}
	if len(chart.Values) < minHistogramBins || len(chart.Values) > maxHistogramBins {
		t.Errorf("bin count %d outside [%d, %d]", len(chart.Values), minHistogramBins, maxHistogramBins)
	}

	sum := 0
	for _, c := range chart.Values {
		sum += c
	}
	if sum != len(values) {
		t.Errorf("bin counts sum to %d, want %d", sum, len(values))
	}
}

func TestHistogramConstantColumn(t *testing.T) {
	chart := Histogram([]float64{3, 3, 3, 3}, "flat")
	if chart == nil {
		t.Fatal("expected a histogram")
	}
	if len(chart.Values) != 1 || chart.Values[0] != 4 {
		t.Errorf("constant column should collapse to one bin, got %+v", chart.Values)
	}
}

func TestHistogramEmpty(t *testing.T) {
	if Histogram(nil, "x") != nil {
		t.Error("no values should yield no chart")
	}
}

func TestBarChart(t *testing.T) {
	t.Run("value counts descending", func(t *testing.T) {
		// Scenario: ["a","b","a","a"] plus one missing (already dropped).
		chart := BarChart([]string{"a", "b", "a", "a"}, "letter")
		if chart == nil {
			t.Fatal("expected a bar chart")
		}
		if chart.Type != "bar" {
			t.Errorf("type = %q, want bar", chart.Type)
		}
		if len(chart.Labels) != 2 || chart.Labels[0] != "a" || chart.Labels[1] != "b" {
			t.Errorf("labels = %v, want [a b]", chart.Labels)
		}
		if chart.Values[0] != 3 || chart.Values[1] != 1 {
			t.Errorf("values = %v, want [3 1]", chart.Values)
		}
	})

	t.Run("caps distinct values", func(t *testing.T) {
		var values []string
		for i := 0; i < 40; i++ {
			values = append(values, string(rune('a'+i%26)))
		}
		chart := BarChart(values, "letters")
		if len(chart.Labels) != maxBarCategories {
			t.Errorf("labels = %d, want %d", len(chart.Labels), maxBarCategories)
		}
	})

	t.Run("ties keep first appearance order", func(t *testing.T) {
		chart := BarChart([]string{"z", "m", "z", "m", "a"}, "col")
		if chart.Labels[0] != "z" || chart.Labels[1] != "m" || chart.Labels[2] != "a" {
			t.Errorf("labels = %v, want [z m a]", chart.Labels)
		}
	})
}

func TestBoxPlotWhiskers(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 100}
	box := BoxPlot(values)
	if box == nil {
		t.Fatal("expected a box plot")
	}

	if box.Q1 != 2.25 || box.Q3 != 4.75 || box.Median != 3.5 {
		t.Errorf("quartiles = %v/%v/%v, want 2.25/3.5/4.75", box.Q1, box.Median, box.Q3)
	}
	// Whiskers are the most extreme non-outlier values, not dataset min/max.
	if box.Min != 1 || box.Max != 5 {
		t.Errorf("whiskers = [%v, %v], want [1, 5]", box.Min, box.Max)
	}
	if len(box.Outliers) != 1 || box.Outliers[0] != 100 {
		t.Errorf("outliers = %v, want [100]", box.Outliers)
	}
}

func TestBoxPlotTooFewValues(t *testing.T) {
	if BoxPlot([]float64{1, 2, 3}) != nil {
		t.Error("box plot undefined for <4 values")
	}
}
