package analyze

import (
	"testing"

	"datalens/domain/table"
)

func TestNumericStats(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	s := NumericStats(values)
	if s == nil {
		t.Fatal("expected stats")
	}

	if *s.Min != 2 || *s.Max != 9 {
		t.Errorf("min/max = %v/%v, want 2/9", *s.Min, *s.Max)
	}
	if *s.Mean != 5 {
		t.Errorf("mean = %v, want 5", *s.Mean)
	}
	if *s.Median != 4.5 {
		t.Errorf("median = %v, want 4.5", *s.Median)
	}
	// Sample std (n-1): sqrt(32/7) = 2.1380..., rounded to 2 decimals.
	if *s.Std != 2.14 {
		t.Errorf("std = %v, want 2.14 (sample)", *s.Std)
	}
}

func TestNumericStatsDegraded(t *testing.T) {
	if NumericStats(nil) != nil {
		t.Error("no values should yield nil stats")
	}

	s := NumericStats([]float64{42})
	if s == nil {
		t.Fatal("single value should still yield stats")
	}
	if *s.Std != 0 {
		t.Errorf("std of single value = %v, want 0", *s.Std)
	}
	if *s.Mean != 42 || *s.Median != 42 {
		t.Errorf("mean/median = %v/%v, want 42/42", *s.Mean, *s.Median)
	}
}

func TestDateStats(t *testing.T) {
	cells := dateCells("2006-01-02", "2024-06-15", "2023-01-01", "2024-12-31")
	cells = append(cells, table.NewMissingValue())

	s := DateStats(cells)
	if s == nil {
		t.Fatal("expected date stats")
	}
	if s.MinDate != "2023-01-01" {
		t.Errorf("min date = %q, want 2023-01-01", s.MinDate)
	}
	if s.MaxDate != "2024-12-31" {
		t.Errorf("max date = %q, want 2024-12-31", s.MaxDate)
	}
	if s.Mean != nil || s.Std != nil {
		t.Error("date stats must not carry numeric fields")
	}
}

func TestNumericValuesKeepsRowOrder(t *testing.T) {
	cells := []table.Value{
		table.NewNumberValue(10),
		table.NewMissingValue(),
		table.NewNumberValue(30),
		table.NewTextValue("n/a-ish"),
		table.NewNumberValue(50),
	}

	values, rows := NumericValues(cells)
	if len(values) != 3 {
		t.Fatalf("got %d values, want 3", len(values))
	}
	wantRows := []int{0, 2, 4}
	for i := range wantRows {
		if rows[i] != wantRows[i] {
			t.Errorf("rows = %v, want %v", rows, wantRows)
			break
		}
	}
}

func TestTextValuesSkipsMissing(t *testing.T) {
	cells := textCells("a", "", "b", "a")
	got := TextValues(cells)
	if len(got) != 3 {
		t.Fatalf("got %d values, want 3", len(got))
	}
	if got[0] != "a" || got[1] != "b" || got[2] != "a" {
		t.Errorf("values = %v", got)
	}
}
