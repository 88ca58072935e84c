package analyze

import "testing"

func TestColumnQuality(t *testing.T) {
	tests := []struct {
		name    string
		missing int
		rows    int
		errored bool
		want    float64
	}{
		{"complete column", 0, 10, false, 100.0},
		{"half missing", 5, 10, false, 50.0},
		{"all missing", 10, 10, false, 0.0},
		{"rounded", 1, 3, false, 66.67},
		{"errored column discounted", 0, 10, true, 50.0},
		{"zero rows", 0, 0, false, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ColumnQuality(tt.missing, tt.rows, tt.errored)
			if got != tt.want {
				t.Errorf("ColumnQuality(%d, %d, %v) = %v, want %v",
					tt.missing, tt.rows, tt.errored, got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("quality %v outside [0, 100]", got)
			}
		})
	}
}

func TestOverallQuality(t *testing.T) {
	q := OverallQuality(3, 30)
	if q.Overall != 90.0 {
		t.Errorf("overall = %v, want 90.0", q.Overall)
	}
	if q.TotalMissing != 3 || q.TotalCells != 30 {
		t.Errorf("totals = %d/%d, want 3/30", q.TotalMissing, q.TotalCells)
	}

	if q := OverallQuality(0, 0); q.Overall != 0.0 {
		t.Errorf("empty dataset overall = %v, want 0.0", q.Overall)
	}

	if q := OverallQuality(0, 100); q.Overall != 100.0 {
		t.Errorf("complete dataset overall = %v, want 100.0", q.Overall)
	}
}
