package analyze

import (
	"math"
	"testing"
)

func TestQuantileLinearInterpolation(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 100}

	if q1 := Quantile(values, 0.25); q1 != 2.25 {
		t.Errorf("Q1 = %v, want 2.25", q1)
	}
	if q3 := Quantile(values, 0.75); q3 != 4.75 {
		t.Errorf("Q3 = %v, want 4.75", q3)
	}
	if med := Quantile(values, 0.5); med != 3.5 {
		t.Errorf("median = %v, want 3.5", med)
	}

	t.Run("input is not modified", func(t *testing.T) {
		shuffled := []float64{100, 3, 1, 5, 2, 4}
		Quantile(shuffled, 0.5)
		if shuffled[0] != 100 {
			t.Error("Quantile mutated its input")
		}
	})

	t.Run("quartile ordering", func(t *testing.T) {
		data := []float64{7, 1, 9, 3, 3, 8, 2, 6, 4}
		q1 := Quantile(data, 0.25)
		med := Quantile(data, 0.5)
		q3 := Quantile(data, 0.75)
		if !(q1 <= med && med <= q3) {
			t.Errorf("want Q1 <= median <= Q3, got %v %v %v", q1, med, q3)
		}
	})
}

func TestNewFenceThresholds(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 100}
	fence, ok := NewFence(values)
	if !ok {
		t.Fatal("fence should be defined for 6 values")
	}

	iqr := fence.Q3 - fence.Q1
	if fence.Lower != fence.Q1-1.5*iqr {
		t.Errorf("lower = %v, want Q1 - 1.5*IQR = %v", fence.Lower, fence.Q1-1.5*iqr)
	}
	if fence.Upper != fence.Q3+1.5*iqr {
		t.Errorf("upper = %v, want Q3 + 1.5*IQR = %v", fence.Upper, fence.Q3+1.5*iqr)
	}
	if fence.Lower != -1.5 || fence.Upper != 8.5 {
		t.Errorf("fence = [%v, %v], want [-1.5, 8.5]", fence.Lower, fence.Upper)
	}
}

func TestDetectOutliers(t *testing.T) {
	t.Run("single extreme value", func(t *testing.T) {
		values := []float64{1, 2, 3, 4, 5, 100}
		rows := []int{0, 1, 2, 3, 4, 5}

		out := DetectOutliers(values, rows)
		if out.Total != 1 {
			t.Fatalf("total = %d, want 1", out.Total)
		}
		if len(out.Rows) != 1 || out.Rows[0].Row != 6 || out.Rows[0].Value != 100 {
			t.Errorf("rows = %+v, want [{6 100}]", out.Rows)
		}
		if out.LowerThreshold != -1.5 || out.UpperThreshold != 8.5 {
			t.Errorf("thresholds = [%v, %v], want [-1.5, 8.5]",
				out.LowerThreshold, out.UpperThreshold)
		}
	})

	t.Run("count matches strict fence", func(t *testing.T) {
		values := []float64{10, 12, 11, 13, 14, -50, 90, 200, 12, 11}
		rows := make([]int, len(values))
		for i := range rows {
			rows[i] = i
		}

		out := DetectOutliers(values, rows)
		fence, _ := NewFence(values)
		want := 0
		for _, v := range values {
			if v < fence.Lower || v > fence.Upper {
				want++
			}
		}
		if out.Total != want {
			t.Errorf("total = %d, want %d", out.Total, want)
		}
	})

	t.Run("at most five rows listed", func(t *testing.T) {
		var values []float64
		for i := 1; i <= 30; i++ {
			values = append(values, float64(i))
		}
		for i := 0; i < 7; i++ {
			values = append(values, 10000+float64(i))
		}
		rows := make([]int, len(values))
		for i := range rows {
			rows[i] = i
		}

		out := DetectOutliers(values, rows)
		if out.Total != 7 {
			t.Errorf("total = %d, want 7", out.Total)
		}
		if len(out.Rows) != maxOutlierRows {
			t.Errorf("listed rows = %d, want %d", len(out.Rows), maxOutlierRows)
		}
		// Ascending by original row index.
		for i := 1; i < len(out.Rows); i++ {
			if out.Rows[i].Row <= out.Rows[i-1].Row {
				t.Errorf("rows not ascending: %+v", out.Rows)
			}
		}
	})

	t.Run("too few values reports zero outliers", func(t *testing.T) {
		out := DetectOutliers([]float64{1, 2, 1000}, []int{0, 1, 2})
		if out.Total != 0 || len(out.Rows) != 0 {
			t.Errorf("want zero outliers for <4 values, got %+v", out)
		}
	})

	t.Run("values rounded for display", func(t *testing.T) {
		values := []float64{1, 2, 3, 4, 5, 100.123456789}
		out := DetectOutliers(values, []int{0, 1, 2, 3, 4, 5})
		if out.Rows[0].Value != 100.1235 {
			t.Errorf("value = %v, want 100.1235", out.Rows[0].Value)
		}
	})
}

func TestQuantileEdges(t *testing.T) {
	if Quantile(nil, 0.5) != 0 {
		t.Error("empty input should yield 0")
	}
	if Quantile([]float64{7}, 0.25) != 7 {
		t.Error("single value should be returned for any p")
	}
	if v := Quantile([]float64{1, 2}, 1.0); v != 2 {
		t.Errorf("p=1 should be max, got %v", v)
	}
	if v := Quantile([]float64{1, 2}, 0); v != 1 {
		t.Errorf("p=0 should be min, got %v", v)
	}
	if math.IsNaN(Quantile([]float64{1, 1, 1, 1}, 0.75)) {
		t.Error("constant input should not produce NaN")
	}
}
