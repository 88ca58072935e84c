package analyze

import (
	"math"
	"testing"

	"datalens/domain/table"
)

func TestCorrelation(t *testing.T) {
	t.Run("perfectly correlated pair", func(t *testing.T) {
		// y = 2x
		cells := map[string][]table.Value{
			"x": numCells(1, 2, 3, 4, 5, 6),
			"y": numCells(2, 4, 6, 8, 10, 12),
		}
		corr := Correlation([]string{"x", "y"}, cells)
		if corr == nil {
			t.Fatal("expected a matrix")
		}
		if math.Abs(corr.Matrix[0][1]-1.0) > 1e-9 {
			t.Errorf("r(x,y) = %v, want 1.0", corr.Matrix[0][1])
		}
	})

	t.Run("symmetric with unit diagonal", func(t *testing.T) {
		cells := map[string][]table.Value{
			"a": numCells(1, 5, 2, 8, 3, 9, 4),
			"b": numCells(2, 4, 9, 1, 7, 3, 5),
			"c": numCells(10, 20, 15, 25, 30, 5, 12),
		}
		names := []string{"a", "b", "c"}
		corr := Correlation(names, cells)

		for i := range names {
			if corr.Matrix[i][i] != 1.0 {
				t.Errorf("diagonal [%d][%d] = %v, want 1.0", i, i, corr.Matrix[i][i])
			}
			for j := range names {
				if corr.Matrix[i][j] != corr.Matrix[j][i] {
					t.Errorf("matrix not symmetric at [%d][%d]", i, j)
				}
				if math.Abs(corr.Matrix[i][j]) > 1.0 {
					t.Errorf("|r| > 1 at [%d][%d]: %v", i, j, corr.Matrix[i][j])
				}
			}
		}
	})

	t.Run("constant column yields zero", func(t *testing.T) {
		cells := map[string][]table.Value{
			"flat": numCells(5, 5, 5, 5, 5),
			"v":    numCells(1, 2, 3, 4, 5),
		}
		corr := Correlation([]string{"flat", "v"}, cells)
		if corr.Matrix[0][1] != 0.0 {
			t.Errorf("r(flat,v) = %v, want 0.0", corr.Matrix[0][1])
		}
	})

	t.Run("pairwise complete observations", func(t *testing.T) {
		// The missing row in "a" must be excluded from the pair, leaving
		// perfectly correlated remainders.
		a := []table.Value{
			table.NewNumberValue(1),
			table.NewNumberValue(2),
			table.NewMissingValue(),
			table.NewNumberValue(3),
			table.NewNumberValue(4),
		}
		b := numCells(10, 20, 999, 30, 40)

		corr := Correlation([]string{"a", "b"}, map[string][]table.Value{"a": a, "b": b})
		if math.Abs(corr.Matrix[0][1]-1.0) > 1e-9 {
			t.Errorf("r = %v, want 1.0 over complete rows", corr.Matrix[0][1])
		}
	})

	t.Run("fewer than two columns", func(t *testing.T) {
		if Correlation([]string{"only"}, map[string][]table.Value{"only": numCells(1, 2)}) != nil {
			t.Error("single column should yield no matrix")
		}
	})
}
