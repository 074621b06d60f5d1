package cases

import (
	"github.com/osse101/MinesBot_Go/internal/tables"
	"github.com/osse101/MinesBot_Go/internal/utils"
)

// Pick draws one prize. r is uniform in [0,1); the first prize whose
// cumulative probability reaches r wins, and the last prize absorbs any
// rounding gap in the table.
func Pick(rng utils.RandomSource, prizes []tables.Prize) tables.Prize {
	r := rng.Float64()
	var acc float64
	for _, p := range prizes {
		acc += p.Probability
		if r <= acc {
			return p
		}
	}
	return prizes[len(prizes)-1]
}
