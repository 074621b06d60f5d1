package cases

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/MinesBot_Go/internal/domain"
	"github.com/osse101/MinesBot_Go/internal/tables"
	"github.com/osse101/MinesBot_Go/internal/utils"
)

func TestPick_Boundaries(t *testing.T) {
	cheap, _ := tables.Default().Case(domain.CaseCheap)

	tests := []struct {
		r    float64
		want string
	}{
		{0, "stars_25"},
		{0.05, "stars_25"},
		{0.2, "stars_50"},
		{0.5, "stars_75"},
		{0.8, "stars_150"},
		{0.97, "stars_300"},
		{0.9999999, "stars_300"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Pick(fixedRNG(tt.r), cheap.Prizes).Key, "r=%v", tt.r)
	}
}

func TestPick_FallsBackToLastPrize(t *testing.T) {
	short := []tables.Prize{
		{Key: "a", Probability: 0.3},
		{Key: "b", Probability: 0.3},
	}
	assert.Equal(t, "b", Pick(fixedRNG(0.9), short).Key)
}

func TestPick_Distribution(t *testing.T) {
	tb := tables.Default()
	rng := utils.NewSeededRNG(2024)
	const draws = 100000

	for _, kind := range []string{domain.CaseCheap, domain.CasePremium} {
		def, _ := tb.Case(kind)
		counts := make(map[string]int)
		for i := 0; i < draws; i++ {
			counts[Pick(rng, def.Prizes).Key]++
		}
		for _, p := range def.Prizes {
			got := float64(counts[p.Key]) / draws
			assert.InDelta(t, p.Probability, got, 0.01, "%s/%s", kind, p.Key)
		}
	}
}
