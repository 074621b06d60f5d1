package mining

import (
	"sort"

	"github.com/osse101/MinesBot_Go/internal/domain"
	"github.com/osse101/MinesBot_Go/internal/tables"
	"github.com/osse101/MinesBot_Go/internal/utils"
)

// Generator turns an equipment tier into a value-capped resource drop.
// It never touches persistence; callers apply the drop as a delta.
type Generator struct {
	tables *tables.Tables
	rng    utils.RandomSource
}

// NewGenerator creates a drop generator. A nil rng uses the crypto source.
func NewGenerator(tb *tables.Tables, rng utils.RandomSource) *Generator {
	if rng == nil {
		rng = utils.DefaultRNG()
	}
	return &Generator{tables: tb, rng: rng}
}

// Roll draws the uncapped drop for tier. Each resource is rolled in
// canonical order: a Bernoulli trial on the tier chance, then a uniform
// quantity in the tier's inclusive range.
func (g *Generator) Roll(tier int) (domain.Drop, error) {
	if _, err := g.tables.ValueCap(tier); err != nil {
		return nil, err
	}

	drop := make(domain.Drop)
	for _, r := range domain.Resources {
		if !utils.Roll(g.rng, g.tables.Chance(r, tier)) {
			continue
		}
		yield := g.tables.YieldRange(r, tier)
		drop[r] = utils.RandomIntInRange(g.rng, yield.Min, yield.Max)
	}
	return drop, nil
}

// GenerateDrop rolls a drop for tier and clamps it to the tier's value cap
func (g *Generator) GenerateDrop(tier int) (domain.Drop, error) {
	raw, err := g.Roll(tier)
	if err != nil {
		return nil, err
	}
	limit, err := g.tables.ValueCap(tier)
	if err != nil {
		return nil, err
	}
	return Clamp(g.tables, raw, limit), nil
}

// Value returns the mcoin value of a drop
func Value(tb *tables.Tables, drop domain.Drop) int64 {
	var total int64
	for r, q := range drop {
		total += q * tb.UnitValue(r)
	}
	return total
}

// Clamp scales a drop down so its value does not exceed limit.
//
// Every quantity is scaled by limit/total and floored. The budget lost to
// flooring is then spent one unit at a time, cycling through the rolled
// resources cheapest first (ties keep canonical order), until the cheapest
// unit no longer fits. Resources that end at zero are omitted.
func Clamp(tb *tables.Tables, drop domain.Drop, limit int64) domain.Drop {
	total := Value(tb, drop)
	if total <= limit {
		return drop.Clone()
	}

	present := make([]domain.Resource, 0, len(drop))
	for _, r := range domain.Resources {
		if drop[r] > 0 {
			present = append(present, r)
		}
	}

	adjusted := make(domain.Drop, len(present))
	for _, r := range present {
		adjusted[r] = scaleDown(drop[r], limit, total)
	}

	sort.SliceStable(present, func(i, j int) bool {
		return tb.UnitValue(present[i]) < tb.UnitValue(present[j])
	})

	remaining := limit - Value(tb, adjusted)
	if len(present) > 0 {
		cheapest := tb.UnitValue(present[0])
		for i := 0; remaining >= cheapest && i < MaxTopUpIterations; i++ {
			r := present[i%len(present)]
			if unit := tb.UnitValue(r); remaining >= unit {
				adjusted[r]++
				remaining -= unit
			}
		}
	}

	for r, q := range adjusted {
		if q == 0 {
			delete(adjusted, r)
		}
	}
	return adjusted
}

// scaleDown returns floor(q * limit / total) without overflowing int64
func scaleDown(q, limit, total int64) int64 {
	if product, ok := utils.SafeMultiply(q, limit); ok {
		return product / total
	}
	return int64(float64(q) * (float64(limit) / float64(total)))
}
