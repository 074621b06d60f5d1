package tables

import (
	"fmt"
	"time"

	"github.com/osse101/MinesBot_Go/internal/domain"
	"github.com/osse101/MinesBot_Go/internal/utils"
)

// TierCount is the number of mining tiers (1..10)
const TierCount = domain.MaxEquipmentTier

// Range is an inclusive yield range
type Range struct {
	Min int64 `yaml:"min" json:"min" validate:"gte=0"`
	Max int64 `yaml:"max" json:"max" validate:"gtefield=Min"`
}

// ResourceTable holds the per-tier drop configuration of one resource.
// Index i of Chances and Ranges describes tier i+1.
type ResourceTable struct {
	UnitValue int64     `yaml:"unit_value" json:"unit_value" validate:"gt=0"`
	Chances   []float64 `yaml:"chances" json:"chances" validate:"len=10,dive,gte=0,lte=1"`
	Ranges    []Range   `yaml:"ranges" json:"ranges" validate:"len=10,dive"`
}

// LadderTable configures the ladder wager. Multipliers are in hundredths.
type LadderTable struct {
	Stakes            []int64 `yaml:"stakes" json:"stakes" validate:"min=1,dive,gt=0"`
	Levels            int     `yaml:"levels" json:"levels" validate:"gt=0"`
	Slots             int     `yaml:"slots" json:"slots" validate:"gtfield=Levels"`
	BaseMultiplierPct int64   `yaml:"base_multiplier_pct" json:"base_multiplier_pct" validate:"gt=0"`
	StepMultiplierPct int64   `yaml:"step_multiplier_pct" json:"step_multiplier_pct" validate:"gte=0"`
}

// Prize is one entry of a case prize table. Exactly one of Stars or
// Collectible is set.
type Prize struct {
	Key         string  `yaml:"key" json:"key" validate:"required"`
	Name        string  `yaml:"name" json:"name" validate:"required"`
	Probability float64 `yaml:"probability" json:"probability" validate:"gte=0,lte=1"`
	Stars       int64   `yaml:"stars" json:"stars,omitempty" validate:"gte=0"`
	Collectible string  `yaml:"collectible" json:"collectible,omitempty"`
}

// IsCollectible reports whether the prize is drawn from the collectible pool
func (p Prize) IsCollectible() bool {
	return p.Collectible != ""
}

// CaseTable configures one loot box
type CaseTable struct {
	Cost   int64   `yaml:"cost" json:"cost" validate:"gt=0"`
	Prizes []Prize `yaml:"prizes" json:"prizes" validate:"min=1,dive"`
}

// Tables is the complete static economy configuration
type Tables struct {
	Resources    map[domain.Resource]ResourceTable `yaml:"resources" json:"resources" validate:"required,dive"`
	ValueCaps    []int64                           `yaml:"value_caps" json:"value_caps" validate:"len=10,dive,gt=0"`
	UpgradeCosts []int64                           `yaml:"upgrade_costs" json:"upgrade_costs" validate:"len=10,dive,gt=0"`
	ExchangeRate int64                             `yaml:"exchange_rate" json:"exchange_rate" validate:"gt=0"`
	MineCooldown time.Duration                     `yaml:"mine_cooldown" json:"-" validate:"gt=0"`
	Ladder       LadderTable                       `yaml:"ladder" json:"ladder"`
	Cases        map[string]CaseTable              `yaml:"cases" json:"cases" validate:"required,dive"`
}

func checkTier(tier int) error {
	if tier < 1 || tier > TierCount {
		return fmt.Errorf("%w: %d", domain.ErrInvalidTier, tier)
	}
	return nil
}

// ValueCap returns the maximum mcoin value of a single drop at tier
func (t *Tables) ValueCap(tier int) (int64, error) {
	if err := checkTier(tier); err != nil {
		return 0, err
	}
	return t.ValueCaps[tier-1], nil
}

// Chance returns the probability that r appears in a drop at tier
func (t *Tables) Chance(r domain.Resource, tier int) float64 {
	if checkTier(tier) != nil {
		return 0
	}
	return t.Resources[r].Chances[tier-1]
}

// YieldRange returns the inclusive quantity range of r at tier
func (t *Tables) YieldRange(r domain.Resource, tier int) Range {
	if checkTier(tier) != nil {
		return Range{}
	}
	return t.Resources[r].Ranges[tier-1]
}

// UnitValue returns the mcoin value of one unit of r
func (t *Tables) UnitValue(r domain.Resource) int64 {
	return t.Resources[r].UnitValue
}

// UpgradeCost returns the mcoin price of reaching nextTier
func (t *Tables) UpgradeCost(nextTier int) (int64, error) {
	if err := checkTier(nextTier); err != nil {
		return 0, err
	}
	return t.UpgradeCosts[nextTier-1], nil
}

// StarsFor converts an mcoin price into stars, rounding up
func (t *Tables) StarsFor(mcoin int64) int64 {
	return utils.CeilDiv(mcoin, t.ExchangeRate)
}

// IsAllowedStake reports whether stake is on the ladder allow-list
func (t *Tables) IsAllowedStake(stake int64) bool {
	for _, s := range t.Ladder.Stakes {
		if s == stake {
			return true
		}
	}
	return false
}

// Case looks up a case configuration by kind
func (t *Tables) Case(kind string) (CaseTable, bool) {
	c, ok := t.Cases[kind]
	return c, ok
}

// CollectibleKinds returns every collectible kind some case prize can grant
func (t *Tables) CollectibleKinds() map[string]bool {
	kinds := make(map[string]bool)
	for _, c := range t.Cases {
		for _, p := range c.Prizes {
			if p.IsCollectible() {
				kinds[p.Collectible] = true
			}
		}
	}
	return kinds
}

// MultiplierPct returns the ladder multiplier in hundredths after cleared
// levels. Zero cleared levels has no multiplier.
func (l LadderTable) MultiplierPct(cleared int) int64 {
	if cleared < 1 {
		return 0
	}
	return l.BaseMultiplierPct + l.StepMultiplierPct*int64(cleared-1)
}

// Payout returns floor(stake * multiplier(cleared))
func (l LadderTable) Payout(stake int64, cleared int) int64 {
	return stake * l.MultiplierPct(cleared) / 100
}

// Multiplier returns the ladder multiplier as a two-decimal value
func (l LadderTable) Multiplier(cleared int) float64 {
	return float64(l.MultiplierPct(cleared)) / 100
}
