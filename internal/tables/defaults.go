package tables

import (
	"time"

	"github.com/osse101/MinesBot_Go/internal/domain"
)

// Default economy values. A YAML file may override any top-level key.
const (
	DefaultExchangeRate      = 200
	DefaultMineCooldown      = 3 * time.Hour
	DefaultLadderLevels      = 7
	DefaultLadderSlots       = 8
	DefaultBaseMultiplierPct = 114
	DefaultStepMultiplierPct = 14
	DefaultCoalChance        = 0.90
)

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func ranges(pairs ...[2]int64) []Range {
	out := make([]Range, len(pairs))
	for i, p := range pairs {
		out[i] = Range{Min: p[0], Max: p[1]}
	}
	return out
}

// Default returns the built-in economy tables
func Default() *Tables {
	return &Tables{
		Resources: map[domain.Resource]ResourceTable{
			domain.ResourceCoal: {
				UnitValue: 1,
				Chances:   repeat(DefaultCoalChance, TierCount),
				Ranges: ranges(
					[2]int64{85, 480}, [2]int64{182, 582}, [2]int64{279, 684}, [2]int64{377, 787}, [2]int64{474, 889},
					[2]int64{571, 991}, [2]int64{668, 1093}, [2]int64{766, 1196}, [2]int64{863, 1298}, [2]int64{960, 1400},
				),
			},
			domain.ResourceCopper: {
				UnitValue: 2,
				Chances:   []float64{0.65, 0.67, 0.69, 0.71, 0.74, 0.75, 0.77, 0.78, 0.78, 0.78},
				Ranges: ranges(
					[2]int64{36, 78}, [2]int64{49, 93}, [2]int64{63, 107}, [2]int64{76, 122}, [2]int64{89, 137},
					[2]int64{103, 151}, [2]int64{116, 166}, [2]int64{129, 180}, [2]int64{143, 195}, [2]int64{156, 210},
				),
			},
			domain.ResourceIron: {
				UnitValue: 4,
				Chances:   []float64{0.29, 0.31, 0.32, 0.33, 0.35, 0.37, 0.39, 0.41, 0.42, 0.42},
				Ranges: ranges(
					[2]int64{14, 24}, [2]int64{17, 30}, [2]int64{21, 37}, [2]int64{25, 44}, [2]int64{29, 51},
					[2]int64{33, 59}, [2]int64{37, 66}, [2]int64{41, 74}, [2]int64{47, 82}, [2]int64{48, 90},
				),
			},
			domain.ResourceGold: {
				UnitValue: 5,
				Chances:   []float64{0.15, 0.16, 0.17, 0.18, 0.19, 0.20, 0.22, 0.23, 0.24, 0.26},
				Ranges: ranges(
					[2]int64{6, 9}, [2]int64{8, 11}, [2]int64{10, 14}, [2]int64{11, 17}, [2]int64{13, 20},
					[2]int64{14, 23}, [2]int64{16, 26}, [2]int64{17, 29}, [2]int64{19, 33}, [2]int64{18, 38},
				),
			},
			domain.ResourceDiamond: {
				UnitValue: 7,
				Chances:   []float64{0.09, 0.10, 0.11, 0.11, 0.12, 0.13, 0.14, 0.15, 0.16, 0.17},
				Ranges: ranges(
					[2]int64{1, 3}, [2]int64{2, 4}, [2]int64{2, 5}, [2]int64{3, 5}, [2]int64{3, 6},
					[2]int64{4, 7}, [2]int64{4, 8}, [2]int64{5, 8}, [2]int64{5, 9}, [2]int64{6, 10},
				),
			},
		},
		ValueCaps:    []int64{350, 450, 700, 900, 1150, 1400, 1700, 2250, 2400, 2750},
		UpgradeCosts: []int64{10000, 50000, 100000, 150000, 200000, 250000, 300000, 350000, 400000, 500000},
		ExchangeRate: DefaultExchangeRate,
		MineCooldown: DefaultMineCooldown,
		Ladder: LadderTable{
			Stakes:            []int64{10, 25, 50, 100, 250, 500},
			Levels:            DefaultLadderLevels,
			Slots:             DefaultLadderSlots,
			BaseMultiplierPct: DefaultBaseMultiplierPct,
			StepMultiplierPct: DefaultStepMultiplierPct,
		},
		Cases: map[string]CaseTable{
			domain.CaseCheap: {
				Cost: 100,
				Prizes: []Prize{
					{Key: "stars_25", Name: "25 Stars", Probability: 0.10, Stars: 25},
					{Key: "stars_50", Name: "50 Stars", Probability: 0.25, Stars: 50},
					{Key: "stars_75", Name: "75 Stars", Probability: 0.30, Stars: 75},
					{Key: "stars_150", Name: "150 Stars", Probability: 0.30, Stars: 150},
					{Key: "stars_300", Name: "300 Stars", Probability: 0.05, Stars: 300},
				},
			},
			domain.CasePremium: {
				Cost: 700,
				Prizes: []Prize{
					{Key: "snoop_dogg", Name: "Snoop Dogg (NFT)", Probability: 0.66, Collectible: "snoop_dogg"},
					{Key: "swag_bag", Name: "Swag Bag (NFT)", Probability: 0.30, Collectible: "swag_bag"},
					{Key: "snoop_cigar", Name: "Snoop Cigar (NFT)", Probability: 0.03, Collectible: "snoop_cigar"},
					{Key: "low_rider", Name: "Low Rider (NFT)", Probability: 0.01, Collectible: "low_rider"},
				},
			},
		},
	}
}
