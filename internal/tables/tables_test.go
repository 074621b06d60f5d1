package tables

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MinesBot_Go/internal/domain"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLadderMultiplier(t *testing.T) {
	l := Default().Ladder
	want := []float64{1.14, 1.28, 1.42, 1.56, 1.70, 1.84, 1.98}

	assert.Equal(t, 0.0, l.Multiplier(0))
	prev := 0.0
	for n := 1; n <= 7; n++ {
		got := l.Multiplier(n)
		assert.InDelta(t, want[n-1], got, 1e-9, "multiplier(%d)", n)
		assert.Greater(t, got, prev, "multiplier must be strictly increasing")
		prev = got
	}
}

func TestLadderPayout(t *testing.T) {
	l := Default().Ladder
	tests := []struct {
		stake   int64
		cleared int
		want    int64
	}{
		{50, 0, 0},
		{50, 1, 57},   // 50 * 1.14
		{25, 1, 28},   // 28.5 floors
		{10, 7, 19},   // 19.8 floors
		{500, 7, 990}, // 500 * 1.98
		{250, 3, 355}, // 250 * 1.42
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, l.Payout(tt.stake, tt.cleared), "stake=%d cleared=%d", tt.stake, tt.cleared)
	}
}

func TestCollectibleKinds(t *testing.T) {
	kinds := Default().CollectibleKinds()
	for _, k := range []string{"snoop_dogg", "swag_bag", "snoop_cigar", "low_rider"} {
		assert.True(t, kinds[k], k)
	}
	assert.False(t, kinds["stars"])
}

func TestTierLookups(t *testing.T) {
	tb := Default()

	cap3, err := tb.ValueCap(3)
	require.NoError(t, err)
	assert.Equal(t, int64(700), cap3)

	_, err = tb.ValueCap(0)
	assert.ErrorIs(t, err, domain.ErrInvalidTier)
	_, err = tb.ValueCap(11)
	assert.ErrorIs(t, err, domain.ErrInvalidTier)

	assert.Equal(t, Range{Min: 279, Max: 684}, tb.YieldRange(domain.ResourceCoal, 3))
	assert.Equal(t, Range{}, tb.YieldRange(domain.ResourceCoal, 0))
	assert.Equal(t, DefaultCoalChance, tb.Chance(domain.ResourceCoal, 10))
	assert.Equal(t, 0.0, tb.Chance(domain.ResourceGold, 42))

	cost, err := tb.UpgradeCost(1)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), cost)
	cost, err = tb.UpgradeCost(10)
	require.NoError(t, err)
	assert.Equal(t, int64(500000), cost)
	_, err = tb.UpgradeCost(11)
	assert.ErrorIs(t, err, domain.ErrInvalidTier)

	assert.Equal(t, int64(50), tb.StarsFor(10000))
	assert.Equal(t, int64(51), tb.StarsFor(10001))

	assert.True(t, tb.IsAllowedStake(50))
	assert.False(t, tb.IsAllowedStake(51))
}

func TestParse_OverridesTopLevelKeys(t *testing.T) {
	data := []byte(`
exchange_rate: 250
mine_cooldown: 2h
ladder:
  stakes: [5, 50]
  levels: 7
  slots: 8
  base_multiplier_pct: 114
  step_multiplier_pct: 14
`)
	tb, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, int64(250), tb.ExchangeRate)
	assert.Equal(t, 2*time.Hour, tb.MineCooldown)
	assert.Equal(t, []int64{5, 50}, tb.Ladder.Stakes)
	// untouched keys keep defaults
	assert.Equal(t, Default().ValueCaps, tb.ValueCaps)
	assert.Len(t, tb.Cases, 2)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "probabilities do not sum to one",
			yaml: `
cases:
  cheap:
    cost: 100
    prizes:
      - {key: a, name: A, probability: 0.5, stars: 10}
      - {key: b, name: B, probability: 0.4, stars: 20}
`,
		},
		{
			name: "prize pays both stars and collectible",
			yaml: `
cases:
  premium:
    cost: 700
    prizes:
      - {key: a, name: A, probability: 1.0, stars: 10, collectible: a}
`,
		},
		{
			name: "value caps wrong length",
			yaml: `value_caps: [1, 2, 3]`,
		},
		{
			name: "more levels than slots",
			yaml: `
ladder:
  stakes: [10]
  levels: 8
  slots: 8
  base_multiplier_pct: 114
  step_multiplier_pct: 14
`,
		},
		{
			name: "duplicate stake",
			yaml: `
ladder:
  stakes: [10, 10]
  levels: 7
  slots: 8
  base_multiplier_pct: 114
  step_multiplier_pct: 14
`,
		},
		{
			name: "inverted range",
			yaml: `
resources:
  coal:
    unit_value: 1
    chances: [1, 1, 1, 1, 1, 1, 1, 1, 1, 1]
    ranges:
      - {min: 10, max: 5}
      - {min: 1, max: 2}
      - {min: 1, max: 2}
      - {min: 1, max: 2}
      - {min: 1, max: 2}
      - {min: 1, max: 2}
      - {min: 1, max: 2}
      - {min: 1, max: 2}
      - {min: 1, max: 2}
      - {min: 1, max: 2}
`,
		},
		{
			name: "malformed yaml",
			yaml: "exchange_rate: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParse_MissingResourceRejected(t *testing.T) {
	data := []byte(`
resources:
  coal:
    unit_value: 1
    chances: [1, 1, 1, 1, 1, 1, 1, 1, 1, 1]
    ranges: [{min: 1, max: 2}, {min: 1, max: 2}, {min: 1, max: 2}, {min: 1, max: 2}, {min: 1, max: 2}, {min: 1, max: 2}, {min: 1, max: 2}, {min: 1, max: 2}, {min: 1, max: 2}, {min: 1, max: 2}]
`)
	// map entries merge, so the other resources keep their defaults
	tb, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, int64(2), tb.YieldRange(domain.ResourceCoal, 1).Max)

	tb = Default()
	delete(tb.Resources, domain.ResourceGold)
	assert.Error(t, tb.Validate())

	tb = Default()
	tb.Resources["mithril"] = tb.Resources[domain.ResourceGold]
	assert.Error(t, tb.Validate())
}

func TestLoad(t *testing.T) {
	tb, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), tb)

	path := filepath.Join(t.TempDir(), "economy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("exchange_rate: 300\n"), 0o600))
	tb, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(300), tb.ExchangeRate)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestShippedConfigMatchesDefaults(t *testing.T) {
	tb, err := Load(filepath.Join("..", "..", "configs", "economy.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), tb)
}

func TestParse_DeeperLadder(t *testing.T) {
	tb, err := Parse([]byte(`
ladder:
  stakes: [10]
  levels: 9
  slots: 10
  base_multiplier_pct: 114
  step_multiplier_pct: 14
`))
	require.NoError(t, err)
	assert.Equal(t, 9, tb.Ladder.Levels)
	assert.InDelta(t, 2.26, tb.Ladder.Multiplier(9), 1e-9)
}
