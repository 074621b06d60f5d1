package postgres

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MinesBot_Go/internal/database/generated"
	"github.com/osse101/MinesBot_Go/internal/domain"
)

func TestPlayerFromRow(t *testing.T) {
	mined := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	row := generated.Player{
		PlayerID:      7,
		TelegramID:    4242,
		Username:      pgtype.Text{String: "digger", Valid: true},
		EquipmentTier: 3,
		SoftCurrency:  500,
		HardCurrency:  12,
		Coal:          1,
		Copper:        2,
		Iron:          3,
		Gold:          4,
		Diamond:       5,
		LastMineAt:    timestamptz(mined),
		CreatedAt:     timestamptz(mined.Add(-time.Hour)),
	}

	p := playerFromRow(row)

	assert.Equal(t, int64(7), p.ID)
	assert.Equal(t, "digger", p.Username)
	assert.Empty(t, p.FirstName, "NULL name reads as empty")
	assert.Equal(t, 3, p.EquipmentTier)
	require.NotNil(t, p.LastMineAt)
	assert.Equal(t, mined, *p.LastMineAt)

	require.Len(t, p.Resources, len(domain.Resources), "every resource has a column")
	for i, r := range domain.Resources {
		assert.Equal(t, int64(i+1), p.Resource(r), r)
	}
}

func TestPlayerFromRow_NeverMined(t *testing.T) {
	p := playerFromRow(generated.Player{PlayerID: 1})
	assert.Nil(t, p.LastMineAt)
}

func TestPlayerResult_NoRowsIsPlayerNotFound(t *testing.T) {
	_, err := playerResult(generated.Player{}, pgx.ErrNoRows)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)

	_, err = playerResult(generated.Player{}, assert.AnError)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestCollectibleFromRow(t *testing.T) {
	free := collectibleFromRow(1, "snoop_dogg", "SD-1", pgtype.Int8{}, pgtype.Timestamptz{})
	assert.Nil(t, free.OwnerID)
	assert.Nil(t, free.GrantedAt)

	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	owned := collectibleFromRow(2, "low_rider", "LR-0001", pgtype.Int8{Int64: 9, Valid: true}, timestamptz(at))
	require.NotNil(t, owned.OwnerID)
	assert.Equal(t, int64(9), *owned.OwnerID)
	assert.Equal(t, at, *owned.GrantedAt)
}
