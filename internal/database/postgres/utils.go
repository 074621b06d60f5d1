package postgres

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/MinesBot_Go/internal/database/generated"
	"github.com/osse101/MinesBot_Go/internal/domain"
)

// playerFromRow maps a generated players row onto the domain type
func playerFromRow(row generated.Player) *domain.Player {
	return &domain.Player{
		ID:            row.PlayerID,
		TelegramID:    row.TelegramID,
		Username:      row.Username.String,
		FirstName:     row.FirstName.String,
		EquipmentTier: int(row.EquipmentTier),
		SoftCurrency:  row.SoftCurrency,
		HardCurrency:  row.HardCurrency,
		Resources: map[domain.Resource]int64{
			domain.ResourceCoal:    row.Coal,
			domain.ResourceCopper:  row.Copper,
			domain.ResourceIron:    row.Iron,
			domain.ResourceGold:    row.Gold,
			domain.ResourceDiamond: row.Diamond,
		},
		LastMineAt: timePtr(row.LastMineAt),
		CreatedAt:  row.CreatedAt.Time,
		UpdatedAt:  row.UpdatedAt.Time,
	}
}

// playerResult converts a single-player query result, turning a missing
// row into domain.ErrPlayerNotFound
func playerResult(row generated.Player, err error) (*domain.Player, error) {
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, err
	}
	return playerFromRow(row), nil
}

func collectibleFromRow(id int64, kind, serial string, owner pgtype.Int8, grantedAt pgtype.Timestamptz) domain.Collectible {
	c := domain.Collectible{
		ID:        id,
		Kind:      kind,
		Serial:    serial,
		GrantedAt: timePtr(grantedAt),
	}
	if owner.Valid {
		c.OwnerID = &owner.Int64
	}
	return c
}

func timePtr(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time
	return &t
}

func timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// isPgError reports whether err is a PostgreSQL error with the given SQLSTATE
func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
