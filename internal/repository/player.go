package repository

import (
	"context"

	"github.com/osse101/MinesBot_Go/internal/domain"
)

// Player defines the interface for player lookup and registration
type Player interface {
	GetPlayer(ctx context.Context, playerID int64) (*domain.Player, error)
	GetPlayerByTelegramID(ctx context.Context, telegramID int64) (*domain.Player, error)
	UpsertPlayer(ctx context.Context, identity domain.Identity) (*domain.Player, error)
	HasLadderSession(ctx context.Context, playerID int64) (bool, error)
}
