package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MinesBot_Go/internal/database/postgres"
	"github.com/osse101/MinesBot_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// One PostgreSQL store backs every interface.
type Repositories struct {
	Player  repository.Player
	Mining  repository.Mining
	Economy repository.Economy
	Ladder  repository.Ladder
	Cases   repository.Cases
}

// InitializeRepositories creates all repository implementations
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	store := postgres.NewStore(dbPool)
	return &Repositories{
		Player:  store,
		Mining:  store,
		Economy: store,
		Ladder:  store,
		Cases:   store,
	}
}
