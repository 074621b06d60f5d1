package repository

import "context"

// Mining defines the persistence needed by the dig action
type Mining interface {
	BeginTx(ctx context.Context) (Tx, error)
}
