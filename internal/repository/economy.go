package repository

import "context"

// Economy defines the persistence needed by sell, exchange and upgrade
type Economy interface {
	BeginTx(ctx context.Context) (Tx, error)
}
