package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeCheckViolation is raised when a balance would go negative
	PgErrorCodeCheckViolation = "23514"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Player Operations
const (
	ErrMsgFailedToGetPlayer        = "failed to get player"
	ErrMsgFailedToLockPlayer       = "failed to lock player"
	ErrMsgFailedToUpsertPlayer     = "failed to upsert player"
	ErrMsgFailedToApplyDelta       = "failed to apply delta"
	ErrMsgBalanceConstraint        = "balance constraint violated"
	ErrMsgFailedToSetLastMine      = "failed to set last mine time"
	ErrMsgFailedToSetEquipmentTier = "failed to set equipment tier"
	ErrMsgFailedToInsertLedger     = "failed to insert ledger entry"
	ErrMsgFailedToEncodeMeta       = "failed to encode ledger meta"
)

// Error Messages - Ladder Operations
const (
	ErrMsgFailedToGetLadderSession    = "failed to get ladder session"
	ErrMsgFailedToCreateLadderSession = "failed to create ladder session"
	ErrMsgFailedToUpdateLadderSession = "failed to update ladder session"
	ErrMsgFailedToDeleteLadderSession = "failed to delete ladder session"
	ErrMsgFailedToEncodeBrokenMap     = "failed to encode broken map"
	ErrMsgFailedToDecodeBrokenMap     = "failed to decode broken map"
)

// Error Messages - Collectible Operations
const (
	ErrMsgFailedToReserveCollectible = "failed to reserve collectible"
	ErrMsgFailedToListCollectibles   = "failed to list collectibles"
	ErrMsgFailedToGetPoolStock       = "failed to get pool stock"
	ErrMsgFailedToSeedPool           = "failed to seed collectible pool"
)
