package repository

// LogMsgRollbackFailed is logged when a deferred rollback fails for a reason
// other than an already committed transaction
const LogMsgRollbackFailed = "Failed to rollback transaction"
