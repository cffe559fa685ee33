package errs

import "errors"

// Sentinels shared by the command and query sides
var (
	ErrAuctionNotFound = errors.New("auction not found")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrDayLockFailed           = errors.New("failed to lock auction day")
)
