package storage

import "numberbot/pkg/serrors"

// Transaction misuse errors. They mark a caller that mixed up plain and
// transactional handles, so both are internal errors.
var (
	// ErrAlreadyInTx is returned by operations that need a plain handle, such
	// as Begin or Ping, when called on a transactional one.
	ErrAlreadyInTx = serrors.With(serrors.ErrInternal, "storage handle is already in a transaction")
	// ErrNotInTx is returned by Commit and Rollback on a plain handle.
	ErrNotInTx = serrors.With(serrors.ErrInternal, "storage handle is not in a transaction")
)
