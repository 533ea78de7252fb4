package domain

import "errors"

// Store failure classes. The database layer wraps driver errors with one of
// these so callers can branch with errors.Is without importing the driver.
var (
	// ErrDuplicateEntry marks a constraint violation (attempted duplicate).
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrStoreUnavailable marks a transient failure (busy, locked, timeout).
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrStoreInternal is the fallback for any other store failure.
	ErrStoreInternal = errors.New("internal store error")
)

// ErrNoActiveSession is returned when a vote arrives and no session is
// currently accepting votes.
var ErrNoActiveSession = errors.New("no active vote session")

// ErrMultipleActiveSessions is returned by the strict active-session lookup
// when more than one session is still active after self-healing ran.
var ErrMultipleActiveSessions = errors.New("multiple active vote sessions")
