package database

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/jungshell/fccg-core/internal/domain"
)

// classifyError wraps a driver error with one of the domain store-failure
// sentinels so callers can branch with errors.Is. The original error stays
// in the chain.
func classifyError(err error, msg string) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrConstraint:
			return fmt.Errorf("%s: %w: %v", msg, domain.ErrDuplicateEntry, err)
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return fmt.Errorf("%s: %w: %v", msg, domain.ErrStoreUnavailable, err)
		}
	}
	return fmt.Errorf("%s: %w: %v", msg, domain.ErrStoreInternal, err)
}
