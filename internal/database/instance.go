package database

import (
	"context"
	"fmt"

	"github.com/jungshell/fccg-core/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db             *DB
	memberRepo     contract.MemberRepo
	sessionRepo    contract.SessionRepo
	voteRepo       contract.VoteRepo
	gameRepo       contract.GameRepo
	attendanceRepo contract.AttendanceRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.memberRepo = newMemberRepository(i.db.conn)
	i.sessionRepo = newSessionRepository(i.db.conn)
	i.voteRepo = newVoteRepository(i.db.conn)
	i.gameRepo = newGameRepository(i.db.conn)
	i.attendanceRepo = newAttendanceRepository(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		memberRepo:     newMemberRepository(db),
		sessionRepo:    newSessionRepository(db),
		voteRepo:       newVoteRepository(db),
		gameRepo:       newGameRepository(db),
		attendanceRepo: newAttendanceRepository(db),
	}
}

// Member returns the member repository
func (i *instance) Member() contract.MemberRepo {
	return i.memberRepo
}

// Session returns the vote session repository
func (i *instance) Session() contract.SessionRepo {
	return i.sessionRepo
}

// Vote returns the vote repository
func (i *instance) Vote() contract.VoteRepo {
	return i.voteRepo
}

// Game returns the game repository
func (i *instance) Game() contract.GameRepo {
	return i.gameRepo
}

// Attendance returns the attendance repository
func (i *instance) Attendance() contract.AttendanceRepo {
	return i.attendanceRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
