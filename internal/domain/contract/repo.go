package contract

import (
	"context"
	"time"

	"github.com/jungshell/fccg-core/internal/domain/entity"
)

//go:generate mockgen -source=repo.go -destination=../../../mocks/repo_mock.go -package=mocks

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Member() MemberRepo
	Session() SessionRepo
	Vote() VoteRepo
	Game() GameRepo
	Attendance() AttendanceRepo
}

// MemberRepo defines the contract for the member repository
type MemberRepo interface {
	Create(member *entity.Member) error
	GetByID(id int64) (*entity.Member, error)
	GetByStatuses(statuses []string) ([]*entity.Member, error)
	UpdateStatus(id int64, status, reason string, changedAt time.Time) error
	TouchLastLogin(id int64, at time.Time) error
}

// SessionRepo defines the contract for the vote session repository
type SessionRepo interface {
	Create(session *entity.VoteSession) error
	Restore(session *entity.VoteSession) error
	GetByID(id int64) (*entity.VoteSession, error)
	GetByWeekDate(weekStart time.Time) (*entity.VoteSession, error)
	GetActive() ([]*entity.VoteSession, error)
	GetAllOrdered() ([]*entity.VoteSession, error)
	GetLatestCompletedInRange(from, to time.Time) (*entity.VoteSession, error)
	DeactivateExpired(now time.Time) (int64, error)
	Deactivate(id int64) error
	Resume(id int64) error
	Delete(id int64) error
	DeleteAll() error
	ResetSequence() error
}

// VoteRepo defines the contract for the vote repository
type VoteRepo interface {
	Create(vote *entity.Vote) error
	Restore(vote *entity.Vote) error
	GetBySession(sessionID int64) ([]*entity.Vote, error)
	GetByUserAndSession(userID, sessionID int64) (*entity.Vote, error)
	GetByUserSince(userID int64, since time.Time) ([]*entity.Vote, error)
	CountBySession(sessionID int64) (int64, error)
	DeleteByUserAndSession(userID, sessionID int64) error
	DeleteBySession(sessionID int64) error
	DeleteAll() error
	ResetSequence() error
}

// GameRepo defines the contract for the game repository
type GameRepo interface {
	Create(game *entity.Game) error
	GetByDateRange(from, to time.Time) ([]*entity.Game, error)
	DeleteAutoGeneratedInRange(from, to time.Time) (int64, error)
}

// AttendanceRepo defines the contract for the attendance repository
type AttendanceRepo interface {
	Create(attendance *entity.Attendance) error
	CountByUserSince(userID int64, since time.Time) (int64, error)
}
