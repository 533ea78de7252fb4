package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jungshell/fccg-core/internal/domain/entity"
)

func TestSessionRepository_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSessionRepository(db.conn)

	session := &entity.VoteSession{
		WeekStartDate: time.Date(2026, 1, 19, 0, 1, 0, 0, time.UTC),
		StartTime:     time.Date(2026, 1, 12, 0, 1, 0, 0, time.UTC),
		EndTime:       time.Date(2026, 1, 23, 17, 0, 0, 0, time.UTC),
		IsActive:      true,
	}

	err := repo.Create(session)
	require.NoError(t, err, "Failed to create session")

	assert.NotZero(t, session.ID, "Expected session ID to be set after creation")
}

func TestSessionRepository_GetByWeekDate(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSessionRepository(db.conn)

	original := &entity.VoteSession{
		WeekStartDate: time.Date(2026, 1, 19, 0, 1, 0, 0, time.UTC),
		StartTime:     time.Date(2026, 1, 12, 0, 1, 0, 0, time.UTC),
		EndTime:       time.Date(2026, 1, 23, 17, 0, 0, 0, time.UTC),
		IsActive:      true,
	}
	require.NoError(t, repo.Create(original))

	// Same calendar date, different time-of-day: still a match.
	found, err := repo.GetByWeekDate(time.Date(2026, 1, 19, 18, 45, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, found, "Expected to find session by calendar date")
	assert.Equal(t, original.ID, found.ID)

	// Different date: no match.
	notFound, err := repo.GetByWeekDate(time.Date(2026, 1, 20, 0, 1, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, notFound, "Expected nil for a week with no session")
}

func TestSessionRepository_DeactivateExpired(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSessionRepository(db.conn)

	now := time.Date(2026, 1, 24, 0, 0, 0, 0, time.UTC)

	expired := &entity.VoteSession{
		WeekStartDate: time.Date(2026, 1, 19, 0, 1, 0, 0, time.UTC),
		StartTime:     time.Date(2026, 1, 12, 0, 1, 0, 0, time.UTC),
		EndTime:       time.Date(2026, 1, 23, 17, 0, 0, 0, time.UTC),
		IsActive:      true,
	}
	require.NoError(t, repo.Create(expired))

	open := &entity.VoteSession{
		WeekStartDate: time.Date(2026, 1, 26, 0, 1, 0, 0, time.UTC),
		StartTime:     time.Date(2026, 1, 19, 0, 1, 0, 0, time.UTC),
		EndTime:       time.Date(2026, 1, 30, 17, 0, 0, 0, time.UTC),
		IsActive:      true,
	}
	require.NoError(t, repo.Create(open))

	closed, err := repo.DeactivateExpired(now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), closed)

	got, err := repo.GetByID(expired.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.True(t, got.IsCompleted)

	got, err = repo.GetByID(open.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
	assert.False(t, got.IsCompleted)
}

func TestSessionRepository_DeactivateExpired_mixedTimezones(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSessionRepository(db.conn)

	seoul, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	// Deadline stored with a +09:00 offset, clock passed in UTC. One hour
	// past the deadline must still close the session.
	session := &entity.VoteSession{
		WeekStartDate: time.Date(2026, 1, 26, 0, 1, 0, 0, seoul),
		StartTime:     time.Date(2026, 1, 19, 0, 1, 0, 0, seoul),
		EndTime:       time.Date(2026, 1, 23, 17, 0, 0, 0, seoul),
		IsActive:      true,
	}
	require.NoError(t, repo.Create(session))

	now := time.Date(2026, 1, 23, 9, 0, 0, 0, time.UTC) // 18:00 KST
	closed, err := repo.DeactivateExpired(now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), closed, "Session past its deadline must be deactivated")

	got, err := repo.GetByID(session.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.True(t, got.IsCompleted)
}

func TestSessionRepository_Resume(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSessionRepository(db.conn)

	session := &entity.VoteSession{
		WeekStartDate: time.Date(2026, 1, 19, 0, 1, 0, 0, time.UTC),
		StartTime:     time.Date(2026, 1, 12, 0, 1, 0, 0, time.UTC),
		EndTime:       time.Date(2026, 1, 23, 17, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(session))
	require.NoError(t, repo.Deactivate(session.ID))

	require.NoError(t, repo.Resume(session.ID))

	got, err := repo.GetByID(session.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive, "Resumed session should be active")
	assert.False(t, got.IsCompleted, "Resumed session should not stay completed")
}

func TestSessionRepository_GetLatestCompletedInRange(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	sessionRepo := newSessionRepository(db.conn)
	voteRepo := newVoteRepository(db.conn)

	from := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 16, 23, 59, 59, 0, time.UTC)

	// Completed, in range, but without votes: skipped.
	empty := &entity.VoteSession{
		WeekStartDate: time.Date(2026, 1, 12, 0, 1, 0, 0, time.UTC),
		StartTime:     from.AddDate(0, 0, -7),
		EndTime:       from.AddDate(0, 0, 4),
		IsCompleted:   true,
	}
	require.NoError(t, sessionRepo.Create(empty))

	voted := &entity.VoteSession{
		WeekStartDate: time.Date(2026, 1, 13, 0, 1, 0, 0, time.UTC),
		StartTime:     from.AddDate(0, 0, -7),
		EndTime:       from.AddDate(0, 0, 4),
		IsCompleted:   true,
	}
	require.NoError(t, sessionRepo.Create(voted))
	require.NoError(t, voteRepo.Create(&entity.Vote{UserID: 1, VoteSessionID: voted.ID, SelectedDays: `["MON"]`}))

	found, err := sessionRepo.GetLatestCompletedInRange(from, to)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, voted.ID, found.ID)
}

func TestSessionRepository_ResetSequence(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSessionRepository(db.conn)

	session := &entity.VoteSession{
		WeekStartDate: time.Date(2026, 1, 19, 0, 1, 0, 0, time.UTC),
		StartTime:     time.Date(2026, 1, 12, 0, 1, 0, 0, time.UTC),
		EndTime:       time.Date(2026, 1, 23, 17, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(session))
	require.NoError(t, repo.DeleteAll())
	require.NoError(t, repo.ResetSequence())

	reinserted := &entity.VoteSession{
		WeekStartDate: time.Date(2026, 1, 26, 0, 1, 0, 0, time.UTC),
		StartTime:     time.Date(2026, 1, 19, 0, 1, 0, 0, time.UTC),
		EndTime:       time.Date(2026, 1, 30, 17, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(reinserted))

	assert.Equal(t, int64(1), reinserted.ID, "Sequence should restart at 1")
}
