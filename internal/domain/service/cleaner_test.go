package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jungshell/fccg-core/internal/database"
	"github.com/jungshell/fccg-core/internal/domain/entity"
)

// The cleaner is exercised against a real in-memory store because its whole
// point is id bookkeeping, which mocks would just restate.
func Test_duplicateSessionCleaner_Run(t *testing.T) {
	db := database.SetupTestDB(t)
	defer database.CleanupTestDB(t, db)

	dm := database.NewInstance(db)

	week1 := time.Date(2026, 1, 5, 0, 1, 0, 0, time.UTC)
	week2 := time.Date(2026, 1, 12, 0, 1, 0, 0, time.UTC)
	week3 := time.Date(2026, 1, 19, 0, 1, 0, 0, time.UTC)

	mkSession := func(weekStart time.Time) *entity.VoteSession {
		session := &entity.VoteSession{
			WeekStartDate: weekStart,
			StartTime:     weekStart.AddDate(0, 0, -7),
			EndTime:       weekStart.AddDate(0, 0, -3),
			IsCompleted:   true,
		}
		require.NoError(t, dm.Session().Create(session))
		return session
	}

	s1 := mkSession(week1)
	// Three sessions sharing one calendar date; only the last survives.
	dup1 := mkSession(week2)
	mkSession(week2.Add(2 * time.Hour))
	keeper := mkSession(week2.Add(5 * time.Hour))
	mkSession(week3)

	require.NoError(t, dm.Vote().Create(&entity.Vote{UserID: 1, VoteSessionID: s1.ID, SelectedDays: `["MON"]`}))
	require.NoError(t, dm.Vote().Create(&entity.Vote{UserID: 2, VoteSessionID: dup1.ID, SelectedDays: `["TUE"]`}))
	require.NoError(t, dm.Vote().Create(&entity.Vote{UserID: 3, VoteSessionID: keeper.ID, SelectedDays: `["WED"]`}))

	cleaner := newDuplicateSessionCleaner(dm, time.UTC, zap.NewNop())
	require.NoError(t, cleaner.Run())

	sessions, err := dm.Session().GetAllOrdered()
	require.NoError(t, err)
	require.Len(t, sessions, 3)

	// Dense chronological ids starting at 1.
	for i, session := range sessions {
		assert.Equal(t, int64(i+1), session.ID)
	}
	assert.Equal(t, week1, sessions[0].WeekStartDate.UTC())
	assert.Equal(t, week2.Add(5*time.Hour), sessions[1].WeekStartDate.UTC())
	assert.Equal(t, week3, sessions[2].WeekStartDate.UTC())

	// The keeper's vote moved with it; the duplicates' votes are gone.
	votes, err := dm.Vote().GetBySession(sessions[1].ID)
	require.NoError(t, err)
	require.Len(t, votes, 1)
	assert.Equal(t, int64(3), votes[0].UserID)
	assert.Equal(t, `["WED"]`, votes[0].SelectedDays)

	votes, err = dm.Vote().GetBySession(sessions[0].ID)
	require.NoError(t, err)
	require.Len(t, votes, 1)
	assert.Equal(t, int64(1), votes[0].UserID)

	votes, err = dm.Vote().GetBySession(sessions[2].ID)
	require.NoError(t, err)
	assert.Empty(t, votes)
}

func Test_duplicateSessionCleaner_Run_noDuplicates(t *testing.T) {
	db := database.SetupTestDB(t)
	defer database.CleanupTestDB(t, db)

	dm := database.NewInstance(db)

	session := &entity.VoteSession{
		WeekStartDate: time.Date(2026, 1, 5, 0, 1, 0, 0, time.UTC),
		StartTime:     time.Date(2025, 12, 29, 0, 1, 0, 0, time.UTC),
		EndTime:       time.Date(2026, 1, 2, 17, 0, 0, 0, time.UTC),
		IsActive:      true,
	}
	require.NoError(t, dm.Session().Create(session))

	cleaner := newDuplicateSessionCleaner(dm, time.UTC, zap.NewNop())
	require.NoError(t, cleaner.Run())

	// Untouched: no renumbering happened.
	got, err := dm.Session().GetByID(session.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsActive)
}
