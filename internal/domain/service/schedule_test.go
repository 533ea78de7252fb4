package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jungshell/fccg-core/internal/database"
	"github.com/jungshell/fccg-core/internal/domain"
	"github.com/jungshell/fccg-core/internal/domain/entity"
)

func Test_weekMonday(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "Should return same day for a Monday",
			in:   time.Date(2026, 1, 19, 15, 30, 0, 0, time.UTC),
			want: time.Date(2026, 1, 19, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Should go back to Monday from a Wednesday",
			in:   time.Date(2026, 1, 21, 9, 0, 0, 0, time.UTC),
			want: time.Date(2026, 1, 19, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Should treat Sunday as the last day of the week",
			in:   time.Date(2026, 1, 25, 23, 0, 0, 0, time.UTC),
			want: time.Date(2026, 1, 19, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, weekMonday(tt.in))
		})
	}
}

func Test_nextWeekMonday(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "Should land exactly seven days out when fired on a Monday",
			now:  time.Date(2026, 1, 12, 0, 5, 0, 0, time.UTC),
			want: time.Date(2026, 1, 19, 0, 1, 0, 0, time.UTC),
		},
		{
			name: "Should land on the Monday after next when fired on a Saturday",
			now:  time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, 1, 19, 0, 1, 0, 0, time.UTC),
		},
		{
			name: "Should never return a Monday less than seven days away",
			now:  time.Date(2026, 1, 18, 12, 0, 0, 0, time.UTC), // Sunday
			want: time.Date(2026, 1, 26, 0, 1, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextWeekMonday(tt.now)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, time.Monday, got.Weekday())
			assert.True(t, got.Sub(tt.now) >= 6*24*time.Hour)
		})
	}
}

func Test_votingDeadline(t *testing.T) {
	monday := time.Date(2026, 1, 19, 0, 1, 0, 0, time.UTC)
	want := time.Date(2026, 1, 23, 17, 0, 0, 0, time.UTC)

	assert.Equal(t, want, votingDeadline(monday))
}

func Test_weeklyScheduler_createNextWeekSession(t *testing.T) {
	now := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC) // Saturday
	target := time.Date(2026, 1, 19, 0, 1, 0, 0, time.UTC)

	t.Run("Should create the session when the week has none", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockSessionRepo.EXPECT().GetByWeekDate(target).Return(nil, nil).Times(1)
		m.mockSessionRepo.EXPECT().Create(gomock.Any()).
			DoAndReturn(func(session *entity.VoteSession) error {
				session.ID = 1
				require.Equal(t, target, session.WeekStartDate)
				require.Equal(t, time.Date(2026, 1, 5, 0, 1, 0, 0, time.UTC), session.StartTime)
				require.Equal(t, time.Date(2026, 1, 23, 17, 0, 0, 0, time.UTC), session.EndTime)
				require.True(t, session.IsActive)
				require.False(t, session.IsCompleted)
				return nil
			}).Times(1)

		s := newWeeklyScheduler(m.mockDataManager, m.mockNotifier, time.UTC, m.logger)
		require.NoError(t, s.createNextWeekSession(now))
	})

	t.Run("Should skip when the week already has a session", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockSessionRepo.EXPECT().GetByWeekDate(target).
			Return(&entity.VoteSession{ID: 1, WeekStartDate: target}, nil).Times(1)
		// No Create call: refiring within the same week is a no-op.

		s := newWeeklyScheduler(m.mockDataManager, m.mockNotifier, time.UTC, m.logger)
		require.NoError(t, s.createNextWeekSession(now))
	})
}

func Test_weeklyScheduler_rolloverLastWeekResults(t *testing.T) {
	now := time.Date(2026, 1, 21, 3, 0, 0, 0, time.UTC) // Wednesday
	lastMonday := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	lastFridayEnd := time.Date(2026, 1, 16, 23, 59, 59, 0, time.UTC)

	session := &entity.VoteSession{
		ID:            10,
		WeekStartDate: time.Date(2026, 1, 12, 0, 1, 0, 0, time.UTC),
		IsCompleted:   true,
	}
	votes := []*entity.Vote{
		{ID: 1, UserID: 1, VoteSessionID: 10, SelectedDays: `["MON","WED"]`},
		{ID: 2, UserID: 2, VoteSessionID: 10, SelectedDays: `["WED"]`},
		{ID: 3, UserID: 3, VoteSessionID: 10, SelectedDays: `["MON"]`},
	}

	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockSessionRepo.EXPECT().
		GetLatestCompletedInRange(lastMonday, lastFridayEnd).
		Return(session, nil).Times(1)
	m.mockVoteRepo.EXPECT().GetBySession(int64(10)).Return(votes, nil).Times(1)

	m.mockMemberRepo.EXPECT().GetByID(int64(1)).Return(&entity.Member{ID: 1, Name: "Ahn"}, nil)
	m.mockMemberRepo.EXPECT().GetByID(int64(2)).Return(&entity.Member{ID: 2, Name: "Baek"}, nil)
	m.mockMemberRepo.EXPECT().GetByID(int64(3)).Return(&entity.Member{ID: 3, Name: "Choi"}, nil)

	m.mockGameRepo.EXPECT().
		DeleteAutoGeneratedInRange(
			time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 1, 18, 23, 59, 59, 0, time.UTC),
		).Return(int64(2), nil).Times(1)

	var created []*entity.Game
	m.mockGameRepo.EXPECT().Create(gomock.Any()).
		DoAndReturn(func(game *entity.Game) error {
			game.ID = int64(len(created) + 1)
			created = append(created, game)
			return nil
		}).Times(2)

	m.mockNotifier.EXPECT().
		NotifyWeeklyDigest(gomock.Any(), "2026-01-12", gomock.Any()).
		Return(nil).Times(1)

	s := newWeeklyScheduler(m.mockDataManager, m.mockNotifier, time.UTC, m.logger)
	require.NoError(t, s.rolloverLastWeekResults(context.Background(), now))

	require.Len(t, created, 2)

	monday := created[0]
	assert.Equal(t, time.Date(2026, 1, 12, 0, 1, 0, 0, time.UTC), monday.Date)
	assert.True(t, monday.AutoGenerated)
	assert.False(t, monday.Confirmed)
	assert.Equal(t, []string{"Ahn", "Choi"}, monday.SelectedMembers)
	assert.Equal(t, int64(1), monday.CreatedByID)

	wednesday := created[1]
	assert.Equal(t, time.Date(2026, 1, 14, 0, 1, 0, 0, time.UTC), wednesday.Date)
	assert.Equal(t, []string{"Ahn", "Baek"}, wednesday.SelectedMembers)
}

func Test_weeklyScheduler_rolloverLastWeekResults_repeatable(t *testing.T) {
	// Against a real store: running the rollover twice on unchanged votes
	// must converge to the same set of auto-generated games.
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	db := database.SetupTestDB(t)
	defer database.CleanupTestDB(t, db)

	dm := database.NewInstance(db)

	now := time.Date(2026, 1, 21, 3, 0, 0, 0, time.UTC) // Wednesday
	targetMonday := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	weekEnd := time.Date(2026, 1, 18, 23, 59, 59, 0, time.UTC)

	for _, name := range []string{"Ahn", "Baek", "Choi"} {
		require.NoError(t, dm.Member().Create(&entity.Member{Name: name, Status: domain.StatusActive}))
	}

	session := &entity.VoteSession{
		WeekStartDate: targetMonday.Add(time.Minute),
		StartTime:     targetMonday.AddDate(0, 0, -7).Add(time.Minute),
		EndTime:       time.Date(2026, 1, 16, 17, 0, 0, 0, time.UTC),
		IsCompleted:   true,
	}
	require.NoError(t, dm.Session().Create(session))

	seedVotes := []*entity.Vote{
		{UserID: 1, VoteSessionID: session.ID, SelectedDays: `["MON","WED"]`},
		{UserID: 2, VoteSessionID: session.ID, SelectedDays: `["WED"]`},
		{UserID: 3, VoteSessionID: session.ID, SelectedDays: `["MON"]`},
	}
	for _, vote := range seedVotes {
		require.NoError(t, dm.Vote().Create(vote))
	}

	m.mockNotifier.EXPECT().
		NotifyWeeklyDigest(gomock.Any(), "2026-01-12", gomock.Any()).
		Return(nil).Times(2)

	s := newWeeklyScheduler(dm, m.mockNotifier, time.UTC, m.logger)

	require.NoError(t, s.rolloverLastWeekResults(context.Background(), now))
	first, err := dm.Game().GetByDateRange(targetMonday, weekEnd)
	require.NoError(t, err)

	require.NoError(t, s.rolloverLastWeekResults(context.Background(), now))
	second, err := dm.Game().GetByDateRange(targetMonday, weekEnd)
	require.NoError(t, err)

	require.Len(t, first, 2)
	require.Len(t, second, 2)
	for i := range first {
		assert.True(t, first[i].Date.Equal(second[i].Date))
		assert.Equal(t, first[i].SelectedMembers, second[i].SelectedMembers)
		assert.Equal(t, first[i].AutoGenerated, second[i].AutoGenerated)
		assert.Equal(t, first[i].CreatedByID, second[i].CreatedByID)
	}

	assert.True(t, first[0].Date.Equal(time.Date(2026, 1, 12, 0, 1, 0, 0, time.UTC)))
	assert.True(t, first[1].Date.Equal(time.Date(2026, 1, 14, 0, 1, 0, 0, time.UTC)))
	assert.Equal(t, []string{"Ahn", "Choi"}, first[0].SelectedMembers)
	assert.Equal(t, []string{"Ahn", "Baek"}, first[1].SelectedMembers)
}

func Test_weeklyScheduler_rolloverLastWeekResults_votesVanished(t *testing.T) {
	// The session qualified via its votes, but they were deleted before the
	// separate vote read. Nothing is generated or notified.
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	session := &entity.VoteSession{
		ID:            10,
		WeekStartDate: time.Date(2026, 1, 12, 0, 1, 0, 0, time.UTC),
		IsCompleted:   true,
	}

	m.mockSessionRepo.EXPECT().
		GetLatestCompletedInRange(gomock.Any(), gomock.Any()).
		Return(session, nil).Times(1)
	m.mockVoteRepo.EXPECT().GetBySession(int64(10)).Return(nil, nil).Times(1)

	s := newWeeklyScheduler(m.mockDataManager, m.mockNotifier, time.UTC, m.logger)
	require.NoError(t, s.rolloverLastWeekResults(context.Background(), time.Date(2026, 1, 21, 3, 0, 0, 0, time.UTC)))
}

func Test_weeklyScheduler_rolloverLastWeekResults_noSession(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockSessionRepo.EXPECT().
		GetLatestCompletedInRange(gomock.Any(), gomock.Any()).
		Return(nil, nil).Times(1)
	// Nothing else happens: no deletes, no games, no digest.

	s := newWeeklyScheduler(m.mockDataManager, m.mockNotifier, time.UTC, m.logger)
	require.NoError(t, s.rolloverLastWeekResults(context.Background(), time.Date(2026, 1, 21, 3, 0, 0, 0, time.UTC)))
}
