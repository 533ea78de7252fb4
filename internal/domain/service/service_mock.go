package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/jungshell/fccg-core/mocks"
)

type allMocks struct {
	mockDataManager    *mocks.MockDataManager
	mockMemberRepo     *mocks.MockMemberRepo
	mockSessionRepo    *mocks.MockSessionRepo
	mockVoteRepo       *mocks.MockVoteRepo
	mockGameRepo       *mocks.MockGameRepo
	mockAttendanceRepo *mocks.MockAttendanceRepo
	mockNotifier       *mocks.MockNotifier
	logger             *zap.Logger
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	memberRepo := mocks.NewMockMemberRepo(ctrl)
	dm.EXPECT().Member().Return(memberRepo).AnyTimes()

	sessionRepo := mocks.NewMockSessionRepo(ctrl)
	dm.EXPECT().Session().Return(sessionRepo).AnyTimes()

	voteRepo := mocks.NewMockVoteRepo(ctrl)
	dm.EXPECT().Vote().Return(voteRepo).AnyTimes()

	gameRepo := mocks.NewMockGameRepo(ctrl)
	dm.EXPECT().Game().Return(gameRepo).AnyTimes()

	attendanceRepo := mocks.NewMockAttendanceRepo(ctrl)
	dm.EXPECT().Attendance().Return(attendanceRepo).AnyTimes()

	notifier := mocks.NewMockNotifier(ctrl)

	m = allMocks{
		mockDataManager:    dm,
		mockMemberRepo:     memberRepo,
		mockSessionRepo:    sessionRepo,
		mockVoteRepo:       voteRepo,
		mockGameRepo:       gameRepo,
		mockAttendanceRepo: attendanceRepo,
		mockNotifier:       notifier,
		logger:             zap.NewNop(),
	}

	// validate service creation
	sessions := newSessionManager(dm, time.UTC, m.logger)
	require.NotNil(t, sessions)

	return
}
